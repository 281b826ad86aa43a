package usecase

import (
	"context"
	"io"
	"time"

	"event-booking/internal/cms"
	"event-booking/internal/data/entity"
	"event-booking/internal/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock structures

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Package), args.Error(1)
}

func (m *MockPackageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Package), args.Error(1)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Table), args.Error(1)
}

func (m *MockTableRepository) FindAll(ctx context.Context) ([]*entity.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Table), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateAggregate(ctx context.Context, booking *entity.Booking, riders []*entity.Rider) error {
	args := m.Called(ctx, booking, riders)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) SetOTP(ctx context.Context, bookingID uuid.UUID, code string, expiresAt time.Time) error {
	args := m.Called(ctx, bookingID, code, expiresAt)
	return args.Error(0)
}

func (m *MockBookingRepository) MarkOTPVerified(ctx context.Context, bookingID uuid.UUID) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type MockRiderRepository struct {
	mock.Mock
}

func (m *MockRiderRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Rider, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Rider), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPendingByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockPaymentRepository) Finalize(ctx context.Context, paymentID, bookingID uuid.UUID, status entity.PaymentStatus, rawPayload string) (bool, error) {
	args := m.Called(ctx, paymentID, bookingID, status, rawPayload)
	return args.Bool(0), args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(reader io.Reader, nameHint string) (string, error) {
	args := m.Called(reader, nameHint)
	return args.String(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) CreateCheckoutSession(ctx context.Context) (*gateway.CheckoutSession, []byte, error) {
	args := m.Called(ctx)
	var session *gateway.CheckoutSession
	if args.Get(0) != nil {
		session = args.Get(0).(*gateway.CheckoutSession)
	}
	var raw []byte
	if args.Get(1) != nil {
		raw = args.Get(1).([]byte)
	}
	return session, raw, args.Error(2)
}

func (m *MockGatewayClient) GetOrderStatus(ctx context.Context, transactionID string) ([]byte, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockCMSClient struct {
	mock.Mock
}

func (m *MockCMSClient) GetEvent(ctx context.Context, eventID int64, lang string) (cms.Event, error) {
	args := m.Called(ctx, eventID, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cms.Event), args.Error(1)
}

type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) GetPackages(ctx context.Context) ([]*entity.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Package), args.Error(1)
}

func (m *MockCatalogCache) SetPackages(ctx context.Context, packages []*entity.Package) error {
	args := m.Called(ctx, packages)
	return args.Error(0)
}

func (m *MockCatalogCache) GetTables(ctx context.Context) ([]*entity.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Table), args.Error(1)
}

func (m *MockCatalogCache) SetTables(ctx context.Context, tables []*entity.Table) error {
	args := m.Called(ctx, tables)
	return args.Error(0)
}

func (m *MockCatalogCache) InvalidateTables(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
