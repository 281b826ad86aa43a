package repository

import (
	"context"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PackageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	FindAll(ctx context.Context) ([]*entity.Package, error)
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	query := `
		SELECT id, name, type, price, description, max_capacity, created_at, updated_at
		FROM packages
		WHERE id = $1
	`

	var pkg entity.Package
	err := r.db.QueryRow(ctx, query, id).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Type,
		&pkg.Price,
		&pkg.Description,
		&pkg.MaxCapacity,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id.String(), err)
	}

	return &pkg, nil
}

func (r *packageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	query := `
		SELECT id, name, type, price, description, max_capacity, created_at, updated_at
		FROM packages
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find packages", zap.Error(err))
		return nil, fmt.Errorf("find packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		var pkg entity.Package
		err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Type,
			&pkg.Price,
			&pkg.Description,
			&pkg.MaxCapacity,
			&pkg.CreatedAt,
			&pkg.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate package rows: %w", err)
	}

	return packages, nil
}
