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

type TableRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Table, error)
	FindAll(ctx context.Context) ([]*entity.Table, error)
}

type tableRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTableRepository(db database.PgxIface, log *zap.Logger) TableRepository {
	return &tableRepository{
		db:  db,
		log: log.With(zap.String("repository", "table")),
	}
}

func (r *tableRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	query := `
		SELECT id, table_number, capacity, is_available, created_at
		FROM tables
		WHERE id = $1
	`

	var table entity.Table
	err := r.db.QueryRow(ctx, query, id).Scan(
		&table.ID,
		&table.TableNumber,
		&table.Capacity,
		&table.IsAvailable,
		&table.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find table by ID",
			zap.Error(err),
			zap.String("table_id", id.String()),
		)
		return nil, fmt.Errorf("find table by ID %s: %w", id.String(), err)
	}

	return &table, nil
}

func (r *tableRepository) FindAll(ctx context.Context) ([]*entity.Table, error) {
	query := `
		SELECT id, table_number, capacity, is_available, created_at
		FROM tables
		ORDER BY table_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find tables", zap.Error(err))
		return nil, fmt.Errorf("find tables: %w", err)
	}
	defer rows.Close()

	var tables []*entity.Table
	for rows.Next() {
		var table entity.Table
		err := rows.Scan(
			&table.ID,
			&table.TableNumber,
			&table.Capacity,
			&table.IsAvailable,
			&table.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan table row", zap.Error(err))
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		tables = append(tables, &table)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate table rows: %w", err)
	}

	return tables, nil
}
