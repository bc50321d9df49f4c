package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ai-marketer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

const uploadBatchesTable = "upload_batches"

type UploadBatchRepository interface {
	Create(batch *domain.UploadBatch) (*domain.UploadBatch, error)
	ListByBusiness(businessID string) ([]*domain.UploadBatch, error)
}

type uploadBatchRepository struct {
	conn *postgres.Connection
}

func NewUploadBatchRepository(conn *postgres.Connection) UploadBatchRepository {
	return &uploadBatchRepository{
		conn: conn,
	}
}

func (r *uploadBatchRepository) Create(batch *domain.UploadBatch) (*domain.UploadBatch, error) {
	query, args, err := squirrel.
		Insert(uploadBatchesTable).
		Columns("id", "business_id", "filename", "file_type", "processed", "processed_at").
		Values(batch.ID, batch.BusinessID, batch.Filename, batch.FileType, batch.Processed, batch.ProcessedAt).
		Suffix("RETURNING uploaded_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&batch.UploadedAt); err != nil {
		return nil, err
	}

	return batch, nil
}

func (r *uploadBatchRepository) ListByBusiness(businessID string) ([]*domain.UploadBatch, error) {
	query, args, err := squirrel.
		Select("id, business_id, filename, file_type, uploaded_at, processed, processed_at").
		From(uploadBatchesTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("uploaded_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	batches := make([]*domain.UploadBatch, 0)
	for rows.Next() {
		var batch domain.UploadBatch
		var processedAt *time.Time
		if err := rows.Scan(
			&batch.ID,
			&batch.BusinessID,
			&batch.Filename,
			&batch.FileType,
			&batch.UploadedAt,
			&batch.Processed,
			&processedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear upload batch: %w", err)
		}
		batch.ProcessedAt = processedAt
		batches = append(batches, &batch)
	}

	return batches, rows.Err()
}
