package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ai-marketer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

const salesRecordsTable = "sales_records sr"

type SalesRecordRepository interface {
	// GetForMerge busca os registros existentes que podem colidir com um
	// lote de ingestão, indexados pela chave natural.
	GetForMerge(businessID string, source domain.SalesSource, dates []time.Time, productNames []string) (map[domain.MergeKey]*domain.SalesRecord, error)
	// MergeRecords aplica criações e acumulações em uma única transação.
	MergeRecords(ctx context.Context, toCreate, toUpdate []*domain.SalesRecord) error
	ListByWindow(businessID string, startDate, endDate time.Time) ([]*domain.SalesRecord, error)
	HasAny(businessID string) (bool, error)
	DeleteBySource(businessID string, source domain.SalesSource) (int64, error)
	DailyRevenue(businessID string, startDate, endDate time.Time) ([]*domain.DailyRevenue, error)
	ProductTotals(businessID string, startDate, endDate time.Time) ([]*domain.ProductSummary, error)
}

type salesRecordRepository struct {
	conn *postgres.Connection
}

func NewSalesRecordRepository(conn *postgres.Connection) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

const salesRecordColumns = "sr.id, sr.business_id, sr.date, sr.revenue, sr.units_sold, sr.product_name, sr.product_price, sr.source, sr.batch_id"

func (r *salesRecordRepository) GetForMerge(
	businessID string,
	source domain.SalesSource,
	dates []time.Time,
	productNames []string,
) (map[domain.MergeKey]*domain.SalesRecord, error) {
	dateStrs := make([]string, 0, len(dates))
	for _, d := range dates {
		dateStrs = append(dateStrs, d.Format(time.DateOnly))
	}

	query, args, err := squirrel.
		Select(salesRecordColumns).
		From(salesRecordsTable).
		Where(squirrel.Eq{
			"sr.business_id":  businessID,
			"sr.source":       source,
			"sr.date":         dateStrs,
			"sr.product_name": productNames,
		}).
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

	existing := make(map[domain.MergeKey]*domain.SalesRecord)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sales record: %w", err)
		}
		existing[record.Key()] = record
	}

	return existing, rows.Err()
}

func (r *salesRecordRepository) MergeRecords(ctx context.Context, toCreate, toUpdate []*domain.SalesRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, record := range toUpdate {
			query, args, err := squirrel.
				Update("sales_records").
				Set("units_sold", record.UnitsSold).
				Set("revenue", record.Revenue).
				Where(squirrel.Eq{"id": record.ID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao acumular sales record %d: %w", record.ID, err)
			}
		}

		for _, record := range toCreate {
			query, args, err := squirrel.
				Insert("sales_records").
				Columns("business_id", "date", "revenue", "units_sold", "product_name", "product_price", "source", "batch_id").
				Values(
					record.BusinessID,
					record.Date.Format(time.DateOnly),
					record.Revenue,
					record.UnitsSold,
					record.ProductName,
					record.ProductPrice,
					record.Source,
					record.BatchID,
				).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao inserir sales record: %w", err)
			}
		}

		return nil
	})
}

func (r *salesRecordRepository) ListByWindow(businessID string, startDate, endDate time.Time) ([]*domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select(salesRecordColumns).
		From(salesRecordsTable).
		Where(squirrel.Eq{"sr.business_id": businessID}).
		Where(squirrel.GtOrEq{"sr.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sr.date": endDate.Format(time.DateOnly)}).
		OrderBy("sr.date DESC").
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

	records := make([]*domain.SalesRecord, 0)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sales record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *salesRecordRepository) HasAny(businessID string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(salesRecordsTable).
		Where(squirrel.Eq{"sr.business_id": businessID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *salesRecordRepository) DeleteBySource(businessID string, source domain.SalesSource) (int64, error) {
	query, args, err := squirrel.
		Delete("sales_records").
		Where(squirrel.Eq{"business_id": businessID, "source": source}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return result.RowsAffected()
}

func (r *salesRecordRepository) DailyRevenue(businessID string, startDate, endDate time.Time) ([]*domain.DailyRevenue, error) {
	query, args, err := squirrel.
		Select("sr.date", "SUM(sr.revenue) AS total_revenue").
		From(salesRecordsTable).
		Where(squirrel.Eq{"sr.business_id": businessID}).
		Where(squirrel.GtOrEq{"sr.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sr.date": endDate.Format(time.DateOnly)}).
		GroupBy("sr.date").
		OrderBy("sr.date ASC").
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

	daily := make([]*domain.DailyRevenue, 0)
	for rows.Next() {
		var entry domain.DailyRevenue
		if err := rows.Scan(&entry.Date, &entry.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita diária: %w", err)
		}
		daily = append(daily, &entry)
	}

	return daily, rows.Err()
}

func (r *salesRecordRepository) ProductTotals(businessID string, startDate, endDate time.Time) ([]*domain.ProductSummary, error) {
	query, args, err := squirrel.
		Select("sr.product_name", "SUM(sr.revenue) AS total_revenue", "SUM(sr.units_sold) AS total_units").
		From(salesRecordsTable).
		Where(squirrel.Eq{"sr.business_id": businessID}).
		Where(squirrel.NotEq{"sr.product_name": nil}).
		Where(squirrel.GtOrEq{"sr.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sr.date": endDate.Format(time.DateOnly)}).
		GroupBy("sr.product_name").
		OrderBy("total_units DESC").
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

	totals := make([]*domain.ProductSummary, 0)
	for rows.Next() {
		var summary domain.ProductSummary
		if err := rows.Scan(&summary.ProductName, &summary.TotalRevenue, &summary.TotalUnits); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais de produto: %w", err)
		}
		totals = append(totals, &summary)
	}

	return totals, rows.Err()
}

func scanSalesRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}
	var price decimal.NullDecimal

	err := rows.Scan(
		&record.ID,
		&record.BusinessID,
		&record.Date,
		&record.Revenue,
		&record.UnitsSold,
		&record.ProductName,
		&price,
		&record.Source,
		&record.BatchID,
	)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		record.ProductPrice = &price.Decimal
	}

	return record, nil
}
