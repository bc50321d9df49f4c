package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ai-marketer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

const businessesTable = "businesses b"

type BusinessRepository interface {
	Create(business *domain.Business) (*domain.Business, error)
	Update(business *domain.Business) error
	GetByID(businessID string) (*domain.Business, error)
	GetByOwnerID(ownerID string) (*domain.Business, error)
	ListSquareConnected() ([]*domain.Business, error)
	SetSquareToken(businessID string, token *string) error
	SetLastSquareSyncAt(businessID string, syncedAt *time.Time) error
}

type businessRepository struct {
	conn *postgres.Connection
}

func NewBusinessRepository(conn *postgres.Connection) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

const businessColumns = "b.id, b.owner_id, b.name, b.category, b.target_customers, b.vibe, b.logo_url, b.square_access_token, b.last_square_sync_at, b.created_at"

func (r *businessRepository) Create(business *domain.Business) (*domain.Business, error) {
	query, args, err := squirrel.
		Insert("businesses").
		Columns("id", "owner_id", "name", "category", "target_customers", "vibe", "logo_url").
		Values(
			business.ID,
			business.OwnerID,
			business.Name,
			business.Category,
			business.TargetCustomers,
			business.Vibe,
			business.LogoURL,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&business.CreatedAt); err != nil {
		return nil, err
	}

	return business, nil
}

func (r *businessRepository) Update(business *domain.Business) error {
	query, args, err := squirrel.
		Update("businesses").
		Set("name", business.Name).
		Set("category", business.Category).
		Set("target_customers", business.TargetCustomers).
		Set("vibe", business.Vibe).
		Set("logo_url", business.LogoURL).
		Where(squirrel.Eq{"id": business.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *businessRepository) GetByID(businessID string) (*domain.Business, error) {
	return r.getBusiness(squirrel.Eq{"b.id": businessID})
}

func (r *businessRepository) GetByOwnerID(ownerID string) (*domain.Business, error) {
	return r.getBusiness(squirrel.Eq{"b.owner_id": ownerID})
}

func (r *businessRepository) getBusiness(whereClause squirrel.Eq) (*domain.Business, error) {
	query, args, err := squirrel.
		Select(businessColumns).
		From(businessesTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	business, err := r.scanBusiness(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return business, nil
}

// ListSquareConnected retorna os negócios com credencial de POS
// armazenada, usados pela sincronização agendada.
func (r *businessRepository) ListSquareConnected() ([]*domain.Business, error) {
	query, args, err := squirrel.
		Select(businessColumns).
		From(businessesTable).
		Where(squirrel.NotEq{"b.square_access_token": nil}).
		OrderBy("b.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		var b domain.Business
		if err := rows.Scan(
			&b.ID,
			&b.OwnerID,
			&b.Name,
			&b.Category,
			&b.TargetCustomers,
			&b.Vibe,
			&b.LogoURL,
			&b.SquareAccessToken,
			&b.LastSquareSyncAt,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}
		businesses = append(businesses, &b)
	}

	return businesses, rows.Err()
}

func (r *businessRepository) SetSquareToken(businessID string, token *string) error {
	query, args, err := squirrel.
		Update("businesses").
		Set("square_access_token", token).
		Where(squirrel.Eq{"id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *businessRepository) SetLastSquareSyncAt(businessID string, syncedAt *time.Time) error {
	query, args, err := squirrel.
		Update("businesses").
		Set("last_square_sync_at", syncedAt).
		Where(squirrel.Eq{"id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *businessRepository) scanBusiness(row *sql.Row) (*domain.Business, error) {
	var b domain.Business
	err := row.Scan(
		&b.ID,
		&b.OwnerID,
		&b.Name,
		&b.Category,
		&b.TargetCustomers,
		&b.Vibe,
		&b.LogoURL,
		&b.SquareAccessToken,
		&b.LastSquareSyncAt,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
