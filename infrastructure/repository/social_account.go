package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ai-marketer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

type SocialAccountRepository interface {
	// Upsert grava a conta da plataforma; religar uma plataforma já
	// vinculada substitui o vínculo existente.
	Upsert(account *domain.SocialAccount) error
	GetByPlatform(businessID string, platform domain.SocialPlatform) (*domain.SocialAccount, error)
	GetByID(accountID string) (*domain.SocialAccount, error)
	ListByBusiness(businessID string) ([]*domain.SocialAccount, error)
	Delete(businessID string, platform domain.SocialPlatform) error
}

type socialAccountRepository struct {
	conn *postgres.Connection
}

func NewSocialAccountRepository(conn *postgres.Connection) SocialAccountRepository {
	return &socialAccountRepository{
		conn: conn,
	}
}

func (r *socialAccountRepository) Upsert(account *domain.SocialAccount) error {
	query, args, err := squirrel.
		Insert("social_accounts").
		Columns("id", "business_id", "platform", "link", "username", "access_token").
		Values(
			account.ID,
			account.BusinessID,
			account.Platform,
			account.Link,
			account.Username,
			account.AccessToken,
		).
		Suffix(`ON CONFLICT (business_id, platform) DO UPDATE
			SET link = EXCLUDED.link,
				username = EXCLUDED.username,
				access_token = EXCLUDED.access_token`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar conta social: %w", err)
	}

	return nil
}

func (r *socialAccountRepository) GetByPlatform(businessID string, platform domain.SocialPlatform) (*domain.SocialAccount, error) {
	return r.queryOne(squirrel.Eq{"business_id": businessID, "platform": platform})
}

func (r *socialAccountRepository) GetByID(accountID string) (*domain.SocialAccount, error) {
	return r.queryOne(squirrel.Eq{"id": accountID})
}

func (r *socialAccountRepository) ListByBusiness(businessID string) ([]*domain.SocialAccount, error) {
	query, args, err := squirrel.
		Select(socialAccountColumns).
		From("social_accounts").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("platform ASC").
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

	accounts := make([]*domain.SocialAccount, 0)
	for rows.Next() {
		account := &domain.SocialAccount{}
		err := rows.Scan(
			&account.ID,
			&account.BusinessID,
			&account.Platform,
			&account.Link,
			&account.Username,
			&account.AccessToken,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta social: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *socialAccountRepository) Delete(businessID string, platform domain.SocialPlatform) error {
	query, args, err := squirrel.
		Delete("social_accounts").
		Where(squirrel.Eq{"business_id": businessID, "platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

const socialAccountColumns = "id, business_id, platform, link, username, access_token"

func (r *socialAccountRepository) queryOne(where squirrel.Eq) (*domain.SocialAccount, error) {
	query, args, err := squirrel.
		Select(socialAccountColumns).
		From("social_accounts").
		Where(where).
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

	if !rows.Next() {
		return nil, rows.Err()
	}

	account := &domain.SocialAccount{}
	err = rows.Scan(
		&account.ID,
		&account.BusinessID,
		&account.Platform,
		&account.Link,
		&account.Username,
		&account.AccessToken,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear conta social: %w", err)
	}

	return account, nil
}
