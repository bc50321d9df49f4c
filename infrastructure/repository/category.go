package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ai-marketer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

type CategoryRepository interface {
	List() ([]*domain.PromotionCategory, error)
	// GetByKeys retorna apenas as categorias cujas chaves existem no
	// vocabulário; chaves desconhecidas são simplesmente omitidas.
	GetByKeys(keys []string) ([]*domain.PromotionCategory, error)
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) List() ([]*domain.PromotionCategory, error) {
	return r.query(squirrel.
		Select("id, key, label").
		From("promotion_categories").
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar))
}

func (r *categoryRepository) GetByKeys(keys []string) ([]*domain.PromotionCategory, error) {
	if len(keys) == 0 {
		return []*domain.PromotionCategory{}, nil
	}

	return r.query(squirrel.
		Select("id, key, label").
		From("promotion_categories").
		Where(squirrel.Eq{"key": keys}).
		PlaceholderFormat(squirrel.Dollar))
}

func (r *categoryRepository) query(builder squirrel.SelectBuilder) ([]*domain.PromotionCategory, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.PromotionCategory, 0)
	for rows.Next() {
		var category domain.PromotionCategory
		if err := rows.Scan(&category.ID, &category.Key, &category.Label); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, rows.Err()
}
