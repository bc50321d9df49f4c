package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ai-marketer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

type PromotionRepository interface {
	Create(ctx context.Context, promotion *domain.Promotion, categoryIDs []int) error
	ListByBusiness(businessID string) ([]*domain.Promotion, error)
	GetByID(promotionID, businessID string) (*domain.Promotion, error)
	Delete(promotionID, businessID string) error
}

type promotionRepository struct {
	conn *postgres.Connection
}

func NewPromotionRepository(conn *postgres.Connection) PromotionRepository {
	return &promotionRepository{
		conn: conn,
	}
}

func (r *promotionRepository) Create(ctx context.Context, promotion *domain.Promotion, categoryIDs []int) error {
	namesJSON, err := json.Marshal(promotion.ProductNames)
	if err != nil {
		return fmt.Errorf("erro ao serializar product_names: %w", err)
	}
	dataJSON, err := json.Marshal(promotion.ProductData)
	if err != nil {
		return fmt.Errorf("erro ao serializar product_data: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("promotions").
			Columns("id", "business_id", "description", "start_date", "end_date", "product_names", "product_data").
			Values(
				promotion.ID,
				promotion.BusinessID,
				promotion.Description,
				promotion.StartDate,
				promotion.EndDate,
				namesJSON,
				dataJSON,
			).
			Suffix("RETURNING created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRow(query, args...).Scan(&promotion.CreatedAt); err != nil {
			return fmt.Errorf("erro ao inserir promoção: %w", err)
		}

		for _, categoryID := range categoryIDs {
			linkSQL, linkArgs, err := squirrel.
				Insert("promotion_category_links").
				Columns("promotion_id", "category_id").
				Values(promotion.ID, categoryID).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(linkSQL, linkArgs...); err != nil {
				return fmt.Errorf("erro ao vincular categoria: %w", err)
			}
		}

		return nil
	})
}

func (r *promotionRepository) ListByBusiness(businessID string) ([]*domain.Promotion, error) {
	return r.queryPromotions(squirrel.
		Select(promotionColumns).
		From("promotions p").
		Where(squirrel.Eq{"p.business_id": businessID}).
		OrderBy("p.start_date DESC").
		PlaceholderFormat(squirrel.Dollar))
}

func (r *promotionRepository) GetByID(promotionID, businessID string) (*domain.Promotion, error) {
	promotions, err := r.queryPromotions(squirrel.
		Select(promotionColumns).
		From("promotions p").
		Where(squirrel.Eq{"p.id": promotionID, "p.business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar))
	if err != nil {
		return nil, err
	}
	if len(promotions) == 0 {
		return nil, nil
	}
	return promotions[0], nil
}

func (r *promotionRepository) Delete(promotionID, businessID string) error {
	query, args, err := squirrel.
		Delete("promotions").
		Where(squirrel.Eq{"id": promotionID, "business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

const promotionColumns = "p.id, p.business_id, p.description, p.start_date, p.end_date, p.product_names, p.product_data, p.created_at"

func (r *promotionRepository) queryPromotions(builder squirrel.SelectBuilder) ([]*domain.Promotion, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		promotion := &domain.Promotion{}
		var namesJSON, dataJSON []byte

		err := rows.Scan(
			&promotion.ID,
			&promotion.BusinessID,
			&promotion.Description,
			&promotion.StartDate,
			&promotion.EndDate,
			&namesJSON,
			&dataJSON,
			&promotion.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear promoção: %w", err)
		}

		if namesJSON != nil {
			if err := json.Unmarshal(namesJSON, &promotion.ProductNames); err != nil {
				return nil, fmt.Errorf("erro ao deserializar product_names: %w", err)
			}
		}
		if dataJSON != nil {
			if err := json.Unmarshal(dataJSON, &promotion.ProductData); err != nil {
				return nil, fmt.Errorf("erro ao deserializar product_data: %w", err)
			}
		}

		promotions = append(promotions, promotion)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachPromotionCategories(promotions); err != nil {
		return nil, err
	}

	return promotions, nil
}

func (r *promotionRepository) attachPromotionCategories(promotions []*domain.Promotion) error {
	if len(promotions) == 0 {
		return nil
	}

	ids := make([]string, 0, len(promotions))
	byID := make(map[string]*domain.Promotion, len(promotions))
	for _, p := range promotions {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	query, args, err := squirrel.
		Select("pl.promotion_id, pc.id, pc.key, pc.label").
		From("promotion_category_links pl").
		Join("promotion_categories pc ON pc.id = pl.category_id").
		Where(squirrel.Eq{"pl.promotion_id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var promotionID string
		var category domain.PromotionCategory
		if err := rows.Scan(&promotionID, &category.ID, &category.Key, &category.Label); err != nil {
			return fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		if p, ok := byID[promotionID]; ok {
			p.Categories = append(p.Categories, &category)
		}
	}

	return rows.Err()
}
