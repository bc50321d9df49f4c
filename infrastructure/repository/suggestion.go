package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ai-marketer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

const (
	suggestionsTable          = "promotion_suggestions ps"
	suggestionCategoriesTable = "suggestion_categories"
)

type SuggestionRepository interface {
	// CreateBatch persiste as sugestões e seus vínculos de categoria em
	// uma única transação; nada é gravado se alguma inserção falhar.
	CreateBatch(ctx context.Context, suggestions []*domain.PromotionSuggestion, categoryIDs map[string][]int) error
	ListByBusiness(businessID string, showDismissed bool) ([]*domain.PromotionSuggestion, error)
	GetByID(suggestionID, businessID string) (*domain.PromotionSuggestion, error)
	Dismiss(suggestionID, feedback string) error
	DismissOlderThan(businessID string, cutoff time.Time, feedback string) (int64, error)
	CountActive(businessID string) (int, error)
	ListActiveOldestIDs(businessID string, limit int) ([]string, error)
	DismissByIDs(suggestionIDs []string, feedback string) error
	// RecentFeedback retorna as dispensas mais recentes com feedback
	// escrito pelo usuário (o arquivamento automático é excluído).
	RecentFeedback(businessID string, autoArchivePrefix string, limit int) ([]*domain.PromotionSuggestion, error)
}

type suggestionRepository struct {
	conn *postgres.Connection
}

func NewSuggestionRepository(conn *postgres.Connection) SuggestionRepository {
	return &suggestionRepository{
		conn: conn,
	}
}

func (r *suggestionRepository) CreateBatch(
	ctx context.Context,
	suggestions []*domain.PromotionSuggestion,
	categoryIDs map[string][]int,
) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, suggestion := range suggestions {
			namesJSON, err := json.Marshal(suggestion.ProductNames)
			if err != nil {
				return fmt.Errorf("erro ao serializar product_names: %w", err)
			}
			dataJSON, err := json.Marshal(suggestion.ProductData)
			if err != nil {
				return fmt.Errorf("erro ao serializar product_data: %w", err)
			}

			query, args, err := squirrel.
				Insert("promotion_suggestions").
				Columns("id", "business_id", "title", "description", "product_names", "product_data", "data_start_date", "data_end_date").
				Values(
					suggestion.ID,
					suggestion.BusinessID,
					suggestion.Title,
					suggestion.Description,
					namesJSON,
					dataJSON,
					suggestion.DataStartDate,
					suggestion.DataEndDate,
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
				return fmt.Errorf("erro ao inserir sugestão: %w", err)
			}

			for _, categoryID := range categoryIDs[suggestion.ID] {
				linkSQL, linkArgs, err := squirrel.
					Insert(suggestionCategoriesTable).
					Columns("suggestion_id", "category_id").
					Values(suggestion.ID, categoryID).
					PlaceholderFormat(squirrel.Dollar).
					ToSql()
				if err != nil {
					return fmt.Errorf("erro ao construir a query: %w", err)
				}

				if _, err := tx.Exec(linkSQL, linkArgs...); err != nil {
					return fmt.Errorf("erro ao vincular categoria: %w", err)
				}
			}
		}

		return nil
	})
}

func (r *suggestionRepository) ListByBusiness(businessID string, showDismissed bool) ([]*domain.PromotionSuggestion, error) {
	builder := squirrel.
		Select(suggestionColumns).
		From(suggestionsTable).
		Where(squirrel.Eq{"ps.business_id": businessID}).
		OrderBy("ps.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if !showDismissed {
		builder = builder.Where(squirrel.Eq{"ps.is_dismissed": false})
	}

	return r.querySuggestions(builder)
}

func (r *suggestionRepository) GetByID(suggestionID, businessID string) (*domain.PromotionSuggestion, error) {
	suggestions, err := r.querySuggestions(squirrel.
		Select(suggestionColumns).
		From(suggestionsTable).
		Where(squirrel.Eq{"ps.id": suggestionID, "ps.business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar))
	if err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		return nil, nil
	}
	return suggestions[0], nil
}

func (r *suggestionRepository) Dismiss(suggestionID, feedback string) error {
	return r.dismissWhere(squirrel.Eq{"id": suggestionID}, feedback)
}

func (r *suggestionRepository) DismissOlderThan(businessID string, cutoff time.Time, feedback string) (int64, error) {
	query, args, err := squirrel.
		Update("promotion_suggestions").
		Set("is_dismissed", true).
		Set("feedback", feedback).
		Where(squirrel.Eq{"business_id": businessID, "is_dismissed": false}).
		Where(squirrel.Lt{"created_at": cutoff}).
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

func (r *suggestionRepository) CountActive(businessID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(suggestionsTable).
		Where(squirrel.Eq{"ps.business_id": businessID, "ps.is_dismissed": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *suggestionRepository) ListActiveOldestIDs(businessID string, limit int) ([]string, error) {
	query, args, err := squirrel.
		Select("ps.id").
		From(suggestionsTable).
		Where(squirrel.Eq{"ps.business_id": businessID, "ps.is_dismissed": false}).
		OrderBy("ps.created_at ASC").
		Limit(uint64(limit)).
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

	ids := make([]string, 0, limit)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *suggestionRepository) DismissByIDs(suggestionIDs []string, feedback string) error {
	if len(suggestionIDs) == 0 {
		return nil
	}
	return r.dismissWhere(squirrel.Eq{"id": suggestionIDs}, feedback)
}

func (r *suggestionRepository) RecentFeedback(businessID string, autoArchivePrefix string, limit int) ([]*domain.PromotionSuggestion, error) {
	builder := squirrel.
		Select(suggestionColumns).
		From(suggestionsTable).
		Where(squirrel.Eq{"ps.business_id": businessID, "ps.is_dismissed": true}).
		Where(squirrel.NotEq{"ps.feedback": nil}).
		Where(squirrel.NotEq{"ps.feedback": ""}).
		Where("ps.feedback NOT LIKE ?", autoArchivePrefix+"%").
		OrderBy("ps.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.querySuggestions(builder)
}

func (r *suggestionRepository) dismissWhere(whereClause squirrel.Eq, feedback string) error {
	query, args, err := squirrel.
		Update("promotion_suggestions").
		Set("is_dismissed", true).
		Set("feedback", feedback).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

const suggestionColumns = "ps.id, ps.business_id, ps.title, ps.description, ps.product_names, ps.product_data, ps.data_start_date, ps.data_end_date, ps.feedback, ps.is_dismissed, ps.created_at"

func (r *suggestionRepository) querySuggestions(builder squirrel.SelectBuilder) ([]*domain.PromotionSuggestion, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	suggestions := make([]*domain.PromotionSuggestion, 0)
	for rows.Next() {
		suggestion, err := scanSuggestion(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sugestão: %w", err)
		}
		suggestions = append(suggestions, suggestion)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachCategories(suggestions); err != nil {
		return nil, err
	}

	return suggestions, nil
}

func (r *suggestionRepository) attachCategories(suggestions []*domain.PromotionSuggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	ids := make([]string, 0, len(suggestions))
	byID := make(map[string]*domain.PromotionSuggestion, len(suggestions))
	for _, s := range suggestions {
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}

	query, args, err := squirrel.
		Select("sc.suggestion_id, pc.id, pc.key, pc.label").
		From("suggestion_categories sc").
		Join("promotion_categories pc ON pc.id = sc.category_id").
		Where(squirrel.Eq{"sc.suggestion_id": ids}).
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
		var suggestionID string
		var category domain.PromotionCategory
		if err := rows.Scan(&suggestionID, &category.ID, &category.Key, &category.Label); err != nil {
			return fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		if s, ok := byID[suggestionID]; ok {
			s.Categories = append(s.Categories, &category)
		}
	}

	return rows.Err()
}

func scanSuggestion(rows *sql.Rows) (*domain.PromotionSuggestion, error) {
	suggestion := &domain.PromotionSuggestion{}
	var namesJSON, dataJSON []byte

	err := rows.Scan(
		&suggestion.ID,
		&suggestion.BusinessID,
		&suggestion.Title,
		&suggestion.Description,
		&namesJSON,
		&dataJSON,
		&suggestion.DataStartDate,
		&suggestion.DataEndDate,
		&suggestion.Feedback,
		&suggestion.IsDismissed,
		&suggestion.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if namesJSON != nil {
		if err := json.Unmarshal(namesJSON, &suggestion.ProductNames); err != nil {
			return nil, fmt.Errorf("erro ao deserializar product_names: %w", err)
		}
	}
	if dataJSON != nil {
		if err := json.Unmarshal(dataJSON, &suggestion.ProductData); err != nil {
			return nil, fmt.Errorf("erro ao deserializar product_data: %w", err)
		}
	}

	return suggestion, nil
}
