package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ai-marketer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

type PostRepository interface {
	Create(post *domain.Post) error
	GetByID(postID, businessID string) (*domain.Post, error)
	ListByBusiness(businessID string) ([]*domain.Post, error)
	ListScheduledDue(now time.Time) ([]*domain.Post, error)
	MarkPublished(postID, externalPostID string, postedAt time.Time) error
	MarkFailed(postID string) error
	SetSchedule(postID string, scheduledAt *time.Time, jobID *string) error
	UpdateEngagement(postID string, reactions, comments, shares int) error
	Delete(postID, businessID string) error
	Summary(businessID string) (*domain.PostsSummary, error)
	CountPublishedByAccount(socialAccountID string) (int, error)
	LastPostDate(businessID string) (*time.Time, error)
}

type postRepository struct {
	conn *postgres.Connection
}

func NewPostRepository(conn *postgres.Connection) PostRepository {
	return &postRepository{
		conn: conn,
	}
}

func (r *postRepository) Create(post *domain.Post) error {
	query, args, err := squirrel.
		Insert("posts").
		Columns(
			"id", "business_id", "social_account_id", "platform", "caption",
			"image_url", "link", "status", "scheduled_at", "scheduled_job_id",
			"posted_at", "external_post_id", "promotion_id",
		).
		Values(
			post.ID,
			post.BusinessID,
			post.SocialAccountID,
			post.Platform,
			post.Caption,
			post.ImageURL,
			post.Link,
			post.Status,
			post.ScheduledAt,
			post.ScheduledJobID,
			post.PostedAt,
			post.ExternalPostID,
			post.PromotionID,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.QueryRow(query, args...).Scan(&post.CreatedAt)
}

func (r *postRepository) GetByID(postID, businessID string) (*domain.Post, error) {
	query, args, err := squirrel.
		Select(postColumns).
		From("posts").
		Where(squirrel.Eq{"id": postID, "business_id": businessID}).
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

	return scanPost(rows)
}

func (r *postRepository) ListByBusiness(businessID string) ([]*domain.Post, error) {
	return r.queryPosts(squirrel.
		Select(postColumns).
		From("posts").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar))
}

// ListScheduledDue retorna posts agendados cujo horário já passou; usado
// na inicialização para recuperar agendamentos perdidos em um restart.
func (r *postRepository) ListScheduledDue(now time.Time) ([]*domain.Post, error) {
	return r.queryPosts(squirrel.
		Select(postColumns).
		From("posts").
		Where(squirrel.Eq{"status": domain.PostStatusScheduled}).
		Where(squirrel.NotEq{"scheduled_at": nil}).
		Where(squirrel.LtOrEq{"scheduled_at": now}).
		OrderBy("scheduled_at ASC").
		PlaceholderFormat(squirrel.Dollar))
}

func (r *postRepository) MarkPublished(postID, externalPostID string, postedAt time.Time) error {
	return r.update(postID, map[string]interface{}{
		"status":           domain.PostStatusPublished,
		"external_post_id": externalPostID,
		"posted_at":        postedAt,
		"scheduled_job_id": nil,
	})
}

func (r *postRepository) MarkFailed(postID string) error {
	return r.update(postID, map[string]interface{}{
		"status":           domain.PostStatusFailed,
		"scheduled_job_id": nil,
	})
}

func (r *postRepository) SetSchedule(postID string, scheduledAt *time.Time, jobID *string) error {
	return r.update(postID, map[string]interface{}{
		"status":           domain.PostStatusScheduled,
		"scheduled_at":     scheduledAt,
		"scheduled_job_id": jobID,
	})
}

func (r *postRepository) UpdateEngagement(postID string, reactions, comments, shares int) error {
	return r.update(postID, map[string]interface{}{
		"reactions": reactions,
		"comments":  comments,
		"shares":    shares,
	})
}

func (r *postRepository) Delete(postID, businessID string) error {
	query, args, err := squirrel.
		Delete("posts").
		Where(squirrel.Eq{"id": postID, "business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *postRepository) Summary(businessID string) (*domain.PostsSummary, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*) FILTER (WHERE status = 'scheduled')",
			"COUNT(*) FILTER (WHERE status = 'published')",
			"COUNT(*) FILTER (WHERE status = 'failed')",
		).
		From("posts").
		Where(squirrel.Eq{"business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.PostsSummary{}
	err = r.conn.QueryRow(query, args...).Scan(
		&summary.NumScheduled,
		&summary.NumPublished,
		&summary.NumFailed,
	)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *postRepository) CountPublishedByAccount(socialAccountID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("posts").
		Where(squirrel.Eq{"social_account_id": socialAccountID, "status": domain.PostStatusPublished}).
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

func (r *postRepository) LastPostDate(businessID string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(posted_at)").
		From("posts").
		Where(squirrel.Eq{"business_id": businessID, "status": domain.PostStatusPublished}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var lastPost sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&lastPost); err != nil {
		return nil, err
	}

	if !lastPost.Valid {
		return nil, nil
	}
	return &lastPost.Time, nil
}

func (r *postRepository) update(postID string, values map[string]interface{}) error {
	query, args, err := squirrel.
		Update("posts").
		SetMap(values).
		Where(squirrel.Eq{"id": postID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

const postColumns = "id, business_id, social_account_id, platform, caption, image_url, link, status, scheduled_at, scheduled_job_id, posted_at, external_post_id, promotion_id, reactions, comments, shares, created_at"

func (r *postRepository) queryPosts(builder squirrel.SelectBuilder) ([]*domain.Post, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func scanPost(rows *sql.Rows) (*domain.Post, error) {
	post := &domain.Post{}
	err := rows.Scan(
		&post.ID,
		&post.BusinessID,
		&post.SocialAccountID,
		&post.Platform,
		&post.Caption,
		&post.ImageURL,
		&post.Link,
		&post.Status,
		&post.ScheduledAt,
		&post.ScheduledJobID,
		&post.PostedAt,
		&post.ExternalPostID,
		&post.PromotionID,
		&post.Reactions,
		&post.Comments,
		&post.Shares,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}
