package domain

import "time"

type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "instagram"
	PlatformFacebook  SocialPlatform = "facebook"
)

var SocialPlatformLabels = map[SocialPlatform]string{
	PlatformInstagram: "Instagram",
	PlatformFacebook:  "Facebook",
}

// SocialAccount vincula um negócio a uma conta de rede social.
// No máximo uma conta por plataforma por negócio.
type SocialAccount struct {
	ID          string         `json:"id"`
	BusinessID  string         `json:"business_id"`
	Platform    SocialPlatform `json:"platform"`
	Link        string         `json:"link"`
	Username    string         `json:"username"`
	AccessToken string         `json:"-"`
}

type PostStatus string

const (
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusFailed    PostStatus = "failed"
)

type Post struct {
	ID              string         `json:"id"`
	BusinessID      string         `json:"business_id"`
	SocialAccountID string         `json:"social_account_id"`
	Platform        SocialPlatform `json:"platform"`
	Caption         string         `json:"caption"`
	ImageURL        *string        `json:"image"`
	Link            *string        `json:"link"`
	ExternalPostID  *string        `json:"post_id"`
	Status          PostStatus     `json:"status"`
	ScheduledAt     *time.Time     `json:"scheduled_at"`
	ScheduledJobID  *string        `json:"-"`
	PostedAt        *time.Time     `json:"posted_at"`
	PromotionID     *string        `json:"promotion_id"`
	Reactions       int            `json:"reactions"`
	Comments        int            `json:"comments"`
	Shares          int            `json:"shares"`
	CreatedAt       time.Time      `json:"created_at"`
}

type CreatePostRequest struct {
	Platform    SocialPlatform `json:"platform" validate:"required,oneof=instagram facebook"`
	Caption     string         `json:"caption" validate:"required"`
	ImageURL    *string        `json:"image" validate:"omitempty,url"`
	ScheduledAt *time.Time     `json:"scheduled_at"`
	PromotionID *string        `json:"promotion_id"`
}

type LinkSocialAccountRequest struct {
	Link        string `json:"link" validate:"required,url"`
	Username    string `json:"username" validate:"required,max=255"`
	AccessToken string `json:"access_token" validate:"required"`
}

type PostsSummary struct {
	NumScheduled int `json:"num_scheduled"`
	NumPublished int `json:"num_published"`
	NumFailed    int `json:"num_failed"`
}

type LinkedPlatform struct {
	Key          SocialPlatform `json:"key"`
	Label        string         `json:"label"`
	Link         string         `json:"link"`
	Username     string         `json:"username"`
	NumPublished int            `json:"num_published"`
}

// Dashboard agrega o resumo exibido na tela inicial.
type Dashboard struct {
	Business        *Business         `json:"business"`
	LinkedPlatforms []*LinkedPlatform `json:"linked_platforms"`
	PostsSummary    *PostsSummary     `json:"posts_summary"`
	LastPostDate    *time.Time        `json:"last_post_date"`
}
