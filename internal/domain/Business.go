package domain

import "time"

// Business representa o negócio de um usuário (um negócio por dono).
// Os campos de perfil (categoria, público, vibe) alimentam os prompts de IA.
type Business struct {
	ID                string     `json:"id"`
	OwnerID           string     `json:"owner_id"`
	Name              string     `json:"name"`
	Category          *string    `json:"category"`
	TargetCustomers   *string    `json:"target_customers"`
	Vibe              *string    `json:"vibe"`
	LogoURL           *string    `json:"logo"`
	SquareAccessToken *string    `json:"-"`
	LastSquareSyncAt  *time.Time `json:"last_square_sync_at"`
	CreatedAt         time.Time  `json:"created_at"`
}

// SquareConnected indica se a integração com o POS está ativa.
func (b *Business) SquareConnected() bool {
	return b != nil && b.SquareAccessToken != nil && *b.SquareAccessToken != ""
}

type UpdateBusinessRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=32"`
	Category        *string `json:"category" validate:"omitempty,max=32"`
	TargetCustomers *string `json:"target_customers" validate:"omitempty,max=32"`
	Vibe            *string `json:"vibe" validate:"omitempty,max=32"`
	LogoURL         *string `json:"logo" validate:"omitempty,url"`
}
