package domain

import "time"

// Money segue o formato da API da Square: valores em unidades menores
// da moeda (centavos).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type OrderLineItem struct {
	UID            string `json:"uid"`
	Name           string `json:"name"`
	Quantity       string `json:"quantity"`
	BasePriceMoney *Money `json:"base_price_money,omitempty"`
	TotalMoney     *Money `json:"total_money,omitempty"`
}

type Order struct {
	ID         string          `json:"id"`
	LocationID string          `json:"location_id"`
	State      string          `json:"state"`
	CreatedAt  time.Time       `json:"created_at"`
	LineItems  []OrderLineItem `json:"line_items"`
	TotalMoney *Money          `json:"total_money,omitempty"`
}

type Location struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Timezone string `json:"timezone"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresAt    string `json:"expires_at"`
	MerchantID   string `json:"merchant_id"`
	RefreshToken string `json:"refresh_token"`
}
