package domain

// Page é uma página do Facebook acessível pelo token do usuário.
type Page struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
	InstagramBusinessAccount *struct {
		ID string `json:"id"`
	} `json:"instagram_business_account,omitempty"`
}

type PublishResponse struct {
	ID     string `json:"id"`
	PostID string `json:"post_id"`
}

type MediaContainer struct {
	ID string `json:"id"`
}

type PostEngagement struct {
	Reactions int
	Comments  int
	Shares    int
	Permalink string
}

type GraphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}
