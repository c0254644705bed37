package metadomain

import "encoding/json"

// Post é um post do feed de uma página. Attachments, reações e comentários são
// repassados como vieram da Graph API, sem remodelagem.
type Post struct {
	ID           string          `json:"id"`
	Message      string          `json:"message,omitempty"`
	CreatedTime  string          `json:"created_time,omitempty"`
	PermalinkURL string          `json:"permalink_url,omitempty"`
	Attachments  json.RawMessage `json:"attachments,omitempty"`
	Reactions    json.RawMessage `json:"reactions,omitempty"`
	Comments     json.RawMessage `json:"comments,omitempty"`
	Shares       json.RawMessage `json:"shares,omitempty"`
}

type PostList struct {
	Data   []Post `json:"data"`
	Paging Paging `json:"paging"`
}

// PublishResponse é a resposta da publicação em feed, fotos ou vídeos
type PublishResponse struct {
	ID     string `json:"id"`
	PostID string `json:"post_id,omitempty"`
}

// DeleteResponse é a resposta de operações DELETE da Graph API
type DeleteResponse struct {
	Success bool `json:"success"`
}
