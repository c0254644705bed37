package domain

// PublishRequest publica no feed de uma página. Sem mediaUrl o post é de texto;
// com mediaUrl o tipo decide entre foto e vídeo.
type PublishRequest struct {
	PageID    string `json:"pageId"`
	PageToken string `json:"pageToken"`
	Message   string `json:"message,omitempty"`
	MediaURL  string `json:"mediaUrl,omitempty"`
	Type      string `json:"type,omitempty"`
}

type FetchPostsRequest struct {
	PageID    string `json:"pageId"`
	PageToken string `json:"pageToken"`
	Limit     int    `json:"limit,omitempty"`
}

type DeletePostRequest struct {
	PostID    string `json:"postId"`
	PageToken string `json:"pageToken"`
}
