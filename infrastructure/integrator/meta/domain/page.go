package metadomain

import "encoding/json"

func jsonUnmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Page é uma página retornada por /me/accounts, com token escopado à página
type Page struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

type PageList struct {
	Data []Page `json:"data"`
}

// TokenResponse é a resposta da troca de code por access_token no OAuth
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
