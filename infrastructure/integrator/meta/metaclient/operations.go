package metaclient

import (
	"fmt"
	"net/http"
	"strings"
)

// Encoding define como os parâmetros da operação são transmitidos
type Encoding int

const (
	// EncodeQuery envia os parâmetros na query string da URL
	EncodeQuery Encoding = iota
	// EncodeForm envia os parâmetros como corpo application/x-www-form-urlencoded
	EncodeForm
)

// Operation é uma entrada do catálogo de operações da Graph API: verbo, template
// de endpoint e modo de codificação dos parâmetros. O token de acesso é sempre
// injetado como parâmetro pelo cliente, nunca como header.
type Operation struct {
	Name     string
	Method   string
	Path     string // template com placeholders, ex: act_{account_id}/campaigns
	Encoding Encoding
	Version  string // sobrescreve a versão configurada quando preenchido
}

// Catálogo fixo de operações suportadas
var (
	OpOAuthAccessToken = Operation{Name: "oauth-access-token", Method: http.MethodGet, Path: "oauth/access_token"}
	OpUserPages        = Operation{Name: "user-pages", Method: http.MethodGet, Path: "me/accounts"}

	OpPublishFeed  = Operation{Name: "publish-feed", Method: http.MethodPost, Path: "{page_id}/feed"}
	OpPublishPhoto = Operation{Name: "publish-photo", Method: http.MethodPost, Path: "{page_id}/photos"}
	OpPublishVideo = Operation{Name: "publish-video", Method: http.MethodPost, Path: "{page_id}/videos"}
	OpListPosts    = Operation{Name: "list-posts", Method: http.MethodGet, Path: "{page_id}/posts"}
	OpDeletePost   = Operation{Name: "delete-post", Method: http.MethodDelete, Path: "{post_id}"}

	OpAdAccounts        = Operation{Name: "ad-accounts", Method: http.MethodGet, Path: "me/adaccounts"}
	OpAdAccountOverview = Operation{Name: "ad-account-overview", Method: http.MethodGet, Path: "act_{account_id}"}

	OpCreateCampaign = Operation{Name: "create-campaign", Method: http.MethodPost, Path: "act_{account_id}/campaigns", Encoding: EncodeForm}
	OpUpdateCampaign = Operation{Name: "update-campaign", Method: http.MethodPost, Path: "{campaign_id}", Encoding: EncodeForm}
	OpDeleteCampaign = Operation{Name: "delete-campaign", Method: http.MethodDelete, Path: "{campaign_id}"}
	OpListCampaigns  = Operation{Name: "list-campaigns", Method: http.MethodGet, Path: "act_{account_id}/campaigns"}

	OpCreateAdSet    = Operation{Name: "create-adset", Method: http.MethodPost, Path: "act_{account_id}/adsets", Encoding: EncodeForm}
	OpCreateCreative = Operation{Name: "create-creative", Method: http.MethodPost, Path: "act_{account_id}/adcreatives"}
	OpCreateAd       = Operation{Name: "create-ad", Method: http.MethodPost, Path: "act_{account_id}/ads"}
)

// Endpoint monta a URL final substituindo os placeholders do template
func (op Operation) Endpoint(baseURL, version string, args map[string]string) string {
	if op.Version != "" {
		version = op.Version
	}

	path := op.Path
	for key, value := range args {
		path = strings.ReplaceAll(path, "{"+key+"}", value)
	}

	return fmt.Sprintf("%s/%s/%s", baseURL, version, path)
}
