package metaclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/internal/config"
	"github.com/adpilot/fb-campaign-api/internal/domain"
)

type Client interface {
	ExchangeCodeForToken(code string) (string, error)
	GetUserPages(userToken string) ([]metadomain.Page, error)

	PublishTextPost(pageID, pageToken, message string) (*metadomain.PublishResponse, error)
	PublishMediaPost(req *domain.PublishRequest) (*metadomain.PublishResponse, error)
	ListPosts(pageID, pageToken string, limit int) (*metadomain.PostList, error)
	DeletePost(postID, pageToken string) (*metadomain.DeleteResponse, error)

	GetAdAccounts(accessToken string) ([]metadomain.AdAccount, error)
	GetAdAccountOverview(accountID, accessToken string) (*metadomain.AdAccountOverview, error)

	CreateCampaign(req *domain.CreateCampaignRequest) (*metadomain.CreateResult, error)
	UpdateCampaign(req *domain.UpdateCampaignRequest) (*metadomain.CreateResult, error)
	DeleteCampaign(campaignID, accessToken string) (*metadomain.DeleteResponse, error)
	ListCampaigns(accountID, accessToken string, limit int) (*metadomain.CampaignList, error)

	CreateAdSet(req *domain.CreateAdSetRequest) (*metadomain.CreateResult, error)
	CreateCreative(req *domain.CreateCreativeRequest) (*metadomain.CreateResult, error)
	CreateAd(req *domain.CreateAdRequest) (*metadomain.CreateResult, error)
}

// Valores aplicados quando a requisição não informa
const (
	DefaultStatus    = "PAUSED" // nunca ativar entidades de anúncio na criação
	DefaultListLimit = 25
)

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Meta.HTTPTimeout,
		},
	}
}

// call monta e executa a chamada conforme a entrada do catálogo. O access_token
// sempre vai como parâmetro, nunca como header.
func (c *MetaClient) call(op Operation, args map[string]string, params url.Values, accessToken string) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	if accessToken != "" {
		params.Set("access_token", accessToken)
	}

	endpoint := op.Endpoint(c.Cfg.Meta.BaseURL, c.Cfg.Meta.Version, args)

	var req *http.Request
	var err error

	if op.Encoding == EncodeForm {
		req, err = http.NewRequest(op.Method, endpoint, strings.NewReader(params.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req, err = http.NewRequest(op.Method, endpoint+"?"+params.Encode(), nil)
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"operation": op.Name,
		}).WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(op, resp)
}

// HandleResponse lê o corpo da resposta e normaliza falhas em *GraphError,
// extraindo error.message quando a Graph API o fornece
func (c *MetaClient) HandleResponse(op Operation, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	graphErr := &metadomain.GraphError{
		StatusCode: resp.StatusCode,
		Raw:        body,
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		graphErr.Message = errResp.Error.Message
	}

	logrus.WithFields(logrus.Fields{
		"operation":   op.Name,
		"status_code": resp.StatusCode,
		"message":     graphErr.Message,
	}).Error("Graph API retornou erro")

	return nil, graphErr
}
