package metaclient

import (
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
)

// ExchangeCodeForToken troca o code do callback OAuth por um token de usuário
func (c *MetaClient) ExchangeCodeForToken(code string) (string, error) {
	params := url.Values{}
	params.Add("client_id", c.Cfg.Meta.AppID)
	params.Add("client_secret", c.Cfg.Meta.AppSecret)
	params.Add("redirect_uri", c.Cfg.Meta.RedirectURI)
	params.Add("code", code)

	body, err := c.call(OpOAuthAccessToken, nil, params, "")
	if err != nil {
		return "", err
	}

	var response metadomain.TokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	return response.AccessToken, nil
}

// GetUserPages busca as páginas gerenciadas pelo usuário, com seus tokens de
// página, em /me/accounts
func (c *MetaClient) GetUserPages(userToken string) ([]metadomain.Page, error) {
	body, err := c.call(OpUserPages, nil, nil, userToken)
	if err != nil {
		return nil, err
	}

	var response metadomain.PageList
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
