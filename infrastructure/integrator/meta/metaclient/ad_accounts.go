package metaclient

import (
	"encoding/json"
	"errors"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
)

// GetAdAccounts busca as contas de anúncios do usuário em /me/adaccounts
func (c *MetaClient) GetAdAccounts(accessToken string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,name,account_id,account_status,currency,timezone_name")

	body, err := c.call(OpAdAccounts, nil, params, accessToken)
	if err != nil {
		return nil, err
	}

	var response metadomain.AdAccountList
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}

// GetAdAccountOverview busca os campos de status e faturamento de uma conta de
// anúncios, insumo da checagem de saldo
func (c *MetaClient) GetAdAccountOverview(accountID, accessToken string) (*metadomain.AdAccountOverview, error) {
	params := url.Values{}
	params.Add("fields", "account_status,disable_reason,balance,amount_spent,spend_cap,funding_source_details,min_daily_budget")

	body, err := c.call(OpAdAccountOverview, map[string]string{"account_id": accountID}, params, accessToken)
	if err != nil {
		return nil, err
	}

	var response metadomain.AdAccountOverview
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
