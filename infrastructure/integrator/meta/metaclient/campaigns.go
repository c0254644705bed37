package metaclient

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/internal/domain"
)

const campaignListFields = "id,name,objective,status,created_time,updated_time," +
	"daily_budget,lifetime_budget,insights{spend,impressions,clicks,ctr,cpc,cpm}"

// CreateCampaign cria uma campanha em act_<id>/campaigns. Status padrão PAUSED;
// special_ad_categories é serializado como string JSON, mesmo quando vazio.
func (c *MetaClient) CreateCampaign(req *domain.CreateCampaignRequest) (*metadomain.CreateResult, error) {
	status := req.Status
	if status == "" {
		status = DefaultStatus
	}

	categories := req.SpecialAdCategories
	if categories == nil {
		categories = []string{}
	}

	categoriesJSON, err := json.Marshal(categories)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("name", req.Name)
	params.Add("objective", req.Objective)
	params.Add("status", status)
	params.Add("special_ad_categories", string(categoriesJSON))

	body, err := c.call(OpCreateCampaign, map[string]string{"account_id": req.AccountID}, params, req.AccessToken)
	if err != nil {
		return nil, err
	}

	return decodeCreateResult(body)
}

// UpdateCampaign altera nome, status ou objetivo de uma campanha existente. Os
// parâmetros vão no corpo form-urlencoded, exigência da Graph API para updates.
func (c *MetaClient) UpdateCampaign(req *domain.UpdateCampaignRequest) (*metadomain.CreateResult, error) {
	params := url.Values{}
	if req.Name != "" {
		params.Add("name", req.Name)
	}
	if req.Status != "" {
		params.Add("status", req.Status)
	}
	if req.Objective != "" {
		params.Add("objective", req.Objective)
	}

	body, err := c.call(OpUpdateCampaign, map[string]string{"campaign_id": req.CampaignID}, params, req.AccessToken)
	if err != nil {
		return nil, err
	}

	return decodeCreateResult(body)
}

// DeleteCampaign exclui uma campanha pelo id
func (c *MetaClient) DeleteCampaign(campaignID, accessToken string) (*metadomain.DeleteResponse, error) {
	body, err := c.call(OpDeleteCampaign, map[string]string{"campaign_id": campaignID}, nil, accessToken)
	if err != nil {
		return nil, err
	}

	var response metadomain.DeleteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}

// ListCampaigns lista as campanhas da conta com insights agregados
func (c *MetaClient) ListCampaigns(accountID, accessToken string, limit int) (*metadomain.CampaignList, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	params := url.Values{}
	params.Add("fields", campaignListFields)
	params.Add("limit", strconv.Itoa(limit))

	body, err := c.call(OpListCampaigns, map[string]string{"account_id": accountID}, params, accessToken)
	if err != nil {
		return nil, err
	}

	var response metadomain.CampaignList
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}

func decodeCreateResult(body []byte) (*metadomain.CreateResult, error) {
	var response metadomain.CreateResult
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
