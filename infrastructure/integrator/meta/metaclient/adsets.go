package metaclient

import (
	"encoding/json"
	"net/url"
	"strconv"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/internal/domain"
	"github.com/adpilot/fb-campaign-api/pkg/utils"
)

// CreateAdSet cria um conjunto de anúncios vinculado a uma campanha. Orçamentos
// e lance são convertidos de unidades monetárias para centavos inteiros, e o
// targeting é serializado como string JSON.
func (c *MetaClient) CreateAdSet(req *domain.CreateAdSetRequest) (*metadomain.CreateResult, error) {
	status := req.Status
	if status == "" {
		status = DefaultStatus
	}

	params := url.Values{}
	params.Add("name", req.Name)
	params.Add("campaign_id", req.CampaignID)
	params.Add("billing_event", req.BillingEvent)
	params.Add("optimization_goal", req.OptimizationGoal)
	params.Add("status", status)

	if req.Targeting != nil {
		targetingJSON, err := json.Marshal(req.Targeting)
		if err != nil {
			return nil, err
		}
		params.Add("targeting", string(targetingJSON))
	}

	if req.DailyBudget != nil {
		params.Add("daily_budget", strconv.FormatInt(utils.CurrencyToCents(*req.DailyBudget), 10))
	}
	if req.LifetimeBudget != nil {
		params.Add("lifetime_budget", strconv.FormatInt(utils.CurrencyToCents(*req.LifetimeBudget), 10))
	}
	if req.BidAmount != nil {
		params.Add("bid_amount", strconv.FormatInt(utils.CurrencyToCents(*req.BidAmount), 10))
	}

	if req.StartTime != "" {
		params.Add("start_time", req.StartTime)
	}
	if req.EndTime != "" {
		params.Add("end_time", req.EndTime)
	}

	body, err := c.call(OpCreateAdSet, map[string]string{"account_id": req.AccountID}, params, req.AccessToken)
	if err != nil {
		return nil, err
	}

	return decodeCreateResult(body)
}
