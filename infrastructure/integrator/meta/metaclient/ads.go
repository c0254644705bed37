package metaclient

import (
	"encoding/json"
	"net/url"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/internal/domain"
)

// CreateAd cria o anúncio final referenciando o ad set e o criativo já
// materializados pelo Facebook. O criativo vai como {"creative_id": ...}
// serializado em string JSON.
func (c *MetaClient) CreateAd(req *domain.CreateAdRequest) (*metadomain.CreateResult, error) {
	status := req.Status
	if status == "" {
		status = DefaultStatus
	}

	creativeJSON, err := json.Marshal(map[string]string{"creative_id": req.CreativeID})
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("name", req.Name)
	params.Add("adset_id", req.AdsetID)
	params.Add("creative", string(creativeJSON))
	params.Add("status", status)

	body, err := c.call(OpCreateAd, map[string]string{"account_id": req.AccountID}, params, req.AccessToken)
	if err != nil {
		return nil, err
	}

	return decodeCreateResult(body)
}
