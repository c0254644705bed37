package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/internal/domain"
	"github.com/adpilot/fb-campaign-api/internal/usecases/advertising"
	"github.com/adpilot/fb-campaign-api/internal/validation"
	"github.com/adpilot/fb-campaign-api/pkg/apiErrors"
)

// GetAdAccounts lista as contas de anúncios do token informado
func GetAdAccounts(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AdAccountsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "accessToken", Value: req.AccessToken},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.ListAdAccounts(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}

// CheckAccountBalance aplica a política de elegibilidade sobre os campos de
// faturamento da conta. Falha na consulta responde canRunAds false junto do erro.
func CheckAccountBalance(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CheckBalanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "accountId", Value: req.AccountID},
			validation.Field{Name: "accessToken", Value: req.AccessToken},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.CheckAccountBalance(&req)
		if err != nil {
			writeBalanceError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}

func writeBalanceError(w http.ResponseWriter, err error) {
	payload := map[string]any{
		"canRunAds": false,
	}

	var graphErr *metadomain.GraphError
	if errors.As(err, &graphErr) {
		payload["error"] = graphErr.Error()
		if details := graphErr.Details(); details != nil {
			payload["details"] = details
		}
	} else {
		payload["error"] = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(payload)
}

func CreateCampaign(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "accountId", Value: req.AccountID},
			validation.Field{Name: "accessToken", Value: req.AccessToken},
			validation.Field{Name: "name", Value: req.Name},
			validation.Field{Name: "objective", Value: req.Objective},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.CreateCampaign(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}

func UpdateCampaign(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "accountId", Value: req.AccountID},
			validation.Field{Name: "accessToken", Value: req.AccessToken},
			validation.Field{Name: "campaignId", Value: req.CampaignID},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.UpdateCampaign(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}

func DeleteCampaign(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.DeleteCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "accountId", Value: req.AccountID},
			validation.Field{Name: "accessToken", Value: req.AccessToken},
			validation.Field{Name: "campaignId", Value: req.CampaignID},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.DeleteCampaign(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}

func ListCampaigns(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ListCampaignsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "accountId", Value: req.AccountID},
			validation.Field{Name: "accessToken", Value: req.AccessToken},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.ListCampaigns(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}

// CreateAdSet valida também a regra de orçamento: pelo menos um entre
// dailyBudget e lifetimeBudget
func CreateAdSet(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateAdSetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "accountId", Value: req.AccountID},
			validation.Field{Name: "accessToken", Value: req.AccessToken},
			validation.Field{Name: "campaignId", Value: req.CampaignID},
			validation.Field{Name: "name", Value: req.Name},
			validation.Field{Name: "billingEvent", Value: req.BillingEvent},
			validation.Field{Name: "optimizationGoal", Value: req.OptimizationGoal},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		if !validation.Truthy(req.DailyBudget) && !validation.Truthy(req.LifetimeBudget) {
			apiErrors.WriteValidationError(w, "Either daily budget or lifetime budget must be specified")
			return
		}

		resp, err := service.CreateAdSet(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}

func CreateCreative(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCreativeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "accountId", Value: req.AccountID},
			validation.Field{Name: "accessToken", Value: req.AccessToken},
			validation.Field{Name: "name", Value: req.Name},
			validation.Field{Name: "pageId", Value: req.PageID},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.CreateCreative(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}

func CreateAd(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateAdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "accountId", Value: req.AccountID},
			validation.Field{Name: "accessToken", Value: req.AccessToken},
			validation.Field{Name: "name", Value: req.Name},
			validation.Field{Name: "adsetId", Value: req.AdsetID},
			validation.Field{Name: "creativeId", Value: req.CreativeID},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.CreateAd(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}
