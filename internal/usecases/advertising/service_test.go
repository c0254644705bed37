package advertising

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/mocks"
	"github.com/adpilot/fb-campaign-api/internal/domain"
	"github.com/adpilot/fb-campaign-api/internal/usecases/auditing"
)

func newTestService(t *testing.T) (*mocks.MockClient, Advertiser) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockClient(ctrl)
	return mockClient, NewService(mockClient, auditing.NewRecorder(nil))
}

func TestListAdAccounts(t *testing.T) {
	mockClient, service := newTestService(t)

	mockClient.EXPECT().
		GetAdAccounts("token").
		Return([]metadomain.AdAccount{
			{ID: "act_123", AccountID: "123", Name: "Conta Principal", Currency: "BRL"},
		}, nil)

	result, err := service.ListAdAccounts(&domain.AdAccountsRequest{AccessToken: "token"})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.AdAccounts, 1)
	assert.Equal(t, "act_123", result.AdAccounts[0].ID)
}

func TestCreateCampaign(t *testing.T) {
	mockClient, service := newTestService(t)

	req := &domain.CreateCampaignRequest{
		AccountID:   "123",
		AccessToken: "token",
		Name:        "Campanha de Verão",
		Objective:   "OUTCOME_TRAFFIC",
	}

	mockClient.EXPECT().
		CreateCampaign(req).
		Return(&metadomain.CreateResult{ID: "campaign_1"}, nil)

	result, err := service.CreateCampaign(req)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "campaign_1", result.Campaign.ID)
	assert.Equal(t, "Campaign created successfully", result.Message)
}

func TestUpdateCampaign(t *testing.T) {
	mockClient, service := newTestService(t)

	req := &domain.UpdateCampaignRequest{
		AccountID:   "123",
		AccessToken: "token",
		CampaignID:  "campaign_1",
		Status:      "ACTIVE",
	}

	mockClient.EXPECT().
		UpdateCampaign(req).
		Return(&metadomain.CreateResult{Success: true}, nil)

	result, err := service.UpdateCampaign(req)

	assert.NoError(t, err)
	assert.Equal(t, "Campaign updated successfully", result.Message)
}

func TestDeleteCampaign(t *testing.T) {
	mockClient, service := newTestService(t)

	mockClient.EXPECT().
		DeleteCampaign("campaign_1", "token").
		Return(&metadomain.DeleteResponse{Success: true}, nil)

	result, err := service.DeleteCampaign(&domain.DeleteCampaignRequest{
		AccountID:   "123",
		AccessToken: "token",
		CampaignID:  "campaign_1",
	})

	assert.NoError(t, err)
	assert.True(t, result.Result.Success)
	assert.Equal(t, "Campaign deleted successfully", result.Message)
}

func TestListCampaigns(t *testing.T) {
	mockClient, service := newTestService(t)

	mockClient.EXPECT().
		ListCampaigns("123", "token", 10).
		Return(&metadomain.CampaignList{
			Data: []metadomain.Campaign{
				{ID: "campaign_1", Name: "Campanha de Verão", Status: "PAUSED"},
			},
			Paging: metadomain.Paging{Cursors: metadomain.Cursors{After: "abc"}},
		}, nil)

	result, err := service.ListCampaigns(&domain.ListCampaignsRequest{
		AccountID:   "123",
		AccessToken: "token",
		Limit:       10,
	})

	assert.NoError(t, err)
	assert.Len(t, result.Campaigns, 1)
	assert.Equal(t, "abc", result.Paging.Cursors.After)
}

func TestEncadeamentoDoAssistente(t *testing.T) {
	// Campanha → AdSet → Criativo → Anúncio: cada etapa repassa o id da anterior
	mockClient, service := newTestService(t)

	daily := 50.0
	campaignReq := &domain.CreateCampaignRequest{
		AccountID:   "123",
		AccessToken: "token",
		Name:        "Campanha",
		Objective:   "OUTCOME_TRAFFIC",
	}

	mockClient.EXPECT().CreateCampaign(campaignReq).Return(&metadomain.CreateResult{ID: "campaign_1"}, nil)

	campaign, err := service.CreateCampaign(campaignReq)
	assert.NoError(t, err)

	adsetReq := &domain.CreateAdSetRequest{
		AccountID:        "123",
		AccessToken:      "token",
		CampaignID:       campaign.Campaign.ID,
		Name:             "Conjunto",
		DailyBudget:      &daily,
		BillingEvent:     "IMPRESSIONS",
		OptimizationGoal: "LINK_CLICKS",
	}

	mockClient.EXPECT().CreateAdSet(adsetReq).Return(&metadomain.CreateResult{ID: "adset_1"}, nil)

	adset, err := service.CreateAdSet(adsetReq)
	assert.NoError(t, err)
	assert.Equal(t, "Ad Set created successfully", adset.Message)

	creativeReq := &domain.CreateCreativeRequest{
		AccountID:   "123",
		AccessToken: "token",
		Name:        "Criativo",
		PageID:      "page_1",
		Body:        "Texto do anúncio",
	}

	mockClient.EXPECT().CreateCreative(creativeReq).Return(&metadomain.CreateResult{ID: "creative_1"}, nil)

	creative, err := service.CreateCreative(creativeReq)
	assert.NoError(t, err)
	assert.Equal(t, "Ad Creative created successfully", creative.Message)

	adReq := &domain.CreateAdRequest{
		AccountID:   "123",
		AccessToken: "token",
		Name:        "Anúncio",
		AdsetID:     adset.AdSet.ID,
		CreativeID:  creative.Creative.ID,
	}

	mockClient.EXPECT().CreateAd(adReq).Return(&metadomain.CreateResult{ID: "ad_1"}, nil)

	ad, err := service.CreateAd(adReq)
	assert.NoError(t, err)
	assert.Equal(t, "ad_1", ad.Ad.ID)
	assert.Equal(t, "Ad created successfully", ad.Message)
}
