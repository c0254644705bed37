// Package advertising cobre a Marketing API: contas de anúncios, checagem de
// saldo, CRUD de campanhas e o encadeamento campanha → conjunto → criativo →
// anúncio. Cada operação dispara exatamente uma chamada à Graph API; o
// encadeamento do assistente é responsabilidade do cliente, que repassa os ids
// retornados em cada etapa.
package advertising

import (
	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpilot/fb-campaign-api/internal/domain"
	"github.com/adpilot/fb-campaign-api/internal/usecases/auditing"
)

type AdAccountsResponse struct {
	Success    bool                   `json:"success"`
	AdAccounts []metadomain.AdAccount `json:"adAccounts"`
}

type CampaignResponse struct {
	Success  bool                     `json:"success"`
	Campaign *metadomain.CreateResult `json:"campaign"`
	Message  string                   `json:"message"`
}

type DeleteCampaignResponse struct {
	Success bool                       `json:"success"`
	Result  *metadomain.DeleteResponse `json:"result"`
	Message string                     `json:"message"`
}

type CampaignsResponse struct {
	Success   bool                  `json:"success"`
	Campaigns []metadomain.Campaign `json:"campaigns"`
	Paging    metadomain.Paging     `json:"paging"`
}

type AdSetResponse struct {
	Success bool                     `json:"success"`
	AdSet   *metadomain.CreateResult `json:"adset"`
	Message string                   `json:"message"`
}

type CreativeResponse struct {
	Success  bool                     `json:"success"`
	Creative *metadomain.CreateResult `json:"creative"`
	Message  string                   `json:"message"`
}

type AdResponse struct {
	Success bool                     `json:"success"`
	Ad      *metadomain.CreateResult `json:"ad"`
	Message string                   `json:"message"`
}

type Advertiser interface {
	ListAdAccounts(req *domain.AdAccountsRequest) (*AdAccountsResponse, error)
	CheckAccountBalance(req *domain.CheckBalanceRequest) (*BalanceResponse, error)

	CreateCampaign(req *domain.CreateCampaignRequest) (*CampaignResponse, error)
	UpdateCampaign(req *domain.UpdateCampaignRequest) (*CampaignResponse, error)
	DeleteCampaign(req *domain.DeleteCampaignRequest) (*DeleteCampaignResponse, error)
	ListCampaigns(req *domain.ListCampaignsRequest) (*CampaignsResponse, error)

	CreateAdSet(req *domain.CreateAdSetRequest) (*AdSetResponse, error)
	CreateCreative(req *domain.CreateCreativeRequest) (*CreativeResponse, error)
	CreateAd(req *domain.CreateAdRequest) (*AdResponse, error)
}

type Service struct {
	client metaclient.Client
	audit  *auditing.Recorder
}

func NewService(client metaclient.Client, audit *auditing.Recorder) Advertiser {
	return &Service{
		client: client,
		audit:  audit,
	}
}

// ListAdAccounts busca as contas de anúncios acessíveis pelo token do usuário
func (s *Service) ListAdAccounts(req *domain.AdAccountsRequest) (*AdAccountsResponse, error) {
	accounts, err := s.client.GetAdAccounts(req.AccessToken)
	s.audit.Record(metaclient.OpAdAccounts.Name, "", err)
	if err != nil {
		return nil, err
	}

	return &AdAccountsResponse{
		Success:    true,
		AdAccounts: accounts,
	}, nil
}

func (s *Service) CreateCampaign(req *domain.CreateCampaignRequest) (*CampaignResponse, error) {
	result, err := s.client.CreateCampaign(req)
	s.audit.Record(metaclient.OpCreateCampaign.Name, req.AccountID, err)
	if err != nil {
		return nil, err
	}

	return &CampaignResponse{
		Success:  true,
		Campaign: result,
		Message:  "Campaign created successfully",
	}, nil
}

// UpdateCampaign altera nome, status ou objetivo; campos vazios são omitidos
// da chamada
func (s *Service) UpdateCampaign(req *domain.UpdateCampaignRequest) (*CampaignResponse, error) {
	result, err := s.client.UpdateCampaign(req)
	s.audit.Record(metaclient.OpUpdateCampaign.Name, req.CampaignID, err)
	if err != nil {
		return nil, err
	}

	return &CampaignResponse{
		Success:  true,
		Campaign: result,
		Message:  "Campaign updated successfully",
	}, nil
}

func (s *Service) DeleteCampaign(req *domain.DeleteCampaignRequest) (*DeleteCampaignResponse, error) {
	result, err := s.client.DeleteCampaign(req.CampaignID, req.AccessToken)
	s.audit.Record(metaclient.OpDeleteCampaign.Name, req.CampaignID, err)
	if err != nil {
		return nil, err
	}

	return &DeleteCampaignResponse{
		Success: true,
		Result:  result,
		Message: "Campaign deleted successfully",
	}, nil
}

// ListCampaigns busca as campanhas da conta com métricas de insights
func (s *Service) ListCampaigns(req *domain.ListCampaignsRequest) (*CampaignsResponse, error) {
	resp, err := s.client.ListCampaigns(req.AccountID, req.AccessToken, req.Limit)
	s.audit.Record(metaclient.OpListCampaigns.Name, req.AccountID, err)
	if err != nil {
		return nil, err
	}

	return &CampaignsResponse{
		Success:   true,
		Campaigns: resp.Data,
		Paging:    resp.Paging,
	}, nil
}

func (s *Service) CreateAdSet(req *domain.CreateAdSetRequest) (*AdSetResponse, error) {
	result, err := s.client.CreateAdSet(req)
	s.audit.Record(metaclient.OpCreateAdSet.Name, req.AccountID, err)
	if err != nil {
		return nil, err
	}

	return &AdSetResponse{
		Success: true,
		AdSet:   result,
		Message: "Ad Set created successfully",
	}, nil
}

func (s *Service) CreateCreative(req *domain.CreateCreativeRequest) (*CreativeResponse, error) {
	result, err := s.client.CreateCreative(req)
	s.audit.Record(metaclient.OpCreateCreative.Name, req.AccountID, err)
	if err != nil {
		return nil, err
	}

	return &CreativeResponse{
		Success:  true,
		Creative: result,
		Message:  "Ad Creative created successfully",
	}, nil
}

func (s *Service) CreateAd(req *domain.CreateAdRequest) (*AdResponse, error) {
	result, err := s.client.CreateAd(req)
	s.audit.Record(metaclient.OpCreateAd.Name, req.AccountID, err)
	if err != nil {
		return nil, err
	}

	return &AdResponse{
		Success: true,
		Ad:      result,
		Message: "Ad created successfully",
	}, nil
}
