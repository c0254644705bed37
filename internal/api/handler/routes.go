package handler

import (
	"net/http"

	"github.com/adpilot/fb-campaign-api/internal/api/handler/router"
	"github.com/adpilot/fb-campaign-api/internal/session"
	"github.com/adpilot/fb-campaign-api/internal/usecases/advertising"
	"github.com/adpilot/fb-campaign-api/internal/usecases/authenticating"
	"github.com/adpilot/fb-campaign-api/internal/usecases/publishing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, codec *session.Codec) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/login",
			Method:  http.MethodGet,
			Handler: Login(service),
		},
		{
			Path:    "/api/auth/callback",
			Method:  http.MethodGet,
			Handler: Callback(service, codec),
		},
		{
			Path:    "/api/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(codec),
		},
		{
			Path:    "/api/facebook/campaigns/dev-token",
			Method:  http.MethodGet,
			Handler: DevToken(service),
		},
	}
}

func Posts(service publishing.Publisher) []router.Route {
	return []router.Route{
		{
			Path:    "/api/facebook/publish",
			Method:  http.MethodPost,
			Handler: PublishPost(service),
		},
		{
			Path:    "/api/facebook/posts",
			Method:  http.MethodPost,
			Handler: ListPosts(service),
		},
		{
			Path:    "/api/facebook/delete-post",
			Method:  http.MethodDelete,
			Handler: DeletePost(service),
		},
	}
}

func Campaigns(service advertising.Advertiser) []router.Route {
	return []router.Route{
		{
			Path:    "/api/facebook/campaigns/get-ad-accounts",
			Method:  http.MethodPost,
			Handler: GetAdAccounts(service),
		},
		{
			Path:    "/api/facebook/campaigns/check-account-balance",
			Method:  http.MethodPost,
			Handler: CheckAccountBalance(service),
		},
		{
			Path:    "/api/facebook/campaigns/create-campaign",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/api/facebook/campaigns/update-campaign",
			Method:  http.MethodPost,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/api/facebook/campaigns/delete-campaign",
			Method:  http.MethodPost,
			Handler: DeleteCampaign(service),
		},
		{
			Path:    "/api/facebook/campaigns/list-campaigns",
			Method:  http.MethodPost,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/api/facebook/campaigns/create-adset",
			Method:  http.MethodPost,
			Handler: CreateAdSet(service),
		},
		{
			Path:    "/api/facebook/campaigns/create-creative",
			Method:  http.MethodPost,
			Handler: CreateCreative(service),
		},
		{
			Path:    "/api/facebook/campaigns/create-ad",
			Method:  http.MethodPost,
			Handler: CreateAd(service),
		},
	}
}
