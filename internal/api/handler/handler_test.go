package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/mocks"
	"github.com/adpilot/fb-campaign-api/internal/api/handler/router"
	"github.com/adpilot/fb-campaign-api/internal/config"
	"github.com/adpilot/fb-campaign-api/internal/session"
	"github.com/adpilot/fb-campaign-api/internal/usecases/advertising"
	"github.com/adpilot/fb-campaign-api/internal/usecases/auditing"
	"github.com/adpilot/fb-campaign-api/internal/usecases/authenticating"
	"github.com/adpilot/fb-campaign-api/internal/usecases/publishing"
)

func testRouter(t *testing.T) (*mocks.MockClient, http.Handler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockClient(ctrl)

	cfg := &config.Config{
		App: config.App{Env: "development"},
		Meta: config.Meta{
			AppID:           "app_id",
			OAuthDialogURL:  "https://www.facebook.com",
			Version:         "v22.0",
			RedirectURI:     "http://localhost:8000/api/auth/callback",
			SystemUserToken: "system_token",
		},
		Session: config.Session{CookieName: "fbData", MaxAgeSeconds: 86400},
	}

	recorder := auditing.NewRecorder(nil)
	codec := session.NewCodec(cfg.Session)
	authenticator := authenticating.NewService(cfg, mockClient)
	publisher := publishing.NewService(mockClient, recorder)
	advertiser := advertising.NewService(mockClient, recorder)

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Authentication(authenticator, codec)...),
		router.WithRoutes(Posts(publisher)...),
		router.WithRoutes(Campaigns(advertiser)...),
	)

	return mockClient, rt
}

func TestPublishPost_CamposObrigatoriosAusentes(t *testing.T) {
	_, rt := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/facebook/publish", strings.NewReader(`{"pageId":"page_1"}`))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error          string          `json:"error"`
		RequiredFields map[string]bool `json:"requiredFields"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Missing required fields", body.Error)
	assert.Equal(t, map[string]bool{"pageId": true, "pageToken": false}, body.RequiredFields)
}

func TestPublishPost_Sucesso(t *testing.T) {
	mockClient, rt := testRouter(t)

	mockClient.EXPECT().
		PublishTextPost("page_1", "page_token", "Olá").
		Return(&metadomain.PublishResponse{ID: "page_1_post_1"}, nil)

	payload := `{"pageId":"page_1","pageToken":"page_token","message":"Olá"}`
	req := httptest.NewRequest(http.MethodPost, "/api/facebook/publish", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "page_1_post_1", body.Data.ID)
}

func TestVerboErrado(t *testing.T) {
	_, rt := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/facebook/publish", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Method not allowed", body["error"])
}

func TestCreateAdSet_RegraDeOrcamento(t *testing.T) {
	_, rt := testRouter(t)

	payload := `{
		"accountId": "123",
		"accessToken": "token",
		"campaignId": "campaign_1",
		"name": "Conjunto",
		"billingEvent": "IMPRESSIONS",
		"optimizationGoal": "LINK_CLICKS"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/facebook/campaigns/create-adset", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Either daily budget or lifetime budget must be specified", body["error"])
}

func TestCheckAccountBalance_ErroNaConsulta(t *testing.T) {
	mockClient, rt := testRouter(t)

	mockClient.EXPECT().
		GetAdAccountOverview("123", "token").
		Return(nil, &metadomain.GraphError{
			StatusCode: 400,
			Message:    "Invalid OAuth access token",
			Raw:        []byte(`{"error":{"message":"Invalid OAuth access token"}}`),
		})

	payload := `{"accountId":"123","accessToken":"token"}`
	req := httptest.NewRequest(http.MethodPost, "/api/facebook/campaigns/check-account-balance", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["canRunAds"])
	assert.Equal(t, "Invalid OAuth access token", body["error"])
	assert.NotNil(t, body["details"])
}

func TestLogin_RedirecionaParaODialogoOAuth(t *testing.T) {
	_, rt := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get("Location")
	assert.Contains(t, location, "https://www.facebook.com/v22.0/dialog/oauth")
	assert.Contains(t, location, "client_id=app_id")
	assert.Contains(t, location, "pages_manage_posts")
	assert.Contains(t, location, "ads_management")
}

func TestCallback_CriaSessaoERedireciona(t *testing.T) {
	mockClient, rt := testRouter(t)

	mockClient.EXPECT().
		ExchangeCodeForToken("auth_code").
		Return("user_token", nil)
	mockClient.EXPECT().
		GetUserPages("user_token").
		Return([]metadomain.Page{
			{ID: "page_1", Name: "Minha Página", AccessToken: "page_token"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback?code=auth_code", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "fbData", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.Equal(t, 86400, cookies[0].MaxAge)
}

func TestCallback_SemCodeRedirecionaSilenciosamente(t *testing.T) {
	_, rt := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogout_ExpiraOCookie(t *testing.T) {
	_, rt := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Logged out successfully", body["message"])

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "fbData", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Equal(t, 1970, cookies[0].Expires.Year())
}

func TestDevToken_ModoDesenvolvimento(t *testing.T) {
	_, rt := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/facebook/campaigns/dev-token", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "system_token", body["token"])
	assert.Equal(t, true, body["isDevelopment"])
}

func TestDevToken_ForaDeDesenvolvimento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	cfg := &config.Config{App: config.App{Env: "production"}}
	authenticator := authenticating.NewService(cfg, mockClient)

	rec := httptest.NewRecorder()
	DevToken(authenticator).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/facebook/campaigns/dev-token", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "This endpoint is only available in development mode", body["error"])
	assert.Equal(t, true, body["production"])
}

func TestGetAdAccounts(t *testing.T) {
	mockClient, rt := testRouter(t)

	mockClient.EXPECT().
		GetAdAccounts("token").
		Return([]metadomain.AdAccount{
			{ID: "act_123", AccountID: "123", Name: "Conta Principal"},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/facebook/campaigns/get-ad-accounts", strings.NewReader(`{"accessToken":"token"}`))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success    bool `json:"success"`
		AdAccounts []struct {
			ID string `json:"id"`
		} `json:"adAccounts"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.AdAccounts, 1)
	assert.Equal(t, "act_123", body.AdAccounts[0].ID)
}

func TestDeletePost_VerboDelete(t *testing.T) {
	mockClient, rt := testRouter(t)

	mockClient.EXPECT().
		DeletePost("post_1", "page_token").
		Return(&metadomain.DeleteResponse{Success: true}, nil)

	payload := `{"postId":"post_1","pageToken":"page_token"}`
	req := httptest.NewRequest(http.MethodDelete, "/api/facebook/delete-post", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
