package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/fb-campaign-api/internal/session"
	"github.com/adpilot/fb-campaign-api/internal/usecases/authenticating"
	"github.com/adpilot/fb-campaign-api/pkg/apiErrors"
)

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DevTokenResponse struct {
	Success       bool   `json:"success"`
	Token         string `json:"token"`
	IsDevelopment bool   `json:"isDevelopment"`
	Message       string `json:"message"`
}

// Login redireciona para o diálogo OAuth do Facebook
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, service.LoginURL(), http.StatusFound)
	}
}

// Callback troca o code por uma sessão e a grava no cookie. Sem code a resposta
// é um redirect silencioso para a raiz, igual ao cancelamento do diálogo.
func Callback(service authenticating.Authenticator, codec *session.Codec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		sess, err := service.HandleCallback(code)
		if err != nil {
			logrus.WithError(err).Error("Erro na autenticação com o Facebook")
			apiErrors.WriteError(w, http.StatusInternalServerError, err.Error(), nil)
			return
		}

		value, err := codec.Encode(sess)
		if err != nil {
			logrus.WithError(err).Error("Erro ao codificar a sessão")
			apiErrors.WriteError(w, http.StatusInternalServerError, "Authentication failed", nil)
			return
		}

		http.SetCookie(w, codec.Cookie(value))
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// Logout sobrescreve o cookie de sessão com expiração no passado
func Logout(codec *session.Codec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, codec.ExpiredCookie())

		apiErrors.WriteSuccess(w, LogoutResponse{
			Success: true,
			Message: "Logged out successfully",
		})
	}
}

// DevToken expõe o token de system user apenas em modo de desenvolvimento
func DevToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := service.DevToken()
		if err != nil {
			handleDevTokenError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, DevTokenResponse{
			Success:       true,
			Token:         token,
			IsDevelopment: true,
			Message:       "Using system user token for development. This will not work in production.",
		})
	}
}

func handleDevTokenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authenticating.ErrNotDevelopment):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"error":      "This endpoint is only available in development mode",
			"production": true,
		})

	case errors.Is(err, authenticating.ErrSystemTokenMissing):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"error":     "System user token not configured",
			"help":      "See SYSTEM_USER_SETUP.md for instructions on how to create and configure a system user token",
			"available": false,
		})

	default:
		apiErrors.WriteError(w, http.StatusInternalServerError, err.Error(), nil)
	}
}
