// Package apiErrors padroniza o envelope de resposta da API: sucesso retorna
// {success:true, ...} e falha retorna {error, details?} com o status HTTP adequado.
package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIError representa um erro de API padronizado
type APIError struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// ValidationError é o envelope para campos obrigatórios ausentes. O mapa indica,
// campo a campo, quais estavam presentes na requisição.
type ValidationError struct {
	Error          string          `json:"error"`
	RequiredFields map[string]bool `json:"requiredFields,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, status int, message string, details any) {
	writeJSON(w, status, APIError{
		Error:   message,
		Details: details,
	})
}

// WriteMissingFields escreve a resposta 400 de validação com o mapa de presença
func WriteMissingFields(w http.ResponseWriter, presence map[string]bool) {
	writeJSON(w, http.StatusBadRequest, ValidationError{
		Error:          "Missing required fields",
		RequiredFields: presence,
	})
}

// WriteValidationError escreve uma resposta 400 com mensagem específica, usada
// por regras que não são simples presença de campo (ex: orçamento do ad set)
func WriteValidationError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, APIError{Error: message})
}

// WriteMethodNotAllowed escreve a resposta 405 padrão
func WriteMethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, APIError{Error: "Method not allowed"})
}

// WriteSuccess escreve uma resposta 200 com o payload informado
func WriteSuccess(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}
