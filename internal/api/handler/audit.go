package handler

import (
	"net/http"
	"strconv"

	"github.com/adpilot/fb-campaign-api/infrastructure/repository"
	"github.com/adpilot/fb-campaign-api/internal/api/handler/router"
	"github.com/adpilot/fb-campaign-api/internal/domain"
	"github.com/adpilot/fb-campaign-api/pkg/apiErrors"
)

type AuditResponse struct {
	Success bool                     `json:"success"`
	Entries []*domain.OperationAudit `json:"entries"`
}

// Audit expõe a consulta da trilha de auditoria. Registrado apenas quando a
// trilha está habilitada.
func Audit(repo repository.OperationAuditRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/api/audit/recent",
			Method:  http.MethodGet,
			Handler: ListRecentAudits(repo),
		},
	}
}

// ListRecentAudits devolve os registros mais recentes da trilha de auditoria
func ListRecentAudits(repo repository.OperationAuditRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		entries, err := repo.ListRecent(limit)
		if err != nil {
			apiErrors.WriteError(w, http.StatusInternalServerError, err.Error(), nil)
			return
		}

		apiErrors.WriteSuccess(w, AuditResponse{
			Success: true,
			Entries: entries,
		})
	}
}
