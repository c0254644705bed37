package handler

import (
	"net/http"

	"github.com/pkg/errors"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/pkg/apiErrors"
)

// writeUpstreamError responde 500 com a mensagem extraída do erro da Graph API
// e o corpo bruto em details, quando disponível
func writeUpstreamError(w http.ResponseWriter, err error) {
	var graphErr *metadomain.GraphError
	if errors.As(err, &graphErr) {
		apiErrors.WriteError(w, http.StatusInternalServerError, graphErr.Error(), graphErr.Details())
		return
	}

	apiErrors.WriteError(w, http.StatusInternalServerError, err.Error(), nil)
}
