package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adpilot/fb-campaign-api/internal/domain"
	"github.com/adpilot/fb-campaign-api/internal/usecases/publishing"
	"github.com/adpilot/fb-campaign-api/internal/validation"
	"github.com/adpilot/fb-campaign-api/pkg/apiErrors"
)

// PublishPost publica texto, foto ou vídeo no feed da página
func PublishPost(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.PublishRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "pageId", Value: req.PageID},
			validation.Field{Name: "pageToken", Value: req.PageToken},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.Publish(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}

// ListPosts busca os posts do feed com métricas de engajamento
func ListPosts(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.FetchPostsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "pageId", Value: req.PageID},
			validation.Field{Name: "pageToken", Value: req.PageToken},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.ListPosts(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}

// DeletePost exclui um post pelo id
func DeletePost(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.DeletePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteValidationError(w, "Invalid request body")
			return
		}

		presence, ok := validation.CheckRequired(
			validation.Field{Name: "postId", Value: req.PostID},
			validation.Field{Name: "pageToken", Value: req.PageToken},
		)
		if !ok {
			apiErrors.WriteMissingFields(w, presence)
			return
		}

		resp, err := service.DeletePost(&req)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, resp)
	}
}
