// Package publishing implementa as operações de feed de página: publicar texto,
// foto ou vídeo, listar posts e excluir post. Cada operação dispara exatamente
// uma chamada à Graph API com o token da página.
package publishing

import (
	"github.com/sirupsen/logrus"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpilot/fb-campaign-api/internal/domain"
	"github.com/adpilot/fb-campaign-api/internal/usecases/auditing"
)

type PublishResponse struct {
	Success       bool                        `json:"success"`
	Data          *metadomain.PublishResponse `json:"data"`
	PostType      string                      `json:"postType,omitempty"`
	MediaIncluded bool                        `json:"mediaIncluded,omitempty"`
}

type PostsResponse struct {
	Success bool              `json:"success"`
	Posts   []metadomain.Post `json:"posts"`
	Paging  metadomain.Paging `json:"paging"`
}

type DeletePostResponse struct {
	Success bool                       `json:"success"`
	Data    *metadomain.DeleteResponse `json:"data"`
}

type Publisher interface {
	Publish(req *domain.PublishRequest) (*PublishResponse, error)
	ListPosts(req *domain.FetchPostsRequest) (*PostsResponse, error)
	DeletePost(req *domain.DeletePostRequest) (*DeletePostResponse, error)
}

type Service struct {
	client metaclient.Client
	audit  *auditing.Recorder
}

func NewService(client metaclient.Client, audit *auditing.Recorder) Publisher {
	return &Service{
		client: client,
		audit:  audit,
	}
}

// Publish publica no feed da página. Sem mediaUrl o post é de texto; com
// mediaUrl o tipo decide entre foto e vídeo.
func (s *Service) Publish(req *domain.PublishRequest) (*PublishResponse, error) {
	if req.MediaURL == "" {
		resp, err := s.client.PublishTextPost(req.PageID, req.PageToken, req.Message)
		s.audit.Record(metaclient.OpPublishFeed.Name, req.PageID, err)
		if err != nil {
			return nil, err
		}

		return &PublishResponse{Success: true, Data: resp}, nil
	}

	logrus.WithFields(logrus.Fields{
		"page_id":        req.PageID,
		"type":           req.Type,
		"message_length": len(req.Message),
	}).Info("Publicando post com mídia")

	opName := metaclient.OpPublishPhoto.Name
	if req.Type == "video" {
		opName = metaclient.OpPublishVideo.Name
	}

	resp, err := s.client.PublishMediaPost(req)
	s.audit.Record(opName, req.PageID, err)
	if err != nil {
		return nil, err
	}

	return &PublishResponse{
		Success:       true,
		Data:          resp,
		PostType:      req.Type,
		MediaIncluded: true,
	}, nil
}

// ListPosts busca os posts do feed com métricas de engajamento
func (s *Service) ListPosts(req *domain.FetchPostsRequest) (*PostsResponse, error) {
	resp, err := s.client.ListPosts(req.PageID, req.PageToken, req.Limit)
	s.audit.Record(metaclient.OpListPosts.Name, req.PageID, err)
	if err != nil {
		return nil, err
	}

	return &PostsResponse{
		Success: true,
		Posts:   resp.Data,
		Paging:  resp.Paging,
	}, nil
}

// DeletePost exclui um post pelo id usando o token da página
func (s *Service) DeletePost(req *domain.DeletePostRequest) (*DeletePostResponse, error) {
	resp, err := s.client.DeletePost(req.PostID, req.PageToken)
	s.audit.Record(metaclient.OpDeletePost.Name, req.PostID, err)
	if err != nil {
		return nil, err
	}

	return &DeletePostResponse{Success: true, Data: resp}, nil
}
