package metaclient

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/internal/domain"
)

const postListFields = "id,message,created_time,permalink_url,attachments{media,type,url}," +
	"reactions.summary(total_count).limit(0),comments.summary(total_count).limit(0),shares"

// PublishTextPost publica um post de texto no feed da página
func (c *MetaClient) PublishTextPost(pageID, pageToken, message string) (*metadomain.PublishResponse, error) {
	params := url.Values{}
	params.Add("message", message)

	body, err := c.call(OpPublishFeed, map[string]string{"page_id": pageID}, params, pageToken)
	if err != nil {
		return nil, err
	}

	return decodePublishResponse(body)
}

// PublishMediaPost publica foto ou vídeo no feed da página. Fotos usam os
// parâmetros url/caption; vídeos usam file_url/description.
func (c *MetaClient) PublishMediaPost(req *domain.PublishRequest) (*metadomain.PublishResponse, error) {
	op := OpPublishPhoto
	params := url.Values{}

	if req.Type == "video" {
		op = OpPublishVideo
		params.Add("file_url", req.MediaURL)
		params.Add("description", req.Message)
	} else {
		params.Add("url", req.MediaURL)
		params.Add("caption", req.Message)
	}

	body, err := c.call(op, map[string]string{"page_id": req.PageID}, params, req.PageToken)
	if err != nil {
		return nil, err
	}

	return decodePublishResponse(body)
}

// ListPosts busca os posts do feed da página com métricas de engajamento
func (c *MetaClient) ListPosts(pageID, pageToken string, limit int) (*metadomain.PostList, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	params := url.Values{}
	params.Add("fields", postListFields)
	params.Add("limit", strconv.Itoa(limit))

	body, err := c.call(OpListPosts, map[string]string{"page_id": pageID}, params, pageToken)
	if err != nil {
		return nil, err
	}

	var response metadomain.PostList
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}

// DeletePost exclui um post pelo id, usando o token da página
func (c *MetaClient) DeletePost(postID, pageToken string) (*metadomain.DeleteResponse, error) {
	body, err := c.call(OpDeletePost, map[string]string{"post_id": postID}, nil, pageToken)
	if err != nil {
		return nil, err
	}

	var response metadomain.DeleteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}

func decodePublishResponse(body []byte) (*metadomain.PublishResponse, error) {
	var response metadomain.PublishResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
