package metaclient

import (
	"encoding/json"
	"net/url"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/internal/domain"
)

type linkData struct {
	Message      string               `json:"message"`
	Link         string               `json:"link"`
	Name         string               `json:"name"`
	ImageHash    string               `json:"image_hash,omitempty"`
	Picture      string               `json:"picture,omitempty"`
	CallToAction *domain.CallToAction `json:"call_to_action,omitempty"`
}

type videoData struct {
	VideoID      string               `json:"video_id"`
	Message      string               `json:"message"`
	Title        string               `json:"title"`
	CallToAction *domain.CallToAction `json:"call_to_action,omitempty"`
}

type objectStorySpec struct {
	PageID    string     `json:"page_id"`
	LinkData  *linkData  `json:"link_data,omitempty"`
	VideoData *videoData `json:"video_data,omitempty"`
}

// CreateCreative cria um criativo em act_<id>/adcreatives. O object_story_spec
// é montado a partir da mídia informada (imagem, vídeo ou só texto) e
// serializado como string JSON, convenção da Graph API.
func (c *MetaClient) CreateCreative(req *domain.CreateCreativeRequest) (*metadomain.CreateResult, error) {
	spec := objectStorySpec{PageID: req.PageID}

	switch {
	case req.ImageHash != "" || req.ImageURL != "":
		spec.LinkData = &linkData{
			Message:      req.Body,
			Link:         req.LinkURL,
			Name:         req.Title,
			CallToAction: req.CallToAction,
		}
		if req.ImageHash != "" {
			spec.LinkData.ImageHash = req.ImageHash
		} else {
			spec.LinkData.Picture = req.ImageURL
		}

	case req.VideoID != "":
		spec.VideoData = &videoData{
			VideoID:      req.VideoID,
			Message:      req.Body,
			Title:        req.Title,
			CallToAction: req.CallToAction,
		}

	default:
		// Somente texto: link_data sem mídia
		spec.LinkData = &linkData{
			Message:      req.Body,
			Link:         req.LinkURL,
			Name:         req.Title,
			CallToAction: req.CallToAction,
		}
	}

	specJSON, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("name", req.Name)
	params.Add("object_story_spec", string(specJSON))

	body, err := c.call(OpCreateCreative, map[string]string{"account_id": req.AccountID}, params, req.AccessToken)
	if err != nil {
		return nil, err
	}

	return decodeCreateResult(body)
}
