package publishing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/mocks"
	"github.com/adpilot/fb-campaign-api/internal/domain"
	"github.com/adpilot/fb-campaign-api/internal/usecases/auditing"
)

func newTestService(t *testing.T) (*mocks.MockClient, Publisher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockClient(ctrl)
	return mockClient, NewService(mockClient, auditing.NewRecorder(nil))
}

func TestPublish_PostDeTexto(t *testing.T) {
	mockClient, service := newTestService(t)

	mockClient.EXPECT().
		PublishTextPost("page_1", "page_token", "Olá, mundo").
		Return(&metadomain.PublishResponse{ID: "page_1_post_1"}, nil)

	result, err := service.Publish(&domain.PublishRequest{
		PageID:    "page_1",
		PageToken: "page_token",
		Message:   "Olá, mundo",
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "page_1_post_1", result.Data.ID)
	assert.False(t, result.MediaIncluded)
}

func TestPublish_PostComFoto(t *testing.T) {
	mockClient, service := newTestService(t)

	req := &domain.PublishRequest{
		PageID:    "page_1",
		PageToken: "page_token",
		Message:   "Legenda",
		MediaURL:  "https://example.com/foto.jpg",
		Type:      "photo",
	}

	mockClient.EXPECT().
		PublishMediaPost(req).
		Return(&metadomain.PublishResponse{ID: "photo_1", PostID: "page_1_post_2"}, nil)

	result, err := service.Publish(req)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "photo", result.PostType)
	assert.True(t, result.MediaIncluded)
}

func TestListPosts(t *testing.T) {
	mockClient, service := newTestService(t)

	mockClient.EXPECT().
		ListPosts("page_1", "page_token", 10).
		Return(&metadomain.PostList{
			Data: []metadomain.Post{
				{ID: "post_1", Message: "Primeiro post"},
			},
		}, nil)

	result, err := service.ListPosts(&domain.FetchPostsRequest{
		PageID:    "page_1",
		PageToken: "page_token",
		Limit:     10,
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.Posts, 1)
}

func TestDeletePost(t *testing.T) {
	mockClient, service := newTestService(t)

	mockClient.EXPECT().
		DeletePost("post_1", "page_token").
		Return(&metadomain.DeleteResponse{Success: true}, nil)

	result, err := service.DeletePost(&domain.DeletePostRequest{
		PostID:    "post_1",
		PageToken: "page_token",
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Data.Success)
}

func TestDeletePost_ErroDaGraphAPI(t *testing.T) {
	mockClient, service := newTestService(t)

	mockClient.EXPECT().
		DeletePost("post_1", "page_token").
		Return(nil, &metadomain.GraphError{StatusCode: 403, Message: "Permissão negada"})

	result, err := service.DeletePost(&domain.DeletePostRequest{
		PostID:    "post_1",
		PageToken: "page_token",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
}
