package metaclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adpilot/fb-campaign-api/internal/domain"
)

func decodeSpec(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	raw := r.URL.Query().Get("object_story_spec")
	assert.NotEmpty(t, raw)

	spec := map[string]any{}
	assert.NoError(t, json.Unmarshal([]byte(raw), &spec))
	return spec
}

func TestCreateCreative_ImagemPorURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v22.0/act_123/adcreatives", r.URL.Path)

		spec := decodeSpec(t, r)
		assert.Equal(t, "page_1", spec["page_id"])

		link := spec["link_data"].(map[string]any)
		assert.Equal(t, "https://example.com/foto.jpg", link["picture"])
		assert.Equal(t, "Texto do anúncio", link["message"])
		assert.Nil(t, spec["video_data"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"creative_1"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	result, err := client.CreateCreative(&domain.CreateCreativeRequest{
		AccountID:   "123",
		AccessToken: "token",
		Name:        "Criativo",
		PageID:      "page_1",
		ImageURL:    "https://example.com/foto.jpg",
		Body:        "Texto do anúncio",
	})

	assert.NoError(t, err)
	assert.Equal(t, "creative_1", result.ID)
}

func TestCreateCreative_ImageHashTemPrecedencia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spec := decodeSpec(t, r)

		link := spec["link_data"].(map[string]any)
		assert.Equal(t, "abc123", link["image_hash"])
		assert.Nil(t, link["picture"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"creative_1"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.CreateCreative(&domain.CreateCreativeRequest{
		AccountID:   "123",
		AccessToken: "token",
		Name:        "Criativo",
		PageID:      "page_1",
		ImageHash:   "abc123",
		ImageURL:    "https://example.com/foto.jpg",
	})

	assert.NoError(t, err)
}

func TestCreateCreative_Video(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spec := decodeSpec(t, r)

		video := spec["video_data"].(map[string]any)
		assert.Equal(t, "video_1", video["video_id"])
		assert.Nil(t, spec["link_data"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"creative_1"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.CreateCreative(&domain.CreateCreativeRequest{
		AccountID:   "123",
		AccessToken: "token",
		Name:        "Criativo",
		PageID:      "page_1",
		VideoID:     "video_1",
		Body:        "Descrição",
	})

	assert.NoError(t, err)
}

func TestCreateCreative_SomenteTexto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spec := decodeSpec(t, r)

		link := spec["link_data"].(map[string]any)
		assert.Equal(t, "Só texto", link["message"])
		assert.Nil(t, link["picture"])
		assert.Nil(t, link["image_hash"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"creative_1"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.CreateCreative(&domain.CreateCreativeRequest{
		AccountID:   "123",
		AccessToken: "token",
		Name:        "Criativo",
		PageID:      "page_1",
		Body:        "Só texto",
	})

	assert.NoError(t, err)
}
