package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"titansync/internal/adapter/http/handlers/mocks"
	"titansync/internal/domain/entities"
	"titansync/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_CreateWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks", h.CreateWebhook)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks", h.CreateWebhook)

		uc.EXPECT().CreateWebhook(gomock.Any(), "Team Room", "ftp://chat.example.com").Return(entities.Webhook{}, usecase.ErrInvalidWebhookURL)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks", bytes.NewBufferString(`{"name":"Team Room","url":"ftp://chat.example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks", h.CreateWebhook)

		now := time.Now().UTC()
		uc.EXPECT().CreateWebhook(gomock.Any(), "Team Room", "https://chat.googleapis.com/v1/spaces/a/messages?key=k").
			Return(entities.Webhook{ID: "wh-1", Name: "Team Room", URL: "https://chat.googleapis.com/v1/spaces/a/messages?key=k", Enabled: true, CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks", bytes.NewBufferString(`{"name":"Team Room","url":"https://chat.googleapis.com/v1/spaces/a/messages?key=k"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "wh-1" || body["enabled"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestWebhookHandler_PatchWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.PATCH("/v1/webhooks/:id", h.PatchWebhook)

		uc.EXPECT().UpdateWebhook(gomock.Any(), "missing", gomock.Any()).Return(entities.Webhook{}, usecase.ErrWebhookNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/webhooks/missing", bytes.NewBufferString(`{"enabled":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("last enabled webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.PATCH("/v1/webhooks/:id", h.PatchWebhook)

		uc.EXPECT().UpdateWebhook(gomock.Any(), "wh-1", gomock.Any()).Return(entities.Webhook{}, usecase.ErrLastEnabledWebhook)

		req := httptest.NewRequest(http.MethodPatch, "/v1/webhooks/wh-1", bytes.NewBufferString(`{"enabled":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "LAST_ENABLED_WEBHOOK" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.PATCH("/v1/webhooks/:id", h.PatchWebhook)

		uc.EXPECT().UpdateWebhook(gomock.Any(), "wh-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, patch usecase.WebhookPatch) (entities.Webhook, error) {
				if patch.Name == nil || *patch.Name != "Renamed" {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return entities.Webhook{ID: "wh-1", Name: "Renamed", Enabled: true}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/webhooks/wh-1", bytes.NewBufferString(`{"name":"Renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_DeleteWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("last enabled webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.DELETE("/v1/webhooks/:id", h.DeleteWebhook)

		uc.EXPECT().DeleteWebhook(gomock.Any(), "wh-1").Return(usecase.ErrLastEnabledWebhook)

		req := httptest.NewRequest(http.MethodDelete, "/v1/webhooks/wh-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.DELETE("/v1/webhooks/:id", h.DeleteWebhook)

		uc.EXPECT().DeleteWebhook(gomock.Any(), "wh-2").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/webhooks/wh-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_TestWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/:id/test", h.TestWebhook)

		uc.EXPECT().TestWebhook(gomock.Any(), "missing").Return(0, usecase.ErrWebhookNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/missing/test", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delivery failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/:id/test", h.TestWebhook)

		uc.EXPECT().TestWebhook(gomock.Any(), "wh-1").Return(http.StatusServiceUnavailable, errors.New("chat returned 503"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/wh-1/test", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["delivered"] != false || body["status_code"] != float64(http.StatusServiceUnavailable) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/:id/test", h.TestWebhook)

		uc.EXPECT().TestWebhook(gomock.Any(), "wh-1").Return(http.StatusOK, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/wh-1/test", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["delivered"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestWebhookHandler_Gifs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.GET("/v1/gifs", h.ListGifs)

		uc.EXPECT().ListGifs(gomock.Any()).Return([]entities.Gif{
			{ID: "gif-1", URL: "https://media.example.com/party.gif"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/gifs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "gif-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/gifs", h.CreateGif)

		uc.EXPECT().AddGif(gomock.Any(), "https://media.example.com/party.gif").
			Return(entities.Gif{ID: "gif-1", URL: "https://media.example.com/party.gif"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/gifs", bytes.NewBufferString(`{"url":"https://media.example.com/party.gif"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("delete below minimum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.DELETE("/v1/gifs/:id", h.DeleteGif)

		uc.EXPECT().DeleteGif(gomock.Any(), "gif-1").Return(usecase.ErrMinGifCount)

		req := httptest.NewRequest(http.MethodDelete, "/v1/gifs/gif-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MIN_GIF_COUNT" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookAdminUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.DELETE("/v1/gifs/:id", h.DeleteGif)

		uc.EXPECT().DeleteGif(gomock.Any(), "gif-2").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/gifs/gif-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
