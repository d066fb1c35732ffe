package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Mulith/create-video-short/application/ports/inbound"
	"github.com/Mulith/create-video-short/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string)                                           {}
func (noopLogger) InfoWithFields(string, map[string]interface{})         {}
func (noopLogger) Error(error, string)                                   {}
func (noopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (noopLogger) Debug(string)                                          {}
func (noopLogger) DebugWithFields(string, map[string]interface{})        {}
func (noopLogger) Warn(string)                                           {}

type inlineDispatcher struct{}

func (inlineDispatcher) Submit(task func()) error {
	task()
	return nil
}

type stubPipeline struct {
	outcome *domain.PipelineOutcome
	err     error
	params  inbound.RunVideoPipelineParams
}

func (s *stubPipeline) Run(_ context.Context, params inbound.RunVideoPipelineParams) (*domain.PipelineOutcome, error) {
	s.params = params
	return s.outcome, s.err
}

func newTestRouter(pipeline *stubPipeline) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewVideoController(noopLogger{}, inlineDispatcher{}, pipeline).RegisterRoutes(router)
	return router
}

func postRender(router *gin.Engine, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/videos/render", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestRenderVideoSuccess(t *testing.T) {
	pipeline := &stubPipeline{outcome: &domain.PipelineOutcome{
		ContentID:       "content-1",
		Title:           "Two Scenes",
		StoragePath:     "generated-videos/content-1-1700000000000.mp4",
		ScenesProcessed: 2,
		TotalDuration:   15,
	}}
	router := newTestRouter(pipeline)

	rec := postRender(router, `{"content_id":"content-1","voice":"Sarah"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if pipeline.params.ContentID != "content-1" || pipeline.params.Voice != "Sarah" {
		t.Fatalf("pipeline params = %+v", pipeline.params)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if resp["success"] != true {
		t.Error("success flag must be true")
	}
	if resp["scenes_processed"] != float64(2) {
		t.Errorf("scenes_processed = %v", resp["scenes_processed"])
	}
	if resp["total_duration"] != float64(15) {
		t.Errorf("total_duration = %v", resp["total_duration"])
	}
}

func TestRenderVideoMissingContentID(t *testing.T) {
	router := newTestRouter(&stubPipeline{})
	rec := postRender(router, `{"voice":"Aria"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRenderVideoErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("video pipeline failed: %w", domain.ErrNotFound), http.StatusNotFound},
		{"invalid script", fmt.Errorf("video pipeline failed: %w", domain.ErrInvalidScript), http.StatusBadRequest},
		{"invalid timing", fmt.Errorf("video pipeline failed: %w", domain.ErrInvalidSceneTiming), http.StatusBadRequest},
		{"no renderable scenes", fmt.Errorf("video pipeline failed: %w", domain.ErrNoRenderableScenes), http.StatusConflict},
		{"upstream failure", fmt.Errorf("video pipeline failed: %w", domain.ErrUpstream), http.StatusBadGateway},
		{"empty result", fmt.Errorf("video pipeline failed: %w", domain.ErrEmptyResult), http.StatusBadGateway},
		{"config missing", fmt.Errorf("video pipeline failed: %w", domain.ErrConfigMissing), http.StatusInternalServerError},
		{"unclassified", fmt.Errorf("video pipeline failed: boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubPipeline{err: tc.err})
			rec := postRender(router, `{"content_id":"content-1"}`)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			var resp map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response not JSON: %v", err)
			}
			if resp["success"] != false {
				t.Error("success flag must be false")
			}
			if resp["detail"] == "" {
				t.Error("failure body must carry diagnostic detail")
			}
		})
	}
}
