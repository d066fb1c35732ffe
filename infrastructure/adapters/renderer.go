package adapters

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Mulith/create-video-short/application/ports/outbound"
	"github.com/Mulith/create-video-short/config"
	"github.com/Mulith/create-video-short/domain"
)

type rendererClient struct {
	client         *http.Client
	rendererConfig *config.RendererConfig
	logger         outbound.LoggerPort
}

func NewRendererClient(client *http.Client, rendererConfig *config.RendererConfig,
	logger outbound.LoggerPort) outbound.RendererPort {
	if client == nil {
		client = &http.Client{}
	}
	return &rendererClient{
		client:         client,
		rendererConfig: rendererConfig,
		logger:         logger,
	}
}

func (r *rendererClient) Render(ctx context.Context, payload *outbound.RenderPayload) ([]byte, error) {
	if r.rendererConfig == nil || r.rendererConfig.Endpoint == "" {
		return nil, fmt.Errorf("%w: renderer endpoint", domain.ErrConfigMissing)
	}

	size := payload.Size()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		r.rendererConfig.Endpoint+"/create-video", payload.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: build render request: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", payload.ContentType)

	r.logger.DebugWithFields("dispatching render request", map[string]interface{}{
		"bytes": size,
	})

	status, body, err := doRequest(r.client, req)
	if err != nil {
		return nil, fmt.Errorf("%w: render request: %v", domain.ErrUpstream, err)
	}

	if status < 200 || status > 299 {
		return nil, r.classify(status, size, body)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: renderer returned no video", domain.ErrEmptyResult)
	}

	return body, nil
}

// classify maps the renderer's failure statuses onto the error taxonomy,
// preserving status code and body text for diagnosis.
func (r *rendererClient) classify(status, requestSize int, body []byte) error {
	switch status {
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: render request of %d bytes rejected as payload too large (status %d): %s",
			domain.ErrUpstream, requestSize, status, string(body))
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: renderer authentication failed (status %d): %s",
			domain.ErrUpstream, status, string(body))
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: renderer service unavailable (status %d): %s",
			domain.ErrUpstream, status, string(body))
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: renderer internal error (status %d): %s",
			domain.ErrUpstream, status, string(body))
	default:
		return fmt.Errorf("%w: renderer returned %d: %s",
			domain.ErrUpstream, status, string(body))
	}
}
