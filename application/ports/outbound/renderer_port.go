package outbound

import (
	"bytes"
	"context"
)

// RenderPayload is an assembled multipart request body ready for
// transmission to the render backend.
type RenderPayload struct {
	Body        *bytes.Buffer
	ContentType string
}

// Size reports the payload length in bytes, used in diagnostics when the
// backend rejects the request as too large.
func (p *RenderPayload) Size() int {
	if p == nil || p.Body == nil {
		return 0
	}
	return p.Body.Len()
}

// RendererPort performs the remote render call and returns the raw video
// bytes. Exactly one attempt, no retry or backoff.
type RendererPort interface {
	Render(ctx context.Context, payload *RenderPayload) ([]byte, error)
}
