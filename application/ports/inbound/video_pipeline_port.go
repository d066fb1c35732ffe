package inbound

import (
	"context"

	"github.com/Mulith/create-video-short/domain"
)

type RunVideoPipelineParams struct {
	ContentID string
	Voice     string
}

// VideoPipelinePort runs the whole assembly pipeline for one content
// item: scene selection, narration, render, publish, status write-back.
// All-or-nothing from the caller's perspective.
type VideoPipelinePort interface {
	Run(ctx context.Context, params RunVideoPipelineParams) (*domain.PipelineOutcome, error)
}
