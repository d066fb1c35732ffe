package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Mulith/create-video-short/application/ports/inbound"
	"github.com/Mulith/create-video-short/application/ports/outbound"
	"github.com/Mulith/create-video-short/domain"
)

// Total duration reported when selection somehow yields no scenes. The
// selector already hard-fails on an empty set, so this only guards the
// defensive branch below.
const fallbackTotalDuration = 30

type videoPipeline struct {
	logger    outbound.LoggerPort
	store     outbound.ContentStorePort
	narration outbound.NarrationSynthesizerPort
	renderer  outbound.RendererPort
	publisher outbound.ArtifactPublisherPort
	now       func() time.Time
}

func NewVideoPipeline(logger outbound.LoggerPort, store outbound.ContentStorePort,
	narration outbound.NarrationSynthesizerPort, renderer outbound.RendererPort,
	publisher outbound.ArtifactPublisherPort) inbound.VideoPipelinePort {
	return &videoPipeline{
		logger:    logger,
		store:     store,
		narration: narration,
		renderer:  renderer,
		publisher: publisher,
		now:       time.Now,
	}
}

// Run executes the stages strictly in order; each depends on its
// predecessor's output. Any stage error aborts the rest and propagates
// wrapped. Only success writes the persisted status; a failed run leaves
// the item's status at whatever it was before.
func (p *videoPipeline) Run(ctx context.Context, params inbound.RunVideoPipelineParams) (*domain.PipelineOutcome, error) {
	outcome, err := p.run(ctx, params)
	if err != nil {
		p.logger.ErrorWithFields(err, "video pipeline failed", map[string]interface{}{
			"content_id": params.ContentID,
		})
		return nil, fmt.Errorf("video pipeline failed: %w", err)
	}
	return outcome, nil
}

func (p *videoPipeline) run(ctx context.Context, params inbound.RunVideoPipelineParams) (*domain.PipelineOutcome, error) {
	item, err := p.store.GetContentItem(ctx, params.ContentID)
	if err != nil {
		return nil, err
	}

	scenes, err := SelectScenes(item)
	if err != nil {
		return nil, err
	}
	p.logger.InfoWithFields("scenes selected", map[string]interface{}{
		"content_id": item.ID,
		"scenes":     len(scenes),
	})

	audio, err := p.narration.Synthesize(ctx, outbound.SynthesizeNarrationParams{
		Script: item.Script,
		Voice:  params.Voice,
	})
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: narration produced no audio", domain.ErrEmptyResult)
	}

	audio = CompressAudio(audio)

	renderScenes := make([]domain.RenderScene, len(scenes))
	for i, scene := range scenes {
		asset, _ := scene.EligibleAsset()
		renderScenes[i] = domain.RenderScene{
			ImageURL: asset.URL,
			Duration: scene.Duration(),
		}
	}

	payload, err := BuildRenderRequest(renderScenes, audio, item.Title)
	if err != nil {
		return nil, err
	}

	video, err := p.renderer.Render(ctx, payload)
	if err != nil {
		return nil, err
	}
	if len(video) == 0 {
		return nil, fmt.Errorf("%w: renderer produced no video", domain.ErrEmptyResult)
	}

	fileName := fmt.Sprintf("%s-%d.mp4", item.ID, p.now().UnixMilli())
	storagePath, err := p.publisher.Publish(ctx, fileName, video)
	if err != nil {
		return nil, err
	}

	if err := p.store.MarkVideoCompleted(ctx, item.ID, storagePath); err != nil {
		return nil, err
	}

	totalDuration := float64(fallbackTotalDuration)
	if len(scenes) > 0 {
		totalDuration = scenes[len(scenes)-1].EndTimeSeconds
	}

	p.logger.InfoWithFields("video assembled", map[string]interface{}{
		"content_id": item.ID,
		"path":       storagePath,
		"scenes":     len(scenes),
		"duration":   totalDuration,
	})

	return &domain.PipelineOutcome{
		ContentID:       item.ID,
		Title:           item.Title,
		StoragePath:     storagePath,
		ScenesProcessed: len(scenes),
		TotalDuration:   totalDuration,
	}, nil
}
