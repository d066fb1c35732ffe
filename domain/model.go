package domain

import "time"

type VideoStatus string

const (
	VideoStatusPending    VideoStatus = "pending"
	VideoStatusProcessing VideoStatus = "processing"
	VideoStatusCompleted  VideoStatus = "completed"
	VideoStatusFailed     VideoStatus = "failed"
)

type AssetStatus string

const (
	AssetStatusPending   AssetStatus = "pending"
	AssetStatusCompleted AssetStatus = "completed"
	AssetStatusFailed    AssetStatus = "failed"
)

// ContentItem is one video-generation job: a script plus ordered scenes,
// each scene already paired with generated still images.
type ContentItem struct {
	ID            string
	Title         string
	Script        string
	VideoStatus   VideoStatus
	VideoFilePath *string
	Scenes        []Scene
	UpdatedAt     time.Time
}

type Scene struct {
	ID               string
	SceneNumber      int
	NarrationText    string
	StartTimeSeconds float64
	EndTimeSeconds   float64
	Assets           []RenderedAsset
}

// Duration is EndTimeSeconds - StartTimeSeconds. Callers must validate
// timing first; a negative result means the scene never passed selection.
func (s Scene) Duration() float64 {
	return s.EndTimeSeconds - s.StartTimeSeconds
}

// EligibleAsset returns the first completed asset carrying a URL. The
// second return is false when the scene has no usable asset. Later
// completed assets are ignored, not an error.
func (s Scene) EligibleAsset() (RenderedAsset, bool) {
	for _, a := range s.Assets {
		if a.Status == AssetStatusCompleted && a.URL != "" {
			return a, true
		}
	}
	return RenderedAsset{}, false
}

type RenderedAsset struct {
	ID     string
	Status AssetStatus
	URL    string
}

// RenderScene is the per-scene pair the render request is built from.
type RenderScene struct {
	ImageURL string
	Duration float64
}

// PipelineOutcome is what a successful pipeline run reports back.
type PipelineOutcome struct {
	ContentID       string
	Title           string
	StoragePath     string
	ScenesProcessed int
	TotalDuration   float64
}
