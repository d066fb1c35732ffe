package domain

import "errors"

// Pipeline failure categories. Stages wrap these with fmt.Errorf and %w
// so the HTTP boundary can classify with errors.Is while the innermost
// message survives intact. Nothing in the pipeline retries.
var (
	// ErrConfigMissing means a required endpoint or credential was absent.
	ErrConfigMissing = errors.New("required configuration missing")

	// ErrInvalidInput covers malformed caller data outside the script and
	// scene-timing cases, which have their own categories.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidScript means the content item's script is empty after
	// trimming whitespace.
	ErrInvalidScript = errors.New("invalid script")

	// ErrInvalidSceneTiming means a selected scene violates
	// end > start >= 0 or lost its asset URL.
	ErrInvalidSceneTiming = errors.New("invalid scene timing")

	// ErrNoRenderableScenes means no scene has a completed, URL-bearing
	// rendered asset.
	ErrNoRenderableScenes = errors.New("no renderable scenes")

	// ErrNoValidScenes means the request builder received an empty scene
	// list; selection upstream should have made this impossible.
	ErrNoValidScenes = errors.New("no valid scenes")

	// ErrNotFound means the content item does not exist in the store.
	ErrNotFound = errors.New("content item not found")

	// ErrUpstream means the speech or render backend returned a
	// non-success response.
	ErrUpstream = errors.New("upstream request failed")

	// ErrEmptyResult means a backend reported success but returned zero
	// usable bytes.
	ErrEmptyResult = errors.New("upstream returned empty result")

	// ErrMalformedRequest means the render request failed its pre-flight
	// self-check; this indicates a builder bug, not bad caller data.
	ErrMalformedRequest = errors.New("malformed render request")

	// ErrStorage means publishing the rendered artifact failed.
	ErrStorage = errors.New("artifact storage failed")
)
