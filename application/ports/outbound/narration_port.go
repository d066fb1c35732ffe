package outbound

import "context"

type SynthesizeNarrationParams struct {
	// Script is the whole-item script text, not per-scene narration.
	Script string
	// Voice is a caller-facing preset name such as "Aria"; unknown names
	// fall back to the default preset.
	Voice string
}

// NarrationSynthesizerPort converts a script into one audio track via
// the speech backend. Exactly one attempt per call.
type NarrationSynthesizerPort interface {
	Synthesize(ctx context.Context, params SynthesizeNarrationParams) ([]byte, error)
}
