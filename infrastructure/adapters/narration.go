package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Mulith/create-video-short/application/ports/outbound"
	"github.com/Mulith/create-video-short/config"
	"github.com/Mulith/create-video-short/domain"
)

const (
	elevenLabsModelID = "eleven_multilingual_v2"
	defaultVoiceName  = "Aria"
)

// Caller-facing preset names mapped to ElevenLabs voice tokens. Unknown
// names fall back to the default preset rather than erroring; callers
// picking a voice is a preference, not a contract.
var voicePresets = map[string]string{
	"Aria":    "9BWtsMINqrJLrRacOk9x",
	"Roger":   "CwhRBWXzGAHq8TQ4Fs17",
	"Sarah":   "EXAVITQu4vr4xnSDxMaL",
	"Laura":   "FGY2WhTYpPnrIDTdsKH5",
	"Charlie": "IKne3meq5aSn9XLyUdCD",
}

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// Synthesis parameters are fixed constants, not tunable per call.
type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

var defaultVoiceSettings = voiceSettings{
	Stability:       0.5,
	SimilarityBoost: 0.75,
	Style:           0.0,
	UseSpeakerBoost: true,
}

type elevenLabsNarrator struct {
	client           *http.Client
	elevenLabsConfig *config.ElevenLabsConfig
	logger           outbound.LoggerPort
}

func NewElevenLabsNarrator(client *http.Client, elevenLabsConfig *config.ElevenLabsConfig,
	logger outbound.LoggerPort) outbound.NarrationSynthesizerPort {
	if client == nil {
		client = &http.Client{}
	}
	return &elevenLabsNarrator{
		client:           client,
		elevenLabsConfig: elevenLabsConfig,
		logger:           logger,
	}
}

func (n *elevenLabsNarrator) Synthesize(ctx context.Context, params outbound.SynthesizeNarrationParams) ([]byte, error) {
	if strings.TrimSpace(params.Script) == "" {
		return nil, fmt.Errorf("%w: narration text is empty", domain.ErrInvalidInput)
	}

	voiceToken := resolveVoice(params.Voice)
	if voiceToken == "" {
		return nil, fmt.Errorf("%w: no voice token for %q", domain.ErrInvalidInput, params.Voice)
	}

	if n.elevenLabsConfig == nil || n.elevenLabsConfig.ApiKey == "" {
		return nil, fmt.Errorf("%w: speech backend credential", domain.ErrConfigMissing)
	}

	req, err := n.getRequest(ctx, params.Script, voiceToken)
	if err != nil {
		return nil, err
	}

	n.logger.DebugWithFields("synthesizing narration", map[string]interface{}{
		"voice": params.Voice,
		"chars": len(params.Script),
	})

	status, body, err := doRequest(n.client, req)
	if err != nil {
		return nil, fmt.Errorf("%w: speech request: %v", domain.ErrUpstream, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: speech backend returned %d: %s", domain.ErrUpstream, status, string(body))
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: speech backend returned no audio", domain.ErrEmptyResult)
	}

	return body, nil
}

func (n *elevenLabsNarrator) getRequest(ctx context.Context, text, voiceToken string) (*http.Request, error) {
	payload, err := json.Marshal(elevenLabsRequest{
		Text:          text,
		ModelID:       elevenLabsModelID,
		VoiceSettings: defaultVoiceSettings,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		n.elevenLabsConfig.ApiUrl+"/"+voiceToken, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", n.elevenLabsConfig.ApiKey)

	return req, nil
}

func resolveVoice(name string) string {
	if token, ok := voicePresets[name]; ok {
		return token
	}
	return voicePresets[defaultVoiceName]
}
