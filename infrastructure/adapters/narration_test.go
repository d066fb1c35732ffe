package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mulith/create-video-short/application/ports/outbound"
	"github.com/Mulith/create-video-short/config"
	"github.com/Mulith/create-video-short/domain"
)

const ariaToken = "9BWtsMINqrJLrRacOk9x"

func newNarrationServer(t *testing.T, wantToken string, status int, audio []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.Header.Get("xi-api-key") != "test-key" {
			t.Error("missing api key header")
		}
		if r.Header.Get("Accept") != "audio/mpeg" {
			t.Error("missing audio/mpeg accept header")
		}
		if wantToken != "" && !strings.HasSuffix(r.URL.Path, "/"+wantToken) {
			t.Errorf("path = %s, want voice token %s", r.URL.Path, wantToken)
		}

		body, _ := io.ReadAll(r.Body)
		var req elevenLabsRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}
		if req.ModelID != elevenLabsModelID {
			t.Errorf("model = %q", req.ModelID)
		}
		if req.VoiceSettings != defaultVoiceSettings {
			t.Errorf("voice settings = %+v, want fixed defaults", req.VoiceSettings)
		}

		w.WriteHeader(status)
		_, _ = w.Write(audio)
	}))
}

func narratorFor(server *httptest.Server) outbound.NarrationSynthesizerPort {
	return NewElevenLabsNarrator(server.Client(), &config.ElevenLabsConfig{
		ApiUrl: server.URL,
		ApiKey: "test-key",
	}, testLogger{})
}

func TestNarratorSynthesize(t *testing.T) {
	server := newNarrationServer(t, ariaToken, http.StatusOK, []byte("mp3 bytes"))
	defer server.Close()

	audio, err := narratorFor(server).Synthesize(context.Background(), outbound.SynthesizeNarrationParams{
		Script: "Hello world",
		Voice:  "Aria",
	})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if string(audio) != "mp3 bytes" {
		t.Fatalf("audio = %q", string(audio))
	}
}

func TestNarratorUnknownVoiceFallsBackToAria(t *testing.T) {
	server := newNarrationServer(t, ariaToken, http.StatusOK, []byte("mp3 bytes"))
	defer server.Close()

	_, err := narratorFor(server).Synthesize(context.Background(), outbound.SynthesizeNarrationParams{
		Script: "Hello world",
		Voice:  "Zephyr",
	})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
}

func TestNarratorKnownVoices(t *testing.T) {
	for name, token := range map[string]string{
		"Roger":   "CwhRBWXzGAHq8TQ4Fs17",
		"Sarah":   "EXAVITQu4vr4xnSDxMaL",
		"Laura":   "FGY2WhTYpPnrIDTdsKH5",
		"Charlie": "IKne3meq5aSn9XLyUdCD",
	} {
		if got := resolveVoice(name); got != token {
			t.Errorf("resolveVoice(%q) = %q, want %q", name, got, token)
		}
	}
	if resolveVoice("Zephyr") != resolveVoice("Aria") {
		t.Error("unknown voice must resolve to the Aria token")
	}
}

func TestNarratorBlankText(t *testing.T) {
	narrator := NewElevenLabsNarrator(nil, &config.ElevenLabsConfig{ApiUrl: "http://unused", ApiKey: "key"}, testLogger{})
	_, err := narrator.Synthesize(context.Background(), outbound.SynthesizeNarrationParams{Script: "  \n "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestNarratorMissingCredential(t *testing.T) {
	narrator := NewElevenLabsNarrator(nil, &config.ElevenLabsConfig{ApiUrl: "http://unused"}, testLogger{})
	_, err := narrator.Synthesize(context.Background(), outbound.SynthesizeNarrationParams{Script: "Hello"})
	if !errors.Is(err, domain.ErrConfigMissing) {
		t.Fatalf("error = %v, want ErrConfigMissing", err)
	}
}

func TestNarratorUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	_, err := narratorFor(server).Synthesize(context.Background(), outbound.SynthesizeNarrationParams{
		Script: "Hello",
		Voice:  "Aria",
	})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("error = %v, want ErrUpstream", err)
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("error %q must carry status and body", err.Error())
	}
}

func TestNarratorEmptyAudio(t *testing.T) {
	server := newNarrationServer(t, "", http.StatusOK, nil)
	defer server.Close()

	_, err := narratorFor(server).Synthesize(context.Background(), outbound.SynthesizeNarrationParams{
		Script: "Hello",
		Voice:  "Aria",
	})
	if !errors.Is(err, domain.ErrEmptyResult) {
		t.Fatalf("error = %v, want ErrEmptyResult", err)
	}
}
