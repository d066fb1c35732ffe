package config

import (
	"fmt"
	"os"
)

const defaultElevenLabsApiUrl = "https://api.elevenlabs.io/v1/text-to-speech"

type ElevenLabsConfig struct {
	ApiUrl string
	ApiKey string
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}

	apiUrl := os.Getenv("ELEVEN_LABS_API_URL")
	if apiUrl == "" {
		apiUrl = defaultElevenLabsApiUrl
	}

	return &ElevenLabsConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
	}, nil
}
