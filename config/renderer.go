package config

import (
	"fmt"
	"os"
	"strings"
)

type RendererConfig struct {
	Endpoint string
}

func GetRendererConfig() (*RendererConfig, error) {
	endpoint := os.Getenv("RENDERER_API_URL")
	if endpoint == "" {
		return nil, fmt.Errorf("RENDERER_API_URL must be set")
	}

	return &RendererConfig{
		Endpoint: strings.TrimRight(endpoint, "/"),
	}, nil
}
