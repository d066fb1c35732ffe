package config

import (
	"os"
	"strings"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

func GetServerConfig() *ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	return &ServerConfig{
		Port:           port,
		AllowedOrigins: origins,
	}
}
