package mcpsrv

import (
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Nicolas-rosa/Pokedex/config"
)

type Config struct {
	Port               string
	AllowedOrigins     []string
	Stateless          bool
	EnableAdmin        bool
	APIKey             string
	RPS                float64
	Burst              int
	SessionTimeout     time.Duration
	CacheClearInterval time.Duration
}

func LoadConfig() Config {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	cfg := Config{
		Port:               port,
		AllowedOrigins:     config.ParseCSV(os.Getenv("POKEDEX_MCP_ALLOWED_ORIGINS")),
		Stateless:          config.EnvBool("POKEDEX_MCP_STATELESS", false),
		EnableAdmin:        config.EnvBool("POKEDEX_MCP_ENABLE_ADMIN", false),
		APIKey:             config.EnvString("POKEDEX_MCP_API_KEY", ""),
		RPS:                config.ParseFloat(os.Getenv("POKEDEX_MCP_RPS"), 2),
		Burst:              config.EnvInt("POKEDEX_MCP_BURST", 5),
		SessionTimeout:     config.EnvDuration("POKEDEX_MCP_SESSION_TIMEOUT", 15*time.Minute),
		CacheClearInterval: config.EnvDuration("POKEDEX_MCP_CACHE_CLEAR_INTERVAL", 30*time.Minute),
	}

	if cfg.RPS <= 0 {
		cfg.RPS = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}

	return cfg
}

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}
