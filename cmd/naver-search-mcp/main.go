package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/jikime/py-mcp-naver-search/pkg/mcpserver"
	"github.com/jikime/py-mcp-naver-search/pkg/naver"
)

// Filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("naver-search-mcp %s (%s, built %s)\n", version, Commit, BuildTime)
		return
	}

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	log := newLogger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	client := naver.NewClient(cfg, log)
	server := mcpserver.New(client, version, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("version", version).Msg("Naver search MCP server ready")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("MCP server exited with error")
	}
}

// newLogger writes to stderr only: stdout carries the MCP stdio transport.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if raw := strings.TrimSpace(os.Getenv("NAVER_LOG_LEVEL")); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func loadConfig(path string) (*naver.Config, error) {
	if path != "" {
		return naver.LoadConfigFile(path)
	}
	return naver.ConfigFromEnv(), nil
}
