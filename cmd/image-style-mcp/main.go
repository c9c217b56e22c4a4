package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ironsheep/image-style-mcp/internal/config"
	"github.com/ironsheep/image-style-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("image-style-mcp - MCP server for photo style filters")
	fmt.Println()
	fmt.Println("Usage: image-style-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config <file>  Read settings from a TOML file")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMAGE_STYLE_LOG_LEVEL=debug        Log level (debug, info, warn, error)")
	fmt.Println("  IMAGE_STYLE_OUTPUT_DIR=<dir>       Where stylized images are written")
	fmt.Println("  IMAGE_STYLE_MAX_CONCURRENT=<n>     Parallel styles in a batch")
	fmt.Println("  IMAGE_STYLE_MAX_INPUT_BYTES=<n>    Largest accepted source file")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

func main() {
	var (
		configPath  string
		showVersion bool
		showHelp    bool
	)
	flag.StringVar(&configPath, "config", "", "path to a TOML config file")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.BoolVar(&showVersion, "v", false, "print version information")
	flag.BoolVar(&showHelp, "help", false, "print help")
	flag.BoolVar(&showHelp, "h", false, "print help")
	flag.Usage = usage
	flag.Parse()

	switch {
	case showVersion || flag.Arg(0) == "version":
		fmt.Printf("image-style-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case showHelp || flag.Arg(0) == "help":
		usage()
		return
	}

	// stdout is for MCP protocol
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("version", Version).
		Str("commit", GitCommit).
		Str("output_dir", cfg.OutputDir).
		Int("max_concurrent", cfg.MaxConcurrent).
		Msg("starting image-style-mcp")

	srv := server.New(cfg, log.Logger)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
