package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/sigfind/internal/server"
	"github.com/ironsheep/sigfind/internal/signature"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("signature-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("signature-mcp - MCP server for locating signatures on scanned pages")
			fmt.Println()
			fmt.Println("Usage: signature-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SIGFIND_LOG_LEVEL=debug      Log level (debug, info, warn, error)")
			fmt.Println("  SIGFIND_CONFIG=/path.yaml    Pipeline parameters")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// stdout is for MCP protocol, so logs go to stderr
	level := zapcore.WarnLevel
	if v := os.Getenv("SIGFIND_LOG_LEVEL"); v != "" {
		if lvl, err := zapcore.ParseLevel(v); err == nil {
			level = lvl
		}
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	logger, err := config.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "signature-mcp: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg := signature.DefaultConfig()
	if path := os.Getenv("SIGFIND_CONFIG"); path != "" {
		if cfg, err = signature.LoadConfig(path); err != nil {
			logger.Fatal("failed to load config", zap.Error(err))
		}
	}

	det, err := signature.NewDetector(cfg, signature.WithLogger(logger))
	if err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	logger.Debug("starting", zap.String("version", Version), zap.String("commit", GitCommit))

	srv := server.New(det, logger, Version)
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
