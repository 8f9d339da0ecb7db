package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	opts := options{}
	flag.StringVar(&opts.outDir, "out", ".", "Directory for overlays and crops")
	flag.BoolVar(&opts.json, "json", false, "Print a JSON report per image to stdout")
	flag.BoolVar(&opts.crop, "crop", false, "Export every candidate to <name>-signature-<n>.png")
	flag.IntVar(&opts.padding, "padding", 0, "Pixels kept around exported crops")
	flag.BoolVar(&opts.ocr, "ocr", false, "Annotate candidates with Tesseract text")
	flag.StringVar(&opts.lang, "lang", "eng", "Tesseract language used with -ocr")
	flag.StringVar(&opts.configPath, "config", "", "YAML file overriding pipeline parameters")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "Images processed concurrently")
	logLevel := flag.String("log-level", envOr("SIGFIND_LOG_LEVEL", "info"), "debug, info, warn or error")
	showVersion := flag.Bool("version", false, "Print version information")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "sigfind - locate handwritten signatures on scanned pages")
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: sigfind [flags] <image>...")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		printVersion(os.Stdout, opts.ocr)
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sigfind: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(opts, flag.Args(), os.Stdout, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

// printVersion writes build information, plus the linked Tesseract version
// when withOCR is set.
func printVersion(w io.Writer, withOCR bool) {
	fmt.Fprintf(w, "sigfind %s\n", Version)
	fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	if withOCR {
		fmt.Fprintf(w, "  Tesseract:  %s\n", tesseractVersion())
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
