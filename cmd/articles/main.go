package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	articles "github.com/goliatone/go-articles"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("articles: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("articles", flag.ExitOnError)
	source := fs.String("source", "content", "Path to the content repository root")
	output := fs.String("output", "dist", "Directory receiving the generated JSON tree")
	imageBase := fs.String("image-base", "", "Origin prefix for image URLs (empty emits the deferred placeholder)")
	collections := fs.String("collections", "", "Comma separated collections to build (defaults to blog,material)")
	logLevel := fs.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	logFormat := fs.String("log-format", "console", "Log format: json, console, pretty")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := articles.DefaultConfig()
	cfg.SourceDir = *source
	cfg.OutputDir = *output
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat
	if *imageBase != "" {
		cfg.ImageBaseURL = *imageBase
	}
	if *collections != "" {
		cfg.Collections = nil
		for _, name := range strings.Split(*collections, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Collections = append(cfg.Collections, articles.Collection(name))
			}
		}
	}

	module, err := articles.New(cfg)
	if err != nil {
		return err
	}

	result, err := module.Build(context.Background())
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	total := 0
	for _, entries := range result.Collections {
		total += len(entries)
	}
	fmt.Fprintf(stdout, "built %d entries in %s\n", total, result.Duration)
	fmt.Fprintln(stdout, articles.FormatReport(result.Report))

	// Broken links are diagnostics; the build output is still complete.
	return nil
}
