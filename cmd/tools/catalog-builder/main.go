// cmd/tools/catalog-builder/main.go

// catalog-builder embeds the template catalog offline and writes it to a
// JSON file, so the server can start without paying per-template embedding
// calls. Run it whenever the seed templates change.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"gameforge/internal/ai"
	"gameforge/internal/catalog"
	"gameforge/internal/common/config"
)

func main() {
	outputPath := flag.String("out", "configs/catalog.json", "Output path for the embedded catalog")
	inputPath := flag.String("in", "", "Optional input catalog JSON; defaults to the built-in seed templates")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall embedding timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: config load failed: %v\n", err)
		os.Exit(1)
	}

	provider, err := ai.NewProvider(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: AI provider initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()

	templates := catalog.Seed()
	if *inputPath != "" {
		// ReadFile tolerates entries without embeddings; EmbedAll fills them.
		templates, err = catalog.ReadFile(*inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading %s failed: %v\n", *inputPath, err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	embedded, err := catalog.EmbedAll(ctx, provider, templates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: embedding failed: %v\n", err)
		os.Exit(1)
	}

	if err := catalog.WriteFile(*outputPath, embedded); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s failed: %v\n", *outputPath, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d embedded templates to %s\n", len(embedded), *outputPath)
}
