package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"sentiment-lab/repositories"

	"github.com/blugelabs/bluge"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BlugeFilepath string `envconfig:"BLUGE_FILEPATH" default:"data/bluge"`
	Limit         int    `envconfig:"EXPLORE_LIMIT" default:"10"`
}

// explore runs term queries against the indexed cleaned corpus.
// Usage: explore <term> [term...]
func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("config error: ", err)
	}
	flag.Parse()
	terms := flag.Args()
	if len(terms) == 0 {
		fmt.Fprintln(os.Stderr, "usage: explore <term> [term...]")
		os.Exit(2)
	}

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(cfg.BlugeFilepath))
	if err != nil {
		log.Fatal("Error while opening corpus index: ", err)
	}
	defer writer.Close()

	index := repositories.NewCorpusIndex(writer, slog.Default())
	ctx := context.Background()

	for _, term := range terms {
		hits, err := index.Search(ctx, term, cfg.Limit)
		if err != nil {
			log.Fatal("search failed: ", err)
		}

		color.Yellow.Printf("%q — %d hit(s)\n", term, len(hits))
		for _, hit := range hits {
			color.Cyan.Printf("  [%s] %s: %s\n", hit.Label, hit.ID, hit.Text)
		}
	}
}
