package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"

	"sentiment-lab/observability"
	"sentiment-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// inspect lists the feature runs stored in BadgerDB, and with -run dumps
// the top terms of one bundle.
func main() {
	dbPath := flag.String("db", "data/badger", "Path to badger DB")
	runID := flag.String("run", "", "Run ID to inspect in detail")
	topN := flag.Int("top", 20, "Number of top terms to display")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repo := repositories.NewFeatureRepository(db, slog.Default())

	if *runID != "" {
		bundle, err := repo.Load(*runID)
		if err != nil {
			log.Fatal("Error loading bundle: ", err)
		}
		vectors := append(bundle.Train.Vectors, bundle.Test.Vectors...)
		observability.RenderTopFeatures(os.Stdout, observability.TopFeatures(vectors, bundle.Terms, *topN))
		return
	}

	runs, err := repo.ListRuns()
	if err != nil {
		log.Fatal("Error listing runs: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Run ID", "Created", "Vocabulary", "Train", "Test"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, run := range runs {
		table.Append([]string{
			run.RunID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			itoa(run.Vocabulary),
			itoa(run.TrainSize),
			itoa(run.TestSize),
		})
	}
	table.Render()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
