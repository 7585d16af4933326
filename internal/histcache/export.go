package histcache

import (
	"errors"
	"fmt"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/internal/parquet"
)

// ExecuteCacheExport dumps the history cache into a pair of Parquet files
// next to outputFile.
func ExecuteCacheExport(store contract.RevisionStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get cache status: %w", err)
	}
	if status.Revisions == 0 {
		return errors.New("no cached history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total revisions: %d\n", status.Revisions)
	fmt.Printf("Total metric values: %d\n", status.Values)

	revisions, err := store.GetAllRevisions()
	if err != nil {
		return fmt.Errorf("failed to retrieve revisions: %w", err)
	}
	values, err := store.GetAllValues()
	if err != nil {
		return fmt.Errorf("failed to retrieve metric values: %w", err)
	}

	revisionsFile := outputFile + ".revisions.parquet"
	if err := parquet.WriteRevisionsParquet(parquet.ConvertRevisionRecords(revisions), revisionsFile); err != nil {
		return fmt.Errorf("failed to write revisions: %w", err)
	}
	fmt.Printf("Exported %d revisions to: %s\n", len(revisions), revisionsFile)

	valuesFile := outputFile + ".values.parquet"
	if err := parquet.WriteValuesParquet(parquet.ConvertValueRecords(values), valuesFile); err != nil {
		return fmt.Errorf("failed to write metric values: %w", err)
	}
	fmt.Printf("Exported %d metric values to: %s\n", len(values), valuesFile)

	return nil
}
