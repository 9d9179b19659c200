package benchmark

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ResultPattern matches the files the engine's benchmark runner emits into
// the results directory.
const ResultPattern = "benchmark_*.json"

// LoadResults reads all benchmark result files from a directory.
//
// Files that cannot be read or parsed are skipped after one diagnostic line
// on diag; loading continues with the remaining files. The summary document
// a previous run wrote into the directory matches the pattern too; it
// decodes to a record without frame samples and yields no analysis
// downstream.
//
// Arguments:
// - dir: Directory containing benchmark_*.json files. Existence is the
//   caller's responsibility.
// - diag: Destination for per-file load errors (the CLI passes stderr).
//   May be nil to discard them.
//
// Returns:
// - []Result: Records in glob order, each tagged with its source base name.
// - error: Error only if the directory cannot be listed at all.
func LoadResults(dir string, diag io.Writer) ([]Result, error) {
	if diag == nil {
		diag = io.Discard
	}

	files, err := filepath.Glob(filepath.Join(dir, ResultPattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list results directory: %w", err)
	}

	var results []Result
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(diag, "Error loading %s: %v\n", file, err)
			continue
		}

		result, err := ParseResult(data)
		if err != nil {
			fmt.Fprintf(diag, "Error loading %s: %v\n", file, err)
			continue
		}

		result.File = filepath.Base(file)
		results = append(results, result)
	}

	return results, nil
}
