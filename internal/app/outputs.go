package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/zerr"
)

// outputPaths returns the default result file of every query. Queries sharing a
// stem, such as a/q.fa and b/q.fa or q.fa and q.fasta, are tagged with a hash of
// their path so that no two jobs write the same file.
func outputPaths(layout domain.Layout, queries []string) ([]string, error) {
	counts := make(map[string]int, len(queries))
	for _, query := range queries {
		counts[layout.OutputPath(query)]++
	}

	outputs := make([]string, len(queries))
	owners := make(map[string]string, len(queries))
	for i, query := range queries {
		output := layout.OutputPath(query)
		if counts[output] > 1 {
			output = layout.TaggedOutputPath(query, pathTag(query))
		}
		if other, ok := owners[output]; ok {
			err := zerr.With(zerr.New("queries share an output file"), "output", output)
			err = zerr.With(err, "query", query)
			err = zerr.With(err, "other_query", other)
			return nil, errors.Join(domain.ErrOutputCollision, err)
		}
		owners[output] = query
		outputs[i] = output
	}
	return outputs, nil
}

func pathTag(query string) string {
	abs, err := filepath.Abs(query)
	if err != nil {
		abs = filepath.Clean(query)
	}
	return fmt.Sprintf("%08x", uint32(xxhash.Sum64String(abs))) //nolint:gosec // truncation intended
}
