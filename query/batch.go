package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Batch is the YAML document read by LoadBatch:
//
//	queries:
//	  - kind: distance
//	    route: [A, B, C]
//	  - kind: paths-by-stops
//	    start: C
//	    end: C
//	    operator: "<="
//	    value: 3
type Batch struct {
	Queries []Query `yaml:"queries"`
}

// LoadBatch decodes a batch document. Queries are validated when run.
func LoadBatch(r io.Reader) ([]Query, error) {
	var b Batch
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("query: decode batch: %w", err)
	}

	return b.Queries, nil
}

// RunBatch answers every query concurrently, at most the configured
// concurrency at a time. Answers keep the input order. The first failure
// cancels the remaining queries and is returned with its index.
func (e *Engine) RunBatch(ctx context.Context, queries []Query) ([]Answer, error) {
	begin := time.Now()
	answers := make([]Answer, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, q := range queries {
		g.Go(func() error {
			a, err := e.Run(gctx, q)
			if err != nil {
				return fmt.Errorf("query %d (%s): %w", i, q.Kind, err)
			}
			answers[i] = a

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Error("batch failed", "queries", len(queries), "error", err)
		return nil, err
	}
	e.logger.Info("batch complete",
		"queries", len(queries),
		"concurrency", e.concurrency,
		"elapsed", time.Since(begin))

	return answers, nil
}
