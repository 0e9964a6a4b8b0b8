// Package cloverfile reads the clover transaction summary document from a
// local JSON file, standing in for the real provider call.
package cloverfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/unkn0wn-root/slabcache"
)

// document mirrors the upstream response shape. The field names are the
// provider's contract, including the misspelled authorized total - do not
// "fix" it here.
type document struct {
	Data struct {
		CloverSummary []struct {
			Index   int    `json:"index"`
			Month   string `json:"month"`
			Summary struct {
				Settled    int64 `json:"settledTransactionsTotal"`
				Authorized int64 `json:"authorizedTransactionsTota"`
			} `json:"summary"`
		} `json:"cloverSummary"`
	} `json:"data"`
}

type Fetcher struct {
	path string
}

var _ slabcache.Fetcher = (*Fetcher)(nil)

func New(path string) *Fetcher {
	return &Fetcher{path: path}
}

// Fetch returns every entry found in the document, as-is. Window sizing and
// gap filling are the normalizer's job, not the data source's.
func (f *Fetcher) Fetch(ctx context.Context, _ int) (slabcache.Window, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("cloverfile: read %s: %w", f.path, err)
	}
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("cloverfile: parse %s: %w", f.path, err)
	}
	out := make(slabcache.Window, 0, len(doc.Data.CloverSummary))
	for _, row := range doc.Data.CloverSummary {
		out = append(out, slabcache.MonthlyEntry{
			Position:   row.Index,
			Month:      row.Month,
			Settled:    row.Summary.Settled,
			Authorized: row.Summary.Authorized,
		})
	}
	return out, nil
}
