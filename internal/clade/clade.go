// Package clade parses and caches the clade→telomeric-repeat reference
// database (spec.md §6, §4.9): a flat CSV mapping taxonomic Order to one or
// more candidate telomeric repeat motifs.
package clade

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/biogo/tidk/internal/tidkerr"
)

// Table maps a clade (Order) to its ordered, de-duplicated set of candidate
// telomeric repeat motifs.
type Table map[string][]string

// Motifs looks up clade's candidate motifs, failing with DatabaseMissing if
// the clade has no entry in the table.
func (t Table) Motifs(clade string) ([]string, error) {
	m, ok := t[clade]
	if !ok {
		return nil, tidkerr.New(tidkerr.DatabaseMissing, "unknown clade: "+clade)
	}
	return m, nil
}

const (
	colPhylum  = 0
	colOrder   = 1
	colFamily  = 2
	colSpecies = 3
	colRepeat  = 4
	colNotes   = 5
	colRef     = 6
)

// Parse reads the clade CSV contract `Phylum,Order,Family,Species,Telomeric
// repeat,Notes,Ref`, keying by Order and de-duplicating motifs. Rows with an
// empty Order are dropped.
func Parse(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, tidkerr.Wrap(tidkerr.BadInput, "reading clade csv header", err)
	}
	if len(header) < colRef+1 {
		return nil, tidkerr.New(tidkerr.BadInput, "clade csv header has too few columns")
	}

	table := make(Table)
	seen := make(map[string]map[string]bool)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, tidkerr.Wrap(tidkerr.BadInput, "reading clade csv row", err)
		}
		if len(row) <= colRepeat {
			continue
		}
		order := row[colOrder]
		if order == "" {
			continue
		}
		repeat := row[colRepeat]
		if repeat == "" {
			continue
		}
		if seen[order] == nil {
			seen[order] = make(map[string]bool)
		}
		if seen[order][repeat] {
			continue
		}
		seen[order][repeat] = true
		table[order] = append(table[order], repeat)
	}
	return table, nil
}

// DefaultCacheDir returns the OS-appropriate cache directory for this tool's
// clade database, creating it if necessary.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", tidkerr.Wrap(tidkerr.IO, "resolving user cache directory", err)
	}
	dir := filepath.Join(base, "tidk")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", tidkerr.Wrap(tidkerr.IO, "creating cache directory", err)
	}
	return dir, nil
}

const cacheFileName = "clades.csv"

// Fetch loads the clade table from cacheDir/clades.csv if present, otherwise
// performs a single HTTP GET of url, persists the response into the cache,
// and parses it.
func Fetch(ctx context.Context, url, cacheDir string) (Table, error) {
	cachePath := filepath.Join(cacheDir, cacheFileName)

	if f, err := os.Open(cachePath); err == nil {
		defer f.Close()
		return Parse(f)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building clade database request")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, tidkerr.Wrap(tidkerr.IO, "fetching clade database", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, tidkerr.New(tidkerr.IO, "fetching clade database: unexpected status "+resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, tidkerr.Wrap(tidkerr.IO, "reading clade database response", err)
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, tidkerr.Wrap(tidkerr.IO, "creating cache directory", err)
	}
	if err := os.WriteFile(cachePath, body, 0o644); err != nil {
		return nil, tidkerr.Wrap(tidkerr.IO, "writing clade database cache", err)
	}

	return Parse(bytes.NewReader(body))
}
