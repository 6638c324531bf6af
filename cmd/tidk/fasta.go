package main

import (
	"github.com/biogo/tidk/internal/fastaio"
	"github.com/biogo/tidk/internal/scan"
)

// opener builds a scan.Opener that re-opens path on every call, closing the
// underlying file handle when the caller is done with it.
func opener(path string) scan.Opener {
	return func() (*fastaio.Iterator, func() error, error) {
		rc, err := fastaio.Open(path)
		if err != nil {
			return nil, nil, err
		}
		it := fastaio.NewIterator(rc)
		return it, rc.Close, nil
	}
}
