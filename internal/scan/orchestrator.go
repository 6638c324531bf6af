// Package scan implements the Scan Orchestrator (spec.md §4.6): it drives
// the Chunk Scanner and Run Aggregator in parallel across FASTA records,
// either for a single chunk length or across a [kmin,kmax] range, and returns
// the accumulated RepeatRuns, which the caller passes to the Canonical
// Estimator once per scan.
package scan

import (
	"sync"

	"github.com/biogo/tidk/internal/chunkscan"
	"github.com/biogo/tidk/internal/dna"
	"github.com/biogo/tidk/internal/fastaio"
	"github.com/biogo/tidk/internal/repeatrun"
)

// BedRow is one row of the "explore locations" bed output (spec.md §4.7).
type BedRow struct {
	ID       string
	Start    int
	End      int
	Count    int
	Sequence string
	SeqLen   int
}

// Opener produces a fresh readable FASTA stream. The Scan Orchestrator calls
// it once per chunk length scanned, mirroring the original tool re-opening
// its input file on every pass of a [kmin,kmax] range.
type Opener func() (*fastaio.Iterator, func() error, error)

// manager bounds the number of concurrently running per-record workers,
// grounded on the acquire/release/wait semaphore idiom used for concurrent
// alignment jobs in the teacher's own family-consensus tool.
type manager struct {
	limit chan struct{}
	wg    sync.WaitGroup
}

func newManager(workers int) *manager {
	if workers <= 0 {
		workers = 1
	}
	return &manager{limit: make(chan struct{}, workers)}
}

func (m *manager) acquire() {
	m.wg.Add(1)
	m.limit <- struct{}{}
}

func (m *manager) release() {
	<-m.limit
	m.wg.Done()
}

func (m *manager) wait() { m.wg.Wait() }

// outcome is one worker's result for a single record, handed to the
// collector goroutine over a channel.
type outcome struct {
	runs []repeatrun.Run
	bed  []BedRow
}

// Single runs the Chunk Scanner and Run Aggregator for one chunk length k
// across every record produced by open, distributing records over a worker
// pool of the given size. It returns every RepeatRun surviving the frequency
// filter and the matching bed rows. Emission order is not guaranteed to match
// input FASTA order.
func Single(open Opener, k int, distance float64, threshold, workers int) ([]repeatrun.Run, []BedRow, error) {
	it, closeFn, err := open()
	if err != nil {
		return nil, nil, err
	}
	defer closeFn()

	m := newManager(workers)
	results := make(chan outcome)

	var runs []repeatrun.Run
	var bed []BedRow
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for o := range results {
			runs = append(runs, o.runs...)
			bed = append(bed, o.bed...)
		}
	}()

	for it.Next() {
		r := it.Record()
		m.acquire()
		go func(r dna.Record) {
			defer m.release()
			rr, bb := scanRecord(r, k, distance, threshold)
			results <- outcome{runs: rr, bed: bb}
		}(r)
	}
	m.wait()
	close(results)
	<-collected

	if err := it.Err(); err != nil {
		return nil, nil, err
	}
	return runs, bed, nil
}

// Range runs Single once per chunk length in [kmin, kmax], re-opening the
// input for every k, and accumulates RepeatRuns and bed rows across the
// whole range.
func Range(open Opener, kmin, kmax int, distance float64, threshold, workers int) ([]repeatrun.Run, []BedRow, error) {
	var runs []repeatrun.Run
	var bed []BedRow
	for k := kmin; k <= kmax; k++ {
		rr, bb, err := Single(open, k, distance, threshold, workers)
		if err != nil {
			return nil, nil, err
		}
		runs = append(runs, rr...)
		bed = append(bed, bb...)
	}
	return runs, bed, nil
}

func scanRecord(r dna.Record, k int, distance float64, threshold int) ([]repeatrun.Run, []BedRow) {
	var runs []repeatrun.Run
	for _, sub := range chunkscan.SplitPair(r.Seq, distance) {
		hits := chunkscan.Scan(sub, k)
		aggregated := repeatrun.Aggregate(hits, k, r.ID)
		merged := repeatrun.MergeAdjacentRotations(aggregated)
		runs = append(runs, repeatrun.FilterByFrequency(merged, threshold)...)
	}

	bed := make([]BedRow, len(runs))
	for i, run := range runs {
		bed[i] = BedRow{
			ID:       run.ID,
			Start:    run.Start,
			End:      run.End,
			Count:    run.Count(),
			Sequence: run.Sequence,
			SeqLen:   len(run.Sequence),
		}
	}
	return runs, bed
}
