// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"unitconv-core/convert"

	"unitconv/internal/output"
	"unitconv/internal/reqfile"
	"unitconv/pkg/api"
)

// Config controls the batch pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
	Buffer  int // channel capacity per stage; <=0 means Threads*2
}

// Item is one converted (or rejected) request line.
type Item struct {
	Seq    int // 0-based position across all files
	File   string
	Line   int
	Input  string
	Result convert.Result
	Err    error
}

// API maps the item to the v1 wire schema.
func (it Item) API() api.ConversionV1 {
	v := output.ToAPI(it.Result, it.Err)
	v.SourceFile, v.Line, v.Input = it.File, it.Line, it.Input
	return v
}

// Convert runs one request record through conv.
func Convert(conv *convert.Converter, seq int, rec reqfile.Record) Item {
	it := Item{Seq: seq, File: rec.File, Line: rec.Line, Input: rec.Input}
	it.Result.Request = convert.Request{Domain: rec.Domain, From: rec.From, To: rec.To}
	if rec.Err != nil {
		it.Err = rec.Err
		return it
	}
	v, sanitized := convert.ParseValue(rec.Input)
	it.Result.Value = v
	res, err := conv.Do(convert.Request{Domain: rec.Domain, Value: v, From: rec.From, To: rec.To})
	res.Sanitized = sanitized
	it.Result, it.Err = res, err
	return it
}

// ForEachResult reads every request of files, converts them on cfg.Threads
// workers and calls visit once per line, ordered by (file, line).
// It returns the first error encountered: a visit error, a read error or
// the context's error.
func ForEachResult(
	parent context.Context,
	cfg Config,
	files []string,
	conv *convert.Converter,
	visit func(Item) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = cfg.Threads * 2
	}
	if conv == nil {
		conv = convert.New(nil)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	type job struct {
		seq int
		rec reqfile.Record
	}
	jobs := make(chan job, cfg.Buffer)
	results := make(chan Item, cfg.Buffer)

	// Feeder
	g.Go(func() error {
		defer close(jobs)
		seq := 0
		for _, fn := range files {
			err := reqfile.Stream(gctx, fn, func(rec reqfile.Record) error {
				select {
				case jobs <- job{seq: seq, rec: rec}:
					seq++
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				it := Convert(conv, j.seq, j.rec)
				select {
				case results <- it:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: reorder by sequence number.
	var (
		verr    error
		next    int
		pending = make(map[int]Item, cfg.Buffer)
	)
	for it := range results {
		if verr != nil {
			continue
		}
		pending[it.Seq] = it
		for {
			x, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := visit(x); err != nil {
				verr = err
				cancel()
				break
			}
		}
	}
	gerr := g.Wait()

	switch {
	case verr != nil:
		return verr
	case parent.Err() != nil:
		return parent.Err()
	default:
		return gerr
	}
}
