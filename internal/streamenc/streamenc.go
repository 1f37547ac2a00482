// Package streamenc runs a record encoder on its own goroutine: callers send
// values on a channel and receive the final error once the channel is closed.
// It backs the JSONL (one JSON object per line) and YAML (one document per
// value) writers.
package streamenc

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Encoder writes one value per call. Encoders that buffer (YAML) also
// implement io.Closer and are closed before the output is flushed.
type Encoder interface {
	Encode(v any) error
}

// NewEncoder builds an Encoder over w.
type NewEncoder func(w io.Writer) Encoder

// JSONLines encodes each value as one compact JSON line.
func JSONLines(w io.Writer) Encoder { return json.NewEncoder(w) }

// YAMLDocs encodes each value as a YAML document separated by "---".
func YAMLDocs(w io.Writer) Encoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return enc
}

// Reuse a 64 KiB buffered writer across stream writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up an encoder goroutine for values of type T.
//   - newEnc: encoder constructor bound to the buffered output
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
//
// After an encode error the goroutine keeps draining in so that senders do
// not block; the first error is reported.
func Start[T any](out io.Writer, bufSize int, newEnc NewEncoder, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := newEnc(bw)
		var err error
		for v := range in {
			if err != nil {
				continue
			}
			err = enc.Encode(v)
		}
		if c, ok := enc.(io.Closer); ok && err == nil {
			err = c.Close()
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && isBroken != nil && isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
