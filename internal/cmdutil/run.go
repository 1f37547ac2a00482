package cmdutil

import (
	"context"

	"unitconv-core/convert"

	"unitconv/internal/pipeline"
)

// Counts summarises a RunStream call.
type Counts struct {
	Sent   int // items handed to send
	Failed int // items whose conversion failed
}

// RunStream runs the shared pipeline, maps every item with visit and streams
// the results via send. With strict set, the first failed item stops the run
// and its error is returned (after the item itself was sent).
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	files []string,
	conv *convert.Converter,
	strict bool,
	visit func(pipeline.Item) T,
	send func(T) error,
) (Counts, error) {
	var c Counts
	err := pipeline.ForEachResult(ctx, cfg, files, conv, func(it pipeline.Item) error {
		if err := send(visit(it)); err != nil {
			return err
		}
		c.Sent++
		if it.Err != nil {
			c.Failed++
			if strict {
				return &LineError{File: it.File, Line: it.Line, Err: it.Err}
			}
		}
		return nil
	})
	return c, err
}
