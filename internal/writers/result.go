package writers

import (
	"io"

	"unitconv/internal/output"
	"unitconv/internal/streamenc"
	"unitconv/pkg/api"
)

func init() {
	Register(output.FormatText, startText)
	Register(output.FormatJSON, startJSON)
	Register(output.FormatJSONL, func(out io.Writer, _ bool, bufSize int) (chan<- api.ConversionV1, <-chan error) {
		return streamenc.Start[api.ConversionV1](out, bufSize, streamenc.JSONLines, IsBrokenPipe)
	})
	Register(output.FormatYAML, func(out io.Writer, _ bool, bufSize int) (chan<- api.ConversionV1, <-chan error) {
		return streamenc.Start[api.ConversionV1](out, bufSize, streamenc.YAMLDocs, IsBrokenPipe)
	})
}

func chans(bufSize int) (chan api.ConversionV1, chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	return make(chan api.ConversionV1, bufSize), make(chan error, 1)
}

// startText streams TSV rows as they arrive.
func startText(out io.Writer, header bool, bufSize int) (chan<- api.ConversionV1, <-chan error) {
	in, errCh := chans(bufSize)
	go func() {
		err := output.StreamText(out, in, header)
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}

// startJSON buffers everything and writes one indented array.
func startJSON(out io.Writer, _ bool, bufSize int) (chan<- api.ConversionV1, <-chan error) {
	in, errCh := chans(bufSize)
	go func() {
		buf := []api.ConversionV1{}
		for c := range in {
			buf = append(buf, c)
		}
		err := output.WriteJSON(out, buf)
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
