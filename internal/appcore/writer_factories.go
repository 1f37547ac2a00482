package appcore

import (
	"io"

	"unitconv/internal/pipeline"
	"unitconv/internal/writers"
	"unitconv/pkg/api"
)

// ---------------- Result writer ----------------

type ResultWriterFactory struct {
	Format string
	Header bool
}

func NewResultWriterFactory(format string, header bool) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Header: header}
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- api.ConversionV1, <-chan error) {
	return writers.StartResultWriter(out, w.Format, w.Header, bufSize)
}

// ResultVisitor maps pipeline items to the wire schema.
func ResultVisitor(it pipeline.Item) api.ConversionV1 { return it.API() }
