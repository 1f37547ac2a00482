// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"unitconv/pkg/api"
)

// WriteText prints a header (optional) and one TSV row per conversion.
func WriteText(w io.Writer, list []api.ConversionV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, c := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(c)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText for a channel; it returns when in is closed or a
// write fails (remaining items are drained so senders never block).
func StreamText(w io.Writer, in <-chan api.ConversionV1, header bool) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for c := range in {
		if err != nil {
			continue
		}
		_, err = fmt.Fprintln(w, FormatRowTSV(c))
	}
	return err
}
