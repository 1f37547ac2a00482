package integration

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"unitconv/internal/batchapp"
	"unitconv/internal/reqfile"
)

func TestCtrlC_MidBatch_Exit130(t *testing.T) {
	t.Setenv("UNITCONV_CONFIG", "")

	// Endless stdin: the batch can only stop through cancellation.
	pr, pw := io.Pipe()
	go func() {
		for i := 0; ; i++ {
			if _, err := fmt.Fprintf(pw, "length %d m km\n", i); err != nil {
				return
			}
		}
	}()
	old := reqfile.Stdin
	reqfile.Stdin = pr
	defer func() {
		reqfile.Stdin = old
		_ = pr.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	code := batchapp.RunContext(ctx, []string{"-t", "2", "-"}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
