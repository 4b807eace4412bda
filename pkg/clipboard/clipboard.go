// Package clipboard provides the system clipboard write used as the
// program's output channel.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"codeclip/pkg/collect"
)

// Ensure Writer implements the collector's Clipboard interface.
var _ collect.Clipboard = (*Writer)(nil)

// Writer copies text to the platform clipboard.
type Writer struct{}

// New returns a Writer backed by the platform clipboard.
func New() *Writer {
	return &Writer{}
}

// Copy places text on the system clipboard in a single write. After it
// returns successfully, a clipboard read by any other process on the host
// yields exactly the text passed in.
func (w *Writer) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}
