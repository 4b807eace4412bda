// File: pkg/collect/render.go
package collect

import "strings"

// Block format constants. Each file is wrapped in a rust-tagged code fence
// with a comment line naming its path, and blocks are separated by a blank
// line. The closing fence follows the content directly, so the file bytes
// between the markers stay exactly as read.
const (
	fenceOpen     = "```rust\n"
	fenceClose    = "```\n\n"
	commentPrefix = "// "
)

// Render concatenates the blocks into the final clipboard text. The output
// preserves the order of blocks, which is the traversal order.
func Render(blocks []FileBlock) string {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(fenceOpen)
		b.WriteString(commentPrefix)
		b.WriteString(blk.Path)
		b.WriteString("\n\n")
		b.WriteString(blk.Content)
		b.WriteString(fenceClose)
	}
	return b.String()
}
