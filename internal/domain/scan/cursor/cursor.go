// Package cursor holds the opaque pagination token returned by a scan.
package cursor

// Cursor marks where the engine stopped. Callers pass it back unmodified;
// only the engine that produced it interprets its contents.
type Cursor map[string]any

// IsEmpty reports whether the cursor is absent.
func (c Cursor) IsEmpty() bool { return len(c) == 0 }
