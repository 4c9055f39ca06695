package board

import (
	"fmt"
	"io"
	"sync"
)

// WriterConsole is a Console that writes one line per call to an io.Writer
type WriterConsole struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterConsole wraps w
func NewWriterConsole(w io.Writer) *WriterConsole {
	return &WriterConsole{w: w}
}

// Println implements Console; write errors are dropped
func (c *WriterConsole) Println(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, line)
}
