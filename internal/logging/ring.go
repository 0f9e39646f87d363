package logging

import (
	"bytes"
	"sync"
)

// Ring is an io.Writer that keeps the last N complete lines written to it.
// Frontends show it as an in-game debug panel.
type Ring struct {
	mu      sync.Mutex
	size    int
	lines   []string
	partial []byte
}

// NewRing creates a ring holding up to size lines.
func NewRing(size int) *Ring {
	return &Ring{size: max(1, size)}
}

// Write implements io.Writer.
func (r *Ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := append(r.partial, p...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		r.push(string(data[:i]))
		data = data[i+1:]
	}
	r.partial = append([]byte(nil), data...)
	return len(p), nil
}

func (r *Ring) push(line string) {
	r.lines = append(r.lines, line)
	if len(r.lines) > r.size {
		r.lines = r.lines[len(r.lines)-r.size:]
	}
}

// Lines returns up to n of the most recent lines, oldest first.
func (r *Ring) Lines(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 || n > len(r.lines) {
		n = len(r.lines)
	}
	out := make([]string, n)
	copy(out, r.lines[len(r.lines)-n:])
	return out
}

// Clear drops all stored lines.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
	r.partial = nil
}
