package fork

import (
	"bytes"
	"sync"
)

// buffer is a bytes.Buffer safe to read while the process writes into it
type buffer struct {
	m   sync.RWMutex
	buf bytes.Buffer
}

// Write implements io.Writer
func (b *buffer) Write(p []byte) (n int, err error) {
	b.m.Lock()
	defer b.m.Unlock()
	return b.buf.Write(p)
}

// Bytes returns a copy of everything written so far
func (b *buffer) Bytes() []byte {
	b.m.RLock()
	defer b.m.RUnlock()
	return bytes.Clone(b.buf.Bytes())
}
