package handler

import (
	"bytes"
	"sync"
)

// Export buffers can grow large; keep them out of the pool
const maxPooledBufferSize = 64 << 10

var responseBuffers = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
