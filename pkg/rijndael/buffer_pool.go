package rijndael

import (
	"sync"
)

const defaultBufferSize = 4096

// bufferPool provides reusable read buffers for the streaming paths.
//
//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, defaultBufferSize)

		return &buf
	},
}

func getBuffer() *[]byte {
	return bufferPool.Get().(*[]byte) //nolint:forcetypeassert
}

func putBuffer(buf *[]byte) {
	bufferPool.Put(buf)
}
