// ABOUTME: sync.Pool wrappers for read scratch buffers and output builders
// ABOUTME: Keeps per-poll reads allocation-free apart from the returned chunk

package pool

import (
	"strings"
	"sync"
)

// ReadBufferSize is the capacity of pooled read buffers.
const ReadBufferSize = 4096

var readBufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, ReadBufferSize)
		return &b
	},
}

// GetReadBuffer returns a full-length scratch buffer from the pool.
func GetReadBuffer() *[]byte {
	bp := readBufferPool.Get().(*[]byte)
	*bp = (*bp)[:cap(*bp)]
	return bp
}

// PutReadBuffer returns a scratch buffer to the pool.
func PutReadBuffer(bp *[]byte) {
	if bp == nil || cap(*bp) != ReadBufferSize {
		return
	}
	readBufferPool.Put(bp)
}

var stringBuilderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

// GetStringBuilder returns a strings.Builder from the pool.
func GetStringBuilder() *strings.Builder {
	sb := stringBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// PutStringBuilder returns a strings.Builder to the pool.
func PutStringBuilder(sb *strings.Builder) {
	if sb == nil {
		return
	}
	sb.Reset()
	stringBuilderPool.Put(sb)
}
