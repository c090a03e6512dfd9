// ABOUTME: Tests for pooled read buffers and string builders
// ABOUTME: Checks full-length buffers, foreign-slice rejection, and reset on reuse

package pool

import "testing"

func TestReadBuffer_FullLength(t *testing.T) {
	t.Parallel()

	bp := GetReadBuffer()
	if len(*bp) != ReadBufferSize {
		t.Fatalf("len = %d, want %d", len(*bp), ReadBufferSize)
	}
	*bp = (*bp)[:3]
	PutReadBuffer(bp)

	again := GetReadBuffer()
	if len(*again) != ReadBufferSize {
		t.Errorf("reused buffer len = %d, want %d", len(*again), ReadBufferSize)
	}
	PutReadBuffer(again)
}

func TestPutReadBuffer_RejectsForeign(t *testing.T) {
	t.Parallel()

	small := make([]byte, 8)
	PutReadBuffer(&small) // must not poison the pool
	PutReadBuffer(nil)

	bp := GetReadBuffer()
	if cap(*bp) != ReadBufferSize {
		t.Errorf("cap = %d, want %d", cap(*bp), ReadBufferSize)
	}
}

func TestStringBuilder_Reset(t *testing.T) {
	t.Parallel()

	sb := GetStringBuilder()
	sb.WriteString("stale")
	PutStringBuilder(sb)

	if got := GetStringBuilder(); got.Len() != 0 {
		t.Errorf("pooled builder not reset: %q", got.String())
	}
}
