package radix

import "github.com/valyala/bytebufferpool"

// bufPool supplies scratch buffers for unescaping route patterns during
// Insert. Escaping happens once per Insert call, off the Match hot path, so
// pooling here trades a pool lookup for the allocation Insert would
// otherwise pay on every call — the same trade the teacher makes pooling
// redirect URIs in router.go's Handler.
var bufPool bytebufferpool.Pool

// routeBuffer owns an unescaped copy of a route pattern together with the
// sorted, unique, in-bounds positions of every brace byte that came from an
// escape ({{ or }}) rather than a wildcard delimiter. Every brace byte that
// ends up in data is necessarily either an escape (recorded in escaped) or
// part of a {name}/{*name} token consumed separately by the wildcard
// parser — a plain static run never contains an un-recorded brace.
type routeBuffer struct {
	data    []byte
	escaped []int
	pooled  *bytebufferpool.ByteBuffer
}

// newRouteBuffer unescapes pattern ({{ -> {, }} -> }) into a pooled buffer,
// recording the position of each collapsed brace. Callers must call
// release once the buffer and every view derived from it are no longer
// needed (typically: everything that outlives it has already been copied
// into a Go string for a node's prefix).
func newRouteBuffer(pattern []byte) *routeBuffer {
	pooled := bufPool.Get()
	rb := &routeBuffer{pooled: pooled}
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if (c == '{' || c == '}') && i+1 < len(pattern) && pattern[i+1] == c {
			rb.escaped = append(rb.escaped, len(pooled.B))
			pooled.B = append(pooled.B, c)
			i++
			continue
		}
		pooled.B = append(pooled.B, c)
	}
	rb.data = pooled.B
	return rb
}

// release returns the buffer's scratch storage to the pool. Safe to call
// once; the routeBuffer must not be used afterwards.
func (rb *routeBuffer) release() {
	if rb.pooled != nil {
		bufPool.Put(rb.pooled)
		rb.pooled = nil
		rb.data = nil
	}
}

// view returns a routeView over the whole buffer.
func (rb *routeBuffer) view() routeView {
	return routeView{buf: rb.data, escaped: rb.escaped, base: 0}
}

// routeView is a borrowed, offset-tracking window into a routeBuffer (or
// into another routeView). Slicing never copies; base lets isEscaped map a
// view-local index back into the escape set recorded against the buffer's
// original coordinates.
type routeView struct {
	buf     []byte
	escaped []int
	base    int
}

// isEscaped reports whether buf[i] originated from an escaped brace pair.
func (v routeView) isEscaped(i int) bool {
	target := v.base + i
	lo, hi := 0, len(v.escaped)
	for lo < hi {
		mid := (lo + hi) / 2
		if v.escaped[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(v.escaped) && v.escaped[lo] == target
}

func (v routeView) sliceOff(k int) routeView {
	return routeView{buf: v.buf[k:], escaped: v.escaped, base: v.base + k}
}

func (v routeView) sliceUntil(k int) routeView {
	return routeView{buf: v.buf[:k], escaped: v.escaped, base: v.base}
}

func (v routeView) empty() bool { return len(v.buf) == 0 }

// escapeLiteral re-doubles every brace byte in s. Any '{' or '}' surviving
// into a static node's prefix can only have arrived there via an escape
// (the parser always splits static runs at an unescaped brace), so doubling
// every brace byte losslessly reconstructs the original escaped spelling
// without needing to carry escape positions on tree nodes themselves.
func escapeLiteral(s string) string {
	extra := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '}' {
			extra++
		}
	}
	if extra == 0 {
		return s
	}
	out := make([]byte, 0, len(s)+extra)
	for i := 0; i < len(s); i++ {
		c := s[i]
		out = append(out, c)
		if c == '{' || c == '}' {
			out = append(out, c)
		}
	}
	return string(out)
}
