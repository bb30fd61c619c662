package radix

import "github.com/savsgio/gotils/strconv"

// Param is a single name/value binding captured during Match.
type Param struct {
	Key   string
	Value string
}

// Params is a compact, append-only list of parameter bindings produced by a
// single Match call. Bindings up to MaxParams live inline; anything beyond
// that spills to a slice. Insert rejects patterns declaring more than
// MaxParams wildcards, so a Match never fills more than the inline array.
type Params struct {
	inline [MaxParams]Param
	n      int
	spill  []Param
}

// Len returns the number of bindings.
func (p *Params) Len() int {
	return p.n + len(p.spill)
}

// At returns the binding at index i, in insertion order.
func (p *Params) At(i int) Param {
	if i < p.n {
		return p.inline[i]
	}
	return p.spill[i-p.n]
}

// Get returns the value of the first binding named name.
func (p *Params) Get(name string) (string, bool) {
	for i := 0; i < p.Len(); i++ {
		if b := p.At(i); b.Key == name {
			return b.Value, true
		}
	}
	return "", false
}

// append adds a binding, borrowing value directly from the caller's path
// bytes via a zero-copy byte-to-string cast.
func (p *Params) append(key string, value []byte) {
	b := Param{Key: key, Value: strconv.B2S(value)}
	if p.n < len(p.inline) {
		p.inline[p.n] = b
		p.n++
		return
	}
	p.spill = append(p.spill, b)
}

// truncate discards every binding beyond the first n, used by the match
// engine to undo speculative bindings when a deeper branch fails and it
// backtracks to try a different alternative.
func (p *Params) truncate(n int) {
	if n >= p.Len() {
		return
	}
	if n >= p.n {
		p.spill = p.spill[:n-p.n]
		return
	}
	p.n = n
	p.spill = p.spill[:0]
}

// reset empties the list for reuse.
func (p *Params) reset() {
	p.n = 0
	p.spill = p.spill[:0]
}
