package radix

import "testing"

func TestParamsAppendGet(t *testing.T) {
	var p Params
	path := []byte("42")
	p.append("id", path)

	got, ok := p.Get("id")
	if !ok || got != "42" {
		t.Fatalf("Get(id) = (%q, %v), want (42, true)", got, ok)
	}
	if _, ok := p.Get("missing"); ok {
		t.Fatalf("Get(missing) should report false")
	}
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
}

func TestParamsGetReturnsFirstBinding(t *testing.T) {
	var p Params
	p.append("a", []byte("1"))
	p.append("a", []byte("2"))

	got, ok := p.Get("a")
	if !ok || got != "1" {
		t.Fatalf("Get(a) = (%q, %v), want (1, true)", got, ok)
	}
}

func TestParamsSpillBeyondInline(t *testing.T) {
	var p Params
	for i := 0; i < MaxParams+3; i++ {
		p.append("k", []byte{byte('a' + i)})
	}
	if p.Len() != MaxParams+3 {
		t.Fatalf("Len() = %d, want %d", p.Len(), MaxParams+3)
	}
	last := p.At(p.Len() - 1)
	if last.Value != string(rune('a'+MaxParams+2)) {
		t.Fatalf("last binding = %q, want spilled value preserved", last.Value)
	}
}

func TestParamsTruncate(t *testing.T) {
	var p Params
	p.append("a", []byte("1"))
	p.append("b", []byte("2"))
	p.append("c", []byte("3"))

	p.truncate(1)
	if p.Len() != 1 {
		t.Fatalf("Len() after truncate = %d, want 1", p.Len())
	}
	if v, _ := p.Get("a"); v != "1" {
		t.Fatalf("Get(a) after truncate = %q, want 1", v)
	}
	if _, ok := p.Get("b"); ok {
		t.Fatalf("Get(b) after truncate should report false")
	}
}

func TestParamsTruncateAcrossSpillBoundary(t *testing.T) {
	var p Params
	for i := 0; i < MaxParams+2; i++ {
		p.append("k", []byte{byte('a' + i)})
	}
	p.truncate(MaxParams - 1)
	if p.Len() != MaxParams-1 {
		t.Fatalf("Len() = %d, want %d", p.Len(), MaxParams-1)
	}
}
