// Package radix is a high performance route pattern store.
//
// It indexes byte-string route patterns — static text, {name} parameters
// and a trailing {*name} catch-all — into a compressed prefix tree and
// matches concrete request paths against them in time proportional to the
// length of the path. It carries no notion of HTTP methods, middleware or
// body parsing; those are the job of whatever sits on top of Router[T].
package radix
