package radix

import "errors"

// conflictSignal propagates the *node* a Conflict was detected against up
// through the recursive insert calls. Insert converts it into an owned
// *InsertError by walking the tree from the root once, only on the error
// path — success never pays for pattern reconstruction.
type conflictSignal[T any] struct {
	node *node[T]
}

func (c *conflictSignal[T]) Error() string { return "radix: conflict" }

// Insert adds pattern with value to the router. pattern follows the grammar
// static-text / {name} / {*name} / {{ / }}. It returns an *InsertError
// wrapping one of the Err* sentinels on failure. The pattern is validated
// before the tree is touched. A Conflict leaves every stored route, value
// and priority unchanged; a prefix split made earlier in the same descent
// may remain in place, which does not change what any path matches.
func (r *Router[T]) Insert(pattern []byte, value T) error {
	if len(pattern) == 0 {
		return newInsertError(ErrInvalidParam, "")
	}
	rb := newRouteBuffer(pattern)
	defer rb.release()
	v := rb.view()

	if _, err := countWildcards(v); err != nil {
		return newInsertError(err, string(pattern))
	}

	if r.root == nil {
		r.root = newStaticNode[T]("")
	}

	err := insertStatic(r.root, v, value, string(pattern))
	if err == nil {
		return nil
	}

	var cs *conflictSignal[T]
	if errors.As(err, &cs) {
		existing := reconstructPattern(r.root, cs.node)
		return newConflictError(string(pattern), existing)
	}
	var ie *InsertError
	if errors.As(err, &ie) {
		return ie
	}
	return newInsertError(err, string(pattern))
}

// insertStatic runs Case A/B/C of the insertion algorithm against a
// static-kind node n: split on prefix divergence, then hand off to
// insertContinuation for the exact-match / dispatch cases.
func insertStatic[T any](n *node[T], remaining routeView, value T, origPattern string) error {
	p := lcpStringBytes(n.prefix, remaining.buf)
	if p < len(n.prefix) {
		splitNode(n, p)
	}
	return insertContinuation(n, remaining.sliceOff(p), value, origPattern)
}

// insertContinuation handles Case B (remaining exhausted: store the value
// or report Conflict) and Case C (remaining non-empty: dispatch to a
// child) for any node kind. It increments n's own priority on every
// success path, which is how priority propagates up to the root as the
// recursion unwinds.
func insertContinuation[T any](n *node[T], remaining routeView, value T, origPattern string) error {
	if remaining.empty() {
		if n.hasValue {
			return &conflictSignal[T]{node: n}
		}
		n.hasValue = true
		n.value = value
		n.priority++
		return nil
	}
	if err := insertDispatch(n, remaining, value, origPattern); err != nil {
		return err
	}
	n.priority++
	return nil
}

// insertDispatch performs Case C's child selection: wildcard token at the
// front of remaining routes to the param/catchall slot, otherwise the
// longest static run before the next wildcard (or end of pattern) becomes
// or extends a static child.
func insertDispatch[T any](n *node[T], remaining routeView, value T, origPattern string) error {
	start, end, ok, err := findWildcard(remaining)
	if err != nil {
		return err
	}
	if ok && start == 0 {
		if isCatchAll(remaining, start, end) {
			return insertCatchAll(n, remaining, start, end, value)
		}
		return insertParam(n, remaining, start, end, value, origPattern)
	}

	if n.catchAll != nil {
		return &conflictSignal[T]{node: n.catchAll}
	}

	staticEnd := len(remaining.buf)
	if ok {
		staticEnd = start
	}
	b := remaining.buf[0]

	if child := n.findStatic(b); child != nil {
		if err := insertStatic(child, remaining, value, origPattern); err != nil {
			return err
		}
		n.sortStatic()
		return nil
	}

	newChild := newStaticNode[T](string(remaining.buf[:staticEnd]))
	if err := insertContinuation(newChild, remaining.sliceOff(staticEnd), value, origPattern); err != nil {
		return err
	}
	n.static = append(n.static, newChild)
	n.sortStatic()
	return nil
}

// insertParam attaches to or reuses n's single param slot. A sibling param
// with a different name, or an incompatible suffix sharing the same slot,
// is a Conflict.
func insertParam[T any](n *node[T], remaining routeView, start, end int, value T, origPattern string) error {
	if n.catchAll != nil {
		return &conflictSignal[T]{node: n.catchAll}
	}

	name := wildcardName(remaining, start, end)
	if n.param == nil {
		n.param = &node[T]{prefix: "{" + name + "}", kind: paramKind, paramName: name}
	} else if n.param.paramName != name {
		return &conflictSignal[T]{node: n.param}
	}
	pn := n.param

	rest := remaining.sliceOff(end)
	litEnd := literalRunEnd(rest)
	suffix := string(rest.buf[:litEnd])

	if !pn.suffixSet {
		pn.suffix = suffix
		pn.suffixSet = true
	} else if pn.suffix != suffix {
		return &conflictSignal[T]{node: pn}
	}

	return insertContinuation(pn, rest.sliceOff(litEnd), value, origPattern)
}

// insertCatchAll attaches a {*name} leaf as n's sole child. Per the
// invariant, a catchall can never coexist with any other child.
func insertCatchAll[T any](n *node[T], remaining routeView, start, end int, value T) error {
	if n.catchAll != nil {
		return &conflictSignal[T]{node: n.catchAll}
	}
	if n.param != nil {
		return &conflictSignal[T]{node: n.param}
	}
	if len(n.static) > 0 {
		return &conflictSignal[T]{node: n.static[0]}
	}
	name := wildcardName(remaining, start, end)
	n.catchAll = &node[T]{kind: catchAllKind, catchAllName: name, hasValue: true, value: value, priority: 1}
	return nil
}

// splitNode carves n at byte offset p: the tail becomes a new static child
// carrying everything n used to own (value, priority, children), and n
// shrinks to the shared prefix with no value of its own.
func splitNode[T any](n *node[T], p int) {
	child := &node[T]{
		prefix:   n.prefix[p:],
		kind:     staticKind,
		priority: n.priority,
		hasValue: n.hasValue,
		value:    n.value,
		static:   n.static,
		param:    n.param,
		catchAll: n.catchAll,
	}
	n.prefix = n.prefix[:p]
	var zero T
	n.hasValue = false
	n.value = zero
	n.static = []*node[T]{child}
	n.param = nil
	n.catchAll = nil
}

// lcpStringBytes is longestCommonPrefix specialized for comparing a node's
// string prefix against a byte-slice view without an intermediate copy.
func lcpStringBytes(a string, b []byte) int {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	i := 0
	for i < max && a[i] == b[i] {
		i++
	}
	return i
}

// reconstructPattern walks from root to target, concatenating each
// visited node's contribution to the pattern, and re-escaping literal
// braces along the way. Used only on the Conflict error path.
func reconstructPattern[T any](root, target *node[T]) string {
	var parts []string
	var walk func(n *node[T]) bool
	walk = func(n *node[T]) bool {
		var part string
		switch n.kind {
		case staticKind:
			part = escapeLiteral(n.prefix)
		case paramKind:
			part = "{" + n.paramName + "}" + escapeLiteral(n.suffix)
		case catchAllKind:
			part = "{*" + n.catchAllName + "}"
		}
		parts = append(parts, part)
		if n == target {
			return true
		}
		for _, c := range n.static {
			if walk(c) {
				return true
			}
		}
		if n.param != nil && walk(n.param) {
			return true
		}
		if n.catchAll != nil && walk(n.catchAll) {
			return true
		}
		parts = parts[:len(parts)-1]
		return false
	}
	walk(root)
	return joinParts(parts)
}

func joinParts(parts []string) string {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	buf := make([]byte, 0, total)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return string(buf)
}
