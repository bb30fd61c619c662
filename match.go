package radix

import "bytes"

// Match looks up path against the stored routes. On success it returns a
// pointer into tree storage — valid until the next Insert, Remove or
// MergeFrom on this router — together with the captured parameter
// bindings. MatchMut is identical; it exists only so read-only and
// mutating call sites can each use the name that documents their intent.
func (r *Router[T]) Match(path []byte) (*T, Params, bool) {
	var params Params
	if r.root == nil {
		return nil, params, false
	}
	n, ok := matchStatic(r.root, path, &params)
	if !ok {
		return nil, params, false
	}
	return &n.value, params, true
}

// MatchMut is Match under a name that reads better at call sites that
// intend to mutate the matched value through the returned pointer. Go has
// no const/mut reference distinction, so the two are the same operation.
func (r *Router[T]) MatchMut(path []byte) (*T, Params, bool) {
	return r.Match(path)
}

// matchStatic consumes n's own prefix from path, failing immediately if
// path doesn't start with it, then continues at n's children.
func matchStatic[T any](n *node[T], path []byte, params *Params) (*node[T], bool) {
	if !bytes.HasPrefix(path, []byte(n.prefix)) {
		return nil, false
	}
	return matchContinue(n, path[len(n.prefix):], params)
}

// matchContinue implements the per-node decision of the match algorithm:
// succeed on an exhausted path only if n itself holds a value, otherwise
// try static, then param, then catchall children in that order, undoing
// any speculative param bindings a failed branch left behind.
func matchContinue[T any](n *node[T], path []byte, params *Params) (*node[T], bool) {
	if len(path) == 0 {
		if n.hasValue {
			return n, true
		}
		return nil, false
	}

	mark := params.Len()

	for _, c := range n.static {
		if c.prefix[0] != path[0] {
			continue
		}
		if res, ok := matchStatic(c, path, params); ok {
			return res, true
		}
		params.truncate(mark)
		break
	}

	if pn := n.param; pn != nil {
		segEnd := 0
		for segEnd < len(path) && path[segEnd] != '/' {
			segEnd++
		}
		valueEnd := segEnd
		matches := true
		if pn.suffix != "" {
			sl := len(pn.suffix)
			if segEnd < sl || string(path[segEnd-sl:segEnd]) != pn.suffix {
				matches = false
			} else {
				valueEnd = segEnd - sl
			}
		}
		if matches {
			params.append(pn.paramName, path[:valueEnd])
			if res, ok := matchContinue(pn, path[segEnd:], params); ok {
				return res, true
			}
			params.truncate(mark)
		}
	}

	if n.catchAll != nil {
		params.append(n.catchAll.catchAllName, path)
		return n.catchAll, true
	}

	return nil, false
}
