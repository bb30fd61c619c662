package radix

// findWildcard scans v for the next wildcard range [start, end) such that
// v.buf[start] == '{' and v.buf[end-1] == '}', both unescaped. It reports
// ok == false when no unescaped '{' remains before the end of v (a stray
// unescaped '}' before that point is still an error, not a "none found").
func findWildcard(v routeView) (start, end int, ok bool, err error) {
	for i := 0; i < len(v.buf); i++ {
		c := v.buf[i]
		if c == '}' && !v.isEscaped(i) {
			return 0, 0, false, ErrInvalidParam
		}
		if c != '{' || v.isEscaped(i) {
			continue
		}
		start = i
		for end = i + 1; end < len(v.buf); end++ {
			if v.buf[end] == '}' && !v.isEscaped(end) {
				if err := validateWildcardBody(v.buf[start+1 : end]); err != nil {
					return 0, 0, false, err
				}
				return start, end + 1, true, nil
			}
			if v.buf[end] == '{' && !v.isEscaped(end) {
				return 0, 0, false, ErrInvalidParam
			}
		}
		return 0, 0, false, ErrInvalidParam
	}
	return 0, 0, false, nil
}

// validateWildcardBody checks the bytes strictly between '{' and '}' of a
// single wildcard token: body is "name" or "*name" per the pattern grammar.
func validateWildcardBody(body []byte) error {
	if len(body) == 0 {
		return ErrInvalidParam
	}
	name := body
	if body[0] == '*' {
		name = body[1:]
		if len(name) == 0 {
			return ErrInvalidParam
		}
	}
	for _, c := range name {
		switch c {
		case '{', '}', '/', '*':
			return ErrInvalidParam
		}
	}
	if name[len(name)-1] == '*' {
		return ErrInvalidParam
	}
	return nil
}

// isCatchAll reports whether the wildcard body v.buf[start+1:end-1] begins
// with '*', i.e. the token is {*name} rather than {name}.
func isCatchAll(v routeView, start, end int) bool {
	return v.buf[start+1] == '*'
}

// wildcardName extracts the parameter name from a wildcard token
// v.buf[start:end], stripping the leading '*' marker for catchalls.
func wildcardName(v routeView, start, end int) string {
	if isCatchAll(v, start, end) {
		return string(v.buf[start+2 : end-1])
	}
	return string(v.buf[start+1 : end-1])
}

// literalRunEnd returns the length of the literal run at the front of v
// that belongs to the current segment: it stops at the first '/' or
// unescaped '{', whichever comes first, or at the end of v. Used both to
// find a param's suffix at insert time and to verify it at remove time.
func literalRunEnd(v routeView) int {
	i := 0
	for i < len(v.buf) {
		c := v.buf[i]
		if c == '/' || (c == '{' && !v.isEscaped(i)) {
			break
		}
		i++
	}
	return i
}

// countWildcards walks v counting wildcard tokens without building any
// tree structure, so Insert can enforce TooManyParams before mutating.
// It also enforces catch-all placement: a {*name} token must be the final
// segment of the pattern and must begin immediately after a '/'.
func countWildcards(v routeView) (int, error) {
	count := 0
	cursor := v
	for {
		start, end, ok, err := findWildcard(cursor)
		if err != nil {
			return 0, err
		}
		if !ok {
			return count, nil
		}
		count++
		if count > MaxParams {
			return 0, ErrTooManyParams
		}
		if isCatchAll(cursor, start, end) {
			if start == 0 || cursor.buf[start-1] != '/' {
				return 0, ErrInvalidCatchAll
			}
			if end != len(cursor.buf) {
				return 0, ErrInvalidCatchAll
			}
			return count, nil
		}
		cursor = cursor.sliceOff(end)
	}
}
