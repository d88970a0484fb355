package charmap

import (
	"unicode/utf8"
)

// CharMapper substitutes characters of Unicode text according to a
// validated specification. A CharMapper is created with New or
// NewWithDefault, is immutable after construction, and is safe for
// unsynchronized concurrent use.
type CharMapper struct {
	table      *charTable
	hasDefault bool
	deflt      string
}

// New builds a CharMapper from spec. Characters without an explicit rule
// pass through unchanged.
//
// New fails with a TypeError if spec is nil or carries an ill-typed key
// or value, and with an InvalidKeyError if a key is syntactically invalid
// or denotes an out-of-order range. An empty spec is valid and yields the
// identity mapping.
func New(spec Spec) (*CharMapper, error) {
	return build(spec, false, "")
}

// NewWithDefault is like New, but characters without an explicit rule are
// replaced by dflt. dflt must be replacement text or nil; nil means no
// default, i.e. pass-through, and any other type fails with a TypeError.
// Note that an empty string default is not a pass-through: it deletes
// every character the spec does not cover.
func NewWithDefault(spec Spec, dflt interface{}) (*CharMapper, error) {
	switch d := dflt.(type) {
	case nil:
		return build(spec, false, "")
	case string:
		if !utf8.ValidString(d) {
			return nil, typeErr("default replacement", dflt)
		}
		return build(spec, true, d)
	default:
		return nil, typeErr("default replacement", dflt)
	}
}

func build(spec Spec, hasDefault bool, dflt string) (*CharMapper, error) {
	if spec == nil {
		return nil, typeErr("character-map specification", nil)
	}
	entries, err := validateEntries(spec)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("building character map from %d declarations", len(entries))
	return &CharMapper{
		table:      buildTable(entries),
		hasDefault: hasDefault,
		deflt:      dflt,
	}, nil
}

// MapString substitutes every character of s according to the mapper's
// table and returns the result. Characters with a rule are replaced
// (possibly by nothing), all others by the default replacement, if any,
// or else copied through unchanged.
//
// s must be well-formed UTF-8; otherwise MapString fails with a
// TypeError. Substitution walks s by code point, so characters outside
// the Basic Multilingual Plane are never split.
func (cm *CharMapper) MapString(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", typeErr("input text", s)
	}
	if s == "" {
		return "", nil
	}
	buf := borrowBuffer()
	defer releaseBuffer(buf)
	for _, r := range s {
		if repl, ok := cm.table.lookup(r); ok {
			buf.WriteString(repl)
		} else if cm.hasDefault {
			buf.WriteString(cm.deflt)
		} else {
			buf.WriteRune(r)
		}
	}
	return buf.String(), nil
}

// replacementFor resolves a single code point, including the default
// fallback. ok is false if r passes through unchanged.
func (cm *CharMapper) replacementFor(r rune) (repl string, ok bool) {
	if repl, ok = cm.table.lookup(r); ok {
		return repl, true
	}
	if cm.hasDefault {
		return cm.deflt, true
	}
	return "", false
}
