package charmap

import (
	"sort"
	"unicode/utf8"
)

// A Spec enumerates raw character-mapping declarations. It is the
// map-like capability the engine requires of its input: length, iteration
// over keys, and lookup by key. Implementations with a natural ordering
// (data files, ordered decoders) should return keys in declaration order,
// since later declarations overwrite earlier ones where ranges overlap.
//
// Keys and values are deliberately loosely typed. A well-formed
// declaration has a key which is valid Unicode text and a value which is
// either valid Unicode text or nil, the deletion marker. Everything else
// is rejected during validation.
type Spec interface {
	Len() int
	Keys() []interface{}
	Get(key interface{}) (value interface{}, ok bool)
}

// MapSpec adapts a plain Go map to the Spec interface. As Go maps carry
// no ordering, keys are enumerated in lexical order to keep mapper
// construction deterministic.
type MapSpec map[string]interface{}

// Len is part of interface Spec.
func (m MapSpec) Len() int { return len(m) }

// Keys is part of interface Spec.
func (m MapSpec) Keys() []interface{} {
	strs := make([]string, 0, len(m))
	for k := range m {
		strs = append(strs, k)
	}
	sort.Strings(strs)
	keys := make([]interface{}, len(strs))
	for i, k := range strs {
		keys[i] = k
	}
	return keys
}

// Get is part of interface Spec.
func (m MapSpec) Get(key interface{}) (interface{}, bool) {
	k, ok := key.(string)
	if !ok {
		return nil, false
	}
	v, ok := m[k]
	return v, ok
}

// mapEntry is one validated declaration: an inclusive code point range
// [lo,hi] with its replacement. del and text are kept apart: deletion is
// "replace with nothing", which is distinct from having no rule at all.
type mapEntry struct {
	lo, hi rune
	del    bool
	text   string
}

func (e mapEntry) replacement() string {
	if e.del {
		return ""
	}
	return e.text
}

// validateEntries checks every declaration of spec and returns the
// validated entries in the order spec enumerates them.
//
// Checks run in strict order per declaration, and the first failing check
// determines the error: key type, then key format and range order, then
// value type. A malformed key therefore reports an InvalidKeyError even
// if the associated value is ill-typed, too.
func validateEntries(spec Spec) ([]mapEntry, error) {
	entries := make([]mapEntry, 0, spec.Len())
	for _, rawKey := range spec.Keys() {
		key, ok := rawKey.(string)
		if !ok || !utf8.ValidString(key) {
			return nil, typeErr("character-map key", rawKey)
		}
		lo, hi, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		entry := mapEntry{lo: lo, hi: hi}
		rawValue, _ := spec.Get(rawKey)
		switch v := rawValue.(type) {
		case nil:
			entry.del = true
		case string:
			if !utf8.ValidString(v) {
				return nil, typeErr("character-map value for key "+key, rawValue)
			}
			entry.text = v
		default:
			return nil, typeErr("character-map value for key "+key, rawValue)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseKey interprets the textual key grammar: a single character, or a
// 3-character range with a dash in the middle. The dash may itself be a
// range endpoint ("--a" is the range from '-' to 'a').
func parseKey(key string) (lo, hi rune, err error) {
	runes := []rune(key)
	switch len(runes) {
	case 1:
		return runes[0], runes[0], nil
	case 3:
		if runes[1] != '-' {
			return 0, 0, &InvalidKeyError{Key: key}
		}
		lo, hi = runes[0], runes[2]
		if lo > hi {
			return 0, 0, &InvalidKeyError{Key: key}
		}
		return lo, hi, nil
	}
	return 0, 0, &InvalidKeyError{Key: key}
}
