package charmap

import (
	"sort"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
)

// planeZeroSize is the number of code points in the Basic Multilingual
// Plane. Plane 0 gets a dense per-code-point table; the (sparsely mapped)
// supplementary planes are kept as a sorted span list instead.
const planeZeroSize = 0x10000

// unmapped marks a table slot without an explicit rule.
const unmapped int32 = -1

// span is one maximal run of supplementary-plane code points sharing a
// replacement slot.
type span struct {
	lo, hi rune
	slot   int32
}

// charTable is the lookup structure behind a CharMapper. It is built once
// and never mutated afterwards. Slot values index the replacement pool;
// deletion is an ordinary slot holding the empty string, which keeps it
// distinct from the unmapped state.
type charTable struct {
	planeZero []int32  // one slot per BMP code point
	high      []span   // sorted spans above U+FFFF
	repl      []string // replacement string pool
}

// buildTable materializes validated entries into a charTable. Entries are
// applied in declaration order, so on overlapping ranges the last
// declaration wins for every code point of the overlap.
func buildTable(entries []mapEntry) *charTable {
	t := &charTable{planeZero: make([]int32, planeZeroSize)}
	for i := range t.planeZero {
		t.planeZero[i] = unmapped
	}
	pool := make(map[string]int32, len(entries))
	slots := make([]int32, len(entries))
	for i, e := range entries {
		slots[i] = t.intern(pool, e.replacement())
	}
	for i, e := range entries {
		if e.lo >= planeZeroSize {
			continue
		}
		hi := e.hi
		if hi >= planeZeroSize {
			hi = planeZeroSize - 1
		}
		for c := e.lo; c <= hi; c++ {
			t.planeZero[c] = slots[i]
		}
	}
	t.high = buildHighSpans(entries, slots)
	tracer().Debugf("charmap: table has %d replacements, %d high spans",
		len(t.repl), len(t.high))
	return t
}

func (t *charTable) intern(pool map[string]int32, s string) int32 {
	if slot, ok := pool[s]; ok {
		return slot
	}
	slot := int32(len(t.repl))
	t.repl = append(t.repl, s)
	pool[s] = slot
	return slot
}

// buildHighSpans sweeps the supplementary-plane portions of all entries.
// The boundaries of the clipped ranges cut [U+10000,MaxRune] into
// elementary intervals; within one interval the winning declaration (the
// last one covering it) is constant. Adjacent intervals with the same
// winner are merged into a single span.
func buildHighSpans(entries []mapEntry, slots []int32) []span {
	const first = rune(planeZeroSize)
	bounds := make([]rune, 0, len(entries)*2)
	for _, e := range entries {
		if e.hi < first {
			continue
		}
		lo := e.lo
		if lo < first {
			lo = first
		}
		bounds = append(bounds, lo)
		if e.hi < unicode.MaxRune {
			bounds = append(bounds, e.hi+1)
		}
	}
	if len(bounds) == 0 {
		return nil
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })
	uniq := bounds[:1]
	for _, b := range bounds[1:] {
		if b != uniq[len(uniq)-1] {
			uniq = append(uniq, b)
		}
	}
	collected := arraylist.New()
	for k, lo := range uniq {
		hi := unicode.MaxRune
		if k+1 < len(uniq) {
			hi = uniq[k+1] - 1
		}
		slot := unmapped
		for i, e := range entries { // later declarations overwrite earlier ones
			if e.lo <= lo && lo <= e.hi {
				slot = slots[i]
			}
		}
		if slot == unmapped {
			continue
		}
		if n := collected.Size(); n > 0 {
			if last, ok := collected.Get(n - 1); ok {
				ls := last.(span)
				if ls.hi+1 == lo && ls.slot == slot {
					ls.hi = hi
					collected.Set(n-1, ls)
					continue
				}
			}
		}
		collected.Add(span{lo: lo, hi: hi, slot: slot})
	}
	spans := make([]span, 0, collected.Size())
	collected.Each(func(_ int, v interface{}) {
		spans = append(spans, v.(span))
	})
	return spans
}

// lookup returns the replacement for r and whether r has an explicit rule.
func (t *charTable) lookup(r rune) (string, bool) {
	if r < planeZeroSize {
		if slot := t.planeZero[r]; slot != unmapped {
			return t.repl[slot], true
		}
		return "", false
	}
	i := sort.Search(len(t.high), func(i int) bool { return t.high[i].hi >= r })
	if i < len(t.high) && t.high[i].lo <= r {
		return t.repl[t.high[i].slot], true
	}
	return "", false
}
