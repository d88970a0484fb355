package charmap

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer returns a transform.Transformer view of the mapper, so that
// a CharMapper composes with golang.org/x/text transformation chains
// (normalization, rune filters, encoders).
//
// Unlike MapString, the transformer never fails on malformed input: bytes
// which do not form valid UTF-8 are copied through unchanged.
func (cm *CharMapper) Transformer() transform.Transformer {
	return mapTransformer{cm: cm}
}

type mapTransformer struct {
	cm *CharMapper
}

// Reset is part of interface transform.Transformer. Mapping carries no
// state between calls.
func (t mapTransformer) Reset() {}

// Transform is part of interface transform.Transformer.
func (t mapTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			// malformed byte, copy through
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = src[nSrc]
			nDst++
			nSrc++
			continue
		}
		if repl, ok := t.cm.replacementFor(r); ok {
			if nDst+len(repl) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], repl)
		} else {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
