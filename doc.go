/*
Package charmap implements a character-remapping engine for Unicode text.

Description

A CharMapper is built from a declarative specification which maps single
characters or contiguous character ranges to replacement strings, or marks
them for deletion. The specification is validated eagerly and materialized
into a lookup table spanning the whole Unicode code space. After
construction a CharMapper is immutable and may be shared freely between
goroutines.

Specification keys are given in a small textual grammar:

   "a"     a single character
   "a-f"   an inclusive range of characters, low endpoint first
   "--a"   a range starting at the dash character itself

Values are either replacement text (possibly empty) or the deletion
marker (a nil value), which removes matched characters from the output.
An optional per-mapper default applies to characters without an explicit
rule; without a default such characters pass through unchanged.

Typical Usage

Clients construct a CharMapper once and call MapString repeatedly:

   cm, err := charmap.New(charmap.MapSpec{
       "e":   "u",
       "h-m": "*",
       "a-d": "m",
   })
   ...
   out, err := cm.MapString("Hello, world!")   // "Hu**o, wor*m!"

Predefined transliteration schemes for Arabic script (Buckwalter and
friends) live in sub-package scheme.

Mapping operates on Unicode code points, never on bytes: a character
outside the Basic Multilingual Plane is looked up and replaced as one
unit. Input that is not well-formed UTF-8 is rejected with a TypeError.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 Qamus contributors
*/
package charmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to qamus.charmap .
func tracer() tracing.Trace {
	return tracing.Select("qamus.charmap")
}
