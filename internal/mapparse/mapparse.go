/* Package mapparse provides a parser for packaged character-mapping scheme files.

Package mapparse provides a parser for the scheme data files bundled with
this module. A scheme file is a small YAML document with two top-level
keys: "default", the fallback replacement (null or text), and "charmap",
an ordered mapping of single-character or character-range keys to
replacement text or null, the deletion marker.

Declaration order is significant: where ranges overlap, a later
declaration overwrites an earlier one. The parser therefore preserves the
file order of the charmap section instead of decoding into a Go map.
*/
package mapparse

import (
	"fmt"
	"io"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// File is the parsed content of one scheme data file.
type File struct {
	Default interface{} // fallback replacement: nil or text
	CharMap *Decls      // raw declarations in file order
}

// Decls is an ordered list of raw character-mapping declarations. It
// supports length, iteration over keys in declaration order, and lookup
// by key, which makes it usable as a charmap.Spec.
type Decls struct {
	pairs []pair
	index map[string]int // key -> position of its last declaration
}

type pair struct {
	key, value interface{}
}

// Len returns the number of declarations.
func (d *Decls) Len() int {
	return len(d.pairs)
}

// Keys returns all declaration keys in file order.
func (d *Decls) Keys() []interface{} {
	keys := make([]interface{}, len(d.pairs))
	for i, p := range d.pairs {
		keys[i] = p.key
	}
	return keys
}

// Get returns the value of the last declaration for key.
func (d *Decls) Get(key interface{}) (interface{}, bool) {
	k, ok := key.(string)
	if !ok {
		return nil, false
	}
	i, ok := d.index[k]
	if !ok {
		return nil, false
	}
	return d.pairs[i].value, true
}

// Parse reads one scheme data file from r.
func Parse(r io.Reader) (*File, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read scheme data: %w", err)
	}
	var raw struct {
		Default interface{}   `yaml:"default"`
		CharMap yaml.MapSlice `yaml:"charmap"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed scheme data: %w", err)
	}
	decls := &Decls{
		pairs: make([]pair, 0, len(raw.CharMap)),
		index: make(map[string]int, len(raw.CharMap)),
	}
	for _, item := range raw.CharMap {
		decls.pairs = append(decls.pairs, pair{key: item.Key, value: item.Value})
		if k, ok := item.Key.(string); ok {
			decls.index[k] = len(decls.pairs) - 1
		}
	}
	return &File{Default: raw.Default, CharMap: decls}, nil
}
