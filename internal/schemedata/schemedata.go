// Package schemedata carries the transliteration scheme data files
// packaged with this module.
package schemedata

import (
	"bytes"
	"embed"
	"fmt"
	"io"
)

//go:embed *.yaml
var files embed.FS

// Open returns a reader for the named packaged data file.
func Open(filename string) (io.Reader, error) {
	data, err := files.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("no packaged scheme data %q: %w", filename, err)
	}
	return bytes.NewReader(data), nil
}
