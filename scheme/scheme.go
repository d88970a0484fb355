/*
Package scheme provides the builtin character-mapping schemes bundled
with this module.

Content

The builtin schemes cover transliteration of Arabic script to and from
three Latin-based representations, plus one cleanup mapping:

   ar2bw, bw2ar           Buckwalter
   ar2safebw, safebw2ar   Safe Buckwalter (shell- and filename-safe)
   ar2xmlbw, xmlbw2ar     XML-safe Buckwalter
   ar2hsb, hsb2ar         Habash-Soudi-Buckwalter
   arclean                Arabic presentation-form and filler cleanup

Typical Usage

Clients resolve a scheme by name and map text with the result:

   cm, err := scheme.Builtin("ar2bw")
   ...
   out, err := cm.MapString("السلام عليكم")   // "AlslAm Elykm"

Mappers for builtin schemes are built from packaged data on first use and
cached; concurrent callers observe at most one build per name. Scheme
data lives in files embedded with the module and is read through the
Loader collaborator, so malformed packaged data is a packaging defect and
surfaces as a wrapped internal error, not as a validation error.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 Qamus contributors
*/
package scheme

import (
	"fmt"
	"sort"
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"

	"github.com/qamus/charmap"
	"github.com/qamus/charmap/internal/mapparse"
	"github.com/qamus/charmap/internal/schemedata"
)

// tracer traces to qamus.scheme .
func tracer() tracing.Trace {
	return tracing.Select("qamus.scheme")
}

// NotFoundError reports a scheme name with no builtin registration.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scheme: no builtin character map %q", e.Name)
}

// A Loader resolves a scheme name to raw mapping declarations and a
// default replacement, or fails if the name has no data source.
type Loader interface {
	LoadScheme(name string) (spec charmap.Spec, dflt interface{}, err error)
}

// builtinFiles maps recognized scheme names to packaged data files.
var builtinFiles = map[string]string{
	"ar2bw":     "ar2bw.yaml",
	"ar2safebw": "ar2safebw.yaml",
	"ar2xmlbw":  "ar2xmlbw.yaml",
	"ar2hsb":    "ar2hsb.yaml",
	"bw2ar":     "bw2ar.yaml",
	"safebw2ar": "safebw2ar.yaml",
	"xmlbw2ar":  "xmlbw2ar.yaml",
	"hsb2ar":    "hsb2ar.yaml",
	"arclean":   "arclean.yaml",
}

// packagedLoader reads scheme data embedded with this module.
type packagedLoader struct{}

// LoadScheme is part of interface Loader.
func (packagedLoader) LoadScheme(name string) (charmap.Spec, interface{}, error) {
	filename, ok := builtinFiles[name]
	if !ok {
		return nil, nil, &NotFoundError{Name: name}
	}
	r, err := schemedata.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	f, err := mapparse.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("packaged scheme %q: %w", name, err)
	}
	return f.CharMap, f.Default, nil
}

var builtinMutex sync.Mutex
var builtinCache = map[string]*charmap.CharMapper{}

// Builtin returns the CharMapper for a named builtin scheme, building it
// from packaged data on first use. An unrecognized name fails with a
// NotFoundError.
func Builtin(name string) (*charmap.CharMapper, error) {
	builtinMutex.Lock()
	defer builtinMutex.Unlock()
	if cm, ok := builtinCache[name]; ok {
		return cm, nil
	}
	cm, err := Load(packagedLoader{}, name)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("built and cached scheme %q", name)
	builtinCache[name] = cm
	return cm, nil
}

// Load builds a CharMapper for name from an arbitrary Loader. Most
// clients will use Builtin instead; Load is the hook for alternative data
// sources, e.g. scheme files on disk.
func Load(loader Loader, name string) (*charmap.CharMapper, error) {
	spec, dflt, err := loader.LoadScheme(name)
	if err != nil {
		return nil, err
	}
	cm, err := charmap.NewWithDefault(spec, dflt)
	if err != nil {
		return nil, fmt.Errorf("scheme %q carries malformed data: %w", name, err)
	}
	return cm, nil
}

// Names returns the names of all builtin schemes, sorted.
func Names() []string {
	names := make([]string, 0, len(builtinFiles))
	for name := range builtinFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromEnvironment picks a transliteration direction from the user's
// locale: Arabic locales get the Arabic-to-Buckwalter scheme, all others
// the Buckwalter-to-Arabic one. An undetectable locale falls back to
// "en-US".
func FromEnvironment() (*charmap.CharMapper, error) {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
		tracer().Infof("scheme selection uses default user locale %v", userLocale)
	} else {
		tracer().Infof("scheme selection detected user locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	if base, _ := lang.Base(); base.String() == "ar" {
		return Builtin("ar2bw")
	}
	return Builtin("bw2ar")
}
