package charmap

import "fmt"

// TypeError reports a value of the wrong kind at the API boundary: a
// specification key or value that is not well-formed Unicode text (or the
// deletion marker, where one is allowed), a specification that is not
// map-like, or a non-text input to MapString.
type TypeError struct {
	What   string      // which argument or position was ill-typed
	Actual interface{} // the offending value, if available
}

func (e *TypeError) Error() string {
	if e.Actual == nil {
		return fmt.Sprintf("charmap: %s has invalid type", e.What)
	}
	return fmt.Sprintf("charmap: %s has invalid type %T", e.What, e.Actual)
}

// InvalidKeyError reports a specification key which is syntactically
// neither a single character nor a two-endpoint character range, or a
// range whose endpoints are out of order.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("charmap: invalid character-map key %q", e.Key)
}

func typeErr(what string, actual interface{}) *TypeError {
	return &TypeError{What: what, Actual: actual}
}
