package aipr

import "errors"

// Sentinel errors for the transformation engine.
var (
	// ErrMalformedMacroArguments indicates a {{#aipr_header}} argument list
	// that does not parse: a pair without '=', an unrecognized key, or a
	// value of the wrong type.
	ErrMalformedMacroArguments = errors.New("malformed macro arguments")

	// ErrHeaderRender indicates the header template failed to render.
	ErrHeaderRender = errors.New("header rendering failed")
)
