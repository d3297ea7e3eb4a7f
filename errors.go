package textsvg

import "fmt"

// FontLoadError is returned when a font file cannot be read or parsed.
type FontLoadError struct {
	Path string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("textsvg: failed to load font %q: %v", e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// FontFetchError is returned when a remote font cannot be fetched, or
// when the response carries no usable font data.
type FontFetchError struct {
	URL string

	// Status is the HTTP status code, 0 when the request itself failed.
	Status int

	Err error
}

func (e *FontFetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("textsvg: font could not be found at %q (status %d)", e.URL, e.Status)
	}
	return fmt.Sprintf("textsvg: failed to fetch font from %q: %v", e.URL, e.Err)
}

func (e *FontFetchError) Unwrap() error { return e.Err }

// FontParseError is returned when an in-memory font buffer is
// malformed.
type FontParseError struct {
	Err error
}

func (e *FontParseError) Error() string {
	return fmt.Sprintf("textsvg: failed to parse font data: %v", e.Err)
}

func (e *FontParseError) Unwrap() error { return e.Err }

// InvalidAnchorError reports an anchor keyword outside the recognized
// sets. ParseAnchor always defaults on unknown input, so this error
// only surfaces when anchor values are constructed directly as enum
// values.
type InvalidAnchorError struct {
	Keyword string
}

func (e *InvalidAnchorError) Error() string {
	return fmt.Sprintf("textsvg: invalid anchor keyword %q", e.Keyword)
}
