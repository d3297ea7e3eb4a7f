package textsvg

import (
	"context"
	"io"
	"net/http"

	"github.com/qqqqq18/text-to-svg/font"
)

// Engine converts text to SVG path data using one loaded font.
//
// An Engine holds no mutable state after construction: every operation
// is pure and safe to call from multiple goroutines.
type Engine struct {
	font font.Font
}

// NewWithFont wraps an already-loaded font capability. Tests use this
// with synthetic fonts; most callers want New, NewFromBytes or
// NewFromURL.
func NewWithFont(f font.Font) *Engine {
	if f == nil {
		panic("textsvg: nil font")
	}
	return &Engine{font: f}
}

// New loads a font file from disk and returns an engine for it.
// Failures are reported as *FontLoadError.
func New(path string, opts ...font.SourceOption) (*Engine, error) {
	src, err := font.NewSourceFromFile(path, opts...)
	if err != nil {
		return nil, &FontLoadError{Path: path, Err: err}
	}
	Logger().Debug("font loaded", "path", path, "family", src.Name())
	return NewWithFont(src), nil
}

// NewFromBytes parses an in-memory font buffer (TTF or OTF) and
// returns an engine for it. Failures are reported as *FontParseError.
func NewFromBytes(data []byte, opts ...font.SourceOption) (*Engine, error) {
	src, err := font.NewSource(data, opts...)
	if err != nil {
		return nil, &FontParseError{Err: err}
	}
	Logger().Debug("font parsed", "bytes", len(data), "family", src.Name())
	return NewWithFont(src), nil
}

// NewFromURL fetches a font over HTTP and returns an engine for it.
// The context bounds the fetch; abandoning the call is done by
// cancelling it. Transport failures, non-2xx responses and empty
// bodies are reported as *FontFetchError, malformed font data as
// *FontParseError.
func NewFromURL(ctx context.Context, url string, opts ...font.SourceOption) (*Engine, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FontFetchError{URL: url, Err: err}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &FontFetchError{URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FontFetchError{URL: url, Status: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FontFetchError{URL: url, Status: resp.StatusCode, Err: err}
	}
	if len(data) == 0 {
		return nil, &FontFetchError{URL: url, Status: resp.StatusCode}
	}

	src, err := font.NewSource(data, opts...)
	if err != nil {
		return nil, &FontParseError{Err: err}
	}
	Logger().Debug("font fetched", "url", url, "bytes", len(data), "family", src.Name())
	return NewWithFont(src), nil
}

// Font returns the underlying font capability.
func (e *Engine) Font() font.Font {
	return e.font
}
