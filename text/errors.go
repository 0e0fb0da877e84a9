package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilFont is returned when a Shaper is created without a font.
	ErrNilFont = errors.New("text: nil font")
)

// ParseError reports which parser rejected the font data.
type ParseError struct {
	Parser string
	Err    error
}

func (e *ParseError) Error() string {
	return "text: " + e.Parser + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
