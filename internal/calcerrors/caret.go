package calcerrors

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/leonardinius/gocalc/internal/token"
)

// Spanned is implemented by errors that point into the scanned expression.
type Spanned interface {
	Span() token.Span
}

// Caret renders source followed by a line of '^' under the span err points at.
// It returns "" when err carries no usable position.
func Caret(source string, err error) string {
	var spanned Spanned
	if !errors.As(err, &spanned) {
		return ""
	}

	runes := []rune(source)
	span := spanned.Span()
	if span.Start < 0 || span.Start > len(runes) {
		return ""
	}
	end := min(max(span.End, span.Start+1), len(runes)+1)

	pad := runewidth.StringWidth(string(runes[:span.Start]))
	width := 1
	if span.Start < len(runes) {
		width = max(1, runewidth.StringWidth(string(runes[span.Start:min(end, len(runes))])))
	}

	return source + "\n" + strings.Repeat(" ", pad) + strings.Repeat("^", width)
}
