package config

import (
	"strings"
	"time"

	"github.com/rxtech-lab/argo-indexes/pkg/errors"
)

// directiveSpec maps a strftime directive to the time layout element that renders it
// and the number of characters it occupies in a rendered date. A width of zero means
// the directive consumes a run of letters.
type directiveSpec struct {
	layout string
	width  int
}

var strftimeDirectives = map[byte]directiveSpec{
	'Y': {layout: "2006", width: 4},
	'y': {layout: "06", width: 2},
	'm': {layout: "01", width: 2},
	'd': {layout: "02", width: 2},
	'e': {layout: "_2", width: 2},
	'b': {layout: "Jan", width: 3},
	'B': {layout: "January", width: 0},
	'a': {layout: "Mon", width: 3},
	'A': {layout: "Monday", width: 0},
	'j': {layout: "002", width: 3},
	'H': {layout: "15", width: 2},
	'I': {layout: "03", width: 2},
	'M': {layout: "04", width: 2},
	'S': {layout: "05", width: 2},
	'p': {layout: "PM", width: 2},
}

// fieldSeparator joins directive layouts for parsing. It is not a layout element.
const fieldSeparator = "|"

type dateToken struct {
	literal   string
	directive *directiveSpec
}

// DateFormat is a compiled strftime pattern. Literal text is kept verbatim and every
// directive is rendered on its own, so literals never act as layout elements.
type DateFormat struct {
	pattern string
	tokens  []dateToken
}

// ParseDateFormat compiles a strftime pattern such as "%Y-%m-%d".
func ParseDateFormat(pattern string) (DateFormat, error) {
	if pattern == "" {
		return DateFormat{}, errors.New(errors.ErrCodeInvalidDateFormat, "date format is empty")
	}

	var (
		tokens     []dateToken
		literal    strings.Builder
		directives int
	)

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, dateToken{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			literal.WriteByte(pattern[i])
			continue
		}

		if i+1 >= len(pattern) {
			return DateFormat{}, errors.Newf(errors.ErrCodeInvalidDateFormat, "date format %q ends with a bare %%", pattern)
		}

		i++

		if pattern[i] == '%' {
			literal.WriteByte('%')
			continue
		}

		spec, ok := strftimeDirectives[pattern[i]]
		if !ok {
			return DateFormat{}, errors.Newf(errors.ErrCodeInvalidDateFormat, "unsupported directive %%%c in date format %q", pattern[i], pattern)
		}

		flush()

		tokens = append(tokens, dateToken{directive: &spec})
		directives++
	}

	flush()

	if directives == 0 {
		return DateFormat{}, errors.Newf(errors.ErrCodeInvalidDateFormat, "date format %q has no date directives", pattern)
	}

	return DateFormat{pattern: pattern, tokens: tokens}, nil
}

// Pattern returns the strftime pattern the format was compiled from.
func (f DateFormat) Pattern() string {
	return f.pattern
}

// Format renders t.
func (f DateFormat) Format(t time.Time) string {
	var b strings.Builder

	for _, token := range f.tokens {
		if token.directive == nil {
			b.WriteString(token.literal)
			continue
		}

		b.WriteString(t.Format(token.directive.layout))
	}

	return b.String()
}

// Parse reads a date rendered with this format. Literal text must match exactly.
func (f DateFormat) Parse(value string) (time.Time, error) {
	layouts := make([]string, 0, len(f.tokens))
	fields := make([]string, 0, len(f.tokens))
	rest := value

	for _, token := range f.tokens {
		if token.directive == nil {
			if !strings.HasPrefix(rest, token.literal) {
				return time.Time{}, errors.Newf(errors.ErrCodeInvalidDateFormat, "%q does not match date format %q", value, f.pattern)
			}

			rest = rest[len(token.literal):]

			continue
		}

		width := token.directive.width
		if width == 0 {
			width = letterRun(rest)
		}

		if width == 0 || width > len(rest) {
			return time.Time{}, errors.Newf(errors.ErrCodeInvalidDateFormat, "%q does not match date format %q", value, f.pattern)
		}

		layouts = append(layouts, token.directive.layout)
		fields = append(fields, rest[:width])
		rest = rest[width:]
	}

	if rest != "" {
		return time.Time{}, errors.Newf(errors.ErrCodeInvalidDateFormat, "%q has trailing text after date format %q", value, f.pattern)
	}

	t, err := time.Parse(strings.Join(layouts, fieldSeparator), strings.Join(fields, fieldSeparator))
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrCodeInvalidDateFormat, err, "%q does not match date format %q", value, f.pattern)
	}

	return t, nil
}

func letterRun(s string) int {
	n := 0
	for n < len(s) && (s[n] >= 'a' && s[n] <= 'z' || s[n] >= 'A' && s[n] <= 'Z') {
		n++
	}

	return n
}
