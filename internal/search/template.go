package search

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultPlaceholder marks where the candidate hex string is substituted.
const DefaultPlaceholder = '#'

// Template is an input text split around its single placeholder.
type Template struct {
	prefix string
	suffix string
}

// ParseTemplate splits text on the placeholder rune. The placeholder must
// occur exactly once; zero occurrences or more than one are rejected.
func ParseTemplate(text string, placeholder rune) (Template, error) {
	i := strings.IndexRune(text, placeholder)
	if i < 0 {
		return Template{}, errors.Wrapf(ErrPlaceholderMissing, "placeholder %q", placeholder)
	}
	suffix := text[i+len(string(placeholder)):]
	if strings.ContainsRune(suffix, placeholder) {
		return Template{}, errors.Wrapf(ErrPlaceholderAmbiguous, "placeholder %q", placeholder)
	}
	return Template{prefix: text[:i], suffix: suffix}, nil
}

// Render substitutes hex at the placeholder position.
func (t Template) Render(hex string) string {
	sb := strings.Builder{}
	sb.Grow(len(t.prefix) + len(hex) + len(t.suffix))
	sb.WriteString(t.prefix)
	sb.WriteString(hex)
	sb.WriteString(t.suffix)
	return sb.String()
}
