package template

import (
	"strings"
)

// Render replaces every placeholder known to p in text.
//
// Role matchers run in compile order, each over the output of the previous
// one, followed by the image matcher. Unknown placeholders are left verbatim.
func (p *Patterns) Render(text string) string {
	for i := range p.colors {
		text = p.colors[i].apply(text)
	}

	if p.image.present {
		text = p.image.re.ReplaceAllLiteralString(text, p.image.replacement)
	}

	return text
}

// apply replaces all occurrences of the role's placeholders in one pass.
// Each occurrence gets the replacement for its own format suffix.
func (cp *colorPattern) apply(text string) string {
	matches := cp.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])

		suffix := ""
		if m[2] >= 0 {
			suffix = text[m[2]:m[3]]
		}
		b.WriteString(cp.replacements.forSuffix(suffix))

		last = m[1]
	}
	b.WriteString(text[last:])

	return b.String()
}
