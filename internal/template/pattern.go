// Package template substitutes colour placeholders in user templates.
//
// Placeholders take the form <prefix>{role}, <prefix>{role.hex},
// <prefix>{role.strip}, <prefix>{role.rgb}, <prefix>{role.rgba} and
// <prefix>{image}. The prefix defaults to "@".
package template

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/scheme"
)

// DefaultPrefix is used when no prefix is configured.
const DefaultPrefix = "@"

// ImageField is the placeholder name substituted with the source image path.
const ImageField = "image"

// Role is a named colour for the variant being rendered.
type Role struct {
	Name  string
	Color colour.Color
}

// RolesFor lists every role of s, including the source colour, resolved for v.
func RolesFor(s *scheme.Scheme, v scheme.Variant) []Role {
	names := s.RoleNames()
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		c, _ := s.Get(v, name)
		roles = append(roles, Role{Name: name, Color: c})
	}
	return roles
}

// CompileOptions configure a render pass.
type CompileOptions struct {
	// Prefix precedes the opening brace of every placeholder. Empty means DefaultPrefix.
	Prefix string
	// ImagePath replaces <prefix>{image}. Empty leaves image placeholders untouched.
	ImagePath string
}

type replacements struct {
	hex   string
	strip string
	rgb   string
	rgba  string
}

func newReplacements(c colour.Color) replacements {
	return replacements{
		hex:   c.Hex(),
		strip: c.Strip(),
		rgb:   c.RGB(),
		rgba:  c.RGBA(),
	}
}

// forSuffix selects the replacement for a captured format suffix.
// A missing or unrecognised suffix yields hex.
func (r replacements) forSuffix(suffix string) string {
	switch suffix {
	case ".strip":
		return r.strip
	case ".rgb":
		return r.rgb
	case ".rgba":
		return r.rgba
	default:
		return r.hex
	}
}

type colorPattern struct {
	role         string
	re           *regexp.Regexp
	replacements replacements
}

type imagePattern struct {
	re          *regexp.Regexp
	replacement string
	present     bool
}

// Patterns is the compiled matcher set for one render pass.
// It is immutable after Compile and safe to share between goroutines.
type Patterns struct {
	prefix string
	colors []colorPattern
	image  imagePattern
}

// Compile builds one matcher per role, in the given order, and one for the image placeholder.
func Compile(roles []Role, opts CompileOptions) (*Patterns, error) {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if err := validateName(prefix); err != nil {
		return nil, &PatternCompileError{Name: prefix, Prefix: true, Err: err}
	}
	quotedPrefix := regexp.QuoteMeta(prefix)

	p := &Patterns{
		prefix: prefix,
		colors: make([]colorPattern, 0, len(roles)),
	}

	for _, role := range roles {
		if err := validateRole(role.Name); err != nil {
			return nil, &PatternCompileError{Name: role.Name, Err: err}
		}

		// The closing brace anchors the match, so "primary" never matches "{primary_container}".
		re, err := regexp.Compile(quotedPrefix + `\{` + regexp.QuoteMeta(role.Name) + `(\.strip|\.rgba|\.rgb|\.hex)?\}`)
		if err != nil {
			return nil, &PatternCompileError{Name: role.Name, Err: err}
		}

		p.colors = append(p.colors, colorPattern{
			role:         role.Name,
			re:           re,
			replacements: newReplacements(role.Color),
		})
	}

	re, err := regexp.Compile(quotedPrefix + `\{` + ImageField + `\}`)
	if err != nil {
		return nil, &PatternCompileError{Name: prefix, Prefix: true, Err: err}
	}
	p.image = imagePattern{
		re:          re,
		replacement: opts.ImagePath,
		present:     opts.ImagePath != "",
	}

	return p, nil
}

// Prefix returns the effective placeholder prefix.
func (p *Patterns) Prefix() string {
	return p.prefix
}

// Len returns the number of compiled role matchers.
func (p *Patterns) Len() int {
	return len(p.colors)
}

var (
	errEmptyName   = errors.New("name is empty")
	errInvalidUTF8 = errors.New("name is not valid UTF-8")
	errBrace       = errors.New("name contains a brace")
	errWhitespace  = errors.New("name contains whitespace")
	errSeparator   = errors.New("role name contains the format separator '.'")
	errReserved    = errors.New("role name is reserved for the image placeholder")
)

func validateName(name string) error {
	switch {
	case name == "":
		return errEmptyName
	case !utf8.ValidString(name):
		return errInvalidUTF8
	case strings.ContainsAny(name, "{}"):
		return errBrace
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return errWhitespace
	}
	return nil
}

func validateRole(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if strings.Contains(name, ".") {
		return errSeparator
	}
	if name == ImageField {
		return errReserved
	}
	return nil
}
