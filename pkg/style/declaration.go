package style

import (
	"strconv"
	"strings"
)

// Declaration is a single CSS property assignment together with the
// selector context it applies in.
//
// Declaration is comparable; it is used directly as a map key for
// deduplication. An empty Media or Pseudo means the field is absent.
type Declaration struct {
	Property string
	Value    string
	Media    MediaQuery
	Pre      string
	Pseudo   Pseudo
	Post     string
}

// Option configures a Declaration.
type Option func(*Declaration)

// WithMedia scopes the declaration to a media query.
func WithMedia(q MediaQuery) Option {
	return func(d *Declaration) {
		d.Media = q
	}
}

// WithPre sets the selector fragment written before the class selector.
func WithPre(selector string) Option {
	return func(d *Declaration) {
		d.Pre = selector
	}
}

// WithPseudo sets a pseudo-class or pseudo-element on the class selector.
func WithPseudo(p Pseudo) Option {
	return func(d *Declaration) {
		d.Pseudo = p
	}
}

// WithPost sets the selector fragment written after the class selector.
func WithPost(selector string) Option {
	return func(d *Declaration) {
		d.Post = selector
	}
}

// Decl creates a Declaration for property and value.
func Decl(property, value string, opts ...Option) Declaration {
	d := Declaration{Property: property, Value: value}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// HasSelector reports whether the declaration carries any selector context.
// Declarations without one attach directly to their class.
func (d Declaration) HasSelector() bool {
	return d.Pre != "" || d.Pseudo != "" || d.Post != ""
}

// Selector returns the full CSS selector for the declaration under className.
func (d Declaration) Selector(className string) string {
	var b strings.Builder
	b.Grow(len(d.Pre) + len(className) + len(d.Pseudo) + len(d.Post) + 1)
	b.WriteString(d.Pre)
	b.WriteByte('.')
	b.WriteString(className)
	b.WriteString(string(d.Pseudo))
	b.WriteString(d.Post)
	return b.String()
}

// Body returns the declaration in stylesheet form, "property:value;".
func (d Declaration) Body() string {
	return d.Property + ":" + d.Value + ";"
}

// Inline returns the declaration in style attribute form, "property: value;".
func (d Declaration) Inline() string {
	return d.Property + ": " + d.Value + ";"
}

// Spaced wraps a selector fragment with optional surrounding spaces, which
// turns it into a descendant combinator.
func Spaced(selector string, leading, trailing bool) string {
	if leading {
		selector = " " + selector
	}
	if trailing {
		selector += " "
	}
	return selector
}

// MediaQuery is the condition of an @media rule.
type MediaQuery string

// Media types.
const (
	All    MediaQuery = "all"
	Print  MediaQuery = "print"
	Screen MediaQuery = "screen"
)

// MinWidth matches viewports at least px pixels wide.
func MinWidth(px int) MediaQuery {
	return MediaQuery("(min-width: " + strconv.Itoa(px) + "px)")
}

// MaxWidth matches viewports at most px pixels wide.
func MaxWidth(px int) MediaQuery {
	return MediaQuery("(max-width: " + strconv.Itoa(px) + "px)")
}

// Only prefixes q with the only keyword.
func Only(q MediaQuery) MediaQuery {
	return "only " + q
}

// And combines two queries that must both match.
func (q MediaQuery) And(other MediaQuery) MediaQuery {
	return q + " and " + other
}

// Or combines two queries where either may match.
func (q MediaQuery) Or(other MediaQuery) MediaQuery {
	return q + ", " + other
}

// Not appends a negated query.
func (q MediaQuery) Not(other MediaQuery) MediaQuery {
	return q + " not " + other
}

// Pseudo is a pseudo-class (":hover") or pseudo-element ("::before").
type Pseudo string

// PseudoClass returns the pseudo-class with the given name.
func PseudoClass(name string) Pseudo { return Pseudo(":" + name) }

// PseudoElement returns the pseudo-element with the given name.
func PseudoElement(name string) Pseudo { return Pseudo("::" + name) }

// Common pseudo-classes and pseudo-elements.
var (
	Active     = PseudoClass("active")
	Checked    = PseudoClass("checked")
	Disabled   = PseudoClass("disabled")
	Empty      = PseudoClass("empty")
	FirstChild = PseudoClass("first-child")
	LastChild  = PseudoClass("last-child")
	Focus      = PseudoClass("focus")
	Hover      = PseudoClass("hover")
	Visited    = PseudoClass("visited")
	After      = PseudoElement("after")
	Before     = PseudoElement("before")
)
