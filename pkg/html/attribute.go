package html

// MergeMode decides how an attribute combines with a pending attribute of
// the same name.
type MergeMode uint8

const (
	// ReplaceValue overwrites the pending value. An unset attribute removes
	// the pending entry.
	ReplaceValue MergeMode = iota
	// MergeValue appends the value to the pending one, separated by a space.
	MergeValue
	// IgnoreIfSet only takes effect when the name is not pending yet.
	IgnoreIfSet
)

func (m MergeMode) String() string {
	switch m {
	case ReplaceValue:
		return "replace"
	case MergeValue:
		return "merge"
	case IgnoreIfSet:
		return "ignore"
	default:
		return "unknown"
	}
}

// Attribute is a named value applied to the next element rendered.
//
// An empty Value with Unset false renders as a bare flag (<input disabled>).
// Unset marks the absence of a value: under ReplaceValue it removes the
// attribute, under the other modes it behaves like an empty value.
type Attribute struct {
	Name  string
	Value string
	Unset bool
	Mode  MergeMode
}

// Attr creates an attribute that replaces any pending value.
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// Flag creates a valueless attribute such as disabled or hidden.
func Flag(name string) Attribute {
	return Attribute{Name: name}
}

// Remove creates an unset attribute. Under ReplaceValue it clears a value
// set by an outer decorator.
func Remove(name string) Attribute {
	return Attribute{Name: name, Unset: true}
}

// MergeAttr creates an attribute that appends to any pending value.
func MergeAttr(name, value string) Attribute {
	return Attribute{Name: name, Value: value, Mode: MergeValue}
}

// DefaultAttr creates an attribute that only applies when nothing else set
// the name.
func DefaultAttr(name, value string) Attribute {
	return Attribute{Name: name, Value: value, Mode: IgnoreIfSet}
}

// WithMode returns a copy of a using mode m.
func (a Attribute) WithMode(m MergeMode) Attribute {
	a.Mode = m
	return a
}

// Merged returns a copy of a using MergeValue.
func (a Attribute) Merged() Attribute { return a.WithMode(MergeValue) }
