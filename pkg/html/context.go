package html

import "github.com/vango-dev/markup/pkg/style"

// Context is the state threaded through one render walk: the attributes
// waiting for the next element and the style generator in scope.
//
// Decorators modify the context for the duration of their subtree and put
// back what they found before returning, so siblings never observe each
// other's changes. A Context is owned by a single render and is not safe
// for concurrent use.
type Context struct {
	attrs  attrMap
	styles style.Generator
}

// NewContext creates a context with no pending attributes. A nil gen
// renders styles inline.
func NewContext(gen style.Generator) *Context {
	return &Context{styles: gen}
}

// Generator returns the style generator in scope, or nil.
func (c *Context) Generator() style.Generator { return c.styles }

// Pending returns the value of a pending attribute.
func (c *Context) Pending(name string) (value string, ok bool) {
	return c.attrs.get(name)
}

// PendingLen returns the number of pending attributes.
func (c *Context) PendingLen() int { return len(c.attrs.names) }

// attrMap is an insertion-ordered attribute map. Replacing a value keeps
// the original position; removing and re-adding moves it to the end.
type attrMap struct {
	names  []string
	values map[string]string
}

func (m attrMap) get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *attrMap) set(name, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

func (m *attrMap) remove(name string) {
	if _, ok := m.values[name]; !ok {
		return
	}
	delete(m.values, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i:i], m.names[i+1:]...)
			break
		}
	}
}

// clone returns a copy that can be modified without affecting m.
func (m attrMap) clone() attrMap {
	if len(m.names) == 0 {
		return attrMap{}
	}
	c := attrMap{
		names:  make([]string, len(m.names), len(m.names)+4),
		values: make(map[string]string, len(m.values)+4),
	}
	copy(c.names, m.names)
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// apply merges a into the map according to its mode.
func (m *attrMap) apply(a Attribute) {
	old, present := m.get(a.Name)
	switch a.Mode {
	case ReplaceValue:
		if a.Unset {
			m.remove(a.Name)
			return
		}
		m.set(a.Name, a.Value)
	case MergeValue:
		switch {
		case !present, old == "":
			m.set(a.Name, a.Value)
		case a.Value == "":
			// keep old
		default:
			m.set(a.Name, old+" "+a.Value)
		}
	case IgnoreIfSet:
		if !present {
			m.set(a.Name, a.Value)
		}
	}
}
