package style

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Generator maps the declarations of a node to class names and accumulates
// the stylesheet backing those classes.
type Generator interface {
	// Generate returns the classes for one node's declarations.
	Generate(decls []Declaration) []string

	// Stylesheet returns every rule generated so far. It returns the empty
	// string when nothing has been generated.
	Stylesheet() string
}

// Policy selects how a document collects its styles.
type Policy uint8

const (
	// None renders declarations as inline style attributes.
	None Policy = iota
	// Class emits one class per distinct declaration.
	Class
	// Grouped emits one class per distinct declaration set.
	Grouped
)

// String returns the policy name as accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case None:
		return "none"
	case Class:
		return "class"
	case Grouped:
		return "grouped"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name. The empty string selects Class.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "inline":
		return None, nil
	case "", "class":
		return Class, nil
	case "grouped":
		return Grouped, nil
	default:
		return None, fmt.Errorf("unknown style policy %q", s)
	}
}

// NewGenerator returns a fresh generator for the policy, or nil for None.
// Options only apply to the Class policy.
func (p Policy) NewGenerator(opts ...ClassOption) Generator {
	switch p {
	case Class:
		return NewClassGenerator(opts...)
	case Grouped:
		return NewGroupedGenerator()
	default:
		return nil
	}
}

// ClassOption configures a ClassGenerator.
type ClassOption func(*ClassGenerator)

// WithReadableNames names classes "<property>-<index>" instead of
// "c<index>". Useful while developing; the index is the same either way.
func WithReadableNames() ClassOption {
	return func(g *ClassGenerator) {
		g.readable = true
	}
}

// ClassGenerator assigns one class to every distinct declaration.
type ClassGenerator struct {
	mu       sync.Mutex
	readable bool
	seen     map[Declaration]int
	rulesets []*ruleset
	byMedia  map[MediaQuery]*ruleset
}

// ruleset holds the rules of one media group in insertion order.
type ruleset struct {
	media     MediaQuery
	selectors []string
	bodies    map[string]string
}

// NewClassGenerator creates an empty ClassGenerator.
func NewClassGenerator(opts ...ClassOption) *ClassGenerator {
	g := &ClassGenerator{
		seen:    make(map[Declaration]int),
		byMedia: make(map[MediaQuery]*ruleset),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate implements Generator.
func (g *ClassGenerator) Generate(decls []Declaration) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	classes := make([]string, 0, len(decls))
	for _, d := range decls {
		index, ok := g.seen[d]
		if !ok {
			index = len(g.seen)
			g.seen[d] = index
		}

		name := g.className(d, index)
		selector := d.Selector(name)

		rs := g.byMedia[d.Media]
		if rs == nil {
			rs = &ruleset{media: d.Media, bodies: make(map[string]string)}
			g.byMedia[d.Media] = rs
			g.rulesets = append(g.rulesets, rs)
		}
		if _, exists := rs.bodies[selector]; !exists {
			rs.selectors = append(rs.selectors, selector)
			rs.bodies[selector] = d.Body()
		}

		classes = append(classes, name)
	}
	return classes
}

func (g *ClassGenerator) className(d Declaration, index int) string {
	if g.readable {
		return d.Property + "-" + strconv.Itoa(index)
	}
	return "c" + strconv.Itoa(index)
}

// Stylesheet implements Generator. Rules outside any media query come
// first; the rest keep the order their media query was first seen.
func (g *ClassGenerator) Stylesheet() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	if rs := g.byMedia[""]; rs != nil {
		rs.writeTo(&b)
	}
	for _, rs := range g.rulesets {
		if rs.media == "" {
			continue
		}
		b.WriteString("@media ")
		b.WriteString(string(rs.media))
		b.WriteByte('{')
		rs.writeTo(&b)
		b.WriteByte('}')
	}
	return b.String()
}

func (rs *ruleset) writeTo(b *strings.Builder) {
	for _, selector := range rs.selectors {
		b.WriteString(selector)
		b.WriteByte('{')
		b.WriteString(rs.bodies[selector])
		b.WriteByte('}')
	}
}

// GroupedGenerator assigns one class to every distinct declaration set.
// Two sets are the same when they hold equal declarations in the same order.
type GroupedGenerator struct {
	mu      sync.Mutex
	classes []groupedClass
	byKey   map[string]int
}

type groupedClass struct {
	name  string
	decls []Declaration
}

// NewGroupedGenerator creates an empty GroupedGenerator.
func NewGroupedGenerator() *GroupedGenerator {
	return &GroupedGenerator{byKey: make(map[string]int)}
}

// Generate implements Generator. It always returns exactly one class.
func (g *GroupedGenerator) Generate(decls []Declaration) []string {
	key := setKey(decls)

	g.mu.Lock()
	defer g.mu.Unlock()

	if i, ok := g.byKey[key]; ok {
		return []string{g.classes[i].name}
	}

	name := "c" + strconv.Itoa(len(g.classes))
	g.byKey[key] = len(g.classes)
	g.classes = append(g.classes, groupedClass{
		name:  name,
		decls: append([]Declaration(nil), decls...),
	})
	return []string{name}
}

// Stylesheet implements Generator.
func (g *GroupedGenerator) Stylesheet() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	for _, c := range g.classes {
		for _, group := range groupByMedia(c.decls) {
			if group.media != "" {
				b.WriteString("@media ")
				b.WriteString(string(group.media))
				b.WriteByte('{')
			}
			for _, sel := range groupBySelector(group.decls) {
				b.WriteString(sel.decls[0].Selector(c.name))
				b.WriteByte('{')
				for _, d := range sel.decls {
					b.WriteString(d.Body())
				}
				b.WriteByte('}')
			}
			if group.media != "" {
				b.WriteByte('}')
			}
		}
	}
	return b.String()
}

type mediaGroup struct {
	media MediaQuery
	decls []Declaration
}

// groupByMedia groups declarations by media query in order of first
// appearance, with the group outside any media query moved to the front.
func groupByMedia(decls []Declaration) []mediaGroup {
	var groups []mediaGroup
	index := make(map[MediaQuery]int)
	for _, d := range decls {
		i, ok := index[d.Media]
		if !ok {
			i = len(groups)
			index[d.Media] = i
			groups = append(groups, mediaGroup{media: d.Media})
		}
		groups[i].decls = append(groups[i].decls, d)
	}
	if i, ok := index[""]; ok && i > 0 {
		plain := groups[i]
		copy(groups[1:i+1], groups[:i])
		groups[0] = plain
	}
	return groups
}

type selectorKey struct {
	pre, post string
	pseudo    Pseudo
}

type selectorGroup struct {
	key   selectorKey
	decls []Declaration
}

// groupBySelector groups declarations sharing pre, pseudo and post
// fragments. Selector-less declarations come first.
func groupBySelector(decls []Declaration) []selectorGroup {
	var groups []selectorGroup
	index := make(map[selectorKey]int)
	for _, d := range decls {
		k := selectorKey{pre: d.Pre, post: d.Post, pseudo: d.Pseudo}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, selectorGroup{key: k})
		}
		groups[i].decls = append(groups[i].decls, d)
	}
	if i, ok := index[selectorKey{}]; ok && i > 0 {
		plain := groups[i]
		copy(groups[1:i+1], groups[:i])
		groups[0] = plain
	}
	return groups
}

// setKey encodes an ordered declaration list as a string usable as a map
// key. Fields are length prefixed so distinct lists never collide.
func setKey(decls []Declaration) string {
	var b strings.Builder
	field := func(s string) {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(s)
	}
	for _, d := range decls {
		field(d.Property)
		field(d.Value)
		field(string(d.Media))
		field(d.Pre)
		field(string(d.Pseudo))
		field(d.Post)
	}
	return b.String()
}
