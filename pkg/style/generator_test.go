package style

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestClassGeneratorReadableNames(t *testing.T) {
	g := NewClassGenerator(WithReadableNames())

	got := g.Generate([]Declaration{Decl("color", "red"), Decl("background", "white")})
	want := []string{"color-0", "background-1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate() = %v, want %v", got, want)
	}

	sheet := g.Stylesheet()
	if sheet != ".color-0{color:red;}.background-1{background:white;}" {
		t.Errorf("Stylesheet() = %q", sheet)
	}

	// Same declaration on a second node reuses the class.
	got = g.Generate([]Declaration{Decl("color", "red")})
	if !reflect.DeepEqual(got, []string{"color-0"}) {
		t.Errorf("second Generate() = %v, want [color-0]", got)
	}
	if g.Stylesheet() != sheet {
		t.Errorf("stylesheet changed after reuse: %q", g.Stylesheet())
	}
}

func TestClassGeneratorShortNames(t *testing.T) {
	g := NewClassGenerator()

	got := g.Generate([]Declaration{Decl("color", "red"), Decl("background", "white")})
	if !reflect.DeepEqual(got, []string{"c0", "c1"}) {
		t.Errorf("Generate() = %v, want [c0 c1]", got)
	}
	if sheet := g.Stylesheet(); sheet != ".c0{color:red;}.c1{background:white;}" {
		t.Errorf("Stylesheet() = %q", sheet)
	}
}

func TestClassGeneratorDistinctValues(t *testing.T) {
	g := NewClassGenerator(WithReadableNames())

	g.Generate([]Declaration{Decl("color", "red")})
	got := g.Generate([]Declaration{Decl("color", "green")})
	if !reflect.DeepEqual(got, []string{"color-1"}) {
		t.Errorf("Generate() = %v, want [color-1]", got)
	}
	if sheet := g.Stylesheet(); sheet != ".color-0{color:red;}.color-1{color:green;}" {
		t.Errorf("Stylesheet() = %q", sheet)
	}
}

func TestClassGeneratorMediaAndSelectors(t *testing.T) {
	g := NewClassGenerator()

	g.Generate([]Declaration{
		Decl("display", "none", WithMedia(Print)),
		Decl("color", "blue", WithPseudo(Hover)),
		Decl("margin", "0", WithPre("ul "), WithPost(" > li")),
		Decl("width", "50%", WithMedia(MinWidth(600))),
		Decl("height", "1px", WithMedia(Print)),
	})

	want := ".c1:hover{color:blue;}ul .c2 > li{margin:0;}" +
		"@media print{.c0{display:none;}.c4{height:1px;}}" +
		"@media (min-width: 600px){.c3{width:50%;}}"
	if sheet := g.Stylesheet(); sheet != want {
		t.Errorf("Stylesheet() =\n%q\nwant\n%q", sheet, want)
	}
}

func TestGroupedGeneratorSharesEqualSets(t *testing.T) {
	g := NewGroupedGenerator()
	set := []Declaration{Decl("color", "red"), Decl("background", "white")}

	first := g.Generate(set)
	second := g.Generate([]Declaration{Decl("color", "red"), Decl("background", "white")})
	if !reflect.DeepEqual(first, []string{"c0"}) || !reflect.DeepEqual(second, []string{"c0"}) {
		t.Errorf("Generate() = %v, %v, want [c0] twice", first, second)
	}
	if sheet := g.Stylesheet(); sheet != ".c0{color:red;background:white;}" {
		t.Errorf("Stylesheet() = %q", sheet)
	}
}

func TestGroupedGeneratorDistinctSets(t *testing.T) {
	g := NewGroupedGenerator()

	g.Generate([]Declaration{Decl("color", "red"), Decl("background", "white")})
	got := g.Generate([]Declaration{Decl("color", "green"), Decl("background", "white")})
	if !reflect.DeepEqual(got, []string{"c1"}) {
		t.Errorf("Generate() = %v, want [c1]", got)
	}

	want := ".c0{color:red;background:white;}.c1{color:green;background:white;}"
	if sheet := g.Stylesheet(); sheet != want {
		t.Errorf("Stylesheet() = %q, want %q", sheet, want)
	}
}

func TestGroupedGeneratorMediaGrouping(t *testing.T) {
	g := NewGroupedGenerator()

	g.Generate([]Declaration{
		Decl("background", "green", WithMedia(All)),
		Decl("color", "red"),
		Decl("font-size", "1em", WithPost("[value]")),
		Decl("background", "white"),
	})

	want := ".c0{color:red;background:white;}.c0[value]{font-size:1em;}@media all{.c0{background:green;}}"
	if sheet := g.Stylesheet(); sheet != want {
		t.Errorf("Stylesheet() =\n%q\nwant\n%q", sheet, want)
	}
}

func TestStylesheetBeforeGenerate(t *testing.T) {
	generators := map[string]Generator{
		"class":   NewClassGenerator(),
		"grouped": NewGroupedGenerator(),
	}
	for name, g := range generators {
		t.Run(name, func(t *testing.T) {
			if sheet := g.Stylesheet(); sheet != "" {
				t.Errorf("Stylesheet() = %q, want empty", sheet)
			}
		})
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	decls := [][]Declaration{
		{Decl("color", "red"), Decl("padding", "4px", WithMedia(Screen))},
		{Decl("color", "red")},
		{Decl("margin", "0", WithPseudo(FirstChild))},
	}

	for _, policy := range []Policy{Class, Grouped} {
		t.Run(policy.String(), func(t *testing.T) {
			run := func() ([][]string, string) {
				g := policy.NewGenerator()
				var classes [][]string
				for _, set := range decls {
					classes = append(classes, g.Generate(set))
				}
				return classes, g.Stylesheet()
			}

			c1, s1 := run()
			c2, s2 := run()
			if !reflect.DeepEqual(c1, c2) || s1 != s2 {
				t.Errorf("runs differ: %v %q vs %v %q", c1, s1, c2, s2)
			}
		})
	}
}

func TestGeneratorsConcurrentUse(t *testing.T) {
	for _, policy := range []Policy{Class, Grouped} {
		t.Run(policy.String(), func(t *testing.T) {
			g := policy.NewGenerator()

			var wg sync.WaitGroup
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					g.Generate([]Declaration{Decl("z-index", fmt.Sprint(i%4))})
				}(i)
			}
			wg.Wait()

			// Four distinct declarations, four classes, whatever the order.
			got := g.Generate([]Declaration{Decl("z-index", "0")})
			if len(got) != 1 {
				t.Fatalf("Generate() = %v", got)
			}
			if g.Stylesheet() == "" {
				t.Error("expected a stylesheet after concurrent generation")
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", Class, false},
		{"class", Class, false},
		{"Grouped", Grouped, false},
		{"none", None, false},
		{"inline", None, false},
		{"atomic", None, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if None.NewGenerator() != nil {
		t.Error("None.NewGenerator() should be nil")
	}
}

func TestDeclarationHelpers(t *testing.T) {
	d := Decl("color", "red", WithPre("nav "), WithPseudo(Hover), WithPost(" a"))
	if got := d.Selector("c3"); got != "nav .c3:hover a" {
		t.Errorf("Selector() = %q", got)
	}
	if !d.HasSelector() {
		t.Error("HasSelector() = false")
	}
	if Decl("color", "red").HasSelector() {
		t.Error("plain declaration should have no selector")
	}
	if got := d.Inline(); got != "color: red;" {
		t.Errorf("Inline() = %q", got)
	}

	q := Only(Screen).And(MinWidth(600))
	if q != "only screen and (min-width: 600px)" {
		t.Errorf("media query = %q", q)
	}
	if After != "::after" || Hover != ":hover" {
		t.Errorf("pseudo helpers = %q %q", After, Hover)
	}
	if Spaced("div", true, true) != " div " {
		t.Errorf("Spaced() = %q", Spaced("div", true, true))
	}
}
