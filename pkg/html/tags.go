package html

// Element factories accept the arguments described on Tag.

// Document structure

func Head(args ...any) Attributed  { return Tag("head", args...) }
func Body(args ...any) Attributed  { return Tag("body", args...) }
func Title(args ...any) Attributed { return Tag("title", args...) }

// Sections

func Header(args ...any) Attributed  { return Tag("header", args...) }
func Footer(args ...any) Attributed  { return Tag("footer", args...) }
func Nav(args ...any) Attributed     { return Tag("nav", args...) }
func Main(args ...any) Attributed    { return Tag("main", args...) }
func Section(args ...any) Attributed { return Tag("section", args...) }
func Article(args ...any) Attributed { return Tag("article", args...) }
func Aside(args ...any) Attributed   { return Tag("aside", args...) }
func Address(args ...any) Attributed { return Tag("address", args...) }
func Hgroup(args ...any) Attributed  { return Tag("hgroup", args...) }
func H1(args ...any) Attributed      { return Tag("h1", args...) }
func H2(args ...any) Attributed      { return Tag("h2", args...) }
func H3(args ...any) Attributed      { return Tag("h3", args...) }
func H4(args ...any) Attributed      { return Tag("h4", args...) }
func H5(args ...any) Attributed      { return Tag("h5", args...) }
func H6(args ...any) Attributed      { return Tag("h6", args...) }

// Grouping content

func Div(args ...any) Attributed        { return Tag("div", args...) }
func P(args ...any) Attributed          { return Tag("p", args...) }
func Pre(args ...any) Attributed        { return Tag("pre", args...) }
func Blockquote(args ...any) Attributed { return Tag("blockquote", args...) }
func Ol(args ...any) Attributed         { return Tag("ol", args...) }
func Ul(args ...any) Attributed         { return Tag("ul", args...) }
func Li(args ...any) Attributed         { return Tag("li", args...) }
func Dl(args ...any) Attributed         { return Tag("dl", args...) }
func Dt(args ...any) Attributed         { return Tag("dt", args...) }
func Dd(args ...any) Attributed         { return Tag("dd", args...) }
func Figure(args ...any) Attributed     { return Tag("figure", args...) }
func Figcaption(args ...any) Attributed { return Tag("figcaption", args...) }
func Menu(args ...any) Attributed       { return Tag("menu", args...) }

// Text-level semantics

func A(args ...any) Attributed      { return Tag("a", args...) }
func Em(args ...any) Attributed     { return Tag("em", args...) }
func Strong(args ...any) Attributed { return Tag("strong", args...) }
func Small(args ...any) Attributed  { return Tag("small", args...) }
func S(args ...any) Attributed      { return Tag("s", args...) }
func Cite(args ...any) Attributed   { return Tag("cite", args...) }
func Q(args ...any) Attributed      { return Tag("q", args...) }
func Dfn(args ...any) Attributed    { return Tag("dfn", args...) }
func Abbr(args ...any) Attributed   { return Tag("abbr", args...) }
func Time(args ...any) Attributed   { return Tag("time", args...) }
func Code(args ...any) Attributed   { return Tag("code", args...) }
func Var(args ...any) Attributed    { return Tag("var", args...) }
func Samp(args ...any) Attributed   { return Tag("samp", args...) }
func Kbd(args ...any) Attributed    { return Tag("kbd", args...) }
func Sub(args ...any) Attributed    { return Tag("sub", args...) }
func Sup(args ...any) Attributed    { return Tag("sup", args...) }
func I(args ...any) Attributed      { return Tag("i", args...) }
func B(args ...any) Attributed      { return Tag("b", args...) }
func U(args ...any) Attributed      { return Tag("u", args...) }
func Mark(args ...any) Attributed   { return Tag("mark", args...) }
func Bdi(args ...any) Attributed    { return Tag("bdi", args...) }
func Bdo(args ...any) Attributed    { return Tag("bdo", args...) }
func Span(args ...any) Attributed   { return Tag("span", args...) }
func Ins(args ...any) Attributed    { return Tag("ins", args...) }
func Del(args ...any) Attributed    { return Tag("del", args...) }

// Embedded content

func Picture(args ...any) Attributed  { return Tag("picture", args...) }
func Iframe(args ...any) Attributed   { return Tag("iframe", args...) }
func Object(args ...any) Attributed   { return Tag("object", args...) }
func Video(args ...any) Attributed    { return Tag("video", args...) }
func Audio(args ...any) Attributed    { return Tag("audio", args...) }
func Canvas(args ...any) Attributed   { return Tag("canvas", args...) }
func Svg(args ...any) Attributed      { return Tag("svg", args...) }
func Noscript(args ...any) Attributed { return Tag("noscript", args...) }
func Template(args ...any) Attributed { return Tag("template", args...) }

// Tables

func Table(args ...any) Attributed    { return Tag("table", args...) }
func Caption(args ...any) Attributed  { return Tag("caption", args...) }
func Colgroup(args ...any) Attributed { return Tag("colgroup", args...) }
func Thead(args ...any) Attributed    { return Tag("thead", args...) }
func Tbody(args ...any) Attributed    { return Tag("tbody", args...) }
func Tfoot(args ...any) Attributed    { return Tag("tfoot", args...) }
func Tr(args ...any) Attributed       { return Tag("tr", args...) }
func Th(args ...any) Attributed       { return Tag("th", args...) }
func Td(args ...any) Attributed       { return Tag("td", args...) }

// Forms

func Form(args ...any) Attributed     { return Tag("form", args...) }
func Label(args ...any) Attributed    { return Tag("label", args...) }
func Button(args ...any) Attributed   { return Tag("button", args...) }
func Select(args ...any) Attributed   { return Tag("select", args...) }
func Datalist(args ...any) Attributed { return Tag("datalist", args...) }
func Optgroup(args ...any) Attributed { return Tag("optgroup", args...) }
func Option(args ...any) Attributed   { return Tag("option", args...) }
func Textarea(args ...any) Attributed { return Tag("textarea", args...) }
func Output(args ...any) Attributed   { return Tag("output", args...) }
func Progress(args ...any) Attributed { return Tag("progress", args...) }
func Meter(args ...any) Attributed    { return Tag("meter", args...) }
func Fieldset(args ...any) Attributed { return Tag("fieldset", args...) }
func Legend(args ...any) Attributed   { return Tag("legend", args...) }

// Interactive elements

func Details(args ...any) Attributed { return Tag("details", args...) }
func Summary(args ...any) Attributed { return Tag("summary", args...) }
func Dialog(args ...any) Attributed  { return Tag("dialog", args...) }

// Void elements

func Area(args ...any) Attributed   { return VoidTag("area", args...) }
func Base(args ...any) Attributed   { return VoidTag("base", args...) }
func Br(args ...any) Attributed     { return VoidTag("br", args...) }
func Col(args ...any) Attributed    { return VoidTag("col", args...) }
func Embed(args ...any) Attributed  { return VoidTag("embed", args...) }
func Hr(args ...any) Attributed     { return VoidTag("hr", args...) }
func Img(args ...any) Attributed    { return VoidTag("img", args...) }
func Input(args ...any) Attributed  { return VoidTag("input", args...) }
func Link(args ...any) Attributed   { return VoidTag("link", args...) }
func Meta(args ...any) Attributed   { return VoidTag("meta", args...) }
func Param(args ...any) Attributed  { return VoidTag("param", args...) }
func Source(args ...any) Attributed { return VoidTag("source", args...) }
func Track(args ...any) Attributed  { return VoidTag("track", args...) }
func Wbr(args ...any) Attributed    { return VoidTag("wbr", args...) }
// Script creates a script element. The source is written unescaped.
func Script(source string, args ...any) Attributed {
	return Tag("script", append([]any{Raw(source)}, args...)...)
}

// StyleSheet creates a style element. The CSS is written unescaped.
func StyleSheet(css string, args ...any) Attributed {
	return Tag("style", append([]any{Raw(css)}, args...)...)
}
