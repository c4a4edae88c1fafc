package html

import (
	"strconv"
	"strings"
)

// Global attributes

// ID sets the id attribute.
func ID(id string) Attribute { return Attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attribute { return Attr("class", strings.Join(classes, " ")) }

// AddClass appends classes to any class attribute set further out.
func AddClass(classes ...string) Attribute {
	return MergeAttr("class", strings.Join(classes, " "))
}

// StyleAttr sets the style attribute (named to avoid conflict with the
// StyleSheet element and the Style decorators).
func StyleAttr(css string) Attribute { return Attr("style", css) }

// TitleAttr sets the title attribute (named to avoid conflict with Title).
func TitleAttr(title string) Attribute { return Attr("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attribute { return Attr("data-"+key, value) }

func Lang(lang string) Attribute   { return Attr("lang", lang) }
func Dir(dir string) Attribute     { return Attr("dir", dir) }
func Hidden() Attribute            { return Flag("hidden") }
func TabIndex(index int) Attribute { return Attr("tabindex", strconv.Itoa(index)) }

// Accessibility

// Role sets the role attribute.
func Role(role string) Attribute { return Attr("role", role) }

// Aria creates an aria-* attribute.
func Aria(name, value string) Attribute { return Attr("aria-"+name, value) }

// Links and resources

func Href(url string) Attribute          { return Attr("href", url) }
func Target(target string) Attribute     { return Attr("target", target) }
func Rel(rel string) Attribute           { return Attr("rel", rel) }
func Src(url string) Attribute           { return Attr("src", url) }
func Alt(text string) Attribute          { return Attr("alt", text) }
func Width(width int) Attribute          { return Attr("width", strconv.Itoa(width)) }
func Height(height int) Attribute        { return Attr("height", strconv.Itoa(height)) }
func Loading(mode string) Attribute      { return Attr("loading", mode) }
func Download(filename string) Attribute { return Attr("download", filename) }

// Metadata

func Charset(charset string) Attribute   { return Attr("charset", charset) }
func Content(content string) Attribute   { return Attr("content", content) }
func HTTPEquiv(header string) Attribute  { return Attr("http-equiv", header) }
func Async() Attribute                   { return Flag("async") }
func Defer() Attribute                   { return Flag("defer") }
func Integrity(hash string) Attribute    { return Attr("integrity", hash) }
func CrossOrigin(mode string) Attribute  { return Attr("crossorigin", mode) }
func DateTime(datetime string) Attribute { return Attr("datetime", datetime) }

// Forms

func Type(typ string) Attribute          { return Attr("type", typ) }
func Name(name string) Attribute         { return Attr("name", name) }
func Value(value string) Attribute       { return Attr("value", value) }
func Placeholder(text string) Attribute  { return Attr("placeholder", text) }
func For(id string) Attribute            { return Attr("for", id) }
func Action(url string) Attribute        { return Attr("action", url) }
func Method(method string) Attribute     { return Attr("method", method) }
func Disabled() Attribute                { return Flag("disabled") }
func Checked() Attribute                 { return Flag("checked") }
func Selected() Attribute                { return Flag("selected") }
func Required() Attribute                { return Flag("required") }
func ReadOnly() Attribute                { return Flag("readonly") }
func Multiple() Attribute                { return Flag("multiple") }
func Autofocus() Attribute               { return Flag("autofocus") }
func Autocomplete(mode string) Attribute { return Attr("autocomplete", mode) }
func Open() Attribute                    { return Flag("open") }

// Tables

func ColSpan(n int) Attribute      { return Attr("colspan", strconv.Itoa(n)) }
func RowSpan(n int) Attribute      { return Attr("rowspan", strconv.Itoa(n)) }
func Scope(scope string) Attribute { return Attr("scope", scope) }
