package site

import (
	"strconv"

	"github.com/vango-dev/markup/pkg/html"
	"github.com/vango-dev/markup/pkg/style"
)

var (
	pageStyle = []style.Declaration{
		style.Decl("max-width", "42rem"),
		style.Decl("margin", "0 auto"),
		style.Decl("padding", "2rem 1rem"),
		style.Decl("padding", "1rem", style.WithMedia(style.MaxWidth(600))),
	}
	cardStyle = []style.Declaration{
		style.Decl("border", "1px solid #ddd"),
		style.Decl("border-radius", "8px"),
		style.Decl("padding", "1rem"),
		style.Decl("margin-bottom", "1rem"),
	}
	linkStyle = []style.Declaration{
		style.Decl("color", "#0b57d0"),
		style.Decl("text-decoration", "none"),
		style.Decl("text-decoration", "underline", style.WithPseudo(style.Hover)),
	}
	tagStyle = []style.Declaration{
		style.Decl("font-size", "0.8rem"),
		style.Decl("background", "#eef"),
		style.Decl("padding", "0 0.4rem"),
		style.Decl("margin-right", "0.3rem"),
	}
	mutedStyle = style.Decl("color", "#666")
)

func (s *Site) layout(title string, content ...any) html.Document {
	head := html.Group(
		html.Meta(html.Charset("utf-8")),
		html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
		html.Title(html.Textf("%s · %s", title, s.Name)),
	)
	body := html.Group(
		html.Comment("generated by markup"),
		html.Header(pageStyle, html.Nav(
			html.A(html.Href("/"), linkStyle, html.Strong(s.Name)),
			" · ",
			html.A(html.Href("/about"), linkStyle, "About"),
		)),
		html.Main(append([]any{pageStyle}, content...)...),
		html.Footer(pageStyle, html.Small(mutedStyle, html.Textf("%d posts", len(s.Published())))),
	)
	return html.Document{Head: head, Body: body, Styles: s.Policy, Lang: "en"}
}

// Home lists the published posts.
func (s *Site) Home() html.Document {
	posts := s.Published()
	return s.layout("Home",
		html.H1("Posts"),
		html.IfElse(len(posts) == 0,
			html.P(mutedStyle, "Nothing published yet."),
			html.Ul(html.Role("list"), html.Each(posts, postCard)),
		),
	)
}

func postCard(p Post) html.Attributed {
	return html.Li(cardStyle,
		html.Article(
			html.H2(html.A(html.Href("/posts/"+p.Slug), linkStyle, p.Title)),
			publishedOn(p),
			html.P(p.Summary),
			tagList(p.Tags),
		),
	)
}

func publishedOn(p Post) html.Attributed {
	return html.P(mutedStyle, html.Time(
		html.DateTime(p.Published.Format("2006-01-02")),
		p.Published.Format("January 2, 2006"),
	))
}

func tagList(tags []string) html.Optional[html.Attributed] {
	return html.If(len(tags) > 0, html.Div(
		html.Aria("label", "tags"),
		html.Each(tags, func(tag string) html.Attributed {
			return html.Span(tagStyle, html.Class("tag"), tag)
		}),
	))
}

// PostPage renders one post.
func (s *Site) PostPage(p Post) html.Document {
	return s.layout(p.Title,
		html.Article(
			html.H1(p.Title),
			publishedOn(p),
			html.Range(p.Body, func(para string, i int) html.Attributed {
				return html.P(html.Data("paragraph", strconv.Itoa(i+1)), para)
			}),
			tagList(p.Tags),
		),
	)
}

// About describes the site.
func (s *Site) About() html.Document {
	return s.layout("About",
		html.H1("About"),
		html.P(html.Text("This site is rendered by ").EmbedRaw(html.Code("markup")).Append(", a typed HTML tree renderer.")),
		html.Switch(s.Policy,
			html.CaseOf(style.None, html.P(mutedStyle, "Styles are inline.")),
			html.CaseOf(style.Grouped, html.P(mutedStyle, "Each style set shares one class.")),
			html.Default[style.Policy](html.P(mutedStyle, "Each declaration has its own class.")),
		),
	)
}

// NotFound is exported as 404.html.
func (s *Site) NotFound() html.Document {
	return s.layout("Not found",
		html.H1("Not found"),
		html.P(html.A(html.Href("/"), linkStyle, "Back to the posts")),
	)
}
