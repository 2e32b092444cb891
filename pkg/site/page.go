package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/navarrastar/landing-backend/pkg/models"
)

// PageConfig describes the built-in landing page
type PageConfig struct {
	Title       string
	Description string
	Headline    string
	Subline     string
	Phone       string
	Schema      models.LeadSchema
}

// DefaultPageConfig is the copy used when the asset root has no index.html
func DefaultPageConfig(schema models.LeadSchema) PageConfig {
	return PageConfig{
		Title:       "Get a free quote",
		Description: "Tell us what you need and we will get back to you the same day.",
		Headline:    "Get a free quote today",
		Subline:     "Leave your details and we will call you back within one business day.",
		Schema:      schema,
	}
}

type field struct {
	name         string
	label        string
	inputType    string
	placeholder  string
	required     bool
	autocomplete string
}

func formFields(schema models.LeadSchema) []field {
	if schema == models.SchemaEmail {
		return []field{
			{name: "name", label: "Name", inputType: "text", placeholder: "Jane Doe", required: true, autocomplete: "name"},
			{name: "email", label: "Email", inputType: "email", placeholder: "jane@company.com", required: true, autocomplete: "email"},
			{name: "company", label: "Company", inputType: "text", placeholder: "Optional", autocomplete: "organization"},
		}
	}
	return []field{
		{name: "name", label: "Name", inputType: "text", placeholder: "Jane Doe", required: true, autocomplete: "name"},
		{name: "phone", label: "Phone", inputType: "tel", placeholder: "555-123-4567", required: true, autocomplete: "tel"},
		{name: "city", label: "City", inputType: "text", placeholder: "Optional", autocomplete: "address-level2"},
	}
}

// LandingPage renders the complete entry document
func LandingPage(config PageConfig) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Link(Rel("stylesheet"), Href("/css/styles.css")),
			),
			Body(
				navBar(),
				hero(config),
				leadForm(config.Schema),
				footer(),
				Script(Src("/js/landing.js"), g.Attr("defer")),
			),
		),
	})
}

func navBar() g.Node {
	return Nav(
		ID("nav"),
		Class("nav"),
		A(Href("#top"), Class("nav-brand"), g.Text("Landing")),
		A(Href("#quote"), Class("btn btn-small"), g.Attr("data-track", "nav_quote"), g.Text("Get a quote")),
	)
}

func hero(config PageConfig) g.Node {
	return Header(
		ID("top"),
		Class("hero"),
		H1(g.Text(config.Headline)),
		P(Class("hero-sub"), g.Text(config.Subline)),
		A(Href("#quote"), Class("btn"), g.Attr("data-track", "hero_quote"), g.Text("Request a callback")),
	)
}

func leadForm(schema models.LeadSchema) g.Node {
	return Section(
		ID("quote"),
		Class("quote"),
		H2(g.Text("Request a callback")),
		g.El("form",
			ID("lead-form"),
			Class("lead-form"),
			g.Attr("novalidate"),
			g.Attr("data-schema", string(schema)),
			g.Group(g.Map(formFields(schema), formField)),
			Div(
				Class("form-row"),
				Label(g.Attr("for", "note"), g.Text("Note")),
				g.El("textarea", ID("note"), Name("note"), g.Attr("rows", "3"), g.Attr("placeholder", "Anything we should know?")),
			),
			Button(Type("submit"), Class("btn"), g.Text("Send")),
			P(ID("form-status"), Class("form-status"), g.Attr("role", "status"), g.Attr("aria-live", "polite")),
		),
	)
}

func formField(f field) g.Node {
	return Div(
		Class("form-row"),
		Label(g.Attr("for", f.name), g.Text(f.label)),
		Input(
			ID(f.name),
			Name(f.name),
			Type(f.inputType),
			g.Attr("placeholder", f.placeholder),
			g.Attr("autocomplete", f.autocomplete),
			g.If(f.required, g.Attr("required")),
		),
	)
}

func footer() g.Node {
	return Footer(
		Class("footer"),
		P(g.Text("We only use your details to answer your request.")),
	)
}
