package web

import (
	"html/template"
	"net/url"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/skin"
)

type pageColors struct {
	Background template.CSS
	Surface    template.CSS
	Border     template.CSS
	Text       template.CSS
	Muted      template.CSS
	Accent     template.CSS
	Overlay    template.CSS
}

type pageIcons struct {
	Menu   template.HTML
	Search template.HTML
	User   template.HTML
	Close  template.HTML
}

type sectionView struct {
	Heading string
	Columns int
	Panels  []panelView
}

type panelView struct {
	ID     string
	Title  string
	SVG    template.HTML
	Legend []dashboard.LegendEntry
}

// pageView is the data handed to pageTemplate.
type pageView struct {
	Page        dashboard.Page
	Sections    []sectionView
	Colors      pageColors
	CSS         template.CSS
	Icons       pageIcons
	MenuHref    string
	CloseHref   string
	OverlayHref string
}

// stateHref returns the URL of the page after applying a to state.
func stateHref(state dashboard.ViewState, a dashboard.Action) string {
	next := state.Apply(a)
	return "/?" + url.Values{"sidebar": {next.String()}}.Encode()
}

// newPageView builds the template data. Skin colors are validated hex values.
func newPageView(page dashboard.Page, sk skin.Skin) pageView {
	r := svgRenderer{skin: sk}

	sections := make([]sectionView, 0, len(page.Sections))
	for _, s := range page.Sections {
		sv := sectionView{Heading: s.Heading, Columns: max(1, s.Columns)}
		for _, p := range s.Panels {
			sv.Panels = append(sv.Panels, panelView{
				ID:     p.ID,
				Title:  p.Title,
				SVG:    template.HTML(r.render(p)),
				Legend: p.Legend,
			})
		}
		sections = append(sections, sv)
	}

	return pageView{
		Page:     page,
		Sections: sections,
		Colors: pageColors{
			Background: template.CSS(sk.Background),
			Surface:    template.CSS(sk.Surface),
			Border:     template.CSS(sk.Border),
			Text:       template.CSS(sk.Text),
			Muted:      template.CSS(sk.Muted),
			Accent:     template.CSS(sk.Accent),
			Overlay:    template.CSS(sk.Overlay),
		},
		CSS: template.CSS(cssContent),
		Icons: pageIcons{
			Menu:   template.HTML(iconMenu),
			Search: template.HTML(iconSearch),
			User:   template.HTML(iconUser),
			Close:  template.HTML(iconClose),
		},
		MenuHref:    stateHref(page.State, dashboard.ActionMenu),
		CloseHref:   stateHref(page.State, dashboard.ActionClose),
		OverlayHref: stateHref(page.State, dashboard.ActionOverlay),
	}
}
