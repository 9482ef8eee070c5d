package portfolio

import (
	"embed"
	"html/template"
	"io"

	"github.com/bornholm/vitrine/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

//go:embed static/**
var staticFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// PageTemplateData is shared by every full page.
type PageTemplateData struct {
	ui.HeadTemplateData
	ui.NavbarTemplateData
	Hero        ui.HeroTemplateData
	Toggle      ui.ToggleTemplateData
	SocialLinks []SocialLink
}

type ProjectsPageTemplateData struct {
	PageTemplateData
	Cards        []ui.ProjectCardTemplateData
	ProjectCount int
}

func (h *Handler) newPageTemplateData(title string, path string, toggle ui.ToggleTemplateData) PageTemplateData {
	return PageTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle:   title,
			SiteName:    h.site.Name,
			Description: h.site.Description,
		},
		NavbarTemplateData: h.navbar.WithCurrentPath(path),
		Hero:               h.site.Hero,
		Toggle:             toggle,
		SocialLinks:        h.site.Links,
	}
}

func render(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return errors.Wrapf(err, "could not render template '%s'", name)
	}

	return nil
}
