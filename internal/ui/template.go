package ui

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"sync"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var commonFs embed.FS

var commonFuncs = template.FuncMap{
	"humanizeInt": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"plural": func(n int, singular, plural string) string {
		if n == 1 {
			return singular
		}
		return plural
	},
}

// Templates parses the common component layouts merged with the views and
// layouts of the given filesystems.
func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{commonFs}, filesystems...)
	merged := mergefs.Merge(filesystems...)

	views, err := fs.Glob(merged, "**/views/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	layouts, err := fs.Glob(merged, "**/layouts/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	templates := append(views, layouts...)

	tmpl := template.New("").Funcs(sprig.FuncMap()).Funcs(commonFuncs)

	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err = tmpl.ParseFS(merged, templates...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

var componentTemplates = sync.OnceValues(func() (*template.Template, error) {
	return Templates(nil)
})

// renderComponent executes one of the common component templates on its own,
// outside of any page.
func renderComponent(w io.Writer, name string, data any) error {
	tmpl, err := componentTemplates()
	if err != nil {
		return errors.WithStack(err)
	}

	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		return errors.Wrapf(err, "could not render component '%s'", name)
	}

	return nil
}

type HeadTemplateData struct {
	PageTitle   string
	SiteName    string
	Description string
}
