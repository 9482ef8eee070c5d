package ui

import (
	"io"

	"github.com/bornholm/vitrine/internal/schema"
	"github.com/bornholm/vitrine/pkg/optional"
	"github.com/pkg/errors"
)

type ProjectActionKind string

const (
	ProjectActionLive ProjectActionKind = "live"
	ProjectActionCode ProjectActionKind = "code"
)

var projectActionLabels = map[ProjectActionKind]string{
	ProjectActionLive: "Live demo",
	ProjectActionCode: "Source code",
}

type ProjectActionTemplateData struct {
	Kind  ProjectActionKind
	Label string
	URL   string
}

// ProjectCardTemplateData is the view model of one catalog entry.
type ProjectCardTemplateData struct {
	ID           string
	Name         string
	Description  string
	Image        optional.Value[string]
	Technologies []string
	Actions      []ProjectActionTemplateData
}

func NewProjectCardTemplateData(project schema.Project) ProjectCardTemplateData {
	project = project.Clone()

	data := ProjectCardTemplateData{
		ID:           project.ID,
		Name:         project.Name,
		Description:  project.Description,
		Image:        project.Image(),
		Technologies: project.Technologies,
		Actions:      make([]ProjectActionTemplateData, 0, 2),
	}

	links := []struct {
		Kind ProjectActionKind
		URL  optional.Value[string]
	}{
		{ProjectActionLive, project.Live()},
		{ProjectActionCode, project.Code()},
	}

	for _, l := range links {
		url, ok := l.URL.Get()
		if !ok {
			continue
		}

		data.Actions = append(data.Actions, ProjectActionTemplateData{
			Kind:  l.Kind,
			Label: projectActionLabels[l.Kind],
			URL:   url,
		})
	}

	return data
}

func NewProjectCardsTemplateData(projects []schema.Project) []ProjectCardTemplateData {
	cards := make([]ProjectCardTemplateData, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, NewProjectCardTemplateData(p))
	}

	return cards
}

func RenderProjectCard(w io.Writer, project schema.Project) error {
	return errors.WithStack(renderComponent(w, "project-card", NewProjectCardTemplateData(project)))
}
