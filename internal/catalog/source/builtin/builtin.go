package builtin

import (
	"context"

	"github.com/bornholm/vitrine/internal/catalog/source"
	"github.com/bornholm/vitrine/internal/schema"
)

const Type source.Type = "builtin"

func init() {
	source.Register(Type, CreateSourceFromOptions)
}

// Projects is the dataset shipped with the binary.
var Projects = []schema.Project{
	{
		ID:           "gamerchallenge",
		Name:         "GamerChallenge",
		Description:  "Projet de fin de formation",
		Technologies: []string{"EJS", "Node.js", "PostgreSQL"},
		CodeLink:     "https://github.com/B-Kinda/GamerChallenges",
	},
	{
		ID:           "mformums",
		Name:         "MForMums",
		Description:  "Projet client Freelance",
		Technologies: []string{"EJS", "Node.js", "PostgreSQL"},
		CodeLink:     "https://github.com/B-Kinda/M-FOR-MUMS",
	},
	{
		ID:           "site-outils",
		Name:         "Site Outils",
		Description:  "Projet client Freelance",
		Technologies: []string{"HTML", "CSS", "JS"},
		CodeLink:     "https://github.com/B-Kinda/SITE-OUTILS",
	},
}

func CreateSourceFromOptions(options any) (source.Source, error) {
	return source.SourceFunc(func(ctx context.Context) ([]schema.Project, error) {
		projects := make([]schema.Project, 0, len(Projects))
		for _, p := range Projects {
			projects = append(projects, p.Clone())
		}

		return projects, nil
	}), nil
}
