package config

import "github.com/goccy/go-yaml"

type Site struct {
	Name        InterpolatedString `yaml:"name"`
	Description InterpolatedString `yaml:"description"`
	Hero        Hero               `yaml:"hero"`
	Links       []Link             `yaml:"links"`
}

type Hero struct {
	Title     InterpolatedString `yaml:"title"`
	Highlight InterpolatedString `yaml:"highlight"`
	Tagline   InterpolatedString `yaml:"tagline"`
}

type Link struct {
	Label InterpolatedString `yaml:"label"`
	URL   InterpolatedString `yaml:"url"`
}

func NewDefaultSiteConfig() Site {
	return Site{
		Name:        "${VITRINE_SITE_NAME:-Portfolio}",
		Description: "Développeur FullStack",
		Hero: Hero{
			Title:     "Développeur FullStack :",
			Highlight: "Portfolio",
			Tagline:   "De l'API aux interfaces dynamiques, je conçois des solutions sécurisées et performantes.",
		},
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/B-Kinda?tab=repositories"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/blb34/"},
		},
	}
}

func NewSiteConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":       []*yaml.Comment{yaml.HeadComment(" Site identity")},
		".hero":  []*yaml.Comment{yaml.HeadComment(" Landing section of the home page")},
		".links": []*yaml.Comment{yaml.HeadComment(" Social links displayed in the footer")},
	}
}
