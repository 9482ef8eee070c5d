package config

import "github.com/goccy/go-yaml"

type Navigation struct {
	Welcome    InterpolatedString `yaml:"welcome"`
	Items      []NavItem          `yaml:"items"`
	Visibility InterpolatedString `yaml:"visibility"`
}

type NavItem struct {
	Label        InterpolatedString `yaml:"label"`
	Href         InterpolatedString `yaml:"href"`
	AuthRequired InterpolatedBool   `yaml:"authRequired"`
}

func NewDefaultNavigationConfig() Navigation {
	return Navigation{
		Welcome: "Bienvenue sur mon portfolio",
		Items: []NavItem{
			{Label: "Accueil", Href: "/"},
			{Label: "Projets", Href: "/projects"},
		},
		Visibility: "!authRequired || authenticated",
	}
}

func NewNavigationConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":            []*yaml.Comment{yaml.HeadComment(" Navigation bar")},
		".welcome":    []*yaml.Comment{yaml.HeadComment(" Optional banner text")},
		".items":      []*yaml.Comment{yaml.HeadComment(" Ordered links, 'href' must be unique")},
		".visibility": []*yaml.Comment{yaml.HeadComment(" Rule filtering the items before rendering", " Variables: label, href, authRequired, authenticated", " See https://expr-lang.org/docs/language-definition")},
	}
}
