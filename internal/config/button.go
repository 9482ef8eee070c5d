package config

import "github.com/goccy/go-yaml"

type Button struct {
	PromptLabel   InterpolatedString `yaml:"promptLabel"`
	ActiveLabel   InterpolatedString `yaml:"activeLabel"`
	InitialActive InterpolatedBool   `yaml:"initialActive"`
	TargetHref    InterpolatedString `yaml:"targetHref"`
	Style         InterpolatedString `yaml:"style"`
}

func NewDefaultButtonConfig() Button {
	return Button{
		PromptLabel:   "Explorer mes projets",
		ActiveLabel:   "Mes projets",
		InitialActive: false,
		TargetHref:    "/projects",
		Style:         "",
	}
}

func NewButtonConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":               []*yaml.Comment{yaml.HeadComment(" Call-to-action button")},
		".initialActive": []*yaml.Comment{yaml.HeadComment(" Default external state, overridden by the '?active=' query parameter")},
		".targetHref":    []*yaml.Comment{yaml.HeadComment(" Destination when the button is activated, leave empty to stay on the page")},
		".style":         []*yaml.Comment{yaml.HeadComment(" Additional CSS classes")},
	}
}
