package config

import (
	"fmt"

	"github.com/bornholm/vitrine/internal/catalog/source"
	"github.com/bornholm/vitrine/internal/catalog/source/builtin"
	"github.com/goccy/go-yaml"
)

type Catalog struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options"`
}

func NewDefaultCatalogConfig() Catalog {
	return Catalog{
		Type: InterpolatedString(fmt.Sprintf("${VITRINE_CATALOG_TYPE:-%s}", builtin.Type)),
		Options: &InterpolatedMap{
			Data: map[string]any{
				"path": "${VITRINE_CATALOG_PATH:-./data/projects.yml}",
			},
		},
	}
}

func NewCatalogConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":      []*yaml.Comment{yaml.HeadComment(" Project catalog, loaded once at startup")},
		".type": []*yaml.Comment{yaml.HeadComment(" Catalog source type", fmt.Sprintf(" Available: %v", source.Registered()))},
		".options": []*yaml.Comment{
			yaml.HeadComment(" Catalog source options"),
			yaml.FootComment(
				" file: path",
				" sqlite: path, seed",
				" s3: endpoint, accessKey, secretKey, region, bucket, object, secure",
			),
		},
	}
}
