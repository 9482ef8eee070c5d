package source

import (
	"io"

	"github.com/bornholm/vitrine/internal/schema"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Document is the serialized form of a catalog, shared by the file and
// object storage sources. JSON documents are accepted too.
type Document struct {
	Projects []schema.Project `yaml:"projects" json:"projects"`
}

func DecodeDocument(r io.Reader) ([]schema.Project, error) {
	var doc Document

	decoder := yaml.NewDecoder(r)

	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []schema.Project{}, nil
		}

		return nil, errors.WithStack(err)
	}

	if doc.Projects == nil {
		doc.Projects = []schema.Project{}
	}

	return doc.Projects, nil
}

func EncodeDocument(w io.Writer, projects []schema.Project) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	if err := encoder.Encode(Document{Projects: projects}); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
