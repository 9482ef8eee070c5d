package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bornholm/vitrine/internal/catalog/source/testsuite"
	"github.com/bornholm/vitrine/internal/schema"
	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

func TestSourceSeed(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	testsuite.TestSource(t, Type, &Options{
		Path: dbPath,
		Seed: true,
	}, []schema.Project{
		{
			ID:           "mon-portfolio",
			Name:         "Mon Portfolio",
			Description:  "Mon portfolio personnel",
			Img:          "portfolio.jpg",
			Technologies: []string{"Next.js", "TypeScript", "Prisma"},
			CodeLink:     "https://github.com/votre-compte/portfolio",
			LiveLink:     "https://mon-portfolio.com",
		},
	})
}

func TestSourceOrder(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	src := NewSource(dbPath, false)
	defer src.Close()

	ctx := context.Background()

	err := src.Tx(ctx, func(conn *sqlite.Conn) error {
		rows := []struct {
			ID        string
			SortOrder int
			Name      string
			CodeLink  any
			Techs     []string
		}{
			{ID: "b", SortOrder: 1, Name: "Second", CodeLink: nil, Techs: []string{"EJS", "Node.js"}},
			{ID: "a", SortOrder: 0, Name: "X", CodeLink: "http://c", Techs: []string{"Go"}},
			{ID: "c", SortOrder: 2, Name: "Third", CodeLink: nil, Techs: nil},
		}

		for _, r := range rows {
			err := sqlitex.Execute(conn, `INSERT INTO projects (id, sort_order, name, code_link, created_at) VALUES (?, ?, ?, ?, 0)`, &sqlitex.ExecOptions{
				Args: []any{r.ID, r.SortOrder, r.Name, r.CodeLink},
			})
			if err != nil {
				return errors.WithStack(err)
			}

			for position, tech := range r.Techs {
				err := sqlitex.Execute(conn, `INSERT INTO project_technologies (project_id, position, name) VALUES (?, ?, ?)`, &sqlitex.ExecOptions{
					Args: []any{r.ID, position, tech},
				})
				if err != nil {
					return errors.WithStack(err)
				}
			}
		}

		return nil
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	projects, err := src.Projects(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	testsuite.AssertProjects(t, []schema.Project{
		{ID: "a", Name: "X", Technologies: []string{"Go"}, CodeLink: "http://c"},
		{ID: "b", Name: "Second", Technologies: []string{"EJS", "Node.js"}},
		{ID: "c", Name: "Third", Technologies: []string{}},
	}, projects)
}
