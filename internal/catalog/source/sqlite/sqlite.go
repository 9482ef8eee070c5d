package sqlite

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/vitrine/internal/catalog/source"
	"github.com/bornholm/vitrine/internal/schema"
	"github.com/bornholm/vitrine/pkg/log"
	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitemigration"
	"zombiezen.com/go/sqlite/sqlitex"
)

const Type source.Type = "sqlite"

func init() {
	source.Register(Type, CreateSourceFromOptions)
}

type Options struct {
	Path string `mapstructure:"path" yaml:"path"`
	// Seed inserts the sample project when it does not exist yet
	Seed bool `mapstructure:"seed" yaml:"seed"`
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		sort_order INTEGER NOT NULL DEFAULT 0,

		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		img TEXT NOT NULL DEFAULT '',

		code_link TEXT,
		live_link TEXT,

		created_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_projects_sort_order ON projects(sort_order);`,
	`CREATE TABLE IF NOT EXISTS project_technologies (
		project_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		PRIMARY KEY (project_id, position),
		FOREIGN KEY(project_id) REFERENCES projects(id) ON DELETE CASCADE
	);`,
}

var seed = []string{
	`INSERT OR IGNORE INTO projects (id, sort_order, name, description, img, code_link, live_link, created_at)
		VALUES ('mon-portfolio', 0, 'Mon Portfolio', 'Mon portfolio personnel', 'portfolio.jpg',
			'https://github.com/votre-compte/portfolio', 'https://mon-portfolio.com', unixepoch());`,
	`INSERT OR IGNORE INTO project_technologies (project_id, position, name) VALUES ('mon-portfolio', 0, 'Next.js');`,
	`INSERT OR IGNORE INTO project_technologies (project_id, position, name) VALUES ('mon-portfolio', 1, 'TypeScript');`,
	`INSERT OR IGNORE INTO project_technologies (project_id, position, name) VALUES ('mon-portfolio', 2, 'Prisma');`,
}

type Source struct {
	pool *sqlitemigration.Pool
}

// Projects implements source.Source.
func (s *Source) Projects(ctx context.Context) ([]schema.Project, error) {
	projects := make([]schema.Project, 0)

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		index := map[string]int{}

		err := sqlitex.Execute(conn, `SELECT id, name, description, img, code_link, live_link FROM projects ORDER BY sort_order, rowid`, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				p := schema.Project{
					ID:           stmt.ColumnText(0),
					Name:         stmt.ColumnText(1),
					Description:  stmt.ColumnText(2),
					Img:          stmt.ColumnText(3),
					CodeLink:     stmt.ColumnText(4),
					LiveLink:     stmt.ColumnText(5),
					Technologies: []string{},
				}

				index[p.ID] = len(projects)
				projects = append(projects, p)

				return nil
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		err = sqlitex.Execute(conn, `SELECT project_id, name FROM project_technologies ORDER BY project_id, position`, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				idx, exists := index[stmt.ColumnText(0)]
				if !exists {
					return nil
				}

				projects[idx].Technologies = append(projects[idx].Technologies, stmt.ColumnText(1))

				return nil
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return projects, nil
}

func (s *Source) Do(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	defer s.pool.Put(conn)

	if err := fn(conn); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Source) Tx(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	return errors.WithStack(s.Do(ctx, func(conn *sqlite.Conn) (err error) {
		defer sqlitex.Save(conn)(&err)
		err = fn(conn)
		return errors.WithStack(err)
	}))
}

func (s *Source) Close() error {
	if err := s.pool.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var _ source.Source = &Source{}

func NewSource(path string, withSeed bool) *Source {
	dbSchema := sqlitemigration.Schema{
		Migrations: migrations,
	}

	if withSeed {
		dbSchema.RepeatableMigration = strings.Join(seed, " ")
	}

	pool := sqlitemigration.NewPool(path, dbSchema, sqlitemigration.Options{
		Flags: sqlite.OpenCreate | sqlite.OpenReadWrite | sqlite.OpenWAL,
		PrepareConn: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteTransient(conn, "PRAGMA foreign_keys = on", nil)
		},
		OnError: func(err error) {
			slog.Error("catalog database migration failed", log.Error(errors.WithStack(err)), slog.String("path", path))
		},
	})

	return &Source{pool: pool}
}

func CreateSourceFromOptions(options any) (source.Source, error) {
	opts := Options{}

	if err := source.DecodeOptions(Type, options, &opts); err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.Path == "" {
		return nil, errors.Errorf("'%s' catalog source requires a path", Type)
	}

	return NewSource(opts.Path, opts.Seed), nil
}
