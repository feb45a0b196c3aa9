// Package catalog discovers skills in a tree of per-skill directories, each
// holding one primary Markdown document.
package catalog

import (
	"context"
	"log/slog"
	"path"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/storage"
)

const readConcurrency = 16

// Catalog lists and loads skills from a storage provider.
type Catalog struct {
	store   storage.Provider
	docName string
	logger  *slog.Logger
}

// New creates a Catalog over store. docName is the fixed name of each skill's
// primary document (e.g. "SKILL.md").
func New(store storage.Provider, docName string, logger *slog.Logger) *Catalog {
	return &Catalog{store: store, docName: docName, logger: logger}
}

// Names returns the sorted identifiers of every skill directory. Directory
// names are unique siblings, so the slice doubles as the identifier set.
func (c *Catalog) Names() ([]string, error) {
	return c.store.Dirs("")
}

// Load reads every skill's primary document. Documents are read concurrently;
// a document that cannot be read is logged and skipped so one bad file does
// not block the rest. The returned slice is sorted by skill name regardless
// of read completion order.
func (c *Catalog) Load(ctx context.Context) ([]*models.Skill, error) {
	names, err := c.Names()
	if err != nil {
		return nil, err
	}

	loaded := make([]*models.Skill, len(names))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)

	for i, name := range names {
		g.Go(func() error {
			docPath := path.Join(name, c.docName)
			data, err := c.store.Read(docPath)
			if err != nil {
				c.logger.Warn("catalog: skipping unreadable document",
					slog.String("path", docPath),
					slog.String("error", err.Error()))
				return nil
			}
			loaded[i] = &models.Skill{
				Name:    name,
				DocPath: docPath,
				Content: string(data),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*models.Skill, 0, len(loaded))
	for _, s := range loaded {
		if s != nil {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// LoadPattern reads every document matching a glob pattern (relative to the
// tree root, e.g. "*/SKILL.md"). The skill name is taken from the matched
// file's containing directory. Unreadable files are logged and skipped; the
// returned slice is sorted by document path.
func (c *Catalog) LoadPattern(ctx context.Context, pattern string) ([]*models.Skill, error) {
	paths, err := c.store.Glob(pattern)
	if err != nil {
		return nil, err
	}

	loaded := make([]*models.Skill, len(paths))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)

	for i, p := range paths {
		g.Go(func() error {
			data, err := c.store.Read(p)
			if err != nil {
				c.logger.Warn("catalog: skipping unreadable document",
					slog.String("path", p),
					slog.String("error", err.Error()))
				return nil
			}
			loaded[i] = &models.Skill{
				Name:    path.Base(path.Dir(p)),
				DocPath: p,
				Content: string(data),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*models.Skill, 0, len(loaded))
	for _, s := range loaded {
		if s != nil {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DocPath < out[j].DocPath })
	return out, nil
}

// Get loads a single skill by name.
func (c *Catalog) Get(name string) (*models.Skill, error) {
	docPath := path.Join(name, c.docName)
	data, err := c.store.Read(docPath)
	if err != nil {
		return nil, err
	}
	return &models.Skill{Name: name, DocPath: docPath, Content: string(data)}, nil
}
