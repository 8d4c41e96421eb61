package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/danieljhkim/combos/internal/combo"
	"github.com/danieljhkim/combos/internal/hostdoc"
	"github.com/danieljhkim/combos/internal/placement"
	"github.com/danieljhkim/combos/internal/prompt"
	"github.com/danieljhkim/combos/internal/registry"
)

// Dialogs extends the prompter with anchor selection, which needs the
// project's element type.
type Dialogs interface {
	prompt.Prompter

	// SelectAnchor picks an element and returns its id.
	SelectAnchor(elements []hostdoc.Element) (string, bool, error)
}

// UnitOfWork is a catalog host whose changes are committed or discarded as
// a whole.
type UnitOfWork interface {
	catalog.Host
	Commit() error
	Rollback() error
}

// Project is the open project document as seen by the command layer.
type Project interface {
	ListCatalogItems() ([]catalog.Item, error)
	ListElements() ([]hostdoc.Element, error)
	AnchorFor(elementID string) (combo.Point, error)
	Begin(ctx context.Context) (UnitOfWork, error)
	Close() error
}

// ProjectOpener opens the project document for the duration of a command.
type ProjectOpener func() (Project, error)

// Engine orchestrates every combos command.
// It is the main API surface called by the CLI.
type Engine struct {
	registry    *registry.Registry
	openProject ProjectOpener
	dialogs     Dialogs
	placer      *placement.Engine
	logger      *slog.Logger
}

// New creates a new Engine with the given dependencies. openProject and
// dialogs may be nil for commands that need neither.
func New(reg *registry.Registry, openProject ProjectOpener, dialogs Dialogs, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		registry:    reg,
		openProject: openProject,
		dialogs:     dialogs,
		placer:      placement.New(logger),
		logger:      logger,
	}
}

func (e *Engine) project() (Project, error) {
	if e.openProject == nil {
		return nil, ErrNoDocument
	}
	p, err := e.openProject()
	if err != nil {
		return nil, fmt.Errorf("failed to open project document: %w", err)
	}
	return p, nil
}

// OpenDocument returns a ProjectOpener for the SQLite document at path.
func OpenDocument(path string, logger *slog.Logger) ProjectOpener {
	return func() (Project, error) {
		doc, err := hostdoc.Open(path, logger)
		if err != nil {
			return nil, err
		}
		return documentProject{doc}, nil
	}
}

type documentProject struct {
	*hostdoc.Document
}

func (d documentProject) Begin(ctx context.Context) (UnitOfWork, error) {
	uow, err := d.Document.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return uow, nil
}

// Chooser is a prompter that can also pick from plain labels.
type Chooser interface {
	prompt.Prompter
	Choose(title string, labels []string) (int, bool, error)
}

// NewDialogs adds anchor selection to p.
func NewDialogs(p Chooser) Dialogs {
	return anchorDialogs{p}
}

type anchorDialogs struct {
	Chooser
}

func (d anchorDialogs) SelectAnchor(elements []hostdoc.Element) (string, bool, error) {
	labels := make([]string, len(elements))
	for i, el := range elements {
		labels[i] = el.String()
	}
	i, ok, err := d.Choose("Select anchor element", labels)
	if err != nil || !ok {
		return "", false, err
	}
	return elements[i].ID, true, nil
}
