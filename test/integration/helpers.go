package integration

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/danieljhkim/combos/internal/combo"
	"github.com/danieljhkim/combos/internal/engine"
	"github.com/danieljhkim/combos/internal/fsops"
	"github.com/danieljhkim/combos/internal/hostdoc"
	"github.com/danieljhkim/combos/internal/prompt"
	"github.com/danieljhkim/combos/internal/registry"
	"github.com/danieljhkim/combos/internal/stores"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files    map[string][]byte
	dirs     map[string]bool
	writeErr error
}

var _ fsops.FS = (*testFS)(nil)

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	for p := path; p != "." && p != string(filepath.Separator); p = filepath.Dir(p) {
		fs.dirs[p] = true
	}
	return nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if fs.writeErr != nil {
		return fs.writeErr
	}
	_ = fs.MkdirAll(filepath.Dir(path), 0755)
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	data, ok := fs.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *testFS) Remove(path string) error {
	delete(fs.files, path)
	delete(fs.dirs, path)
	return nil
}

// scriptedPrompter answers dialogs from queues; an empty queue dismisses.
type scriptedPrompter struct {
	actions  []prompt.Action
	sets     []combo.Set
	picks    []int
	confirms []bool
	anchors  []string
	notes    []string
}

var _ engine.Dialogs = (*scriptedPrompter)(nil)

func (p *scriptedPrompter) ChooseAction() (prompt.Action, error) {
	if len(p.actions) == 0 {
		return prompt.ActionClose, nil
	}
	a := p.actions[0]
	p.actions = p.actions[1:]
	return a, nil
}

func (p *scriptedPrompter) EditSet(existing *combo.Set, items []catalog.Item) (combo.Set, bool, error) {
	if len(p.sets) == 0 {
		return combo.Set{}, false, nil
	}
	s := p.sets[0]
	p.sets = p.sets[1:]
	return s, true, nil
}

func (p *scriptedPrompter) SelectSet(coll combo.Collection) (int, bool, error) {
	if len(p.picks) == 0 {
		return 0, false, nil
	}
	i := p.picks[0]
	p.picks = p.picks[1:]
	return i, true, nil
}

func (p *scriptedPrompter) Confirm(title, message string) (bool, error) {
	if len(p.confirms) == 0 {
		return false, nil
	}
	yes := p.confirms[0]
	p.confirms = p.confirms[1:]
	return yes, nil
}

func (p *scriptedPrompter) Notify(title, message string) {
	p.notes = append(p.notes, message)
}

func (p *scriptedPrompter) SelectAnchor(elements []hostdoc.Element) (string, bool, error) {
	if len(p.anchors) == 0 {
		return "", false, nil
	}
	id := p.anchors[0]
	p.anchors = p.anchors[1:]
	return id, true, nil
}

const storePath = "/combos/combinations.json"

// setupTestEngine wires an engine over an in-memory store and a project
// document in a temporary directory.
func setupTestEngine(t *testing.T) (*engine.Engine, *testFS, *scriptedPrompter, string) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fs := newTestFS()
	store := stores.NewFileStore(fs, storePath, logger)
	dialogs := &scriptedPrompter{}
	docPath := filepath.Join(t.TempDir(), "project.db")

	eng := engine.New(registry.New(store), engine.OpenDocument(docPath, logger), dialogs, logger)
	return eng, fs, dialogs, docPath
}

// seedDocument adds catalog items and one anchored element, returning the
// element id.
func seedDocument(t *testing.T, docPath string, anchor combo.Point, items ...catalog.Item) string {
	t.Helper()

	doc, err := hostdoc.Open(docPath, nil)
	if err != nil {
		t.Fatalf("hostdoc.Open() failed: %v", err)
	}
	defer doc.Close()

	for _, it := range items {
		if _, err := doc.AddCatalogItem(it); err != nil {
			t.Fatalf("AddCatalogItem() failed: %v", err)
		}
	}
	el, err := doc.AddElement("Anchor", &anchor)
	if err != nil {
		t.Fatalf("AddElement() failed: %v", err)
	}
	return el.ID
}

func countInstances(t *testing.T, docPath string) int {
	t.Helper()

	doc, err := hostdoc.Open(docPath, nil)
	if err != nil {
		t.Fatalf("hostdoc.Open() failed: %v", err)
	}
	defer doc.Close()

	n, err := doc.CountInstances()
	if err != nil {
		t.Fatalf("CountInstances() failed: %v", err)
	}
	return n
}
