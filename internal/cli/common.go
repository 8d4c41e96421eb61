package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danieljhkim/combos/internal/combo"
	"github.com/danieljhkim/combos/internal/config"
	"github.com/danieljhkim/combos/internal/engine"
	"github.com/danieljhkim/combos/internal/fsops"
	"github.com/danieljhkim/combos/internal/hostdoc"
	"github.com/danieljhkim/combos/internal/prompt"
	"github.com/danieljhkim/combos/internal/registry"
	"github.com/danieljhkim/combos/internal/stores"
)

// runtime holds the resolved locations and shared dependencies of one
// command invocation.
type runtime struct {
	paths    *config.Paths
	settings *config.Settings
	fs       fsops.FS
	logger   *slog.Logger
}

// loadRuntime resolves paths and settings. --store and --document win over
// the config file and environment.
func loadRuntime() (*runtime, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	settings, err := config.LoadSettings(paths, cfgFile)
	if err != nil {
		return nil, err
	}
	if storePath != "" {
		settings.StorePath = storePath
	}
	if documentPath != "" {
		settings.DocumentPath = documentPath
	}
	if !verbose {
		setupLogging(parseLevel(settings.LogLevel))
	}

	return &runtime{
		paths:    paths,
		settings: settings,
		fs:       fsops.NewRealFS(),
		logger:   slog.Default(),
	}, nil
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, *runtime, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, nil, err
	}

	store := stores.NewFileStore(rt.fs, rt.settings.StorePath, rt.logger)
	reg := registry.New(store)
	dialogs := engine.NewDialogs(prompt.NewHuhPrompter())

	return engine.New(reg, engine.OpenDocument(rt.settings.DocumentPath, rt.logger), dialogs, rt.logger), rt, nil
}

// openDocument opens the configured project document.
func openDocument() (*hostdoc.Document, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	return hostdoc.Open(rt.settings.DocumentPath, rt.logger)
}

// parsePoint parses "x,y" or "x,y,z".
func parsePoint(s string) (*combo.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("invalid point %q: expected x,y or x,y,z", s)
	}

	var coords [3]float64
	for i, part := range parts {
		v, err := combo.ParseOffset(part)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %q is not a number", s, strings.TrimSpace(part))
		}
		coords[i] = v
	}
	return &combo.Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printOutcome renders an interactive command's outcome. Only Failed is
// returned as an error.
func printOutcome(title string, o engine.Outcome) error {
	if jsonOutput {
		out := map[string]any{
			"status": o.Status.String(),
			"report": o.Report,
		}
		if o.Placement != nil {
			out["placed"] = o.Placement.TotalPlaced
			out["failed"] = o.Placement.Failed
			out["missing"] = o.Placement.Missing
		}
		if o.Plan != nil {
			out["operations"] = len(o.Plan.Operations())
		}
		if err := outputJSON(out); err != nil {
			return err
		}
		if o.Status == engine.Failed {
			return o.Err
		}
		return nil
	}

	switch o.Status {
	case engine.Failed:
		return o.Err
	case engine.Cancelled:
		if o.Report != "" {
			PrintWarning(o.Report)
		}
	default:
		if o.Report != "" {
			PrintSection(title)
			PrintInfo(o.Report)
		}
	}
	return nil
}
