package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/util/pathutil"
)

// Definition is a configured template: where to read it and where to write the result.
type Definition struct {
	Name       string
	InputPath  string
	OutputPath string
}

// Status is the result of rendering a single template.
type Status int

const (
	StatusRendered Status = iota
	StatusSkipped
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusRendered:
		return "rendered"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one template.
type Outcome struct {
	Template   string
	InputPath  string
	OutputPath string
	Status     Status
	// Reason is set for skipped templates.
	Reason error
	// BytesWritten is the size of the rendered output.
	BytesWritten int
}

// Renderer reads templates, substitutes placeholders and writes the results.
type Renderer struct {
	// BaseDir resolves relative template paths. Empty means the working directory.
	BaseDir string
	// DryRun renders templates without writing output files.
	DryRun bool
	// FileMode is used when an output file is created.
	FileMode os.FileMode

	logger hclog.Logger
}

// NewRenderer creates a renderer. A nil logger discards all output.
func NewRenderer(baseDir string, logger hclog.Logger) *Renderer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Renderer{
		BaseDir:  baseDir,
		FileMode: 0o644,
		logger:   logger,
	}
}

// Render processes defs in order using patterns.
//
// A template whose input does not exist is skipped and rendering continues.
// Read and write failures stop the pass; the outcomes gathered so far are
// returned together with the error.
func (r *Renderer) Render(defs []Definition, patterns *Patterns) ([]Outcome, error) {
	r.logger.Info("loaded templates", "count", len(defs))
	r.logger.Debug("compiled placeholder patterns", "roles", patterns.Len(), "prefix", patterns.Prefix())

	outcomes := make([]Outcome, 0, len(defs))
	for _, def := range defs {
		outcome, err := r.renderOne(def, patterns)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (r *Renderer) renderOne(def Definition, patterns *Patterns) (Outcome, error) {
	inputPath, err := pathutil.Expand(def.InputPath, r.BaseDir)
	if err != nil {
		return Outcome{}, &TemplateReadError{Template: def.Name, Path: def.InputPath, Err: err}
	}
	outputPath, err := pathutil.Expand(def.OutputPath, r.BaseDir)
	if err != nil {
		return Outcome{}, &TemplateWriteError{Template: def.Name, Path: def.OutputPath, Err: err}
	}

	outcome := Outcome{
		Template:   def.Name,
		InputPath:  inputPath,
		OutputPath: outputPath,
	}

	if _, err := os.Stat(inputPath); errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn("template input does not exist, skipping", "template", def.Name, "input", inputPath)
		outcome.Status = StatusSkipped
		outcome.Reason = ErrMissingInput
		return outcome, nil
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 - User-configured template path, intended to be read
	if err != nil {
		return outcome, &TemplateReadError{Template: def.Name, Path: inputPath, Err: err}
	}
	if !utf8.Valid(data) {
		return outcome, &TemplateReadError{Template: def.Name, Path: inputPath, Err: fmt.Errorf("content is not valid UTF-8")}
	}

	rendered := patterns.Render(string(data))
	outcome.BytesWritten = len(rendered)
	outcome.Status = StatusRendered

	if r.DryRun {
		r.logger.Info("rendered template (dry run)", "template", def.Name, "output", outputPath, "bytes", outcome.BytesWritten)
		return outcome, nil
	}

	if err := os.WriteFile(outputPath, []byte(rendered), r.FileMode); err != nil {
		return outcome, &TemplateWriteError{Template: def.Name, Path: outputPath, Err: err}
	}

	r.logger.Info("exported template", "template", def.Name, "output", outputPath)
	return outcome, nil
}
