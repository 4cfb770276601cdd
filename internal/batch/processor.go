package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/kamut-io/kamut/internal/core"
	oerrors "github.com/kamut-io/kamut/internal/errors"
	"github.com/kamut-io/kamut/internal/expand"
	"github.com/kamut-io/kamut/internal/model"
	"github.com/kamut-io/kamut/internal/output"
)

// DefaultWorkers is the number of files processed at once when Workers is
// not positive.
const DefaultWorkers = 4

// FileResult describes one processed input file.
type FileResult struct {
	// Path is the input file.
	Path string

	// OutputPath is the manifest file. Empty when nothing was written.
	OutputPath string

	// Documents is the number of non-empty documents decoded.
	Documents int

	// Resources are the generated documents in output order.
	Resources []*core.Resource
}

// Written reports whether a manifest file was produced.
func (r *FileResult) Written() bool {
	return r != nil && r.OutputPath != ""
}

// Summary aggregates a batch run.
type Summary struct {
	// Results holds one entry per input file in input order. Failed files
	// have a nil entry.
	Results []*FileResult

	Files     int
	Generated int
	Failed    int
	Documents int
	Resources int
}

// Processor expands kamut files into manifest files.
type Processor struct {
	Options expand.Options

	// Workers bounds how many files are processed concurrently.
	Workers int
}

// NewProcessor creates a processor.
func NewProcessor(opts expand.Options, workers int) *Processor {
	return &Processor{Options: opts, Workers: workers}
}

// ProcessFile expands every document of path and writes the manifests to
// OutputPath(path). Any document error aborts the file before anything is
// written.
func (p *Processor) ProcessFile(path string) (*FileResult, error) {
	fileLog := output.FileLogger(path)
	result := &FileResult{Path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, oerrors.NewNotFoundError(
			"input file disappeared before it could be read",
			path,
			"Check that nothing removes kamut files while kamut runs.",
		)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	docs, err := SplitDocuments(data)
	if err != nil {
		return nil, documentError(path, len(docs)+1, err)
	}

	records := make([]model.Record, 0, len(docs))
	for i, doc := range docs {
		rec, err := model.Parse(doc)
		if err != nil {
			return nil, documentError(path, i+1, err)
		}
		fileLog.Debug("decoded document", "document", i+1, "kind", rec.Kind(), "name", rec.Metadata().Name)
		records = append(records, rec)
	}
	result.Documents = len(records)

	if len(records) == 0 {
		fileLog.Info("no documents found, nothing written")
		return result, nil
	}

	outPath := OutputPath(path)
	if filepath.Clean(outPath) == filepath.Clean(path) {
		return nil, oerrors.NewValidationError(
			"output file would overwrite the input file",
			path, "",
			"Name kamut files '<name>.kamut.yaml'.",
		)
	}

	result.Resources = expand.ExpandAll(records, p.Options)

	infos := make([]output.ResourceInfo, len(result.Resources))
	for i, res := range result.Resources {
		infos[i] = res
	}
	manifest, err := output.RenderManifests(infos)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}

	// The stream must read back as exactly the documents that were rendered.
	written, err := output.DecodeManifests(manifest)
	if err != nil {
		return nil, fmt.Errorf("verifying rendered manifests for %s: %w", path, err)
	}
	if len(written) != len(result.Resources) {
		return nil, fmt.Errorf("verifying rendered manifests for %s: read back %d documents, rendered %d",
			path, len(written), len(result.Resources))
	}

	if err := os.WriteFile(outPath, manifest, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	result.OutputPath = outPath

	for _, obj := range written {
		fileLog.Debug(output.FormatResourceLine(obj.GetKind(), obj.GetNamespace(), obj.GetName(), output.StatusGenerated))
	}
	fileLog.Info("generated",
		"output", outPath,
		"documents", result.Documents,
		"resources", len(result.Resources),
	)

	return result, nil
}

// Run processes files on a bounded worker pool. A failing file does not
// stop its siblings; the returned error joins every file error in input
// order. Files not yet started when ctx is cancelled are skipped.
func (p *Processor) Run(ctx context.Context, files []string) (*Summary, error) {
	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]*FileResult, len(files))
	errs := make([]error, len(files))

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			res, err := p.ProcessFile(path)
			if err != nil {
				logFileError(path, err)
				errs[i] = err
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	summary := &Summary{Results: results, Files: len(files)}
	for i, res := range results {
		if errs[i] != nil {
			summary.Failed++
			continue
		}
		summary.Documents += res.Documents
		summary.Resources += len(res.Resources)
		if res.Written() {
			summary.Generated++
		}
	}

	return summary, errors.Join(errs...)
}

// documentError attaches the file and document position to a decode error.
func documentError(path string, index int, err error) error {
	location := fmt.Sprintf("%s (document %d)", path, index)
	message := err.Error()
	var field, hint string

	var missing *model.MissingFieldError
	var invalid *model.DeserializationError
	switch {
	case errors.As(err, &missing):
		field = missing.Field
		if missing.Line > 0 {
			location = fmt.Sprintf("%s (document %d, line %d)", path, index, missing.Line)
		}
		hint = "Set kind to Workload, MetricsInstance or ScrapeTarget."
	case errors.As(err, &invalid):
		field = invalid.Path
		message = invalid.Message
		if invalid.Line > 0 {
			location = fmt.Sprintf("%s (document %d, line %d)", path, index, invalid.Line)
		}
	}

	return &oerrors.DetailError{
		Type:     "invalid document",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    err,
	}
}

// logFileError reports a failed file on its file logger.
func logFileError(path string, err error) {
	fileLog := output.FileLogger(path)

	var detail *oerrors.DetailError
	if !errors.As(err, &detail) {
		fileLog.Error("failed", "err", err)
		return
	}

	keyvals := []interface{}{"type", detail.Type}
	if detail.Location != "" {
		keyvals = append(keyvals, "location", detail.Location)
	}
	if detail.Field != "" {
		keyvals = append(keyvals, "field", detail.Field)
	}
	if detail.Hint != "" {
		keyvals = append(keyvals, "hint", detail.Hint)
	}
	fileLog.Error(detail.Message, keyvals...)
}
