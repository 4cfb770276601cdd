// Package batch finds kamut files, expands every document they hold and
// writes the resulting manifests next to them.
package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/kamut-io/kamut/internal/errors"
	"github.com/kamut-io/kamut/internal/model"
)

// kamutInfix marks the kamut part of an input file name.
const kamutInfix = ".kamut."

// FindFiles returns the regular files matching pattern in lexical order.
func FindFiles(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:    "invalid pattern",
			Message: fmt.Sprintf("%q: %v", pattern, err),
			Field:   "pattern",
			Hint:    "Use shell glob syntax, for example 'apps/*.kamut.yaml'.",
			Cause:   fmt.Errorf("%w: %w", oerrors.ErrValidation, err),
		}
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, fmt.Errorf("inspecting %s: %w", m, err)
		}
		if info.Mode().IsRegular() {
			files = append(files, m)
		}
	}
	slices.Sort(files)
	return files, nil
}

// SplitDocuments decodes every YAML document of a stream. Documents holding
// only whitespace or comments are dropped. Node line numbers are relative to
// the start of data.
func SplitDocuments(data []byte) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []*yaml.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return docs, &model.DeserializationError{
				Message: strings.TrimPrefix(err.Error(), "yaml: "),
				Err:     err,
			}
		}
		if model.IsEmpty(&doc) {
			continue
		}
		docs = append(docs, &doc)
	}
}

// OutputPath derives the manifest path for an input file: the file name is
// cut at its ".kamut." infix, or else at its first dot, and ".yaml" is
// appended. The directory is kept.
func OutputPath(input string) string {
	dir, name := filepath.Split(input)

	base := name
	if i := strings.Index(name, kamutInfix); i >= 0 {
		base = name[:i]
	} else if i := strings.Index(name, "."); i >= 0 {
		base = name[:i]
	}

	return dir + base + ".yaml"
}
