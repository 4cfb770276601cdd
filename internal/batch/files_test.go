package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/kamut-io/kamut/internal/errors"
	"github.com/kamut-io/kamut/internal/model"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "kamut infix", input: "apps/web.kamut.yaml", want: "apps/web.yaml"},
		{name: "kamut infix yml", input: "web.kamut.yml", want: "web.yaml"},
		{name: "dots before infix kept", input: "web.v2.kamut.yaml", want: "web.v2.yaml"},
		{name: "no infix cuts at first dot", input: "dir/web.config.yaml", want: "dir/web.yaml"},
		{name: "no dot appends extension", input: "dir/web", want: "dir/web.yaml"},
		{name: "dotted directory untouched", input: "my.dir/web.kamut.yaml", want: "my.dir/web.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), OutputPath(filepath.FromSlash(tt.input)))
		})
	}
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.kamut.yaml", "a.kamut.yaml", "c.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d.kamut.yaml"), 0o755))

	t.Run("sorted regular files", func(t *testing.T) {
		files, err := FindFiles(filepath.Join(dir, "*.kamut.yaml"))
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.kamut.yaml"),
			filepath.Join(dir, "b.kamut.yaml"),
		}, files)
	})

	t.Run("no match", func(t *testing.T) {
		files, err := FindFiles(filepath.Join(dir, "*.none"))
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := FindFiles("[")
		require.Error(t, err)
		assert.True(t, errors.Is(err, filepath.ErrBadPattern))
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	})
}

func TestSplitDocuments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{name: "empty input", input: "", count: 0},
		{name: "comments only", input: "# nothing here\n", count: 0},
		{name: "single document", input: "kind: Workload\nname: a\n", count: 1},
		{name: "leading separator", input: "---\nkind: Workload\n", count: 1},
		{name: "empty documents dropped", input: "---\n---\n# c\n---\na: 1\n---\nb: 2\n---\n", count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := SplitDocuments([]byte(tt.input))
			require.NoError(t, err)
			assert.Len(t, docs, tt.count)
		})
	}
}

func TestSplitDocuments_LineNumbersAreAbsolute(t *testing.T) {
	docs, err := SplitDocuments([]byte("a: 1\n---\nb: 2\n---\nc: 3\n"))
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, 5, docs[2].Content[0].Line)
}

func TestSplitDocuments_Malformed(t *testing.T) {
	docs, err := SplitDocuments([]byte("a: 1\n---\nb: [unclosed\n"))
	require.Error(t, err)
	assert.Len(t, docs, 1, "documents before the error are returned")
	assert.True(t, errors.Is(err, model.ErrDeserialization))
}
