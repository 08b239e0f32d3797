package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/katalvlaran/sparsemat/sparse"
)

func setup(t *testing.T, files map[string]string) *Workspace {
	t.Helper()
	root := t.TempDir()
	in := filepath.Join(root, "inputs")
	require.NoError(t, os.MkdirAll(in, 0o755))
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(in, name), []byte(body), 0o644))
	}

	return New(afs.New(), Layout{
		InputDir:   in,
		OutputDir:  filepath.Join(root, "results"),
		FilePrefix: "matrix",
		FileSuffix: ".txt",
	}, nil)
}

const (
	square2a = "rows=2\ncols=2\n(0, 0, 5)\n(1, 1, 3)\n"
	square2b = "rows=2\ncols=2\n(0, 0, -5)\n(0, 1, 2)\n"
	wide23   = "rows=2\ncols=3\n(1, 2, 1)\n"
)

func TestList(t *testing.T) {
	ws := setup(t, map[string]string{
		"matrix2.txt": square2b,
		"matrix1.txt": square2a,
		"notes.txt":   "ignored",
		"matrix3.csv": "ignored",
	})

	names, err := ws.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"matrix1.txt", "matrix2.txt"}, names)
}

func TestList_MissingInput(t *testing.T) {
	ws := New(nil, Layout{InputDir: filepath.Join(t.TempDir(), "nope"), OutputDir: t.TempDir()}, nil)
	_, err := ws.List(context.Background())
	require.ErrorIs(t, err, ErrInputMissing)
}

func TestLoad(t *testing.T) {
	ws := setup(t, map[string]string{"matrix1.txt": square2a, "matrix_bad.txt": "rows=2\ncols=2\n(0,0,bad)\n"})
	ctx := context.Background()

	m, err := ws.Load(ctx, "matrix1.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, m.NNZ())

	_, err = ws.Load(ctx, "matrix_bad.txt")
	require.ErrorIs(t, err, sparse.ErrFormat)
	assert.Contains(t, err.Error(), "matrix_bad.txt")

	_, err = ws.Load(ctx, "matrix_absent.txt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidName)
}

func TestLoad_RejectsNamesOutsideLayout(t *testing.T) {
	ws := setup(t, map[string]string{"matrix1.txt": square2a, "notes.txt": square2a})
	// A readable operand one level above the input directory.
	parent := filepath.Dir(ws.Layout().InputDir)
	require.NoError(t, os.WriteFile(filepath.Join(parent, "matrix1.txt"), []byte(square2a), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(ws.Layout().InputDir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ws.Layout().InputDir, "sub", "matrix1.txt"), []byte(square2a), 0o644))

	for _, name := range []string{
		"../matrix1.txt",
		"notes.txt",
		"sub/matrix1.txt",
		`sub\matrix1.txt`,
		"matrix1.csv",
		"",
		"..",
	} {
		m, err := ws.Load(context.Background(), name)
		require.ErrorIs(t, err, ErrInvalidName, name)
		require.Nil(t, m)
	}

	_, _, err := ws.Run(context.Background(), sparse.OpAdd, "matrix1.txt", "../matrix1.txt")
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestRun_SavesResult(t *testing.T) {
	ws := setup(t, map[string]string{"matrix1.txt": square2a, "matrix2.txt": square2b})

	result, URL, err := ws.Run(context.Background(), sparse.OpAdd, "matrix1.txt", "matrix2.txt")
	require.NoError(t, err)
	assert.Equal(t, "rows=2\ncols=2\n(0, 1, 2)\n(1, 1, 3)\n", sparse.Serialize(result))
	assert.Contains(t, URL, "result_addition.txt")

	written, err := os.ReadFile(filepath.Join(ws.Layout().OutputDir, "result_addition.txt"))
	require.NoError(t, err)
	assert.Equal(t, sparse.Serialize(result), string(written))
}

func TestRun_DimensionMismatch(t *testing.T) {
	ws := setup(t, map[string]string{"matrix1.txt": square2a, "matrix2.txt": wide23})

	_, _, err := ws.Run(context.Background(), sparse.OpSub, "matrix1.txt", "matrix2.txt")
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = os.Stat(filepath.Join(ws.Layout().OutputDir, "result_subtraction.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestCompatible(t *testing.T) {
	ws := setup(t, map[string]string{
		"matrix1.txt": square2a,
		"matrix2.txt": square2b,
		"matrix3.txt": wide23,
		"matrix9.txt": "garbage",
	})
	ctx := context.Background()

	pairs, err := ws.Compatible(ctx, sparse.OpAdd)
	require.NoError(t, err)
	assert.Equal(t, []Pair{{"matrix1.txt", "matrix2.txt"}, {"matrix2.txt", "matrix1.txt"}}, pairs)

	pairs, err = ws.Compatible(ctx, sparse.OpMul)
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{"matrix1.txt", "matrix2.txt"},
		{"matrix1.txt", "matrix3.txt"},
		{"matrix2.txt", "matrix1.txt"},
		{"matrix2.txt", "matrix3.txt"},
	}, pairs)
}

func TestEnsureOutput_Idempotent(t *testing.T) {
	ws := setup(t, nil)
	ctx := context.Background()
	require.NoError(t, ws.EnsureOutput(ctx))
	require.NoError(t, ws.EnsureOutput(ctx))

	info, err := os.Stat(ws.Layout().OutputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResultName(t *testing.T) {
	assert.Equal(t, "result_multiplication.txt", ResultName(sparse.OpMul, ".txt"))
}
