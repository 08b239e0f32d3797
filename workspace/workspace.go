// Package workspace is the file-side collaborator of package sparse: it
// lists operand files in an input directory, loads them into matrices and
// writes results into an output directory. All storage access goes through
// an afs.Service, so the directories may be local paths or any afs URL
// (mem://, s3://, gs://...).
package workspace

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/katalvlaran/sparsemat/sparse"
)

// resultPrefix names output files "result_<operation>.txt".
const resultPrefix = "result_"

var (
	// ErrInputMissing is returned when the input directory does not exist.
	ErrInputMissing = errors.New("workspace: input directory does not exist")

	// ErrInvalidName is returned by Load for a name that is not a plain file
	// name carrying the layout's prefix and suffix.
	ErrInvalidName = errors.New("workspace: invalid operand name")
)

// Layout describes where operands are found and results are written.
type Layout struct {
	InputDir   string
	OutputDir  string
	FilePrefix string // operand names must start with this
	FileSuffix string // and end with this
}

// Workspace binds a Layout to a storage service.
type Workspace struct {
	fs     afs.Service
	layout Layout
	opts   []sparse.Option
	logger *slog.Logger
}

// New creates a Workspace. A nil fs defaults to afs.New(); a nil logger
// discards output. opts are passed to sparse.Parse on every Load.
func New(fs afs.Service, layout Layout, logger *slog.Logger, opts ...sparse.Option) *Workspace {
	if fs == nil {
		fs = afs.New()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Workspace{fs: fs, layout: layout, opts: opts, logger: logger}
}

// Layout returns the bound layout.
func (w *Workspace) Layout() Layout { return w.layout }

// EnsureOutput creates the output directory when it is missing.
func (w *Workspace) EnsureOutput(ctx context.Context) error {
	ok, err := w.fs.Exists(ctx, w.layout.OutputDir)
	if err != nil {
		return fmt.Errorf("workspace: check %s: %w", w.layout.OutputDir, err)
	}
	if ok {
		return nil
	}
	if err = w.fs.Create(ctx, w.layout.OutputDir, file.DefaultDirOsMode, true); err != nil {
		return fmt.Errorf("workspace: create %s: %w", w.layout.OutputDir, err)
	}
	w.logger.Debug("created output directory", "dir", w.layout.OutputDir)

	return nil
}

// List returns the sorted names of operand files in the input directory.
func (w *Workspace) List(ctx context.Context) ([]string, error) {
	ok, err := w.fs.Exists(ctx, w.layout.InputDir)
	if err != nil {
		return nil, fmt.Errorf("workspace: check %s: %w", w.layout.InputDir, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInputMissing, w.layout.InputDir)
	}
	objects, err := w.fs.List(ctx, w.layout.InputDir)
	if err != nil {
		return nil, fmt.Errorf("workspace: list %s: %w", w.layout.InputDir, err)
	}

	var names []string
	for _, obj := range objects {
		if obj.IsDir() {
			continue
		}
		if name := obj.Name(); w.operand(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	return names, nil
}

// operand reports whether name is a plain file name inside the input
// directory that carries the layout's prefix and suffix.
func (w *Workspace) operand(name string) bool {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return false
	}
	if len(name) < len(w.layout.FilePrefix)+len(w.layout.FileSuffix) {
		return false
	}

	return strings.HasPrefix(name, w.layout.FilePrefix) && strings.HasSuffix(name, w.layout.FileSuffix)
}

// Load reads and parses the operand file called name. Only names List could
// return are accepted; anything else fails with ErrInvalidName before any
// storage access.
func (w *Workspace) Load(ctx context.Context, name string) (*sparse.Matrix, error) {
	if !w.operand(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	URL := url.Join(w.layout.InputDir, name)
	data, err := w.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("workspace: read %s: %w", name, err)
	}
	m, err := sparse.Parse(string(data), w.opts...)
	if err != nil {
		return nil, fmt.Errorf("workspace: %s: %w", name, err)
	}
	w.logger.Debug("loaded matrix", "file", name, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ())

	return m, nil
}

// ResultName is the file name Save uses for op.
func ResultName(op sparse.Operation, suffix string) string {
	return resultPrefix + op.String() + suffix
}

// Save writes m into the output directory as the result of op and returns
// the written URL. The output directory is created on demand.
func (w *Workspace) Save(ctx context.Context, op sparse.Operation, m *sparse.Matrix) (string, error) {
	if err := w.EnsureOutput(ctx); err != nil {
		return "", err
	}
	URL := url.Join(w.layout.OutputDir, ResultName(op, w.layout.FileSuffix))
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("workspace: encode result: %w", err)
	}
	if err := w.fs.Upload(ctx, URL, file.DefaultFileOsMode, &buf); err != nil {
		return "", fmt.Errorf("workspace: write %s: %w", URL, err)
	}
	w.logger.Debug("saved result", "url", URL, "nnz", m.NNZ())

	return URL, nil
}

// Pair is an ordered pair of operand names.
type Pair struct {
	First, Second string
}

// Compatible loads every operand and returns the ordered pairs (i != j) for
// which op passes its shape check. Files that fail to parse are skipped and
// logged; they can never take part in an operation.
func (w *Workspace) Compatible(ctx context.Context, op sparse.Operation) ([]Pair, error) {
	names, err := w.List(ctx)
	if err != nil {
		return nil, err
	}
	loaded := make(map[string]*sparse.Matrix, len(names))
	for _, name := range names {
		m, lerr := w.Load(ctx, name)
		if lerr != nil {
			w.logger.Warn("skipping unreadable matrix", "file", name, "err", lerr)
			continue
		}
		loaded[name] = m
	}

	var pairs []Pair
	for _, a := range names {
		for _, b := range names {
			if a == b || loaded[a] == nil || loaded[b] == nil {
				continue
			}
			if op.Compatible(loaded[a], loaded[b]) {
				pairs = append(pairs, Pair{First: a, Second: b})
			}
		}
	}

	return pairs, nil
}

// Run loads both operands, applies op and saves the result.
func (w *Workspace) Run(ctx context.Context, op sparse.Operation, first, second string) (*sparse.Matrix, string, error) {
	a, err := w.Load(ctx, first)
	if err != nil {
		return nil, "", err
	}
	b, err := w.Load(ctx, second)
	if err != nil {
		return nil, "", err
	}
	result, err := op.Apply(a, b, w.opts...)
	if err != nil {
		return nil, "", fmt.Errorf("workspace: %s of %s and %s: %w", op, first, second, err)
	}
	URL, err := w.Save(ctx, op, result)
	if err != nil {
		return nil, "", err
	}

	return result, URL, nil
}
