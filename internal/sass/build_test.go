package sass

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

// fakeCompiler records requests and returns a canned result.
type fakeCompiler struct {
	mu       sync.Mutex
	requests []Request
	result   Result
	err      error
}

func (f *fakeCompiler) Compile(_ context.Context, req Request) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return Result{}, f.err
	}
	return f.result, nil
}

func (f *fakeCompiler) Close() error { return nil }

func writeEntry(t *testing.T, name, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "src", "scss")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestBuild_WritesCSS(t *testing.T) {
	entry := writeEntry(t, "main.scss", "$c: red;\n.a { color: $c; }\n")
	outDir := filepath.Join(t.TempDir(), "dist")
	fc := &fakeCompiler{result: Result{CSS: ".a {\n  color: red;\n}"}}

	out, err := Build(context.Background(), fc, Options{Entry: entry, OutputDir: outDir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "main.css"), out)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, ".a {\n  color: red;\n}", string(data))

	require.Len(t, fc.requests, 1)
	req := fc.requests[0]
	assert.Equal(t, StyleExpanded, req.OutputStyle)
	assert.Equal(t, SyntaxSCSS, req.Syntax)
	assert.Contains(t, req.Source, "$c: red;")
	assert.True(t, strings.HasPrefix(req.URL, "file://"))
	assert.Equal(t, filepath.Dir(entry), req.IncludePaths[0])
}

func TestBuild_SourceMap(t *testing.T) {
	entry := writeEntry(t, "main.scss", ".a{}")
	outDir := t.TempDir()
	fc := &fakeCompiler{result: Result{CSS: ".a{}", SourceMap: `{"version":3}`}}

	out, err := Build(context.Background(), fc, Options{Entry: entry, OutputDir: outDir, SourceMap: true, OutputStyle: StyleCompressed})
	require.NoError(t, err)

	css, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(css), "sourceMappingURL=main.css.map")
	sm, err := os.ReadFile(out + ".map")
	require.NoError(t, err)
	assert.Equal(t, `{"version":3}`, string(sm))
	assert.Equal(t, StyleCompressed, fc.requests[0].OutputStyle)
}

func TestBuild_MissingEntry(t *testing.T) {
	_, err := Build(context.Background(), &fakeCompiler{}, Options{Entry: filepath.Join(t.TempDir(), "nope.scss"), OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryFileSystem, ferrors.GetCategory(err))
}

func TestBuild_CompileErrorWritesNothing(t *testing.T) {
	entry := writeEntry(t, "main.scss", ".a{ color: $missing; }")
	outDir := filepath.Join(t.TempDir(), "dist")
	compileErr := ferrors.SassError("Undefined variable").Build()

	_, err := Build(context.Background(), &fakeCompiler{err: compileErr}, Options{Entry: entry, OutputDir: outDir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, compileErr))
	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSyntaxFor(t *testing.T) {
	assert.Equal(t, SyntaxSCSS, SyntaxFor("a.scss"))
	assert.Equal(t, SyntaxSASS, SyntaxFor("a.SASS"))
	assert.Equal(t, SyntaxCSS, SyntaxFor("a.css"))
	assert.Equal(t, SyntaxSCSS, SyntaxFor("noext"))
}

func TestDartCompiler_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDartCompiler("", nil).Compile(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}
