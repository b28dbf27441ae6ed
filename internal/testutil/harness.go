// Package testutil provides a standardized harness for integration tests:
// it writes HCL fixtures into a temporary directory, runs the full app, and
// captures the generated output and logs.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/blockforge/internal/app"
	"github.com/vk/blockforge/internal/catalog"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output is the generated source text (stdout of the run).
	Output string
	// LogOutput is everything the app logged.
	LogOutput string
	// Err is the run error, including recovered startup panics.
	Err error
	// App is the constructed application, nil if startup panicked.
	App *app.App
}

// RunGeneration writes the given fixture files (keys are paths relative to a
// temp root; catalog manifests go under "catalog/", scripts under "script/"),
// builds the app with the provided block packages, runs generation, and
// returns the captured results.
func RunGeneration(t *testing.T, files map[string]string, modules ...catalog.Module) *HarnessResult {
	t.Helper()
	return RunGenerationWithContext(context.Background(), t, files, modules...)
}

// RunGenerationWithContext is RunGeneration with a caller-supplied context.
func RunGenerationWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...catalog.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	scriptDir := filepath.Join(tmpDir, "script")
	catalogDir := filepath.Join(tmpDir, "catalog")
	require.NoError(t, os.Mkdir(scriptDir, 0755))
	require.NoError(t, os.Mkdir(catalogDir, 0755))

	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig, err := app.NewConfig(app.Config{
		ScriptPath:  scriptDir,
		CatalogPath: catalogDir,
		LogFormat:   "text",
		LogLevel:    "debug",
	})
	require.NoError(t, err)

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}

	result := &HarnessResult{}
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("startup panic: %v", r)
			}
		}()
		result.App = app.NewApp(outBuffer, logBuffer, appConfig, modules...)
		result.Err = result.App.Run(ctx, appConfig)
	}()

	result.Output = outBuffer.String()
	result.LogOutput = logBuffer.String()
	return result
}
