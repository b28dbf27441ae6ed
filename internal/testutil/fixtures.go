package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// BuiltinManifests returns the manifest files of the built-in block packages
// as harness fixture entries (keyed under "catalog/"), so integration tests
// can run against the real shipped catalog.
func BuiltinManifests(t *testing.T) map[string]string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "could not locate test source file")
	modulesDir := filepath.Join(filepath.Dir(thisFile), "..", "..", "modules")

	entries, err := os.ReadDir(modulesDir)
	require.NoError(t, err)

	files := make(map[string]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest := filepath.Join(modulesDir, entry.Name(), "manifest.hcl")
		content, err := os.ReadFile(manifest)
		if os.IsNotExist(err) {
			continue
		}
		require.NoError(t, err)
		files[filepath.Join("catalog", entry.Name()+".hcl")] = string(content)
	}
	require.NotEmpty(t, files, "no built-in manifests found under %s", modulesDir)
	return files
}

// MergeFiles combines fixture maps; later maps win on key collisions.
func MergeFiles(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
