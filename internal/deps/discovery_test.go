package deps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Discovery:
// - Include patterns select matching files across nested directories
// - Ignore patterns take precedence over include patterns
// - Declaration files and node_modules are skipped with the defaults
// - Results are sorted
// - Invalid patterns are rejected at construction

func writeFiles(t *testing.T, root string, paths []string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("import {x} from 'lib';\n"), 0644))
	}
}

func TestDiscovery_IncludesNestedTypeScript(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, []string{
		"index.ts",
		"sim/dex.ts",
		"sim/tools/lib.ts",
		"readme.md",
	})

	d, err := NewDiscovery(root, []string{"**.ts"}, nil)
	require.NoError(t, err)

	files, err := d.Discover()
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(root, "index.ts"), files[0])
	assert.Equal(t, filepath.Join(root, "sim", "dex.ts"), files[1])
	assert.Equal(t, filepath.Join(root, "sim", "tools", "lib.ts"), files[2])
}

func TestDiscovery_IgnorePatternsWin(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, []string{
		"src/main.ts",
		"src/types.d.ts",
		"node_modules/lib/index.ts",
	})

	d, err := NewDiscovery(root, []string{"**.ts"}, []string{"**node_modules**", "**.d.ts"})
	require.NoError(t, err)

	files, err := d.Discover()
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "src", "main.ts"), files[0])
}

func TestDiscovery_EmptyTree(t *testing.T) {
	t.Parallel()

	d, err := NewDiscovery(t.TempDir(), []string{"**.ts"}, nil)
	require.NoError(t, err)

	files, err := d.Discover()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscovery_InvalidPatternRejected(t *testing.T) {
	t.Parallel()

	_, err := NewDiscovery(t.TempDir(), []string{"[unclosed"}, nil)
	assert.Error(t, err)
}
