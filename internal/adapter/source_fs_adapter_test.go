package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/exportall/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_ReadDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.js"), "")
	mustMkdir(t, filepath.Join(root, "a"))
	mustMkdir(t, filepath.Join(root, "c"))
	writeTestFile(t, filepath.Join(root, "c", "nested.js"), "")

	names, err := adapter.ReadDir(m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b.js", "c"}, names, "ReadDir() should list only immediate children")

	t.Run("missing directory", func(t *testing.T) {
		_, err := adapter.ReadDir(m.Path(filepath.Join(root, "missing")))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "index.ts")
	content := "export default class Widget {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "index.js")
	content := []byte("export * from './src/utils';\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, expected, hash)

	_, err = adapter.HashFile(m.Path(filepath.Join(root, "missing.js")))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_FileInfoAndExists(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "package.json")
	writeTestFile(t, path, "{}")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")

	assert.True(t, adapter.Exists(m.Path(path)))
	assert.False(t, adapter.Exists(m.Path(filepath.Join(root, "tsconfig.json"))))
}

func TestLocalSourceFSAdapter_MkdirAllAndWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	dir := filepath.Join(root, "lib", "generated")

	require.NoError(t, adapter.MkdirAll(m.Path(dir)))
	require.NoError(t, adapter.MkdirAll(m.Path(dir)), "MkdirAll() must be idempotent")

	path := filepath.Join(dir, "index.js")
	require.NoError(t, adapter.WriteFile(m.Path(path), []byte("first\nsecond\n"), 0o644))
	require.NoError(t, adapter.WriteFile(m.Path(path), []byte("third\n"), 0o644))

	assert.Equal(t, "third\n", string(readFileBytes(t, path)), "WriteFile() must truncate")
}

func TestLocalSourceFSAdapter_Abs(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	t.Run("joins relative segments onto the first absolute one", func(t *testing.T) {
		got, err := adapter.Abs("/tmp", "project", "./packages/../app")
		require.NoError(t, err)

		assert.Equal(t, filepath.Clean("/tmp/project/app"), string(got))
	})

	t.Run("absolute segment restarts resolution", func(t *testing.T) {
		got, err := adapter.Abs("/tmp/project", "/srv/app", "src")
		require.NoError(t, err)

		assert.Equal(t, filepath.Clean("/srv/app/src"), string(got))
	})

	t.Run("relative segments resolve against the working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)

		got, err := adapter.Abs("", "sub")
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(wd, "sub"), string(got))
	})
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/src/widgets")

	rel, err := adapter.RelPath(base, target)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("src", "widgets"), string(rel))

	up, err := adapter.RelPath(m.Path("/tmp/project/dist"), m.Path("/tmp/project/src"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("..", "src"), string(up))

	joined := adapter.JoinPath("/tmp", "project", "src", "index.ts")
	assert.Equal(t, filepath.Join("/tmp", "project", "src", "index.ts"), string(joined))
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	return data
}
