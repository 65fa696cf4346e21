package domain

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/exportall/internal/model"
	"github.com/stretchr/testify/mock"
)

type mockUI struct {
	mock.Mock
}

func newMockUI(t *testing.T) *mockUI {
	t.Helper()

	ui := &mockUI{}
	t.Cleanup(func() { ui.AssertExpectations(t) })

	return ui
}

func (u *mockUI) DisplayDiagnostic(err error) {
	u.Called(err)
}

func (u *mockUI) DisplaySkipped(entry m.ScanEntry) {
	u.Called(entry)
}

func (u *mockUI) DisplayResult(result m.Result) {
	u.Called(result)
}

func (u *mockUI) DisplayPlan(result m.Result) error {
	args := u.Called(result)

	return args.Error(0)
}

func (u *mockUI) StartBatch(total int) {
	u.Called(total)
}

func (u *mockUI) FinishBatch() {
	u.Called()
}

// mockFS fails the test on any call that has no expectation.
type mockFS struct {
	mock.Mock
}

func (f *mockFS) FileInfo(path m.Path) (os.FileInfo, error) {
	args := f.Called(path)
	info, _ := args.Get(0).(os.FileInfo)

	return info, args.Error(1)
}

func (f *mockFS) Exists(path m.Path) bool {
	return f.Called(path).Bool(0)
}

func (f *mockFS) ReadFile(path m.Path) ([]byte, error) {
	args := f.Called(path)
	data, _ := args.Get(0).([]byte)

	return data, args.Error(1)
}

func (f *mockFS) ReadDir(dir m.Path) ([]string, error) {
	args := f.Called(dir)
	names, _ := args.Get(0).([]string)

	return names, args.Error(1)
}

func (f *mockFS) HashFile(path m.Path) (string, error) {
	args := f.Called(path)

	return args.String(0), args.Error(1)
}

func (f *mockFS) MkdirAll(dir m.Path) error {
	return f.Called(dir).Error(0)
}

func (f *mockFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return f.Called(path, content, perm).Error(0)
}

func (f *mockFS) Abs(elem ...string) (m.Path, error) {
	args := f.Called(elem)

	return m.Path(args.String(0)), args.Error(1)
}

func (f *mockFS) RelPath(base, target m.Path) (m.Path, error) {
	args := f.Called(base, target)

	return m.Path(args.String(0)), args.Error(1)
}

func (f *mockFS) JoinPath(elem ...string) m.Path {
	return m.Path(f.Called(elem).String(0))
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	return string(data)
}
