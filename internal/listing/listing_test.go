package listing

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNamesExcludesGitDir(t *testing.T) {
	tmp := t.TempDir()
	for _, d := range []string{".git", "src"} {
		if err := os.Mkdir(filepath.Join(tmp, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{"b.txt", "a.txt", ".gitignore"} {
		if err := os.WriteFile(filepath.Join(tmp, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Names(tmp)
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	want := []string{".gitignore", "a.txt", "b.txt", "src"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestNamesMissingDirectory(t *testing.T) {
	_, err := Names(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected an error for a missing directory, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
