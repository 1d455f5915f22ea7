package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveWritesFileAndReturnsReference(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref, err := store.Save(strings.NewReader("png-bytes"), "Avatar.PNG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(ref, PublicPrefix+"/") {
		t.Fatalf("expected reference under %s, got %q", PublicPrefix, ref)
	}
	if !strings.HasSuffix(ref, ".png") {
		t.Fatalf("expected lowercased extension, got %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(store.Dir, filepath.Base(ref)))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected file contents: %q", data)
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := store.Save(strings.NewReader("a"), "photo.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Save(strings.NewReader("b"), "photo.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatalf("expected unique references, both were %q", first)
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := New(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory to exist: %v", err)
	}
}
