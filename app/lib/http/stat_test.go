package http

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStatFile(t *testing.T) {
	dir := t.TempDir()
	for name, mode := range map[string]os.FileMode{"r.txt": 0400, "x.sh": 0700, "w.txt": 0200} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("12345"), mode); err != nil {
			t.Fatal(err)
		}
		if err := os.Chmod(filepath.Join(dir, name), mode); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		path     string
		expected FileMetadata
	}{
		{path: "r.txt", expected: FileMetadata{Exists: true, IsRegular: true, OwnerReadable: true, Size: 5}},
		{path: "x.sh", expected: FileMetadata{Exists: true, IsRegular: true, OwnerReadable: true, OwnerExecutable: true, Size: 5}},
		{path: "w.txt", expected: FileMetadata{Exists: true, IsRegular: true, Size: 5}},
		{path: "missing", expected: FileMetadata{}},
		{path: "r.txt/below", expected: FileMetadata{}},
	}

	for _, test := range tests {
		got, err := StatFile(filepath.Join(dir, test.path))

		if err != nil {
			t.Errorf("%s: %v", test.path, err)
			continue
		}
		if got != test.expected {
			t.Errorf("%s: expected %+v but got %+v", test.path, test.expected, got)
		}
	}

	got, err := StatFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Exists || got.IsRegular {
		t.Errorf("expected a non-regular directory but got %+v", got)
	}
}
