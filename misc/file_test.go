package misc

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestWriteThenReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contents.txt")
	contents := []byte("escape time")

	bytesWritten, err := WriteFile(path, contents)
	if err != nil {
		t.Fatalf("unexpected write error: %s", err)
	}
	if bytesWritten != len(contents) {
		t.Errorf("wrote %d bytes, expected %d", bytesWritten, len(contents))
	}

	err, readBack := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected read error: %s", err)
	}
	if !bytes.Equal(readBack, contents) {
		t.Errorf("read back %q, expected %q", readBack, contents)
	}
}

func TestReadFileRequiresName(t *testing.T) {
	if err, _ := ReadFile(""); err == nil {
		t.Error("expected an error for an empty filename")
	}
}

func TestWriteFileRequiresName(t *testing.T) {
	if _, err := WriteFile("", []byte("x")); err == nil {
		t.Error("expected an error for an empty filename")
	}
}

func TestReadFileMissing(t *testing.T) {
	if err, _ := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
