package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "scores.txt"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	if fs.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0", fs.HighScore())
	}
}

func TestFileStoreUnparsable(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"garbage", "not a number", 0},
		{"empty", "", 0},
		{"negative", "-5", 0},
		{"trailing newline", "120\n", 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scores.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			fs, _ := NewFileStore(path)
			if got := fs.HighScore(); got != tt.want {
				t.Errorf("HighScore() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestFileStoreKeepsMaximum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.txt")
	fs, _ := NewFileStore(path)

	for _, s := range []int{30, 10, 50, 40} {
		if err := fs.Record(s); err != nil {
			t.Fatalf("Record(%d) failed: %v", s, err)
		}
	}
	if fs.HighScore() != 50 {
		t.Errorf("HighScore() = %d, expected 50", fs.HighScore())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "50" {
		t.Errorf("file content = %q, expected %q", data, "50")
	}
}

func TestFileStoreLowerScoreDoesNotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	fs, _ := NewFileStore(path)

	if err := fs.Record(0); err != nil {
		t.Fatalf("Record(0) failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("a score that does not beat 0 should not create the file")
	}
}

func TestFileStoreConcurrentRecords(t *testing.T) {
	fs, _ := NewFileStore(filepath.Join(t.TempDir(), "scores.txt"))

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			fs.Record(score * 10)
		}(i)
	}
	wg.Wait()

	if fs.HighScore() != 200 {
		t.Errorf("HighScore() = %d, expected 200", fs.HighScore())
	}
}
