package finanflow

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"
)

func TestDirStore(t *testing.T) {
	s := NewDirStore(t.TempDir() + "/data")

	if _, err := s.Load(TransactionsSlot); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() of a missing slot error = %v, want fs.ErrNotExist", err)
	}

	write := func(content string) func(io.Writer) error {
		return func(w io.Writer) error {
			_, err := io.WriteString(w, content)
			return err
		}
	}
	if err := s.Save(TransactionsSlot, write("hello\n")); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := s.Save(TransactionsSlot, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return errors.New("boom")
	}); err == nil {
		t.Error("Save() must report the write error")
	}

	b, err := os.ReadFile(s.Path(TransactionsSlot))
	if err != nil {
		t.Fatalf("reading slot file: %v", err)
	}
	if string(b) != "hello\n" {
		t.Errorf("slot content = %q, a failed save must keep %q", b, "hello\n")
	}

	r, err := s.Load(TransactionsSlot)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer r.Close()
	if b, _ := io.ReadAll(r); string(b) != "hello\n" {
		t.Errorf("Load() = %q, want %q", b, "hello\n")
	}
}
