package finanflow

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Slot names a durable list of records.
type Slot string

const (
	TransactionsSlot Slot = "finanflow_transactions"
	ReceiversSlot    Slot = "finanflow_receivers"
)

// Store persists slots. Every save replaces the whole content of the slot.
type Store interface {
	// Load opens the content of slot. It returns an error wrapping
	// fs.ErrNotExist when the slot has never been saved.
	Load(slot Slot) (io.ReadCloser, error)
	// Save replaces the content of slot with what write produces.
	Save(slot Slot, write func(io.Writer) error) error
}

// DirStore keeps each slot in a JSONL file of a directory, in a way that
// stays human-readable and git-friendly.
type DirStore struct {
	dir string
}

// NewDirStore returns a store of slots in dir. The directory is created on
// first save.
func NewDirStore(dir string) *DirStore { return &DirStore{dir: dir} }

// Path returns the file holding slot.
func (s *DirStore) Path(slot Slot) string {
	return filepath.Join(s.dir, string(slot)+".jsonl")
}

func (s *DirStore) Load(slot Slot) (io.ReadCloser, error) {
	f, err := os.Open(s.Path(slot))
	if err != nil {
		return nil, fmt.Errorf("could not open slot %q: %w", slot, err)
	}
	return f, nil
}

// Save writes to a temporary file renamed over the slot file, a failed save
// leaves the previous content in place.
func (s *DirStore) Save(slot Slot, write func(io.Writer) error) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for slot %q: %w", slot, err)
	}
	tmp, err := os.CreateTemp(s.dir, string(slot)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error opening slot %q for writing: %w", slot, err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing slot %q: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing slot %q: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(slot)); err != nil {
		return fmt.Errorf("error replacing slot %q: %w", slot, err)
	}
	return nil
}
