package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is the persisted form of an authenticated session. The keys match
// the ones the web client keeps in browser storage.
type Record struct {
	Token    string `yaml:"token"`
	Username string `yaml:"username"`
	UserType string `yaml:"user_type"`
}

// Persister stores the session record between runs.
type Persister interface {
	// Load returns nil without error when nothing is stored.
	Load() (*Record, error)
	Save(Record) error
	Erase() error
}

// FilePersister keeps the record in a YAML file readable only by the owner.
type FilePersister struct {
	Path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{Path: path}
}

// DefaultPath returns ~/.hiring-portal/session.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".hiring-portal", "session.yaml"), nil
}

func (p *FilePersister) Load() (*Record, error) {
	data, err := os.ReadFile(p.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session file %q: %w", p.Path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parsing session file %q: %w", p.Path, err)
	}

	return &record, nil
}

func (p *FilePersister) Save(record Record) error {
	if err := os.MkdirAll(filepath.Dir(p.Path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	tmp := p.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}

	return os.Rename(tmp, p.Path)
}

func (p *FilePersister) Erase() error {
	err := os.Remove(p.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file %q: %w", p.Path, err)
	}
	return nil
}

// MemoryPersister keeps the record in memory. Used by tests and by runs that
// must not touch the disk.
type MemoryPersister struct {
	Record *Record
}

func (p *MemoryPersister) Load() (*Record, error) {
	if p.Record == nil {
		return nil, nil
	}
	record := *p.Record
	return &record, nil
}

func (p *MemoryPersister) Save(record Record) error {
	p.Record = &record
	return nil
}

func (p *MemoryPersister) Erase() error {
	p.Record = nil
	return nil
}
