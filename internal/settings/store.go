package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anmicius0/nexus-cli/internal/utils"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrNoLocalCopy is returned when the settings file for a kind does not exist.
var ErrNoLocalCopy = errors.New("no local settings file; run get first")

// Store keeps one pretty-printed JSON file per kind under root.
type Store struct {
	fs   afero.Fs
	root string
}

// NewStore returns a store rooted at root on fs.
func NewStore(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: root}
}

// Path returns the file location for kind.
func (s *Store) Path(kind Kind) string {
	return filepath.Join(s.root, kind.FileName)
}

// Write replaces the file for kind with blob, indented. The root directory
// is created if missing.
func (s *Store) Write(kind Kind, blob []byte) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, blob, "", "  "); err != nil {
		return fmt.Errorf("format %s settings: %w", kind.Name, err)
	}
	pretty.WriteByte('\n')

	if err := s.fs.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create settings directory '%s': %w", s.root, err)
	}
	path := s.Path(kind)
	if err := afero.WriteFile(s.fs, path, pretty.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write %s settings to '%s': %w", kind.Name, path, err)
	}
	utils.WithComponent("settings").Debug("Wrote settings file",
		zap.String(utils.FieldKind, kind.Name),
		zap.String(utils.FieldFile, path))
	return nil
}

// Read returns the stored blob for kind.
func (s *Store) Read(kind Kind) ([]byte, error) {
	path := s.Path(kind)
	blob, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s settings '%s': %w", kind.Name, path, ErrNoLocalCopy)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s settings '%s': %w", kind.Name, path, err)
	}
	return blob, nil
}
