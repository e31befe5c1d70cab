package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/anmicius0/nexus-cli/internal/utils"
	"go.uber.org/zap"
)

// ErrInvalidJSON is returned before any I/O when an upload blob is not JSON.
var ErrInvalidJSON = errors.New("settings are not valid JSON")

// Synchronizer moves one kind of settings between the server and the store.
// It holds no state between calls.
type Synchronizer struct {
	kind      Kind
	transport client.Transport
	store     *Store
}

// NewSynchronizer binds kind to a transport and a store.
func NewSynchronizer(kind Kind, transport client.Transport, store *Store) *Synchronizer {
	return &Synchronizer{kind: kind, transport: transport, store: store}
}

// Kind returns the settings kind this synchronizer manages.
func (s *Synchronizer) Kind() Kind {
	return s.kind
}

// Fetch reads the current blob from the server.
func (s *Synchronizer) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := s.transport.Do(ctx, client.Request{Method: http.MethodGet, Path: s.kind.Path})
	if err != nil {
		return nil, s.wrap("fetch", err)
	}
	if err := client.Classify(client.DefaultTable(client.ActionReadCollection), resp.Status, resp.String()); err != nil {
		return nil, s.wrap("fetch", err)
	}
	return resp.Content, nil
}

// Persist writes blob to this kind's local file.
func (s *Synchronizer) Persist(blob []byte) error {
	return s.store.Write(s.kind, blob)
}

// Get fetches the current blob and persists it.
func (s *Synchronizer) Get(ctx context.Context) ([]byte, error) {
	blob, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Persist(blob); err != nil {
		return nil, err
	}
	return blob, nil
}

// Upload replaces the server's settings. A nil blob uploads the local file
// for this kind; a supplied blob must be valid JSON.
func (s *Synchronizer) Upload(ctx context.Context, blob []byte) error {
	if blob == nil {
		stored, err := s.store.Read(s.kind)
		if err != nil {
			return err
		}
		blob = stored
	}
	return s.put(ctx, blob)
}

func (s *Synchronizer) put(ctx context.Context, blob []byte) error {
	if !json.Valid(blob) {
		return fmt.Errorf("upload %s settings: %w", s.kind.Name, ErrInvalidJSON)
	}

	resp, err := s.transport.Do(ctx, client.Request{
		Method: http.MethodPut,
		Path:   s.kind.Path,
		Body:   blob,
	})
	if err != nil {
		return s.wrap("upload", err)
	}
	if err := client.Classify(client.DefaultTable(client.ActionSettingsUpload), resp.Status, resp.String()); err != nil {
		return s.wrap("upload", err)
	}
	utils.WithComponent("settings").Info("Uploaded settings",
		zap.String(utils.FieldKind, s.kind.Name))
	return nil
}

// Reset re-applies the server's current settings: one fetch, then one
// upload of the fetched blob. A failed fetch issues no upload.
func (s *Synchronizer) Reset(ctx context.Context) error {
	blob, err := s.Fetch(ctx)
	if err != nil {
		return err
	}
	return s.put(ctx, blob)
}

func (s *Synchronizer) wrap(op string, err error) error {
	return fmt.Errorf("%s %s settings: %w", op, s.kind.Name, err)
}
