package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/santara-lab/santara/pkg/domain/interfaces"
	"github.com/santara-lab/santara/pkg/domain/model/ticket"
	"github.com/santara-lab/santara/pkg/utils/clock"
	"github.com/santara-lab/santara/pkg/utils/logging"
)

const schemaVersion = 1

const (
	ticketsFile = "tickets.json"
	metaFile    = "meta.json"
	backupDir   = "backups"
)

// Client persists tickets as a single JSON document under a data
// directory. Every SaveAll replaces the whole document through a
// temp-file rename, so a crash mid-write never leaves a torn file.
type Client struct {
	mu  sync.Mutex
	dir string
}

var _ interfaces.TicketStore = &Client{}

func New(dir string) (*Client, error) {
	if dir == "" {
		return nil, goerr.New("data directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create data directory", goerr.V("dir", dir))
	}
	return &Client{dir: dir}, nil
}

type ticketDocument struct {
	SchemaVersion int             `json:"schema_version"`
	Tickets       []ticket.Ticket `json:"tickets"`
}

func (r *Client) LoadAll(ctx context.Context) ([]ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadLocked()
}

func (r *Client) loadLocked() ([]ticket.Ticket, error) {
	path := filepath.Join(r.dir, ticketsFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []ticket.Ticket{}, nil
		}
		return nil, goerr.Wrap(err, "failed to read ticket file", goerr.V("path", path))
	}

	var doc ticketDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse ticket file", goerr.V("path", path))
	}
	if doc.Tickets == nil {
		doc.Tickets = []ticket.Ticket{}
	}
	return doc.Tickets, nil
}

func (r *Client) SaveAll(ctx context.Context, tickets []ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := ticketDocument{
		SchemaVersion: schemaVersion,
		Tickets:       tickets,
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode tickets")
	}

	return r.writeAtomic(filepath.Join(r.dir, ticketsFile), raw)
}

// writeAtomic writes to a sibling temp file and renames it over the
// target. Rename on the same filesystem is atomic.
func (r *Client) writeAtomic(path string, raw []byte) error {
	tmp, err := os.CreateTemp(r.dir, ".tmp-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("dir", r.dir))
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to write temp file", goerr.V("path", tmpPath))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmpPath))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to replace file", goerr.V("path", path))
	}
	return nil
}

type metaDocument struct {
	interfaces.StoreStats
}

func (r *Client) loadMetaLocked() (metaDocument, error) {
	path := filepath.Join(r.dir, metaFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return metaDocument{StoreStats: interfaces.StoreStats{SchemaVersion: schemaVersion}}, nil
		}
		return metaDocument{}, goerr.Wrap(err, "failed to read meta file", goerr.V("path", path))
	}

	var meta metaDocument
	if err := json.Unmarshal(raw, &meta); err != nil {
		return metaDocument{}, goerr.Wrap(err, "failed to parse meta file", goerr.V("path", path))
	}
	return meta, nil
}

func (r *Client) saveMetaLocked(meta metaDocument) error {
	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode meta")
	}
	return r.writeAtomic(filepath.Join(r.dir, metaFile), raw)
}

// RecordCreated bumps the lifetime creation counter. The counter is kept
// separate from the ticket set so retention cleanup does not roll it
// back.
func (r *Client) RecordCreated(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meta, err := r.loadMetaLocked()
	if err != nil {
		return 0, err
	}
	meta.TotalCreated++
	meta.SchemaVersion = schemaVersion
	if err := r.saveMetaLocked(meta); err != nil {
		return 0, err
	}
	return meta.TotalCreated, nil
}

// Backup snapshots the current ticket document into the backups
// directory and returns the snapshot path.
func (r *Client) Backup(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tickets, err := r.loadLocked()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(r.dir, backupDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create backup directory", goerr.V("dir", dir))
	}

	now := clock.Now(ctx)
	name := "tickets-backup-" + now.UTC().Format("20060102-150405") + ".json"
	path := filepath.Join(dir, name)

	raw, err := json.MarshalIndent(ticketDocument{
		SchemaVersion: schemaVersion,
		Tickets:       tickets,
	}, "", "  ")
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode backup")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", goerr.Wrap(err, "failed to write backup", goerr.V("path", path))
	}

	meta, err := r.loadMetaLocked()
	if err != nil {
		return "", err
	}
	meta.LastBackup = now
	if err := r.saveMetaLocked(meta); err != nil {
		return "", err
	}

	logging.From(ctx).Info("ticket store backup written",
		"path", path,
		"tickets", len(tickets))
	return path, nil
}

func (r *Client) Stats(ctx context.Context) (interfaces.StoreStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meta, err := r.loadMetaLocked()
	if err != nil {
		return interfaces.StoreStats{}, err
	}
	return meta.StoreStats, nil
}
