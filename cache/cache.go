// Package cache keeps compiled stylesheets between runs in a SQLite
// database, keyed by a hash of the source content.
package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	key      INTEGER PRIMARY KEY,
	source   TEXT NOT NULL,
	created  INTEGER NOT NULL,
	size     INTEGER NOT NULL,
	payload  BLOB NOT NULL
);`

// Cache is safe for use by multiple goroutines.
type Cache struct {
	log  *zap.Logger
	mu   sync.Mutex
	conn *sqlite.Conn
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

// Key identifies one compilation: the same content compiled in the same
// scope by the same program version produces the same key.
func Key(content []byte, scope uint64, version string) uint64 {
	d := xxhash.New()
	_, _ = d.Write(content)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], scope)
	_, _ = d.Write(b[:])
	_, _ = d.WriteString(version)
	return d.Sum64()
}

// Open opens (creating when necessary) the cache database at path. level is
// a zstd compression level, 1 (fastest) to 22.
func Open(path string, level int, log *zap.Logger) (*Cache, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create cache directory: %w", err)
	}
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate, sqlite.OpenWAL)
	if err != nil {
		return nil, fmt.Errorf("unable to open cache %s: %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return nil, multierr.Append(fmt.Errorf("unable to initialize cache schema: %w", err), conn.Close())
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("unable to create compressor: %w", err), conn.Close())
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("unable to create decompressor: %w", err), multierr.Append(enc.Close(), conn.Close()))
	}

	log = log.Named("cache")
	log.Debug("Cache opened", zap.String("path", path), zap.Int("level", level))
	return &Cache{log: log, conn: conn, enc: enc, dec: dec}, nil
}

// Get returns the payload stored under key. ok is false on a miss.
func (c *Cache) Get(key uint64) (payload []byte, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		compressed []byte
		size       int64
		source     string
	)
	err = sqlitex.Execute(c.conn, `SELECT source, size, payload FROM entries WHERE key = ?`, &sqlitex.ExecOptions{
		Args: []any{int64(key)},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			source = stmt.ColumnText(0)
			size = stmt.ColumnInt64(1)
			compressed = make([]byte, stmt.ColumnLen(2))
			stmt.ColumnBytes(2, compressed)
			ok = true
			return nil
		},
	})
	if err != nil {
		return nil, false, fmt.Errorf("unable to query cache: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	payload, err = c.dec.DecodeAll(compressed, make([]byte, 0, size))
	if err != nil {
		return nil, false, fmt.Errorf("corrupted cache entry for %s: %w", source, err)
	}
	if int64(len(payload)) != size {
		return nil, false, fmt.Errorf("corrupted cache entry for %s: %d bytes, expected %d", source, len(payload), size)
	}
	c.log.Debug("Cache hit", zap.String("source", source), zap.Int("bytes", len(payload)))
	return payload, true, nil
}

// Put stores payload under key, replacing an existing entry. source is kept
// for diagnostics only.
func (c *Cache) Put(key uint64, source string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	compressed := c.enc.EncodeAll(payload, nil)
	err := sqlitex.Execute(c.conn,
		`INSERT OR REPLACE INTO entries (key, source, created, size, payload) VALUES (?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{int64(key), source, time.Now().Unix(), int64(len(payload)), compressed}})
	if err != nil {
		return fmt.Errorf("unable to store cache entry for %s: %w", source, err)
	}
	c.log.Debug("Cache store", zap.String("source", source), zap.Int("bytes", len(payload)), zap.Int("compressed", len(compressed)))
	return nil
}

// Len counts stored entries.
func (c *Cache) Len() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	err := sqlitex.Execute(c.conn, `SELECT count(*) FROM entries`, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			n = stmt.ColumnInt(0)
			return nil
		},
	})
	return n, err
}

// Entry describes a stored payload without reading it.
type Entry struct {
	Key        uint64
	Source     string
	Created    time.Time
	Size       int
	Compressed int
}

// List returns all entries, newest first.
func (c *Cache) List() ([]Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var entries []Entry
	err := sqlitex.Execute(c.conn, `SELECT key, source, created, size, length(payload) FROM entries ORDER BY created DESC, key`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				entries = append(entries, Entry{
					Key:        uint64(stmt.ColumnInt64(0)),
					Source:     stmt.ColumnText(1),
					Created:    time.Unix(stmt.ColumnInt64(2), 0),
					Size:       stmt.ColumnInt(3),
					Compressed: stmt.ColumnInt(4),
				})
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("unable to list cache: %w", err)
	}
	return entries, nil
}

// Prune removes entries stored before the given time and reports how many
// were removed.
func (c *Cache) Prune(before time.Time) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := sqlitex.Execute(c.conn, `DELETE FROM entries WHERE created < ?`, &sqlitex.ExecOptions{Args: []any{before.Unix()}})
	if err != nil {
		return 0, fmt.Errorf("unable to prune cache: %w", err)
	}
	n := c.conn.Changes()
	c.log.Debug("Cache pruned", zap.Time("before", before), zap.Int("removed", n))
	return n, nil
}

var errClosed = errors.New("cache already closed")

func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return errClosed
	}
	var err error
	err = multierr.Append(err, c.enc.Close())
	c.dec.Close()
	err = multierr.Append(err, c.conn.Close())
	c.conn = nil
	return err
}
