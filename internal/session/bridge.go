// Package session is the durable session bridge: a small SQLite-backed
// key-value store holding exactly two entries, the bearer credential and the
// serialized user profile. The two are always written and cleared as a pair,
// inside one transaction, so the pairing invariant survives crashes and
// restarts. The bridge also serves as the transport's TokenSource.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arkadys/soundclub/internal/dbx"
)

const (
	keyToken   = "token"
	keyProfile = "profile"
)

// Bridge reads and writes the persisted session pair.
type Bridge struct {
	db *sql.DB
}

// NewBridge wraps an already-migrated session database.
func NewBridge(db *sql.DB) *Bridge {
	return &Bridge{db: db}
}

// Save persists the credential and the serialized profile together.
func (b *Bridge) Save(ctx context.Context, token string, profile []byte) error {
	return dbx.WithTx(ctx, b.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		return set(ctx, tx, keyProfile, profile)
	})
}

// Load returns the stored credential and profile bytes. Missing entries come
// back empty, not as errors.
func (b *Bridge) Load(ctx context.Context) (token string, profile []byte, err error) {
	tokenBytes, err := get(ctx, b.db, keyToken)
	if err != nil {
		return "", nil, err
	}
	profile, err = get(ctx, b.db, keyProfile)
	if err != nil {
		return "", nil, err
	}
	return string(tokenBytes), profile, nil
}

// Clear removes both entries in one transaction. Clearing an already-empty
// bridge is a no-op.
func (b *Bridge) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, b.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := del(ctx, tx, keyToken); err != nil {
			return err
		}
		return del(ctx, tx, keyProfile)
	})
}

// Token implements api.TokenSource.
func (b *Bridge) Token(ctx context.Context) (string, error) {
	value, err := get(ctx, b.db, keyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// Invalidate implements api.TokenSource: the transport calls it when the
// server rejects the credential.
func (b *Bridge) Invalidate(ctx context.Context) error {
	return b.Clear(ctx)
}

// Close closes the underlying database.
func (b *Bridge) Close() error {
	return b.db.Close()
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if value == nil {
		// The value column is NOT NULL; an absent value is stored empty.
		value = []byte{}
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func del(ctx context.Context, db dbx.DBTX, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", key, err)
	}
	return nil
}
