// Package repository implements vault record persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/allisson/sesame/internal/database"
	apperrors "github.com/allisson/sesame/internal/errors"
	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
)

const postgresRotationCursorName = "vault_rotation"

// PostgreSQLVaultRepository implements vault record persistence for PostgreSQL databases.
type PostgreSQLVaultRepository struct {
	db *sql.DB
}

// Create inserts a new record and returns the id generated by the database.
func (p *PostgreSQLVaultRepository) Create(
	ctx context.Context,
	keyID string,
	salt, ciphertext []byte,
) (uuid.UUID, error) {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO vault (key_id, salt, data, created_at, updated_at, accessed_at)
			  VALUES ($1, $2, $3, $4, $4, $4)
			  RETURNING id`

	var id uuid.UUID
	err := querier.QueryRowContext(ctx, query, keyID, salt, ciphertext, time.Now().UTC()).Scan(&id)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(err, "failed to create vault record")
	}

	return id, nil
}

// Read returns a record and sets its accessed_at in the same statement.
func (p *PostgreSQLVaultRepository) Read(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE vault
			  SET accessed_at = $2
			  WHERE id = $1
			  RETURNING id, key_id, salt, data, created_at, updated_at, accessed_at`

	var record vaultDomain.Record
	err := querier.QueryRowContext(ctx, query, id, time.Now().UTC()).Scan(
		&record.ID,
		&record.KeyID,
		&record.Salt,
		&record.Ciphertext,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.AccessedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, vaultDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to read vault record")
	}

	return &record, nil
}

// Update replaces the key id, salt and ciphertext of a record.
// Returns false when no record has the given id.
func (p *PostgreSQLVaultRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	keyID string,
	salt, ciphertext []byte,
) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE vault
			  SET key_id = $2, salt = $3, data = $4, updated_at = $5
			  WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id, keyID, salt, ciphertext, time.Now().UTC())
	if err != nil {
		return false, apperrors.Wrap(err, "failed to update vault record")
	}

	return rowAffected(result, "failed to update vault record")
}

// UpdateIfUnchanged replaces a record only while it still holds the key id and
// salt of current. Every write draws a fresh salt, so a false result means the
// record was rewritten or deleted after current was read.
func (p *PostgreSQLVaultRepository) UpdateIfUnchanged(
	ctx context.Context,
	current *vaultDomain.Record,
	keyID string,
	salt, ciphertext []byte,
) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE vault
			  SET key_id = $2, salt = $3, data = $4, updated_at = $5
			  WHERE id = $1 AND key_id = $6 AND salt = $7`

	result, err := querier.ExecContext(
		ctx,
		query,
		current.ID,
		keyID,
		salt,
		ciphertext,
		time.Now().UTC(),
		current.KeyID,
		current.Salt,
	)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to update vault record")
	}

	return rowAffected(result, "failed to update vault record")
}

// Delete removes a record. Returns false when no record has the given id.
func (p *PostgreSQLVaultRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM vault WHERE id = $1`, id)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to delete vault record")
	}

	return rowAffected(result, "failed to delete vault record")
}

// OpenRotationCursor declares a server-side cursor over the records whose key_id
// differs from activeKeyID. The cursor lives in a dedicated read-only transaction
// that holds one pooled connection until Close.
func (p *PostgreSQLVaultRepository) OpenRotationCursor(
	ctx context.Context,
	activeKeyID string,
) (vaultDomain.RecordCursor, error) {
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to begin rotation cursor transaction")
	}

	query := fmt.Sprintf(
		`DECLARE %s NO SCROLL CURSOR FOR
		 SELECT id, key_id, salt, data, created_at, updated_at, accessed_at
		 FROM vault
		 WHERE key_id <> %s`,
		postgresRotationCursorName,
		pq.QuoteLiteral(activeKeyID),
	)
	if _, err := tx.ExecContext(ctx, query); err != nil {
		_ = tx.Rollback()
		return nil, apperrors.Wrap(err, "failed to declare rotation cursor")
	}

	return &postgreSQLRecordCursor{tx: tx}, nil
}

// postgreSQLRecordCursor fetches batches from a declared server-side cursor.
type postgreSQLRecordCursor struct {
	tx *sql.Tx
}

// Next fetches up to n records. An empty slice means the cursor is drained.
func (c *postgreSQLRecordCursor) Next(ctx context.Context, n int) ([]*vaultDomain.Record, error) {
	query := fmt.Sprintf("FETCH FORWARD %d FROM %s", n, postgresRotationCursorName)

	rows, err := c.tx.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to fetch from rotation cursor")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanRecords(rows, func(rows *sql.Rows, record *vaultDomain.Record) error {
		return rows.Scan(
			&record.ID,
			&record.KeyID,
			&record.Salt,
			&record.Ciphertext,
			&record.CreatedAt,
			&record.UpdatedAt,
			&record.AccessedAt,
		)
	})
}

// Close ends the cursor transaction and releases its connection.
func (c *postgreSQLRecordCursor) Close() error {
	if err := c.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.Wrap(err, "failed to close rotation cursor")
	}
	return nil
}

// NewPostgreSQLVaultRepository creates a new PostgreSQL vault repository instance.
func NewPostgreSQLVaultRepository(db *sql.DB) *PostgreSQLVaultRepository {
	return &PostgreSQLVaultRepository{db: db}
}
