package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/sesame/internal/database"
	apperrors "github.com/allisson/sesame/internal/errors"
	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
)

// MySQLVaultRepository implements vault record persistence for MySQL databases.
// Ids are stored as BINARY(16).
type MySQLVaultRepository struct {
	db        *sql.DB
	txManager database.TxManager
}

// Create inserts a new record under a freshly generated UUIDv4.
func (m *MySQLVaultRepository) Create(
	ctx context.Context,
	keyID string,
	salt, ciphertext []byte,
) (uuid.UUID, error) {
	querier := database.GetTx(ctx, m.db)

	id := uuid.New()
	binaryID, err := id.MarshalBinary()
	if err != nil {
		return uuid.Nil, apperrors.Wrap(err, "failed to marshal vault record id")
	}

	query := `INSERT INTO vault (id, key_id, salt, data, created_at, updated_at, accessed_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	_, err = querier.ExecContext(ctx, query, binaryID, keyID, salt, ciphertext, now, now, now)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(err, "failed to create vault record")
	}

	return id, nil
}

// Read returns a record after setting its accessed_at. MySQL has no UPDATE ...
// RETURNING, so the update and the select share one transaction.
func (m *MySQLVaultRepository) Read(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error) {
	binaryID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal vault record id")
	}

	var record *vaultDomain.Record
	err = m.txManager.WithTx(ctx, func(txCtx context.Context) error {
		querier := database.GetTx(txCtx, m.db)

		_, err := querier.ExecContext(
			txCtx,
			`UPDATE vault SET accessed_at = ? WHERE id = ?`,
			time.Now().UTC(),
			binaryID,
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to touch vault record")
		}

		query := `SELECT id, key_id, salt, data, created_at, updated_at, accessed_at
				  FROM vault
				  WHERE id = ?`

		record, err = scanMySQLRecord(querier.QueryRowContext(txCtx, query, binaryID))
		return err
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Update replaces the key id, salt and ciphertext of a record.
// Returns false when no record has the given id.
func (m *MySQLVaultRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	keyID string,
	salt, ciphertext []byte,
) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	binaryID, err := id.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal vault record id")
	}

	query := `UPDATE vault
			  SET key_id = ?, salt = ?, data = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, keyID, salt, ciphertext, time.Now().UTC(), binaryID)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to update vault record")
	}

	return rowAffected(result, "failed to update vault record")
}

// UpdateIfUnchanged replaces a record only while it still holds the key id and
// salt of current. Returns false when the record was rewritten or deleted after
// current was read.
func (m *MySQLVaultRepository) UpdateIfUnchanged(
	ctx context.Context,
	current *vaultDomain.Record,
	keyID string,
	salt, ciphertext []byte,
) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	binaryID, err := current.ID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal vault record id")
	}

	query := `UPDATE vault
			  SET key_id = ?, salt = ?, data = ?, updated_at = ?
			  WHERE id = ? AND key_id = ? AND salt = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		keyID,
		salt,
		ciphertext,
		time.Now().UTC(),
		binaryID,
		current.KeyID,
		current.Salt,
	)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to update vault record")
	}

	return rowAffected(result, "failed to update vault record")
}

// Delete removes a record. Returns false when no record has the given id.
func (m *MySQLVaultRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	binaryID, err := id.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal vault record id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM vault WHERE id = ?`, binaryID)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to delete vault record")
	}

	return rowAffected(result, "failed to delete vault record")
}

// OpenRotationCursor returns a keyset-paginated cursor over the records whose
// key_id differs from activeKeyID. Each batch is one short query ordered by id,
// so no connection is held between batches.
func (m *MySQLVaultRepository) OpenRotationCursor(
	_ context.Context,
	activeKeyID string,
) (vaultDomain.RecordCursor, error) {
	return &mySQLRecordCursor{db: m.db, activeKeyID: activeKeyID}, nil
}

// mySQLRecordCursor pages through records by ascending id.
type mySQLRecordCursor struct {
	db          *sql.DB
	activeKeyID string
	lastID      []byte
	drained     bool
}

// Next fetches up to n records after the last id returned.
func (c *mySQLRecordCursor) Next(ctx context.Context, n int) ([]*vaultDomain.Record, error) {
	if c.drained {
		return []*vaultDomain.Record{}, nil
	}

	var (
		rows *sql.Rows
		err  error
	)
	if c.lastID == nil {
		rows, err = c.db.QueryContext(ctx,
			`SELECT id, key_id, salt, data, created_at, updated_at, accessed_at
			 FROM vault
			 WHERE key_id <> ?
			 ORDER BY id
			 LIMIT ?`,
			c.activeKeyID, n,
		)
	} else {
		rows, err = c.db.QueryContext(ctx,
			`SELECT id, key_id, salt, data, created_at, updated_at, accessed_at
			 FROM vault
			 WHERE key_id <> ? AND id > ?
			 ORDER BY id
			 LIMIT ?`,
			c.activeKeyID, c.lastID, n,
		)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to fetch rotation batch")
	}
	defer func() {
		_ = rows.Close()
	}()

	records, err := scanRecords(rows, func(rows *sql.Rows, record *vaultDomain.Record) error {
		var id []byte
		if err := rows.Scan(
			&id,
			&record.KeyID,
			&record.Salt,
			&record.Ciphertext,
			&record.CreatedAt,
			&record.UpdatedAt,
			&record.AccessedAt,
		); err != nil {
			return err
		}
		c.lastID = id
		return record.ID.UnmarshalBinary(id)
	})
	if err != nil {
		return nil, err
	}

	if len(records) < n {
		c.drained = true
	}
	return records, nil
}

// Close marks the cursor drained. There is no server-side state to release.
func (c *mySQLRecordCursor) Close() error {
	c.drained = true
	return nil
}

func scanMySQLRecord(row *sql.Row) (*vaultDomain.Record, error) {
	var record vaultDomain.Record
	var id []byte

	err := row.Scan(
		&id,
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

	if err := record.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal vault record id")
	}

	return &record, nil
}

// NewMySQLVaultRepository creates a new MySQL vault repository instance.
func NewMySQLVaultRepository(db *sql.DB, txManager database.TxManager) *MySQLVaultRepository {
	return &MySQLVaultRepository{db: db, txManager: txManager}
}
