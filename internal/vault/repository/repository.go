package repository

import (
	"database/sql"

	apperrors "github.com/allisson/sesame/internal/errors"
	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
)

// rowAffected reports whether the statement touched exactly one row.
func rowAffected(result sql.Result, message string) (bool, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, message)
	}
	return affected == 1, nil
}

// scanRecords drains rows into records using scan for each row.
func scanRecords(
	rows *sql.Rows,
	scan func(rows *sql.Rows, record *vaultDomain.Record) error,
) ([]*vaultDomain.Record, error) {
	records := make([]*vaultDomain.Record, 0)
	for rows.Next() {
		var record vaultDomain.Record
		if err := scan(rows, &record); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan vault record")
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate vault records")
	}

	return records, nil
}
