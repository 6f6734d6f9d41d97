package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/sesame/internal/errors"
)

func TestRecord_ZeroPlaintext(t *testing.T) {
	t.Run("clears plaintext", func(t *testing.T) {
		plaintext := []byte("test")
		record := &Record{KeyID: "t1", Plaintext: plaintext}

		record.ZeroPlaintext()

		assert.Nil(t, record.Plaintext)
		assert.Equal(t, []byte{0, 0, 0, 0}, plaintext)
	})

	t.Run("nil record", func(t *testing.T) {
		var record *Record
		assert.NotPanics(t, record.ZeroPlaintext)
	})
}

func TestErrRecordNotFound(t *testing.T) {
	assert.True(t, apperrors.Is(ErrRecordNotFound, apperrors.ErrNotFound))
	assert.Contains(t, ErrRecordNotFound.Error(), "vault record not found")
}
