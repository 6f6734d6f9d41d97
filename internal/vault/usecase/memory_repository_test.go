package usecase

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/sesame/internal/crypto/domain"
	cryptoService "github.com/allisson/sesame/internal/crypto/service"
	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
)

// memoryVaultRepository is an in-memory VaultRepository used to exercise the use
// cases against a real cipher.
type memoryVaultRepository struct {
	mu      sync.Mutex
	records map[uuid.UUID]*vaultDomain.Record
	// onUpdateIfUnchanged runs before a conditional update is applied, outside the lock.
	onUpdateIfUnchanged func(id uuid.UUID)
	// clock stamps created_at, updated_at and accessed_at.
	clock func() time.Time
}

func newMemoryVaultRepository() *memoryVaultRepository {
	return &memoryVaultRepository{
		records: make(map[uuid.UUID]*vaultDomain.Record),
		clock:   func() time.Time { return time.Now().UTC() },
	}
}

// steppingClock returns a clock that advances by step on every call.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}

func (m *memoryVaultRepository) Create(_ context.Context, keyID string, salt, ciphertext []byte) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	id := uuid.New()
	m.records[id] = &vaultDomain.Record{
		ID:         id,
		KeyID:      keyID,
		Salt:       slices.Clone(salt),
		Ciphertext: slices.Clone(ciphertext),
		CreatedAt:  now,
		UpdatedAt:  now,
		AccessedAt: now,
	}
	return id, nil
}

func (m *memoryVaultRepository) Read(_ context.Context, id uuid.UUID) (*vaultDomain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return nil, vaultDomain.ErrRecordNotFound
	}
	record.AccessedAt = m.clock()
	return m.copyOf(record), nil
}

func (m *memoryVaultRepository) Update(_ context.Context, id uuid.UUID, keyID string, salt, ciphertext []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return false, nil
	}
	m.replace(record, keyID, salt, ciphertext)
	return true, nil
}

func (m *memoryVaultRepository) UpdateIfUnchanged(
	_ context.Context,
	current *vaultDomain.Record,
	keyID string,
	salt, ciphertext []byte,
) (bool, error) {
	if m.onUpdateIfUnchanged != nil {
		m.onUpdateIfUnchanged(current.ID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[current.ID]
	if !ok || record.KeyID != current.KeyID || !slices.Equal(record.Salt, current.Salt) {
		return false, nil
	}
	m.replace(record, keyID, salt, ciphertext)
	return true, nil
}

func (m *memoryVaultRepository) replace(record *vaultDomain.Record, keyID string, salt, ciphertext []byte) {
	record.KeyID = keyID
	record.Salt = slices.Clone(salt)
	record.Ciphertext = slices.Clone(ciphertext)
	record.UpdatedAt = m.clock()
}

func (m *memoryVaultRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

// OpenRotationCursor snapshots the matching ids, ordered, like keyset pagination.
func (m *memoryVaultRepository) OpenRotationCursor(_ context.Context, activeKeyID string) (vaultDomain.RecordCursor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []uuid.UUID
	for id, record := range m.records {
		if record.KeyID != activeKeyID {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	return &memoryRecordCursor{repo: m, ids: ids}, nil
}

func (m *memoryVaultRepository) get(id uuid.UUID) (*vaultDomain.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return nil, false
	}
	return m.copyOf(record), true
}

func (m *memoryVaultRepository) keyIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []string
	for _, record := range m.records {
		ids = append(ids, record.KeyID)
	}
	return ids
}

func (m *memoryVaultRepository) copyOf(record *vaultDomain.Record) *vaultDomain.Record {
	out := *record
	out.Salt = slices.Clone(record.Salt)
	out.Ciphertext = slices.Clone(record.Ciphertext)
	return &out
}

type memoryRecordCursor struct {
	repo   *memoryVaultRepository
	ids    []uuid.UUID
	closed bool
}

func (c *memoryRecordCursor) Next(_ context.Context, n int) ([]*vaultDomain.Record, error) {
	var out []*vaultDomain.Record
	for len(c.ids) > 0 && len(out) < n {
		id := c.ids[0]
		c.ids = c.ids[1:]
		if record, ok := c.repo.get(id); ok {
			out = append(out, record)
		}
	}
	return out, nil
}

func (c *memoryRecordCursor) Close() error {
	c.closed = true
	return nil
}

func newTestRegistry(t *testing.T, keys ...cryptoDomain.EncryptionKey) *cryptoDomain.KeyRegistry {
	t.Helper()
	registry, err := cryptoDomain.NewKeyRegistry(keys)
	require.NoError(t, err)
	t.Cleanup(registry.Close)
	return registry
}

func newTestCipher(t *testing.T) cryptoService.Cipher {
	t.Helper()
	c, err := cryptoService.NewPBKDF2AESGCM(cryptoService.MinIterations)
	require.NoError(t, err)
	return c
}
