package swaptest

import (
	"context"

	"github.com/iov-one/stableswap/x/escrow"
)

// RecordStore is an in-memory escrow.RecordStore. LoadErr and SaveErr,
// when set, are returned by the respective calls.
type RecordStore struct {
	raw     []byte
	saves   int
	LoadErr error
	SaveErr error
}

var _ escrow.RecordStore = (*RecordStore)(nil)

// NewRecordStore returns a store holding the given raw record.
func NewRecordStore(raw []byte) *RecordStore {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return &RecordStore{raw: cp}
}

// Load implements escrow.RecordStore.
func (s *RecordStore) Load(ctx context.Context) ([]byte, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	cp := make([]byte, len(s.raw))
	copy(cp, s.raw)
	return cp, nil
}

// Save implements escrow.RecordStore.
func (s *RecordStore) Save(ctx context.Context, raw []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	s.raw = cp
	s.saves++
	return nil
}

// Raw returns the currently stored record.
func (s *RecordStore) Raw() []byte {
	return s.raw
}

// Saves returns how many times a record was persisted.
func (s *RecordStore) Saves() int {
	return s.saves
}
