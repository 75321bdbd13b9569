package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/models"
)

// MemoryStore is the in-process store selected with STORE_DRIVER=memory.
// Update runs one transaction at a time against a private copy of the state
// and publishes the copy only when the transaction body succeeds, so an
// aborted transaction leaves nothing behind.
type MemoryStore struct {
	mu    sync.Mutex
	state *memoryState
	now   func() time.Time
}

type memoryState struct {
	accounts      map[string]models.Account
	entries       []models.LedgerEntry
	requests      map[string]models.RideRequest
	trips         map[string]models.Trip
	tripByRequest map[string]string
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: &memoryState{
			accounts:      make(map[string]models.Account),
			requests:      make(map[string]models.RideRequest),
			trips:         make(map[string]models.Trip),
			tripByRequest: make(map[string]string),
		},
		now: time.Now,
	}
}

// clone copies every map, so each Update costs O(state). Fine for tests and
// single-node demos, not for production volumes.
func (s *memoryState) clone() *memoryState {
	c := &memoryState{
		accounts:      make(map[string]models.Account, len(s.accounts)),
		entries:       s.entries[:len(s.entries):len(s.entries)],
		requests:      make(map[string]models.RideRequest, len(s.requests)),
		trips:         make(map[string]models.Trip, len(s.trips)),
		tripByRequest: make(map[string]string, len(s.tripByRequest)),
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	for k, v := range s.trips {
		c.trips[k] = v
	}
	for k, v := range s.tripByRequest {
		c.tripByRequest[k] = v
	}
	return c
}

// Update runs fn as a serialized transaction
func (s *MemoryStore) Update(ctx context.Context, fn func(tx *MemoryTx) error) error {
	if err := ctx.Err(); err != nil {
		return apperror.Wrap(apperror.ServiceUnavailable, apperror.ErrStoreUnavailable.Message, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &MemoryTx{state: s.state.clone(), now: s.now}
	if err := fn(tx); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

// View runs fn against a consistent snapshot. Writes made by fn are discarded.
func (s *MemoryStore) View(ctx context.Context, fn func(tx *MemoryTx) error) error {
	if err := ctx.Err(); err != nil {
		return apperror.Wrap(apperror.ServiceUnavailable, apperror.ErrStoreUnavailable.Message, err)
	}

	s.mu.Lock()
	snapshot := s.state
	s.mu.Unlock()

	// the published state is never mutated in place, so reading it unlocked is safe;
	// the clone only protects it from writes fn might attempt
	return fn(&MemoryTx{state: snapshot.clone(), now: s.now})
}

// MemoryTx is the view of the store inside one transaction
type MemoryTx struct {
	state *memoryState
	now   func() time.Time
}

// LockAccount returns the account; the store-wide lock already serializes access
func (tx *MemoryTx) LockAccount(ctx context.Context, id string) (*models.Account, error) {
	acc, ok := tx.state.accounts[id]
	if !ok {
		return nil, apperror.ErrAccountNotFound
	}
	return &acc, nil
}

// EnsureAccount returns the account, creating it with a zero balance if absent
func (tx *MemoryTx) EnsureAccount(ctx context.Context, id string, role models.AccountRole) (*models.Account, bool, error) {
	if acc, ok := tx.state.accounts[id]; ok {
		return &acc, false, nil
	}
	now := tx.now()
	acc := models.Account{ID: id, Role: role, CreatedAt: now, UpdatedAt: now}
	tx.state.accounts[id] = acc
	return &acc, true, nil
}

// SetBalance overwrites the cached balance of an account
func (tx *MemoryTx) SetBalance(ctx context.Context, id string, balance int64) error {
	acc, ok := tx.state.accounts[id]
	if !ok {
		return apperror.ErrAccountNotFound
	}
	acc.WalletBalance = balance
	acc.UpdatedAt = tx.now()
	tx.state.accounts[id] = acc
	return nil
}

// AppendEntry appends an immutable ledger entry
func (tx *MemoryTx) AppendEntry(ctx context.Context, entry *models.LedgerEntry) error {
	tx.state.entries = append(tx.state.entries, *entry)
	return nil
}

// EntriesByTrip returns the entries correlated with a trip, oldest first
func (tx *MemoryTx) EntriesByTrip(ctx context.Context, tripID string) ([]models.LedgerEntry, error) {
	var out []models.LedgerEntry
	for _, e := range tx.state.entries {
		if e.TripID != nil && *e.TripID == tripID {
			out = append(out, e)
		}
	}
	return out, nil
}

// EntriesByAccount returns entries debiting or crediting the account, newest first
func (tx *MemoryTx) EntriesByAccount(accountID string, limit int) []models.LedgerEntry {
	out := make([]models.LedgerEntry, 0)
	for i := len(tx.state.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := tx.state.entries[i]
		if (e.From != nil && *e.From == accountID) || (e.To != nil && *e.To == accountID) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns every ledger entry in append order
func (tx *MemoryTx) Entries() []models.LedgerEntry {
	out := make([]models.LedgerEntry, len(tx.state.entries))
	copy(out, tx.state.entries)
	return out
}

// GetRequest returns a ride request by id
func (tx *MemoryTx) GetRequest(id string) (*models.RideRequest, error) {
	req, ok := tx.state.requests[id]
	if !ok {
		return nil, apperror.ErrRequestNotFound
	}
	return &req, nil
}

// PutRequest inserts or replaces a ride request
func (tx *MemoryTx) PutRequest(req models.RideRequest) {
	tx.state.requests[req.ID] = req
}

// RequestsByDriver returns the driver's requests in a status, newest first
func (tx *MemoryTx) RequestsByDriver(driverID string, status models.RideRequestStatus) []models.RideRequest {
	out := make([]models.RideRequest, 0)
	for _, req := range tx.state.requests {
		if req.DriverID == driverID && req.Status == status {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// GetTrip returns a trip by id
func (tx *MemoryTx) GetTrip(id string) (*models.Trip, error) {
	trip, ok := tx.state.trips[id]
	if !ok {
		return nil, apperror.ErrTripNotFound
	}
	return &trip, nil
}

// TripByRequest returns the trip created for a ride request, if any
func (tx *MemoryTx) TripByRequest(requestID string) (*models.Trip, bool) {
	id, ok := tx.state.tripByRequest[requestID]
	if !ok {
		return nil, false
	}
	trip := tx.state.trips[id]
	return &trip, true
}

// PutTrip inserts or replaces a trip
func (tx *MemoryTx) PutTrip(trip models.Trip) {
	tx.state.trips[trip.ID] = trip
	if trip.RequestID != nil {
		tx.state.tripByRequest[*trip.RequestID] = trip.ID
	}
}

// Trips returns trips accepted by keep, newest first, at most limit
func (tx *MemoryTx) Trips(keep func(models.Trip) bool, limit int) []models.Trip {
	out := make([]models.Trip, 0)
	for _, trip := range tx.state.trips {
		if keep(trip) {
			out = append(out, trip)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
