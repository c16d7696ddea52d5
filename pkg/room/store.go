package room

import (
	"sync"
	"time"

	"github.com/cryptosanta/cryptosanta/internal/params"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultTTL matches the bulletin board's retention: rooms vanish a
	// month after creation.
	DefaultTTL = 30 * 24 * time.Hour

	maxRetries = 5
	retryDelay = 50 * time.Millisecond
)

// Store keeps rooms in memory with optimistic locking: every mutation
// snapshots a room, validates against it, and commits only if the version
// is unchanged, retrying with exponential backoff on conflict.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	ttl time.Duration
	now func() time.Time
	log zerolog.Logger
}

// NewStore creates a store. ttl <= 0 selects DefaultTTL.
func NewStore(ttl time.Duration, log zerolog.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		rooms: make(map[string]*Room),
		ttl:   ttl,
		now:   time.Now,
		log:   log,
	}
}

// Create stores a new OPEN room and returns its id.
func (s *Store) Create(r *Room) string {
	r = r.clone()
	r.ID = uuid.NewString()
	r.Status = StatusOpen
	r.CreatedAt = s.now()
	r.Version = 0

	s.mu.Lock()
	s.rooms[r.ID] = r
	s.mu.Unlock()

	s.log.Info().Str("room", r.ID).Msg("room created")
	return r.ID
}

// Get returns a snapshot of the room, or ErrRoomNotFound if it is missing
// or past its TTL. Expired rooms are reaped on read.
func (s *Store) Get(id string) (*Room, error) {
	s.mu.RLock()
	r, ok := s.rooms[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrRoomNotFound
	}
	if s.now().Sub(r.CreatedAt) > s.ttl {
		s.mu.Lock()
		delete(s.rooms, id)
		s.mu.Unlock()
		s.log.Info().Str("room", id).Msg("room expired")
		return nil, ErrRoomNotFound
	}
	return r.clone(), nil
}

// Delete removes a room. Returns ErrRoomNotFound if absent.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[id]; !ok {
		return ErrRoomNotFound
	}
	delete(s.rooms, id)
	return nil
}

// commit replaces the stored room only if its version still matches
// expected. The committed copy carries expected+1.
func (s *Store) commit(updated *Room, expected int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.rooms[updated.ID]
	if !ok || current.Version != expected {
		return false
	}
	updated = updated.clone()
	updated.Version = expected + 1
	s.rooms[updated.ID] = updated
	return true
}

// AddParticipant appends an encrypted registration blob.
func (s *Store) AddParticipant(id, encryptedKey string) error {
	for attempt := 0; attempt < maxRetries; attempt++ {
		r, err := s.Get(id)
		if err != nil {
			return err
		}
		if r.Status != StatusOpen {
			return ErrRegistrationClosed
		}
		for _, existing := range r.Participants {
			if existing == encryptedKey {
				return ErrDuplicateRegistration
			}
		}
		expected := r.Version
		r.Participants = append(r.Participants, encryptedKey)
		if s.commit(r, expected) {
			return nil
		}
		time.Sleep(retryDelay << attempt)
	}
	s.log.Warn().Str("room", id).Msg("registration lost optimistic-lock race")
	return ErrConcurrentModification
}

// SetSortedKeys publishes the chair's sorted list and moves the room to
// SORTED. The list is validated against the stored registrations: count
// match, minimum size, no duplicates.
func (s *Store) SetSortedKeys(id string, sortedKeys []string) error {
	r, err := s.Get(id)
	if err != nil {
		return err
	}
	if r.Status != StatusOpen {
		return ErrNotOpen
	}
	if len(sortedKeys) < params.MinParticipants {
		return ErrTooFewKeys
	}
	if len(sortedKeys) != len(r.Participants) {
		return ErrKeyCountMismatch
	}
	unique := make(map[string]bool, len(sortedKeys))
	for _, key := range sortedKeys {
		if unique[key] {
			return ErrDuplicateKeys
		}
		unique[key] = true
	}

	expected := r.Version
	r.SortedKeys = append([]string(nil), sortedKeys...)
	r.Status = StatusSorted
	if !s.commit(r, expected) {
		return ErrConcurrentModification
	}
	s.log.Info().Str("room", id).Int("participants", len(sortedKeys)).Msg("keys sorted")
	return nil
}

// AddMessage appends an encrypted address blob, entering MESSAGING on the
// first one. Messages are capped at the participant count.
func (s *Store) AddMessage(id, blob string) error {
	for attempt := 0; attempt < maxRetries; attempt++ {
		r, err := s.Get(id)
		if err != nil {
			return err
		}
		if r.Status == StatusOpen {
			return ErrMessagingNotStarted
		}
		if len(r.Messages) >= len(r.SortedKeys) {
			return ErrMessageLimit
		}
		expected := r.Version
		if r.Status == StatusSorted {
			r.Status = StatusMessaging
		}
		r.Messages = append(r.Messages, blob)
		if s.commit(r, expected) {
			return nil
		}
		time.Sleep(retryDelay << attempt)
	}
	s.log.Warn().Str("room", id).Msg("message lost optimistic-lock race")
	return ErrConcurrentModification
}
