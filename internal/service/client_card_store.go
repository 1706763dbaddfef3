package service

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-flashcards/internal/adapter"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/models"
)

const (
	opLoad   = "load"
	opAdd    = "add"
	opUpdate = "update"
	opDelete = "delete"
)

// maxLoadAttempts bounds how often Load re-lists after a concurrent mutation
// made its listing stale.
const maxLoadAttempts = 3

// Add keys of the callers that create cards.
const (
	addKeyForm   = "form"
	addKeyImport = "import"
)

type addKeyCtx struct{}

// WithAddKey tags ctx so that Add calls carrying the same key are rejected
// with ErrOperationInFlight while one of them is pending. Adds with different
// keys, or with no key, run independently.
func WithAddKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, addKeyCtx{}, key)
}

func addKeyFrom(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(addKeyCtx{}).(string)
	return key, ok && key != ""
}

type clientCardStore struct {
	gateway adapter.CardGateway

	mu      sync.RWMutex
	cards   []models.FlashCard
	loading bool
	// generation counts applied mutations; Load uses it to detect stale listings
	generation uint64
	inFlight   map[string]struct{}
	onChange   []func()

	logger *logger.Logger
}

// NewClientCardStore creates an empty card store over gateway. Call Load to
// populate it.
func NewClientCardStore(gateway adapter.CardGateway, logger *logger.Logger) ClientCardStore {
	return &clientCardStore{
		gateway:  gateway,
		cards:    make([]models.FlashCard, 0),
		inFlight: make(map[string]struct{}),
		logger:   logger,
	}
}

func (s *clientCardStore) Load(ctx context.Context) error {
	release, err := s.acquire(idKey(opLoad, 0))
	if err != nil {
		return err
	}
	defer release()

	s.setLoading(true)
	applied, err := s.loadFresh(ctx)
	s.setLoading(false)
	if err != nil {
		s.logger.Err(err).Str("func", "clientCardStore.Load").Msg("error loading cards")
		return mapGatewayError(ErrLoadFailed, err)
	}

	if applied {
		s.notify()
	}
	return nil
}

// loadFresh replaces the local copy with a listing taken while no mutation was
// applied. A listing that raced with Add, Update or Remove is discarded and
// fetched again. When every attempt is stale the local copy is kept, since it
// already reflects the latest mutation.
func (s *clientCardStore) loadFresh(ctx context.Context) (bool, error) {
	for range maxLoadAttempts {
		s.mu.RLock()
		gen := s.generation
		s.mu.RUnlock()

		cards, err := s.gateway.ListCards(ctx)
		if err != nil {
			return false, err
		}

		s.mu.Lock()
		if s.generation == gen {
			if cards == nil {
				cards = make([]models.FlashCard, 0)
			}
			s.cards = cards
			s.mu.Unlock()
			return true, nil
		}
		s.mu.Unlock()
	}

	s.logger.Warn().Str("func", "clientCardStore.loadFresh").
		Int("attempts", maxLoadAttempts).
		Msg("cards kept after repeated concurrent changes")
	return false, nil
}

func (s *clientCardStore) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

func (s *clientCardStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *clientCardStore) Add(ctx context.Context, fields models.CardFields) (models.FlashCard, error) {
	release := func() {}
	if key, ok := addKeyFrom(ctx); ok {
		var err error
		if release, err = s.acquire(opAdd + ":" + key); err != nil {
			return models.FlashCard{}, err
		}
	}
	defer release()

	card, err := s.gateway.CreateCard(ctx, fields)
	if err != nil {
		s.logger.Err(err).Str("func", "clientCardStore.Add").Msg("error creating card")
		return models.FlashCard{}, mapGatewayError(ErrCreateFailed, err)
	}

	s.mu.Lock()
	// a Load that listed after the create may already hold the card
	if i := s.indexOfLocked(card.ID); i >= 0 {
		s.cards[i] = card
	} else {
		s.cards = append(s.cards, card)
	}
	s.generation++
	s.mu.Unlock()

	s.notify()
	return card, nil
}

func (s *clientCardStore) Update(ctx context.Context, card models.FlashCard) (models.FlashCard, error) {
	release, err := s.acquire(idKey(opUpdate, card.ID))
	if err != nil {
		return models.FlashCard{}, err
	}
	defer release()

	updated, err := s.gateway.UpdateCard(ctx, card.ID, card.Fields())
	if err != nil {
		s.logger.Err(err).Str("func", "clientCardStore.Update").Int64("card_id", card.ID).Msg("error updating card")
		return models.FlashCard{}, mapGatewayError(ErrUpdateFailed, err)
	}

	s.mu.Lock()
	if i := s.indexOfLocked(updated.ID); i >= 0 {
		s.cards[i] = updated
	} else {
		// the remote copy exists, so the local one must too
		s.cards = append(s.cards, updated)
	}
	s.generation++
	s.mu.Unlock()

	s.notify()
	return updated, nil
}

func (s *clientCardStore) Remove(ctx context.Context, id int64) error {
	release, err := s.acquire(idKey(opDelete, id))
	if err != nil {
		return err
	}
	defer release()

	if err = s.gateway.DeleteCard(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "clientCardStore.Remove").Int64("card_id", id).Msg("error deleting card")
		return mapGatewayError(ErrDeleteFailed, err)
	}

	s.mu.Lock()
	s.cards = slices.DeleteFunc(s.cards, func(c models.FlashCard) bool { return c.ID == id })
	s.generation++
	s.mu.Unlock()

	s.notify()
	return nil
}

func (s *clientCardStore) Cards() []models.FlashCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cards)
}

func (s *clientCardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}

func (s *clientCardStore) Get(index int) (models.FlashCard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.cards) {
		return models.FlashCard{}, false
	}
	return s.cards[index], true
}

func (s *clientCardStore) IndexOf(id int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfLocked(id)
}

func (s *clientCardStore) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

func (s *clientCardStore) indexOfLocked(id int64) int {
	return slices.IndexFunc(s.cards, func(c models.FlashCard) bool { return c.ID == id })
}

func idKey(op string, id int64) string {
	return op + ":" + strconv.FormatInt(id, 10)
}

// acquire marks the operation key as in flight. The returned func releases it.
func (s *clientCardStore) acquire(key string) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return nil, ErrOperationInFlight
	}
	s.inFlight[key] = struct{}{}

	return func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}, nil
}

func (s *clientCardStore) notify() {
	s.mu.RLock()
	callbacks := slices.Clone(s.onChange)
	s.mu.RUnlock()

	for _, fn := range callbacks {
		fn()
	}
}
