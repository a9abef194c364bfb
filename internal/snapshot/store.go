// Package snapshot holds the current normalized view of the booking data.
// Each refresh produces an independent snapshot that replaces the previous
// one wholesale; there is no partial update or merge.
package snapshot

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/seafarelabs/portside/internal/observability/metrics"
	"github.com/seafarelabs/portside/internal/preference/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Snapshot is one immutable normalized view. Consumers must not mutate it.
type Snapshot struct {
	Token        snowflake.ID         `json:"-"`
	FetchedAt    time.Time            `json:"fetched_at"`
	Bookings     []domain.Booking     `json:"bookings"`
	Meals        []domain.MealBooking `json:"meals"`
	DroppedCodes int                  `json:"dropped_codes"`
}

type Params struct {
	fx.In

	GenID   *snowflake.Node
	Log     *zap.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// Store keeps the latest snapshot and enforces publish ordering by request
// issuance: a fetch superseded by a newer one is discarded, not applied.
type Store struct {
	mu      sync.RWMutex
	genID   *snowflake.Node
	log     *zap.Logger
	metrics *metrics.Metrics
	current Snapshot
}

// NewStore builds an empty store.
func NewStore(p Params) *Store {
	return &Store{
		genID:   p.GenID,
		log:     p.Log.Named("snapshot.store"),
		metrics: p.Metrics,
	}
}

// NewToken issues a publish token. Tokens are ordered by issuance time, so
// comparing them decides which of two concurrent refreshes is newer.
func (s *Store) NewToken() snowflake.ID {
	return s.genID.Generate()
}

// Publish installs the snapshot unless a newer token has already been
// published. Returns false when the snapshot was stale and discarded.
func (s *Store) Publish(snap Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Token <= s.current.Token {
		s.log.Warn("discarding stale snapshot",
			zap.String("token", snap.Token.String()),
			zap.String("current", s.current.Token.String()),
		)
		s.metrics.RecordStaleSnapshot()
		return false
	}
	s.current = snap
	return true
}

// Current returns the latest published snapshot. The zero snapshot is an
// empty, loading-complete state.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
