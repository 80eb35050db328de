package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ankush23056/taskwarrior/internal/clock"
)

// ProfileStore is the boundary around the profile record. Persistence
// failures are logged and never returned: reads fall back to a usable
// profile and failed writes leave the previous state in place.
type ProfileStore struct {
	kv  KV
	log *zap.Logger
}

func NewProfileStore(kv KV, log *zap.Logger) *ProfileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileStore{kv: kv, log: log.Named("profile")}
}

// GetOrCreate returns the stored profile. On first run it persists
// DefaultProfile(today) and reports created=true. A failed read yields the
// fallback profile and writes nothing.
func (s *ProfileStore) GetOrCreate(ctx context.Context, today clock.Date) (p Profile, created bool) {
	p, created, _ = s.read(ctx, today)
	return p, created
}

// read is GetOrCreate plus readOK, which is false only when the store could
// not be reached. A malformed record still counts as read.
func (s *ProfileStore) read(ctx context.Context, today clock.Date) (p Profile, created, readOK bool) {
	raw, ok, err := s.kv.Get(ctx, ProfileKey)
	if err != nil {
		s.log.Error("read profile", zap.Error(err))
		return FallbackProfile(), false, false
	}
	if !ok {
		p = DefaultProfile(today)
		if err := s.put(ctx, p); err != nil {
			s.log.Error("create profile", zap.Error(err))
		}
		return p, true, true
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.log.Warn("malformed profile, using fallback", zap.Error(err))
		return FallbackProfile(), false, true
	}
	return p, false, true
}

// Update applies fn to the current profile and persists the result. When the
// profile cannot be read or the write fails, nothing is written and the
// unmodified profile is returned with ok=false.
func (s *ProfileStore) Update(ctx context.Context, today clock.Date, fn func(p *Profile)) (Profile, bool) {
	before, _, readOK := s.read(ctx, today)
	if !readOK {
		s.log.Warn("profile update skipped: read failed")
		return before, false
	}
	after := before
	fn(&after)
	if err := s.put(ctx, after); err != nil {
		s.log.Error("update profile", zap.Error(err))
		return before, false
	}
	return after, true
}

func (s *ProfileStore) put(ctx context.Context, p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.kv.Set(ctx, ProfileKey, string(data))
}
