package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/profile-builder/internal/normalize"
	"github.com/jonathan/profile-builder/internal/types"
)

// Store is the single source of truth for the canonical profile. Every write
// replaces one section wholesale, persists the entire profile synchronously,
// publishes it on the cross-context bus, and notifies local subscribers.
// Persistence failures are logged and swallowed: the in-memory profile stays
// authoritative for the rest of the session.
type Store struct {
	id      string
	storage Storage
	bus     Bus

	mu      sync.RWMutex
	profile types.Profile

	subMu   sync.Mutex
	nextSub int
	subs    map[int]func(types.Profile)

	unsubscribe func()
}

// New builds a store over the given record layer and bus. The persisted
// profile, if any, is read and re-normalized on construction so records
// written by older sessions in a pre-canonical shape come back canonical.
func New(ctx context.Context, storage Storage, bus Bus) *Store {
	s := &Store{
		id:      uuid.NewString(),
		storage: storage,
		bus:     bus,
		profile: types.EmptyProfile(),
		subs:    make(map[int]func(types.Profile)),
	}

	data, err := storage.Get(ctx, ProfileKey)
	switch {
	case err == nil:
		doc, perr := normalize.ParseDocument(data)
		if perr != nil {
			log.Printf("[store] ignoring unreadable persisted profile: %v", perr)
		} else {
			s.profile = normalize.Normalize(doc)
		}
	case errors.Is(err, ErrNotFound):
		// First session: start empty.
	default:
		log.Printf("[store] failed to read persisted profile: %v", err)
	}

	if bus != nil {
		s.unsubscribe = bus.Subscribe(func(origin string, payload []byte) {
			if origin == s.id {
				return
			}
			s.applyRemote(payload)
		})
	}
	return s
}

// Profile returns a copy of the current canonical profile.
func (s *Store) Profile() types.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// UpdateSection replaces one section wholesale. The value must carry the
// section's canonical type; the skills step writes its three string lists
// under their own keys.
func (s *Store) UpdateSection(ctx context.Context, section string, value any) error {
	s.mu.Lock()
	if err := s.applySection(section, value); err != nil {
		s.mu.Unlock()
		return err
	}
	p := s.profile.Clone()
	s.mu.Unlock()

	s.persist(ctx, p)
	s.notify(p)
	return nil
}

func (s *Store) applySection(section string, value any) error {
	wrongType := func() error {
		return &SectionError{Section: section, Message: "value has the wrong type"}
	}
	switch section {
	case types.SectionBasicInfo:
		v, ok := value.(types.BasicInfo)
		if !ok {
			return wrongType()
		}
		s.profile.BasicInfo = v
		// Keep the root-level duplicates in step.
		s.profile.Name = v.Name
		s.profile.Email = v.Email
		s.profile.Phone = v.Phone
		s.profile.LinkedIn = v.LinkedIn
	case types.SectionEducation:
		v, ok := value.([]types.Education)
		if !ok {
			return wrongType()
		}
		s.profile.Education = v
	case types.SectionWorkExperience:
		v, ok := value.([]types.WorkExperience)
		if !ok {
			return wrongType()
		}
		s.profile.WorkExperience = v
	case types.SectionSkills:
		v, ok := value.([]string)
		if !ok {
			return wrongType()
		}
		s.profile.Skills = v
	case "primarySkills":
		v, ok := value.([]string)
		if !ok {
			return wrongType()
		}
		s.profile.PrimarySkills = v
	case "basicSkills":
		v, ok := value.([]string)
		if !ok {
			return wrongType()
		}
		s.profile.BasicSkills = v
	case types.SectionProjects:
		v, ok := value.([]types.Project)
		if !ok {
			return wrongType()
		}
		s.profile.Projects = v
	case types.SectionAchievements:
		v, ok := value.([]types.Achievement)
		if !ok {
			return wrongType()
		}
		s.profile.Achievements = v
	case types.SectionCertification:
		v, ok := value.([]types.Certification)
		if !ok {
			return wrongType()
		}
		s.profile.Certification = v
	case types.SectionPreference:
		v, ok := value.(types.Preference)
		if !ok {
			return wrongType()
		}
		s.profile.Preference = v
	case types.SectionOtherDetails:
		v, ok := value.(types.OtherDetails)
		if !ok {
			return wrongType()
		}
		s.profile.OtherDetails = v
	case types.SectionReviewAgree:
		v, ok := value.(types.ReviewAgree)
		if !ok {
			return wrongType()
		}
		s.profile.ReviewAgree = v
	default:
		return &SectionError{Section: section, Message: "unknown section"}
	}
	return nil
}

// Load replaces the whole profile with the normalized form of a raw document,
// as delivered by an upload or an edit-mode fetch.
func (s *Store) Load(ctx context.Context, doc normalize.Document) {
	p := normalize.Normalize(doc)
	s.mu.Lock()
	s.profile = p
	p = s.profile.Clone()
	s.mu.Unlock()

	s.persist(ctx, p)
	s.notify(p)
}

// applyRemote applies a profile written by another context, last-writer-wins.
// The writer already persisted it, so the receiving side only updates memory
// and tells its subscribers.
func (s *Store) applyRemote(payload []byte) {
	doc, err := normalize.ParseDocument(payload)
	if err != nil {
		log.Printf("[store] ignoring unreadable remote profile: %v", err)
		return
	}
	p := normalize.Normalize(doc)
	s.mu.Lock()
	s.profile = p
	p = s.profile.Clone()
	s.mu.Unlock()
	s.notify(p)
}

func (s *Store) persist(ctx context.Context, p types.Profile) {
	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("[store] failed to serialize profile: %v", err)
		return
	}
	if err := s.storage.Set(ctx, ProfileKey, data); err != nil {
		log.Printf("[store] failed to persist profile: %v", err)
	}
	if s.bus != nil {
		if err := s.bus.Publish(s.id, data); err != nil {
			log.Printf("[store] failed to publish profile: %v", err)
		}
	}
}

func (s *Store) notify(p types.Profile) {
	s.subMu.Lock()
	subs := make([]func(types.Profile), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(p.Clone())
	}
}

// Subscribe registers a callback invoked with a copy of the profile after
// every change, local or remote. It returns the unsubscribe func.
func (s *Store) Subscribe(fn func(types.Profile)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// EditMode reports whether the wizard should start in edit mode. The flag is
// persisted as a boolean string.
func (s *Store) EditMode(ctx context.Context) bool {
	data, err := s.storage.Get(ctx, EditModeKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[store] failed to read edit-mode flag: %v", err)
		}
		return false
	}
	return string(data) == "true"
}

// SetEditMode persists the edit-mode flag.
func (s *Store) SetEditMode(ctx context.Context, on bool) {
	v := "false"
	if on {
		v = "true"
	}
	if err := s.storage.Set(ctx, EditModeKey, []byte(v)); err != nil {
		log.Printf("[store] failed to write edit-mode flag: %v", err)
	}
}

// ClearEditMode removes the edit-mode flag after a successful submission.
func (s *Store) ClearEditMode(ctx context.Context) {
	if err := s.storage.Delete(ctx, EditModeKey); err != nil {
		log.Printf("[store] failed to clear edit-mode flag: %v", err)
	}
}

// TourStatus returns an onboarding tour's recorded status ("done" or
// "skipped"), or "" when the tour has not been seen.
func (s *Store) TourStatus(ctx context.Context, tour string) string {
	data, err := s.storage.Get(ctx, TourKey(tour))
	if err != nil {
		return ""
	}
	return string(data)
}

// SetTourStatus records an onboarding tour's status.
func (s *Store) SetTourStatus(ctx context.Context, tour, status string) {
	if err := s.storage.Set(ctx, TourKey(tour), []byte(status)); err != nil {
		log.Printf("[store] failed to write tour status: %v", err)
	}
}

// Close detaches the store from the bus.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}
