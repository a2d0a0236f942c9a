package profile

import "github.com/google/uuid"

// noActive marks the explicit "no active profile" state. It is the only
// out-of-range value the active index may ever hold; deletions transition
// here instead of underflowing.
const noActive = -1

// Store is the ordered profile collection plus the active index. Insertion
// order is display order. The Store itself is not synchronized; the
// application context serializes all access through its single lock.
type Store struct {
	profiles []Profile
	active   int
}

// NewStore returns an empty store with no active profile.
func NewStore() *Store {
	return &Store{active: noActive}
}

// FromProfiles builds a store from persisted data. The active index is
// clamped into validity: empty data yields the no-active state, an
// out-of-range index snaps to the last profile. Profiles without an ID get
// one backfilled so identities stay stable from then on.
func FromProfiles(profiles []Profile, active int) *Store {
	s := &Store{profiles: append([]Profile(nil), profiles...)}
	for i := range s.profiles {
		if s.profiles[i].ID == "" {
			s.profiles[i].ID = uuid.NewString()
		}
	}
	switch {
	case len(s.profiles) == 0:
		s.active = noActive
	case active < 0 || active >= len(s.profiles):
		s.active = len(s.profiles) - 1
	default:
		s.active = active
	}
	return s
}

// Len returns the number of profiles.
func (s *Store) Len() int { return len(s.profiles) }

// Add appends a clone of the default profile under the given name and makes
// it active. The new profile is returned.
func (s *Store) Add(name string) Profile {
	p := Default()
	p.Name = name
	p.ID = uuid.NewString()
	s.profiles = append(s.profiles, p)
	s.active = len(s.profiles) - 1
	return p
}

// Delete removes the active profile. It reports false when there is nothing
// to delete. When the last profile goes, the store transitions to the
// explicit no-active state; otherwise the index snaps to the last profile if
// it now points past the end.
func (s *Store) Delete() bool {
	if s.active == noActive {
		return false
	}
	s.profiles = append(s.profiles[:s.active], s.profiles[s.active+1:]...)
	if len(s.profiles) == 0 {
		s.active = noActive
		return true
	}
	if s.active >= len(s.profiles) {
		s.active = len(s.profiles) - 1
	}
	return true
}

// ActiveIndex returns the active index, or false when no profile is active.
func (s *Store) ActiveIndex() (int, bool) {
	if s.active == noActive {
		return 0, false
	}
	return s.active, true
}

// SetActiveIndex adopts i when it is in bounds and clamps to the last valid
// index otherwise. Out of range is deliberately not an error here; an empty
// store stays in the no-active state.
func (s *Store) SetActiveIndex(i int) {
	if len(s.profiles) == 0 {
		s.active = noActive
		return
	}
	if i < 0 || i >= len(s.profiles) {
		s.active = len(s.profiles) - 1
		return
	}
	s.active = i
}

// Active returns a copy of the active profile, falling back to the built-in
// default when none is active. Reads never fail.
func (s *Store) Active() Profile {
	if s.active == noActive {
		return Default()
	}
	return s.profiles[s.active]
}

// SetActive replaces the active profile's data, preserving its stored ID
// when the incoming profile carries none. It reports false when no profile
// is active; the built-in default is never mutated through this path.
func (s *Store) SetActive(p Profile) bool {
	if s.active == noActive {
		return false
	}
	if p.ID == "" {
		p.ID = s.profiles[s.active].ID
	}
	s.profiles[s.active] = p
	return true
}

// Names returns the profile names in insertion order.
func (s *Store) Names() []string {
	names := make([]string, len(s.profiles))
	for i, p := range s.profiles {
		names[i] = p.Name
	}
	return names
}

// Profiles returns a copy of the ordered profile sequence for persistence.
func (s *Store) Profiles() []Profile {
	return append([]Profile(nil), s.profiles...)
}
