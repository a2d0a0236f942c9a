// Package app owns the shared profile store and exposes the boundary a front
// end calls: password generation, master verification, profile CRUD, and
// settings load/save. One mutex serializes every operation, so callers never
// observe a store with a transiently invalid active index.
package app

import (
	"sync"

	"go.uber.org/zap"

	"github.com/karu-codes/passmaker/derive"
	"github.com/karu-codes/passmaker/pmerrors"
	"github.com/karu-codes/passmaker/profile"
	"github.com/karu-codes/passmaker/settings"
)

// App is the application context. Construct it with New and inject it into
// handlers; there is deliberately no package-level instance.
type App struct {
	mu    sync.Mutex
	store *profile.Store
	log   *zap.Logger
	path  string
}

// Option customizes an App.
type Option func(*App)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithPath overrides the settings-file location. Defaults to the fixed file
// name under the resolved config root.
func WithPath(path string) Option {
	return func(a *App) {
		a.path = path
	}
}

// New returns an App with an empty store. Call Load to read persisted
// settings; on failure the store degrades to one default profile.
func New(opts ...Option) *App {
	a := &App{
		store: profile.NewStore(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load reads the settings file into the store. Any failure leaves the app
// usable: the store is reset to exactly one default profile and the typed
// config error is returned for display.
func (a *App) Load() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	path, err := a.settingsPath()
	if err != nil {
		a.degrade(err)
		return err
	}
	store, err := settings.Load(path)
	if err != nil {
		a.degrade(err)
		return err
	}
	a.store = store
	a.log.Info("settings loaded",
		zap.String("path", path),
		zap.Int("profiles", store.Len()))
	return nil
}

// Save writes the store back to the settings file.
func (a *App) Save() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	path, err := a.settingsPath()
	if err != nil {
		return err
	}
	if err := settings.Save(path, a.store); err != nil {
		a.log.Warn("settings save failed", zap.String("path", path), zap.Error(err))
		return err
	}
	a.log.Info("settings saved",
		zap.String("path", path),
		zap.Int("profiles", a.store.Len()))
	return nil
}

// Generate derives the password for url under the active profile. When no
// profile is active the built-in default applies. Errors are typed settings
// failures and must be shown in place of a password.
func (a *App) Generate(url, master string) (string, error) {
	a.mu.Lock()
	active := a.store.Active()
	a.mu.Unlock()

	d, err := derive.New(active)
	if err != nil {
		return "", err
	}
	return d.Generate(url, master)
}

// UsedText previews the derivation key the active profile builds from url.
func (a *App) UsedText(url string) (string, error) {
	a.mu.Lock()
	active := a.store.Active()
	a.mu.Unlock()

	d, err := derive.New(active)
	if err != nil {
		return "", err
	}
	return d.UsedText(url), nil
}

// Verify derives the profile-independent master-secret checksum.
func (a *App) Verify(master string) string {
	return derive.Verify(master)
}

// AddProfile appends a renamed clone of the default profile and makes it
// active.
func (a *App) AddProfile(name string) profile.Profile {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := a.store.Add(name)
	a.log.Info("profile added", zap.String("name", name), zap.String("id", p.ID))
	return p
}

// DeleteProfile removes the active profile. Deleting from an empty store is
// a no-op.
func (a *App) DeleteProfile() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	deleted := a.store.Delete()
	if deleted {
		a.log.Info("profile deleted", zap.Int("remaining", a.store.Len()))
	}
	return deleted
}

// ActiveIndex returns the active index, or -1 when no profile is active.
func (a *App) ActiveIndex() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	idx, ok := a.store.ActiveIndex()
	if !ok {
		return -1
	}
	return idx
}

// SetActiveIndex adopts i, clamping out-of-range values to the last profile.
func (a *App) SetActiveIndex(i int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store.SetActiveIndex(i)
}

// ActiveProfile returns a copy of the active profile, or the built-in
// default when none is active.
func (a *App) ActiveProfile() profile.Profile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Active()
}

// SetActiveProfile replaces the active profile's data. Editing with no
// active profile is a typed error; the built-in default is never mutated.
func (a *App) SetActiveProfile(p profile.Profile) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.store.SetActive(p) {
		return pmerrors.New(pmerrors.CodeNoActiveProfile, "no active profile to edit")
	}
	return nil
}

// ProfileNames lists profile names in insertion order.
func (a *App) ProfileNames() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Names()
}

// degrade resets the store to one default profile so the app stays usable
// after a load failure. Callers hold the lock.
func (a *App) degrade(cause error) {
	store := profile.NewStore()
	store.Add(profile.DefaultName)
	a.store = store
	a.log.Warn("settings unavailable, using default profile", zap.Error(cause))
}

func (a *App) settingsPath() (string, error) {
	if a.path != "" {
		return a.path, nil
	}
	return settings.DefaultPath()
}
