package app

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/karu-codes/passmaker/pmerrors"
	"github.com/karu-codes/passmaker/profile"
	"github.com/karu-codes/passmaker/settings"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return New(WithPath(filepath.Join(t.TempDir(), settings.FileName)))
}

func TestLoadMissingFileDegrades(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	err := a.Load()
	if err == nil {
		t.Fatal("expected load error for missing file")
	}
	if !pmerrors.IsConfig(err) {
		t.Fatalf("expected config-family error, got %v", err)
	}

	// The app stays usable with exactly one default profile.
	names := a.ProfileNames()
	if len(names) != 1 || names[0] != profile.DefaultName {
		t.Fatalf("degraded store = %v, want [default]", names)
	}
	if a.ActiveIndex() != 0 {
		t.Fatalf("ActiveIndex = %d, want 0", a.ActiveIndex())
	}
	if _, err := a.Generate("https://www.example.com", "Secret123"); err != nil {
		t.Fatalf("Generate after degrade: %v", err)
	}
}

func TestSaveLoadAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), settings.FileName)

	first := New(WithPath(path))
	first.AddProfile("home")
	first.AddProfile("work")
	first.SetActiveIndex(0)
	if err := first.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := New(WithPath(path))
	if err := second.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	names := second.ProfileNames()
	if len(names) != 2 || names[0] != "home" || names[1] != "work" {
		t.Fatalf("ProfileNames = %v", names)
	}
	if second.ActiveIndex() != 0 {
		t.Fatalf("ActiveIndex = %d, want 0", second.ActiveIndex())
	}
}

func TestGenerateUsesActiveProfile(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.AddProfile("site")

	edited := a.ActiveProfile()
	edited.PasswordLength = 20
	edited.Prefix = "p!"
	if err := a.SetActiveProfile(edited); err != nil {
		t.Fatalf("SetActiveProfile: %v", err)
	}

	got, err := a.Generate("https://www.example.com", "Secret123")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 22 || got[:2] != "p!" {
		t.Fatalf("Generate = %q, want 20 characters behind prefix", got)
	}
}

func TestGenerateWithEmptyStoreFallsBack(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	if a.ActiveIndex() != -1 {
		t.Fatalf("ActiveIndex = %d, want -1", a.ActiveIndex())
	}
	got, err := a.Generate("https://www.example.com", "Secret123")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("fallback generate = %q, want 8 characters", got)
	}
}

func TestGenerateSurfacesSettingsErrors(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.AddProfile("broken")
	p := a.ActiveProfile()
	p.HashAlgorithm = "sha512"
	if err := a.SetActiveProfile(p); err != nil {
		t.Fatalf("SetActiveProfile: %v", err)
	}

	got, err := a.Generate("https://www.example.com", "Secret123")
	if err == nil {
		t.Fatalf("expected error, got password %q", got)
	}
	if got != "" {
		t.Fatal("a failed generate must not return a fabricated password")
	}
	if !pmerrors.HasCode(err, pmerrors.CodeUnknownAlgorithm) {
		t.Fatalf("code = %s, want UNKNOWN_HASH_ALGORITHM", pmerrors.GetCode(err))
	}
	if out := pmerrors.ToCMDError(err); out == "" {
		t.Fatal("error must render as visible text")
	}
}

func TestSetActiveProfileWithoutActive(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	err := a.SetActiveProfile(profile.Default())
	if !pmerrors.HasCode(err, pmerrors.CodeNoActiveProfile) {
		t.Fatalf("expected NO_ACTIVE_PROFILE, got %v", err)
	}
}

func TestDeleteToEmptyThenGenerate(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.AddProfile("only")
	if !a.DeleteProfile() {
		t.Fatal("delete should succeed")
	}
	if a.DeleteProfile() {
		t.Fatal("delete on empty store should report false")
	}
	if a.ActiveIndex() != -1 {
		t.Fatalf("ActiveIndex = %d, want -1", a.ActiveIndex())
	}
	if _, err := a.Generate("https://www.example.com", "Secret123"); err != nil {
		t.Fatalf("Generate after emptying store: %v", err)
	}
}

func TestVerifyMatchesEngine(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	if got := a.Verify("Secret123"); got != "IBj" {
		t.Fatalf("Verify = %q, want IBj", got)
	}
}

func TestUsedTextPreview(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.AddProfile("site")
	got, err := a.UsedText("https://user@www.example.com/x")
	if err != nil {
		t.Fatalf("UsedText: %v", err)
	}
	// Default flags: subdomain on, userinfo and protocol off.
	if got != "www.example.com" {
		t.Fatalf("UsedText = %q", got)
	}
}

func TestConcurrentAccessStaysConsistent(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.AddProfile("seed")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				switch n % 4 {
				case 0:
					a.AddProfile("p")
				case 1:
					a.DeleteProfile()
				case 2:
					a.SetActiveIndex(j)
				default:
					if idx := a.ActiveIndex(); idx < -1 {
						t.Errorf("active index %d underflowed", idx)
					}
					_, _ = a.Generate("https://www.example.com", "s")
					_ = a.ProfileNames()
				}
			}
		}(i)
	}
	wg.Wait()
}
