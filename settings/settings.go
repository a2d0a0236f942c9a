// Package settings is the persistence gateway for the profile store. It
// loads and saves a single structured settings file; every failure carries a
// config-family code so callers can degrade to a default store instead of
// aborting.
package settings

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/karu-codes/passmaker/pmerrors"
	"github.com/karu-codes/passmaker/profile"
)

// FileName is the fixed settings-file name under the config root.
const FileName = "passmaker.json"

// noActive mirrors the store's explicit empty state in the persisted form.
const noActive = -1

// document is the on-disk shape of the store.
type document struct {
	Profiles []profile.Profile `koanf:"profiles" json:"profiles" yaml:"profiles"`
	Active   int               `koanf:"active" json:"active" yaml:"active"`
}

// ConfigDir resolves the configuration root: the XDG_CONFIG_HOME override
// when set, otherwise <home>/.config.
func ConfigDir(opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if dir, ok := o.lookupEnv("XDG_CONFIG_HOME"); ok && dir != "" {
		return dir, nil
	}
	if home, ok := o.lookupEnv("HOME"); ok && home != "" {
		return filepath.Join(home, ".config"), nil
	}
	return "", pmerrors.New(pmerrors.CodeNoHome, "neither XDG_CONFIG_HOME nor HOME is set")
}

// DefaultPath is the fixed settings-file location under the config root.
func DefaultPath(opts ...Option) (string, error) {
	dir, err := ConfigDir(opts...)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the settings file into a profile store. The persisted active
// index is clamped into validity by the store itself.
func Load(path string, opts ...Option) (*profile.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pmerrors.Wrapf(err, pmerrors.CodeOpenRead, "cannot open %q", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, pmerrors.Wrapf(err, pmerrors.CodeRead, "cannot read %q", path)
	}

	parser, err := parserFor(path, o.format)
	if err != nil {
		return nil, pmerrors.Wrap(err, pmerrors.CodeDecode, "unsupported settings format")
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{"active": 0}, "."), nil); err != nil {
		return nil, pmerrors.Wrap(err, pmerrors.CodeDecode, "cannot prepare defaults")
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, pmerrors.Wrapf(err, pmerrors.CodeDecode, "cannot parse %q", path)
	}

	var doc document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, pmerrors.Wrapf(err, pmerrors.CodeDecode, "cannot decode %q", path)
	}

	return profile.FromProfiles(doc.Profiles, doc.Active), nil
}

// Save writes the store to the settings file, replacing its contents.
func Save(path string, store *profile.Store, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	active := noActive
	if idx, ok := store.ActiveIndex(); ok {
		active = idx
	}
	doc := document{Profiles: store.Profiles(), Active: active}

	parser, err := parserFor(path, o.format)
	if err != nil {
		return pmerrors.Wrap(err, pmerrors.CodeWrite, "unsupported settings format")
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(doc, "koanf"), nil); err != nil {
		return pmerrors.Wrap(err, pmerrors.CodeWrite, "cannot serialize settings")
	}
	data, err := parser.Marshal(k.Raw())
	if err != nil {
		return pmerrors.Wrap(err, pmerrors.CodeWrite, "cannot encode settings")
	}

	f, err := os.Create(path)
	if err != nil {
		return pmerrors.Wrapf(err, pmerrors.CodeOpenWrite, "cannot open %q for writing", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return pmerrors.Wrapf(err, pmerrors.CodeWrite, "cannot write %q", path)
	}
	if err := f.Close(); err != nil {
		return pmerrors.Wrapf(err, pmerrors.CodeWrite, "cannot finish writing %q", path)
	}
	return nil
}

func parserFor(path string, forced Format) (koanf.Parser, error) {
	format := forced
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = FormatYAML
		case ".json":
			format = FormatJSON
		}
	}
	switch format {
	case FormatJSON:
		return json.Parser(), nil
	case FormatYAML:
		return yaml.Parser(), nil
	}
	return nil, pmerrors.Newf(pmerrors.CodeDecode, "cannot detect settings format from %q", path)
}
