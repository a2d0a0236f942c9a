// Package derive orchestrates password derivation: URL-to-key normalization,
// optional leet obfuscation, keyed hashing with entropy expansion, and base-N
// rendering over the profile's alphabet.
package derive

import (
	"github.com/karu-codes/passmaker/basen"
	"github.com/karu-codes/passmaker/digest"
	"github.com/karu-codes/passmaker/hkeyed"
	"github.com/karu-codes/passmaker/leet"
	"github.com/karu-codes/passmaker/pmerrors"
	"github.com/karu-codes/passmaker/profile"
	"github.com/karu-codes/passmaker/urlkey"
)

// MaxPasswordLength bounds the requested output length. The practical ceiling
// is a few hundred characters; anything above this is a configuration error.
const MaxPasswordLength = 1024

// Deriver is a validated derivation configuration. Construction checks every
// profile parameter once so Generate cannot produce a wrong-but-plausible
// password from bad settings; it either derives or errors.
type Deriver struct {
	backend  digest.Backend
	leet     leet.Transform
	alphabet string
	username string
	modifier string
	length   int
	prefix   string
	suffix   string
	flags    urlkey.Flags
}

// New validates p into a Deriver. Failures carry settings-family codes and
// must be rendered to the user in place of a password.
func New(p profile.Profile) (*Deriver, error) {
	backend, err := digest.Parse(p.HashAlgorithm)
	if err != nil {
		return nil, pmerrors.Wrapf(err, pmerrors.CodeUnknownAlgorithm, "profile %q: unknown hash algorithm %q", p.Name, p.HashAlgorithm)
	}

	mode, err := leet.ParseMode(p.LeetMode)
	if err != nil {
		return nil, pmerrors.Wrapf(err, pmerrors.CodeInvalidLeet, "profile %q: unknown leet mode %q", p.Name, p.LeetMode)
	}
	transform, err := leet.New(mode, leet.Level(p.LeetLevel))
	if err != nil {
		return nil, pmerrors.Wrapf(err, pmerrors.CodeInvalidLeet, "profile %q: leet level %d out of range", p.Name, p.LeetLevel)
	}

	if p.PasswordLength < 0 || p.PasswordLength > MaxPasswordLength {
		return nil, pmerrors.Newf(pmerrors.CodeBadLength, "profile %q: password length %d out of range", p.Name, p.PasswordLength)
	}
	if p.PasswordLength > 0 && len(p.Alphabet) == 0 {
		return nil, pmerrors.Newf(pmerrors.CodeEmptyAlphabet, "profile %q: alphabet must not be empty", p.Name)
	}

	return &Deriver{
		backend:  backend,
		leet:     transform,
		alphabet: p.Alphabet,
		username: p.Username,
		modifier: p.Modifier,
		length:   p.PasswordLength,
		prefix:   p.Prefix,
		suffix:   p.Suffix,
		flags: urlkey.Flags{
			Protocol:  p.UseProtocol,
			Userinfo:  p.UseUserinfo,
			Subdomain: p.UseSubdomain,
		},
	}, nil
}

// UsedText returns the derivation key built from rawURL under the profile's
// flags, as a front end would preview it.
func (d *Deriver) UsedText(rawURL string) string {
	return urlkey.Derive(rawURL, d.flags)
}

// Generate derives the password for rawURL and the master secret. The same
// arguments always yield the same string.
func (d *Deriver) Generate(rawURL, master string) (string, error) {
	return d.fromText(d.UsedText(rawURL), master)
}

// fromText is the core pipeline over an already-derived key text.
func (d *Deriver) fromText(text, master string) (string, error) {
	key := d.leet.Before(master)
	message := text + d.username + d.modifier

	stream := hkeyed.NewStream(d.backend, []byte(key), []byte(message))
	encoded, err := basen.Encode(d.alphabet, d.length, stream.Next)
	if err != nil {
		return "", pmerrors.Wrap(err, pmerrors.CodeEmptyAlphabet, "encoding failed")
	}

	encoded = d.leet.After(encoded)
	return d.prefix + encoded + d.suffix, nil
}
