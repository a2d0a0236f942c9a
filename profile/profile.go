// Package profile holds the named derivation configurations and the ordered
// store that tracks which one is active.
package profile

// Profile is one named bundle of derivation parameters. The string fields
// are kept in their persisted form; validation happens when a profile is
// turned into a deriver, so a settings file with a bad value loads fine and
// surfaces the error at generation time.
type Profile struct {
	// ID is a stable identity that survives renames. Assigned when the
	// profile is created, backfilled when a settings file predates it.
	ID             string `koanf:"id" json:"id" yaml:"id"`
	Name           string `koanf:"name" json:"name" yaml:"name"`
	HashAlgorithm  string `koanf:"hash_algorithm" json:"hash_algorithm" yaml:"hash_algorithm"`
	LeetMode       string `koanf:"leet_mode" json:"leet_mode" yaml:"leet_mode"`
	LeetLevel      int    `koanf:"leet_level" json:"leet_level" yaml:"leet_level"`
	Alphabet       string `koanf:"alphabet" json:"alphabet" yaml:"alphabet"`
	Username       string `koanf:"username" json:"username" yaml:"username"`
	Modifier       string `koanf:"modifier" json:"modifier" yaml:"modifier"`
	PasswordLength int    `koanf:"password_length" json:"password_length" yaml:"password_length"`
	Prefix         string `koanf:"prefix" json:"prefix" yaml:"prefix"`
	Suffix         string `koanf:"suffix" json:"suffix" yaml:"suffix"`
	UseDomain      bool   `koanf:"use_domain" json:"use_domain" yaml:"use_domain"`
	UseSubdomain   bool   `koanf:"use_subdomain" json:"use_subdomain" yaml:"use_subdomain"`
	UseProtocol    bool   `koanf:"use_protocol" json:"use_protocol" yaml:"use_protocol"`
	UseParams      bool   `koanf:"use_params" json:"use_params" yaml:"use_params"`
	UseUserinfo    bool   `koanf:"use_userinfo" json:"use_userinfo" yaml:"use_userinfo"`
}

// DefaultName is the name of the built-in fallback profile.
const DefaultName = "default"

// DefaultAlphabet is the reference family's 94-character printable alphabet.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789`~!@#$%^&*()_-+={}|[]\\:\";'<>?,./"

// Default returns a fresh copy of the built-in profile. It is never
// persisted and callers may mutate their copy freely.
func Default() Profile {
	return Profile{
		Name:           DefaultName,
		HashAlgorithm:  "md5",
		LeetMode:       "NotAtAll",
		Alphabet:       DefaultAlphabet,
		PasswordLength: 8,
		UseDomain:      true,
		UseSubdomain:   true,
	}
}
