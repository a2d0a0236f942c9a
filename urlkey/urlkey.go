// Package urlkey turns a URL-shaped input string into the derivation key fed
// to the keyed hash. The tokenizer deliberately does not use net/url: the
// reference algorithm accepts bare hosts, missing schemes and other inputs a
// strict parser rejects or normalizes, and the key must be assembled from the
// raw text byte-for-byte.
package urlkey

import "strings"

// Flags selects which URL components join the derivation key. The domain is
// always included; these toggle the optional components around it.
type Flags struct {
	Protocol  bool
	Userinfo  bool
	Subdomain bool
}

// Parts is the decomposition of one input string.
//
// Params (path + query) are extracted for front-end preview but never join
// the key: the reference family only consumes them in its "all information"
// mode, which this system does not expose.
type Parts struct {
	Scheme    string
	Userinfo  string
	Subdomain string
	Domain    string
	Port      string
	Params    string
}

// Split tokenizes raw. Rules, in order:
//   - the scheme ends at the first "://" (absent otherwise);
//   - everything after the first "/" following the host is params;
//   - the userinfo ends at the last "@" before the host (absent otherwise);
//   - the host splits on ":" into hostname and port;
//   - the hostname's last two dot-labels form the domain, anything before
//     them is the subdomain.
func Split(raw string) Parts {
	var p Parts

	rest := raw
	if i := strings.Index(rest, "://"); i >= 0 {
		p.Scheme = rest[:i]
		rest = rest[i+3:]
	}

	if i := strings.IndexByte(rest, '/'); i >= 0 {
		p.Params = rest[i+1:]
		rest = rest[:i]
	}

	if i := strings.LastIndexByte(rest, '@'); i >= 0 {
		p.Userinfo = rest[:i]
		rest = rest[i+1:]
	}

	host := rest
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		host = rest[:i]
		p.Port = rest[i+1:]
	}

	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		p.Domain = host
		return p
	}
	p.Domain = strings.Join(labels[len(labels)-2:], ".")
	p.Subdomain = strings.Join(labels[:len(labels)-2], ".")
	return p
}

// Assemble builds the derivation key from the parts under the given flags.
// The layering is fixed: [scheme://][userinfo@][subdomain.]domain. A
// component is emitted only when both present and enabled; the port never
// joins the key.
func (p Parts) Assemble(f Flags) string {
	var b strings.Builder
	if f.Protocol && p.Scheme != "" {
		b.WriteString(p.Scheme)
		b.WriteString("://")
	}
	if f.Userinfo && p.Userinfo != "" {
		b.WriteString(p.Userinfo)
		b.WriteString("@")
	}
	if f.Subdomain && p.Subdomain != "" {
		b.WriteString(p.Subdomain)
		b.WriteString(".")
	}
	b.WriteString(p.Domain)
	return b.String()
}

// Derive is Split followed by Assemble.
func Derive(raw string, f Flags) string {
	return Split(raw).Assemble(f)
}
