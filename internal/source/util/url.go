package util

import (
	"net/url"
	"sort"
	"strings"
)

// PlaceholderURL stands in when a source gives no usable link.
const PlaceholderURL = "#"

// CanonicalizeURL normalizes a posting link: lowercased scheme/host, tracking
// params dropped, deterministic query order. Unparseable input passes through
// untouched.
func CanonicalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PlaceholderURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") ||
			lk == "gclid" || lk == "fbclid" || lk == "msclkid" ||
			lk == "mc_cid" || lk == "mc_eid" ||
			lk == "mkt_tok" {
			q.Del(k)
		}
	}

	for k := range q {
		vals := q[k]
		sort.Strings(vals)
		q[k] = vals
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// AbsoluteURL resolves href against base when href is host-relative.
func AbsoluteURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return PlaceholderURL
	}
	if strings.HasPrefix(href, "/") {
		b, err := url.Parse(base)
		if err == nil && b.Host != "" {
			return b.Scheme + "://" + b.Host + href
		}
	}
	return href
}
