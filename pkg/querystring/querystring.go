// Package querystring serializes a flat parameter map into a
// canonical percent-encoded query string.
package querystring

import (
	"net/url"
	"sort"
	"strings"
)

// Encode renders params as "key=value" pairs joined by "&". Keys are
// sorted so the output is deterministic, and spaces are encoded as
// %20 rather than "+".
func Encode(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(k))
		b.WriteByte('=')
		b.WriteString(escape(params[k]))
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
