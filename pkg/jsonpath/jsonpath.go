// Package jsonpath resolves JSONPath-style expressions against JSON
// text, backed by gjson.
package jsonpath

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	quotedSegment = regexp.MustCompile(`\[(?:'([^']*)'|"([^"]*)")\]`)
	indexSegment  = regexp.MustCompile(`\[(\d+)\]`)
)

// Extract resolves path against doc and returns the matched value
// rendered as a string. A null match is rendered as "null"; a missing
// path is an error.
func Extract(doc, path string) (string, error) {
	if doc == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}

	result := gjson.Get(doc, toGjsonPath(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// toGjsonPath rewrites JSONPath syntax ($.users[0].name,
// $['users'][0]) into gjson's dotted form (users.0.name).
func toGjsonPath(path string) string {
	p := strings.TrimPrefix(path, "$")
	p = quotedSegment.ReplaceAllString(p, ".$1$2")
	p = indexSegment.ReplaceAllString(p, ".$1")
	p = strings.TrimPrefix(p, ".")
	if p == "" {
		return "@this"
	}
	return p
}
