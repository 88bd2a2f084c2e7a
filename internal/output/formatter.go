// Package output renders requests, responses, and failures for the
// terminal.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/wesleyorama2/jfetch/pkg/fetch"
)

// Formatter renders CLI output with optional color and verbosity.
type Formatter struct {
	Verbose bool
	scheme  *ColorScheme
}

// NewFormatter creates a formatter. Color is disabled when noColor is
// set or stdout is not a terminal.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor || !stdoutIsTerminal() {
		scheme = NoColorScheme()
	}
	return &Formatter{Verbose: verbose, scheme: scheme}
}

// FormatRequest renders the outgoing request line, plus headers and
// body when verbose.
func (f *Formatter) FormatRequest(method, url string, headers map[string]string, body []byte) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "▶ %s %s\n", f.scheme.Method.Sprint(method), f.scheme.URL.Sprint(url))

	if f.Verbose {
		for key, value := range headers {
			fmt.Fprintf(&buf, "  %s: %s\n", f.scheme.HeaderKey.Sprint(key), value)
		}
		if len(body) > 0 {
			fmt.Fprintf(&buf, "  %s\n", indentJSON(body))
		}
	}

	return buf.String()
}

// FormatResponse renders the response status line, headers when
// verbose, and the pretty-printed body.
func (f *Formatter) FormatResponse(resp *fetch.Response, elapsed time.Duration) string {
	var buf strings.Builder

	if resp.Raw == nil {
		buf.WriteString("◀ request cancelled, no response\n")
		return buf.String()
	}

	fmt.Fprintf(&buf, "◀ %s (%dms)\n",
		f.statusColor(resp.StatusCode()).Sprint(resp.Raw.Status),
		elapsed.Milliseconds())

	if f.Verbose {
		for key := range resp.Raw.Header {
			fmt.Fprintf(&buf, "  %s: %s\n", f.scheme.HeaderKey.Sprint(key), resp.Raw.Header.Get(key))
		}
	}

	if text := resp.Bytes(); len(text) > 0 {
		buf.WriteString(indentJSON(text))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatError renders a failure with its classified kind when the
// error came from the fetch layer.
func (f *Formatter) FormatError(err error) string {
	var fe *fetch.Error
	if errors.As(err, &fe) {
		return fmt.Sprintf("%s [%s] %s\n", f.scheme.Error.Sprint("✗"), fe.Kind, fe.Message)
	}
	return fmt.Sprintf("%s %s\n", f.scheme.Error.Sprint("✗"), err)
}

func (f *Formatter) statusColor(status int) *color.Color {
	switch {
	case status >= 200 && status < 300:
		return f.scheme.StatusOK
	case status >= 300 && status < 400:
		return f.scheme.StatusWarn
	default:
		return f.scheme.StatusError
	}
}

// indentJSON pretty-prints JSON text, falling back to the raw text
// when it does not parse.
func indentJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	return buf.String()
}
