package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// execute runs the root command with args and captures its output.
// Commands keep flag state between runs, so tests reset the flags of
// the command they exercise first.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func resetRequestCmd(cmd *cobra.Command, withBody bool) {
	cmd.ResetFlags()
	addRequestFlags(cmd, withBody)
}

func TestParseHeaders(t *testing.T) {
	headers, err := parseHeaders([]string{"X-One: a", "X-Two:b", "X-Three: a: b"})
	if err != nil {
		t.Fatalf("parseHeaders returned error: %v", err)
	}
	if headers["X-One"] != "a" || headers["X-Two"] != "b" {
		t.Errorf("Unexpected headers: %v", headers)
	}
	if headers["X-Three"] != "a: b" {
		t.Errorf("Expected value with colon preserved, got %q", headers["X-Three"])
	}

	if _, err := parseHeaders([]string{"no-colon"}); err == nil {
		t.Error("Expected error for header without colon")
	}
	if _, err := parseHeaders([]string{": empty-key"}); err == nil {
		t.Error("Expected error for empty header key")
	}
}

func TestReadBodyArg(t *testing.T) {
	inline, err := readBodyArg(`{"a":1}`)
	if err != nil {
		t.Fatalf("readBodyArg returned error: %v", err)
	}
	if string(inline) != `{"a":1}` {
		t.Errorf("Expected inline body, got %q", inline)
	}

	if _, err := readBodyArg("@/definitely/missing/file.json"); err == nil {
		t.Error("Expected error for missing body file")
	}
}
