package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/jfetch/internal/output"
	"github.com/wesleyorama2/jfetch/pkg/fetch"
	"github.com/wesleyorama2/jfetch/pkg/jsonpath"
	"github.com/wesleyorama2/jfetch/pkg/jsonschema"
)

// addRequestFlags registers the flags shared by the method commands.
func addRequestFlags(cmd *cobra.Command, withBody bool) {
	cmd.Flags().StringArrayP("header", "H", nil, "Request header as 'Key: Value' (repeatable)")
	cmd.Flags().StringArrayP("query", "q", nil, "Query parameter as 'key=value' (repeatable)")
	cmd.Flags().Duration("timeout", 0, "Request timeout (0 disables; default 30s)")
	cmd.Flags().BoolP("verbose", "v", false, "Show request and response headers")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().StringP("extract", "e", "", "JSONPath expression to extract from the response body")
	cmd.Flags().String("schema", "", "JSON Schema file to validate the response body against")
	if withBody {
		cmd.Flags().StringP("json", "d", "", "JSON request body, inline or @file")
	}
}

// executeRequest is the shared path behind get/post/put/delete.
func executeRequest(cmd *cobra.Command, method, rawURL string) error {
	headers, _ := cmd.Flags().GetStringArray("header")
	queries, _ := cmd.Flags().GetStringArray("query")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	extract, _ := cmd.Flags().GetString("extract")
	schemaPath, _ := cmd.Flags().GetString("schema")

	opts := []fetch.Option{fetch.WithMethod(method)}

	headerMap, err := parseHeaders(headers)
	if err != nil {
		return err
	}
	opts = append(opts, fetch.WithHeaders(headerMap))

	for _, q := range queries {
		key, value, found := strings.Cut(q, "=")
		if !found {
			return fmt.Errorf("invalid query parameter %q (want key=value)", q)
		}
		opts = append(opts, fetch.WithSearchParam(key, value))
	}

	var bodyText []byte
	if cmd.Flags().Lookup("json") != nil {
		data, _ := cmd.Flags().GetString("json")
		if data != "" {
			bodyText, err = readBodyArg(data)
			if err != nil {
				return err
			}
			var value any
			if err := json.Unmarshal(bodyText, &value); err != nil {
				return fmt.Errorf("invalid JSON body: %w", err)
			}
			opts = append(opts, fetch.WithJSONBody(value))
		}
	}

	if cmd.Flags().Changed("timeout") {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		opts = append(opts, fetch.WithTimeout(timeout))
	}

	formatter := output.NewFormatter(verbose, noColor)
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRequest(method, rawURL, headerMap, bodyText))

	start := time.Now()
	resp, err := fetch.Do(cmd.Context(), rawURL, opts...)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(err))
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResponse(resp, time.Since(start)))

	if resp.Raw == nil {
		return nil
	}

	if schemaPath != "" {
		schema, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("reading schema: %w", err)
		}
		if err := jsonschema.Validate(resp.Bytes(), schema); err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(err))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema: valid")
	}

	if extract != "" {
		value, err := jsonpath.Extract(string(resp.Bytes()), extract)
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(err))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}

	return nil
}

// parseHeaders splits "Key: Value" flag values into a map.
func parseHeaders(raw []string) (map[string]string, error) {
	headers := make(map[string]string, len(raw))
	for _, h := range raw {
		key, value, found := strings.Cut(h, ":")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid header %q (want 'Key: Value')", h)
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers, nil
}

// readBodyArg returns the inline value, or the file contents when the
// argument starts with @.
func readBodyArg(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return nil, fmt.Errorf("reading body file: %w", err)
		}
		return data, nil
	}
	return []byte(arg), nil
}
