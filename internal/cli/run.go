package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/jfetch/internal/config"
	"github.com/wesleyorama2/jfetch/internal/output"
	"github.com/wesleyorama2/jfetch/pkg/fetch"
)

var runCmd = &cobra.Command{
	Use:   "run NAME",
	Short: "Issue a named request defined in a config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		req, err := cfg.Resolve(args[0])
		if err != nil {
			return err
		}

		opts := []fetch.Option{
			fetch.WithMethod(req.Method),
			fetch.WithHeaders(req.Headers),
		}
		if len(req.Query) > 0 {
			opts = append(opts, fetch.WithSearchParams(req.Query))
		}
		var bodyText []byte
		if req.Body != nil {
			opts = append(opts, fetch.WithJSONBody(req.Body))
			bodyText, _ = json.Marshal(req.Body)
		}
		if req.HasTimeout {
			opts = append(opts, fetch.WithTimeout(req.Timeout))
		}

		formatter := output.NewFormatter(verbose, noColor)
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRequest(req.Method, req.URL, req.Headers, bodyText))

		start := time.Now()
		resp, err := fetch.Do(cmd.Context(), req.URL, opts...)
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(err))
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResponse(resp, time.Since(start)))
		return nil
	},
}

func init() {
	runCmd.Flags().StringP("config", "c", "jfetch.yaml", "Path to the request config file")
	runCmd.Flags().BoolP("verbose", "v", false, "Show request and response headers")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}
