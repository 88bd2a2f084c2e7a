package cli

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/jfetch/pkg/fetch"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Issue repeated requests and report latency percentiles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("requests")
		headers, _ := cmd.Flags().GetStringArray("header")

		if count < 1 {
			return fmt.Errorf("request count must be at least 1")
		}
		headerMap, err := parseHeaders(headers)
		if err != nil {
			return err
		}

		opts := []fetch.Option{fetch.WithHeaders(headerMap)}
		if cmd.Flags().Changed("timeout") {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			opts = append(opts, fetch.WithTimeout(timeout))
		}

		// Latencies are recorded in microseconds, up to one minute.
		hist := hdrhistogram.New(1, 60_000_000, 3)
		failures := 0

		for i := 0; i < count; i++ {
			start := time.Now()
			_, err := fetch.Do(cmd.Context(), args[0], opts...)
			elapsed := time.Since(start)
			if err != nil {
				failures++
				continue
			}
			hist.RecordValue(elapsed.Microseconds())
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "requests: %d  ok: %d  failed: %d\n", count, count-failures, failures)
		if hist.TotalCount() > 0 {
			fmt.Fprintf(out, "min:  %s\n", time.Duration(hist.Min())*time.Microsecond)
			fmt.Fprintf(out, "mean: %s\n", time.Duration(hist.Mean())*time.Microsecond)
			fmt.Fprintf(out, "p50:  %s\n", time.Duration(hist.ValueAtQuantile(50))*time.Microsecond)
			fmt.Fprintf(out, "p90:  %s\n", time.Duration(hist.ValueAtQuantile(90))*time.Microsecond)
			fmt.Fprintf(out, "p99:  %s\n", time.Duration(hist.ValueAtQuantile(99))*time.Microsecond)
			fmt.Fprintf(out, "max:  %s\n", time.Duration(hist.Max())*time.Microsecond)
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d requests failed", failures, count)
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().IntP("requests", "n", 50, "Number of requests to issue")
	benchCmd.Flags().StringArrayP("header", "H", nil, "Request header as 'Key: Value' (repeatable)")
	benchCmd.Flags().Duration("timeout", 0, "Per-request timeout (0 disables; default 30s)")
}
