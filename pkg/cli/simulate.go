package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tracegate/tracegate/pkg/config"
	"github.com/tracegate/tracegate/pkg/sampling"
)

var (
	simulateCount   int
	simulateVerbose bool
)

// simulated request mix, cycled through in order.
var simulatedRequests = []struct {
	method string
	url    string
}{
	{"GET", "/api/users"},
	{"GET", "/health"},
	{"POST", "/api/orders"},
	{"GET", "/api/users/42"},
	{"GET", "/static/js/app.js"},
	{"OPTIONS", "/api/orders"},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <config-file>",
	Short: "Dry-run the admission pipeline against synthetic traffic",
	Long: `Simulate drives the configured sampler and request filters with a
fixed mix of synthetic requests and reports how many traces would have
been admitted, dropped or excluded. Use it to sanity-check sampler
settings before rolling them out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		cfg.Validate()

		sampler := cfg.NewTraceSampler()
		urlFilter := cfg.NewURLFilter()
		methodFilter := cfg.NewMethodFilter()

		var excluded int
		for i := 0; i < simulateCount; i++ {
			req := simulatedRequests[i%len(simulatedRequests)]
			txID := uuid.NewString()

			if urlFilter.IsFiltered(req.url) || methodFilter.IsFiltered(req.method) {
				excluded++
				if simulateVerbose {
					fmt.Printf("%s %s %s -> excluded\n", txID, req.method, req.url)
				}
				continue
			}

			sampled := sampler.IsNewSampled()
			if simulateVerbose {
				decision := "dropped"
				if sampled {
					decision = "sampled"
				}
				fmt.Printf("%s %s %s -> %s\n", txID, req.method, req.url, decision)
			}
		}

		var snap sampling.StatsSnapshot
		if s, ok := sampler.(interface{ Stats() *sampling.Stats }); ok {
			snap = s.Stats().Snapshot()
		}

		if jsonOutput {
			out := struct {
				Requests int                    `json:"requests"`
				Excluded int                    `json:"excluded"`
				Stats    sampling.StatsSnapshot `json:"stats"`
			}{Requests: simulateCount, Excluded: excluded, Stats: snap}
			data, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("requests:      %d\n", simulateCount)
		fmt.Printf("excluded:      %d\n", excluded)
		fmt.Printf("sampled new:   %d\n", snap.SampleNew)
		fmt.Printf("unsampled new: %d\n", snap.UnsampleNew)
		fmt.Printf("skipped new:   %d\n", snap.SkipNew)
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVarP(&simulateCount, "count", "n", 1000, "Number of synthetic requests")
	simulateCmd.Flags().BoolVarP(&simulateVerbose, "verbose", "v", false, "Print every decision")
	rootCmd.AddCommand(simulateCmd)
}
