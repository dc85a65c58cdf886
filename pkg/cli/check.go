package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracegate/tracegate/pkg/config"
)

var checkCmd = &cobra.Command{
	Use:   "check <config-file>",
	Short: "Validate a config file and print the effective admission settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		notes := cfg.Validate()

		if jsonOutput {
			out := struct {
				Config config.Config `json:"config"`
				Notes  []string      `json:"notes,omitempty"`
			}{Config: cfg, Notes: notes}
			data, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		for _, n := range notes {
			fmt.Fprintf(os.Stderr, "note: %s\n", n)
		}
		fmt.Printf("sampler:              %s\n", samplerSummary(cfg))
		fmt.Printf("new throughput:       %s\n", capSummary(cfg.Sampling.NewThroughput))
		fmt.Printf("continue throughput:  %s\n", capSummary(cfg.Sampling.ContinueThroughput))
		fmt.Printf("exclude URLs:         %d pattern(s)\n", len(cfg.NewURLFilter().Patterns()))
		fmt.Printf("exclude methods:      %v\n", cfg.NewMethodFilter().Methods())
		fmt.Printf("status error tokens:  %v\n", cfg.HTTP.StatusCodeErrors)
		return nil
	},
}

func samplerSummary(cfg config.Config) string {
	if cfg.Sampling.Type == config.SamplerTypePercent {
		return fmt.Sprintf("PERCENT %v%%", cfg.Sampling.PercentRate)
	}
	if cfg.Sampling.CounterRate == 0 {
		return "COUNTER disabled"
	}
	return fmt.Sprintf("COUNTER 1 in %d", cfg.Sampling.CounterRate)
}

func capSummary(tps int) string {
	if tps == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d/s", tps)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
