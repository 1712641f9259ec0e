// Package cmd wires the pathbench CLI: one cobra subcommand per query
// strategy, flags bound through viper so a config file or environment
// variables can supply the same knobs, and a prometheus summary exposed
// over /metrics for wall-clock query duration.
package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	metricsAddr string
	log         = newLogger(os.Stdout)
)

var rootCmd = &cobra.Command{
	Use:   "pathbench",
	Short: "Benchmark/demo driver for the pathkit shortest-path engines",
	Long: `pathbench runs a single shortest-path query against a JSON adjacency-map
graph file, using one of three query strategies (dijkstra, bidirectional,
ch), and reports wall-clock duration alongside the result.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if metricsAddr != "" {
			go serveMetrics(metricsAddr)
		}
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a pathbench config file (yaml/json/toml)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve prometheus metrics at this address (e.g. :9100)")
}

// bindRunFlags registers the flags shared by every query subcommand and
// returns a closure that resolves them into a runConfig once cobra has
// parsed args, merged with any config file and PATHBENCH_* environment
// overrides.
func bindRunFlags(cmd *cobra.Command) func() (*runConfig, error) {
	var (
		graphFile string
		source    string
		target    string
		variant   string
		skew      float64
	)
	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "path to a JSON adjacency-map graph file (required)")
	cmd.Flags().StringVarP(&source, "source", "s", "", "source node id (required)")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target node id (required for bidirectional/ch; optional for dijkstra, where it limits output to that node)")
	cmd.Flags().StringVar(&variant, "variant", "binary", "queue variant: binary, fibonacci, or radix (ignored for ch)")
	cmd.Flags().Float64Var(&skew, "skew", 0.5, "bidirectional frontier skew in [0,1] (ignored outside bidirectional)")

	return func() (*runConfig, error) {
		v := viper.New()
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return nil, fmt.Errorf("pathbench: binding flags: %w", err)
		}
		cfg, err := loadConfig(v, cfgFile)
		if err != nil {
			return nil, err
		}
		if cfg.GraphFile == "" || cfg.Source == "" {
			return nil, fmt.Errorf("pathbench: --graph and --source are required")
		}
		return cfg, nil
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("serving prometheus metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("metrics server stopped: %v", err)
	}
}
