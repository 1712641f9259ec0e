package cmd

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wayfare-dev/pathkit/bidijkstra"
)

var bidirectionalCmd = &cobra.Command{
	Use:   "bidirectional",
	Short: "Run skew-balanced bidirectional Dijkstra against a graph file",
	Example: `  pathbench bidirectional -g graph.json -s A -t D
  pathbench bidirectional -g graph.json -s A -t D --skew 0.25`,
	RunE: runBidirectional,
}

func init() {
	rootCmd.AddCommand(bidirectionalCmd)
}

func runBidirectional(cmd *cobra.Command, args []string) error {
	resolve := bindRunFlags(cmd)
	cfg, err := resolve()
	if err != nil {
		return err
	}
	if cfg.Target == "" {
		return fmt.Errorf("pathbench: --target is required for bidirectional")
	}
	variant, err := parseVariant(cfg.Variant)
	if err != nil {
		return err
	}
	g, err := loadGraphFile(cfg.GraphFile)
	if err != nil {
		return err
	}

	runID := uuid.New()
	search := bidijkstra.New[string](g, bidijkstra.WithQueueVariant(variant), bidijkstra.WithSkew(cfg.Skew))
	stop := runTimer("bidirectional")
	d := search.FindShortestPath(cfg.Source, cfg.Target)
	elapsed := stop()

	log.Info("run %s: bidirectional %s->%s completed in %s", runID, cfg.Source, cfg.Target, elapsed)
	if d == math.MaxInt64 {
		fmt.Printf("%s -> %s: unreachable\n", cfg.Source, cfg.Target)
		return nil
	}
	fmt.Printf("%s -> %s: %d\n", cfg.Source, cfg.Target, d)
	return nil
}
