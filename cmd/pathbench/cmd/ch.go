package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wayfare-dev/pathkit/ch"
)

var chCmd = &cobra.Command{
	Use:   "ch",
	Short: "Preprocess a graph file into a Contraction Hierarchy and query it",
	Example: `  pathbench ch -g graph.json -s A -t D`,
	RunE:    runCH,
}

func init() {
	rootCmd.AddCommand(chCmd)
}

func runCH(cmd *cobra.Command, args []string) error {
	resolve := bindRunFlags(cmd)
	cfg, err := resolve()
	if err != nil {
		return err
	}
	if cfg.Target == "" {
		return fmt.Errorf("pathbench: --target is required for ch")
	}
	g, err := loadGraphFile(cfg.GraphFile)
	if err != nil {
		return err
	}

	runID := uuid.New()
	h := ch.New[string](g)

	preStart := time.Now()
	h.Preprocess()
	log.Info("run %s: preprocessing completed in %s", runID, time.Since(preStart))

	stop := runTimer("ch")
	d := h.Query(cfg.Source, cfg.Target)
	elapsed := stop()

	log.Info("run %s: ch query %s->%s completed in %s", runID, cfg.Source, cfg.Target, elapsed)
	if d == math.MaxInt64 {
		fmt.Printf("%s -> %s: unreachable\n", cfg.Source, cfg.Target)
		return nil
	}
	fmt.Printf("%s -> %s: %d\n", cfg.Source, cfg.Target, d)

	path := h.Unpack(cfg.Source, cfg.Target)
	if path != nil {
		fmt.Printf("path: %v\n", path)
	}
	return nil
}
