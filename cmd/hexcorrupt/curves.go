package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexcorrupt/internal/config"
)

var (
	flagLevels   int
	flagDumpYAML bool
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Print goals and turn budgets per level",
	Long: `Print the level curves of the active config: the piece count to grow
to, the piece count to thin down to, and the turns allowed for each phase.

With --yaml the resolved config is printed as YAML instead, a starting
point for a custom --config file.

Examples:
  hexcorrupt curves
  hexcorrupt curves --levels 20
  hexcorrupt curves --yaml > ~/.hexcorrupt/configs/hexcorrupt.yaml`,
	Args: cobra.NoArgs,
	RunE: runCurves,
}

func init() {
	curvesCmd.Flags().IntVar(&flagLevels, "levels", 10, "Number of levels to print")
	curvesCmd.Flags().BoolVar(&flagDumpYAML, "yaml", false, "Print the resolved config as YAML")
}

func runCurves(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagDumpYAML {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	fmt.Fprintf(out, "Board radius %d, %d ms per turn\n\n", cfg.Board.Radius, cfg.Turn.LengthMS)
	fmt.Fprintf(out, "  %-5s  %-9s  %-10s  %-9s  %s\n", "Level", "Grow to", "Grow turns", "Thin to", "Thin turns")
	fmt.Fprintf(out, "  %-5s  %-9s  %-10s  %-9s  %s\n", "-----", "-------", "----------", "-------", "----------")
	c := cfg.Curves
	for level := 1; level <= flagLevels; level++ {
		fmt.Fprintf(out, "  %-5d  %-9d  %-10d  %-9d  %d\n", level,
			c.GrowGoals.Eval(level), c.GrowTurns.Eval(level),
			c.KillGoals.Eval(level), c.KillTurns.Eval(level))
	}
	return nil
}
