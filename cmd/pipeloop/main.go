// Command pipeloop reads a pipe grid and prints how many steps along the
// loop the farthest cell lies from the start.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/internal/logging"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/supervisor"
)

type options struct {
	configPath string
	verbose    bool
	verify     bool
	maxRounds  int

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "pipeloop [input-file]",
		Short: "Find the farthest point of the pipe loop",
		Long: `pipeloop reads a grid of pipe symbols (|-LJ7F.S), finds the loop through S
and walks it from both ends at once, one goroutine per direction. It prints
the number of steps from S to the cell where the walkers meet.

Use "-" as the input file to read from stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.init(cmd, args)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
		RunE: o.run,
	}

	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&o.verify, "verify", false, "cross-check against a sequential trace of the loop")
	cmd.Flags().IntVar(&o.maxRounds, "max-rounds", 0, "stop after this many rounds (0 = unlimited)")
	return cmd
}

// init loads the config file, applies flag and argument overrides and
// builds the logger.
func (o *options) init(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cmd.Flags().Changed("verify") {
		cfg.Verify = o.verify
	}
	if cmd.Flags().Changed("max-rounds") {
		cfg.MaxRounds = o.maxRounds
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	o.logger, err = logging.New(cfg.Log, o.verbose)
	return err
}

func (o *options) run(cmd *cobra.Command, _ []string) error {
	g, err := o.readGrid(cmd.InOrStdin())
	if err != nil {
		return err
	}
	o.logger.Debug("grid loaded",
		zap.String("input", o.cfg.Input),
		zap.Int("width", g.Width),
		zap.Int("height", g.Height))

	s := supervisor.New(
		supervisor.WithLogger(o.logger),
		supervisor.WithMaxRounds(o.cfg.MaxRounds),
	)
	steps, err := s.Run(cmd.Context(), g)
	if err != nil {
		return fmt.Errorf("day10 part1: %w", err)
	}

	if o.cfg.Verify {
		if err := verify(g, steps); err != nil {
			return err
		}
		o.logger.Info("verified against sequential trace", zap.Int("steps", steps))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "day10 - part1: %d\n", steps)
	return nil
}

func (o *options) readGrid(stdin io.Reader) (*pipegrid.PipeGrid, error) {
	if o.cfg.Input == "-" {
		return pipegrid.Parse(stdin)
	}
	f, err := os.Open(o.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return pipegrid.Parse(f)
}

// verify checks steps is half the loop length measured sequentially.
func verify(g *pipegrid.PipeGrid, steps int) error {
	start, err := g.FindStart()
	if err != nil {
		return err
	}
	length, err := g.TraceLoop(start)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if length != 2*steps {
		return fmt.Errorf("verify: walkers met after %d steps, loop has %d cells", steps, length)
	}
	return nil
}
