package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/OpenTraceLab/circe/internal/config"
	"github.com/OpenTraceLab/circe/pkg/circuit"
	"github.com/OpenTraceLab/circe/pkg/schematic"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "circe",
	Short: "Circe - schematic capture and SPICE netlisting",
	Long: `Circe builds circuits from devices, wires and net labels, infers net
names from connectivity and writes SPICE netlists.

Examples:
  circe netlist divider.sch            # Write netlist.cir
  circe netlist divider.sch --stdout   # Print the netlist
  circe info divider.sch               # Show devices and nets
  circe op divider.sch op.txt          # Annotate with simulation results
  circe shell                          # Drive the editor from stdin`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the user config dir)")
}

func newLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "circe: ", log.Ltime)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// newCircuit returns an empty circuit with the configured device defaults.
func newCircuit(cfg *config.Config) *circuit.Circuit {
	c := circuit.New(newLogger())
	cfg.ApplyDefaults(c.Devices())
	return c
}

// loadCircuit builds a circuit from a schematic script.
func loadCircuit(cfg *config.Config, filename string) (*circuit.Circuit, error) {
	sch, err := schematic.ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error parsing schematic: %w", err)
	}
	c := newCircuit(cfg)
	sch.Apply(c)
	return c, nil
}
