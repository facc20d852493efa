package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML. Save it to
~/.snake/config.yaml or ./configs/snake.yaml, or pass it with --config,
to change the speed curve, scoring and food margin.

With --resolved, print the configuration a game would use after applying
--config and --difficulty.

Examples:
  snake config > ~/.snake/config.yaml
  snake config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagResolved {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the key bindings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printKeys(cmd.OutOrStdout())
	},
}

func printKeys(w io.Writer) {
	for _, group := range tui.DefaultKeyMap().FullHelp() {
		for _, b := range group {
			h := b.Help()
			fmt.Fprintf(w, "  %-8s %s\n", h.Key, h.Desc)
		}
	}
}
