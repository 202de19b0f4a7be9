package configcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/tagmark/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current tagmark configuration with value source indicators.`,
		Example: `  # Show current config
  tagmark config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(noColor)
		},
	}

	return cmd
}

func runShow(noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Printf("%-14s", label+":")
		if value == "" {
			_, _ = dim.Println("-")
			return
		}

		fmt.Print(value)

		source := "config"
		if fileErr != nil {
			source = "-"
		}
		if v := os.Getenv(envVar); v != "" && v == value {
			source = envVar
		}
		if fileValue != value && source == "config" {
			source = "-"
		}

		_, _ = dim.Printf("  (source: %s)\n", source)
	}

	printField("Flavor", cfg.Flavor, fileCfg.Flavor, "TAGMARK_FLAVOR")
	printField("Strict", formatBool(cfg.Strict), formatBool(fileCfg.Strict), "TAGMARK_STRICT")
	printField("No color", formatBool(cfg.NoColor), formatBool(fileCfg.NoColor), "TAGMARK_NO_COLOR")
	printField("Max depth", formatInt(cfg.MaxDepth), formatInt(fileCfg.MaxDepth), "TAGMARK_MAX_DEPTH")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "TAGMARK_OUTPUT")

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found)")
	}

	return nil
}

func formatBool(b bool) string {
	if !b {
		return ""
	}
	return "true"
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
