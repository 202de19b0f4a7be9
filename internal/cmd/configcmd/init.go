package configcmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/tagmark/internal/config"
	"github.com/open-cli-collective/tagmark/internal/view"
)

// NewCmdInit creates the config init command.
func NewCmdInit() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively create the configuration file",
		Long: `Create the tagmark configuration file.

This command walks through the available options and saves the result
to ~/.config/tagmark/config.yml.`,
		Example: `  # Interactive setup
  tagmark config init`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit()
		},
	}
}

func runInit() error {
	configPath := config.DefaultConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Markdown flavor").
				Description("Preprocess markdown before parsing tag markup").
				Options(
					huh.NewOption("off (tag markup only)", ""),
					huh.NewOption("github (inline spans)", "github"),
					huh.NewOption("document (full block structure)", "document"),
				).
				Value(&cfg.Flavor),

			huh.NewConfirm().
				Title("Strict mode").
				Description("Fail on malformed or unclosed tags instead of recovering").
				Value(&cfg.Strict),

			huh.NewConfirm().
				Title("Disable color").
				Description("Never emit ANSI escapes when rendering").
				Value(&cfg.NoColor),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	view.NewRenderer(view.FormatPlain, false).Success("Configuration saved to " + configPath)
	return nil
}
