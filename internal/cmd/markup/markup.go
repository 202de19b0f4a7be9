// Package markup provides the text-processing commands for tagmark.
package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/tagmark/internal/config"
	"github.com/open-cli-collective/tagmark/pkg/tagmark"
)

// engineOptions collects the flags shared by every command that parses
// tag markup.
type engineOptions struct {
	strict        bool
	markdown      string
	maxDepth      int
	tags          []string
	unknownAsText bool
	placeholders  []string
	positional    []string
}

func addEngineFlags(cmd *cobra.Command, opts *engineOptions) {
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on any malformed or unknown tag")
	cmd.Flags().StringVar(&opts.markdown, "markdown", "", "markdown flavor to preprocess: github, document")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "maximum tag nesting depth (0 = default)")
	cmd.Flags().StringSliceVar(&opts.tags, "tags", nil, "restrict parsing to these tags (default: all standard tags)")
	cmd.Flags().BoolVar(&opts.unknownAsText, "unknown-as-text", false, "keep unknown tags as literal text instead of failing")
	cmd.Flags().StringArrayVarP(&opts.placeholders, "placeholder", "p", nil, "placeholder binding as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.positional, "arg", nil, "positional value for {0}, {1}, ... (repeatable)")
}

// engine builds a parse engine from the config file baseline with flag
// overrides on top.
func (o *engineOptions) engine(cfg *config.Config) (*tagmark.Engine, error) {
	b, err := cfg.Builder()
	if err != nil {
		return nil, err
	}

	if o.markdown != "" {
		flavor, err := tagmark.ParseFlavor(o.markdown)
		if err != nil {
			return nil, err
		}
		b.Markdown(flavor)
	}
	if o.strict {
		b.Strict()
	}
	if o.maxDepth > 0 {
		b.MaxDepth(o.maxDepth)
	}
	if len(o.tags) > 0 {
		b.Transformations(o.tags...)
	}
	if o.unknownAsText {
		b.UnknownTagsAsText()
	}

	return b.Build(), nil
}

// parseOptions converts the placeholder flags into parse options.
func (o *engineOptions) parseOptions() ([]tagmark.ParseOption, error) {
	var opts []tagmark.ParseOption

	if len(o.placeholders) > 0 {
		pairs := make(map[string]string, len(o.placeholders))
		for _, p := range o.placeholders {
			name, value, ok := strings.Cut(p, "=")
			if !ok {
				return nil, fmt.Errorf("invalid placeholder %q (expected name=value)", p)
			}
			pairs[name] = value
		}
		opts = append(opts, tagmark.Placeholders(pairs))
	}

	if len(o.positional) > 0 {
		opts = append(opts, tagmark.Positional(o.positional...))
	}

	return opts, nil
}

// readInput returns the joined arguments, or the full stdin contents
// when no arguments were given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// loadConfig reads the config file named by the global --config flag,
// falling back to the default path, with env overrides applied.
func loadConfig(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, _ := config.LoadWithEnv(path)
	return cfg
}
