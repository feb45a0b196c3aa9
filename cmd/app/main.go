package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal"
	"github.com/starford/ansuz/internal/apperr"
	pkgconfig "github.com/starford/ansuz/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// action adapts a checker entry point to a CLI action, mapping validation
// failures to exit code 1 without the error-log noise a real fault gets.
func action(run func(context.Context, ...internal.Option) error, extra ...func(*cli.Command) []internal.Option) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opts := []internal.Option{internal.WithConfig(cfg)}
		for _, fn := range extra {
			opts = append(opts, fn(cmd)...)
		}
		if err := run(ctx, opts...); err != nil {
			if errors.Is(err, apperr.ErrValidationFailed) {
				return cli.Exit("", 1)
			}
			return err
		}
		return nil
	}
}

func main() {
	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: "ansuz.yaml",
		Value:       "ansuz.yaml",
		Sources:     cli.EnvVars("APP_CONFIG_FILE"),
	}

	cmd := &cli.Command{
		Name:  "ansuz",
		Usage: "Structural validation for agent-skill content packages",
		Flags: []cli.Flag{configFlag},
		Commands: []*cli.Command{
			{
				Name:   "skills",
				Usage:  "Validate skill document frontmatter metadata",
				Action: action(internal.RunMetadata),
			},
			{
				Name:   "refs",
				Usage:  "Check Related Skills cross-references",
				Action: action(internal.RunRefs),
			},
			{
				Name:  "approaches",
				Usage: "Check that in-scope skills document both UI and code approaches",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Print the matched fragments for every in-scope skill",
					},
				},
				Action: action(internal.RunApproaches, func(cmd *cli.Command) []internal.Option {
					return []internal.Option{internal.WithVerbose(cmd.Bool("verbose"))}
				}),
			},
			{
				Name:   "check",
				Usage:  "Run all checkers in sequence",
				Action: action(internal.RunAll),
			},
			{
				Name:   "watch",
				Usage:  "Re-run all checkers whenever a skill document changes",
				Action: action(internal.RunWatch),
			},
			{
				Name:   "mcp",
				Usage:  "Serve the skill catalog and validators over MCP stdio",
				Action: action(internal.RunMCP),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
