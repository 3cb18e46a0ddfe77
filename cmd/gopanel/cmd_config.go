package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sadopc/gopanel/internal/config"
)

func newConfigCmd(f *rootFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration gopanel would run with, after applying the
config file and any flags, as YAML or TOML. Files ending in .toml are
read as TOML, everything else as YAML.

Examples:
  gopanel config
  gopanel config --min-width 30 > ~/.config/gopanel/config.yaml
  gopanel config --format toml > gopanel.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			fmtOut, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := config.MarshalFormat(cfg, fmtOut)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or toml")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path := f.configPath
				if path == "" {
					path = config.Path()
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate <file> [files...]",
			Short: "Validate config files",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				errs := validateFiles(args)
				failed := 0
				for i, path := range args {
					if errs[i] != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %v\n", path, errs[i])
						failed++
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "OK   %s\n", path)
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d config files invalid", failed, len(args))
				}
				return nil
			},
		},
	)
	return cmd
}

// validateFiles loads every path in parallel and returns their errors in
// argument order.
func validateFiles(paths []string) []error {
	errs := make([]error, len(paths))
	var g errgroup.Group
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			_, errs[i] = config.LoadFile(path)
			return nil
		})
	}
	_ = g.Wait()
	return errs
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gopanel %s (%s) built %s\n", version, commit, date)
		},
	}
}
