package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(HandleExitError(os.Stderr, NewRootCommand().Execute()))
}

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridcalc",
		Short:         "Spreadsheet computation service and interactive terminal frontend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "path to a YAML config file")

	root.AddCommand(NewServeCommand(), NewReplCommand())

	return root
}

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API service",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCommandConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return RunApp(ctx, config, cmd.ErrOrStderr())
		},
	}
}

func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl [rows cols]",
		Short: "Run an interactive spreadsheet session",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or rows and cols, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCommandConfig(cmd)
			if err != nil {
				return err
			}

			rows, cols := config.DefaultRows, config.DefaultCols
			if len(args) == 2 {
				if rows, err = parseDimension(args[0], "rows"); err != nil {
					return err
				}
				if cols, err = parseDimension(args[1], "cols"); err != nil {
					return err
				}
			}
			if err = ValidateDims(rows, cols); err != nil {
				return err
			}

			sheet, err := NewSheet(rows, cols)
			if err != nil {
				return err
			}

			return NewRepl(sheet, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
}

func loadCommandConfig(cmd *cobra.Command) (Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return Config{}, err
	}
	return LoadConfig(configPath)
}

func parseDimension(arg string, name string) (int, error) {
	value, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, arg)
	}
	return value, nil
}
