package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	testenv "go-testenv"
)

type infoOptions struct {
	Format string
}

func newInfoCommand() *cobra.Command {
	opts := infoOptions{}
	cmd := &cobra.Command{
		Use:   "info [start-dir]",
		Short: "Print OS and environment details for the discovered root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text or yaml)")
	return cmd
}

func runInfo(cmd *cobra.Command, args []string, opts infoOptions) error {
	locator, err := testenv.New(startDir(args))
	if err != nil {
		return err
	}
	switch opts.Format {
	case "text":
		locator.Dump(cmd.OutOrStdout())
	case "yaml":
		encoded, err := yaml.Marshal(locator.Report())
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode environment report").
				WithCause(err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(encoded))
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown format: %s", opts.Format))
	}
	return nil
}
