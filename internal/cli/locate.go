package cli

import (
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/spf13/cobra"

	testenv "go-testenv"
)

type locateOptions struct {
	Segments []string
	Parent   bool
}

func newLocateCommand() *cobra.Command {
	opts := locateOptions{}
	cmd := &cobra.Command{
		Use:   "locate [start-dir]",
		Short: "Print the build root discovered from a start directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, args, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Segments, "rel", nil, "Path segments joined onto the discovered root")
	cmd.Flags().BoolVar(&opts.Parent, "parent", false, "Resolve against the parent of the discovered root")
	return cmd
}

func runLocate(cmd *cobra.Command, args []string, opts locateOptions) error {
	locator, err := testenv.New(startDir(args))
	if err != nil {
		return err
	}
	assert.NotEmpty(cmd.Context(), locator.ArtifactRoot(), "artifact root must be set after construction")

	result := locator.RelativeToArtifact(opts.Segments...)
	if opts.Parent {
		result, err = locator.RelativeToArtifactParent(opts.Segments...)
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func startDir(args []string) string {
	if len(args) == 1 && args[0] != "" {
		return args[0]
	}
	return "."
}
