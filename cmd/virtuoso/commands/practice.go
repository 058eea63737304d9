package commands

import (
	"github.com/spf13/cobra"

	"github.com/handiism/virtuoso/internal/theory"
	"github.com/handiism/virtuoso/internal/tui"
)

var practiceOpts struct {
	root  string
	scale string
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Browse exercises interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		root, err := parseRoot(practiceOpts.root)
		if err != nil {
			return err
		}
		t, err := theory.ParseScaleType(practiceOpts.scale)
		if err != nil {
			return err
		}
		return tui.Run(tui.Options{
			Settings: settings,
			Root:     root,
			Type:     t,
			Verbose:  verbose,
		})
	},
}

func init() {
	practiceCmd.Flags().StringVarP(&practiceOpts.root, "root", "r", "C", "starting root")
	scaleFlag(practiceCmd, &practiceOpts.scale)
}
