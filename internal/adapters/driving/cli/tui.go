package cli

import (
	"github.com/spf13/cobra"

	"github.com/trident-labs/trident-cli/internal/adapters/driving/tui"
	"github.com/trident-labs/trident-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [pattern] [path]",
	Short: "Interactive search in the terminal",
	Long: `Opens an interactive screen with a pattern input and a scrollable
result view. Search flags (case, type, globs, log) apply to every search
run from the screen.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(flagVerbose)

		// An empty pattern is allowed here; the screen starts idle.
		if len(args) == 0 {
			args = []string{""}
		}
		req, err := buildRequest(cmd, args)
		if err != nil {
			return err
		}

		ports := &tui.Ports{Search: newSearchService()}
		return tui.Run(cmd.Context(), ports, req)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
