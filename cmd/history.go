package cmd

import (
	"encoding/json"

	"github.com/basetoken/basetoken/history"
	"github.com/basetoken/basetoken/icon"
	"github.com/basetoken/basetoken/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Print the runs as JSON")
	historyCmd.Flags().BoolP("clear", "c", false, "Forget every recorded run")
	historyCmd.MarkFlagsMutuallyExclusive("json", "clear")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous generation runs",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			cmd.Printf("%s history cleared\n", style.Fg(style.Green)(icon.Get(icon.Success)))
			return
		}

		runs, err := history.List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(runs))
			return
		}

		if len(runs) == 0 {
			cmd.Println(style.Faint("No runs yet"))
			return
		}

		for _, run := range runs {
			cmd.Printf(
				"%s  %s  %s %s  %s\n",
				style.Faint(run.At.Format("2006-01-02 15:04")),
				style.Fg(style.Yellow)(run.Seed),
				style.Fg(style.Purple)(run.Variant),
				style.Faint(run.Format),
				run.Output,
			)
		}
	},
}
