package cmd

import (
	"fmt"

	"github.com/basetoken/basetoken/history"
	"github.com/basetoken/basetoken/icon"
	"github.com/basetoken/basetoken/style"
	"github.com/basetoken/basetoken/util"
	"github.com/basetoken/basetoken/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is something the clear command can remove.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

var clearTargets = []clearTarget{
	{"open props cache", "openprops", mo.Some("o"), func() error { return util.Delete(where.OpenProps()) }},
	{"run history", "history", mo.Some("s"), history.Clear},
	{"logs", "logs", mo.Some("l"), func() error { return util.Delete(where.Logs()) }},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached Open Props files, the run history or the logs",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			erase()
			handleErr(err)
			cmd.Printf("%s %s cleared\n", style.Fg(style.Green)(icon.Get(icon.Success)), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
