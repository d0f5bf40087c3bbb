package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/basetoken/basetoken/material"
	"github.com/basetoken/basetoken/semantic"
	"github.com/basetoken/basetoken/style"
	"github.com/basetoken/basetoken/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("scheme", "S", string(material.TonalSpot), "Palette variant")
	previewCmd.Flags().BoolP("roles", "r", false, "Show the semantic color roles instead of the palettes")
	previewCmd.Flags().BoolP("dark", "d", false, "Show the dark scheme roles")

	lo.Must0(previewCmd.RegisterFlagCompletionFunc("scheme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return material.VariantNames(), cobra.ShellCompDirectiveNoFileComp
	}))
}

var previewCmd = &cobra.Command{
	Use:   "preview [seed]",
	Short: "Preview the palettes or the color roles of a seed in the terminal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		variant, err := material.ParseVariant(lo.Must(cmd.Flags().GetString("scheme")))
		handleErr(err)

		theme, err := material.Generate(args[0], variant)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("roles")) {
			scheme := theme.Light
			if lo.Must(cmd.Flags().GetBool("dark")) {
				scheme = theme.Dark
			}
			cmd.Print(previewRoles(scheme))
			return
		}

		cmd.Print(previewPalettes(theme.Palettes))
	},
}

// swatchWidth fits all tone stops next to a ramp label on one line.
func swatchWidth() int {
	width, _, err := util.TerminalSize()
	if err != nil {
		width = 120
	}
	return util.Max(3, util.Min(6, (width-18)/len(material.ToneStops)))
}

func previewPalettes(palettes material.Palettes) string {
	w := swatchWidth()
	label := style.New().Width(17).Bold(true).Render

	var b strings.Builder
	b.WriteString(label(""))
	for _, tone := range material.ToneStops {
		b.WriteString(style.New().Width(w).Align(lipgloss.Center).Faint(true).Render(strconv.Itoa(tone)))
	}
	b.WriteByte('\n')

	for _, ramp := range material.Ramps() {
		tones, ok := palettes[ramp]
		if !ok {
			continue
		}

		b.WriteString(label(util.TitleCase(string(ramp))))
		for _, tone := range material.ToneStops {
			b.WriteString(style.Swatch(tones[tone], "", w, tone < 50))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func previewRoles(scheme material.SchemeColors) string {
	var b strings.Builder
	group := ""

	for _, role := range semantic.ColorRoles {
		hex, ok := scheme[role.Scheme]
		if !ok {
			continue
		}

		if g := semantic.ColorGroup(role.Name); g != group {
			if group != "" {
				b.WriteByte('\n')
			}
			b.WriteString(style.Title(g) + "\n")
			group = g
		}

		fmt.Fprintf(&b, "%s %s %s\n", style.Swatch(hex, "", 4, false), style.Fg(style.Purple)(role.Name), style.Faint(hex))
	}

	return b.String()
}
