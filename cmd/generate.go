package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/basetoken/basetoken/color"
	"github.com/basetoken/basetoken/config"
	"github.com/basetoken/basetoken/generator"
	"github.com/basetoken/basetoken/history"
	"github.com/basetoken/basetoken/icon"
	"github.com/basetoken/basetoken/key"
	"github.com/basetoken/basetoken/log"
	"github.com/basetoken/basetoken/material"
	"github.com/basetoken/basetoken/openprops"
	"github.com/basetoken/basetoken/style"
	"github.com/basetoken/basetoken/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("seed", "s", "", "Seed color as hex, e.g. #FFDE3F")
	generateCmd.Flags().StringP("output", "o", "", "Output directory (default from output.dir)")
	generateCmd.Flags().StringP("format", "f", "", "Color format: oklch, hex, hsl, rgb (default from format)")
	generateCmd.Flags().StringP("scheme", "S", "", "Palette variant (default from generate.scheme)")
	generateCmd.Flags().StringP("config", "c", "", "Read the token config from this file")
	generateCmd.Flags().Bool("no-cache", false, "Always fetch Open Props instead of using the cache")

	lo.Must0(generateCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return color.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(generateCmd.RegisterFlagCompletionFunc("scheme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return material.VariantNames(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(generateCmd.RegisterFlagCompletionFunc("seed", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return history.SuggestSeeds(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Generate the token files from a seed color",
	Aliases: []string{"gen"},
	Example: "  basetoken generate --seed '#FFDE3F'\n  basetoken gen -s 6750A4 -S vibrant -f hex -o ./styles/tokens",
	Run: func(cmd *cobra.Command, args []string) {
		if path := lo.Must(cmd.Flags().GetString("config")); path != "" {
			handleErr(config.Load(path))
		}

		partial, err := config.FromViper()
		handleErr(err)
		cfg := config.Resolve(partial)

		opts, err := generateOptions(cmd)
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var src openprops.Source = openprops.NewHTTPSource(cfg.OpenProps.BaseURL)
		hours := viper.GetInt(key.OpenPropsCacheHours)
		if hours > 0 && !lo.Must(cmd.Flags().GetBool("no-cache")) {
			src = openprops.NewCachedSource(src, cfg.OpenProps.BaseURL, time.Duration(hours)*time.Hour)
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Generating tokens from %s...", icon.Get(icon.Progress), opts.Seed))
		result, err := generator.Run(ctx, cfg, opts, src)
		erase()
		handleErr(err)

		for _, f := range result.Files {
			if f.Skipped {
				cmd.Printf("%s %s %s\n", icon.Get(icon.Skip), style.Faint(f.Path), style.Faint("(kept)"))
			} else {
				cmd.Printf("%s %s\n", icon.Get(icon.File), f.Path)
			}
		}

		cmd.Printf(
			"%s wrote %s for %s\n",
			style.Fg(style.Green)(icon.Get(icon.Success)),
			util.Quantify(result.Written(), "file", "files"),
			style.Fg(style.Yellow)(result.Seed),
		)
	},
}

func generateOptions(cmd *cobra.Command) (generator.Options, error) {
	var opts generator.Options

	seed := lo.Must(cmd.Flags().GetString("seed"))
	if seed == "" {
		var err error
		if seed, err = promptSeed(); err != nil {
			return opts, err
		}
	}
	opts.Seed = seed

	if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
		opts.Output = mo.Some(filepath.Clean(output))
	}

	if name := lo.Must(cmd.Flags().GetString("format")); name != "" {
		format, err := color.ParseFormat(name)
		if err != nil {
			return opts, err
		}
		opts.Format = mo.Some(format)
	}

	scheme := lo.Must(cmd.Flags().GetString("scheme"))
	if scheme == "" {
		scheme = viper.GetString(key.GenerateScheme)
	}
	variant, err := material.ParseVariant(scheme)
	if err != nil {
		return opts, err
	}
	opts.Scheme = variant

	log.Infof("generating seed=%s scheme=%s", opts.Seed, opts.Scheme)
	return opts, nil
}

func promptSeed() (string, error) {
	previous := history.SuggestSeeds("")

	var seed string
	err := survey.AskOne(
		&survey.Input{
			Message: "Seed color",
			Help:    "A hex color such as #FFDE3F. Previous seeds are suggested with tab.",
			Default: lo.FirstOr(previous, ""),
			Suggest: history.SuggestSeeds,
		},
		&seed,
		survey.WithValidator(survey.Required),
		survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			if _, err := color.NormalizeHex(strings.TrimSpace(s)); err != nil {
				return errors.New("enter a 3 or 6 digit hex color")
			}
			return nil
		}),
	)

	return strings.TrimSpace(seed), err
}
