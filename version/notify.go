package version

import (
	"context"
	"fmt"
	"time"

	"github.com/basetoken/basetoken/constant"
	"github.com/basetoken/basetoken/icon"
	"github.com/basetoken/basetoken/key"
	"github.com/basetoken/basetoken/style"
	"github.com/basetoken/basetoken/util"
	"github.com/spf13/viper"
)

// Notify prints a short notice when a newer release exists.
// It stays silent when the check is disabled or fails.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if newer, err := Newer(latest, constant.Version); err != nil || !newer {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(style.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/basetoken/basetoken/releases/tag/v"+latest),
	)
}
