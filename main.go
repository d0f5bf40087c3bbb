// Package main is the entry point of basetoken.
package main

import (
	"github.com/basetoken/basetoken/cmd"
	"github.com/basetoken/basetoken/config"
	"github.com/basetoken/basetoken/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
