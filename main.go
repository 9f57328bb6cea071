// Package main is the entry point of hyfetch.
package main

import (
	"github.com/hyfetch-cli/hyfetch/cmd"
	"github.com/hyfetch-cli/hyfetch/config"
	"github.com/hyfetch-cli/hyfetch/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
