// Package main is the entry point for ttygif.
package main

import (
	"github.com/samber/lo"
	"github.com/ttygif/ttygif/cmd"
	"github.com/ttygif/ttygif/config"
	"github.com/ttygif/ttygif/internal/cache"
	"github.com/ttygif/ttygif/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
