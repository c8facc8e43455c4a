// Package main is the entry point for the monkeypaint application.
package main

import (
	"github.com/samber/lo"

	"github.com/monkeypaint-cli/monkeypaint/cmd"
	"github.com/monkeypaint-cli/monkeypaint/config"
	"github.com/monkeypaint-cli/monkeypaint/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
