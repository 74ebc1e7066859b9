package main

import (
	"strings"

	"github.com/0xPolygon/zk-smt/config"
	"github.com/urfave/cli/v2"
)

func configCmd(cliCtx *cli.Context) error {
	defaultConfig := strings.Builder{}
	defaultConfig.WriteString(config.DefaultVars)
	defaultConfig.WriteString(config.DefaultValues)

	_, err := cliCtx.App.Writer.Write([]byte(defaultConfig.String()))
	return err
}
