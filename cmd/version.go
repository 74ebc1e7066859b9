package main

import (
	zksmt "github.com/0xPolygon/zk-smt"
	"github.com/urfave/cli/v2"
)

func versionCmd(cliCtx *cli.Context) error {
	zksmt.PrintVersion(cliCtx.App.Writer)
	return nil
}
