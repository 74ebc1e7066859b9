package main

import (
	"os"

	zksmt "github.com/0xPolygon/zk-smt"
	"github.com/0xPolygon/zk-smt/config"
	"github.com/0xPolygon/zk-smt/log"
	"github.com/urfave/cli/v2"
)

const appName = "zksmt"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: false,
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: zksmt_config.toml)",
		Required: false,
	}
	witnessFlag = cli.StringFlag{
		Name:     config.FlagWitness,
		Aliases:  []string{"w"},
		Usage:    "JSON `FILE` with the request and its witness",
		Required: true,
	}
	rpcURLFlag = cli.StringFlag{
		Name:     config.FlagRPCURL,
		Usage:    "Send the request to the smt service at `URL` instead of computing it locally",
		Required: false,
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Sparse Merkle tree proof verification and root updates"
	app.Version = zksmt.Version
	opFlags := []cli.Flag{&witnessFlag, &rpcURLFlag}
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "config",
			Aliases: []string{},
			Usage:   "Print the default configuration",
			Action:  configCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the smt JSON-RPC service",
			Action:  start,
			Flags:   []cli.Flag{&configFileFlag, &saveConfigFlag},
		},
		{
			Name:   "verify",
			Usage:  "Verify a membership or non membership proof",
			Action: verifyCmd,
			Flags:  opFlags,
		},
		{
			Name:   "add",
			Usage:  "Compute the root after inserting an entry",
			Action: addCmd,
			Flags:  opFlags,
		},
		{
			Name:   "delete",
			Usage:  "Compute the root after removing an entry",
			Action: deleteCmd,
			Flags:  opFlags,
		},
		{
			Name:   "update",
			Usage:  "Compute the root after changing the value of an entry",
			Action: updateCmd,
			Flags:  opFlags,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
