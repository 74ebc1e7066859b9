package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	zksmt "github.com/0xPolygon/zk-smt"
	zkcommon "github.com/0xPolygon/zk-smt/common"
	"github.com/0xPolygon/zk-smt/config"
	"github.com/0xPolygon/zk-smt/log"
	"github.com/0xPolygon/zk-smt/rpc"
	"github.com/0xPolygon/zk-smt/smt"
	"github.com/urfave/cli/v2"
)

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		zksmt.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	server := createRPC(c.RPC)
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal(err)
		}
	}()

	waitSignal()

	return nil
}

func createRPC(cfg jRPC.Config) *jRPC.Server {
	logger := log.WithFields("module", zkcommon.RPC)
	services := []jRPC.Service{
		{
			Name:    rpc.SMT,
			Service: rpc.NewSMTEndpoints(logger, smt.Default()),
		},
	}
	logger.Infof("serving namespace %s on %s:%d", rpc.SMT, cfg.Host, cfg.Port)

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

func logVersion() {
	log.Infow("Starting application",
		// version is already logged by default
		"gitRevision", zksmt.GitRev,
		"gitBranch", zksmt.GitBranch,
		"goVersion", runtime.Version(),
		"built", zksmt.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}

func waitSignal() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	sig := <-signals
	log.Infof("received %s, terminating application gracefully...", sig)
}
