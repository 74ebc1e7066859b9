package main

import (
	"encoding/json"
	"fmt"
	"os"

	zkcommon "github.com/0xPolygon/zk-smt/common"
	"github.com/0xPolygon/zk-smt/config"
	"github.com/0xPolygon/zk-smt/log"
	"github.com/0xPolygon/zk-smt/rpc/client"
	"github.com/0xPolygon/zk-smt/rpc/types"
	"github.com/0xPolygon/zk-smt/smt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
)

// newOperator returns the remote service when --rpc-url is set. The local calculator
// satisfies the same interface.
func newOperator(cliCtx *cli.Context) client.ClientInterface {
	if url := cliCtx.String(config.FlagRPCURL); url != "" {
		log.WithFields("module", zkcommon.CLI).Debugf("sending %s to %s", cliCtx.Command.Name, url)
		return client.NewClient(url)
	}
	return smt.Default()
}

func readWitness(cliCtx *cli.Context, req interface{}) error {
	file := cliCtx.String(config.FlagWitness)
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("error reading witness file %s: %w", file, err)
	}
	if err := json.Unmarshal(data, req); err != nil {
		return fmt.Errorf("error decoding witness file %s: %w", file, err)
	}
	return nil
}

func printRoot(cliCtx *cli.Context, root common.Hash) error {
	out, err := json.Marshal(types.RootResponse{Root: types.Field(root)})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, string(out))
	return err
}

func verifyCmd(cliCtx *cli.Context) error {
	var req types.VerifyRequest
	if err := readWitness(cliCtx, &req); err != nil {
		return err
	}
	siblings, err := req.Siblings.ToSiblings()
	if err != nil {
		return err
	}
	if err := newOperator(cliCtx).Verify(req.Entry.ToSMT(), req.Matching(), siblings, req.Root.Hash()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, "OK")
	return err
}

func addCmd(cliCtx *cli.Context) error {
	var req types.AddRequest
	if err := readWitness(cliCtx, &req); err != nil {
		return err
	}
	siblings, err := req.Siblings.ToSiblings()
	if err != nil {
		return err
	}
	root, err := newOperator(cliCtx).Add(req.Entry.ToSMT(), req.OldRoot.Hash(), siblings)
	if err != nil {
		return err
	}
	return printRoot(cliCtx, root)
}

func deleteCmd(cliCtx *cli.Context) error {
	var req types.DeleteRequest
	if err := readWitness(cliCtx, &req); err != nil {
		return err
	}
	siblings, err := req.Siblings.ToSiblings()
	if err != nil {
		return err
	}
	root, err := newOperator(cliCtx).Delete(req.Entry.ToSMT(), req.OldRoot.Hash(), siblings)
	if err != nil {
		return err
	}
	return printRoot(cliCtx, root)
}

func updateCmd(cliCtx *cli.Context) error {
	var req types.UpdateRequest
	if err := readWitness(cliCtx, &req); err != nil {
		return err
	}
	siblings, err := req.Siblings.ToSiblings()
	if err != nil {
		return err
	}
	root, err := newOperator(cliCtx).Update(req.NewValue.Hash(), req.OldEntry.ToSMT(), req.OldRoot.Hash(), siblings)
	if err != nil {
		return err
	}
	return printRoot(cliCtx, root)
}
