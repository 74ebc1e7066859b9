package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/zk-smt/rpc/types"
	"github.com/0xPolygon/zk-smt/smt"
	"github.com/ethereum/go-ethereum/common"
)

var jSONRPCCall = rpc.JSONRPCCall

// ErrRPC is returned when the server answers a call with an error object
var ErrRPC = errors.New("rpc error")

// ClientInterface is the interface that defines the implementation of all the smt endpoints
type ClientInterface interface {
	Verify(entry smt.Entry, matching *smt.Entry, siblings smt.Siblings, root common.Hash) error
	Add(entry smt.Entry, oldRoot common.Hash, siblings smt.Siblings) (common.Hash, error)
	Delete(entry smt.Entry, oldRoot common.Hash, siblings smt.Siblings) (common.Hash, error)
	Update(newValue common.Hash, oldEntry smt.Entry, oldRoot common.Hash, siblings smt.Siblings) (common.Hash, error)
	LeafHash(entry smt.Entry) (common.Hash, error)
}

// Client wraps all the available endpoints of the smt server
type Client struct {
	url string
}

// NewClient returns a client ready to be used
func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}

func (c *Client) call(method string, result interface{}, params ...interface{}) error {
	response, err := jSONRPCCall(c.url, method, params...)
	if err != nil {
		return err
	}
	if response.Error != nil {
		return fmt.Errorf("%w calling %s: %v %v", ErrRPC, method, response.Error.Code, response.Error.Message)
	}
	return json.Unmarshal(response.Result, result)
}

func (c *Client) Verify(entry smt.Entry, matching *smt.Entry, siblings smt.Siblings, root common.Hash) error {
	req := types.VerifyRequest{
		Entry:    types.NewEntry(entry),
		Siblings: types.NewSparseSiblings(siblings),
		Root:     types.Field(root),
	}
	if matching != nil {
		m := types.NewEntry(*matching)
		req.MatchingEntry = &m
	}
	var valid bool
	if err := c.call("smt_verify", &valid, req); err != nil {
		return err
	}
	if !valid {
		return smt.ErrRootMismatch
	}
	return nil
}

func (c *Client) rootCall(method string, req interface{}) (common.Hash, error) {
	var result types.RootResponse
	if err := c.call(method, &result, req); err != nil {
		return common.Hash{}, err
	}
	return result.Root.Hash(), nil
}

func (c *Client) Add(entry smt.Entry, oldRoot common.Hash, siblings smt.Siblings) (common.Hash, error) {
	return c.rootCall("smt_add", types.AddRequest{
		Entry:    types.NewEntry(entry),
		OldRoot:  types.Field(oldRoot),
		Siblings: types.NewSparseSiblings(siblings),
	})
}

func (c *Client) Delete(entry smt.Entry, oldRoot common.Hash, siblings smt.Siblings) (common.Hash, error) {
	return c.rootCall("smt_delete", types.DeleteRequest{
		Entry:    types.NewEntry(entry),
		OldRoot:  types.Field(oldRoot),
		Siblings: types.NewSparseSiblings(siblings),
	})
}

func (c *Client) Update(
	newValue common.Hash, oldEntry smt.Entry, oldRoot common.Hash, siblings smt.Siblings,
) (common.Hash, error) {
	return c.rootCall("smt_update", types.UpdateRequest{
		NewValue: types.Field(newValue),
		OldEntry: types.NewEntry(oldEntry),
		OldRoot:  types.Field(oldRoot),
		Siblings: types.NewSparseSiblings(siblings),
	})
}

func (c *Client) LeafHash(entry smt.Entry) (common.Hash, error) {
	var result types.Field
	if err := c.call("smt_leafHash", &result, types.NewEntry(entry)); err != nil {
		return common.Hash{}, err
	}
	return result.Hash(), nil
}
