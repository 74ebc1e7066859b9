package rpc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/zk-smt/log"
	"github.com/0xPolygon/zk-smt/rpc/types"
	"github.com/0xPolygon/zk-smt/smt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// SMT is the namespace of the smt service
	SMT       = "smt"
	meterName = "github.com/0xPolygon/zk-smt/rpc"
)

// SMTEndpoints contains implementations for the "smt" RPC endpoints. None of them keeps
// state, every witness travels with the request.
type SMTEndpoints struct {
	logger *log.Logger
	meter  metric.Meter
	calc   *smt.Calculator
}

// NewSMTEndpoints returns SMTEndpoints computing with calc
func NewSMTEndpoints(logger *log.Logger, calc *smt.Calculator) *SMTEndpoints {
	return &SMTEndpoints{
		logger: logger,
		meter:  otel.Meter(meterName),
		calc:   calc,
	}
}

func (s *SMTEndpoints) count(name string) {
	c, merr := s.meter.Int64Counter(name)
	if merr != nil {
		s.logger.Warnf("failed to create %s counter: %s", name, merr)
		return
	}
	c.Add(context.Background(), 1)
}

func (s *SMTEndpoints) toRPCError(op string, err error) rpc.Error {
	s.logger.Debugf("%s failed: %s", op, err)
	code := rpc.DefaultErrorCode
	if errors.Is(err, smt.ErrNotInField) || errors.Is(err, types.ErrInvalidLevel) {
		code = rpc.InvalidParamsErrorCode
	}
	return rpc.NewRPCError(code, fmt.Sprintf("%s failed: %s", op, err))
}

// Verify checks a membership proof, or a non membership proof when the request carries a
// matching entry. It returns true or an error.
// curl -X POST http://localhost:5576/ -H "Content-Type: application/json" \
// -d '{"method":"smt_verify", "params":[{"entry":{"key":"1","value":"2"},"siblings":{},"root":"3"}], "id":1}'
func (s *SMTEndpoints) Verify(req types.VerifyRequest) (interface{}, rpc.Error) {
	s.count("verify")

	siblings, err := req.Siblings.ToSiblings()
	if err != nil {
		return false, s.toRPCError("verify", err)
	}
	if err := s.calc.Verify(req.Entry.ToSMT(), req.Matching(), siblings, req.Root.Hash()); err != nil {
		return false, s.toRPCError("verify", err)
	}
	return true, nil
}

// Add returns the root after inserting the entry
func (s *SMTEndpoints) Add(req types.AddRequest) (interface{}, rpc.Error) {
	s.count("add")

	siblings, err := req.Siblings.ToSiblings()
	if err != nil {
		return nil, s.toRPCError("add", err)
	}
	root, err := s.calc.Add(req.Entry.ToSMT(), req.OldRoot.Hash(), siblings)
	if err != nil {
		return nil, s.toRPCError("add", err)
	}
	s.logger.Debugf("add: root %s -> %s", req.OldRoot, types.Field(root))
	return types.RootResponse{Root: types.Field(root)}, nil
}

// Delete returns the root after removing the entry
func (s *SMTEndpoints) Delete(req types.DeleteRequest) (interface{}, rpc.Error) {
	s.count("delete")

	siblings, err := req.Siblings.ToSiblings()
	if err != nil {
		return nil, s.toRPCError("delete", err)
	}
	root, err := s.calc.Delete(req.Entry.ToSMT(), req.OldRoot.Hash(), siblings)
	if err != nil {
		return nil, s.toRPCError("delete", err)
	}
	s.logger.Debugf("delete: root %s -> %s", req.OldRoot, types.Field(root))
	return types.RootResponse{Root: types.Field(root)}, nil
}

// Update returns the root after replacing the value of the entry
func (s *SMTEndpoints) Update(req types.UpdateRequest) (interface{}, rpc.Error) {
	s.count("update")

	siblings, err := req.Siblings.ToSiblings()
	if err != nil {
		return nil, s.toRPCError("update", err)
	}
	root, err := s.calc.Update(req.NewValue.Hash(), req.OldEntry.ToSMT(), req.OldRoot.Hash(), siblings)
	if err != nil {
		return nil, s.toRPCError("update", err)
	}
	s.logger.Debugf("update: root %s -> %s", req.OldRoot, types.Field(root))
	return types.RootResponse{Root: types.Field(root)}, nil
}

// LeafHash returns the hash of the leaf holding entry
func (s *SMTEndpoints) LeafHash(entry types.Entry) (interface{}, rpc.Error) {
	s.count("leaf_hash")

	h, err := s.calc.LeafHash(entry.ToSMT())
	if err != nil {
		return nil, s.toRPCError("leafHash", err)
	}
	return types.Field(h), nil
}

// KeyToPath returns the path of key as a string of 256 binary digits, the digit at
// position i is the bit consumed at sibling level i
func (s *SMTEndpoints) KeyToPath(key types.Field) (interface{}, rpc.Error) {
	s.count("key_to_path")

	path := smt.KeyToPath(key.Hash())
	var b strings.Builder
	b.Grow(smt.Depth)
	for _, bit := range path {
		b.WriteByte('0' + bit)
	}
	return b.String(), nil
}
