package smt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/0xPolygon/zk-smt/smt"
	"github.com/0xPolygon/zk-smt/smt/mocks"
	"github.com/0xPolygon/zk-smt/test/helpers"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWitnessSourceErrors(t *testing.T) {
	ctx := context.Background()
	fooErr := errors.New("foo")
	e := helpers.RandomEntry()
	c := smt.Default()

	src := mocks.NewWitnessSource(t)
	src.EXPECT().SiblingsFor(ctx, e.Key).Return(smt.Siblings{}, fooErr).Times(4)

	err := c.VerifyMembership(ctx, src, e, common.Hash{})
	require.ErrorIs(t, err, smt.ErrWitnessSource)
	require.ErrorIs(t, err, fooErr)

	_, err = c.AddFrom(ctx, src, e, common.Hash{})
	require.ErrorIs(t, err, smt.ErrWitnessSource)
	_, err = c.DeleteFrom(ctx, src, e, common.Hash{})
	require.ErrorIs(t, err, smt.ErrWitnessSource)
	_, err = c.UpdateFrom(ctx, src, e.Value, e, common.Hash{})
	require.ErrorIs(t, err, smt.ErrWitnessSource)
}

func TestVerifyNonMembershipWithoutMatchingEntry(t *testing.T) {
	ctx := context.Background()
	key := helpers.RandomField()

	src := mocks.NewWitnessSource(t)
	src.EXPECT().MatchingEntryFor(ctx, key).Return(nil, nil).Once()

	err := smt.Default().VerifyNonMembership(ctx, src, key, common.Hash{})
	require.ErrorIs(t, err, smt.ErrNoMatchingEntry)

	fooErr := errors.New("foo")
	src.EXPECT().MatchingEntryFor(ctx, mock.Anything).Return(nil, fooErr).Once()
	err = smt.Default().VerifyNonMembership(ctx, src, key, common.Hash{})
	require.ErrorIs(t, err, smt.ErrWitnessSource)
}

func TestWitnessSourceOperations(t *testing.T) {
	ctx := context.Background()
	c := smt.Default()
	tree, entries := newTree(t, treeSize)

	root, err := tree.Root()
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, c.VerifyMembership(ctx, tree, e, root))
		require.NoError(t, c.VerifyNonMembership(ctx, tree, helpers.FlipBit(e.Key, 20), root))
	}

	e := helpers.RandomEntry()
	tree.Set(e)
	added, err := c.AddFrom(ctx, tree, e, root)
	require.NoError(t, err)
	expected, err := tree.Root()
	require.NoError(t, err)
	require.Equal(t, expected, added)

	newValue := helpers.RandomField()
	updated, err := c.UpdateFrom(ctx, tree, newValue, e, added)
	require.NoError(t, err)

	updatedEntry := smt.Entry{Key: e.Key, Value: newValue}
	deleted, err := c.DeleteFrom(ctx, tree, updatedEntry, updated)
	require.NoError(t, err)
	require.Equal(t, root, deleted)
}
