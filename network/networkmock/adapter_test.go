// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networkmock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carnotchain/carnot/committee"
	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/types"
)

func TestMockAdapterForwardVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockAdapter(ctrl)

	to := committee.New(ids.GenerateTestNodeID())
	vote := types.Vote{View: 1, BlockID: ids.GenerateTestID()}

	m.EXPECT().ForwardVote(gomock.Any(), to, vote).Return(nil)

	err := m.ForwardVote(context.Background(), to, vote)
	require.NoError(t, err)
}

func TestMockAdapterBroadcastTimeoutQc(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockAdapter(ctrl)

	tq := types.TimeoutQc{View: 4}
	m.EXPECT().BroadcastTimeoutQc(gomock.Any(), tq).Return(nil)

	require.NoError(t, m.BroadcastTimeoutQc(context.Background(), tq))
}
