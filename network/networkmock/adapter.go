// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Hand-written in the shape of MockGen output.
// Source: github.com/carnotchain/carnot/network (interface: Adapter)

// Package networkmock is a GoMock-style mock package.
package networkmock

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	committee "github.com/carnotchain/carnot/committee"
	types "github.com/carnotchain/carnot/types"
)

// MockAdapter is a mock of the Adapter interface.
type MockAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockAdapterMockRecorder
}

// MockAdapterMockRecorder is the mock recorder for MockAdapter.
type MockAdapterMockRecorder struct {
	mock *MockAdapter
}

// NewMockAdapter creates a new mock instance.
func NewMockAdapter(ctrl *gomock.Controller) *MockAdapter {
	mock := &MockAdapter{ctrl: ctrl}
	mock.recorder = &MockAdapterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAdapter) EXPECT() *MockAdapterMockRecorder {
	return m.recorder
}

// BroadcastProposalChunk mocks base method.
func (m *MockAdapter) BroadcastProposalChunk(ctx context.Context, to committee.Committee, view types.View, chunk []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BroadcastProposalChunk", ctx, to, view, chunk)
	ret0, _ := ret[0].(error)
	return ret0
}

// BroadcastProposalChunk indicates an expected call of BroadcastProposalChunk.
func (mr *MockAdapterMockRecorder) BroadcastProposalChunk(ctx, to, view, chunk interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BroadcastProposalChunk", reflect.TypeOf((*MockAdapter)(nil).BroadcastProposalChunk), ctx, to, view, chunk)
}

// ReceiveProposalChunks mocks base method.
func (m *MockAdapter) ReceiveProposalChunks(ctx context.Context, view types.View) (<-chan []byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReceiveProposalChunks", ctx, view)
	ret0, _ := ret[0].(<-chan []byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReceiveProposalChunks indicates an expected call of ReceiveProposalChunks.
func (mr *MockAdapterMockRecorder) ReceiveProposalChunks(ctx, view interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReceiveProposalChunks", reflect.TypeOf((*MockAdapter)(nil).ReceiveProposalChunks), ctx, view)
}

// ForwardVote mocks base method.
func (m *MockAdapter) ForwardVote(ctx context.Context, to committee.Committee, vote types.Vote) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ForwardVote", ctx, to, vote)
	ret0, _ := ret[0].(error)
	return ret0
}

// ForwardVote indicates an expected call of ForwardVote.
func (mr *MockAdapterMockRecorder) ForwardVote(ctx, to, vote interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForwardVote", reflect.TypeOf((*MockAdapter)(nil).ForwardVote), ctx, to, vote)
}

// ForwardNewView mocks base method.
func (m *MockAdapter) ForwardNewView(ctx context.Context, to committee.Committee, nv types.NewView) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ForwardNewView", ctx, to, nv)
	ret0, _ := ret[0].(error)
	return ret0
}

// ForwardNewView indicates an expected call of ForwardNewView.
func (mr *MockAdapterMockRecorder) ForwardNewView(ctx, to, nv interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForwardNewView", reflect.TypeOf((*MockAdapter)(nil).ForwardNewView), ctx, to, nv)
}

// ForwardTimeout mocks base method.
func (m *MockAdapter) ForwardTimeout(ctx context.Context, to committee.Committee, timeout types.Timeout) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ForwardTimeout", ctx, to, timeout)
	ret0, _ := ret[0].(error)
	return ret0
}

// ForwardTimeout indicates an expected call of ForwardTimeout.
func (mr *MockAdapterMockRecorder) ForwardTimeout(ctx, to, timeout interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForwardTimeout", reflect.TypeOf((*MockAdapter)(nil).ForwardTimeout), ctx, to, timeout)
}

// BroadcastTimeoutQc mocks base method.
func (m *MockAdapter) BroadcastTimeoutQc(ctx context.Context, tq types.TimeoutQc) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BroadcastTimeoutQc", ctx, tq)
	ret0, _ := ret[0].(error)
	return ret0
}

// BroadcastTimeoutQc indicates an expected call of BroadcastTimeoutQc.
func (mr *MockAdapterMockRecorder) BroadcastTimeoutQc(ctx, tq interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BroadcastTimeoutQc", reflect.TypeOf((*MockAdapter)(nil).BroadcastTimeoutQc), ctx, tq)
}
