package wallet

import (
	"context"

	"coopchain/agreement"
	"coopchain/errors"
	"coopchain/logx"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/jhttp"
)

// JSON-RPC methods served by the wallet bridge daemon.
const (
	methodConnect       = "wallet_connect"
	methodSignAndSubmit = "wallet_signAndSubmitTransaction"
)

// Bridge talks JSON-RPC 2.0 over HTTP to a local wallet bridge daemon that
// owns the private key. A transport failure maps to wallet_unavailable; an
// RPC-level error (user cancelled, signing failed) maps to wallet_rejected.
type Bridge struct {
	url string
	ch  *jhttp.Channel
	cli *jrpc2.Client
}

func NewBridge(url string) *Bridge {
	ch := jhttp.NewChannel(url, nil)
	return &Bridge{
		url: url,
		ch:  ch,
		cli: jrpc2.NewClient(ch, nil),
	}
}

func (b *Bridge) Connect(ctx context.Context) (Account, error) {
	var acc Account
	if err := b.cli.CallResult(ctx, methodConnect, nil, &acc); err != nil {
		return Account{}, mapRPCError(err)
	}
	logx.Info("WALLET", "Connected: ", acc.Address)
	return acc, nil
}

func (b *Bridge) SignAndSubmit(ctx context.Context, payload *agreement.EntryFunctionPayload) (SubmitResult, error) {
	var res SubmitResult
	if err := b.cli.CallResult(ctx, methodSignAndSubmit, payload, &res); err != nil {
		return SubmitResult{}, mapRPCError(err)
	}
	logx.Info("WALLET", "Submitted: ", res.Hash)
	return res, nil
}

func (b *Bridge) Close() error {
	b.cli.Close()
	return nil
}

func mapRPCError(err error) error {
	if rpcErr, ok := err.(*jrpc2.Error); ok {
		return errors.NewClientError(errors.ErrCodeWalletRejected, rpcErr.Message)
	}
	logx.Error("WALLET", "Bridge unreachable: ", err)
	return errors.NewClientError(errors.ErrCodeWalletUnavailable, errors.ErrMsgWalletUnavailable)
}
