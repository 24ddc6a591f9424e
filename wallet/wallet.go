package wallet

import (
	"context"

	"coopchain/agreement"
)

// Account is the wallet's connected identity.
type Account struct {
	Address string `json:"address"`
}

// SubmitResult carries the operation identifier returned after submission.
type SubmitResult struct {
	Hash string `json:"hash"`
}

// Wallet is the external signing collaborator. Implementations hold the key
// material; this client never sees it.
type Wallet interface {
	Connect(ctx context.Context) (Account, error)
	SignAndSubmit(ctx context.Context, payload *agreement.EntryFunctionPayload) (SubmitResult, error)
	Close() error
}
