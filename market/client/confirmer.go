package client

import (
	"context"

	"github.com/steamkit/gomarket/market/types"
)

// ConfirmationService drives the account's mobile-guard confirmations.
// It owns the signing secret and the confirmation transport; this client
// treats it as authoritative and never reimplements its logic.
type ConfirmationService interface {
	// ListPendingConfirmations fetches the outstanding confirmations.
	// There may be more than one when the account has unrelated pending
	// actions; the purchase escalation accepts them all.
	ListPendingConfirmations(ctx context.Context) ([]types.PendingConfirmation, error)

	// Accept approves a single confirmation.
	Accept(ctx context.Context, confirmation types.PendingConfirmation) error

	// ConfirmSellListing approves specifically the sell listing created
	// for the given asset (a targeted confirm, not accept-all).
	ConfirmSellListing(ctx context.Context, assetID string) (*types.SellItemResponse, error)
}
