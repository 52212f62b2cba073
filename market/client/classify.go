package client

import (
	"strings"

	"github.com/steamkit/gomarket/market/types"
)

// The marketplace signals success through heterogeneous, partially
// overlapping response shapes: a nested wallet block, a top-level result
// code, and message substrings. Each response is classified exactly once
// into a tagged outcome and dispatched on, instead of probing raw fields
// at every call site.

type buyOutcome int

const (
	// buyOutcomeSuccess: the wallet block carries the canonical success
	// value; the purchase settled immediately.
	buyOutcomeSuccess buyOutcome = iota
	// buyOutcomePendingConfirmation: provisionally accepted, a secondary
	// out-of-band confirmation is required before it takes effect.
	buyOutcomePendingConfirmation
	// buyOutcomeInvalidConfirmation: a confirmation was requested but the
	// confirmation identifier is missing or mistyped.
	buyOutcomeInvalidConfirmation
	// buyOutcomeRejected: neither success nor a usable confirmation.
	buyOutcomeRejected
)

type buyClassification struct {
	outcome        buyOutcome
	confirmationID string
	message        string
}

func classifyBuyListing(resp *types.BuyListingResponse) buyClassification {
	if resp.WalletInfo != nil && resp.WalletInfo.Success.OK() {
		return buyClassification{outcome: buyOutcomeSuccess}
	}

	if resp.Success.Int() == types.ResultConfirmationRequired && resp.Confirmation != nil {
		id, ok := resp.Confirmation["confirmation_id"].(string)
		if !ok || id == "" {
			return buyClassification{outcome: buyOutcomeInvalidConfirmation}
		}
		return buyClassification{outcome: buyOutcomePendingConfirmation, confirmationID: id}
	}

	msg := resp.Message
	if msg == "" && resp.WalletInfo != nil {
		msg = resp.WalletInfo.Message
	}
	return buyClassification{outcome: buyOutcomeRejected, message: msg}
}

// pendingConfirmationHint is the message substring marking a sell listing
// that was accepted but parked behind a confirmation.
const pendingConfirmationHint = "pending confirmation"

// sellNeedsConfirmation reports whether a sell acknowledgment requires the
// out-of-band confirmation step. Whether it does depends on the account's
// guard settings, so it is a runtime branch, not a precondition.
func sellNeedsConfirmation(resp *types.SellItemResponse) bool {
	if resp.NeedsMobileConfirmation.Truthy() {
		return true
	}
	return !resp.Success.Truthy() && strings.Contains(resp.Message, pendingConfirmationHint)
}
