package types

// ConfirmationKind distinguishes what a pending confirmation is approving.
type ConfirmationKind int

const (
	ConfirmationKindSell ConfirmationKind = iota + 1
	ConfirmationKindBuy
)

func (k ConfirmationKind) String() string {
	switch k {
	case ConfirmationKindSell:
		return "sell"
	case ConfirmationKindBuy:
		return "buy"
	default:
		return "unknown"
	}
}

// PendingConfirmation is one outstanding mobile-guard confirmation as the
// external confirmation service reports it. It has no persistence here:
// the escalation path fetches the fresh set at confirmation time and
// consumes each entry exactly once.
type PendingConfirmation struct {
	ID        string
	Nonce     string
	CreatorID string // originating asset or listing reference
	Kind      ConfirmationKind
}
