package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Result codes the marketplace embeds in response bodies. The top-level
// success field is not a boolean contract: 1 is the single canonical
// success value and 22 marks a provisionally accepted purchase waiting
// for an out-of-band confirmation.
const (
	ResultOK                   = 1
	ResultConfirmationRequired = 22
)

// Code handles success indicators that arrive as numbers, strings, or
// booleans depending on the endpoint.
type Code int

func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || strings.EqualFold(string(data), "null") {
		*c = 0
		return nil
	}

	switch string(data) {
	case "true":
		*c = 1
		return nil
	case "false":
		*c = 0
		return nil
	}

	// Quoted numbers.
	if data[0] == '"' && data[len(data)-1] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*c = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*c = Code(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Code(n)
	return nil
}

// Truthy reports whether the code is any non-zero value. Several endpoints
// use the success field as a plain flag rather than a result code.
func (c Code) Truthy() bool {
	return c != 0
}

// OK reports whether the code equals the canonical success value.
func (c Code) OK() bool {
	return c == ResultOK
}

func (c Code) Int() int {
	return int(c)
}

// SellItemResponse is the acknowledgment of a sell-item request. A truthy
// NeedsMobileConfirmation, or a falsy Success combined with a "pending
// confirmation" message, means the listing is provisionally accepted and
// must be confirmed out of band.
type SellItemResponse struct {
	Success                 Code   `json:"success"`
	Message                 string `json:"message"`
	RequiresConfirmation    Code   `json:"requires_confirmation"`
	NeedsMobileConfirmation Code   `json:"needs_mobile_confirmation"`
	NeedsEmailConfirmation  Code   `json:"needs_email_confirmation"`
	EmailDomain             string `json:"email_domain"`
}

// BuyOrderResponse acknowledges a create-buy-order request.
type BuyOrderResponse struct {
	Success    Code   `json:"success"`
	Message    string `json:"message"`
	BuyOrderID string `json:"buy_orderid"`
}

// CancelBuyOrderResponse acknowledges a cancel-buy-order request.
type CancelBuyOrderResponse struct {
	Success Code   `json:"success"`
	Message string `json:"message"`
}

// WalletInfo is the nested wallet block a purchase response carries on the
// immediate-success path.
type WalletInfo struct {
	Success        Code   `json:"success"`
	Message        string `json:"message"`
	WalletCurrency int    `json:"wallet_currency"`
	WalletBalance  int64  `json:"wallet_balance"`
}

// BuyListingResponse is the heterogeneous acknowledgment of a buy-listing
// request. Which of its blocks is populated depends on the account's guard
// settings, so callers classify it once instead of probing fields ad hoc.
// Confirmation stays untyped: the confirmation_id field has been observed
// missing and mistyped, and that distinction matters to the caller.
type BuyListingResponse struct {
	Success      Code           `json:"success"`
	Message      string         `json:"message"`
	WalletInfo   *WalletInfo    `json:"wallet_info,omitempty"`
	Confirmation map[string]any `json:"confirmation,omitempty"`
}

// PriceOverview is the current price snapshot for an item.
type PriceOverview struct {
	Success     bool   `json:"success"`
	LowestPrice string `json:"lowest_price"`
	MedianPrice string `json:"median_price"`
	Volume      string `json:"volume"`
}

// PricePoint is one historical sample. The marketplace serializes it as a
// positional [date, price, volume] triple.
type PricePoint struct {
	Date   string
	Price  float64
	Volume string
}

func (p *PricePoint) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw[0], &p.Date); err != nil {
			return err
		}
	}
	if len(raw) > 1 {
		if err := json.Unmarshal(raw[1], &p.Price); err != nil {
			return err
		}
	}
	if len(raw) > 2 {
		if err := json.Unmarshal(raw[2], &p.Volume); err != nil {
			return err
		}
	}
	return nil
}

// PriceHistory is the full sale history for an item.
type PriceHistory struct {
	Success     bool         `json:"success"`
	PricePrefix string       `json:"price_prefix"`
	PriceSuffix string       `json:"price_suffix"`
	Prices      []PricePoint `json:"prices"`
}

// MyListingsResponse is the paginated listings render payload: HTML
// fragments plus the asset description table. The HTML fields are handed
// to the page extractor; only the envelope is parsed here.
type MyListingsResponse struct {
	Success     Code             `json:"success"`
	PageSize    int              `json:"pagesize"`
	TotalCount  int              `json:"total_count"`
	ResultsHTML string           `json:"results_html"`
	Hovers      string           `json:"hovers"`
	Assets      DescriptionTable `json:"assets"`
}
