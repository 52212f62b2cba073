package client

import (
	"context"
	"strconv"

	"github.com/steamkit/gomarket/market/types"
	"github.com/steamkit/gomarket/pkg/web"
)

// BuyItem purchases a specific listing. price and fee are in the lowest
// denomination of the wallet currency; price is the buyer total and fee
// the marketplace's cut, so the seller subtotal is price-fee.
//
// Success is multi-stage. The submission either settles immediately
// (wallet block carries the canonical success value), or is provisionally
// accepted pending an out-of-band confirmation: in that case every
// outstanding confirmation is accepted through the confirmation service,
// the configured propagation delay is honored, and the identical payload
// is resubmitted carrying the confirmation id. The resubmission response
// is terminal verbatim; no further escalation is attempted.
func (c *Client) BuyItem(ctx context.Context, marketHashName, marketID string, price, fee int64, game types.GameOptions, currency types.Currency) (*types.BuyListingResponse, error) {
	if err := c.requireLogin(); err != nil {
		return nil, err
	}

	endpoint := EndpointBuyListing + marketID
	form := map[string]string{
		"sessionid":       c.marketSessionID(),
		"currency":        strconv.Itoa(int(currency)),
		"subtotal":        strconv.FormatInt(price-fee, 10),
		"fee":             strconv.FormatInt(fee, 10),
		"total":           strconv.FormatInt(price, 10),
		"quantity":        "1",
		"billing_state":   "",
		"save_my_address": "0",
		"confirmation":    "0",
	}
	headers := map[string]string{
		"Referer": c.listingsReferer(game, marketHashName),
	}

	first, err := c.postBuyListing(ctx, endpoint, form, headers)
	if err != nil {
		return nil, err
	}

	cl := classifyBuyListing(first)
	switch cl.outcome {
	case buyOutcomeSuccess:
		return first, nil

	case buyOutcomeInvalidConfirmation:
		return nil, &ConfirmationError{Reason: "marketplace requested a confirmation but returned an invalid confirmation_id"}

	case buyOutcomePendingConfirmation:
		if c.confirmer == nil {
			return nil, &ConfirmationError{Reason: "purchase requires confirmation but no confirmation service is configured"}
		}
		c.log.WithFields(map[string]any{
			"listing":      marketID,
			"confirmation": cl.confirmationID,
		}).Info("purchase pending confirmation, escalating")

		if err := c.acceptAllConfirmations(ctx); err != nil {
			return nil, err
		}
		// Marketplace-side propagation: the accepted confirmation is not
		// visible to the purchase endpoint immediately.
		if err := c.sleep(ctx, c.cfg.ConfirmationDelay.Duration); err != nil {
			return nil, err
		}

		form["confirmation"] = cl.confirmationID
		return c.postBuyListing(ctx, endpoint, form, headers)

	default:
		return nil, &APIError{Message: cl.message}
	}
}

// acceptAllConfirmations fetches and accepts every outstanding
// confirmation. The set may exceed one when the account has unrelated
// pending actions; all are consumed.
func (c *Client) acceptAllConfirmations(ctx context.Context) error {
	pending, err := c.confirmer.ListPendingConfirmations(ctx)
	if err != nil {
		return wrapAPIError(err, "fetching pending confirmations failed")
	}
	for _, confirmation := range pending {
		if err := c.confirmer.Accept(ctx, confirmation); err != nil {
			return wrapAPIError(err, "accepting confirmation "+confirmation.ID+" failed")
		}
	}
	c.log.WithField("accepted", len(pending)).Debug("accepted pending confirmations")
	return nil
}

func (c *Client) postBuyListing(ctx context.Context, endpoint string, form, headers map[string]string) (*types.BuyListingResponse, error) {
	resp, err := c.web.PostForm(ctx, endpoint, &web.RequestOptions{Form: form, Headers: headers})
	if err != nil {
		return nil, wrapAPIError(err, "buy listing request failed")
	}
	var ack types.BuyListingResponse
	if err := decodeJSON(resp, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}
