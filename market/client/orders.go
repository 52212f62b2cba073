package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/steamkit/gomarket/market/types"
	"github.com/steamkit/gomarket/pkg/web"
)

// CreateSellOrder lists a single asset for sale at the given receive
// price (the lowest denomination of the wallet currency, as a string).
//
// When the acknowledgment signals a pending confirmation, the sell
// listing tied to this asset is confirmed through the confirmation
// service and that result is returned instead. Otherwise the raw
// acknowledgment is returned as-is, success or not, for the caller to
// inspect.
func (c *Client) CreateSellOrder(ctx context.Context, assetID string, game types.GameOptions, priceToReceive string) (*types.SellItemResponse, error) {
	if err := c.requireLogin(); err != nil {
		return nil, err
	}

	resp, err := c.web.PostForm(ctx, EndpointSellItem, &web.RequestOptions{
		Form: map[string]string{
			"assetid":   assetID,
			"sessionid": c.sessionID,
			"contextid": game.ContextID,
			"appid":     game.AppID,
			"amount":    "1",
			"price":     priceToReceive,
		},
		Headers: map[string]string{
			"Referer": c.cfg.CommunityURL + "/profiles/" + c.guard.SteamID + "/inventory",
		},
	})
	if err != nil {
		return nil, wrapAPIError(err, "sell item request failed")
	}

	var ack types.SellItemResponse
	if err := decodeJSON(resp, &ack); err != nil {
		return nil, err
	}

	if sellNeedsConfirmation(&ack) {
		if c.confirmer == nil {
			return nil, &ConfirmationError{Reason: "sell listing requires confirmation but no confirmation service is configured"}
		}
		c.log.WithField("asset", assetID).Info("sell listing pending confirmation, confirming")
		result, err := c.confirmer.ConfirmSellListing(ctx, assetID)
		if err != nil {
			return nil, wrapAPIError(err, "sell listing confirmation failed")
		}
		return result, nil
	}
	return &ack, nil
}

// CreateBuyOrder places a buy order for quantity units at priceSingleItem
// each. The total is the exact decimal product of the two; prices are
// currency-exact, floats are never involved.
func (c *Client) CreateBuyOrder(ctx context.Context, marketHashName string, priceSingleItem string, quantity int, game types.GameOptions, currency types.Currency) (*types.BuyOrderResponse, error) {
	if err := c.requireLogin(); err != nil {
		return nil, err
	}

	unit, err := decimal.NewFromString(priceSingleItem)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid unit price %q", priceSingleItem)
	}
	total := unit.Mul(decimal.NewFromInt(int64(quantity)))

	resp, err := c.web.PostForm(ctx, EndpointCreateBuyOrder, &web.RequestOptions{
		Form: map[string]string{
			"sessionid":        c.sessionID,
			"currency":         strconv.Itoa(int(currency)),
			"appid":            game.AppID,
			"market_hash_name": marketHashName,
			"price_total":      total.String(),
			"quantity":         strconv.Itoa(quantity),
		},
		Headers: map[string]string{
			"Referer": c.listingsReferer(game, marketHashName),
		},
	})
	if err != nil {
		return nil, wrapAPIError(err, "create buy order request failed")
	}

	var ack types.BuyOrderResponse
	if err := decodeJSON(resp, &ack); err != nil {
		return nil, err
	}
	if !ack.Success.OK() {
		return nil, &OrderRejectedError{Indicator: ack.Success.Int(), Message: ack.Message}
	}
	return &ack, nil
}

// CancelSellOrder removes an active sell listing.
func (c *Client) CancelSellOrder(ctx context.Context, sellListingID string) error {
	if err := c.requireLogin(); err != nil {
		return err
	}

	resp, err := c.web.PostForm(ctx, EndpointRemoveListing+sellListingID, &web.RequestOptions{
		Form: map[string]string{
			"sessionid": c.sessionID,
		},
		Headers: map[string]string{
			"Referer": c.cfg.CommunityURL + "/market/",
		},
	})
	if err != nil {
		return wrapAPIError(err, "remove listing request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		return newStatusError("removing listing", resp.StatusCode())
	}
	return nil
}

// CancelBuyOrder cancels an outstanding buy order.
func (c *Client) CancelBuyOrder(ctx context.Context, buyOrderID string) (*types.CancelBuyOrderResponse, error) {
	if err := c.requireLogin(); err != nil {
		return nil, err
	}

	resp, err := c.web.PostForm(ctx, EndpointCancelBuyOrder, &web.RequestOptions{
		Form: map[string]string{
			"sessionid":   c.sessionID,
			"buy_orderid": buyOrderID,
		},
		Headers: map[string]string{
			"Referer": c.cfg.CommunityURL + "/market",
		},
	})
	if err != nil {
		return nil, wrapAPIError(err, "cancel buy order request failed")
	}

	var ack types.CancelBuyOrderResponse
	if err := decodeJSON(resp, &ack); err != nil {
		return nil, err
	}
	if !ack.Success.OK() {
		return nil, &OrderRejectedError{Indicator: ack.Success.Int(), Message: ack.Message}
	}
	return &ack, nil
}

// listingsReferer is the anti-abuse referer for requests tied to an
// item's listing page.
func (c *Client) listingsReferer(game types.GameOptions, marketHashName string) string {
	return c.cfg.CommunityURL + "/market/listings/" + game.AppID + "/" + url.PathEscape(marketHashName)
}
