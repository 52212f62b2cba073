package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/steamkit/gomarket/market/types"
	"github.com/steamkit/gomarket/pkg/ratelimit"
	"github.com/steamkit/gomarket/pkg/web"
)

// FetchPrice reads the current price overview for an item. An empty
// country falls back to the configured default. HTTP 429 surfaces as
// RateLimitedError carrying the documented quota, regardless of body.
func (c *Client) FetchPrice(ctx context.Context, itemHashName string, game types.GameOptions, currency types.Currency, country string) (*types.PriceOverview, error) {
	if country == "" {
		country = c.cfg.Country
	}

	cacheKey := fmt.Sprintf("%s|%s|%d|%s", game.AppID, itemHashName, currency, country)
	if c.priceCache != nil {
		if v, ok := c.priceCache.Get(cacheKey); ok {
			return v.(*types.PriceOverview), nil
		}
	}

	if err := c.waitReadQuota(ctx); err != nil {
		return nil, err
	}

	resp, err := c.web.Get(ctx, EndpointPriceOverview, &web.RequestOptions{
		Params: map[string]string{
			"country":          country,
			"currency":         strconv.Itoa(int(currency)),
			"appid":            game.AppID,
			"market_hash_name": itemHashName,
		},
	})
	if err != nil {
		return nil, wrapAPIError(err, "price overview request failed")
	}
	if resp.StatusCode() == http.StatusTooManyRequests {
		return nil, &RateLimitedError{Limit: ratelimit.MarketReadLimit, Window: ratelimit.MarketReadWindow}
	}

	var overview types.PriceOverview
	if err := decodeJSON(resp, &overview); err != nil {
		return nil, err
	}

	if c.priceCache != nil {
		c.priceCache.SetDefault(cacheKey, &overview)
	}
	c.log.WithFields(map[string]any{
		"item":  itemHashName,
		"appid": game.AppID,
	}).Debug("fetched price overview")
	return &overview, nil
}

// FetchPriceHistory reads the full sale history for an item. Requires the
// session context: the marketplace serves history to logged-in accounts
// only. Shares the read quota (and its 429 signal) with FetchPrice.
func (c *Client) FetchPriceHistory(ctx context.Context, itemHashName string, game types.GameOptions) (*types.PriceHistory, error) {
	if err := c.requireLogin(); err != nil {
		return nil, err
	}
	if err := c.waitReadQuota(ctx); err != nil {
		return nil, err
	}

	resp, err := c.web.Get(ctx, EndpointPriceHistory, &web.RequestOptions{
		Params: map[string]string{
			"country":          c.cfg.Country,
			"appid":            game.AppID,
			"market_hash_name": itemHashName,
		},
	})
	if err != nil {
		return nil, wrapAPIError(err, "price history request failed")
	}
	if resp.StatusCode() == http.StatusTooManyRequests {
		return nil, &RateLimitedError{Limit: ratelimit.MarketReadLimit, Window: ratelimit.MarketReadWindow}
	}

	var history types.PriceHistory
	if err := decodeJSON(resp, &history); err != nil {
		return nil, err
	}
	return &history, nil
}
