package client

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/steamkit/gomarket/market/types"
	"github.com/steamkit/gomarket/pkg/web"
)

// GetMyListings aggregates the account's active listings. The landing
// page carries a bounded inline page plus "showing N of M" markers; the
// remainder is fetched either in one bulk request (total under the bulk
// threshold) or in sequential fixed-size pages, and each batch is merged
// into the running collection.
//
// Any failure inside the plan fails the whole call; partial results are
// discarded, there is no resumable contract.
func (c *Client) GetMyListings(ctx context.Context) (*types.ListingCollection, error) {
	if err := c.requireLogin(); err != nil {
		return nil, err
	}
	if c.extractor == nil {
		return nil, &APIError{Message: "no page extractor configured"}
	}

	resp, err := c.web.Get(ctx, EndpointMarketHome, nil)
	if err != nil {
		return nil, wrapAPIError(err, "listings page request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, newStatusError("fetching listings page", resp.StatusCode())
	}

	page, err := c.extractor.LandingPage(resp.String())
	if err != nil {
		return nil, wrapAPIError(err, "listings page extraction failed")
	}

	coll, err := MergeListings(page.Listings, page.AssetRefs, page.Descriptions)
	if err != nil {
		return nil, err
	}
	for _, order := range page.BuyOrders {
		coll.BuyOrders[order.OrderID] = order
	}

	// No markers: the inline page is the complete result.
	if page.ShowingMarker == "" || page.TotalMarker == "" {
		return coll, nil
	}

	showing, err := parseCountMarker(page.ShowingMarker)
	if err != nil {
		return nil, wrapAPIError(err, "parsing listings count marker")
	}
	total, err := parseCountMarker(page.TotalMarker)
	if err != nil {
		return nil, wrapAPIError(err, "parsing listings total marker")
	}

	switch {
	case showing >= total:
		// The inline page already covers everything.

	case total < c.cfg.BulkFetchThreshold:
		// Below the threshold the render endpoint serves the whole
		// remainder in one unbounded request.
		batch, err := c.fetchListingsPage(ctx, showing, countAll)
		if err != nil {
			return nil, err
		}
		coll.Overlay(batch)

	default:
		// At or above the threshold the endpoint requires bounded pages.
		for offset := 0; offset < total; offset += c.cfg.PageSize {
			batch, err := c.fetchListingsPage(ctx, showing+offset, c.cfg.PageSize)
			if err != nil {
				return nil, err
			}
			coll.Overlay(batch)
		}
	}

	c.log.WithFields(map[string]any{
		"sell_listings": len(coll.SellListings),
		"buy_orders":    len(coll.BuyOrders),
	}).Debug("aggregated my listings")
	return coll, nil
}

// fetchListingsPage fetches one render batch and merges it into a fresh
// collection for the caller to overlay.
func (c *Client) fetchListingsPage(ctx context.Context, start, count int) (*types.ListingCollection, error) {
	resp, err := c.web.Get(ctx, EndpointMyListings, &web.RequestOptions{
		Params: map[string]string{
			"query": "",
			"start": strconv.Itoa(start),
			"count": strconv.Itoa(count),
		},
	})
	if err != nil {
		return nil, wrapAPIError(err, "listings page request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, newStatusError("fetching listings page", resp.StatusCode())
	}

	var render types.MyListingsResponse
	if err := decodeJSON(resp, &render); err != nil {
		return nil, err
	}

	raw, refs, err := c.extractor.RenderFragments(render.ResultsHTML, render.Hovers)
	if err != nil {
		return nil, wrapAPIError(err, "render fragment extraction failed")
	}
	return MergeListings(raw, refs, render.Assets)
}

// parseCountMarker parses a "showing/total" marker, tolerating thousands
// separators ("1,500").
func parseCountMarker(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
}
