package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/steamkit/gomarket/market/types"
)

// landingPage builds a stub landing page with the given inline listing ids
// and count markers.
func landingPage(showing, total string, ids ...string) *ListingPage {
	page := &ListingPage{
		AssetRefs:     map[string]types.AssetRef{},
		Descriptions:  types.DescriptionTable{},
		ShowingMarker: showing,
		TotalMarker:   total,
	}
	for _, id := range ids {
		page.Listings = append(page.Listings, types.RawListing{ListingID: id, BuyerPay: "$1.00", YouReceive: "$0.87"})
		page.AssetRefs[id] = types.AssetRef{AppID: "730", ContextID: "2", AssetID: "asset-" + id, Amount: "1"}
		ensureDescription(page.Descriptions, "730", "2", "asset-"+id)
	}
	return page
}

func ensureDescription(table types.DescriptionTable, appID, contextID, assetID string) {
	if table[appID] == nil {
		table[appID] = map[string]map[string]types.Description{}
	}
	if table[appID][contextID] == nil {
		table[appID][contextID] = map[string]types.Description{}
	}
	table[appID][contextID][assetID] = types.Description{MarketHashName: "Item " + assetID, Marketable: 1}
}

// renderBody is a minimal render envelope; results_html doubles as the
// batch tag the stub extractor keys on.
func renderBody(tag string, assets string) string {
	if assets == "" {
		assets = "[]"
	}
	return fmt.Sprintf(`{"success":true,"pagesize":100,"total_count":0,"results_html":%q,"hovers":"","assets":%s}`, tag, assets)
}

func TestGetMyListingsInlineOnly(t *testing.T) {
	rec := newRecorder(scriptedResponse{200, "<html></html>"})
	extractor := &stubExtractor{landing: landingPage("", "", "L1", "L2")}
	c := newTestClient(t, rec, testConfig(), extractor, nil)

	coll, err := c.GetMyListings(context.Background())
	if err != nil {
		t.Fatalf("GetMyListings: %v", err)
	}
	if rec.count() != 1 {
		t.Fatalf("expected only the landing request, got %d", rec.count())
	}
	if len(coll.SellListings) != 2 {
		t.Errorf("sell listings = %d, want 2", len(coll.SellListings))
	}
}

func TestGetMyListingsMarkersComplete(t *testing.T) {
	// showing == total: markers present but nothing left to fetch.
	rec := newRecorder(scriptedResponse{200, "<html></html>"})
	extractor := &stubExtractor{landing: landingPage("2", "2", "L1", "L2")}
	c := newTestClient(t, rec, testConfig(), extractor, nil)

	if _, err := c.GetMyListings(context.Background()); err != nil {
		t.Fatalf("GetMyListings: %v", err)
	}
	if rec.count() != 1 {
		t.Errorf("expected no render requests, got %d total", rec.count())
	}
}

func TestGetMyListingsBulkPlan(t *testing.T) {
	rec := newRecorder(
		scriptedResponse{200, "<html></html>"},
		scriptedResponse{200, renderBody("batch-bulk", "")},
	)
	extractor := &stubExtractor{landing: landingPage("50", "200", "L1")}
	c := newTestClient(t, rec, testConfig(), extractor, nil)

	if _, err := c.GetMyListings(context.Background()); err != nil {
		t.Fatalf("GetMyListings: %v", err)
	}
	if rec.count() != 2 {
		t.Fatalf("expected landing + one bulk request, got %d", rec.count())
	}
	req := rec.request(1)
	if req.Path != EndpointMyListings {
		t.Errorf("path = %s", req.Path)
	}
	if req.Query["start"] != "50" || req.Query["count"] != "-1" {
		t.Errorf("bulk request start=%s count=%s, want start=50 count=-1", req.Query["start"], req.Query["count"])
	}
}

func TestGetMyListingsPaginatedPlan(t *testing.T) {
	responses := []scriptedResponse{{200, "<html></html>"}}
	for i := 0; i < 15; i++ {
		responses = append(responses, scriptedResponse{200, renderBody("batch-"+strconv.Itoa(i), "")})
	}
	rec := newRecorder(responses...)
	// Thousands separator in the total marker.
	extractor := &stubExtractor{landing: landingPage("0", "1,500")}
	c := newTestClient(t, rec, testConfig(), extractor, nil)

	if _, err := c.GetMyListings(context.Background()); err != nil {
		t.Fatalf("GetMyListings: %v", err)
	}
	if rec.count() != 16 {
		t.Fatalf("expected landing + 15 pages, got %d", rec.count())
	}
	for i := 0; i < 15; i++ {
		req := rec.request(i + 1)
		if want := strconv.Itoa(i * 100); req.Query["start"] != want {
			t.Errorf("page %d start = %s, want %s", i, req.Query["start"], want)
		}
		if req.Query["count"] != "100" {
			t.Errorf("page %d count = %s, want 100", i, req.Query["count"])
		}
	}
}

func TestGetMyListingsMergesBatches(t *testing.T) {
	assets := `{"730":{"2":{"asset-L2":{"market_hash_name":"Item asset-L2","marketable":1},"asset-L1":{"market_hash_name":"Item asset-L1","marketable":1}}}}`
	rec := newRecorder(
		scriptedResponse{200, "<html></html>"},
		scriptedResponse{200, renderBody("batch", assets)},
	)
	extractor := &stubExtractor{
		landing: landingPage("1", "2", "L1"),
		fragments: func(resultsHTML, hovers string) ([]types.RawListing, map[string]types.AssetRef, error) {
			// The batch re-serves L1 with a different price plus the new L2;
			// later entries must win on the shared key.
			return []types.RawListing{
					{ListingID: "L1", BuyerPay: "$2.00"},
					{ListingID: "L2", BuyerPay: "$3.00"},
				}, map[string]types.AssetRef{
					"L1": {AppID: "730", ContextID: "2", AssetID: "asset-L1"},
					"L2": {AppID: "730", ContextID: "2", AssetID: "asset-L2"},
				}, nil
		},
	}
	c := newTestClient(t, rec, testConfig(), extractor, nil)

	coll, err := c.GetMyListings(context.Background())
	if err != nil {
		t.Fatalf("GetMyListings: %v", err)
	}
	if len(coll.SellListings) != 2 {
		t.Fatalf("sell listings = %d, want 2", len(coll.SellListings))
	}
	if got := coll.SellListings["L1"].BuyerPay; got != "$2.00" {
		t.Errorf("overlay did not prefer the later batch: L1 buyer pay = %s", got)
	}
	if _, ok := coll.SellListings["L2"]; !ok {
		t.Errorf("batch-only listing L2 missing from the union")
	}
}

func TestGetMyListingsBuyOrders(t *testing.T) {
	page := landingPage("", "", "L1")
	page.BuyOrders = []types.BuyOrderEntry{
		{OrderID: "BO-1", MarketHashName: "Key", Price: "$2.30", Quantity: 5, AppID: "440"},
	}
	rec := newRecorder(scriptedResponse{200, "<html></html>"})
	c := newTestClient(t, rec, testConfig(), &stubExtractor{landing: page}, nil)

	coll, err := c.GetMyListings(context.Background())
	if err != nil {
		t.Fatalf("GetMyListings: %v", err)
	}
	if got, ok := coll.BuyOrders["BO-1"]; !ok || got.Quantity != 5 {
		t.Errorf("buy order not carried into the collection: %+v", coll.BuyOrders)
	}
}

func TestGetMyListingsMidPlanFailure(t *testing.T) {
	cfg := testConfig()
	cfg.BulkFetchThreshold = 200
	rec := newRecorder(
		scriptedResponse{200, "<html></html>"},
		scriptedResponse{200, renderBody("batch-0", "")},
		scriptedResponse{500, `{"success":false}`},
	)
	extractor := &stubExtractor{landing: landingPage("0", "300")}
	c := newTestClient(t, rec, cfg, extractor, nil)

	_, err := c.GetMyListings(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != 500 {
		t.Errorf("status = %d, want 500", apiErr.Status)
	}
	if rec.count() != 3 {
		t.Errorf("plan continued past the failure, %d requests", rec.count())
	}
}

func TestGetMyListingsBadMarker(t *testing.T) {
	rec := newRecorder(scriptedResponse{200, "<html></html>"})
	extractor := &stubExtractor{landing: landingPage("fifty", "200")}
	c := newTestClient(t, rec, testConfig(), extractor, nil)

	if _, err := c.GetMyListings(context.Background()); err == nil {
		t.Fatal("expected an error for an unparsable count marker")
	}
}

func TestGetMyListingsRequiresLogin(t *testing.T) {
	rec := newRecorder()
	c := newTestClient(t, rec, testConfig(), &stubExtractor{}, nil)
	c.loggedIn = false

	_, err := c.GetMyListings(context.Background())
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
	if rec.count() != 0 {
		t.Errorf("request sent before login check")
	}
}
