package client

import (
	"github.com/steamkit/gomarket/market/types"
)

// ListingPage is the extractor's structured view of the listings landing
// page. The count markers stay raw text here: the client owns turning
// "1,500"-style values into integers, the extractor owns finding them.
type ListingPage struct {
	Listings     []types.RawListing
	AssetRefs    map[string]types.AssetRef
	Descriptions types.DescriptionTable
	BuyOrders    []types.BuyOrderEntry

	// ShowingMarker and TotalMarker are the raw "showing N of M" values,
	// empty when the page carries no markers (inline page is complete).
	ShowingMarker string
	TotalMarker   string
}

// PageExtractor recovers listing data from the marketplace's HTML
// surfaces. Implementations live outside this module; every table they
// return is treated as untyped input and re-validated during the merge.
type PageExtractor interface {
	// LandingPage parses the /market landing page.
	LandingPage(html string) (*ListingPage, error)

	// RenderFragments parses a render response's results_html and hovers
	// fields into raw listings and the listing-id to asset-ref table.
	RenderFragments(resultsHTML, hovers string) ([]types.RawListing, map[string]types.AssetRef, error)
}
