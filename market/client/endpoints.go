package client

// Marketplace endpoint paths, relative to the community host.
const (
	// Reads
	EndpointPriceOverview = "/market/priceoverview/"
	EndpointPriceHistory  = "/market/pricehistory/"
	EndpointMarketHome    = "/market"
	EndpointMyListings    = "/market/mylistings/render/"

	// Mutations
	EndpointSellItem       = "/market/sellitem/"
	EndpointCreateBuyOrder = "/market/createbuyorder/"
	EndpointBuyListing     = "/market/buylisting/"    // + listing id
	EndpointRemoveListing  = "/market/removelisting/" // + listing id
	EndpointCancelBuyOrder = "/market/cancelbuyorder/"
)

// countAll asks the render endpoint for every remaining entry in one
// response. Accepted only while the total stays under the bulk threshold.
const countAll = -1
