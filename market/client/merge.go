package client

import (
	"fmt"

	"github.com/steamkit/gomarket/market/types"
)

// MergeListings joins raw listing fragments with the listing-id to
// asset-ref table and the description table into complete listings.
//
// A listing whose asset reference or description does not resolve is a
// defect in the caller-supplied tables: the merge fails instead of
// silently dropping the entry, because an incomplete listing must never
// be surfaced.
func MergeListings(raw []types.RawListing, assetRefs map[string]types.AssetRef, descriptions types.DescriptionTable) (*types.ListingCollection, error) {
	coll := types.NewListingCollection()
	for _, rl := range raw {
		ref, ok := assetRefs[rl.ListingID]
		if !ok {
			return nil, &APIError{Message: fmt.Sprintf("listing %s has no asset reference", rl.ListingID)}
		}
		desc, ok := descriptions.Lookup(ref)
		if !ok {
			return nil, &APIError{Message: fmt.Sprintf("asset %s/%s/%s of listing %s has no description", ref.AppID, ref.ContextID, ref.AssetID, rl.ListingID)}
		}
		coll.SellListings[rl.ListingID] = types.Listing{
			ListingID:        rl.ListingID,
			BuyerPay:         rl.BuyerPay,
			YouReceive:       rl.YouReceive,
			CreatedOn:        rl.CreatedOn,
			NeedConfirmation: rl.NeedConfirmation,
			Asset:            ref,
			Description:      desc,
		}
	}
	return coll, nil
}
