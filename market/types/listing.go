package types

import (
	"bytes"
	"encoding/json"
)

// RawListing is a sell-listing fragment as the page extractor recovers it,
// before its asset reference and description have been resolved.
type RawListing struct {
	ListingID        string
	BuyerPay         string
	YouReceive       string
	CreatedOn        string
	NeedConfirmation bool
}

// AssetRef addresses the game item instance a listing is selling.
type AssetRef struct {
	AppID     string
	ContextID string
	AssetID   string
	Amount    string
}

// Description is the marketplace's description record for an asset.
type Description struct {
	AppID          Code   `json:"appid"`
	ClassID        string `json:"classid"`
	InstanceID     string `json:"instanceid"`
	Name           string `json:"name"`
	MarketName     string `json:"market_name"`
	MarketHashName string `json:"market_hash_name"`
	Type           string `json:"type"`
	Tradable       Code   `json:"tradable"`
	Marketable     Code   `json:"marketable"`
	Commodity      Code   `json:"commodity"`
	IconURL        string `json:"icon_url"`
}

// DescriptionTable is the asset description lookup keyed
// appid -> contextid -> assetid. The marketplace serializes an empty table
// as a JSON array, so decoding tolerates both shapes.
type DescriptionTable map[string]map[string]map[string]Description

func (t *DescriptionTable) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" || data[0] == '[' {
		*t = DescriptionTable{}
		return nil
	}
	var m map[string]map[string]map[string]Description
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = m
	return nil
}

// Lookup resolves the description for an asset reference.
func (t DescriptionTable) Lookup(ref AssetRef) (Description, bool) {
	contexts, ok := t[ref.AppID]
	if !ok {
		return Description{}, false
	}
	assets, ok := contexts[ref.ContextID]
	if !ok {
		return Description{}, false
	}
	desc, ok := assets[ref.AssetID]
	return desc, ok
}

// Listing is a complete sell listing: the raw fragment joined with its
// asset reference and description. A listing missing either resolution is
// never surfaced.
type Listing struct {
	ListingID        string
	BuyerPay         string
	YouReceive       string
	CreatedOn        string
	NeedConfirmation bool
	Asset            AssetRef
	Description      Description
}

// BuyOrderEntry is an outstanding buy order shown on the listings page.
// Buy orders carry their item data inline and skip the description merge.
type BuyOrderEntry struct {
	OrderID        string
	MarketHashName string
	Price          string
	Quantity       int
	AppID          string
}

// ListingCollection partitions the account's market activity into sell
// listings and buy orders, both keyed by their marketplace id.
type ListingCollection struct {
	SellListings map[string]Listing
	BuyOrders    map[string]BuyOrderEntry
}

func NewListingCollection() *ListingCollection {
	return &ListingCollection{
		SellListings: make(map[string]Listing),
		BuyOrders:    make(map[string]BuyOrderEntry),
	}
}

// Overlay folds other into the collection. Later entries win on shared
// keys; keys unique to either side are preserved.
func (c *ListingCollection) Overlay(other *ListingCollection) {
	if other == nil {
		return
	}
	for id, l := range other.SellListings {
		c.SellListings[id] = l
	}
	for id, o := range other.BuyOrders {
		c.BuyOrders[id] = o
	}
}
