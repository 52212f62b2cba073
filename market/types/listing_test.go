package types

import "testing"

func TestDescriptionTableLookup(t *testing.T) {
	table := DescriptionTable{
		"730": {"2": {"A1": {MarketHashName: "AK-47 | Redline (Field-Tested)"}}},
	}

	tests := []struct {
		name string
		ref  AssetRef
		ok   bool
	}{
		{"hit", AssetRef{AppID: "730", ContextID: "2", AssetID: "A1"}, true},
		{"unknown app", AssetRef{AppID: "440", ContextID: "2", AssetID: "A1"}, false},
		{"unknown context", AssetRef{AppID: "730", ContextID: "6", AssetID: "A1"}, false},
		{"unknown asset", AssetRef{AppID: "730", ContextID: "2", AssetID: "A2"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := table.Lookup(tt.ref); ok != tt.ok {
				t.Errorf("Lookup ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestListingCollectionOverlay(t *testing.T) {
	base := NewListingCollection()
	base.SellListings["L1"] = Listing{ListingID: "L1", BuyerPay: "$1.00"}
	base.SellListings["L2"] = Listing{ListingID: "L2", BuyerPay: "$2.00"}
	base.BuyOrders["B1"] = BuyOrderEntry{OrderID: "B1", Quantity: 1}

	other := NewListingCollection()
	other.SellListings["L2"] = Listing{ListingID: "L2", BuyerPay: "$2.50"}
	other.SellListings["L3"] = Listing{ListingID: "L3", BuyerPay: "$3.00"}
	other.BuyOrders["B2"] = BuyOrderEntry{OrderID: "B2", Quantity: 2}

	base.Overlay(other)

	if len(base.SellListings) != 3 {
		t.Fatalf("sell listings = %d, want the key union", len(base.SellListings))
	}
	if got := base.SellListings["L2"].BuyerPay; got != "$2.50" {
		t.Errorf("shared key kept the earlier value: %s", got)
	}
	if got := base.SellListings["L1"].BuyerPay; got != "$1.00" {
		t.Errorf("unshared key lost: %s", got)
	}
	if len(base.BuyOrders) != 2 {
		t.Errorf("buy orders = %d, want 2", len(base.BuyOrders))
	}

	base.Overlay(nil) // no-op
	if len(base.SellListings) != 3 {
		t.Errorf("nil overlay mutated the collection")
	}
}
