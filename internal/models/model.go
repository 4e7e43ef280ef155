package models

import "time"

// ListingState tracks where a listing is in its lifecycle. SOLD and
// RESERVE_NOT_MET are terminal.
type ListingState string

const (
	StateForSale       ListingState = "FOR_SALE"
	StateReserveNotMet ListingState = "RESERVE_NOT_MET"
	StateSold          ListingState = "SOLD"
)

// Member represents a registered auction participant
type Member struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Balance   int    `json:"balance"`
}

// Vehicle represents the asset under auction; Owner is a Member key
type Vehicle struct {
	Owner string `json:"owner"`
}

// Offer represents a member's bid on a listing. Offers are embedded in
// their listing's offer collection and live only as long as that entry.
type Offer struct {
	OfferID   string    `json:"offerId"`
	BidPrice  int       `json:"bidPrice"`
	Listing   string    `json:"listing"`
	Member    string    `json:"member"`
	CreatedAt time.Time `json:"createdAt"`
}

// VehicleListing represents an active or resolved sale of one vehicle
type VehicleListing struct {
	ReservePrice int          `json:"reservePrice"`
	Description  string       `json:"description"`
	ListingState ListingState `json:"listingState"`
	Offers       []Offer      `json:"offers"`
	Vehicle      string       `json:"vehicle"`
}
