package helpers

// Request/Response DTOs
type InvokeRequest struct {
	Operation string   `json:"operation" binding:"required"`
	Args      []string `json:"args"`
}

type CreateMemberRequest struct {
	Key       string `json:"key" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Balance   int    `json:"balance" binding:"gte=0"`
}

type CreateVehicleRequest struct {
	Key   string `json:"key" binding:"required"`
	Owner string `json:"owner" binding:"required"`
}

type CreateListingRequest struct {
	Key          string `json:"key" binding:"required"`
	ReservePrice int    `json:"reserve_price" binding:"gte=0"`
	Description  string `json:"description"`
	Vehicle      string `json:"vehicle" binding:"required"`
}

type MakeOfferRequest struct {
	BidPrice int    `json:"bid_price" binding:"required,gt=0"`
	Listing  string `json:"listing" binding:"required"`
	Member   string `json:"member" binding:"required"`
}

type OfferResponse struct {
	OfferID   string `json:"offer_id"`
	BidPrice  int    `json:"bid_price"`
	Listing   string `json:"listing"`
	Member    string `json:"member"`
	CreatedAt string `json:"created_at"`
}

// RecordResponse pairs a ledger key with the record written under it
type RecordResponse struct {
	Key    string `json:"key"`
	Record any    `json:"record"`
}
