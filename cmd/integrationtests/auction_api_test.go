package integrationtests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"auction-ledger/internal/models"
	"auction-ledger/services/auction/helpers"
)

// Full registration flow over the typed REST surface
func TestRegistrationFlow(t *testing.T) {
	router := SetupTestRouter(t)

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/members", helpers.CreateMemberRequest{
		Key: "memberA@acme.org", FirstName: "Amy", LastName: "Williams", Balance: 5000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// duplicate registration is rejected
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/members", helpers.CreateMemberRequest{
		Key: "memberA@acme.org", FirstName: "Anna", LastName: "Wilson", Balance: 100,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/vehicles", helpers.CreateVehicleRequest{
		Key: "1234", Owner: "memberA@acme.org",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// vehicle with unregistered owner is rejected
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/vehicles", helpers.CreateVehicleRequest{
		Key: "5678", Owner: "ghost@acme.org",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/listings", helpers.CreateListingRequest{
		Key: "ABCD", ReservePrice: 3500, Description: "Arium Nova", Vehicle: "1234",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	record := resp["data"].(map[string]any)["record"].(map[string]any)
	require.Equal(t, "FOR_SALE", record["listingState"])
}

// Scenario: B bids 4000 over a 3500 reserve, close settles the sale
func TestAuctionSoldScenario(t *testing.T) {
	router := SetupSeededRouter(t)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/offers", helpers.MakeOfferRequest{
		BidPrice: 4000, Listing: "ABCD", Member: "memberB@acme.org",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, resp["data"].(map[string]any)["offer_id"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/listings/ABCD/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	record := resp["data"].(map[string]any)["record"].(map[string]any)
	require.Equal(t, "SOLD", record["listingState"])
	require.Empty(t, record["offers"])

	var vehicle models.Vehicle
	QueryRecord(t, router, "1234", &vehicle)
	require.Equal(t, "memberB@acme.org", vehicle.Owner)

	var seller, buyer models.Member
	QueryRecord(t, router, "memberA@acme.org", &seller)
	QueryRecord(t, router, "memberB@acme.org", &buyer)
	require.Equal(t, 9000, seller.Balance)
	require.Equal(t, 1000, buyer.Balance)
}

// Scenario: highest bid 3000 stays below the 3500 reserve
func TestAuctionReserveNotMetScenario(t *testing.T) {
	router := SetupSeededRouter(t)

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/offers", helpers.MakeOfferRequest{
		BidPrice: 3000, Listing: "ABCD", Member: "memberB@acme.org",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/listings/ABCD/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	record := resp["data"].(map[string]any)["record"].(map[string]any)
	require.Equal(t, "RESERVE_NOT_MET", record["listingState"])

	// no settlement happened
	var vehicle models.Vehicle
	QueryRecord(t, router, "1234", &vehicle)
	require.Equal(t, "memberA@acme.org", vehicle.Owner)

	var seller, buyer models.Member
	QueryRecord(t, router, "memberA@acme.org", &seller)
	QueryRecord(t, router, "memberB@acme.org", &buyer)
	require.Equal(t, 5000, seller.Balance)
	require.Equal(t, 5000, buyer.Balance)

	// the terminal state is persisted
	var listing models.VehicleListing
	QueryRecord(t, router, "ABCD", &listing)
	require.Equal(t, models.StateReserveNotMet, listing.ListingState)
}

// Offer rejections surface the right statuses and leave state untouched
func TestOfferRejections(t *testing.T) {
	tests := []struct {
		name       string
		request    helpers.MakeOfferRequest
		wantStatus int
	}{
		{
			name:       "insufficient_balance",
			request:    helpers.MakeOfferRequest{BidPrice: 5001, Listing: "ABCD", Member: "memberB@acme.org"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "owner_self_bid",
			request:    helpers.MakeOfferRequest{BidPrice: 4000, Listing: "ABCD", Member: "memberA@acme.org"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown_listing",
			request:    helpers.MakeOfferRequest{BidPrice: 4000, Listing: "WXYZ", Member: "memberB@acme.org"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown_member",
			request:    helpers.MakeOfferRequest{BidPrice: 4000, Listing: "ABCD", Member: "ghost@acme.org"},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupSeededRouter(t)

			_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/offers", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			var listing models.VehicleListing
			QueryRecord(t, router, "ABCD", &listing)
			require.Empty(t, listing.Offers, "failed offers must not be recorded")
		})
	}
}

// Closing without offers fails and leaves the listing FOR_SALE
func TestCloseBiddingWithoutOffers(t *testing.T) {
	router := SetupSeededRouter(t)

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/listings/ABCD/close", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var listing models.VehicleListing
	QueryRecord(t, router, "ABCD", &listing)
	require.Equal(t, models.StateForSale, listing.ListingState)
}

// Query semantics over HTTP
func TestQueryEndpoint(t *testing.T) {
	router := SetupSeededRouter(t)

	t.Run("existing_key_returns_stored_record", func(t *testing.T) {
		var member models.Member
		QueryRecord(t, router, "memberC@acme.org", &member)
		require.Equal(t, "Tom", member.FirstName)
		require.Equal(t, 5000, member.Balance)
	})

	t.Run("absent_key", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/query/missing", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// The same auction driven entirely through the named-operation surface
func TestInvokeDispatchFlow(t *testing.T) {
	router := SetupTestRouter(t)

	invoke := func(operation string, args ...string) (map[string]any, int) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/invoke", helpers.InvokeRequest{
			Operation: operation,
			Args:      args,
		})
		return resp, w.Code
	}

	_, code := invoke("initLedger")
	require.Equal(t, http.StatusOK, code)

	offer, code := invoke("makeOffer", "4000", "ABCD", "memberB@acme.org")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 4000.0, offer["bidPrice"])

	listing, code := invoke("closeBidding", "ABCD")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "SOLD", listing["listingState"])

	vehicle, code := invoke("query", "1234")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "memberB@acme.org", vehicle["owner"])

	_, code = invoke("transferVehicle", "1234")
	require.Equal(t, http.StatusBadRequest, code)

	_, code = invoke("closeBidding")
	require.Equal(t, http.StatusBadRequest, code)
}
