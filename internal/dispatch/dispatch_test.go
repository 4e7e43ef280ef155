package dispatch

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	auction "auction-ledger/internal/auctionEngine"
	"auction-ledger/internal/auctionerrors"
	"auction-ledger/internal/ledger"
	"auction-ledger/internal/models"
)

func newDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	engine := auction.NewEngine(ledger.NewMemoryStore())
	require.NoError(t, engine.InitLedger(context.Background()))
	return NewDispatcher(engine)
}

// Tests boundary validation: operation names, arity and numeric parsing
func TestDispatcher_Invoke_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name          string
		operation     string
		args          []string
		expectedError error
	}{
		{
			name:          "unknown_operation",
			operation:     "transferVehicle",
			args:          []string{"1234"},
			expectedError: auctionerrors.ErrUnknownOperation,
		},
		{
			name:          "empty_operation",
			operation:     "",
			args:          nil,
			expectedError: auctionerrors.ErrUnknownOperation,
		},
		{
			name:          "close_bidding_no_args",
			operation:     "closeBidding",
			args:          []string{},
			expectedError: auctionerrors.ErrArgumentCount,
		},
		{
			name:          "close_bidding_extra_args",
			operation:     "closeBidding",
			args:          []string{"ABCD", "extra"},
			expectedError: auctionerrors.ErrArgumentCount,
		},
		{
			name:          "make_offer_missing_member",
			operation:     "makeOffer",
			args:          []string{"4000", "ABCD"},
			expectedError: auctionerrors.ErrArgumentCount,
		},
		{
			name:          "make_offer_malformed_price",
			operation:     "makeOffer",
			args:          []string{"four thousand", "ABCD", "memberB@acme.org"},
			expectedError: auctionerrors.ErrInvalidArgument,
		},
		{
			name:          "create_member_malformed_balance",
			operation:     "createMember",
			args:          []string{"memberD@acme.org", "Dana", "Smith", "12.5"},
			expectedError: auctionerrors.ErrInvalidArgument,
		},
		{
			name:          "create_listing_malformed_reserve",
			operation:     "createVehicleListing",
			args:          []string{"EFGH", "reserve", "Arium Nova", "1234"},
			expectedError: auctionerrors.ErrInvalidArgument,
		},
		{
			name:          "init_ledger_with_args",
			operation:     "initLedger",
			args:          []string{"unexpected"},
			expectedError: auctionerrors.ErrArgumentCount,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := newDispatcher(t)
			_, err := d.Invoke(ctx, tc.operation, tc.args)
			require.ErrorIs(t, err, tc.expectedError)
		})
	}
}

// A full auction driven purely through named operations
func TestDispatcher_Invoke_AuctionFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := newDispatcher(t)

	_, err := d.Invoke(ctx, "createMember", []string{"memberD@acme.org", "Dana", "Smith", "6000"})
	require.NoError(t, err)

	payload, err := d.Invoke(ctx, "makeOffer", []string{"4000", "ABCD", "memberD@acme.org"})
	require.NoError(t, err)
	var offer models.Offer
	require.NoError(t, json.Unmarshal(payload, &offer))
	require.Equal(t, 4000, offer.BidPrice)
	require.Equal(t, "memberD@acme.org", offer.Member)

	payload, err = d.Invoke(ctx, "closeBidding", []string{"ABCD"})
	require.NoError(t, err)
	var listing models.VehicleListing
	require.NoError(t, json.Unmarshal(payload, &listing))
	require.Equal(t, models.StateSold, listing.ListingState)
	require.Empty(t, listing.Offers)

	payload, err = d.Invoke(ctx, "query", []string{"1234"})
	require.NoError(t, err)
	var vehicle models.Vehicle
	require.NoError(t, json.Unmarshal(payload, &vehicle))
	require.Equal(t, "memberD@acme.org", vehicle.Owner)

	payload, err = d.Invoke(ctx, "query", []string{"memberD@acme.org"})
	require.NoError(t, err)
	var buyer models.Member
	require.NoError(t, json.Unmarshal(payload, &buyer))
	require.Equal(t, 2000, buyer.Balance)
}

// Engine failures pass through with their sentinel intact
func TestDispatcher_Invoke_EngineErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name          string
		operation     string
		args          []string
		expectedError error
	}{
		{
			name:          "query_absent_key",
			operation:     "query",
			args:          []string{"missing"},
			expectedError: auctionerrors.ErrNotFound,
		},
		{
			name:          "close_without_offers",
			operation:     "closeBidding",
			args:          []string{"ABCD"},
			expectedError: auctionerrors.ErrNoOffers,
		},
		{
			name:          "offer_above_balance",
			operation:     "makeOffer",
			args:          []string{"9999", "ABCD", "memberB@acme.org"},
			expectedError: auctionerrors.ErrInsufficientBalance,
		},
		{
			name:          "owner_self_bid",
			operation:     "makeOffer",
			args:          []string{"4000", "ABCD", "memberA@acme.org"},
			expectedError: auctionerrors.ErrInvalidBid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := newDispatcher(t)
			_, err := d.Invoke(ctx, tc.operation, tc.args)
			require.ErrorIs(t, err, tc.expectedError)
		})
	}
}
