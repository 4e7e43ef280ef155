package auction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"auction-ledger/internal/auctionerrors"
	"auction-ledger/internal/ledger"
	"auction-ledger/internal/models"
	"auction-ledger/utils"
)

// Engine implements the auction business logic over a versioned key-value
// ledger. It holds no state of its own between calls; each operation opens
// one ledger transaction, performs its reads and writes, and commits once,
// so the whole write set of an operation lands atomically or not at all.
type Engine struct {
	store ledger.Store
}

// NewEngine creates a new Engine instance
func NewEngine(store ledger.Store) *Engine {
	return &Engine{
		store: store,
	}
}

// CreateMember registers a new member record under the given key
func (e *Engine) CreateMember(ctx context.Context, key, firstName, lastName string, balance int) (models.Member, error) {
	if key == "" {
		return models.Member{}, fmt.Errorf("engine: %w - empty member key", auctionerrors.ErrInvalidArgument)
	}
	if balance < 0 {
		return models.Member{}, fmt.Errorf("engine: %w - negative balance %d", auctionerrors.ErrInvalidArgument, balance)
	}

	member := models.Member{
		FirstName: firstName,
		LastName:  lastName,
		Balance:   balance,
	}

	if err := e.createRecord(ctx, key, member); err != nil {
		return models.Member{}, fmt.Errorf("engine: failed to create member %s: %w", key, err)
	}
	return member, nil
}

// CreateVehicle registers a new vehicle record under the given key. The
// owner must already be a registered member.
func (e *Engine) CreateVehicle(ctx context.Context, key, owner string) (models.Vehicle, error) {
	if key == "" || owner == "" {
		return models.Vehicle{}, fmt.Errorf("engine: %w - missing vehicle key or owner", auctionerrors.ErrInvalidArgument)
	}

	txn, err := e.store.Begin(ctx)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("engine: begin txn: %w", err)
	}
	defer txn.Rollback(ctx)

	if _, err := loadMember(ctx, txn, owner); err != nil {
		return models.Vehicle{}, fmt.Errorf("engine: vehicle owner %s: %w", owner, err)
	}
	if err := ensureAbsent(ctx, txn, key); err != nil {
		return models.Vehicle{}, fmt.Errorf("engine: failed to create vehicle %s: %w", key, err)
	}

	vehicle := models.Vehicle{Owner: owner}
	if err := putRecord(ctx, txn, key, vehicle); err != nil {
		return models.Vehicle{}, fmt.Errorf("engine: failed to create vehicle %s: %w", key, err)
	}
	if err := txn.Commit(ctx); err != nil {
		return models.Vehicle{}, fmt.Errorf("engine: failed to create vehicle %s: %w", key, err)
	}
	return vehicle, nil
}

// CreateVehicleListing puts a vehicle up for sale. Listings always start in
// FOR_SALE with an empty offer collection.
func (e *Engine) CreateVehicleListing(ctx context.Context, key string, reservePrice int, description, vehicle string) (models.VehicleListing, error) {
	if key == "" || vehicle == "" {
		return models.VehicleListing{}, fmt.Errorf("engine: %w - missing listing key or vehicle", auctionerrors.ErrInvalidArgument)
	}
	if reservePrice < 0 {
		return models.VehicleListing{}, fmt.Errorf("engine: %w - negative reserve price %d", auctionerrors.ErrInvalidArgument, reservePrice)
	}

	txn, err := e.store.Begin(ctx)
	if err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: begin txn: %w", err)
	}
	defer txn.Rollback(ctx)

	if _, err := loadVehicle(ctx, txn, vehicle); err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: listed vehicle %s: %w", vehicle, err)
	}
	if err := ensureAbsent(ctx, txn, key); err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: failed to create listing %s: %w", key, err)
	}

	listing := models.VehicleListing{
		ReservePrice: reservePrice,
		Description:  description,
		ListingState: models.StateForSale,
		Vehicle:      vehicle,
	}
	if err := putRecord(ctx, txn, key, listing); err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: failed to create listing %s: %w", key, err)
	}
	if err := txn.Commit(ctx); err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: failed to create listing %s: %w", key, err)
	}
	return listing, nil
}

// MakeOffer validates and appends a member's bid to a listing's offer
// collection. The balance check only validates sufficiency at submission
// time; funds are not reserved, settlement happens at CloseBidding.
func (e *Engine) MakeOffer(ctx context.Context, bidPrice int, listingKey, memberKey string) (models.Offer, error) {
	if listingKey == "" || memberKey == "" {
		return models.Offer{}, fmt.Errorf("engine: %w - missing listing or member key", auctionerrors.ErrInvalidArgument)
	}
	if bidPrice <= 0 {
		return models.Offer{}, fmt.Errorf("engine: %w - non-positive bid price %d", auctionerrors.ErrInvalidArgument, bidPrice)
	}

	txn, err := e.store.Begin(ctx)
	if err != nil {
		return models.Offer{}, fmt.Errorf("engine: begin txn: %w", err)
	}
	defer txn.Rollback(ctx)

	listing, err := loadListing(ctx, txn, listingKey)
	if err != nil {
		return models.Offer{}, fmt.Errorf("engine: listing %s: %w", listingKey, err)
	}
	if listing.ListingState != models.StateForSale {
		return models.Offer{}, fmt.Errorf("engine: listing %s is %s: %w", listingKey, listing.ListingState, auctionerrors.ErrListingClosed)
	}

	vehicle, err := loadVehicle(ctx, txn, listing.Vehicle)
	if err != nil {
		return models.Offer{}, fmt.Errorf("engine: vehicle %s: %w", listing.Vehicle, err)
	}

	member, err := loadMember(ctx, txn, memberKey)
	if err != nil {
		return models.Offer{}, fmt.Errorf("engine: member %s: %w", memberKey, err)
	}

	if member.Balance < bidPrice {
		return models.Offer{}, fmt.Errorf("engine: bid %d exceeds balance %d of member %s: %w",
			bidPrice, member.Balance, memberKey, auctionerrors.ErrInsufficientBalance)
	}
	if vehicle.Owner == memberKey {
		return models.Offer{}, fmt.Errorf("engine: member %s owns vehicle %s: %w",
			memberKey, listing.Vehicle, auctionerrors.ErrInvalidBid)
	}

	offer := models.Offer{
		OfferID:   utils.GenerateID(),
		BidPrice:  bidPrice,
		Listing:   listingKey,
		Member:    memberKey,
		CreatedAt: time.Now().UTC(),
	}
	listing.Offers = append(listing.Offers, offer)

	if err := putRecord(ctx, txn, listingKey, listing); err != nil {
		return models.Offer{}, fmt.Errorf("engine: failed to record offer on listing %s: %w", listingKey, err)
	}
	if err := txn.Commit(ctx); err != nil {
		return models.Offer{}, fmt.Errorf("engine: failed to record offer on listing %s: %w", listingKey, err)
	}
	return offer, nil
}

// CloseBidding resolves a listing. The highest offer wins, ties going to
// the earliest submission. At or above the reserve price the call settles:
// seller credited, buyer debited, vehicle reassigned, offers cleared and
// the listing marked SOLD, all in one atomic ledger commit. Below reserve
// the listing is persisted as RESERVE_NOT_MET and nothing else changes.
// No balance re-validation happens here; only the submission-time check
// applies, so a buyer's balance can go negative if they overcommitted
// across listings.
func (e *Engine) CloseBidding(ctx context.Context, listingKey string) (models.VehicleListing, error) {
	if listingKey == "" {
		return models.VehicleListing{}, fmt.Errorf("engine: %w - empty listing key", auctionerrors.ErrInvalidArgument)
	}

	txn, err := e.store.Begin(ctx)
	if err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: begin txn: %w", err)
	}
	defer txn.Rollback(ctx)

	listing, err := loadListing(ctx, txn, listingKey)
	if err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: listing %s: %w", listingKey, err)
	}
	if listing.ListingState != models.StateForSale {
		return models.VehicleListing{}, fmt.Errorf("engine: listing %s is %s: %w", listingKey, listing.ListingState, auctionerrors.ErrListingClosed)
	}
	if len(listing.Offers) == 0 {
		return models.VehicleListing{}, fmt.Errorf("engine: listing %s: %w", listingKey, auctionerrors.ErrNoOffers)
	}

	// highest bid wins, first submitted entry wins a tie
	highest := listing.Offers[0]
	for _, offer := range listing.Offers[1:] {
		if offer.BidPrice > highest.BidPrice {
			highest = offer
		}
	}

	if highest.BidPrice < listing.ReservePrice {
		listing.ListingState = models.StateReserveNotMet
		if err := putRecord(ctx, txn, listingKey, listing); err != nil {
			return models.VehicleListing{}, fmt.Errorf("engine: failed to close listing %s: %w", listingKey, err)
		}
		if err := txn.Commit(ctx); err != nil {
			return models.VehicleListing{}, fmt.Errorf("engine: failed to close listing %s: %w", listingKey, err)
		}
		return listing, nil
	}

	buyer, err := loadMember(ctx, txn, highest.Member)
	if err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: buyer %s: %w", highest.Member, err)
	}
	vehicle, err := loadVehicle(ctx, txn, listing.Vehicle)
	if err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: vehicle %s: %w", listing.Vehicle, err)
	}
	sellerKey := vehicle.Owner
	seller, err := loadMember(ctx, txn, sellerKey)
	if err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: seller %s: %w", sellerKey, err)
	}

	seller.Balance += highest.BidPrice
	buyer.Balance -= highest.BidPrice
	vehicle.Owner = highest.Member
	listing.Offers = nil
	listing.ListingState = models.StateSold

	if err := putRecord(ctx, txn, highest.Member, buyer); err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: failed to settle listing %s: %w", listingKey, err)
	}
	if err := putRecord(ctx, txn, sellerKey, seller); err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: failed to settle listing %s: %w", listingKey, err)
	}
	if err := putRecord(ctx, txn, listingKey, listing); err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: failed to settle listing %s: %w", listingKey, err)
	}
	if err := putRecord(ctx, txn, listing.Vehicle, vehicle); err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: failed to settle listing %s: %w", listingKey, err)
	}
	if err := txn.Commit(ctx); err != nil {
		return models.VehicleListing{}, fmt.Errorf("engine: failed to settle listing %s: %w", listingKey, err)
	}
	return listing, nil
}

// Query returns the raw stored bytes for a key
func (e *Engine) Query(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("engine: %w - empty query key", auctionerrors.ErrInvalidArgument)
	}

	txn, err := e.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("engine: begin txn: %w", err)
	}
	defer txn.Rollback(ctx)

	value, err := txn.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("engine: query %s: %w", key, err)
	}
	return value, nil
}

// InitLedger seeds the demonstration state: three members, one vehicle and
// one FOR_SALE listing. Overwrites any existing records at those keys, so
// repeated calls reset the demo.
func (e *Engine) InitLedger(ctx context.Context) error {
	txn, err := e.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("engine: begin txn: %w", err)
	}
	defer txn.Rollback(ctx)

	seeds := []struct {
		key    string
		record any
	}{
		{"memberA@acme.org", models.Member{FirstName: "Amy", LastName: "Williams", Balance: 5000}},
		{"memberB@acme.org", models.Member{FirstName: "Billy", LastName: "Thompson", Balance: 5000}},
		{"memberC@acme.org", models.Member{FirstName: "Tom", LastName: "Werner", Balance: 5000}},
		{"1234", models.Vehicle{Owner: "memberA@acme.org"}},
		{"ABCD", models.VehicleListing{
			ReservePrice: 3500,
			Description:  "Arium Nova",
			ListingState: models.StateForSale,
			Vehicle:      "1234",
		}},
	}

	for _, seed := range seeds {
		if err := putRecord(ctx, txn, seed.key, seed.record); err != nil {
			return fmt.Errorf("engine: failed to seed %s: %w", seed.key, err)
		}
	}
	if err := txn.Commit(ctx); err != nil {
		return fmt.Errorf("engine: failed to seed ledger: %w", err)
	}
	return nil
}

// createRecord writes one record in its own txn, rejecting occupied keys
func (e *Engine) createRecord(ctx context.Context, key string, record any) error {
	txn, err := e.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin txn: %w", err)
	}
	defer txn.Rollback(ctx)

	if err := ensureAbsent(ctx, txn, key); err != nil {
		return err
	}
	if err := putRecord(ctx, txn, key, record); err != nil {
		return err
	}
	return txn.Commit(ctx)
}

// ensureAbsent fails with ErrAlreadyExists when the key holds a record
func ensureAbsent(ctx context.Context, txn ledger.Txn, key string) error {
	_, err := txn.Get(ctx, key)
	if err == nil {
		return fmt.Errorf("key %s: %w", key, auctionerrors.ErrAlreadyExists)
	}
	if !errors.Is(err, auctionerrors.ErrNotFound) {
		return err
	}
	return nil
}

func loadMember(ctx context.Context, txn ledger.Txn, key string) (models.Member, error) {
	var member models.Member
	if err := getRecord(ctx, txn, key, &member); err != nil {
		return models.Member{}, err
	}
	return member, nil
}

func loadVehicle(ctx context.Context, txn ledger.Txn, key string) (models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := getRecord(ctx, txn, key, &vehicle); err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

func loadListing(ctx context.Context, txn ledger.Txn, key string) (models.VehicleListing, error) {
	var listing models.VehicleListing
	if err := getRecord(ctx, txn, key, &listing); err != nil {
		return models.VehicleListing{}, err
	}
	return listing, nil
}

func getRecord(ctx context.Context, txn ledger.Txn, key string, out any) error {
	value, err := txn.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(value, out); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

func putRecord(ctx context.Context, txn ledger.Txn, key string, record any) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	return txn.Put(ctx, key, value)
}
