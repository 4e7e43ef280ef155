package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"auction-ledger/internal/auctionerrors"
	"auction-ledger/internal/models"
)

// Operation is the closed set of ledger operations. Wire names are kept
// stable for callers that still speak the original operation vocabulary.
type Operation string

const (
	OpInitLedger           Operation = "initLedger"
	OpQuery                Operation = "query"
	OpCreateVehicle        Operation = "createVehicle"
	OpCreateVehicleListing Operation = "createVehicleListing"
	OpCreateMember         Operation = "createMember"
	OpMakeOffer            Operation = "makeOffer"
	OpCloseBidding         Operation = "closeBidding"
)

// arity is the exact positional argument count per operation
var arity = map[Operation]int{
	OpInitLedger:           0,
	OpQuery:                1,
	OpCreateVehicle:        2, // key, owner
	OpCreateVehicleListing: 4, // key, reservePrice, description, vehicle
	OpCreateMember:         4, // key, firstName, lastName, balance
	OpMakeOffer:            3, // bidPrice, listing, member
	OpCloseBidding:         1, // listing
}

// AuctionEngine is the set of typed operations the dispatcher forwards to
type AuctionEngine interface {
	InitLedger(ctx context.Context) error
	CreateMember(ctx context.Context, key, firstName, lastName string, balance int) (models.Member, error)
	CreateVehicle(ctx context.Context, key, owner string) (models.Vehicle, error)
	CreateVehicleListing(ctx context.Context, key string, reservePrice int, description, vehicle string) (models.VehicleListing, error)
	MakeOffer(ctx context.Context, bidPrice int, listingKey, memberKey string) (models.Offer, error)
	CloseBidding(ctx context.Context, listingKey string) (models.VehicleListing, error)
	Query(ctx context.Context, key string) ([]byte, error)
}

// Dispatcher resolves an operation name plus flat positional string
// arguments into one typed engine call. Names outside the closed set fail
// with ErrUnknownOperation; numeric fields are parsed exactly once here so
// malformed input never reaches the engine.
type Dispatcher struct {
	engine AuctionEngine
}

// NewDispatcher creates a new Dispatcher instance
func NewDispatcher(engine AuctionEngine) *Dispatcher {
	return &Dispatcher{
		engine: engine,
	}
}

// Invoke runs one named operation and returns its payload bytes. The
// payload is the raw record for query, the settled listing for
// closeBidding, the created record for constructors and makeOffer, and
// empty for initLedger.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args []string) ([]byte, error) {
	op := Operation(name)
	want, known := arity[op]
	if !known {
		return nil, fmt.Errorf("dispatch: %q: %w", name, auctionerrors.ErrUnknownOperation)
	}
	if len(args) != want {
		return nil, fmt.Errorf("dispatch: %s expects %d arguments, got %d: %w",
			name, want, len(args), auctionerrors.ErrArgumentCount)
	}

	switch op {
	case OpInitLedger:
		return nil, d.engine.InitLedger(ctx)

	case OpQuery:
		return d.engine.Query(ctx, args[0])

	case OpCreateVehicle:
		vehicle, err := d.engine.CreateVehicle(ctx, args[0], args[1])
		if err != nil {
			return nil, err
		}
		return marshalPayload(vehicle)

	case OpCreateVehicleListing:
		reservePrice, err := parseAmount("reservePrice", args[1])
		if err != nil {
			return nil, err
		}
		listing, err := d.engine.CreateVehicleListing(ctx, args[0], reservePrice, args[2], args[3])
		if err != nil {
			return nil, err
		}
		return marshalPayload(listing)

	case OpCreateMember:
		balance, err := parseAmount("balance", args[3])
		if err != nil {
			return nil, err
		}
		member, err := d.engine.CreateMember(ctx, args[0], args[1], args[2], balance)
		if err != nil {
			return nil, err
		}
		return marshalPayload(member)

	case OpMakeOffer:
		bidPrice, err := parseAmount("bidPrice", args[0])
		if err != nil {
			return nil, err
		}
		offer, err := d.engine.MakeOffer(ctx, bidPrice, args[1], args[2])
		if err != nil {
			return nil, err
		}
		return marshalPayload(offer)

	case OpCloseBidding:
		listing, err := d.engine.CloseBidding(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return marshalPayload(listing)
	}

	return nil, fmt.Errorf("dispatch: %q: %w", name, auctionerrors.ErrUnknownOperation)
}

func parseAmount(field, raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("dispatch: %s %q is not an integer: %w", field, raw, auctionerrors.ErrInvalidArgument)
	}
	return value, nil
}

func marshalPayload(record any) ([]byte, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode payload: %w", err)
	}
	return payload, nil
}
