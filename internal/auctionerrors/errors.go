package auctionerrors

import "errors"

// Ledger-level errors
var (
	ErrNotFound      = errors.New("record not found")
	ErrWriteConflict = errors.New("ledger write conflict")
)

// business logic errors
var (
	ErrInsufficientBalance = errors.New("bid exceeds member balance")
	ErrInvalidBid          = errors.New("owner cannot bid on own vehicle")
	ErrNoOffers            = errors.New("no offers on listing")
	ErrListingClosed       = errors.New("listing is no longer open for bidding")
	ErrAlreadyExists       = errors.New("record already exists")
)

// dispatch/validation errors
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArgumentCount    = errors.New("wrong number of arguments")
	ErrInvalidArgument  = errors.New("invalid argument")
)
