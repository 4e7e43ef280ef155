package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-ledger/internal/models"
	"auction-ledger/services/auction/helpers"
	"auction-ledger/utils"
)

type AuctionEngineInterface interface {
	InitLedger(ctx context.Context) error
	CreateMember(ctx context.Context, key, firstName, lastName string, balance int) (models.Member, error)
	CreateVehicle(ctx context.Context, key, owner string) (models.Vehicle, error)
	CreateVehicleListing(ctx context.Context, key string, reservePrice int, description, vehicle string) (models.VehicleListing, error)
	MakeOffer(ctx context.Context, bidPrice int, listingKey, memberKey string) (models.Offer, error)
	CloseBidding(ctx context.Context, listingKey string) (models.VehicleListing, error)
	Query(ctx context.Context, key string) ([]byte, error)
}

type InvokerInterface interface {
	Invoke(ctx context.Context, name string, args []string) ([]byte, error)
}

type AuctionHandler struct {
	engine  AuctionEngineInterface
	invoker InvokerInterface
}

func NewAuctionHandler(engine AuctionEngineInterface, invoker InvokerInterface) *AuctionHandler {
	return &AuctionHandler{engine: engine, invoker: invoker}
}

// InvokeHandler handles POST /invoke - the named-operation dispatch surface
func (h *AuctionHandler) InvokeHandler(c *gin.Context) {
	var req helpers.InvokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "InvokeHandler", err)
		return
	}

	payload, err := h.invoker.Invoke(c.Request.Context(), req.Operation, req.Args)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("InvokeHandler: operation failed", map[string]any{
			"handler":   "InvokeHandler",
			"operation": req.Operation,
			"error":     err.Error(),
		})
		return
	}

	if len(payload) == 0 {
		utils.JSONResponse(c, http.StatusOK, nil, "operation completed")
	} else {
		utils.RawResponse(c, http.StatusOK, payload)
	}
	helpers.LogSuccess("InvokeHandler", "operation completed", map[string]any{
		"operation": req.Operation,
		"args":      len(req.Args),
	})
}

// InitLedgerHandler handles POST /init
func (h *AuctionHandler) InitLedgerHandler(c *gin.Context) {
	if err := h.engine.InitLedger(c.Request.Context()); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("InitLedgerHandler: failed to seed ledger", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "ledger seeded")
	helpers.LogSuccess("InitLedgerHandler", "ledger seeded", nil)
}

// CreateMemberHandler handles POST /members
func (h *AuctionHandler) CreateMemberHandler(c *gin.Context) {
	var req helpers.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateMemberHandler", err)
		return
	}

	member, err := h.engine.CreateMember(c.Request.Context(), req.Key, req.FirstName, req.LastName, req.Balance)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateMemberHandler: failed to register member", map[string]any{
			"handler": "CreateMemberHandler",
			"key":     req.Key,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.RecordResponse{Key: req.Key, Record: member}, "member registered")
	helpers.LogSuccess("CreateMemberHandler", "member registered", map[string]any{
		"key":     req.Key,
		"balance": member.Balance,
	})
}

// CreateVehicleHandler handles POST /vehicles
func (h *AuctionHandler) CreateVehicleHandler(c *gin.Context) {
	var req helpers.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateVehicleHandler", err)
		return
	}

	vehicle, err := h.engine.CreateVehicle(c.Request.Context(), req.Key, req.Owner)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateVehicleHandler: failed to register vehicle", map[string]any{
			"handler": "CreateVehicleHandler",
			"key":     req.Key,
			"owner":   req.Owner,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.RecordResponse{Key: req.Key, Record: vehicle}, "vehicle registered")
	helpers.LogSuccess("CreateVehicleHandler", "vehicle registered", map[string]any{
		"key":   req.Key,
		"owner": vehicle.Owner,
	})
}

// CreateListingHandler handles POST /listings
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	listing, err := h.engine.CreateVehicleListing(c.Request.Context(), req.Key, req.ReservePrice, req.Description, req.Vehicle)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateListingHandler: failed to create listing", map[string]any{
			"handler": "CreateListingHandler",
			"key":     req.Key,
			"vehicle": req.Vehicle,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.RecordResponse{Key: req.Key, Record: listing}, "listing created")
	helpers.LogSuccess("CreateListingHandler", "listing created", map[string]any{
		"key":           req.Key,
		"vehicle":       req.Vehicle,
		"reserve_price": listing.ReservePrice,
	})
}

// MakeOfferHandler handles POST /offers
func (h *AuctionHandler) MakeOfferHandler(c *gin.Context) {
	var req helpers.MakeOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "MakeOfferHandler", err)
		return
	}

	offer, err := h.engine.MakeOffer(c.Request.Context(), req.BidPrice, req.Listing, req.Member)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("MakeOfferHandler: failed to record offer", map[string]any{
			"handler": "MakeOfferHandler",
			"listing": req.Listing,
			"member":  req.Member,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.OfferResponse{
		OfferID:   offer.OfferID,
		BidPrice:  offer.BidPrice,
		Listing:   offer.Listing,
		Member:    offer.Member,
		CreatedAt: offer.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "offer recorded successfully")
	helpers.LogSuccess("MakeOfferHandler", "offer recorded successfully", map[string]any{
		"offer_id":  offer.OfferID,
		"listing":   offer.Listing,
		"member":    offer.Member,
		"bid_price": offer.BidPrice,
	})
}

// CloseBiddingHandler handles POST /listings/:listing_id/close
func (h *AuctionHandler) CloseBiddingHandler(c *gin.Context) {
	listingKey := c.Param("listing_id")

	listing, err := h.engine.CloseBidding(c.Request.Context(), listingKey)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseBiddingHandler: failed to close bidding", map[string]any{
			"listing": listingKey,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.RecordResponse{Key: listingKey, Record: listing}, "bidding closed")
	helpers.LogSuccess("CloseBiddingHandler", "bidding closed", map[string]any{
		"listing": listingKey,
		"state":   string(listing.ListingState),
	})
}

// QueryHandler handles GET /query/:key - returns the raw stored record bytes
func (h *AuctionHandler) QueryHandler(c *gin.Context) {
	key := c.Param("key")

	payload, err := h.engine.Query(c.Request.Context(), key)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("QueryHandler: query failed", map[string]any{"key": key, "error": err.Error()})
		return
	}

	utils.RawResponse(c, http.StatusOK, payload)
	helpers.LogSuccess("QueryHandler", "record retrieved", map[string]any{
		"key":   key,
		"bytes": len(payload),
	})
}
