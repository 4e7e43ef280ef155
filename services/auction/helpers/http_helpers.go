package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"auction-ledger/internal/auctionerrors"
	"auction-ledger/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps engine/dispatch errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, auctionerrors.ErrAlreadyExists):
		return http.StatusConflict, "record already exists"
	case errors.Is(err, auctionerrors.ErrWriteConflict):
		return http.StatusConflict, "conflicting ledger update, retry the call"
	case errors.Is(err, auctionerrors.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, "bid exceeds member balance"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusUnprocessableEntity, "owner cannot bid on own vehicle"
	case errors.Is(err, auctionerrors.ErrNoOffers):
		return http.StatusUnprocessableEntity, "no offers on listing"
	case errors.Is(err, auctionerrors.ErrListingClosed):
		return http.StatusUnprocessableEntity, "listing is no longer open for bidding"
	case errors.Is(err, auctionerrors.ErrUnknownOperation):
		return http.StatusBadRequest, "unknown operation"
	case errors.Is(err, auctionerrors.ErrArgumentCount):
		return http.StatusBadRequest, "wrong number of arguments"
	case errors.Is(err, auctionerrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid argument"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
