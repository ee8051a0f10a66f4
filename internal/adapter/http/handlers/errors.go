package handlers

import (
	"errors"
	"log"
	"net/http"

	"wedding_admin/internal/adapter/http/middleware"
	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/domain/ledger"
	"wedding_admin/internal/usecase"
	"wedding_admin/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errForeignOwner   = pkg.NewDomainErrorSimple("FOREIGN_OWNER", "This cost item belongs to another account", http.StatusConflict)
	errSaveFailed     = pkg.NewDomainErrorSimple("SAVE_FAILED", "Could not save the cost item. Your changes were kept; try again.", http.StatusServiceUnavailable)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// ownerID reads the authenticated owner and writes a 401 when there is none.
func ownerID(c *gin.Context) (string, bool) {
	id := middleware.OwnerID(c)
	if id == "" {
		writeError(c, errUnauthorized)
		return "", false
	}
	return id, true
}

// mapLedgerError covers the errors shared by every ledger route.
func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID):
		return errUnauthorized
	case errors.Is(err, usecase.ErrInvalidCostItemID):
		return pkg.NewDomainErrorSimple("INVALID_COST_ITEM_ID", "Invalid cost item id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCostItemNotFound):
		return pkg.NewDomainErrorSimple("COST_ITEM_NOT_FOUND", "Cost item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoChosenVenue):
		return pkg.NewDomainErrorSimple("NO_CHOSEN_VENUE", "No venue has been chosen", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Could not reach the data store. Try again.", err, http.StatusServiceUnavailable)
	default:
		log.Printf("[ledger][handler] unmapped error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapEditError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEditNotOpen):
		return pkg.NewDomainErrorSimple("EDIT_NOT_OPEN", "Cost item is not open for editing", http.StatusNotFound)
	case errors.Is(err, ledger.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Invalid category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPlanType):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_PLAN_TYPE", "Invalid payment plan type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDescription):
		return pkg.NewDomainErrorSimple("INVALID_DESCRIPTION", "Description is required", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrUnknownPaymentField):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_FIELD", "Unknown payment field", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidInstallmentCount):
		return pkg.NewDomainErrorSimple("INVALID_INSTALLMENT_COUNT", "Installment count must be at least 1", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidEntradaPercent):
		return pkg.NewDomainErrorSimple("INVALID_ENTRADA_PERCENT", "Entrada percent must be between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, entities.ErrSaveInProgress):
		return pkg.NewDomainErrorSimple("SAVE_IN_PROGRESS", "A save is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrVenueItemExists):
		return pkg.NewDomainErrorSimple("VENUE_ITEM_EXISTS", "The venue cost item already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrForeignOwner):
		return errForeignOwner
	case errors.Is(err, usecase.ErrSaveFailed):
		return errSaveFailed
	default:
		return mapLedgerError(err)
	}
}

func mapVenueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVenueID):
		return pkg.NewDomainErrorSimple("INVALID_VENUE_ID", "Invalid venue id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVenueName):
		return pkg.NewDomainErrorSimple("INVALID_VENUE_NAME", "Venue name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVenuePrice):
		return pkg.NewDomainErrorSimple("INVALID_VENUE_PRICE", "Venue base price must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVenueNotFound):
		return pkg.NewDomainErrorSimple("VENUE_NOT_FOUND", "Venue not found", http.StatusNotFound)
	default:
		return mapLedgerError(err)
	}
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentEntryID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "Invalid payment entry id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentEntryNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAlreadyPaid):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_PAID", "Payment entry is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCheckoutAmount):
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT_AMOUNT", "Payment entry amount must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnsupportedCheckoutMethod):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PAYMENT_METHOD", "Only pix and boleto entries can be paid here", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnsavedLocalChanges):
		return pkg.NewDomainErrorSimple("UNSAVED_CHANGES", "Save the cost item before paying", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrForeignOwner):
		return errForeignOwner
	case errors.Is(err, usecase.ErrSaveFailed):
		return pkg.NewDomainError("SAVE_FAILED", "Payment approved but the cost item could not be updated. Try again.", err, http.StatusServiceUnavailable)
	default:
		return mapLedgerError(err)
	}
}
