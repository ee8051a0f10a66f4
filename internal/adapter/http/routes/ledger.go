package routes

import (
	"wedding_admin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLedger    = "/ledger"
	PathCostItems = "/cost-items"
	PathVenues    = "/venues"
)

func addLedgerRoutes(rg *gin.RouterGroup, ledgerHandler *handlers.LedgerHandler, editHandler *handlers.CostItemEditHandler, checkoutHandler *handlers.PaymentCheckoutHandler) {
	rg.GET(PathLedger, ledgerHandler.GetSummary)

	items := rg.Group(PathCostItems)
	{
		items.GET("", ledgerHandler.ListItems)
		items.POST("/drafts", editHandler.CreateDraft)
		items.POST("/drafts/venue", editHandler.CreateVenueDraft)
		items.GET("/:id", ledgerHandler.GetItem)
		items.DELETE("/:id", ledgerHandler.DeleteItem)

		items.POST("/:id/payments/:paymentId/checkout", checkoutHandler.Checkout)
		items.GET("/:id/checkouts", checkoutHandler.ListByCostItem)
	}

	edit := items.Group("/:id/edit")
	{
		edit.POST("", editHandler.Open)
		edit.GET("", editHandler.Get)
		edit.PATCH("", editHandler.UpdateFields)
		edit.DELETE("", editHandler.Discard)
		edit.POST("/save", editHandler.Save)

		edit.POST("/payments", editHandler.AddPayment)
		edit.PATCH("/payments/:paymentId", editHandler.UpdatePaymentField)
		edit.POST("/payments/:paymentId/toggle", editHandler.TogglePaymentPaid)
		edit.DELETE("/payments/:paymentId", editHandler.RemovePayment)

		edit.POST("/installments", editHandler.GenerateInstallments)
		edit.POST("/entrada-saldo", editHandler.GenerateEntradaSaldo)
	}
}

func addVenueRoutes(rg *gin.RouterGroup, venueHandler *handlers.VenueHandler) {
	venues := rg.Group(PathVenues)
	{
		venues.GET("/chosen", venueHandler.GetChosen)
		venues.PUT("/:id", venueHandler.Upsert)
		venues.PATCH("/:id/choose", venueHandler.Choose)
	}
}
