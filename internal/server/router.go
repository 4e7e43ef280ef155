package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	auction "auction-ledger/internal/auctionEngine"
	"auction-ledger/internal/dispatch"
	handler "auction-ledger/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(engine *auction.Engine, dispatcher *dispatch.Dispatcher) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(MetricsMiddleware)       // prometheus counters and latency

	auctionHandler := handler.NewAuctionHandler(engine, dispatcher)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// named-operation dispatch, the execution-host calling convention
	router.POST("/invoke", auctionHandler.InvokeHandler)
	router.POST("/init", auctionHandler.InitLedgerHandler)

	members := router.Group("/members")
	{
		members.POST("", auctionHandler.CreateMemberHandler)
	}

	vehicles := router.Group("/vehicles")
	{
		vehicles.POST("", auctionHandler.CreateVehicleHandler)
	}

	listings := router.Group("/listings")
	{
		listings.POST("", auctionHandler.CreateListingHandler)
		listings.POST("/:listing_id/close", auctionHandler.CloseBiddingHandler)
	}

	offers := router.Group("/offers")
	{
		offers.POST("", auctionHandler.MakeOfferHandler)
	}

	router.GET("/query/:key", auctionHandler.QueryHandler)

	return router
}
