// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	SessionHandler    *handler.SessionHandler
	GenZHandler       *handler.GenZHandler
	FamilyHandler     *handler.FamilyHandler
	YoungProHandler   *handler.YoungProHandler
	SwitcherHandler   *handler.SwitcherHandler
	CheckoutHandler   *handler.CheckoutHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	sessionHandler    *handler.SessionHandler
	genZHandler       *handler.GenZHandler
	familyHandler     *handler.FamilyHandler
	youngProHandler   *handler.YoungProHandler
	switcherHandler   *handler.SwitcherHandler
	checkoutHandler   *handler.CheckoutHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		sessionHandler:    params.SessionHandler,
		genZHandler:       params.GenZHandler,
		familyHandler:     params.FamilyHandler,
		youngProHandler:   params.YoungProHandler,
		switcherHandler:   params.SwitcherHandler,
		checkoutHandler:   params.CheckoutHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Catalog reads and shopping tools do not need a session
	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("/devices", r.catalogHandler.ListDevices)
		catalogGroup.GET("/devices/:id/scores", r.catalogHandler.DeviceScores)
		catalogGroup.GET("/plans", r.catalogHandler.ListPlans)
		catalogGroup.GET("/deals", r.catalogHandler.ListDeals)
		catalogGroup.GET("/refurbs", r.catalogHandler.ListRefurbs)
		catalogGroup.GET("/roaming", r.catalogHandler.ListRoamingPacks)
		catalogGroup.GET("/trending", r.catalogHandler.Trending)
	}

	toolsGroup := apiV1.Group("/tools")
	{
		toolsGroup.POST("/true-cost", r.catalogHandler.TrueCost)
		toolsGroup.POST("/byo-check", r.catalogHandler.BYOCheck)
		toolsGroup.POST("/coverage", r.catalogHandler.Coverage)
	}

	apiV1.POST("/sessions", r.sessionHandler.StartSession)

	// Everything below is addressed by the session bearer token
	authenticate := r.sessionMiddleware.Authenticate

	sessionGroup := apiV1.Group("/session", authenticate)
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.DELETE("", r.sessionHandler.ResetSession)
		sessionGroup.POST("/wizard/:event", r.sessionHandler.Navigate)
		sessionGroup.PUT("/cart", r.sessionHandler.UpdateCart)
	}

	genZGroup := apiV1.Group("/genz", authenticate)
	{
		genZGroup.PUT("/preferences", r.genZHandler.SetPreferences)
		genZGroup.GET("/matches", r.genZHandler.FindMatches)
		genZGroup.POST("/assistant", r.genZHandler.Ask)
	}

	familyGroup := apiV1.Group("/family", authenticate)
	{
		familyGroup.PUT("/household", r.familyHandler.SetHousehold)
		familyGroup.PUT("/usage", r.familyHandler.SetUsage)
		familyGroup.GET("/devices", r.familyHandler.ListDevices)
		familyGroup.PUT("/devices/:memberId", r.familyHandler.SelectDevice)
		familyGroup.POST("/recommendation", r.familyHandler.Recommend)
		familyGroup.GET("/safety/:memberId", r.familyHandler.GetSafety)
		familyGroup.PUT("/safety/:memberId", r.familyHandler.UpdateSafety)
		familyGroup.GET("/summary", r.familyHandler.Summary)
	}

	youngProGroup := apiV1.Group("/youngpro", authenticate)
	{
		youngProGroup.PUT("/answers", r.youngProHandler.SetAnswers)
		youngProGroup.GET("/results", r.youngProHandler.Results)
	}

	switcherGroup := apiV1.Group("/switcher", authenticate)
	{
		switcherGroup.PUT("/carrier", r.switcherHandler.SetCarrier)
		switcherGroup.PUT("/usage", r.switcherHandler.SetUsage)
		switcherGroup.POST("/byo", r.switcherHandler.CheckBYO)
		switcherGroup.POST("/deals/:dealId", r.switcherHandler.ToggleDeal)
		switcherGroup.POST("/porting", r.switcherHandler.StartPorting)
		switcherGroup.GET("/porting", r.switcherHandler.GetPorting)
	}

	apiV1.POST("/checkout", r.checkoutHandler.Checkout, authenticate)

	ordersGroup := apiV1.Group("/orders", authenticate)
	{
		ordersGroup.GET("/:id", r.checkoutHandler.GetOrder)
		ordersGroup.GET("/:id/esim-qr", r.checkoutHandler.ESIMQRCode)
	}
}
