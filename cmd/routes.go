package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Order access gateway: one handler owns the whole method surface of
	// /orders/:id, including OPTIONS and its own auth ordering.
	mux.Get("/orders/:id", standardMiddleware.ThenFunc(app.orderHandler.OrderAccess))
	mux.Put("/orders/:id", standardMiddleware.ThenFunc(app.orderHandler.OrderAccess))
	mux.Del("/orders/:id", standardMiddleware.ThenFunc(app.orderHandler.OrderAccess))
	mux.Options("/orders/:id", standardMiddleware.ThenFunc(app.orderHandler.OrderAccess))

	// Order listings
	mux.Get("/orders", authMiddleware.ThenFunc(app.orderHandler.ListMyOrders))
	mux.Get("/admin/orders", adminAuthMiddleware.ThenFunc(app.orderHandler.ListOrders))

	// Identifier checks (public)
	mux.Post("/identifier/check", standardMiddleware.ThenFunc(app.userCheckHandler.CheckPhone))
	mux.Post("/email/check", standardMiddleware.ThenFunc(app.userCheckHandler.CheckEmail))

	// Products
	mux.Post("/product", adminAuthMiddleware.ThenFunc(app.productHandler.CreateProduct))
	mux.Get("/product", standardMiddleware.ThenFunc(app.productHandler.GetProducts))
	mux.Get("/product/:id", standardMiddleware.ThenFunc(app.productHandler.GetProductByID))
	mux.Put("/product/:id", adminAuthMiddleware.ThenFunc(app.productHandler.UpdateProduct))
	mux.Del("/product/:id", adminAuthMiddleware.ThenFunc(app.productHandler.DeleteProduct))

	// Admin reporting
	mux.Get("/admin/dashboard", adminAuthMiddleware.ThenFunc(app.reportHandler.Dashboard))
	mux.Get("/admin/reports/sales", adminAuthMiddleware.ThenFunc(app.reportHandler.SalesReport))

	return standardMiddleware.Then(mux)
}
