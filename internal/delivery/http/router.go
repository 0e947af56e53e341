package http

import (
	"net/http"

	"go-online-store/internal/delivery/http/handler"
	"go-online-store/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	productHandler       *handler.ProductHandler
	saleHandler          *handler.SaleHandler
	requestLogMiddleware *middleware.RequestLogMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	productHandler *handler.ProductHandler,
	saleHandler *handler.SaleHandler,
	requestLogMiddleware *middleware.RequestLogMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		productHandler:       productHandler,
		saleHandler:          saleHandler,
		requestLogMiddleware: requestLogMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

// Setup registers the routes. The flat paths are the compatibility surface
// of the legacy store API and must not move under a version prefix.
func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Product routes
	r.router.HandleFunc("/add_product", r.productHandler.AddProduct).Methods(http.MethodPost)
	r.router.HandleFunc("/update_stock", r.productHandler.UpdateStock).Methods(http.MethodPut)
	r.router.HandleFunc("/delete_product", r.productHandler.DeleteProduct).Methods(http.MethodDelete)
	r.router.HandleFunc("/get_product", r.productHandler.GetProduct).Methods(http.MethodGet)

	// Sale routes
	r.router.HandleFunc("/add_sale", r.saleHandler.AddSale).Methods(http.MethodPost)
	r.router.HandleFunc("/close_sale", r.saleHandler.CloseSale).Methods(http.MethodPut)
	r.router.HandleFunc("/delete_sale", r.saleHandler.DeleteSale).Methods(http.MethodDelete)
	r.router.HandleFunc("/get_sales", r.saleHandler.GetSales).Methods(http.MethodGet)

	// Middleware
	r.router.Use(r.requestLogMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
