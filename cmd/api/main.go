package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/haeun/go-diary-store/internal/cart"
	"github.com/haeun/go-diary-store/internal/catalog"
	"github.com/haeun/go-diary-store/internal/checkout"
	"github.com/haeun/go-diary-store/internal/config"
	"github.com/haeun/go-diary-store/internal/models"
	"github.com/haeun/go-diary-store/internal/pricing"
	logx "github.com/haeun/go-diary-store/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}

	logx.Init(cfg.Log.Level)

	storage, err := cart.NewFileStorage(cfg.Cart.StorageDir)
	if err != nil {
		logx.Fatal().Err(err).Msg("open cart storage")
	}

	cat := catalog.New()
	cartStore := cart.NewStore(storage)

	mux := http.NewServeMux()

	mux.HandleFunc("/products", handleProducts(cat))
	mux.HandleFunc("/products/", handleProductByID(cat))
	mux.HandleFunc("/events", handleEvents(cat))
	mux.HandleFunc("/events/active", handleActiveEvents(cat))
	mux.HandleFunc("/events/", handleEventByID(cat))
	mux.HandleFunc("/cart", handleCart(cartStore))
	mux.HandleFunc("/cart/items", handleCartItems(cat, cartStore))
	mux.HandleFunc("/cart/items/", handleCartItemByID(cartStore))
	mux.HandleFunc("/checkout", handleCheckout(cartStore))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logx.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := server.ListenAndServe(); err != nil {
		logx.Fatal().Err(err).Msg("server error")
	}
}

func handleProducts(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		q := r.URL.Query()

		opts := catalog.FilterOptions{
			Category:    q.Get("category"),
			InStockOnly: q.Get("in_stock") == "true",
			Featured:    q.Get("featured") == "true",
		}
		if v := q.Get("min_price"); v != "" {
			if d, err := decimal.NewFromString(v); err == nil {
				opts.MinPrice = d
			}
		}
		if v := q.Get("max_price"); v != "" {
			if d, err := decimal.NewFromString(v); err == nil {
				opts.MaxPrice = d
			}
		}

		products := cat.Filter(opts)
		catalog.SortProducts(products, catalog.SortOption(q.Get("sort")))

		page, _ := strconv.Atoi(q.Get("page"))
		if page < 1 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(q.Get("page_size"))
		if pageSize < 1 || pageSize > 100 {
			pageSize = 20
		}

		respondJSON(w, http.StatusOK, catalog.ListProducts(products, page, pageSize))
	}
}

func handleProductByID(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/products/"):]

		product, ok := cat.ProductByID(id)
		if !ok {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}

		respondJSON(w, http.StatusOK, product)
	}
}

type eventResponse struct {
	models.Event
	Status models.EventStatus `json:"status"`
}

func eventResponses(events []models.Event, now time.Time) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventResponse{Event: e, Status: e.Status(now)})
	}
	return out
}

func handleEvents(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		respondJSON(w, http.StatusOK, eventResponses(cat.AllEvents(), time.Now()))
	}
}

func handleActiveEvents(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		respondJSON(w, http.StatusOK, eventResponses(cat.ActiveEvents(), time.Now()))
	}
}

func handleEventByID(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/events/"):]

		event, ok := cat.EventByID(id)
		if !ok {
			respondError(w, http.StatusNotFound, "Event not found")
			return
		}

		respondJSON(w, http.StatusOK, eventResponse{Event: event, Status: event.Status(time.Now())})
	}
}

func handleCart(cartStore *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			items := cartStore.Items()
			respondJSON(w, http.StatusOK, map[string]interface{}{
				"items":       items,
				"total_items": pricing.TotalItems(items),
				"totals":      pricing.PaymentTotal(items),
			})

		case http.MethodDelete:
			cartStore.Clear()
			w.WriteHeader(http.StatusNoContent)

		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func handleCartItems(cat *catalog.Catalog, cartStore *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req struct {
			ProductID string `json:"product_id"`
			Quantity  int    `json:"quantity"`
			Color     string `json:"color"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		product, ok := cat.ProductByID(req.ProductID)
		if !ok {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}

		if err := cartStore.Add(product, req.Quantity, req.Color); err != nil {
			if errors.Is(err, cart.ErrColorUnavailable) {
				respondError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"items":       cartStore.Items(),
			"total_items": cartStore.TotalItems(),
		})
	}
}

func handleCartItemByID(cartStore *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/cart/items/")

		switch r.Method {
		case http.MethodPut:
			var req struct {
				Quantity int `json:"quantity"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}

			cartStore.SetQuantity(id, req.Quantity)
			respondJSON(w, http.StatusOK, map[string]interface{}{
				"items": cartStore.Items(),
			})

		case http.MethodDelete:
			if color := r.URL.Query().Get("color"); color != "" {
				cartStore.RemoveLine(id, color)
			} else {
				cartStore.Remove(id)
			}
			w.WriteHeader(http.StatusNoContent)

		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func handleCheckout(cartStore *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req struct {
			models.ShippingInfo
			AgreeToTerms bool `json:"agree_to_terms"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		ctrl := checkout.NewController(cartStore)
		ctrl.SetForm(req.ShippingInfo)
		ctrl.AgreeToTerms(req.AgreeToTerms)

		order, err := ctrl.Submit()
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				respondError(w, http.StatusConflict, err.Error())
				return
			}
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		respondJSON(w, http.StatusOK, order)
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logx.Error().Err(err).Msg("encode JSON response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
