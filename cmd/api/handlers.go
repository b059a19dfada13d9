package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	"avtomaster/pkg/booking"
	"avtomaster/pkg/cart"
	"avtomaster/pkg/logger"
	"avtomaster/pkg/notify"
	"avtomaster/pkg/otel"
	"avtomaster/pkg/session"
)

// app carries the handler dependencies.
type app struct {
	log      *logger.Logger
	tracer   trace.Tracer
	sessions *session.Manager
	notifier notify.Notifier
}

type ctxKey int

const stateKey ctxKey = 1

const sessionCookie = "session_id"

// routes builds the router with the trace and session middleware
// applied to the API surface.
func (a *app) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(a.traceMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(a.sessionMiddleware)
	api.HandleFunc("/categories", a.listCategoriesHandler).Methods(http.MethodGet)
	api.HandleFunc("/category", a.setCategoryHandler).Methods(http.MethodPut)
	api.HandleFunc("/products", a.listProductsHandler).Methods(http.MethodGet)
	api.HandleFunc("/cart", a.getCartHandler).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", a.addCartItemHandler).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", a.updateCartItemHandler).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{id}", a.removeCartItemHandler).Methods(http.MethodDelete)
	api.HandleFunc("/checkout", a.checkoutHandler).Methods(http.MethodPost)
	api.HandleFunc("/services", a.listServicesHandler).Methods(http.MethodGet)
	api.HandleFunc("/booking/slots", a.listTimeSlotsHandler).Methods(http.MethodGet)
	api.HandleFunc("/booking", a.createBookingHandler).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

func (a *app) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if a.tracer != nil {
			ctx = otel.InjectTracing(ctx, a.tracer)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionMiddleware resolves the visitor's session, starting a new one
// when the cookie is missing or expired, and puts the session state on
// the request context.
func (a *app) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var st *session.State
		if c, err := r.Cookie(sessionCookie); err == nil {
			got, err := a.sessions.Get(ctx, c.Value)
			switch err {
			case nil:
				st = got
			case session.ErrNoSession:
			default:
				a.log.Error(ctx, "session lookup", "error", err)
				http.Error(w, "session error", http.StatusInternalServerError)
				return
			}
		}
		if st == nil {
			id, fresh, err := a.sessions.Start(ctx)
			if err != nil {
				a.log.Error(ctx, "session start", "error", err)
				http.Error(w, "session error", http.StatusInternalServerError)
				return
			}
			st = fresh
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(time.Hour),
				HttpOnly: true,
			})
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, stateKey, st)))
	})
}

func (a *app) state(r *http.Request) *session.State {
	return r.Context().Value(stateKey).(*session.State)
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// cartView is the cart as the presentation layer renders it.
type cartView struct {
	Items      []cart.Item `json:"items"`
	TotalPrice int         `json:"totalPrice"`
	TotalItems int         `json:"totalItems"`
}

func viewOf(c *cart.Store) cartView {
	return cartView{
		Items:      c.Items(),
		TotalPrice: c.TotalPrice(),
		TotalItems: c.TotalItems(),
	}
}

// listCategoriesHandler returns the category filter options.
// @Summary List categories
// @Produce json
// @Success 200 {array} string
// @Router /api/categories [get]
func (a *app) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "listCategoriesHandler")
	defer span.End()

	respond(w, http.StatusOK, a.state(r).Catalog.Categories())
}

type setCategoryRequest struct {
	Category string `json:"category"`
}

// setCategoryHandler selects the active category filter and returns
// the resulting product view.
// @Summary Set category filter
// @Accept json
// @Produce json
// @Param filter body setCategoryRequest true "Filter"
// @Success 200 {array} catalog.Product
// @Router /api/category [put]
func (a *app) setCategoryHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "setCategoryHandler")
	defer span.End()

	var req setCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	st := a.state(r)
	st.Catalog.SetCategory(req.Category)
	respond(w, http.StatusOK, st.Catalog.Filtered())
}

// listProductsHandler returns the products matching the active filter.
// @Summary List products
// @Produce json
// @Success 200 {array} catalog.Product
// @Router /api/products [get]
func (a *app) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "listProductsHandler")
	defer span.End()

	respond(w, http.StatusOK, a.state(r).Catalog.Filtered())
}

// getCartHandler returns the cart contents and totals.
// @Summary Get cart
// @Produce json
// @Success 200 {object} cartView
// @Router /api/cart [get]
func (a *app) getCartHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "getCartHandler")
	defer span.End()

	respond(w, http.StatusOK, viewOf(a.state(r).Cart))
}

type addItemRequest struct {
	ProductID int `json:"productId"`
}

// addCartItemHandler puts a catalog product into the cart.
// @Summary Add product to cart
// @Accept json
// @Produce json
// @Param item body addItemRequest true "Product id"
// @Success 201 {object} cartView
// @Router /api/cart/items [post]
func (a *app) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "addCartItemHandler")
	defer span.End()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	st := a.state(r)
	p, ok := st.Catalog.Find(req.ProductID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	st.Cart.Add(ctx, p)
	respond(w, http.StatusCreated, viewOf(st.Cart))
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// updateCartItemHandler sets the quantity of a cart line. A quantity
// of zero or less removes the line; an unknown id is ignored.
// @Summary Update cart item quantity
// @Accept json
// @Produce json
// @Param id path int true "Product id"
// @Param item body updateItemRequest true "Quantity"
// @Success 200 {object} cartView
// @Router /api/cart/items/{id} [put]
func (a *app) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "updateCartItemHandler")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	st := a.state(r)
	st.Cart.UpdateQuantity(id, req.Quantity)
	respond(w, http.StatusOK, viewOf(st.Cart))
}

// removeCartItemHandler removes a cart line. Removing an absent line
// is not an error.
// @Summary Remove cart item
// @Param id path int true "Product id"
// @Success 204
// @Router /api/cart/items/{id} [delete]
func (a *app) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "removeCartItemHandler")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	a.state(r).Cart.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}

type checkoutResponse struct {
	TotalItems int    `json:"totalItems"`
	TotalPrice int    `json:"totalPrice"`
	Message    string `json:"message"`
}

// checkoutHandler confirms the order: it reports the totals, empties
// the cart and emits the confirmation notification.
// @Summary Checkout
// @Produce json
// @Success 200 {object} checkoutResponse
// @Router /api/checkout [post]
func (a *app) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "checkoutHandler")
	defer span.End()

	c := a.state(r).Cart
	resp := checkoutResponse{
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
		Message:    "Мы свяжемся с вами для подтверждения заказа.",
	}
	c.Clear()
	a.notifier.Notify(ctx, notify.Notification{
		Title:       "Заказ оформлен!",
		Description: resp.Message,
	})
	respond(w, http.StatusOK, resp)
}

// listServicesHandler returns the workshop's service list.
// @Summary List services
// @Produce json
// @Success 200 {array} booking.Service
// @Router /api/services [get]
func (a *app) listServicesHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "listServicesHandler")
	defer span.End()

	respond(w, http.StatusOK, booking.Services())
}

// listTimeSlotsHandler returns the bookable appointment times.
// @Summary List booking time slots
// @Produce json
// @Success 200 {array} string
// @Router /api/booking/slots [get]
func (a *app) listTimeSlotsHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "listTimeSlotsHandler")
	defer span.End()

	respond(w, http.StatusOK, booking.TimeSlots())
}

type bookingResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// createBookingHandler accepts a booking request. The request is not
// stored; acceptance only triggers the confirmation notification.
// @Summary Submit booking request
// @Accept json
// @Produce json
// @Param request body booking.Request true "Booking request"
// @Success 201 {object} bookingResponse
// @Router /api/booking [post]
func (a *app) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createBookingHandler")
	defer span.End()

	var req booking.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(time.Now()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a.notifier.Notify(ctx, notify.Notification{
		Title:       "Заявка отправлена!",
		Description: "Мы свяжемся с вами в ближайшее время.",
	})
	a.log.Info(ctx, "booking request", "service", req.Service, "date", req.Date, "time", req.Time)
	respond(w, http.StatusCreated, bookingResponse{
		ID:      uuid.NewString(),
		Message: "Мы свяжемся с вами в ближайшее время.",
	})
}
