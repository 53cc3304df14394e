// Package api is the HTTP surface the storefront UI talks to: menu
// browsing, the shared cart (page, drawer, navbar badge) and the checkout
// wizard. Carts are keyed by a session cookie; each session owns one cart
// store and at most one in-flight checkout wizard.
package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"storefront/notify"
	"storefront/services"
	"storefront/storage"
)

const sessionCookie = "cart_session"

type Server struct {
	storage    storage.CartStorage
	notifier   *notify.Notifier
	adminToken string

	mu      sync.Mutex
	carts   map[string]*services.CartStore
	wizards map[string]*services.CheckoutWizard
}

// NewServer builds the storefront surface. adminToken guards the admin
// write endpoints; when it is empty they are disabled entirely.
func NewServer(st storage.CartStorage, notifier *notify.Notifier, adminToken string) *Server {
	return &Server{
		storage:    st,
		notifier:   notifier,
		adminToken: adminToken,
		carts:      make(map[string]*services.CartStore),
		wizards:    make(map[string]*services.CheckoutWizard),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "X-User-ID", "X-Admin-Token"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", s.listMenu)
		r.Post("/menu", s.addMenuItem)
		r.Get("/menu/{id}", s.getMenuItem)
		r.Get("/zones", s.listZones)
		r.Get("/branches", s.listBranches)

		r.Get("/cart", s.getCart)
		r.Post("/cart/items", s.addCartItem)
		r.Patch("/cart/items/{id}", s.updateCartItem)
		r.Delete("/cart/items/{id}", s.removeCartItem)
		r.Delete("/cart", s.clearCart)

		r.Post("/checkout", s.startCheckout)
		r.Get("/checkout", s.getCheckout)
		r.Post("/checkout/next", s.checkoutNext)
		r.Post("/checkout/back", s.checkoutBack)
		r.Put("/checkout/order-type", s.setOrderType)
		r.Put("/checkout/contact", s.setContact)
		r.Put("/checkout/delivery", s.setDeliveryDetails)
		r.Put("/checkout/branch", s.setBranch)
		r.Delete("/checkout", s.cancelCheckout)
		r.Post("/checkout/submit", s.submitOrder)

		r.Get("/orders", s.listOrders)
		r.Get("/orders/{id}", s.getOrder)
	})
	return r
}

// session returns the request's cart session key, minting a new cookie when
// none is present yet.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	key := uuid.NewString()
	c := &http.Cookie{
		Name:     sessionCookie,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
	}
	http.SetCookie(w, c)
	// Later lookups within this same request must see the fresh key.
	r.AddCookie(c)
	return key
}

// cart returns the session's cart store, rehydrating it from local storage
// on first access.
func (s *Server) cart(w http.ResponseWriter, r *http.Request) *services.CartStore {
	key := s.session(w, r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[key]; ok {
		return c
	}
	c := services.NewCartStore(key, s.storage)
	// Every surface sharing this cart (page, drawer, badge) reads through
	// the store, so one observer logging mutations covers them all.
	c.Subscribe(func() {
		log.Printf("cart %s: %d items, subtotal %d", key, c.Count(), c.Subtotal())
	})
	s.carts[key] = c
	return c
}

func (s *Server) wizard(w http.ResponseWriter, r *http.Request) (*services.CheckoutWizard, bool) {
	key := s.session(w, r)
	s.mu.Lock()
	defer s.mu.Unlock()
	wz, ok := s.wizards[key]
	return wz, ok
}
