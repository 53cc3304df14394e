package api

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"storefront/models"
	"storefront/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

/* ===== Menu ===== */

func (s *Server) listMenu(w http.ResponseWriter, r *http.Request) {
	var (
		items []models.MenuItem
		err   error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		items, err = services.ListMenuByCategory(r.Context(), category)
	} else {
		items, err = services.ListMenu(r.Context())
	}
	if err != nil {
		log.Printf("list menu error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load menu")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type addMenuItemRequest struct {
	Category string               `json:"category"`
	Name     string               `json:"name"`
	Price    int64                `json:"price"`
	Options  []models.OptionGroup `json:"options"`
}

// addMenuItem is the admin path for new menu items. It requires the
// configured admin token; without one configured the endpoint is disabled.
func (s *Server) addMenuItem(w http.ResponseWriter, r *http.Request) {
	if s.adminToken == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	token := r.Header.Get("X-Admin-Token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
		writeError(w, http.StatusUnauthorized, "invalid admin token")
		return
	}

	var req addMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := services.AddMenuItem(r.Context(), req.Category, req.Name, req.Price, req.Options)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}
	item, err := services.GetMenuItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "menu item not found")
			return
		}
		log.Printf("get menu item error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load menu item")
		return
	}

	// Seed every option group with its first value so the customization view
	// always has a displayable price.
	defaults := services.DefaultSelections(item.Options)
	writeJSON(w, http.StatusOK, map[string]any{
		"item":              item,
		"defaultSelections": defaults,
		"defaultUnitPrice":  services.UnitPrice(item.Price, item.Options, defaults),
	})
}

/* ===== Directory ===== */

func (s *Server) listZones(w http.ResponseWriter, r *http.Request) {
	zones, err := services.ListZones(r.Context())
	if err != nil {
		log.Printf("list zones error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load zones")
		return
	}
	if city := r.URL.Query().Get("city"); city != "" {
		zones = services.ZonesForCity(zones, city)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"zones":  zones,
		"cities": services.Cities(zones),
	})
}

func (s *Server) listBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := services.ListBranches(r.Context())
	if err != nil {
		log.Printf("list branches error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load branches")
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

/* ===== Cart ===== */

type cartResponse struct {
	Items    []models.LineItem `json:"items"`
	Subtotal int64             `json:"subtotal"`
	Count    int               `json:"count"`
}

func (s *Server) cartJSON(cart *services.CartStore) cartResponse {
	return cartResponse{Items: cart.Items(), Subtotal: cart.Subtotal(), Count: cart.Count()}
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cartJSON(s.cart(w, r)))
}

type addItemRequest struct {
	ProductID  int64             `json:"productId"`
	Selections map[string]string `json:"selections"`
	Notes      string            `json:"notes"`
	Quantity   int               `json:"quantity"`
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := services.GetMenuItem(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "menu item not found")
			return
		}
		log.Printf("get menu item error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load menu item")
		return
	}

	image := ""
	if len(item.Images) > 0 {
		image = item.Images[0]
	}
	cart := s.cart(w, r)
	cart.Add(models.ProposedItem{
		ProductID:  item.ID,
		Name:       item.Name,
		Image:      image,
		Selections: services.BuildSelections(item.Options, req.Selections),
		Notes:      req.Notes,
		Quantity:   req.Quantity,
		BasePrice:  item.Price,
	})
	writeJSON(w, http.StatusOK, s.cartJSON(cart))
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cart := s.cart(w, r)
	cart.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity)
	writeJSON(w, http.StatusOK, s.cartJSON(cart))
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart := s.cart(w, r)
	cart.Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, s.cartJSON(cart))
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	cart := s.cart(w, r)
	cart.Clear()
	writeJSON(w, http.StatusOK, s.cartJSON(cart))
}

/* ===== Orders (account pages) ===== */

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	orders, err := services.ListOrdersForUser(r.Context(), userID)
	if err != nil {
		log.Printf("list orders error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, items, err := services.GetOrder(r.Context(), id, userID)
	if err != nil {
		log.Printf("get order error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	if order == nil {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": order, "items": items})
}
