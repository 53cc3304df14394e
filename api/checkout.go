package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"storefront/models"
	"storefront/services"
)

type checkoutResponse struct {
	Step          services.CheckoutStep `json:"step"`
	StepComplete  bool                  `json:"stepComplete"`
	Draft         models.CheckoutDraft  `json:"draft"`
	Subtotal      int64                 `json:"subtotal"`
	DeliveryPrice int64                 `json:"deliveryPrice"`
	Total         int64                 `json:"total"`
}

func (s *Server) checkoutJSON(r *http.Request, wz *services.CheckoutWizard, cart *services.CartStore) checkoutResponse {
	draft := wz.Draft()
	subtotal := cart.Subtotal()

	var deliveryPrice int64
	if draft.OrderType == models.OrderTypeDelivery && draft.ZoneID != 0 {
		if zone, err := services.GetZone(r.Context(), draft.ZoneID); err == nil && zone != nil {
			deliveryPrice = zone.DeliveryPrice
		}
	}
	return checkoutResponse{
		Step:          wz.Step(),
		StepComplete:  services.StepComplete(wz.Step(), draft),
		Draft:         draft,
		Subtotal:      subtotal,
		DeliveryPrice: deliveryPrice,
		Total:         subtotal + deliveryPrice,
	}
}

// startCheckout opens a fresh wizard for the session. An abandoned previous
// draft is discarded; the cart is untouched either way.
func (s *Server) startCheckout(w http.ResponseWriter, r *http.Request) {
	cart := s.cart(w, r)
	if len(cart.Items()) == 0 {
		writeError(w, http.StatusConflict, "cart is empty")
		return
	}

	wz := services.NewCheckoutWizard()
	if userID := r.Header.Get("X-User-ID"); userID != "" {
		wz.SetUserID(userID)
	}

	key := s.session(w, r)
	s.mu.Lock()
	s.wizards[key] = wz
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.checkoutJSON(r, wz, cart))
}

func (s *Server) getCheckout(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.wizard(w, r)
	if !ok {
		writeError(w, http.StatusNotFound, "no checkout in progress")
		return
	}
	writeJSON(w, http.StatusOK, s.checkoutJSON(r, wz, s.cart(w, r)))
}

func (s *Server) checkoutNext(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.wizard(w, r)
	if !ok {
		writeError(w, http.StatusNotFound, "no checkout in progress")
		return
	}
	// A closed gate is not an error: the wizard just stays on its step.
	wz.Next()
	writeJSON(w, http.StatusOK, s.checkoutJSON(r, wz, s.cart(w, r)))
}

func (s *Server) checkoutBack(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.wizard(w, r)
	if !ok {
		writeError(w, http.StatusNotFound, "no checkout in progress")
		return
	}
	wz.Back()
	writeJSON(w, http.StatusOK, s.checkoutJSON(r, wz, s.cart(w, r)))
}

func (s *Server) setOrderType(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.wizard(w, r)
	if !ok {
		writeError(w, http.StatusNotFound, "no checkout in progress")
		return
	}
	var req struct {
		OrderType string `json:"orderType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wz.SetOrderType(req.OrderType)
	writeJSON(w, http.StatusOK, s.checkoutJSON(r, wz, s.cart(w, r)))
}

func (s *Server) setContact(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.wizard(w, r)
	if !ok {
		writeError(w, http.StatusNotFound, "no checkout in progress")
		return
	}
	var req models.Contact
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wz.SetContact(req)
	writeJSON(w, http.StatusOK, s.checkoutJSON(r, wz, s.cart(w, r)))
}

func (s *Server) setDeliveryDetails(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.wizard(w, r)
	if !ok {
		writeError(w, http.StatusNotFound, "no checkout in progress")
		return
	}
	var req struct {
		City    string `json:"city"`
		ZoneID  int64  `json:"zoneId"`
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wz.SetDeliveryDetails(req.City, req.ZoneID, req.Address)
	writeJSON(w, http.StatusOK, s.checkoutJSON(r, wz, s.cart(w, r)))
}

func (s *Server) setBranch(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.wizard(w, r)
	if !ok {
		writeError(w, http.StatusNotFound, "no checkout in progress")
		return
	}
	var req struct {
		BranchID int64 `json:"branchId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wz.SetBranch(req.BranchID)
	writeJSON(w, http.StatusOK, s.checkoutJSON(r, wz, s.cart(w, r)))
}

// cancelCheckout discards the draft entirely. Not an error condition; the
// cart survives.
func (s *Server) cancelCheckout(w http.ResponseWriter, r *http.Request) {
	key := s.session(w, r)
	s.mu.Lock()
	delete(s.wizards, key)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// submitOrder assembles the payload from the cart snapshot and draft, hands
// it to the order sink, and on success clears both the cart and the draft.
// On failure both are left intact so the user can retry.
func (s *Server) submitOrder(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.wizard(w, r)
	if !ok {
		writeError(w, http.StatusNotFound, "no checkout in progress")
		return
	}
	if wz.Step() != services.StepReview {
		writeError(w, http.StatusConflict, "checkout is not on the review step")
		return
	}

	cart := s.cart(w, r)
	draft := wz.Draft()

	var zone *models.Zone
	if draft.OrderType == models.OrderTypeDelivery {
		z, err := services.GetZone(r.Context(), draft.ZoneID)
		if err != nil {
			log.Printf("get zone error: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to resolve delivery zone")
			return
		}
		zone = z
	}

	header, items, err := services.BuildOrder(draft, cart.Items(), zone)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) || errors.Is(err, services.ErrMissingFulfillment) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		log.Printf("build order error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to assemble order")
		return
	}

	orderID, err := services.CreateOrder(r.Context(), header, items)
	if err != nil {
		log.Printf("create order error: %v", err)
		writeError(w, http.StatusBadGateway, "order submission failed")
		return
	}

	cart.Clear()
	key := s.session(w, r)
	s.mu.Lock()
	delete(s.wizards, key)
	s.mu.Unlock()

	s.notifier.OrderCreated(orderID, header, items)

	writeJSON(w, http.StatusCreated, map[string]int64{"orderId": orderID})
}
