package services

import "storefront/models"

// Checkout wizard steps, in strict linear order. Forward transitions are
// gated on the current step's exit condition; going back is always allowed
// and never discards answers already entered on later steps.
type CheckoutStep string

const (
	StepOrderType CheckoutStep = "order_type"
	StepContact   CheckoutStep = "contact"
	StepDetails   CheckoutStep = "details"
	StepReview    CheckoutStep = "review"
)

var checkoutOrder = []CheckoutStep{StepOrderType, StepContact, StepDetails, StepReview}

// CheckoutWizard walks a draft through the steps. It holds no server-side
// state; discarding the wizard cancels the flow and leaves the cart alone.
type CheckoutWizard struct {
	step  CheckoutStep
	draft models.CheckoutDraft
}

func NewCheckoutWizard() *CheckoutWizard {
	return &CheckoutWizard{step: StepOrderType}
}

func (w *CheckoutWizard) Step() CheckoutStep { return w.step }

func (w *CheckoutWizard) Draft() models.CheckoutDraft { return w.draft }

// StepComplete reports whether a step's exit condition holds for the draft.
func StepComplete(step CheckoutStep, d models.CheckoutDraft) bool {
	switch step {
	case StepOrderType:
		return d.OrderType == models.OrderTypeDelivery || d.OrderType == models.OrderTypePickup
	case StepContact:
		return d.Contact.FirstName != "" && d.Contact.LastName != "" && d.Contact.Phone != ""
	case StepDetails:
		if d.OrderType == models.OrderTypeDelivery {
			return d.City != "" && d.ZoneID != 0 && d.Address != ""
		}
		return d.BranchID != 0
	case StepReview:
		return true
	}
	return false
}

// Next advances to the following step when the current exit condition holds.
// Returns false (staying put) when the gate is closed or the wizard is
// already on review.
func (w *CheckoutWizard) Next() bool {
	if !StepComplete(w.step, w.draft) {
		return false
	}
	for i, s := range checkoutOrder {
		if s == w.step && i+1 < len(checkoutOrder) {
			w.step = checkoutOrder[i+1]
			return true
		}
	}
	return false
}

// Back returns to the previous step. Always permitted except on the first
// step; entered values on any step are preserved.
func (w *CheckoutWizard) Back() bool {
	for i, s := range checkoutOrder {
		if s == w.step && i > 0 {
			w.step = checkoutOrder[i-1]
			return true
		}
	}
	return false
}

// SetOrderType records the delivery-or-pickup choice. Invalid values are
// ignored so the order-type gate stays closed.
func (w *CheckoutWizard) SetOrderType(orderType string) {
	if orderType == models.OrderTypeDelivery || orderType == models.OrderTypePickup {
		w.draft.OrderType = orderType
	}
}

func (w *CheckoutWizard) SetContact(c models.Contact) {
	w.draft.Contact = c
}

// SetDeliveryDetails records city, zone and address text. Changing the city
// resets the zone, matching the zone list being filtered to the city.
func (w *CheckoutWizard) SetDeliveryDetails(city string, zoneID int64, address string) {
	if city != w.draft.City {
		w.draft.ZoneID = 0
	}
	w.draft.City = city
	if zoneID != 0 {
		w.draft.ZoneID = zoneID
	}
	w.draft.Address = address
}

func (w *CheckoutWizard) SetBranch(branchID int64) {
	w.draft.BranchID = branchID
}

func (w *CheckoutWizard) SetUserID(userID string) {
	w.draft.UserID = userID
}
