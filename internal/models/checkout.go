package models

import "strings"

type CheckoutState string

const (
	CheckoutBrowsing   CheckoutState = "browsing"
	CheckoutFormEntry  CheckoutState = "form_entry"
	CheckoutSubmitting CheckoutState = "submitting"
	CheckoutSuccess    CheckoutState = "success"
	CheckoutFailed     CheckoutState = "failed"
)

// CheckoutForm carries both delivery targets; only the one matching the
// configured DeliveryMode is validated and sent. Validation happens in the
// checkout service so errors come back one field at a time, in form order.
type CheckoutForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	Zone    string `json:"zone,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

func (f CheckoutForm) Trimmed() CheckoutForm {
	return CheckoutForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Address: strings.TrimSpace(f.Address),
		City:    strings.TrimSpace(f.City),
		Zone:    strings.TrimSpace(f.Zone),
		Notes:   strings.TrimSpace(f.Notes),
	}
}

type CheckoutStatus struct {
	State        CheckoutState `json:"state"`
	DeliveryMode DeliveryMode  `json:"delivery_mode"`
	LastError    string        `json:"last_error,omitempty"`
	LastOrder    *Order        `json:"last_order,omitempty"`
}

type CheckoutResult struct {
	Order           Order  `json:"order"`
	DeliveryMessage string `json:"delivery_message"`
}
