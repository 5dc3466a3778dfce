package models

import (
	"fmt"
	"strings"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pendiente"
	OrderStatusConfirmed OrderStatus = "confirmado"
	OrderStatusShipping  OrderStatus = "en_camino"
	OrderStatusDelivered OrderStatus = "entregado"
	OrderStatusCancelled OrderStatus = "cancelado"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPending:   "Pendiente",
	OrderStatusConfirmed: "Confirmado",
	OrderStatusShipping:  "En camino",
	OrderStatusDelivered: "Entregado",
	OrderStatusCancelled: "Cancelado",
}

// Label is the display text; unknown statuses are shown verbatim.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s OrderStatus) Known() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryCity    string      `json:"delivery_city,omitempty"`
	DeliveryZone    string      `json:"delivery_zone,omitempty"`
	Items           []LineItem  `json:"items"`
	Notes           string      `json:"notes,omitempty"`
	Total           *float64    `json:"total,omitempty"`
	Status          OrderStatus `json:"status"`
	DeliveryDate    *string     `json:"delivery_date,omitempty"`
	DeliveryDay     *string     `json:"delivery_day,omitempty"`
	CreatedAt       Timestamp   `json:"created_at"`
	UpdatedAt       *Timestamp  `json:"updated_at,omitempty"`
}

type CreateOrderRequest struct {
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerPhone   string     `json:"customer_phone"`
	DeliveryAddress string     `json:"delivery_address"`
	DeliveryCity    string     `json:"delivery_city,omitempty"`
	DeliveryZone    string     `json:"delivery_zone,omitempty"`
	Items           []LineItem `json:"items"`
	Notes           string     `json:"notes,omitempty"`
}

const DefaultDeliveryMessage = "Te contactaremos para confirmar la fecha de entrega."

// DeliveryMessage renders the backend-computed delivery date for the customer.
func (o Order) DeliveryMessage() string {
	if o.DeliveryDate == nil || o.DeliveryDay == nil || *o.DeliveryDate == "" || *o.DeliveryDay == "" {
		return DefaultDeliveryMessage
	}

	parts := strings.Split(*o.DeliveryDate, "-")
	if len(parts) != 3 {
		return DefaultDeliveryMessage
	}

	return fmt.Sprintf("Tu pedido llegará el %s %s/%s/%s", *o.DeliveryDay, parts[2], parts[1], parts[0])
}

// Snapshot returns a deep copy so the order never shares items with a live cart.
func (o Order) Snapshot() Order {
	o.Items = Cart{Items: o.Items}.Clone().Items
	if o.Total != nil {
		t := *o.Total
		o.Total = &t
	}
	return o
}
