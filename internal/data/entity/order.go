package entity

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

type TrackingStatus string

const (
	StatusToPay          TrackingStatus = "to_pay"
	StatusToPrepare      TrackingStatus = "to_prepare"
	StatusOutForDelivery TrackingStatus = "out_for_delivery"
	StatusDelivered      TrackingStatus = "delivered"
)

func (s TrackingStatus) Valid() bool {
	switch s {
	case StatusToPay, StatusToPrepare, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// Display is the storefront formatting: underscores become spaces,
// everything uppercased ("out_for_delivery" -> "OUT FOR DELIVERY").
func (s TrackingStatus) Display() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

// order of delivery progress, used only when strict transitions are on
var statusRank = map[TrackingStatus]int{
	StatusToPay:          0,
	StatusToPrepare:      1,
	StatusOutForDelivery: 2,
	StatusDelivered:      3,
}

// CanTransitionTo reports whether next is a forward step from s.
func (s TrackingStatus) CanTransitionTo(next TrackingStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// OrderItem is the line-item snapshot taken at checkout. Product name and
// price are copied in so later catalog edits do not rewrite order history.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// DeliveryInfo is the address/contact snapshot taken at checkout.
type DeliveryInfo struct {
	Name      string `json:"name"`
	ContactNo string `json:"contact_no"`
	Barangay  string `json:"barangay"`
	Sitio     string `json:"sitio"`
	Address   string `json:"address,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type Order struct {
	Base
	UserID         uuid.UUID      `db:"user_id"`
	Items          []OrderItem    `db:"items"`
	Total          float64        `db:"total"`
	DeliveryInfo   DeliveryInfo   `db:"delivery_info"`
	PaymentMethod  string         `db:"payment_method"`
	TrackingStatus TrackingStatus `db:"tracking_status"`

	// joined from users where the query asks for it
	UserName     string `db:"user_name"`
	UserContact  string `db:"contact_no"`
	UserBarangay string `db:"barangay"`
	UserSitio    string `db:"sitio"`
}

// unwrapJSON normalizes the two representations the orders table has held
// over time: plain JSON text and JSON text that was encoded a second time
// (a quoted string containing JSON). Reads always come out structured.
func unwrapJSON(raw []byte) []byte {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err == nil {
			return []byte(inner)
		}
	}
	return []byte(trimmed)
}

func DecodeItems(raw []byte) ([]OrderItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []OrderItem
	if err := json.Unmarshal(unwrapJSON(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func DecodeDeliveryInfo(raw []byte) (DeliveryInfo, error) {
	var info DeliveryInfo
	if len(raw) == 0 {
		return info, nil
	}
	if err := json.Unmarshal(unwrapJSON(raw), &info); err != nil {
		return info, err
	}
	return info, nil
}
