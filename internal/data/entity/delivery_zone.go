package entity

// DeliveryZone maps a barangay to its flat shipping fee.
type DeliveryZone struct {
	Barangay    string  `db:"barangay"`
	ShippingFee float64 `db:"shipping_fee"`
}
