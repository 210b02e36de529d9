package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestTrackingStatusValid(t *testing.T) {
	for _, s := range []TrackingStatus{StatusToPay, StatusToPrepare, StatusOutForDelivery, StatusDelivered} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []TrackingStatus{"", "shipped", "TO_PAY", "to pay", "cancelled"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestTrackingStatusDisplay(t *testing.T) {
	tests := []struct {
		status TrackingStatus
		want   string
	}{
		{StatusToPay, "TO PAY"},
		{StatusToPrepare, "TO PREPARE"},
		{StatusOutForDelivery, "OUT FOR DELIVERY"},
		{StatusDelivered, "DELIVERED"},
	}
	for _, tt := range tests {
		if got := tt.status.Display(); got != tt.want {
			t.Errorf("%s.Display() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestTrackingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to TrackingStatus
		want     bool
	}{
		{StatusToPay, StatusToPrepare, true},
		{StatusToPay, StatusDelivered, true},
		{StatusToPrepare, StatusOutForDelivery, true},
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusDelivered, StatusToPay, false},
		{StatusToPrepare, StatusToPay, false},
		{StatusToPay, StatusToPay, false},
		{"bogus", StatusToPay, false},
		{StatusToPay, "bogus", false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDecodeItemsPlainJSON(t *testing.T) {
	id := uuid.New()
	raw := []byte(`[{"product_id":"` + id.String() + `","name":"Pandesal","price":5.5,"quantity":12}]`)

	items, err := DecodeItems(raw)
	if err != nil {
		t.Fatalf("DecodeItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].ProductID != id || items[0].Name != "Pandesal" || items[0].Quantity != 12 {
		t.Errorf("item = %+v", items[0])
	}
}

func TestDecodeItemsDoubleEncoded(t *testing.T) {
	id := uuid.New()
	// a JSON string whose content is itself JSON, as older rows stored it
	raw := []byte(`"[{\"product_id\":\"` + id.String() + `\",\"name\":\"Ensaymada\",\"price\":25,\"quantity\":2}]"`)

	items, err := DecodeItems(raw)
	if err != nil {
		t.Fatalf("DecodeItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Name != "Ensaymada" || items[0].Price != 25 || items[0].Quantity != 2 {
		t.Errorf("item = %+v", items[0])
	}
}

func TestDecodeItemsEmpty(t *testing.T) {
	items, err := DecodeItems(nil)
	if err != nil {
		t.Fatalf("DecodeItems(nil): %v", err)
	}
	if items != nil {
		t.Errorf("items = %v, want nil", items)
	}
}

func TestDecodeItemsMalformed(t *testing.T) {
	if _, err := DecodeItems([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestDecodeDeliveryInfoBothForms(t *testing.T) {
	plain := []byte(`{"name":"Ana","contact_no":"09171234567","barangay":"Poblacion","sitio":"Centro"}`)
	doubled := []byte(`"{\"name\":\"Ana\",\"contact_no\":\"09171234567\",\"barangay\":\"Poblacion\",\"sitio\":\"Centro\"}"`)

	for _, raw := range [][]byte{plain, doubled} {
		info, err := DecodeDeliveryInfo(raw)
		if err != nil {
			t.Fatalf("DecodeDeliveryInfo(%s): %v", raw, err)
		}
		if info.Name != "Ana" || info.Barangay != "Poblacion" {
			t.Errorf("info = %+v", info)
		}
	}
}

func TestDecodeDeliveryInfoEmpty(t *testing.T) {
	info, err := DecodeDeliveryInfo(nil)
	if err != nil {
		t.Fatalf("DecodeDeliveryInfo(nil): %v", err)
	}
	if info != (DeliveryInfo{}) {
		t.Errorf("info = %+v, want zero value", info)
	}
}
