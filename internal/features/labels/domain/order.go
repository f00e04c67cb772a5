package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryMethod says whether the customer collects the order or it is
// driven out.
type DeliveryMethod string

const (
	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
)

// PaymentStatus mirrors the upstream bayaran_status field.
// "Jelas" means settled, "Belum" means outstanding; anything else is
// carried through verbatim.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "Jelas"
	PaymentStatusUnpaid PaymentStatus = "Belum"
)

// IsPaid reports whether the amount due has been settled.
func (p PaymentStatus) IsPaid() bool { return p == PaymentStatusPaid }

// IsUnpaid reports whether the amount due is outstanding.
func (p PaymentStatus) IsUnpaid() bool { return p == PaymentStatusUnpaid }

// TimeSlot is an enum-like free string. The recognized values get their own
// checkbox row on the label; anything else falls back to "other".
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "Pagi"
	TimeSlotAfternoon TimeSlot = "Petang"
	TimeSlotNight     TimeSlot = "Malam"
)

// Recognized reports whether the slot is one of the fixed label slots.
func (t TimeSlot) Recognized() bool {
	switch t {
	case TimeSlotMorning, TimeSlotAfternoon, TimeSlotNight:
		return true
	}
	return false
}

// OrderItem is a single line on the label's item table.
type OrderItem struct {
	// Name is the item description.
	Name string `json:"name"`
	// Quantity is the number of units; zero or negative renders as a dash.
	Quantity int `json:"quantity,omitempty"`
	// Checked marks the item as verified by the packer.
	Checked bool `json:"checked"`
}

// Order is the immutable input to label rendering. JSON tags match the
// upstream order-management API wire format.
type Order struct {
	// ID is the numeric order identifier.
	ID int `json:"id"`
	// Name is the recipient name (nama).
	Name string `json:"nama"`
	// Phone is the recipient phone number (no_fon).
	Phone string `json:"no_fon"`
	// Address is the delivery address (alamat).
	Address string `json:"alamat"`
	// Area is the optional neighbourhood/area (kawasan).
	Area string `json:"kawasan,omitempty"`
	// Postcode is optional (poskod).
	Postcode string `json:"poskod,omitempty"`
	// Date is the scheduled date (tarikh), ISO-ish YYYY-MM-DD.
	Date string `json:"tarikh"`
	// TimeLabel is the optional human time-of-day label (masa).
	TimeLabel string `json:"masa,omitempty"`
	// Slot is the delivery time slot (time_slot).
	Slot TimeSlot `json:"time_slot,omitempty"`
	// Method is pickup or delivery; empty defaults to delivery.
	Method DeliveryMethod `json:"delivery_method,omitempty"`
	// Note is optional free text.
	Note string `json:"note,omitempty"`
	// Items is the ordered list of label lines. May be empty; rendering
	// must still succeed.
	Items []OrderItem `json:"items"`
	// AmountDue is the payment total (jumlah_bayaran). The upstream API
	// sends it as either a JSON number or a numeric string.
	AmountDue decimal.Decimal `json:"jumlah_bayaran"`
	// Payment is the settlement status (bayaran_status).
	Payment PaymentStatus `json:"bayaran_status,omitempty"`
	// PackageNumber is the optional parcel reference (no_paket).
	PackageNumber string `json:"no_paket,omitempty"`
}

// placeholderDateCompact is used when the order date is absent or unparsable,
// so the order code stays a fixed-width digit string.
const placeholderDateCompact = "20000101"

// DeliveryMethodOrDefault returns the method, defaulting to delivery.
func (o Order) DeliveryMethodOrDefault() DeliveryMethod {
	if o.Method == DeliveryMethodPickup {
		return DeliveryMethodPickup
	}
	return DeliveryMethodDelivery
}

// DateCompact extracts YYYYMMDD from the order date. Unparsable or missing
// dates collapse to a fixed placeholder rather than failing the render.
func (o Order) DateCompact() string {
	d := strings.TrimSpace(o.Date)
	if d == "" {
		return placeholderDateCompact
	}
	// Accept plain dates and datetime strings that lead with one.
	if len(d) > 10 {
		d = d[:10]
	}
	parsed, err := time.Parse("2006-01-02", d)
	if err != nil {
		return placeholderDateCompact
	}
	return parsed.Format("20060102")
}

// CodePayload is the order barcode content: compact date followed by the
// order id zero-padded to three digits. Deterministic for a given order.
func (o Order) CodePayload() string {
	return o.DateCompact() + fmt.Sprintf("%03d", o.ID)
}

// FormattedAmount renders the amount due as "RM <x>.yy", always two
// decimal places.
func (o Order) FormattedAmount() string {
	return "RM " + o.AmountDue.StringFixed(2)
}

// MapsQuery builds the maps-search target for the location code from the
// address and optional area.
func (o Order) MapsQuery() string {
	q := strings.TrimSpace(o.Address)
	if area := strings.TrimSpace(o.Area); area != "" {
		q += ", " + area
	}
	return q
}
