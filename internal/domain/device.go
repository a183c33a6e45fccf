package domain

import "time"

type WorkingState string

const (
	WorkingStateWorking     WorkingState = "WORKING"
	WorkingStateNeedsRepair WorkingState = "NEEDS_REPAIR"
)

// Device is one physical unit of a DeviceType. SubscriptionDate is the day
// the unit's service subscription is paid through; nil means never paid.
type Device struct {
	ID               int32        `json:"id"`
	DeviceTypeID     int32        `json:"device_type_id"`
	DeviceType       *DeviceType  `json:"device_type,omitempty"`
	SerialNumber     string       `json:"serial_number"`
	WorkingState     WorkingState `json:"working_state"`
	SubscriptionDate *time.Time   `json:"subscription_date,omitempty"`
	CreatedOn        string       `json:"created_on"`
}

// SubscriptionCurrent reports whether the unit's subscription covers `now`.
// Units of types without a subscription are always current. Comparison is at
// calendar-day granularity: a subscription paid through today still counts.
func (d *Device) SubscriptionCurrent(hasSubscription bool, now time.Time) bool {
	if !hasSubscription {
		return true
	}
	if d.SubscriptionDate == nil {
		return false
	}
	return !dateOnly(*d.SubscriptionDate).Before(dateOnly(now))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
