package domain

// DeviceType is a catalog entry: one model of rentable equipment. Pricing
// lives here and is snapshotted onto rentals at booking time.
type DeviceType struct {
	ID                   int32  `json:"id"`
	Name                 string `json:"name"`
	DailyRateCents       int32  `json:"daily_rate_cents"`
	DepositCents         int32  `json:"deposit_cents"`
	HasSubscription      bool   `json:"has_subscription"`
	SubscriptionFeeCents int32  `json:"subscription_fee_cents"`
	CreatedOn            string `json:"created_on"`
}
