package models

type SubscriptionStatus string

const (
	SubscriptionStatusTrial       SubscriptionStatus = "TRIAL"
	SubscriptionStatusActive      SubscriptionStatus = "ACTIVE"
	SubscriptionStatusExpired     SubscriptionStatus = "EXPIRED"
	SubscriptionStatusSuspended   SubscriptionStatus = "SUSPENDED"
	SubscriptionStatusAdSupported SubscriptionStatus = "AD_SUPPORTED"
)

func (s SubscriptionStatus) IsUsable() bool {
	return s == SubscriptionStatusTrial || s == SubscriptionStatusActive || s == SubscriptionStatusAdSupported
}
