package models

import "time"

// Provider is the coach publishing availability and receiving bookings.
type Provider struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email,omitempty"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	HourlyRate  float64   `bson:"hourlyRate" json:"hourlyRate"`
	// CustomRate, when set, takes precedence over HourlyRate for pricing.
	CustomRate  *float64  `bson:"customRate,omitempty" json:"customRate,omitempty"`
	Currency    string    `bson:"currency" json:"currency,omitempty"`
	Techniques  []string  `bson:"techniques,omitempty" json:"techniques,omitempty"`
	SkillLevels []string  `bson:"skillLevels,omitempty" json:"skillLevels,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProviderStats is the dashboard summary derived from a provider's bookings.
type ProviderStats struct {
	TodayBookings     int     `json:"todayBookings"`
	WeekBookings      int     `json:"weekBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	ProjectedEarnings float64 `json:"projectedEarnings"`
}
