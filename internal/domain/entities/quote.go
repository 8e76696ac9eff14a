package entities

import "time"

// ServiceType is the catalogue key a customer picks on the quote form.
type ServiceType string

const (
	ServiceBasicWebsite     ServiceType = "basic_website"
	ServiceBusinessWebsite  ServiceType = "business_website"
	ServiceEcommerceStore   ServiceType = "ecommerce_store"
	ServiceMarketingPackage ServiceType = "marketing_package"
	ServicePremiumPackage   ServiceType = "premium_package"
)

// Quote is the price breakdown for a service delivered on a timeline.
//
// Amounts are whole Malawi Kwacha. Total is always BasePrice + Surcharge.
type Quote struct {
	Service      ServiceType `json:"service"`
	TimelineDays int         `json:"timeline_days"`
	BasePrice    int64       `json:"base_price"`
	Surcharge    int64       `json:"surcharge"`
	Total        int64       `json:"total"`
}

type QuoteLeadStatus string

const (
	QuoteLeadStatusNew QuoteLeadStatus = "new"
)

// QuoteLead is a quote request left on the website, kept for follow-up.
//
// Storage model (DynamoDB):
//   - PK: id
type QuoteLead struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Service      ServiceType     `json:"service"`
	TimelineDays int             `json:"timeline_days"`
	Budget       int64           `json:"budget"`
	Message      string          `json:"message"`
	Status       QuoteLeadStatus `json:"status"`
	Estimate     Quote           `json:"estimate"`
	CreatedAt    time.Time       `json:"created_at"`
}
