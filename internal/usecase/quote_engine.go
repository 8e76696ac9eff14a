package usecase

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/hepsystems/hepeco/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	DefaultTimelineDays  = 14
	DefaultServicePrice  = int64(300000)
	expressTimelineDays  = 7
	priorityTimelineDays = 3
)

var servicePrices = map[entities.ServiceType]int64{
	entities.ServiceBasicWebsite:     250000,
	entities.ServiceBusinessWebsite:  450000,
	entities.ServiceEcommerceStore:   750000,
	entities.ServiceMarketingPackage: 300000,
	entities.ServicePremiumPackage:   1200000,
}

var timelineMultipliers = map[int]decimal.Decimal{
	DefaultTimelineDays:  decimal.NewFromInt(1),
	expressTimelineDays:  decimal.RequireFromString("1.25"),
	priorityTimelineDays: decimal.RequireFromString("1.5"),
}

// BasePrice returns the catalogue price for service. Unknown services are
// priced at DefaultServicePrice.
func BasePrice(service entities.ServiceType) int64 {
	if p, ok := servicePrices[service]; ok {
		return p
	}
	return DefaultServicePrice
}

// KnownService reports whether service is in the catalogue.
func KnownService(service entities.ServiceType) bool {
	_, ok := servicePrices[service]
	return ok
}

// ComputeQuote prices service for a delivery timeline.
//
// Timelines other than 14, 7 or 3 days carry no surcharge. The total is
// rounded half-up to a whole currency unit.
func ComputeQuote(service string, timelineDays int) entities.Quote {
	svc := entities.ServiceType(strings.TrimSpace(service))
	base := BasePrice(svc)

	multiplier, ok := timelineMultipliers[timelineDays]
	if !ok {
		multiplier = decimal.NewFromInt(1)
	}

	total := decimal.NewFromInt(base).Mul(multiplier).Round(0).IntPart()
	if total < 0 {
		total = 0
	}

	return entities.Quote{
		Service:      svc,
		TimelineDays: timelineDays,
		BasePrice:    base,
		Surcharge:    total - base,
		Total:        total,
	}
}

// ParseTimeline reads a timeline as typed on the quote form ("7 days",
// "3", " 14 Days "). Blank input is the default timeline; input without a
// leading number returns ok=false.
func ParseTimeline(raw string) (days int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTimelineDays, true
	}

	end := strings.IndexFunc(raw, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == 0 {
		return 0, false
	}
	if end < 0 {
		end = len(raw)
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil || n <= 0 {
		return 0, false
	}

	rest := strings.ToLower(strings.TrimSpace(raw[end:]))
	switch rest {
	case "", "day", "days", "d":
		return n, true
	}
	return 0, false
}
