package usecase

import (
	"testing"

	"github.com/hepsystems/hepeco/internal/domain/entities"
)

func TestComputeQuote(t *testing.T) {
	cases := []struct {
		name      string
		service   string
		days      int
		wantBase  int64
		wantTotal int64
	}{
		{"basic standard", "basic_website", 14, 250000, 250000},
		{"basic express", "basic_website", 7, 250000, 312500},
		{"basic priority", "basic_website", 3, 250000, 375000},
		{"ecommerce express", "ecommerce_store", 7, 750000, 937500},
		{"premium priority", "premium_package", 3, 1200000, 1800000},
		{"unknown service uses default price", "mobile_app", 14, 300000, 300000},
		{"unlisted timeline has no surcharge", "business_website", 30, 450000, 450000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := ComputeQuote(tc.service, tc.days)
			if q.BasePrice != tc.wantBase {
				t.Fatalf("base: expected %d, got %d", tc.wantBase, q.BasePrice)
			}
			if q.Total != tc.wantTotal {
				t.Fatalf("total: expected %d, got %d", tc.wantTotal, q.Total)
			}
			if q.BasePrice+q.Surcharge != q.Total {
				t.Fatalf("base+surcharge != total: %+v", q)
			}
			if q.TimelineDays != tc.days {
				t.Fatalf("expected timeline %d, got %d", tc.days, q.TimelineDays)
			}
		})
	}
}

func TestComputeQuote_Deterministic(t *testing.T) {
	a := ComputeQuote("business_website", 7)
	b := ComputeQuote("business_website", 7)
	if a != b {
		t.Fatalf("expected identical quotes, got %+v and %+v", a, b)
	}
}

func TestComputeQuote_RoundsHalfUp(t *testing.T) {
	// 250001 * 1.25 = 312501.25 rounds down.
	servicePrices["odd_test_service"] = 250001
	defer delete(servicePrices, "odd_test_service")

	q := ComputeQuote("odd_test_service", 7)
	if q.Total != 312501 {
		t.Fatalf("expected 312501, got %d", q.Total)
	}

	servicePrices["half_test_service"] = 250002
	defer delete(servicePrices, "half_test_service")
	// 250002 * 1.25 = 312502.5 rounds up.
	if got := ComputeQuote("half_test_service", 7).Total; got != 312503 {
		t.Fatalf("expected 312503, got %d", got)
	}
}

func TestKnownServiceAndBasePrice(t *testing.T) {
	if !KnownService(entities.ServicePremiumPackage) {
		t.Fatalf("premium package should be known")
	}
	if KnownService("seo_audit") {
		t.Fatalf("seo_audit should not be known")
	}
	if BasePrice("seo_audit") != DefaultServicePrice {
		t.Fatalf("unknown service should use the default price")
	}
}

func TestParseTimeline(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"", 14, true},
		{"14", 14, true},
		{"7 days", 7, true},
		{" 3 Days ", 3, true},
		{"1 day", 1, true},
		{"21d", 21, true},
		{"asap", 0, false},
		{"7 weeks", 0, false},
		{"0", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseTimeline(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseTimeline(%q) = (%d, %v), expected (%d, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
