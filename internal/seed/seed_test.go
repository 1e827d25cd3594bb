package seed

import (
	"testing"

	"lumina-storefront/internal/domain"
)

func TestDefaultRatesCoverAllWilayas(t *testing.T) {
	rates := DefaultRates()
	if len(rates) != len(domain.Wilayas) {
		t.Fatalf("expected %d rates, got %d", len(domain.Wilayas), len(rates))
	}
	seen := make(map[string]bool, len(rates))
	for _, r := range rates {
		if seen[r.Wilaya] {
			t.Fatalf("duplicate wilaya %q", r.Wilaya)
		}
		seen[r.Wilaya] = true
		if r.HomeFee <= 0 || r.PickupFee <= 0 {
			t.Fatalf("wilaya %q has non-positive fee: %+v", r.Wilaya, r)
		}
		if r.PickupFee > r.HomeFee {
			t.Fatalf("wilaya %q pickup fee exceeds home fee: %+v", r.Wilaya, r)
		}
	}
}

func TestDefaultRateTiers(t *testing.T) {
	byWilaya := make(map[string]domain.WilayaRate)
	for _, r := range DefaultRates() {
		byWilaya[r.Wilaya] = r
	}

	cases := []struct {
		wilaya       string
		home, pickup int64
	}{
		{"16 - Alger", 400, 250},
		{"09 - Blida", 500, 300},
		{"15 - Tizi Ouzou", 500, 300},
		{"35 - Boumerdès", 500, 300},
		{"42 - Tipaza", 500, 300},
		{"01 - Adrar", 700, 400},
		{"31 - Oran", 700, 400},
		{"49 - El M'Ghair", 1200, 800},
		{"58 - In Guezzam", 1200, 800},
	}
	for _, tc := range cases {
		r, ok := byWilaya[tc.wilaya]
		if !ok {
			t.Fatalf("missing rate for %q", tc.wilaya)
		}
		if r.HomeFee != tc.home || r.PickupFee != tc.pickup {
			t.Fatalf("%s: expected %d/%d, got %d/%d", tc.wilaya, tc.home, tc.pickup, r.HomeFee, r.PickupFee)
		}
	}
}
