package booking

import (
	"math"

	"github.com/maison-lumiere/storefront/internal/catalog"
	"github.com/maison-lumiere/storefront/internal/showroom"
)

// PricingConfig holds the tunable pricing constants. The defaults mirror the
// storefront's current commercial terms but are deliberately configuration,
// not business truth.
type PricingConfig struct {
	// RecurringDiscountPercent is taken off the surcharged price when the
	// customer books a recurring appointment.
	RecurringDiscountPercent float64
}

func DefaultPricing() PricingConfig {
	return PricingConfig{RecurringDiscountPercent: 5}
}

// Quote computes the total price for a consultation at a showroom:
// base price, times the showroom's surcharge multiplier, minus the recurring
// discount when applicable, rounded half away from zero to cents.
//
// Quote is pure: identical inputs always produce identical output. The
// storefront calls it from several places and relies on that.
func (p PricingConfig) Quote(ct catalog.ConsultationType, loc showroom.Location, recurring bool) float64 {
	total := ct.BasePrice * loc.Surcharge()
	if recurring {
		total *= 1 - p.RecurringDiscountPercent/100
	}
	return roundCents(total)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
