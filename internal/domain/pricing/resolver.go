package pricing

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountNone        DiscountType = "none"
	DiscountUniqueOffer DiscountType = "uniqueOffer"
	DiscountFlashSale   DiscountType = "fastUdsalgspris"
	DiscountGroup       DiscountType = "rabatGruppe"
)

// Flag marks a data inconsistency the resolver tolerated instead of
// failing the request.
type Flag string

const (
	FlagOverlappingUniqueOffers Flag = "overlapping_unique_offers"
	FlagNegativePriceClamped    Flag = "negative_price_clamped"
)

// Input specs. The resolver is a pure function: callers load these
// snapshots from storage and hand them over together with the clock
// reading they want the resolution to reflect.

type ProductSpec struct {
	ID             uuid.UUID
	Name           string
	BasePriceCents int64
	Active         bool
}

type GroupSpec struct {
	ID         uuid.UUID
	Name       string
	PercentOff float64
	Active     bool
}

type CustomerSpec struct {
	ID    uuid.UUID
	Group GroupSpec
}

type UniqueOfferSpec struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	ProductID  uuid.UUID
	PriceCents int64
	ValidFrom  *time.Time
	ValidTo    *time.Time
	Unlimited  bool
	Active     bool
	CreatedAt  time.Time
}

func (o UniqueOfferSpec) IsActiveAt(now time.Time) bool {
	if !o.Active {
		return false
	}
	if o.Unlimited {
		return true
	}
	if o.ValidFrom != nil && now.Before(*o.ValidFrom) {
		return false
	}
	if o.ValidTo != nil && now.After(*o.ValidTo) {
		return false
	}
	return true
}

type FlashSaleSpec struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	PriceCents int64
	StartsAt   time.Time
	EndsAt     time.Time
	Active     bool
}

func (f FlashSaleSpec) IsActiveAt(now time.Time) bool {
	return f.Active && !now.Before(f.StartsAt) && !now.After(f.EndsAt)
}

// Offers is the discount configuration relevant to one (product,
// customer) pair as of a single storage read.
type Offers struct {
	UniqueOffers    []UniqueOfferSpec
	FlashSales      []FlashSaleSpec
	GroupPriceCents *int64
}

// Quote is the resolved price descriptor. All later consumers (cart
// rollup, order freezing, catalog views, admin preview) read this one
// tagged variant instead of re-deriving precedence.
type Quote struct {
	PriceCents         int64
	OriginalPriceCents int64
	DiscountType       DiscountType
	DiscountLabel      string
	DiscountPercent    int
	Strikethrough      bool
	Flags              []Flag
}

func (q Quote) HasFlag(f Flag) bool {
	for _, have := range q.Flags {
		if have == f {
			return true
		}
	}
	return false
}

// Resolve determines the price a customer sees for a product at `now`.
// Precedence, first match wins: unique offer, flash sale, offer-group
// fixed price, group percentage, base price. Data inconsistencies
// (overlapping active unique offers, negative prices) degrade with a
// flag rather than fail.
func Resolve(product ProductSpec, cust *CustomerSpec, offers Offers, now time.Time) Quote {
	base := product.BasePriceCents

	if cust != nil {
		if offer, overlap := pickUniqueOffer(offers.UniqueOffers, cust.ID, product.ID, now); offer != nil {
			q := buildQuote(offer.PriceCents, base, DiscountUniqueOffer, "Dit tilbud")
			if overlap {
				q.Flags = append(q.Flags, FlagOverlappingUniqueOffers)
			}
			return q
		}
	}

	if sale := pickFlashSale(offers.FlashSales, product.ID, now); sale != nil {
		return buildQuote(sale.PriceCents, base, DiscountFlashSale, "Fast udsalgspris")
	}

	if cust != nil && cust.Group.Active {
		if offers.GroupPriceCents != nil {
			return buildQuote(*offers.GroupPriceCents, base, DiscountGroup, cust.Group.Name)
		}
		if cust.Group.PercentOff > 0 {
			discounted := int64(math.Round(float64(base) * (100.0 - cust.Group.PercentOff) / 100.0))
			return buildQuote(discounted, base, DiscountGroup, cust.Group.Name)
		}
	}

	return Quote{
		PriceCents:         clampPrice(base),
		OriginalPriceCents: clampPrice(base),
		DiscountType:       DiscountNone,
	}
}

// pickUniqueOffer returns the applicable unique offer, preferring the
// most recently created one when several are simultaneously active.
// Overlap is an upstream integrity violation that gets reported, not a
// crash.
func pickUniqueOffer(candidates []UniqueOfferSpec, customerID, productID uuid.UUID, now time.Time) (*UniqueOfferSpec, bool) {
	var picked *UniqueOfferSpec
	activeCount := 0
	for i := range candidates {
		o := &candidates[i]
		if o.CustomerID != customerID || o.ProductID != productID {
			continue
		}
		if !o.IsActiveAt(now) {
			continue
		}
		activeCount++
		if picked == nil || o.CreatedAt.After(picked.CreatedAt) {
			picked = o
		}
	}
	return picked, activeCount > 1
}

func pickFlashSale(candidates []FlashSaleSpec, productID uuid.UUID, now time.Time) *FlashSaleSpec {
	for i := range candidates {
		s := &candidates[i]
		if s.ProductID == productID && s.IsActiveAt(now) {
			return s
		}
	}
	return nil
}

func buildQuote(priceCents, originalCents int64, dt DiscountType, label string) Quote {
	q := Quote{
		OriginalPriceCents: clampPrice(originalCents),
		DiscountType:       dt,
		DiscountLabel:      label,
	}
	if priceCents < 0 {
		q.Flags = append(q.Flags, FlagNegativePriceClamped)
		priceCents = 0
	}
	q.PriceCents = priceCents
	q.Strikethrough = q.PriceCents < q.OriginalPriceCents
	q.DiscountPercent = displayPercent(q.OriginalPriceCents, q.PriceCents)
	return q
}

// displayPercent is derived from the actual price gap, never from the
// group's configured percentage, so fixed-price overrides display a
// percentage consistent with what the customer pays.
func displayPercent(originalCents, priceCents int64) int {
	if originalCents <= 0 || priceCents >= originalCents {
		return 0
	}
	return int(math.Round(float64(originalCents-priceCents) / float64(originalCents) * 100.0))
}

func clampPrice(cents int64) int64 {
	if cents < 0 {
		return 0
	}
	return cents
}
