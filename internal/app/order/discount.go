package order

import "context"

// StaticDiscountResolver is a stand-in for the external membership
// lookup: a fixed card-to-percentage table. Unknown cards resolve to 0.
type StaticDiscountResolver map[string]float64

func (r StaticDiscountResolver) ResolvePercent(_ context.Context, memberCardID string) float64 {
	return r[memberCardID]
}

// DefaultMemberDiscounts mirrors the demo membership tiers used by the
// staff ordering UI until the real loyalty service is wired up.
var DefaultMemberDiscounts = StaticDiscountResolver{
	"MEMBER123": 10,
	"MEMBER456": 15,
	"MEMBER789": 20,
}
