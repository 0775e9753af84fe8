package services

// Fee and progression constants. Amounts are int64 base units; 10_000 units is
// both the minimum accepted payment and the spend needed for one experience
// point, and the fee rate is 250 basis points of the same denominator.
const (
	MinPaymentAmount = 10_000

	FeeBasisPoints  = 250
	BasisPointDenom = 10_000

	SpendPerXP = 10_000
)

// SplitFee divides a paid amount into the platform fee and the payout that
// goes to the developer or item creator. fee + payout == amount for every
// amount; the floor in the fee leaves the remainder on the payout side.
func SplitFee(amount int64) (fee, payout int64) {
	fee = amount * FeeBasisPoints / BasisPointDenom
	return fee, amount - fee
}

// ExperienceForAmount maps spend (or reward value) to experience points.
func ExperienceForAmount(amount int64) int64 {
	return amount / SpendPerXP
}

// levelThresholds[i] is the highest XP still inside level i+1.
var levelThresholds = [...]int64{1_000, 5_000, 15_000, 35_000, 75_000}

// LevelForXP maps cumulative experience to a level in [1, 6]. Non-decreasing
// in xp.
func LevelForXP(xp int64) int {
	for i, max := range levelThresholds {
		if xp <= max {
			return i + 1
		}
	}
	return len(levelThresholds) + 1
}
