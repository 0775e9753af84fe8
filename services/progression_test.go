package services

import "testing"

func TestSplitFee(t *testing.T) {
	cases := []struct {
		amount, fee, payout int64
	}{
		{10_000, 250, 9_750},
		{1_000_000, 25_000, 975_000},
		{1, 0, 1},
		{39, 0, 39},
		{40, 1, 39},
		{999_999, 24_999, 975_000},
		{30_000_000, 750_000, 29_250_000},
	}
	for _, c := range cases {
		fee, payout := SplitFee(c.amount)
		if fee != c.fee || payout != c.payout {
			t.Errorf("SplitFee(%d) = (%d, %d), want (%d, %d)", c.amount, fee, payout, c.fee, c.payout)
		}
		if fee+payout != c.amount {
			t.Errorf("SplitFee(%d) does not conserve the amount: %d + %d", c.amount, fee, payout)
		}
	}
}

func TestSplitFeeConservation(t *testing.T) {
	for amount := int64(0); amount < 50_000; amount += 7 {
		fee, payout := SplitFee(amount)
		if fee+payout != amount {
			t.Fatalf("SplitFee(%d) = (%d, %d), sum %d", amount, fee, payout, fee+payout)
		}
		if fee < 0 || payout < 0 {
			t.Fatalf("SplitFee(%d) produced a negative part (%d, %d)", amount, fee, payout)
		}
	}
}

func TestExperienceForAmount(t *testing.T) {
	cases := []struct {
		amount, xp int64
	}{
		{0, 0},
		{9_999, 0},
		{10_000, 1},
		{1_000_000, 100},
		{30_000_000, 3_000},
	}
	for _, c := range cases {
		if got := ExperienceForAmount(c.amount); got != c.xp {
			t.Errorf("ExperienceForAmount(%d) = %d, want %d", c.amount, got, c.xp)
		}
	}
}

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int64
		level int
	}{
		{0, 1},
		{999, 1},
		{1_000, 1},
		{1_001, 2},
		{3_000, 2},
		{5_000, 2},
		{5_001, 3},
		{15_000, 3},
		{15_001, 4},
		{35_000, 4},
		{35_001, 5},
		{75_000, 5},
		{75_001, 6},
		{1_000_000, 6},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.level {
			t.Errorf("LevelForXP(%d) = %d, want %d", c.xp, got, c.level)
		}
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := LevelForXP(0)
	for xp := int64(1); xp <= 100_000; xp += 97 {
		level := LevelForXP(xp)
		if level < prev {
			t.Fatalf("level dropped from %d to %d at xp %d", prev, level, xp)
		}
		prev = level
	}
}
