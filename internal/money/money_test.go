package money

import "testing"

// TestFromUnits は元単位からセント単位への変換を検証する。
func TestFromUnits(t *testing.T) {
	if got := FromUnits(50); got != 5000 {
		t.Errorf("FromUnits(50) = %d, want 5000", got)
	}
	if got := FromUnits(0); got != 0 {
		t.Errorf("FromUnits(0) = %d, want 0", got)
	}
}

// TestCents_Mul は割引率適用（切り捨て）を検証する。
func TestCents_Mul(t *testing.T) {
	tests := []struct {
		name  string
		c     Cents
		r     Rate
		want  Cents
	}{
		{"10% of 600.00", 60000, 1000, 6000},
		{"5% of 25.00", 2500, 500, 125},
		{"0% rate", 2500, 0, 0},
		{"truncates fraction", 2501, 500, 125}, // 125.05 -> 125
		{"zero amount", 0, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Mul(tt.r); got != tt.want {
				t.Errorf("%d.Mul(%d) = %d, want %d", tt.c, tt.r, got, tt.want)
			}
		})
	}
}

// TestCents_String は表示用文字列を検証する。
func TestCents_String(t *testing.T) {
	tests := []struct {
		c    Cents
		want string
	}{
		{5000, "50.00"},
		{125, "1.25"},
		{5, "0.05"},
		{0, "0.00"},
		{-2500, "-25.00"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Cents(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
