package content

import "testing"

func TestPayslipNet(t *testing.T) {
	p := Default().Payslip
	if got, want := p.Net(), Money(65000); got != want {
		t.Errorf("Net() = %d, want %d", got, want)
	}
}

func TestCompensationBonusMatchesPayslip(t *testing.T) {
	c := Default()
	if c.Compensation.TotalBonus() != c.Payslip.Bonus {
		t.Errorf("bonus mismatch: compensation %d, payslip %d", c.Compensation.TotalBonus(), c.Payslip.Bonus)
	}
}

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		amount Money
		symbol string
		want   string
	}{
		{60000, "₹", "₹60,000"},
		{5000, "$", "$5,000"},
		{950, "₹", "₹950"},
		{-2000, "₹", "-₹2,000"},
		{1250000, "", "1,250,000"},
	}
	for _, tt := range tests {
		if got := tt.amount.Format(tt.symbol); got != tt.want {
			t.Errorf("Money(%d).Format(%q) = %q, want %q", tt.amount, tt.symbol, got, tt.want)
		}
	}
}

func TestMoneyPlain(t *testing.T) {
	if got, want := Money(65000).Plain(), "65,000.00"; got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
}

func TestPercentLabel(t *testing.T) {
	if got := PercentLabel(0.70); got != "70% completed" {
		t.Errorf("PercentLabel(0.70) = %q", got)
	}
	if got := PercentLabel(0); got != "0% completed" {
		t.Errorf("PercentLabel(0) = %q", got)
	}
}

func TestTrendRange(t *testing.T) {
	lo, hi := Default().Engagement.TrendRange()
	if lo != 76 || hi != 85 {
		t.Errorf("TrendRange() = (%d, %d), want (76, 85)", lo, hi)
	}
	lo, hi = Engagement{}.TrendRange()
	if lo != 0 || hi != 0 {
		t.Errorf("empty TrendRange() = (%d, %d)", lo, hi)
	}
}

func TestDefaultModules(t *testing.T) {
	if n := len(Default().Learning.Modules); n != 4 {
		t.Errorf("expected 4 learning modules, got %d", n)
	}
}
