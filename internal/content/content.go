// Package content holds the static data displayed by the portal.
package content

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Money is a whole-unit amount in the configured currency.
type Money int64

// Format renders the amount with thousands separators and a currency symbol.
func (m Money) Format(symbol string) string {
	if m < 0 {
		return "-" + symbol + humanize.Comma(int64(-m))
	}
	return symbol + humanize.Comma(int64(m))
}

// Plain renders the amount with thousands separators and two decimals.
func (m Money) Plain() string {
	return humanize.FormatFloat("#,###.##", float64(m))
}

// TrendPoint is one day of the engagement trend.
type TrendPoint struct {
	Day   string
	Score int
}

// Engagement is the dashboard panel.
type Engagement struct {
	Score   int // percent
	Caption string
	Trend   []TrendPoint
}

// Learning is the learning panel.
type Learning struct {
	Course    string
	Completed float64 // 0..1
	Note      string
	Modules   []string
}

// Wellness is the wellness panel.
type Wellness struct {
	Insight string
	Tips    string
}

// Compensation is the compensation panel.
type Compensation struct {
	BaseMonthly      Money
	PerformanceBonus Money
	WellnessBonus    Money
	Note             string
}

// TotalBonus returns the sum of all bonuses.
func (c Compensation) TotalBonus() Money {
	return c.PerformanceBonus + c.WellnessBonus
}

// Payslip is the detail shown in the payslip dialog.
type Payslip struct {
	Month      string
	Base       Money
	Bonus      Money
	Deductions Money
}

// Net returns base plus bonus minus deductions.
func (p Payslip) Net() Money {
	return p.Base + p.Bonus - p.Deductions
}

// Portal bundles the data for every panel and dialog.
type Portal struct {
	Title        string
	Engagement   Engagement
	Learning     Learning
	Wellness     Wellness
	Compensation Compensation
	Payslip      Payslip
}

// Default returns the built-in portal content.
func Default() Portal {
	return Portal{
		Title: "Employee HR Portal",
		Engagement: Engagement{
			Score:   82,
			Caption: "AI-generated score based on feedback and activity",
			Trend: []TrendPoint{
				{Day: "Mon", Score: 78},
				{Day: "Tue", Score: 82},
				{Day: "Wed", Score: 76},
				{Day: "Thu", Score: 85},
				{Day: "Fri", Score: 80},
			},
		},
		Learning: Learning{
			Course:    "AI-Powered Healthcare Training",
			Completed: 0.70,
			Note:      "Access new modules and track certifications completed this month.",
			Modules: []string{
				"Effective Patient Communication",
				"Digital Records Management",
				"First Aid Refresher",
				"AI in Modern Healthcare",
			},
		},
		Wellness: Wellness{
			Insight: "You've worked multiple night shifts. Consider scheduling a wellness day.",
			Tips:    "Your sleep balance and step count have decreased this week. Personalized tips are available.",
		},
		Compensation: Compensation{
			BaseMonthly:      60000,
			PerformanceBonus: 5000,
			WellnessBonus:    2000,
			Note:             "Bonus and perks are updated quarterly based on AI-driven performance reviews.",
		},
		Payslip: Payslip{
			Month:      "March 2025",
			Base:       60000,
			Bonus:      7000,
			Deductions: 2000,
		},
	}
}

// PercentLabel formats a 0..1 completion ratio as "70% completed".
func PercentLabel(ratio float64) string {
	return fmt.Sprintf("%d%% completed", int(ratio*100+0.5))
}

// TrendRange returns the lowest and highest score in the trend.
func (e Engagement) TrendRange() (lo, hi int) {
	if len(e.Trend) == 0 {
		return 0, 0
	}
	lo, hi = e.Trend[0].Score, e.Trend[0].Score
	for _, p := range e.Trend[1:] {
		lo = min(lo, p.Score)
		hi = max(hi, p.Score)
	}
	return lo, hi
}
