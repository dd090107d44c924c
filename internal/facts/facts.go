// Package facts derives the recap's entertainment content from the stats
// aggregate. Every generator is a pure function of Stats driven by a
// fixed threshold table; none mutates its input or depends on sibling
// call order.
package facts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/campuscard/recap/internal/money"
	"github.com/campuscard/recap/internal/stats"
)

var (
	milkTeaPrice   = decimal.NewFromInt(15) // ¥ per cup, campus stall pricing
	minutesPerMeal = 20
)

// Comparisons turns the totals into everyday equivalences.
func Comparisons(s stats.Stats) []string {
	if s.Transactions == 0 {
		return nil
	}

	var out []string

	teas := s.TotalSpend.Div(milkTeaPrice).Floor()
	out = append(out, fmt.Sprintf("Your ¥%s of stall spend equals about %s cups of milk tea at ¥%s each.",
		money.Format(s.TotalSpend), teas.String(), money.Format(milkTeaPrice)))

	avg := s.TotalSpend.Div(decimal.NewFromInt(int64(s.Transactions)))
	out = append(out, fmt.Sprintf("That's ¥%s per visit across %d visits.",
		money.Format(avg), s.Transactions))

	hours := s.Transactions * minutesPerMeal / 60
	if hours > 0 {
		out = append(out, fmt.Sprintf("At roughly %d minutes a meal, you spent about %d hours eating at the stalls.",
			minutesPerMeal, hours))
	}

	if s.DistinctServices > 1 {
		out = append(out, fmt.Sprintf("You sampled %d different stalls, but %s won your heart.",
			s.DistinctServices, s.Favorite.Service))
	}

	return out
}

// Predictions projects next year from this year's monthly pace.
func Predictions(s stats.Stats) []string {
	if len(s.Months) == 0 {
		return nil
	}

	var out []string

	monthlyAvg := s.TotalSpend.Div(decimal.NewFromInt(int64(len(s.Months))))
	yearAhead := monthlyAvg.Mul(decimal.NewFromInt(12))
	out = append(out, fmt.Sprintf("At ¥%s a month, next year runs about ¥%s.",
		money.Format(monthlyAvg), money.Format(yearAhead)))

	if s.Favorite.Visits > 0 {
		visitsPerMonth := (s.Favorite.Visits + len(s.Months) - 1) / len(s.Months)
		out = append(out, fmt.Sprintf("Odds are %s sees you another %d times a month.",
			s.Favorite.Service, visitsPerMonth))
	}

	if s.PeakHour.Count > 0 {
		out = append(out, fmt.Sprintf("Safe bet: you'll still be swiping around %d:00.", s.PeakHour.Hour))
	}

	return out
}

// Quotes produces shareable one-liners. Builds on the personality label.
func Quotes(s stats.Stats) []string {
	p := NewPersonality(s)
	if s.Transactions == 0 {
		return []string{fmt.Sprintf("\"%s\" — the stalls await your return.", p.Label)}
	}

	return []string{
		fmt.Sprintf("\"%s\" isn't just a label, it's a lifestyle.", p.Label),
		fmt.Sprintf("Powered by %d meals and zero regrets.", s.Transactions),
		fmt.Sprintf("¥%s well spent.", money.Format(s.TotalSpend)),
	}
}

// Memories recounts the year's dining arc.
func Memories(s stats.Stats) []string {
	if s.Transactions == 0 {
		return nil
	}

	var out []string

	if len(s.Months) > 0 {
		first := s.Months[0]
		out = append(out, fmt.Sprintf("It started in %s with ¥%s of stall food.",
			first.Month, money.Format(first.Spend)))
		if len(s.Months) > 1 {
			last := s.Months[len(s.Months)-1]
			out = append(out, fmt.Sprintf("By %s you were still going strong at ¥%s.",
				last.Month, money.Format(last.Spend)))
		}
	}

	if s.Favorite.Visits > 0 {
		out = append(out, fmt.Sprintf("%s saw you %d times. That's commitment.",
			s.Favorite.Service, s.Favorite.Visits))
	}

	if s.PeakWeekday.Count > 0 {
		out = append(out, fmt.Sprintf("%ss were your day. The %d:00 line moved a little slower because of you.",
			s.PeakWeekday.Weekday, s.PeakHour.Hour))
	}

	return out
}
