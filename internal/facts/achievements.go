package facts

import (
	"github.com/shopspring/decimal"

	"github.com/campuscard/recap/internal/stats"
)

// Achievement is one earned badge in the recap.
type Achievement struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type achievementRule struct {
	Achievement
	earned func(stats.Stats) bool
}

var (
	bigSpendThreshold = decimal.NewFromInt(1000)
	heavySpendPerMeal = decimal.NewFromInt(30)
)

// achievementRules is evaluated in order; every condition is independent.
var achievementRules = []achievementRule{
	{
		Achievement: Achievement{Icon: "🍜", Name: "Century Club", Description: "100 or more stall visits this year"},
		earned:      func(s stats.Stats) bool { return s.Transactions >= 100 },
	},
	{
		Achievement: Achievement{Icon: "💰", Name: "Big Spender", Description: "Over ¥1,000 swiped at the stalls"},
		earned:      func(s stats.Stats) bool { return s.TotalSpend.GreaterThanOrEqual(bigSpendThreshold) },
	},
	{
		Achievement: Achievement{Icon: "❤️", Name: "Loyal Regular", Description: "30 or more visits to a single stall"},
		earned:      func(s stats.Stats) bool { return s.Favorite.Visits >= 30 },
	},
	{
		Achievement: Achievement{Icon: "🎯", Name: "Creature of Habit", Description: "Half your visits went to one stall"},
		earned: func(s stats.Stats) bool {
			return s.Transactions > 0 && s.Favorite.Visits*2 >= s.Transactions
		},
	},
	{
		Achievement: Achievement{Icon: "🧭", Name: "Explorer", Description: "Tried 15 or more different stalls"},
		earned:      func(s stats.Stats) bool { return s.DistinctServices >= 15 },
	},
	{
		Achievement: Achievement{Icon: "🌅", Name: "Dawn Patrol", Description: "Your busiest hour is before 9am"},
		earned:      func(s stats.Stats) bool { return s.Transactions > 0 && s.PeakHour.Hour < 9 },
	},
	{
		Achievement: Achievement{Icon: "🌙", Name: "Midnight Snacker", Description: "Your busiest hour is after 9pm"},
		earned:      func(s stats.Stats) bool { return s.PeakHour.Hour >= 21 },
	},
	{
		Achievement: Achievement{Icon: "📅", Name: "Full-Year Streak", Description: "Dining spend in 10 or more months"},
		earned:      func(s stats.Stats) bool { return len(s.Months) >= 10 },
	},
	{
		Achievement: Achievement{Icon: "🍱", Name: "Hearty Appetite", Description: "Averaged over ¥30 per visit"},
		earned: func(s stats.Stats) bool {
			if s.Transactions == 0 {
				return false
			}
			avg := s.TotalSpend.Div(decimal.NewFromInt(int64(s.Transactions)))
			return avg.GreaterThan(heavySpendPerMeal)
		},
	},
}

// Achievements returns every badge the year's stats earned, in fixed
// table order.
func Achievements(s stats.Stats) []Achievement {
	var out []Achievement
	for _, r := range achievementRules {
		if r.earned(s) {
			out = append(out, r.Achievement)
		}
	}
	return out
}
