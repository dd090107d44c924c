package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/campuscard/recap/internal/classify"
	"github.com/campuscard/recap/internal/model"
	"github.com/campuscard/recap/internal/parse"
)

const (
	// DefaultTopN is the length of the top-services lists.
	DefaultTopN = 8

	// UnknownService stands in for rows with a blank service field.
	UnknownService = "Unknown"

	// NoFavorite is the favorite-service placeholder when no dining rows exist.
	NoFavorite = "—"
)

// ServiceSpend pairs a service with its accumulated spend.
type ServiceSpend struct {
	Service string          `json:"service"`
	Spend   decimal.Decimal `json:"spend"`
}

// ServiceVisits pairs a service with its visit count.
type ServiceVisits struct {
	Service string `json:"service"`
	Visits  int    `json:"visits"`
}

// HourPeak is the busiest hour-of-day bucket.
type HourPeak struct {
	Hour  int `json:"hour"` // 0-23
	Count int `json:"count"`
}

// WeekdayPeak is the busiest weekday bucket.
type WeekdayPeak struct {
	Weekday time.Weekday `json:"weekday"` // Sunday=0
	Count   int          `json:"count"`
}

// MonthSpend is the dining spend for one calendar month.
type MonthSpend struct {
	Month string          `json:"month"` // "YYYY-MM"
	Spend decimal.Decimal `json:"spend"`
}

// CategoryCounts is the diagnostic breakdown over the whole unfiltered
// input, with expense rows split into dining and everything else.
type CategoryCounts struct {
	Topup     int `json:"topup"`
	Printing  int `json:"printing"`
	Admin     int `json:"admin"`
	Dining    int `json:"dining"`
	NonDining int `json:"expense_non_dining"`
	Other     int `json:"other"`
}

func (c *CategoryCounts) add(cat model.Category, dining bool) {
	switch cat {
	case model.CategoryTopup:
		c.Topup++
	case model.CategoryPrinting:
		c.Printing++
	case model.CategoryAdmin:
		c.Admin++
	case model.CategoryExpense:
		if dining {
			c.Dining++
		} else {
			c.NonDining++
		}
	default:
		c.Other++
	}
}

// Meta carries diagnostics computed over the entire input, not just the
// dining working set.
type Meta struct {
	CatCounts CategoryCounts `json:"cat_counts"`
}

// Stats is the full recap aggregate. Fully derived from the row set on
// every call; nothing is cached or mutated.
type Stats struct {
	Transactions     int             `json:"transactions"`
	TotalSpend       decimal.Decimal `json:"total_spend"`
	DistinctServices int             `json:"distinct_services"`
	TopBySpend       []ServiceSpend  `json:"top_by_spend"`
	TopByVisits      []ServiceVisits `json:"top_by_visits"`
	Favorite         ServiceVisits   `json:"favorite"`
	PeakHour         HourPeak        `json:"peak_hour"`
	PeakWeekday      WeekdayPeak     `json:"peak_weekday"`
	HourHistogram    [24]int         `json:"hour_histogram"`
	WeekdayHistogram [7]int          `json:"weekday_histogram"`
	Months           []MonthSpend    `json:"months"`
	TimestampedRows  int             `json:"timestamped_rows"`
	Meta             Meta            `json:"meta"`
}

// SpendValue is the amount a row contributes to spend sums: the absolute
// value for negative amounts, zero otherwise. Refunds and positive
// adjustments never add to spend, though the row still counts as a visit.
func SpendValue(row model.Row) decimal.Decimal {
	amount := parse.Amount(row.Amount)
	if amount.IsNegative() {
		return amount.Neg()
	}
	return decimal.Zero
}

// Compute folds a row set into a Stats aggregate. Category counts cover
// every row; all other statistics cover dining rows only. Rows whose
// timestamp won't parse are excluded from the hour, weekday, and month
// buckets but still count toward visits and spend. topN <= 0 falls back
// to DefaultTopN.
func Compute(rows []model.Row, det *classify.Detector, topN int) Stats {
	if topN <= 0 {
		topN = DefaultTopN
	}

	s := Stats{
		TotalSpend: decimal.Zero,
		Favorite:   ServiceVisits{Service: NoFavorite},
	}

	spendBy := make(map[string]decimal.Decimal)
	visitsBy := make(map[string]int)
	monthSpend := make(map[string]decimal.Decimal)

	// First-seen order of services, so ties in the stable descending sort
	// keep input order.
	var serviceOrder []string

	for _, row := range rows {
		dining := det.IsDining(row)
		s.Meta.CatCounts.add(classify.Classify(row), dining)
		if !dining {
			continue
		}

		s.Transactions++
		spend := SpendValue(row)
		s.TotalSpend = s.TotalSpend.Add(spend)

		service := strings.TrimSpace(row.Service)
		if service == "" {
			service = UnknownService
		}
		if _, seen := visitsBy[service]; !seen {
			serviceOrder = append(serviceOrder, service)
		}
		visitsBy[service]++
		spendBy[service] = spendBy[service].Add(spend)

		ts, ok := parse.DateTime(row.DateTime)
		if !ok {
			continue
		}
		s.TimestampedRows++
		s.HourHistogram[ts.Hour()]++
		s.WeekdayHistogram[int(ts.Weekday())]++

		key := ts.Format("2006-01")
		monthSpend[key] = monthSpend[key].Add(spend)
	}

	s.DistinctServices = len(serviceOrder)
	s.TopBySpend = topSpend(serviceOrder, spendBy, topN)
	s.TopByVisits = topVisits(serviceOrder, visitsBy, topN)
	if len(s.TopByVisits) > 0 {
		s.Favorite = s.TopByVisits[0]
	}
	s.PeakHour = peakHour(s.HourHistogram)
	s.PeakWeekday = peakWeekday(s.WeekdayHistogram)
	s.Months = sortedMonths(monthSpend)

	return s
}

func topSpend(order []string, spendBy map[string]decimal.Decimal, n int) []ServiceSpend {
	entries := make([]ServiceSpend, 0, len(order))
	for _, service := range order {
		entries = append(entries, ServiceSpend{Service: service, Spend: spendBy[service]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Spend.GreaterThan(entries[j].Spend)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func topVisits(order []string, visitsBy map[string]int, n int) []ServiceVisits {
	entries := make([]ServiceVisits, 0, len(order))
	for _, service := range order {
		entries = append(entries, ServiceVisits{Service: service, Visits: visitsBy[service]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Visits > entries[j].Visits
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// peakHour picks the bucket with the maximum count, first maximum wins.
func peakHour(hist [24]int) HourPeak {
	peak := HourPeak{}
	for hour, count := range hist {
		if count > peak.Count {
			peak = HourPeak{Hour: hour, Count: count}
		}
	}
	return peak
}

func peakWeekday(hist [7]int) WeekdayPeak {
	peak := WeekdayPeak{}
	for day, count := range hist {
		if count > peak.Count {
			peak = WeekdayPeak{Weekday: time.Weekday(day), Count: count}
		}
	}
	return peak
}

// sortedMonths returns month buckets ascending by key. Zero-padded
// "YYYY-MM" keys make lexicographic order chronological.
func sortedMonths(monthSpend map[string]decimal.Decimal) []MonthSpend {
	keys := make([]string, 0, len(monthSpend))
	for key := range monthSpend {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	months := make([]MonthSpend, 0, len(keys))
	for _, key := range keys {
		months = append(months, MonthSpend{Month: key, Spend: monthSpend[key]})
	}
	return months
}
