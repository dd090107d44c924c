package commands

import (
	"fmt"
	"io"

	"github.com/campuscard/recap/internal/money"
)

// renderText writes the human-readable recap.
func renderText(w io.Writer, doc recapDoc) {
	s := doc.Stats

	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, "  Your Year at the Stalls")
	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Visits:        %d\n", s.Transactions)
	fmt.Fprintf(w, "Total spend:   ¥%s\n", money.Format(s.TotalSpend))
	fmt.Fprintf(w, "Favorite:      %s (%d visits)\n", s.Favorite.Service, s.Favorite.Visits)
	fmt.Fprintf(w, "Busiest hour:  %02d:00 (%d visits)\n", s.PeakHour.Hour, s.PeakHour.Count)
	fmt.Fprintf(w, "Busiest day:   %s (%d visits)\n", s.PeakWeekday.Weekday, s.PeakWeekday.Count)
	fmt.Fprintln(w)

	if len(s.TopBySpend) > 0 {
		fmt.Fprintln(w, "Top stalls by spend:")
		for i, e := range s.TopBySpend {
			fmt.Fprintf(w, "  %d. %-24s ¥%s\n", i+1, e.Service, money.Format(e.Spend))
		}
		fmt.Fprintln(w)
	}

	if len(s.Months) > 0 {
		fmt.Fprintln(w, "Spend by month:")
		for _, m := range s.Months {
			fmt.Fprintf(w, "  %s  ¥%s\n", m.Month, money.Format(m.Spend))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Personality: %s\n", doc.Personality.Label)
	fmt.Fprintf(w, "  %s\n", doc.Personality.Description)
	fmt.Fprintln(w)

	if len(doc.Achievements) > 0 {
		fmt.Fprintln(w, "Achievements:")
		for _, a := range doc.Achievements {
			fmt.Fprintf(w, "  %s %s: %s\n", a.Icon, a.Name, a.Description)
		}
		fmt.Fprintln(w)
	}

	writeSection(w, "Comparisons", doc.Comparisons)
	writeSection(w, "Predictions", doc.Predictions)
	writeSection(w, "Quotes", doc.Quotes)
	writeSection(w, "Memories", doc.Memories)
}

func writeSection(w io.Writer, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, line := range lines {
		fmt.Fprintf(w, "  - %s\n", line)
	}
	fmt.Fprintln(w)
}
