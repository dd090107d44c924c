package facts

import (
	"fmt"

	"github.com/campuscard/recap/internal/stats"
)

// Personality is the single label the recap leads with.
type Personality struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// personalityRule matches an inclusive peak-hour window. Description
// templates take the favorite service name.
type personalityRule struct {
	fromHour    int
	toHour      int
	label       string
	description string
}

var personalityRules = []personalityRule{
	{6, 9, "Early Bird", "Breakfast is your power move. %s knows your face before the morning rush ends."},
	{10, 13, "Lunch Rush Regular", "When the noon bell rings, you're already in line. %s might as well reserve your spot."},
	{14, 16, "Afternoon Grazer", "Lunch is merely round one. The mid-afternoon swipe at %s is where you really shine."},
	{17, 20, "Dinner Devotee", "The day winds down, your appetite winds up. %s at dinnertime is your happy place."},
	{21, 23, "Night Owl Snacker", "While the campus sleeps, you swipe. %s has seen you at hours best left unmentioned."},
}

// NewPersonality assigns a dining personality from the peak-hour window
// of the year's visits.
func NewPersonality(s stats.Stats) Personality {
	if s.Transactions == 0 {
		return Personality{
			Label:       "Mystery Diner",
			Description: "No cafeteria visits on record this year. The stalls miss you.",
		}
	}

	for _, r := range personalityRules {
		if s.PeakHour.Hour >= r.fromHour && s.PeakHour.Hour <= r.toHour {
			return Personality{
				Label:       r.label,
				Description: fmt.Sprintf(r.description, s.Favorite.Service),
			}
		}
	}
	return Personality{
		Label:       "Free Spirit",
		Description: fmt.Sprintf("Your meal times follow no known schedule, but %s keeps up anyway.", s.Favorite.Service),
	}
}
