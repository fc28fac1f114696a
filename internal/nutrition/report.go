// Package nutrition generates the synthetic intake data shown on the
// dashboard chart. The numbers are random within fixed ranges; nothing is
// persisted.
package nutrition

import (
	"math/rand"
	"time"
)

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type Micros struct {
	Vitamins int `json:"vitamins"`
	Minerals int `json:"minerals"`
	Fiber    int `json:"fiber"`
}

type DayEntry struct {
	Date   string `json:"date"`
	Macros Macros `json:"macros"`
	Micros Micros `json:"micros"`
}

// ReportDays is the window shown on the dashboard.
const ReportDays = 30

// GenerateReport returns one entry per day, oldest first, ending today.
func GenerateReport(days int) []DayEntry {
	now := time.Now()
	entries := make([]DayEntry, days)
	for i := range entries {
		date := now.AddDate(0, 0, -(days - i - 1))
		entries[i] = DayEntry{
			Date: date.Format("2006-01-02"),
			Macros: Macros{
				Protein: rand.Intn(100) + 50,
				Carbs:   rand.Intn(150) + 100,
				Fats:    rand.Intn(50) + 30,
			},
			Micros: Micros{
				Vitamins: rand.Intn(100),
				Minerals: rand.Intn(100),
				Fiber:    rand.Intn(30),
			},
		}
	}
	return entries
}
