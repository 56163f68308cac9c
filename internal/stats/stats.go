package stats

import (
	"math"
	"time"

	"medtime/internal/clock"
	"medtime/internal/domain"
)

// ForDay filters entries to the single calendar day containing t.
func ForDay(entries []domain.TimeEntry, t time.Time) []domain.TimeEntry {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return filter(entries, day, day)
}

// ForWeek filters entries to the Monday–Sunday week containing t.
func ForWeek(entries []domain.TimeEntry, t time.Time) []domain.TimeEntry {
	from, to := clock.WeekRange(t)
	return filter(entries, from, to)
}

// ForMonth filters entries to the calendar month containing t.
func ForMonth(entries []domain.TimeEntry, t time.Time) []domain.TimeEntry {
	from, to := clock.MonthRange(t)
	return filter(entries, from, to)
}

// ForYear filters entries to the calendar year containing t.
func ForYear(entries []domain.TimeEntry, t time.Time) []domain.TimeEntry {
	from, to := clock.YearRange(t)
	return filter(entries, from, to)
}

func filter(entries []domain.TimeEntry, from, to time.Time) []domain.TimeEntry {
	var matched []domain.TimeEntry
	for _, entry := range entries {
		if clock.WithinRange(entry.Date, from, to) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// TotalDuration sums entry durations in minutes. Running entries contribute
// their current Duration value (0 until stopped).
func TotalDuration(entries []domain.TimeEntry) int {
	total := 0
	for _, entry := range entries {
		total += entry.Duration
	}
	return total
}

// OvertimeHours returns hours worked beyond the schedule's weekly target,
// rounded to one decimal. Never negative.
func OvertimeHours(totalMinutes int, schedule domain.WorkSchedule) float64 {
	overtime := float64(totalMinutes)/60 - schedule.RegularHoursPerWeek
	if overtime <= 0 {
		return 0
	}
	return round1(overtime)
}

// RemainingHours returns hours still needed to reach the weekly target,
// rounded to one decimal. Never negative.
func RemainingHours(totalMinutes int, schedule domain.WorkSchedule) float64 {
	remaining := schedule.RegularHoursPerWeek - float64(totalMinutes)/60
	if remaining <= 0 {
		return 0
	}
	return round1(remaining)
}

// WeeklyProgress summarizes a week's work against the schedule target.
type WeeklyProgress struct {
	TotalHours     float64 `json:"totalHours"`
	TargetHours    float64 `json:"targetHours"`
	Percentage     float64 `json:"percentage"`
	OvertimeHours  float64 `json:"overtimeHours"`
	RemainingHours float64 `json:"remainingHours"`
}

// ProgressForWeek computes the weekly progress summary for the week
// containing t. The percentage is capped at 100.
func ProgressForWeek(entries []domain.TimeEntry, schedule domain.WorkSchedule, t time.Time) WeeklyProgress {
	total := TotalDuration(ForWeek(entries, t))
	progress := WeeklyProgress{
		TotalHours:     round1(float64(total) / 60),
		TargetHours:    schedule.RegularHoursPerWeek,
		OvertimeHours:  OvertimeHours(total, schedule),
		RemainingHours: RemainingHours(total, schedule),
	}
	if schedule.RegularHoursPerWeek > 0 {
		pct := float64(total) / 60 / schedule.RegularHoursPerWeek * 100
		progress.Percentage = round1(math.Min(pct, 100))
	}
	return progress
}

// ChartDay is one bar of the weekly chart.
type ChartDay struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// ChartForWeek returns seven rows, Monday through Sunday, for the week
// containing t. Days without entries appear with zero hours.
func ChartForWeek(entries []domain.TimeEntry, t time.Time) []ChartDay {
	monday, _ := clock.WeekRange(t)

	byDate := make(map[string]int)
	for _, entry := range entries {
		byDate[entry.Date] += entry.Duration
	}

	days := make([]ChartDay, 7)
	for i := range days {
		day := monday.AddDate(0, 0, i)
		date := day.Format(clock.DateLayout)
		days[i] = ChartDay{
			Date:  date,
			Label: day.Format("Mon"),
			Hours: round1(float64(byDate[date]) / 60),
		}
	}
	return days
}

// DaysWorked counts distinct dates carrying at least one entry.
func DaysWorked(entries []domain.TimeEntry) int {
	seen := make(map[string]struct{})
	for _, entry := range entries {
		seen[entry.Date] = struct{}{}
	}
	return len(seen)
}

// MonthTotal is an aggregate for one calendar month.
type MonthTotal struct {
	Month      int     `json:"month"`
	Name       string  `json:"name"`
	Hours      float64 `json:"hours"`
	DaysWorked int     `json:"daysWorked"`
	Entries    int     `json:"entries"`
}

// MonthlyTotals aggregates a year's entries by month, January through
// December, skipping months with no entries.
func MonthlyTotals(entries []domain.TimeEntry, year int) []MonthTotal {
	var totals []MonthTotal
	for month := 1; month <= 12; month++ {
		anchor := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		monthEntries := ForMonth(entries, anchor)
		if len(monthEntries) == 0 {
			continue
		}
		totals = append(totals, MonthTotal{
			Month:      month,
			Name:       clock.MonthName(month),
			Hours:      round1(float64(TotalDuration(monthEntries)) / 60),
			DaysWorked: DaysWorked(monthEntries),
			Entries:    len(monthEntries),
		})
	}
	return totals
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
