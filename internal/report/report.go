package report

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"medtime/internal/clock"
	"medtime/internal/domain"
	"medtime/internal/errors"
)

// Report output reproduces the product's downloadable time report: summary
// boxes, a monthly overview for whole-year periods, and the full entry table.
// The summary deliberately counts all hours as regular; real overtime lives in
// the stats package.

var reportTemplate = template.Must(template.New("report").Parse(`<html>
  <head>
    <title>MedTime - Time Report</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 40px; color: #333; }
      h1 { font-size: 24px; margin-bottom: 5px; }
      h2 { font-size: 20px; margin-top: 30px; margin-bottom: 10px; border-bottom: 1px solid #eee; padding-bottom: 5px; }
      .subtitle { font-size: 18px; margin-top: 0; color: #555; margin-bottom: 40px; }
      .summary { display: flex; justify-content: space-between; background: #f9f9f9; padding: 20px; border-radius: 10px; margin: 20px 0 40px; }
      .summary-item { text-align: center; }
      .summary-item h3 { margin-bottom: 5px; font-weight: normal; color: #666; }
      .summary-item p { font-size: 32px; margin: 0; font-weight: bold; }
      table { width: 100%; border-collapse: collapse; margin-top: 20px; }
      th { text-align: left; padding: 10px; border-bottom: 2px solid #ddd; font-weight: 600; }
      td { padding: 10px; border-bottom: 1px solid #eee; }
      .month-section { background: #f9f9f9; padding: 15px; border-radius: 8px; margin-bottom: 15px; }
      .month-title { margin: 0; font-size: 18px; }
      .month-hours { font-size: 16px; font-weight: bold; margin: 5px 0 0; }
      hr { border: none; border-top: 1px solid #ddd; margin: 30px 0; }
    </style>
  </head>
  <body>
    <h1>MedTime - Annual Time Report</h1>
    <p class="subtitle">{{.Period}}</p>

    <div class="summary">
      <div class="summary-item">
        <h3>Total Hours</h3>
        <p>{{.TotalHours}}</p>
      </div>
      <div class="summary-item">
        <h3>Regular Hours</h3>
        <p>{{.RegularHours}}</p>
      </div>
      <div class="summary-item">
        <h3>Overtime Hours</h3>
        <p>{{.OvertimeHours}}</p>
      </div>
    </div>
{{if .Months}}
    <h2>Monthly Overview</h2>
{{range .Months}}    <div class="month-section">
      <h3 class="month-title">{{.Name}}</h3>
      <p class="month-hours">{{.Hours}}h</p>
    </div>
{{end}}{{end}}
    <h2>{{.Heading}}</h2>
    <table>
      <thead>
        <tr>
          <th>Date</th>
          <th>Time In</th>
          <th>Time Out</th>
          <th>Duration</th>
          <th>Notes</th>
        </tr>
      </thead>
      <tbody>
{{range .Rows}}        <tr>
          <td>{{.Date}}</td>
          <td>{{.TimeIn}}</td>
          <td>{{.TimeOut}}</td>
          <td>{{.Duration}}</td>
          <td>{{.Notes}}</td>
        </tr>
{{end}}      </tbody>
    </table>
  </body>
</html>
`))

type monthSection struct {
	Name  string
	Hours string
}

type entryRow struct {
	Date     string
	TimeIn   string
	TimeOut  string
	Duration string
	Notes    string
}

type reportData struct {
	Period        string
	TotalHours    string
	RegularHours  string
	OvertimeHours string
	Months        []monthSection
	Heading       string
	Rows          []entryRow
}

// Filename returns the download name for a period's report.
func Filename(period string) string {
	return fmt.Sprintf("MedTime-Report-%s.html", period)
}

// ValidPeriod reports whether period is a "YYYY" year or "YYYY-MM" month.
func ValidPeriod(period string) bool {
	switch len(period) {
	case 4:
		_, err := strconv.Atoi(period)
		return err == nil
	case 7:
		return clock.IsDate(period + "-01")
	default:
		return false
	}
}

// Build renders the HTML report for all entries whose date falls in period
// ("YYYY" or "YYYY-MM").
func Build(entries []domain.TimeEntry, period string) (string, error) {
	if !ValidPeriod(period) {
		return "", errors.NewValidationError("period must be YYYY or YYYY-MM", nil)
	}

	var filtered []domain.TimeEntry
	for _, entry := range entries {
		if strings.HasPrefix(entry.Date, period) {
			filtered = append(filtered, entry)
		}
	}

	totalMinutes := 0
	for _, entry := range filtered {
		totalMinutes += entry.Duration
	}
	totalHours := fmt.Sprintf("%.1f", float64(totalMinutes)/60)

	data := reportData{
		Period:        period,
		TotalHours:    totalHours,
		RegularHours:  totalHours, // all hours counted as regular here
		OvertimeHours: "0.0",
		Heading:       fmt.Sprintf("%s %s - %s hours", monthName(period), period, totalHours),
		Rows:          buildRows(filtered),
	}
	if len(period) == 4 {
		data.Months = buildMonthlyOverview(filtered)
	}

	var b strings.Builder
	if err := reportTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return b.String(), nil
}

func buildRows(entries []domain.TimeEntry) []entryRow {
	rows := make([]entryRow, 0, len(entries))
	for _, entry := range entries {
		row := entryRow{
			Date:     clock.FormatDate(entry.Date),
			TimeIn:   clock.Format12Hour(entry.TimeIn),
			TimeOut:  "In progress",
			Duration: "-",
			Notes:    entry.Notes,
		}
		if entry.TimeOut != "" {
			row.TimeOut = clock.Format12Hour(entry.TimeOut)
		}
		if entry.Duration > 0 {
			row.Duration = clock.FormatDuration(entry.Duration)
		}
		rows = append(rows, row)
	}
	return rows
}

func buildMonthlyOverview(entries []domain.TimeEntry) []monthSection {
	byMonth := make(map[int]int)
	for _, entry := range entries {
		if len(entry.Date) < 7 {
			continue
		}
		month, err := strconv.Atoi(entry.Date[5:7])
		if err != nil || month < 1 || month > 12 {
			continue
		}
		byMonth[month] += entry.Duration
	}

	var sections []monthSection
	for month := 1; month <= 12; month++ {
		minutes, ok := byMonth[month]
		if !ok {
			continue
		}
		sections = append(sections, monthSection{
			Name:  clock.MonthName(month),
			Hours: fmt.Sprintf("%.1f", float64(minutes)/60),
		})
	}
	return sections
}

// monthName returns the English month name for a "YYYY-MM" period, empty for
// whole-year periods.
func monthName(period string) string {
	if len(period) != 7 {
		return ""
	}
	month, err := strconv.Atoi(period[5:7])
	if err != nil {
		return ""
	}
	return clock.MonthName(month)
}
