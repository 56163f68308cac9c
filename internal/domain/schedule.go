package domain

// WorkSchedule holds the user's configured baseline hours and default shift
// times. It is the basis for overtime calculation and the defaults offered
// by manual-entry forms.
type WorkSchedule struct {
	RegularHoursPerWeek float64 `json:"regularHoursPerWeek"`
	DefaultStartTime    string  `json:"defaultStartTime"` // 24-hour "HH:MM"
	DefaultEndTime      string  `json:"defaultEndTime"`   // 24-hour "HH:MM"
}

// SchedulePatch is a partial schedule update; nil fields are left untouched.
type SchedulePatch struct {
	RegularHoursPerWeek *float64
	DefaultStartTime    *string
	DefaultEndTime      *string
}

// DefaultWorkSchedule returns the built-in schedule used until the user
// configures their own.
func DefaultWorkSchedule() WorkSchedule {
	return WorkSchedule{
		RegularHoursPerWeek: 39,
		DefaultStartTime:    "07:00",
		DefaultEndTime:      "17:00",
	}
}

// Merge returns a copy of the schedule with the patch shallow-merged in.
func (ws WorkSchedule) Merge(patch SchedulePatch) WorkSchedule {
	if patch.RegularHoursPerWeek != nil {
		ws.RegularHoursPerWeek = *patch.RegularHoursPerWeek
	}
	if patch.DefaultStartTime != nil {
		ws.DefaultStartTime = *patch.DefaultStartTime
	}
	if patch.DefaultEndTime != nil {
		ws.DefaultEndTime = *patch.DefaultEndTime
	}
	return ws
}
