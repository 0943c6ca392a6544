package usecase

import (
	"context"
	"fmt"

	"career-roadmap-generator/internal/roadmap"
	"career-roadmap-generator/pkg/timeparse"
)

// ParseTime normalizes a free-form duration string into hours with
// scheduling equivalents. No LLM call is involved.
func (uc *implUseCase) ParseTime(ctx context.Context, in roadmap.ParseTimeInput) (roadmap.ParseTimeOutput, error) {
	totalHours := timeparse.Hours(in.Time)

	uc.l.Debugf(ctx, "roadmap.usecase.ParseTime: input=%q hours=%d", in.Time, totalHours)

	return roadmap.ParseTimeOutput{
		OriginalInput: in.Time,
		TotalHours:    totalHours,
		SchedulingBreakdown: roadmap.SchedulingBreakdown{
			Intensive: fmt.Sprintf("%d days at 4 hours/day", max(1, totalHours/4)),
			Moderate:  fmt.Sprintf("%d days at 2 hours/day", max(1, totalHours/2)),
			Relaxed:   fmt.Sprintf("%d weeks at 10 hours/week", max(1, totalHours/10)),
			Casual:    fmt.Sprintf("%d weeks at 5 hours/week", max(1, totalHours/5)),
		},
		Equivalents: roadmap.Equivalents{
			DaysAt8h:     fmt.Sprintf("%d days", max(1, totalHours/timeparse.HoursPerDay)),
			WeeksAt40h:   fmt.Sprintf("%d weeks", max(1, totalHours/timeparse.HoursPerWeek)),
			MonthsAt160h: fmt.Sprintf("%d months", max(1, totalHours/timeparse.HoursPerMonth)),
		},
	}, nil
}
