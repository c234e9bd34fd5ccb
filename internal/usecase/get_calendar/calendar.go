package get_calendar

import (
	"time"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// startOfWeek возвращает понедельник недели, в которую входит дата
func startOfWeek(date time.Time) time.Time {
	date = domain.NormalizeDate(date)
	offset := (int(date.Weekday()) + 6) % 7 // понедельник = 0
	return date.AddDate(0, 0, -offset)
}

// isBookable слот виден в календаре, пока он не начался и в нем есть свободные чары
func isBookable(slot *domain.Slot, now time.Time, loc *time.Location) bool {
	if slot.HasStarted(now, loc) {
		return false
	}
	return slot.PublicStatus().TotalAvailable > 0
}

// buildWeeks раскладывает отсортированные слоты по неделям и дням
// Возвращаются только недели, в которых есть хотя бы один слот
func buildWeeks(slots []*domain.Slot, firstMonday time.Time, weeks int, now time.Time, loc *time.Location) []Week {
	result := make([]Week, 0, weeks)

	for i := 0; i < weeks; i++ {
		weekStart := firstMonday.AddDate(0, 0, 7*i)
		weekEnd := weekStart.AddDate(0, 0, 6)

		week := Week{StartDate: weekStart, Days: []Day{}}
		for _, slot := range slots {
			if slot == nil || slot.Date.Before(weekStart) || slot.Date.After(weekEnd) {
				continue
			}
			if !isBookable(slot, now, loc) {
				continue
			}

			last := len(week.Days) - 1
			if last < 0 || !week.Days[last].Date.Equal(slot.Date) {
				week.Days = append(week.Days, Day{Date: slot.Date, Slots: []Slot{}})
				last++
			}
			week.Days[last].Slots = append(week.Days[last].Slots, toSlot(slot, now, loc))
		}

		if len(week.Days) > 0 {
			result = append(result, week)
		}
	}

	return result
}

// toSlot конвертирует domain слот в публичное представление
func toSlot(slot *domain.Slot, now time.Time, loc *time.Location) Slot {
	public := slot.PublicStatus()
	available := slot.AvailableCount()

	return Slot{
		ID:              slot.ID,
		Date:            slot.Date,
		StartTime:       slot.Start,
		EndTime:         slot.End,
		DurationMinutes: int(slot.Duration().Minutes()),
		Status:          public.Status,
		TotalAvailable:  public.TotalAvailable,
		TotalCapacity:   public.TotalCapacity,
		PercentageUsed:  public.PercentageUsed,
		SimpleAvailable: max(available.SimpleAvailable, 0),
		DoubleAvailable: max(available.DoubleAvailable, 0),
		Started:         slot.HasStarted(now, loc),
	}
}
