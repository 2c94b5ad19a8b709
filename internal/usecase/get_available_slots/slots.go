package get_available_slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/pkg/types"
)

type slotKey struct {
	date  string
	start types.TimeString
}

// generateGrid строит сетку слотов на days календарных дней начиная с today.
// Шаблон не зависит от расписания консультанта.
func generateGrid(today time.Time, days int, template []string, durationMinutes int, skipWeekends bool) ([]domain.TimeSlot, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: horizon must be positive, got %d", ErrInvalidGrid, days)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidGrid, durationMinutes)
	}
	if len(template) == 0 {
		return nil, fmt.Errorf("%w: empty slot template", ErrInvalidGrid)
	}

	type bounds struct {
		start, end types.TimeString
		minutes    int
	}

	times := make([]bounds, 0, len(template))
	for _, raw := range template {
		start, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
		}
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %s: %v", ErrInvalidGrid, start, err)
		}
		minutes, _ := start.Minutes()
		times = append(times, bounds{start: start, end: end, minutes: minutes})
	}
	sort.Slice(times, func(i, j int) bool { return times[i].minutes < times[j].minutes })

	slots := make([]domain.TimeSlot, 0, days*len(times))
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i)
		if skipWeekends && isWeekend(day) {
			continue
		}

		date := day.Format(domain.DateFormat)
		for _, t := range times {
			slots = append(slots, domain.TimeSlot{
				Date:        date,
				StartTime:   t.start,
				EndTime:     t.end,
				IsAvailable: true,
				IsBooked:    false,
			})
		}
	}

	return slots, nil
}

// applyExceptions помечает занятыми слоты, для которых есть исключение с IsAvailable=false.
// Исключения без совпадающего слота игнорируются.
func applyExceptions(slots []domain.TimeSlot, exceptions []domain.AvailabilityException) int {
	index := indexSlots(slots)

	marked := 0
	for _, e := range exceptions {
		if e.IsAvailable {
			continue
		}
		if i, ok := index[slotKey{date: e.Date.Format(domain.DateFormat), start: e.StartTime}]; ok {
			slots[i].MarkBooked()
			marked++
		}
	}
	return marked
}

// applyReservations помечает занятыми слоты, время начала которых совпадает с активной записью.
// Сравнивается только начало: запись длиннее слота не блокирует следующие слоты.
func applyReservations(slots []domain.TimeSlot, reservations []*domain.Reservation) int {
	index := indexSlots(slots)

	marked := 0
	for _, r := range reservations {
		if !r.IsBlocking() {
			continue
		}
		if i, ok := index[slotKey{date: r.Date.Format(domain.DateFormat), start: r.StartTime}]; ok {
			slots[i].MarkBooked()
			marked++
		}
	}
	return marked
}

func indexSlots(slots []domain.TimeSlot) map[slotKey]int {
	index := make(map[slotKey]int, len(slots))
	for i, s := range slots {
		index[slotKey{date: s.Date, start: s.StartTime}] = i
	}
	return index
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// startOfDay обнуляет время в часовом поясе loc
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func templateStrings(template []types.TimeString) []string {
	out := make([]string, len(template))
	for i, t := range template {
		out[i] = t.String()
	}
	return out
}
