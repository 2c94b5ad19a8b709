package check_conflict

import "github.com/m04kA/SMC-SessionBooking/internal/domain"

// Conflicts проверяет, пересекается ли сессия длиной 90 минут, начинающаяся в candidateStart,
// с любым из занятых интервалов. Касание границ пересечением не считается.
func Conflicts(candidateStart int, booked []Interval) bool {
	return len(overlapping(candidateStart, booked)) > 0
}

func overlapping(candidateStart int, booked []Interval) []Interval {
	candidateEnd := candidateStart + domain.ConflictCandidateMins

	result := make([]Interval, 0)
	for _, b := range booked {
		if candidateStart < b.End && candidateEnd > b.Start {
			result = append(result, b)
		}
	}
	return result
}
