package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBookingDraft_CanEnter(t *testing.T) {
	d := NewBookingDraft()

	assert.True(t, d.CanEnter(StepSelectProvider))
	assert.False(t, d.CanEnter(StepSelectService))

	d.SelectedProvider = &Provider{ID: uuid.New()}
	assert.True(t, d.CanEnter(StepSelectService))
	assert.False(t, d.CanEnter(StepSelectDate))

	d.SelectedService = &ServiceOffering{ID: uuid.New()}
	assert.True(t, d.CanEnter(StepSelectDate))
	assert.False(t, d.CanEnter(StepSelectTime))

	d.SelectedDate = "2025-06-02"
	assert.True(t, d.CanEnter(StepSelectTime))
	assert.False(t, d.CanEnter(StepConfirm))

	d.SelectedSlot = &TimeSlot{Date: "2025-06-02", StartTime: "13:00", EndTime: "14:00", IsAvailable: true}
	assert.True(t, d.CanEnter(StepConfirm))
	assert.False(t, d.CanEnter(Step(6)))
}

func TestBookingDraft_ReachableStep(t *testing.T) {
	tests := []struct {
		name  string
		draft BookingDraft
		want  Step
	}{
		{
			name:  "empty draft",
			draft: BookingDraft{},
			want:  StepSelectProvider,
		},
		{
			name:  "step without provider clamps to first",
			draft: BookingDraft{CurrentStep: StepSelectTime},
			want:  StepSelectProvider,
		},
		{
			name: "step 4 with provider only clamps to 2",
			draft: BookingDraft{
				CurrentStep:      StepSelectTime,
				SelectedProvider: &Provider{},
			},
			want: StepSelectService,
		},
		{
			name: "consistent step kept",
			draft: BookingDraft{
				CurrentStep:      StepSelectDate,
				SelectedProvider: &Provider{},
				SelectedService:  &ServiceOffering{},
			},
			want: StepSelectDate,
		},
		{
			name:  "out of range",
			draft: BookingDraft{CurrentStep: 9, SelectedProvider: &Provider{}},
			want:  StepSelectProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.ReachableStep())
		})
	}
}

func TestTimeSlot_MarkBooked(t *testing.T) {
	s := TimeSlot{Date: "2025-06-02", StartTime: "09:30", EndTime: "10:30", IsAvailable: true}
	s.MarkBooked()

	assert.True(t, s.IsBooked)
	assert.False(t, s.IsAvailable)
	assert.True(t, s.Matches("2025-06-02", "09:30"))
	assert.False(t, s.Matches("2025-06-03", "09:30"))
}

func TestServiceOffering_SupportsMode(t *testing.T) {
	o := ServiceOffering{IsOnline: false, IsInPerson: true}

	assert.False(t, o.SupportsMode(ModeOnline))
	assert.True(t, o.SupportsMode(ModeInPerson))
	assert.False(t, o.SupportsMode("phone"))
	assert.Equal(t, ModeInPerson, o.DefaultMode())
}

func TestReservation_IsBlocking(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).IsBlocking())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).IsBlocking())
	assert.False(t, (&Reservation{Status: StatusCancelled}).IsBlocking())
}
