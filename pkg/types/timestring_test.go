package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    TimeString
		wantErr bool
	}{
		{name: "plain", in: "09:30", want: "09:30"},
		{name: "postgres time", in: "13:00:00", want: "13:00"},
		{name: "spaces", in: " 17:30 ", want: "17:30"},
		{name: "one digit hour", in: "9:30", want: "09:30"},
		{name: "one digit hour with seconds", in: "9:30:00", wantErr: true},
		{name: "bad hour", in: "25:00", wantErr: true},
		{name: "garbage", in: "noon", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	end, err := TimeString("16:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("17:30"), end)

	_, err = TimeString("23:00").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestNewTimeStringFromString_Normalized(t *testing.T) {
	ts, err := NewTimeStringFromString("9:30")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)

	end, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), end)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("11:00"))
	assert.False(t, TimeString("11:00").IsBefore("11:00"))
	assert.False(t, TimeString("bad").IsBefore("13:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("14:30:00")))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 9, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
