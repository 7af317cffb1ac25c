package timeslot

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockSource implements BookingSource for testing.
type mockSource struct {
	booked []string
	err    error
}

func (m *mockSource) BookedTimes(ctx context.Context, day time.Time) ([]string, error) {
	return m.booked, m.err
}

// nextWeekday returns the next occurrence of the given weekday.
func nextWeekday(day time.Weekday) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func TestAvailableTimesWeekend(t *testing.T) {
	calc := NewCalculator(nil, &mockSource{})

	for _, day := range []time.Weekday{time.Saturday, time.Sunday} {
		times, err := calc.AvailableTimes(context.Background(), nextWeekday(day))
		if !errors.Is(err, ErrWeekend) {
			t.Errorf("%s: expected ErrWeekend, got %v", day, err)
		}
		if len(times) != 0 {
			t.Errorf("%s: expected empty result, got %v", day, times)
		}
	}
}

func TestAvailableTimesEmptyDay(t *testing.T) {
	calc := NewCalculator(nil, &mockSource{})

	times, err := calc.AvailableTimes(context.Background(), nextWeekday(time.Wednesday))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != len(DefaultCatalog) {
		t.Fatalf("expected full catalog (%d slots), got %d", len(DefaultCatalog), len(times))
	}
	for i, slot := range DefaultCatalog {
		if times[i] != slot {
			t.Errorf("slot %d: expected %s, got %s (catalog order must be preserved)", i, slot, times[i])
		}
	}
}

func TestAvailableTimesBookedSlots(t *testing.T) {
	tests := []struct {
		name    string
		booked  []string
		absent  []string
		present []string
	}{
		{
			name:    "single booked slot removed",
			booked:  []string{"10:00"},
			absent:  []string{"10:00"},
			present: []string{"09:00", "11:00"},
		},
		{
			name:    "multiple booked slots removed",
			booked:  []string{"09:00", "12:00", "16:00"},
			absent:  []string{"09:00", "12:00", "16:00"},
			present: []string{"10:00", "15:00"},
		},
		{
			name:    "off-catalog time ignored",
			booked:  []string{"08:00"},
			present: []string{"09:00", "16:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewCalculator(nil, &mockSource{booked: tt.booked})
			times, err := calc.AvailableTimes(context.Background(), nextWeekday(time.Monday))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := make(map[string]bool, len(times))
			for _, s := range times {
				got[s] = true
			}
			for _, s := range tt.absent {
				if got[s] {
					t.Errorf("slot %s should be unavailable", s)
				}
			}
			for _, s := range tt.present {
				if !got[s] {
					t.Errorf("slot %s should be available", s)
				}
			}
		})
	}
}

func TestAvailableTimesSourceError(t *testing.T) {
	calc := NewCalculator(nil, &mockSource{err: errors.New("db down")})

	if _, err := calc.AvailableTimes(context.Background(), nextWeekday(time.Tuesday)); err == nil {
		t.Fatal("expected error from failing source")
	}
}

func TestCustomCatalogOrder(t *testing.T) {
	catalog := []string{"08:30", "09:30", "10:30"}
	calc := NewCalculator(catalog, &mockSource{booked: []string{"09:30"}})

	times, err := calc.AvailableTimes(context.Background(), nextWeekday(time.Friday))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"08:30", "10:30"}
	if len(times) != len(want) {
		t.Fatalf("expected %v, got %v", want, times)
	}
	for i := range want {
		if times[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], times[i])
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain date", "2030-06-03", false},
		{"timestamp tolerated", "2030-06-03T09:00:00Z", false},
		{"empty", "", true},
		{"garbage", "not-a-date", true},
		{"wrong order", "03-06-2030", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
