package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func fixToday(t *testing.T, y int, m time.Month, d int) {
	t.Helper()
	old := now
	now = func() time.Time { return time.Date(y, m, d, 15, 30, 0, 0, time.Local) }
	t.Cleanup(func() { now = old })
}

func TestParse(t *testing.T) {
	fixToday(t, 2025, time.March, 10)

	testCases := []struct {
		input string
		want  Date
	}{
		{"2025-08-01", New(2025, time.August, 1)},
		{"2025-8-1", New(2025, time.August, 1)},
		{"2025-08-01T13:45:00Z", New(2025, time.August, 1)},
		{"0d", New(2025, time.March, 10)},
		{"-1d", New(2025, time.March, 9)},
		{"+3d", New(2025, time.March, 13)},
		{"+1w", New(2025, time.March, 17)},
		{"-1m", New(2025, time.February, 10)},
		{"+1y", New(2026, time.March, 10)},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}

	if _, err := Parse("tomorrow"); err == nil {
		t.Error("Parse(\"tomorrow\") expected an error")
	}
}

func TestParseFrom(t *testing.T) {
	got, err := ParseFrom("+3d", New(2024, time.December, 30))
	if err != nil {
		t.Fatal(err)
	}
	if want := New(2025, time.January, 2); got != want {
		t.Errorf("ParseFrom(+3d) = %v, want %v", got, want)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	fixToday(t, 2025, time.March, 10)

	var d Date
	if err := json.Unmarshal([]byte(`"2025-8-1"`), &d); err != nil || d != New(2025, time.August, 1) {
		t.Errorf("Unmarshal(2025-8-1) = %v, %v", d, err)
	}
	if err := json.Unmarshal([]byte(`"2025-08-01T13:45:00Z"`), &d); err != nil || d != New(2025, time.August, 1) {
		t.Errorf("Unmarshal(timestamp) = %v, %v", d, err)
	}
	if err := json.Unmarshal([]byte(`""`), &d); err != nil || !d.IsZero() {
		t.Errorf("Unmarshal(empty) = %v, %v, want the zero date", d, err)
	}
	for _, relative := range []string{`"0d"`, `"+1d"`, `"-2w"`} {
		if err := json.Unmarshal([]byte(relative), &d); err == nil {
			t.Errorf("Unmarshal(%s) = %v, want an error", relative, d)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	d := New(2025, time.February, 27)
	if got := d.DaysUntil(New(2025, time.March, 2)); got != 3 {
		t.Errorf("DaysUntil across month end = %d, want 3", got)
	}
	if got := d.DaysUntil(d.Add(-1)); got != -1 {
		t.Errorf("DaysUntil yesterday = %d, want -1", got)
	}
}

func TestStartEndOf(t *testing.T) {
	d := New(2025, time.July, 16) // a Wednesday
	testCases := []struct {
		period     Period
		start, end Date
	}{
		{Daily, d, d},
		{Weekly, New(2025, time.July, 14), New(2025, time.July, 20)},
		{Monthly, New(2025, time.July, 1), New(2025, time.July, 31)},
		{Yearly, New(2025, time.January, 1), New(2025, time.December, 31)},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := d.StartOf(tc.period); got != tc.start {
				t.Errorf("StartOf() = %v, want %v", got, tc.start)
			}
			if got := d.EndOf(tc.period); got != tc.end {
				t.Errorf("EndOf() = %v, want %v", got, tc.end)
			}
			if !NewRange(d, tc.period).Contains(d) {
				t.Errorf("NewRange(%v) does not contain %v", tc.period, d)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	var got struct {
		Due Date `json:"dueDate"`
	}
	if err := json.Unmarshal([]byte(`{"dueDate":"2025-12-05"}`), &got); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if want := New(2025, time.December, 5); got.Due != want {
		t.Errorf("Unmarshal() = %v, want %v", got.Due, want)
	}
	b, err := json.Marshal(got.Due)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(b) != `"2025-12-05"` {
		t.Errorf("Marshal() = %s", b)
	}
}
