package commands

import (
	"errors"
	"testing"
)

func TestParseTaskNumber_Valid(t *testing.T) {
	cases := []struct {
		name  string
		arg   string
		count int
		want  int
	}{
		{"first", "1", 3, 1},
		{"last", "3", 3, 3},
		{"middle", "2", 3, 2},
		{"singleTask", "1", 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTaskNumber([]string{tc.arg}, tc.count)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestParseTaskNumber_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		arg     string
		count   int
		wantMsg string
	}{
		{"zero", "0", 3, "invalid task number: 0 (valid: 1-3)"},
		{"negative", "-2", 3, "invalid task number: -2 (valid: 1-3)"},
		{"pastEnd", "4", 3, "invalid task number: 4 (valid: 1-3)"},
		{"nonNumeric", "abc", 3, "invalid task number: abc (valid: 1-3)"},
		{"float", "1.5", 3, "invalid task number: 1.5 (valid: 1-3)"},
		{"emptyStore", "1", 0, "invalid task number: 1 (valid: 1-0)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTaskNumber([]string{tc.arg}, tc.count)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("expected %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}

func TestParseTaskNumber_NoArgs(t *testing.T) {
	_, err := ParseTaskNumber(nil, 3)
	if !errors.Is(err, ErrTaskNumberRequired) {
		t.Errorf("expected ErrTaskNumberRequired, got %v", err)
	}
}

func TestParseTaskNumber_RangeMessageTracksCount(t *testing.T) {
	// The valid range in the message uses the current task count
	_, err := ParseTaskNumber([]string{"99"}, 7)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "invalid task number: 99 (valid: 1-7)" {
		t.Errorf("expected dynamic upper bound, got %q", err.Error())
	}
}
