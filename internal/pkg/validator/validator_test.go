package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"12345", true},
		{"0", true},
		{"", false},
		{"12a45", false},
		{"-5", false},
		{"1.5", false},
	}
	for _, c := range cases {
		got := IsNumeric(c.input)
		if got != c.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	jenis := []string{"Sakit", "Cuti", "Dinas Luar"}
	if !IsInSlice("Cuti", jenis) {
		t.Error("IsInSlice(Cuti) = false, want true")
	}
	if IsInSlice("cuti", jenis) {
		t.Error("IsInSlice(cuti) = true, want false")
	}
	if IsInSlice("Cuti", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestIsValidNIP(t *testing.T) {
	valid := []string{"198001012005011001", "199912312024121999"}
	invalid := []string{"", "12345", "19800101200501100a", "1980010120050110011"}
	for _, nip := range valid {
		if !IsValidNIP(nip) {
			t.Errorf("IsValidNIP(%q) = false, want true", nip)
		}
	}
	for _, nip := range invalid {
		if IsValidNIP(nip) {
			t.Errorf("IsValidNIP(%q) = true, want false", nip)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-04"); !ok {
		t.Error("IsValidDate(2024-03-04) = false, want true")
	}
	for _, input := range []string{"04-03-2024", "2024/03/04", "4/3/2024", ""} {
		if _, ok := IsValidDate(input); ok {
			t.Errorf("IsValidDate(%q) = true, want false", input)
		}
	}
}

func TestParseLegacyDate(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"4/3/2024", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{"04/03/2024", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{"31/12/1999", time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"31/2/2024", time.Time{}, false}, // impossible calendar day
		{"2024-03-04", time.Time{}, false},
		{"4/3/24", time.Time{}, false},
		{"", time.Time{}, false},
		{"besok", time.Time{}, false},
	}
	for _, c := range cases {
		got, ok := ParseLegacyDate(c.input)
		if ok != c.ok {
			t.Errorf("ParseLegacyDate(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("ParseLegacyDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "end_date", Message: "end_date is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["start_date"] != "start_date is required" {
		t.Errorf("unexpected message: %q", m["start_date"])
	}
}
