package validation

import (
	"errors"
	"strings"
	"testing"
)

type pinInput struct {
	Pin string `json:"pin" validate:"pin"`
}

type entryInput struct {
	Title     string  `json:"title" validate:"notblank"`
	Date      string  `json:"date" validate:"isodate"`
	StartTime string  `json:"startTime" validate:"hhmm"`
	EndTime   string  `json:"endTime" validate:"omitempty,hhmm"`
	Amount    float64 `json:"amount" validate:"gt=0"`
}

func TestIsPin(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"１２３４", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPin(tt.in); got != tt.want {
			t.Errorf("IsPin(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStruct_Valid(t *testing.T) {
	in := entryInput{Title: "Mechanics", Date: "2024-05-01", StartTime: "09:00", Amount: 1}
	if err := Struct(in); err != nil {
		t.Fatalf("Struct() error = %v, want nil", err)
	}
	if err := Struct(pinInput{Pin: "4321"}); err != nil {
		t.Fatalf("Struct(pin) error = %v, want nil", err)
	}
}

func TestStruct_ReportsEveryField(t *testing.T) {
	in := entryInput{Title: "   ", Date: "2024-5-1", StartTime: "9:00", EndTime: "25:00", Amount: 0}

	err := Struct(in)
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("Struct() error = %v, want *Error", err)
	}

	fields := make(map[string]string)
	for _, f := range verr.Fields {
		fields[f.Field] = f.Tag
	}
	want := map[string]string{
		"title":     "notblank",
		"date":      "isodate",
		"startTime": "hhmm",
		"endTime":   "hhmm",
		"amount":    "gt",
	}
	for field, tag := range want {
		if fields[field] != tag {
			t.Errorf("field %s: tag = %q, want %q", field, fields[field], tag)
		}
	}
	if len(verr.Problems()) != len(want) {
		t.Errorf("Problems() = %v", verr.Problems())
	}
}

func TestStruct_PinMessage(t *testing.T) {
	err := Struct(pinInput{Pin: "12"})
	if err == nil {
		t.Fatal("expected error for short pin")
	}
	if !strings.Contains(err.Error(), "pin must be exactly 4 digits") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestVar_UsesGivenName(t *testing.T) {
	err := Var("time", "7:5", "hhmm")
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("Var() error = %v, want *Error", err)
	}
	if verr.Fields[0].Field != "time" {
		t.Errorf("Field = %q, want time", verr.Fields[0].Field)
	}
	if err := Var("time", "07:05", "hhmm"); err != nil {
		t.Errorf("Var(07:05) error = %v", err)
	}
}

func TestPhoto(t *testing.T) {
	if err := Photo(2000000); err != nil {
		t.Errorf("Photo(limit) error = %v, want nil", err)
	}
	err := Photo(2000001)
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("Photo(limit+1) error = %v, want *Error", err)
	}
	if verr.Fields[0].Field != "photo" {
		t.Errorf("Field = %q, want photo", verr.Fields[0].Field)
	}
}
