package domain

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	d, _ := time.Parse("20060102", s)
	return d
}

func TestNextReservationCodeFirstOfDay(t *testing.T) {
	got := NextReservationCode(day("20250115"), "")
	if got != "20250115-JH001" {
		t.Fatalf("first code of the day: got %q want 20250115-JH001", got)
	}
}

func TestNextReservationCodeIncrements(t *testing.T) {
	got := NextReservationCode(day("20250115"), "20250115-JH007")
	if got != "20250115-JH008" {
		t.Fatalf("got %q want 20250115-JH008", got)
	}
}

func TestNextReservationCodePastThreeDigits(t *testing.T) {
	got := NextReservationCode(day("20250115"), "20250115-JH999")
	if got != "20250115-JH1000" {
		t.Fatalf("sequence should keep counting past 999, got %q", got)
	}
}

func TestNextReservationCodeUnparsableSuffixRestarts(t *testing.T) {
	got := NextReservationCode(day("20250115"), "20250115-JHxx")
	if got != "20250115-JH001" {
		t.Fatalf("garbage suffix should restart at 001, got %q", got)
	}
}
