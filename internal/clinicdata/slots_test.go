package clinicdata

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateSlotsDeterministic(t *testing.T) {
	_, providers, _, _ := Seed(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // a Monday

	a := GenerateSlots(providers, from, 14, 42)
	b := GenerateSlots(providers, from, 14, 42)

	if len(a) == 0 {
		t.Fatal("expected slots to be generated")
	}
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d differs across runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateSlotsHonorsAvailabilityDays(t *testing.T) {
	providers := []Provider{{
		ProviderID:          "DR900",
		Specialty:           "Cardiology",
		Location:            "Test Clinic",
		AvailabilityDays:    []string{"Monday", "Wednesday"},
		SlotDurationMinutes: 45,
	}}
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) // a Sunday

	slots := GenerateSlots(providers, from, 7, 1)
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}
	for _, s := range slots {
		d, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			t.Fatalf("bad slot date %q: %v", s.Date, err)
		}
		if wd := d.Weekday(); wd != time.Monday && wd != time.Wednesday {
			t.Errorf("slot %s falls on %s, provider only works Mon/Wed", s.SlotID, wd)
		}
		// 45-minute visits start on the hour only.
		if strings.HasSuffix(s.Time, ":30") {
			t.Errorf("slot %s at %s: long visits must start on the hour", s.SlotID, s.Time)
		}
	}

	// Two working days in a week, 8 hourly starts per day.
	if len(slots) != 16 {
		t.Errorf("got %d slots, want 16", len(slots))
	}
}

func TestGenerateSlotsHalfHourGrid(t *testing.T) {
	providers := []Provider{{
		ProviderID:          "DR901",
		Specialty:           "Primary Care",
		Location:            "Test Clinic",
		AvailabilityDays:    []string{"Tuesday"},
		SlotDurationMinutes: 20,
	}}
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // a Monday

	slots := GenerateSlots(providers, from, 1, 1)
	// 8 hours with :00 and :30 starts.
	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16", len(slots))
	}
	if slots[0].Time != "08:00" || slots[1].Time != "08:30" {
		t.Errorf("first slots at %s, %s; want 08:00, 08:30", slots[0].Time, slots[1].Time)
	}
	if slots[0].SlotID != "SLOT-DR901-0001" {
		t.Errorf("slot id = %q, want SLOT-DR901-0001", slots[0].SlotID)
	}
	// No slot crosses the lunch break.
	for _, s := range slots {
		if strings.HasPrefix(s.Time, "12:") {
			t.Errorf("slot %s scheduled over lunch", s.SlotID)
		}
	}
}

func TestGenerateSlotsAvailabilityMix(t *testing.T) {
	_, providers, _, _ := Seed(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(providers, from, 14, 42)
	open := 0
	for _, s := range slots {
		if s.Available {
			open++
		}
	}
	ratio := float64(open) / float64(len(slots))
	if ratio < 0.6 || ratio > 0.8 {
		t.Errorf("available ratio = %.2f, want roughly 0.7", ratio)
	}
}

func TestAppointmentTypeRotation(t *testing.T) {
	providers := []Provider{{
		ProviderID:          "DR902",
		Specialty:           "Orthopedic Surgery",
		Location:            "Test Clinic",
		AvailabilityDays:    []string{"Monday"},
		SlotDurationMinutes: 30,
	}}
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(providers, from, 7, 1)
	if len(slots) < 5 {
		t.Fatalf("need at least 5 slots, got %d", len(slots))
	}
	want := []string{
		"New Patient Consultation",
		"Post-Operative Follow-up",
		"Fracture Follow-up",
		"Joint Injection",
		"Surgical Consult",
	}
	for i, w := range want {
		if slots[i].AppointmentType != w {
			t.Errorf("slot %d type = %q, want %q", i, slots[i].AppointmentType, w)
		}
	}
}
