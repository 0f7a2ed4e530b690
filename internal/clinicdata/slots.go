package clinicdata

import (
	"fmt"
	"math/rand"
	"time"
)

// Appointment type rotations per specialty. Slots cycle through these so a
// provider's calendar mixes visit types the way a real template schedule does.
var appointmentTypesBySpecialty = map[string][]string{
	"Orthopedic Surgery": {
		"New Patient Consultation",
		"Post-Operative Follow-up",
		"Fracture Follow-up",
		"Joint Injection",
		"Surgical Consult",
	},
	"Cardiology": {
		"New Patient Consultation",
		"Heart Failure Follow-up",
		"A-fib Management",
		"Post-Procedure Follow-up",
		"Annual Cardiology Exam",
	},
	"Primary Care": {
		"New Patient Physical",
		"Annual Wellness Visit",
		"Sick Visit",
		"Chronic Disease Management",
		"Follow-up Visit",
	},
}

var defaultAppointmentTypes = []string{"New Patient", "Follow-up"}

// GenerateSlots builds the bookable calendar for every provider over the next
// horizonDays days starting from the day after `from`. Generation is fully
// deterministic for a given (from, seed) pair: roughly 70% of slots come out
// available, decided by a seeded RNG rather than time or map order.
func GenerateSlots(providers []Provider, from time.Time, horizonDays int, seed int64) []AppointmentSlot {
	rng := rand.New(rand.NewSource(seed))
	var slots []AppointmentSlot

	for _, p := range providers {
		workdays := make(map[string]bool, len(p.AvailabilityDays))
		for _, d := range p.AvailabilityDays {
			workdays[d] = true
		}

		duration := p.SlotDurationMinutes
		if duration <= 0 {
			duration = 30
		}

		counter := 0
		for day := 1; day <= horizonDays; day++ {
			date := from.AddDate(0, 0, day)
			if !workdays[date.Weekday().String()] {
				continue
			}

			for _, t := range slotTimes(duration) {
				counter++
				slots = append(slots, AppointmentSlot{
					SlotID:          fmt.Sprintf("SLOT-%s-%04d", p.ProviderID, counter),
					ProviderID:      p.ProviderID,
					Date:            date.Format("2006-01-02"),
					Time:            t,
					DurationMinutes: duration,
					AppointmentType: appointmentTypeFor(p.Specialty, counter),
					Available:       rng.Float64() < 0.7,
					Location:        p.Location,
				})
			}
		}
	}
	return slots
}

// slotTimes returns the daily time grid: mornings 8-12, afternoons 13-17,
// with half-hour starts only when the visit fits in 30 minutes.
func slotTimes(durationMinutes int) []string {
	var times []string
	appendHours := func(start, end int) {
		for h := start; h < end; h++ {
			times = append(times, fmt.Sprintf("%02d:00", h))
			if durationMinutes <= 30 {
				times = append(times, fmt.Sprintf("%02d:30", h))
			}
		}
	}
	appendHours(8, 12)
	appendHours(13, 17)
	return times
}

func appointmentTypeFor(specialty string, counter int) string {
	types, ok := appointmentTypesBySpecialty[specialty]
	if !ok {
		types = defaultAppointmentTypes
	}
	return types[(counter-1)%len(types)]
}
