package scheduling

import (
	"fmt"
	"strings"
)

// BookRequest identifies the slot to claim and who it is for.
type BookRequest struct {
	SlotID          string `json:"slot_id"`
	PatientID       string `json:"patient_id"`
	ProviderID      string `json:"provider_id"`
	AppointmentType string `json:"appointment_type,omitempty"`
	Reason          string `json:"reason_for_visit,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// BookingConfirmation is the successful outcome of BookAppointment.
type BookingConfirmation struct {
	ConfirmationNumber string `json:"confirmation_number"`
	SlotID             string `json:"slot_id"`
	PatientID          string `json:"patient_id"`
	PatientName        string `json:"patient_name"`
	ProviderID         string `json:"provider_id"`
	ProviderName       string `json:"provider_name"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	DurationMinutes    int    `json:"duration_minutes"`
	AppointmentType    string `json:"appointment_type"`
	Location           string `json:"location"`
	Reason             string `json:"reason_for_visit,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// BookAppointment validates the request and atomically claims the slot.
// Validation happens in a fixed order so the patient always hears the most
// actionable objection first: slot existence, slot availability, patient,
// provider, insurance acceptance, and new-patient panel status. The slot flip
// itself goes through SlotStore.TryBook, so concurrent bookings of the same
// slot resolve to exactly one winner.
func (e *Engine) BookAppointment(req BookRequest) (BookingConfirmation, error) {
	slot, ok := e.slots.Get(req.SlotID)
	if !ok {
		return BookingConfirmation{}, fmt.Errorf("%w: %s", ErrSlotNotFound, req.SlotID)
	}
	if !slot.Available {
		return BookingConfirmation{}, fmt.Errorf("%w: %s", ErrSlotUnavailable, req.SlotID)
	}

	patient, ok := e.dir.Patient(req.PatientID)
	if !ok {
		return BookingConfirmation{}, fmt.Errorf("%w: %s", ErrPatientNotFound, req.PatientID)
	}

	providerID := req.ProviderID
	if providerID == "" {
		providerID = slot.ProviderID
	}
	prov, ok := e.dir.Provider(providerID)
	if !ok {
		return BookingConfirmation{}, fmt.Errorf("%w: %s", ErrProviderNotFound, providerID)
	}

	if !prov.AcceptsInsurance(patient.InsuranceProvider) {
		return BookingConfirmation{}, fmt.Errorf("%w: %s does not accept %s",
			ErrInsuranceNotAccepted, prov.DisplayName(), patient.InsuranceProvider)
	}

	apptType := req.AppointmentType
	if apptType == "" {
		apptType = slot.AppointmentType
	}
	// An established patient of this provider may book a "New Patient" slot
	// even when the panel is closed; a truly new patient may not.
	if strings.EqualFold(apptType, "New Patient") && !prov.AcceptingNewPatients && !patient.HasSeenProvider(prov.ProviderID) {
		return BookingConfirmation{}, fmt.Errorf("%w: %s", ErrNotAcceptingPatients, prov.DisplayName())
	}

	if err := e.slots.TryBook(slot.SlotID); err != nil {
		return BookingConfirmation{}, fmt.Errorf("booking %s: %w", slot.SlotID, err)
	}

	conf := BookingConfirmation{
		ConfirmationNumber: fmt.Sprintf("CONF-%d", e.now().UnixNano()),
		SlotID:             slot.SlotID,
		PatientID:          patient.PatientID,
		PatientName:        patient.FullName(),
		ProviderID:         prov.ProviderID,
		ProviderName:       prov.DisplayName(),
		Date:               slot.Date,
		Time:               slot.Time,
		DurationMinutes:    slot.DurationMinutes,
		AppointmentType:    apptType,
		Location:           slot.Location,
		Reason:             req.Reason,
		Notes:              req.Notes,
	}
	e.logger.Info("appointment booked",
		"confirmation", conf.ConfirmationNumber,
		"slot_id", conf.SlotID,
		"patient_id", conf.PatientID,
		"provider_id", conf.ProviderID,
		"date", conf.Date,
		"time", conf.Time,
	)
	return conf, nil
}
