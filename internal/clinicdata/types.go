// Package clinicdata holds the read-only reference data for the scheduling
// core: patients, providers, insurance policies, and clinical protocols.
// Everything here is immutable after construction and safe to share across
// concurrent conversation sessions without locking.
package clinicdata

// VisitRecord is one entry in a patient's visit history.
type VisitRecord struct {
	Date       string `json:"date"` // YYYY-MM-DD
	ProviderID string `json:"provider"`
	Specialty  string `json:"specialty"`
	Reason     string `json:"reason"`
	Notes      string `json:"notes"`
}

// Patient profile with demographics and medical history. Read-only to the
// core; created by the external data source.
type Patient struct {
	PatientID         string        `json:"patient_id"`
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	DateOfBirth       string        `json:"date_of_birth"`
	Age               int           `json:"age"`
	Gender            string        `json:"gender"`
	Phone             string        `json:"phone"`
	Email             string        `json:"email"`
	Address           string        `json:"address"`
	City              string        `json:"city"`
	State             string        `json:"state"`
	ZipCode           string        `json:"zip_code"`
	InsuranceProvider string        `json:"insurance_provider"`
	InsuranceID       string        `json:"insurance_id"`
	PrimaryCareID     string        `json:"primary_care_provider"`
	MedicalConditions []string      `json:"medical_conditions"`
	Allergies         []string      `json:"allergies"`
	Medications       []string      `json:"medications"`
	RecentVisits      []VisitRecord `json:"recent_visits"`
}

// FullName returns "First Last".
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// HasSeenProvider reports whether the patient has a visit on record with the
// given provider.
func (p Patient) HasSeenProvider(providerID string) bool {
	for _, v := range p.RecentVisits {
		if v.ProviderID == providerID {
			return true
		}
	}
	return false
}

// IsNewToSystem reports whether the patient has no visit history at all.
func (p Patient) IsNewToSystem() bool {
	return len(p.RecentVisits) == 0
}

// ProviderType distinguishes physicians from supervised team members.
type ProviderType string

const (
	ProviderTypePhysician          ProviderType = "Physician"
	ProviderTypePhysicianAssistant ProviderType = "Physician Assistant"
	ProviderTypeNursePractitioner  ProviderType = "Nurse Practitioner"
)

// Provider profile with specialty and availability. Read-only to the core.
type Provider struct {
	ProviderID           string       `json:"provider_id"`
	FirstName            string       `json:"first_name"`
	LastName             string       `json:"last_name"`
	ProviderType         ProviderType `json:"provider_type"`
	Specialty            string       `json:"specialty"`
	SubSpecialty         string       `json:"sub_specialty"`
	Credentials          string       `json:"credentials"`
	Location             string       `json:"location"`
	Address              string       `json:"address"`
	City                 string       `json:"city"`
	Phone                string       `json:"phone"`
	AcceptingNewPatients bool         `json:"accepting_new_patients"`
	Languages            []string     `json:"languages"`
	InsuranceAccepted    []string     `json:"insurance_accepted"`
	AvailabilityDays     []string     `json:"availability_days"`
	SlotDurationMinutes  int          `json:"typical_slot_duration"`
	// SupervisingPhysician is set for PA/NP team members.
	SupervisingPhysician string `json:"supervising_physician,omitempty"`
}

// DisplayName returns the patient-facing name, with the "Dr." honorific for
// physicians only.
func (p Provider) DisplayName() string {
	if p.ProviderType == ProviderTypePhysician || p.ProviderType == "" {
		return "Dr. " + p.FirstName + " " + p.LastName
	}
	return p.FirstName + " " + p.LastName + ", " + p.Credentials
}

// AcceptsInsurance reports whether the carrier is in the provider's accepted
// set.
func (p Provider) AcceptsInsurance(carrier string) bool {
	for _, c := range p.InsuranceAccepted {
		if c == carrier {
			return true
		}
	}
	return false
}

// InsurancePolicy captures coverage rules and requirements for one carrier.
type InsurancePolicy struct {
	CarrierName       string   `json:"insurance_name"`
	PolicyType        string   `json:"policy_type"`
	RequiresReferral  []string `json:"requires_referral"`   // specialties requiring referral
	RequiresPriorAuth []string `json:"requires_prior_auth"` // services requiring prior authorization
	CopaySpecialist   float64  `json:"copay_specialist"`
	CopayPrimary      float64  `json:"copay_primary"`
	Deductible        float64  `json:"deductible"`
	OutOfPocketMax    float64  `json:"out_of_pocket_max"`
	CoveredServices   []string `json:"covered_services"`
	Notes             string   `json:"notes"`
}

// ClinicalProtocol holds scheduling guidelines for one condition.
type ClinicalProtocol struct {
	ProtocolID          string `json:"protocol_id"`
	Name                string `json:"name"`
	Specialty           string `json:"specialty"`
	Condition           string `json:"condition"`
	RecommendedFollowUp string `json:"recommended_follow_up"`
	UrgencyLevel        string `json:"urgency_level"` // routine, urgent, emergent
	SpecialInstructions string `json:"special_instructions"`
}

// AppointmentSlot is one bookable time unit for one provider on one date.
// The availability flag is the only core-owned mutable state in the system;
// it is owned and guarded by the scheduling.SlotStore, never mutated here.
type AppointmentSlot struct {
	SlotID          string `json:"slot_id"`
	ProviderID      string `json:"provider_id"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	DurationMinutes int    `json:"duration"`
	AppointmentType string `json:"appointment_type"`
	Available       bool   `json:"is_available"`
	Location        string `json:"location"`
}
