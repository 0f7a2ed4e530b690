package scheduling

import (
	"fmt"
	"strings"

	"github.com/harborhealth/scheduling-agent/internal/clinicdata"
)

// ProviderView is a provider summary for discovery results.
type ProviderView struct {
	ProviderID           string   `json:"provider_id"`
	Name                 string   `json:"name"`
	ProviderType         string   `json:"provider_type"`
	Specialty            string   `json:"specialty"`
	SubSpecialty         string   `json:"sub_specialty,omitempty"`
	Location             string   `json:"location"`
	City                 string   `json:"city"`
	Phone                string   `json:"phone"`
	AcceptingNewPatients bool     `json:"accepting_new_patients"`
	Languages            []string `json:"languages,omitempty"`
	InsuranceAccepted    []string `json:"insurance_accepted,omitempty"`
	Proximity            string   `json:"proximity"` // "same city" or "metro area"
}

// NearestProvidersResult lists providers ordered by proximity to the
// patient's city.
type NearestProvidersResult struct {
	PatientCity        string         `json:"patient_city"`
	MetroArea          string         `json:"metro_area,omitempty"`
	Specialty          string         `json:"specialty"`
	Providers          []ProviderView `json:"nearest_providers"`
	AllAvailableCities []string       `json:"all_available_cities"`
}

// FindNearestProviders finds specialty providers near the patient: up to
// three in the patient's own city, then metro-area providers until the list
// reaches five. The city may be passed explicitly to override the patient
// record.
func (e *Engine) FindNearestProviders(patientID, specialty, city string) (NearestProvidersResult, error) {
	if city == "" {
		patient, ok := e.dir.Patient(patientID)
		if !ok {
			return NearestProvidersResult{}, fmt.Errorf("%w: %s", ErrPatientNotFound, patientID)
		}
		city = patient.City
	}

	const (
		sameCityCap = 3
		totalCap    = 5
	)

	result := NearestProvidersResult{
		PatientCity:        city,
		MetroArea:          clinicdata.MetroArea(city),
		Specialty:          specialty,
		Providers:          []ProviderView{},
		AllAvailableCities: e.dir.ProviderCities(specialty),
	}

	candidates := e.dir.ProvidersBySpecialty(specialty)
	for _, p := range candidates {
		if len(result.Providers) >= sameCityCap {
			break
		}
		if strings.EqualFold(p.City, city) {
			result.Providers = append(result.Providers, providerView(p, "same city"))
		}
	}
	for _, p := range candidates {
		if len(result.Providers) >= totalCap {
			break
		}
		if strings.EqualFold(p.City, city) {
			continue
		}
		if clinicdata.SameMetro(city, p.City) {
			result.Providers = append(result.Providers, providerView(p, "metro area"))
		}
	}
	return result, nil
}

// ProviderTeamResult describes a physician's care team.
type ProviderTeamResult struct {
	Physician ProviderView   `json:"physician"`
	Team      []ProviderView `json:"team"`
}

// GetProviderTeam returns the PA/NP team members practicing under the given
// physician. Follow-up visits can often be scheduled with a team member
// sooner than with the physician.
func (e *Engine) GetProviderTeam(providerID string) (ProviderTeamResult, error) {
	prov, ok := e.dir.Provider(providerID)
	if !ok {
		return ProviderTeamResult{}, fmt.Errorf("%w: %s", ErrProviderNotFound, providerID)
	}

	result := ProviderTeamResult{
		Physician: providerView(prov, "same city"),
		Team:      []ProviderView{},
	}
	for _, m := range e.dir.ProviderTeam(providerID) {
		result.Team = append(result.Team, providerView(m, "same city"))
	}
	return result, nil
}

func providerView(p clinicdata.Provider, proximity string) ProviderView {
	return ProviderView{
		ProviderID:           p.ProviderID,
		Name:                 p.DisplayName(),
		ProviderType:         string(p.ProviderType),
		Specialty:            p.Specialty,
		SubSpecialty:         p.SubSpecialty,
		Location:             p.Location,
		City:                 p.City,
		Phone:                p.Phone,
		AcceptingNewPatients: p.AcceptingNewPatients,
		Languages:            p.Languages,
		InsuranceAccepted:    p.InsuranceAccepted,
		Proximity:            proximity,
	}
}

// PatientSummary is the patient profile exposed to the agent. It mirrors the
// directory record; nothing is redacted in this demo dataset.
type PatientSummary struct {
	PatientID         string                   `json:"patient_id"`
	Name              string                   `json:"name"`
	DateOfBirth       string                   `json:"date_of_birth"`
	Age               int                      `json:"age"`
	Gender            string                   `json:"gender"`
	Phone             string                   `json:"phone"`
	Email             string                   `json:"email"`
	City              string                   `json:"city"`
	State             string                   `json:"state"`
	InsuranceProvider string                   `json:"insurance_provider"`
	InsuranceID       string                   `json:"insurance_id"`
	PrimaryCareID     string                   `json:"primary_care_provider,omitempty"`
	MedicalConditions []string                 `json:"medical_conditions,omitempty"`
	Allergies         []string                 `json:"allergies,omitempty"`
	Medications       []string                 `json:"medications,omitempty"`
	RecentVisits      []clinicdata.VisitRecord `json:"recent_visits,omitempty"`
	NewToSystem       bool                     `json:"new_to_system"`
}

// GetPatientInfo returns the patient's profile and visit history.
func (e *Engine) GetPatientInfo(patientID string) (PatientSummary, error) {
	p, ok := e.dir.Patient(patientID)
	if !ok {
		return PatientSummary{}, fmt.Errorf("%w: %s", ErrPatientNotFound, patientID)
	}
	return PatientSummary{
		PatientID:         p.PatientID,
		Name:              p.FullName(),
		DateOfBirth:       p.DateOfBirth,
		Age:               p.Age,
		Gender:            p.Gender,
		Phone:             p.Phone,
		Email:             p.Email,
		City:              p.City,
		State:             p.State,
		InsuranceProvider: p.InsuranceProvider,
		InsuranceID:       p.InsuranceID,
		PrimaryCareID:     p.PrimaryCareID,
		MedicalConditions: p.MedicalConditions,
		Allergies:         p.Allergies,
		Medications:       p.Medications,
		RecentVisits:      p.RecentVisits,
		NewToSystem:       p.IsNewToSystem(),
	}, nil
}
