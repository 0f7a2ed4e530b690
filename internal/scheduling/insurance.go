package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// InsuranceVerification is the coverage summary for one patient/specialty
// pair.
type InsuranceVerification struct {
	PatientID         string   `json:"patient_id"`
	CarrierName       string   `json:"carrier_name"`
	PolicyType        string   `json:"policy_type"`
	IsCovered         bool     `json:"is_covered"`
	ReferralRequired  bool     `json:"referral_required"`
	PriorAuthRequired bool     `json:"prior_auth_required"`
	Copay             float64  `json:"copay"`
	Deductible        float64  `json:"deductible"`
	OutOfPocketMax    float64  `json:"out_of_pocket_max"`
	CoveredServices   []string `json:"covered_services"`
	NextSteps         []string `json:"next_steps"`
	Notes             string   `json:"notes,omitempty"`
}

// VerifyInsurance resolves the patient's carrier policy and answers whether
// the given specialty needs a referral and whether the given service needs
// prior authorization. The primary care copay applies unless a non-primary
// specialty is named.
func (e *Engine) VerifyInsurance(patientID, specialty, serviceType string) (InsuranceVerification, error) {
	patient, ok := e.dir.Patient(patientID)
	if !ok {
		return InsuranceVerification{}, fmt.Errorf("%w: %s", ErrPatientNotFound, patientID)
	}
	policy, ok := e.dir.PolicyByCarrier(patient.InsuranceProvider)
	if !ok {
		return InsuranceVerification{}, fmt.Errorf("%w: %s", ErrPolicyNotFound, patient.InsuranceProvider)
	}

	covered := false
	for _, svc := range policy.CoveredServices {
		if serviceType != "" && containsFold(svc, serviceType) {
			covered = true
			break
		}
	}

	referral := false
	if specialty != "" {
		for _, req := range policy.RequiresReferral {
			if req == "All Specialists" || containsFold(req, specialty) || containsFold(specialty, req) {
				referral = true
				break
			}
		}
	}

	priorAuth := false
	for _, req := range policy.RequiresPriorAuth {
		if serviceType != "" && (containsFold(req, serviceType) || containsFold(serviceType, req)) {
			priorAuth = true
			break
		}
	}

	copay := policy.CopayPrimary
	if specialty != "" && !strings.EqualFold(specialty, "Primary Care") {
		copay = policy.CopaySpecialist
	}

	var nextSteps []string
	if referral {
		nextSteps = append(nextSteps, "Obtain a referral from your primary care physician before scheduling")
	}
	if priorAuth {
		nextSteps = append(nextSteps, "Prior authorization required - contact insurance before procedure")
	}
	if !referral && !priorAuth {
		nextSteps = append(nextSteps, "No special authorization required - you may proceed with scheduling")
	}
	nextSteps = append(nextSteps, "Bring your insurance card to your appointment")

	return InsuranceVerification{
		PatientID:         patient.PatientID,
		CarrierName:       policy.CarrierName,
		PolicyType:        policy.PolicyType,
		IsCovered:         covered,
		ReferralRequired:  referral,
		PriorAuthRequired: priorAuth,
		Copay:             copay,
		Deductible:        policy.Deductible,
		OutOfPocketMax:    policy.OutOfPocketMax,
		CoveredServices:   policy.CoveredServices,
		NextSteps:         nextSteps,
		Notes:             policy.Notes,
	}, nil
}

// ReferralStatus reports whether a usable referral to a specialty is on file.
type ReferralStatus struct {
	PatientID           string `json:"patient_id"`
	Specialty           string `json:"specialty"`
	HasReferral         bool   `json:"has_referral"`
	ReferralDate        string `json:"referral_date,omitempty"`
	ReferringProviderID string `json:"referring_provider,omitempty"`
	ReferralNotes       string `json:"referral_notes,omitempty"`
	DaysRemainingValid  int    `json:"days_remaining_valid"`
	Status              string `json:"status,omitempty"`
	Detail              string `json:"detail"`
}

// CheckReferral scans the patient's visit history for a documented referral
// to the specialty. The most recent qualifying visit wins; a referral stays
// valid for 90 days inclusive, after which it no longer counts as being on
// file. A patient with no primary care provider on file is reported
// distinctly so the agent can route them to establish care first.
func (e *Engine) CheckReferral(patientID, specialty string) (ReferralStatus, error) {
	patient, ok := e.dir.Patient(patientID)
	if !ok {
		return ReferralStatus{}, fmt.Errorf("%w: %s", ErrPatientNotFound, patientID)
	}

	status := ReferralStatus{PatientID: patient.PatientID, Specialty: specialty}
	if patient.PrimaryCareID == "" {
		status.Detail = "no primary care provider on file; patient must establish care before a referral can be issued"
		return status, nil
	}

	// A visit qualifies when its notes mention the specialty.
	var bestDate, bestProvider, bestNotes string
	for _, v := range patient.RecentVisits {
		if !containsFold(v.Notes, specialty) {
			continue
		}
		if v.Date > bestDate {
			bestDate = v.Date
			bestProvider = v.ProviderID
			bestNotes = v.Notes
		}
	}
	if bestDate == "" {
		status.Detail = fmt.Sprintf("no referral to %s found in visit history", specialty)
		return status, nil
	}

	refDate, err := time.Parse("2006-01-02", bestDate)
	if err != nil {
		return ReferralStatus{}, fmt.Errorf("scheduling: parsing referral date %q: %w", bestDate, err)
	}
	days := int(e.now().Sub(refDate).Hours() / 24)
	if days > referralValidityDays {
		status.Status = "Expired"
		status.Detail = fmt.Sprintf("referral dated %s has expired (%d days old, limit %d); patient should contact their primary care provider for a new referral", bestDate, days, referralValidityDays)
		return status, nil
	}

	status.HasReferral = true
	status.ReferralDate = bestDate
	status.ReferringProviderID = bestProvider
	status.ReferralNotes = bestNotes
	status.DaysRemainingValid = referralValidityDays - days
	status.Status = "Valid"
	status.Detail = fmt.Sprintf("referral from %s dated %s is valid for %d more days", bestProvider, bestDate, status.DaysRemainingValid)
	return status, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
