package clinicdata

import (
	"sort"
	"strings"
)

// Directory is the read side for reference data. All lookups are safe for
// concurrent use; the underlying slices are never mutated after New.
type Directory struct {
	patients  map[string]Patient
	providers map[string]Provider
	policies  []InsurancePolicy
	protocols []ClinicalProtocol

	providerOrder []string
}

// NewDirectory indexes the supplied reference data.
func NewDirectory(patients []Patient, providers []Provider, policies []InsurancePolicy, protocols []ClinicalProtocol) *Directory {
	d := &Directory{
		patients:  make(map[string]Patient, len(patients)),
		providers: make(map[string]Provider, len(providers)),
		policies:  policies,
		protocols: protocols,
	}
	for _, p := range patients {
		d.patients[p.PatientID] = p
	}
	for _, p := range providers {
		d.providers[p.ProviderID] = p
		d.providerOrder = append(d.providerOrder, p.ProviderID)
	}
	return d
}

// Patient returns the patient with the given id.
func (d *Directory) Patient(patientID string) (Patient, bool) {
	p, ok := d.patients[patientID]
	return p, ok
}

// Provider returns the provider with the given id.
func (d *Directory) Provider(providerID string) (Provider, bool) {
	p, ok := d.providers[providerID]
	return p, ok
}

// Providers returns all providers in seed order.
func (d *Directory) Providers() []Provider {
	out := make([]Provider, 0, len(d.providerOrder))
	for _, id := range d.providerOrder {
		out = append(out, d.providers[id])
	}
	return out
}

// ProvidersBySpecialty returns providers whose specialty matches exactly.
func (d *Directory) ProvidersBySpecialty(specialty string) []Provider {
	var out []Provider
	for _, id := range d.providerOrder {
		if p := d.providers[id]; strings.EqualFold(p.Specialty, specialty) {
			out = append(out, p)
		}
	}
	return out
}

// ProviderTeam returns PA/NP members supervised by the given physician.
func (d *Directory) ProviderTeam(physicianID string) []Provider {
	var out []Provider
	for _, id := range d.providerOrder {
		if p := d.providers[id]; p.SupervisingPhysician == physicianID {
			out = append(out, p)
		}
	}
	return out
}

// ProviderCities returns the sorted set of cities that have any provider,
// optionally restricted to one specialty.
func (d *Directory) ProviderCities(specialty string) []string {
	seen := map[string]bool{}
	var out []string
	for _, id := range d.providerOrder {
		p := d.providers[id]
		if specialty != "" && !strings.EqualFold(p.Specialty, specialty) {
			continue
		}
		if !seen[p.City] {
			seen[p.City] = true
			out = append(out, p.City)
		}
	}
	sort.Strings(out)
	return out
}

// PolicyByCarrier finds the insurance policy whose carrier name contains the
// given name, case-insensitively. The patient record may carry a short form
// ("Blue Cross Blue Shield") of the full policy name.
func (d *Directory) PolicyByCarrier(carrier string) (InsurancePolicy, bool) {
	needle := strings.ToLower(carrier)
	for _, pol := range d.policies {
		if strings.Contains(strings.ToLower(pol.CarrierName), needle) {
			return pol, true
		}
	}
	return InsurancePolicy{}, false
}

// FindProtocol locates the best-matching clinical protocol. Exact substring
// match on condition/name first, optionally narrowed by specialty; if that
// finds nothing, individual condition keywords are tried against the combined
// name+condition text.
func (d *Directory) FindProtocol(condition, specialty string) (ClinicalProtocol, bool) {
	cond := strings.ToLower(condition)
	match := func(p ClinicalProtocol) bool {
		if specialty != "" && !strings.Contains(strings.ToLower(p.Specialty), strings.ToLower(specialty)) {
			return false
		}
		return true
	}

	for _, p := range d.protocols {
		if (strings.Contains(strings.ToLower(p.Condition), cond) || strings.Contains(strings.ToLower(p.Name), cond)) && match(p) {
			return p, true
		}
	}

	// Broader keyword search.
	for _, p := range d.protocols {
		text := strings.ToLower(p.Name + " " + p.Condition)
		for _, kw := range strings.Fields(cond) {
			if strings.Contains(text, kw) && match(p) {
				return p, true
			}
		}
	}
	return ClinicalProtocol{}, false
}
