package scheduling

import (
	"sort"
	"strings"

	"github.com/harborhealth/scheduling-agent/internal/clinicdata"
)

// SearchRequest narrows the slot search. All fields are optional; an empty
// request returns the earliest open slots across the whole system.
type SearchRequest struct {
	Specialty       string `json:"specialty,omitempty"`
	ProviderID      string `json:"provider_id,omitempty"`
	Location        string `json:"location,omitempty"`
	AppointmentType string `json:"appointment_type,omitempty"`
	DateFrom        string `json:"date_from,omitempty"` // YYYY-MM-DD inclusive
	DateTo          string `json:"date_to,omitempty"`   // YYYY-MM-DD inclusive
	MaxResults      int    `json:"max_results,omitempty"`
}

// SlotView is one search hit, enriched with the provider's patient-facing
// name.
type SlotView struct {
	SlotID          string `json:"slot_id"`
	ProviderID      string `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	Specialty       string `json:"specialty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	AppointmentType string `json:"appointment_type"`
	Location        string `json:"location"`
}

// SearchResult carries the matching slots plus the total match count before
// the cap was applied.
type SearchResult struct {
	Slots      []SlotView `json:"slots"`
	TotalFound int        `json:"total_found"`
	Truncated  bool       `json:"truncated,omitempty"`
}

// SearchSlots returns open slots matching the request, sorted by date then
// time of day, capped at MaxResults (default 20). Appointment type matching
// prefers exact matches and falls back to substring matching only when no
// exact match exists anywhere in the candidate set.
func (e *Engine) SearchSlots(req SearchRequest) SearchResult {
	candidates := e.candidateProviders(req)
	if len(candidates) == 0 {
		return SearchResult{Slots: []SlotView{}}
	}

	// Location matches when the slot's facility is in the requested city's
	// metro, or the requested text appears in the facility name.
	var metroCities []string
	if req.Location != "" {
		metroCities = clinicdata.MetroCities(req.Location)
	}
	locationOK := func(slot clinicdata.AppointmentSlot, prov clinicdata.Provider) bool {
		if req.Location == "" {
			return true
		}
		for _, city := range metroCities {
			if strings.EqualFold(prov.City, city) {
				return true
			}
		}
		return strings.Contains(strings.ToLower(slot.Location), strings.ToLower(req.Location))
	}

	var exact, fuzzy []SlotView
	wantType := strings.ToLower(req.AppointmentType)
	for _, slot := range e.slots.Snapshot() {
		prov, ok := candidates[slot.ProviderID]
		if !ok || !slot.Available {
			continue
		}
		if req.DateFrom != "" && slot.Date < req.DateFrom {
			continue
		}
		if req.DateTo != "" && slot.Date > req.DateTo {
			continue
		}
		if !locationOK(slot, prov) {
			continue
		}

		view := SlotView{
			SlotID:          slot.SlotID,
			ProviderID:      slot.ProviderID,
			ProviderName:    prov.DisplayName(),
			Specialty:       prov.Specialty,
			Date:            slot.Date,
			Time:            slot.Time,
			DurationMinutes: slot.DurationMinutes,
			AppointmentType: slot.AppointmentType,
			Location:        slot.Location,
		}
		haveType := strings.ToLower(slot.AppointmentType)
		switch {
		case wantType == "":
			exact = append(exact, view)
		case haveType == wantType:
			exact = append(exact, view)
		case strings.Contains(haveType, wantType) || strings.Contains(wantType, haveType):
			// Substring matching runs both ways so "Follow-up" finds
			// "Post-Operative Follow-up" and vice versa.
			fuzzy = append(fuzzy, view)
		}
	}

	matches := exact
	if len(matches) == 0 {
		matches = fuzzy
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Date != matches[j].Date {
			return matches[i].Date < matches[j].Date
		}
		return matches[i].Time < matches[j].Time
	})

	max := req.MaxResults
	if max <= 0 {
		max = DefaultMaxResults
	}
	total := len(matches)
	truncated := total > max
	if truncated {
		matches = matches[:max]
	}
	if matches == nil {
		matches = []SlotView{}
	}
	return SearchResult{Slots: matches, TotalFound: total, Truncated: truncated}
}

// candidateProviders resolves the request's provider filter to a lookup set.
func (e *Engine) candidateProviders(req SearchRequest) map[string]clinicdata.Provider {
	out := map[string]clinicdata.Provider{}
	if req.ProviderID != "" {
		if p, ok := e.dir.Provider(req.ProviderID); ok {
			out[p.ProviderID] = p
		}
		return out
	}
	if req.Specialty != "" {
		for _, p := range e.dir.ProvidersBySpecialty(req.Specialty) {
			out[p.ProviderID] = p
		}
		return out
	}
	for _, p := range e.dir.Providers() {
		out[p.ProviderID] = p
	}
	return out
}

// ProviderAvailability summarizes one provider's open calendar.
type ProviderAvailability struct {
	ProviderID           string     `json:"provider_id"`
	ProviderName         string     `json:"provider_name"`
	Specialty            string     `json:"specialty"`
	Location             string     `json:"location"`
	AcceptingNewPatients bool       `json:"accepting_new_patients"`
	AvailabilityDays     []string   `json:"availability_days"`
	OpenSlotCount        int        `json:"open_slot_count"`
	NextOpenSlots        []SlotView `json:"next_open_slots"`
}

// CheckProviderAvailability reports a provider's open slot count and next
// openings within the optional date window.
func (e *Engine) CheckProviderAvailability(providerID, dateFrom, dateTo string) (ProviderAvailability, error) {
	prov, ok := e.dir.Provider(providerID)
	if !ok {
		return ProviderAvailability{}, ErrProviderNotFound
	}

	res := e.SearchSlots(SearchRequest{
		ProviderID: providerID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		MaxResults: 10,
	})
	return ProviderAvailability{
		ProviderID:           prov.ProviderID,
		ProviderName:         prov.DisplayName(),
		Specialty:            prov.Specialty,
		Location:             prov.Location,
		AcceptingNewPatients: prov.AcceptingNewPatients,
		AvailabilityDays:     prov.AvailabilityDays,
		OpenSlotCount:        res.TotalFound,
		NextOpenSlots:        res.Slots,
	}, nil
}
