package scheduling

import (
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/harborhealth/scheduling-agent/internal/clinicdata"
	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

var testNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) // a Monday

// seededEngine builds an engine over the full demo dataset with a frozen
// clock and deterministic slots.
func seededEngine(t *testing.T) *Engine {
	t.Helper()
	patients, providers, policies, protocols := clinicdata.Seed(testNow)
	dir := clinicdata.NewDirectory(patients, providers, policies, protocols)
	slots := clinicdata.GenerateSlots(providers, testNow, 14, 42)
	return NewEngine(dir, NewSlotStore(slots), logging.New("error"),
		WithClock(func() time.Time { return testNow }))
}

// fixtureEngine builds an engine over a small hand-written dataset for tests
// that need precise control over dates and availability.
func fixtureEngine(t *testing.T, patients []clinicdata.Patient, providers []clinicdata.Provider,
	policies []clinicdata.InsurancePolicy, slots []clinicdata.AppointmentSlot) *Engine {
	t.Helper()
	dir := clinicdata.NewDirectory(patients, providers, policies, nil)
	return NewEngine(dir, NewSlotStore(slots), logging.New("error"),
		WithClock(func() time.Time { return testNow }))
}

func TestSearchSlotsBySpecialty(t *testing.T) {
	e := seededEngine(t)

	res := e.SearchSlots(SearchRequest{Specialty: "Cardiology"})
	if len(res.Slots) == 0 {
		t.Fatal("expected cardiology slots")
	}
	if len(res.Slots) > DefaultMaxResults {
		t.Errorf("got %d slots, cap is %d", len(res.Slots), DefaultMaxResults)
	}
	for _, s := range res.Slots {
		if s.Specialty != "Cardiology" {
			t.Errorf("slot %s has specialty %q", s.SlotID, s.Specialty)
		}
	}
	// Sorted by date then time.
	for i := 1; i < len(res.Slots); i++ {
		a, b := res.Slots[i-1], res.Slots[i]
		if a.Date > b.Date || (a.Date == b.Date && a.Time > b.Time) {
			t.Fatalf("slots out of order: %s %s before %s %s", a.Date, a.Time, b.Date, b.Time)
		}
	}
}

func TestSearchSlotsDateWindow(t *testing.T) {
	e := seededEngine(t)

	from := testNow.AddDate(0, 0, 3).Format("2006-01-02")
	to := testNow.AddDate(0, 0, 5).Format("2006-01-02")
	res := e.SearchSlots(SearchRequest{Specialty: "Primary Care", DateFrom: from, DateTo: to, MaxResults: 100})
	if len(res.Slots) == 0 {
		t.Fatal("expected slots inside the window")
	}
	for _, s := range res.Slots {
		if s.Date < from || s.Date > to {
			t.Errorf("slot %s on %s is outside [%s, %s]", s.SlotID, s.Date, from, to)
		}
	}
}

func TestSearchSlotsMetroLocation(t *testing.T) {
	e := seededEngine(t)

	// Dallas search must also surface metro-area providers (Plano, Arlington).
	res := e.SearchSlots(SearchRequest{Specialty: "Orthopedic Surgery", Location: "Dallas", MaxResults: 200})
	cities := map[string]bool{}
	for _, s := range res.Slots {
		p, ok := e.dir.Provider(s.ProviderID)
		if !ok {
			t.Fatalf("unknown provider %s in results", s.ProviderID)
		}
		cities[p.City] = true
		if !clinicdata.SameMetro("Dallas", p.City) {
			t.Errorf("slot %s in %s is outside the Dallas metro", s.SlotID, p.City)
		}
	}
	if !cities["Plano"] {
		t.Error("expected metro-area Plano slots in a Dallas search")
	}

	// A city with no metro providers finds nothing.
	empty := e.SearchSlots(SearchRequest{Specialty: "Orthopedic Surgery", Location: "El Paso"})
	if len(empty.Slots) != 0 {
		t.Errorf("El Paso search returned %d slots, want 0", len(empty.Slots))
	}
}

func TestSearchSlotsAppointmentTypeExactBeforeSubstring(t *testing.T) {
	providers := []clinicdata.Provider{{
		ProviderID: "DR900", Specialty: "Orthopedic Surgery", Location: "Clinic", City: "Dallas",
	}}
	slots := []clinicdata.AppointmentSlot{
		{SlotID: "S1", ProviderID: "DR900", Date: "2025-06-03", Time: "08:00", AppointmentType: "Follow-up", Available: true, Location: "Clinic"},
		{SlotID: "S2", ProviderID: "DR900", Date: "2025-06-03", Time: "09:00", AppointmentType: "Post-Op Follow-up", Available: true, Location: "Clinic"},
	}
	e := fixtureEngine(t, nil, providers, nil, slots)

	// Exact match exists: substring matches are excluded.
	res := e.SearchSlots(SearchRequest{AppointmentType: "Follow-up"})
	if len(res.Slots) != 1 || res.Slots[0].SlotID != "S1" {
		t.Fatalf("exact search = %+v, want only S1", res.Slots)
	}

	// No exact match: fall back to substring.
	res = e.SearchSlots(SearchRequest{AppointmentType: "Post-Op"})
	if len(res.Slots) != 1 || res.Slots[0].SlotID != "S2" {
		t.Fatalf("substring search = %+v, want only S2", res.Slots)
	}

	// A query longer than the slot label still matches when the label is
	// contained in the query.
	res = e.SearchSlots(SearchRequest{AppointmentType: "Post-Op Follow-up Visit"})
	if len(res.Slots) != 1 || res.Slots[0].SlotID != "S2" {
		t.Fatalf("reverse substring search = %+v, want only S2", res.Slots)
	}
}

func TestSearchSlotsPostOperativeFollowUp(t *testing.T) {
	e := seededEngine(t)

	res := e.SearchSlots(SearchRequest{
		Specialty:       "Orthopedic Surgery",
		Location:        "Dallas",
		AppointmentType: "Post-Operative Follow-up",
		MaxResults:      50,
	})
	if len(res.Slots) == 0 {
		t.Fatal("expected post-operative follow-up slots in the Dallas metro")
	}
	for _, s := range res.Slots {
		if !strings.Contains(s.AppointmentType, "Follow-up") {
			t.Errorf("slot %s type = %q, want a follow-up visit", s.SlotID, s.AppointmentType)
		}
		if s.Specialty != "Orthopedic Surgery" {
			t.Errorf("slot %s specialty = %q", s.SlotID, s.Specialty)
		}
	}
}

func TestSearchSlotsTruncation(t *testing.T) {
	e := seededEngine(t)

	res := e.SearchSlots(SearchRequest{Specialty: "Primary Care", MaxResults: 5})
	if len(res.Slots) != 5 {
		t.Fatalf("got %d slots, want 5", len(res.Slots))
	}
	if !res.Truncated {
		t.Error("expected truncation flag")
	}
	if res.TotalFound <= 5 {
		t.Errorf("TotalFound = %d, want > 5", res.TotalFound)
	}
}

func TestCheckProviderAvailability(t *testing.T) {
	e := seededEngine(t)

	avail, err := e.CheckProviderAvailability("DR006", "", "")
	if err != nil {
		t.Fatalf("CheckProviderAvailability: %v", err)
	}
	if avail.ProviderName != "Dr. Rachel Foster" {
		t.Errorf("name = %q", avail.ProviderName)
	}
	if avail.OpenSlotCount == 0 {
		t.Error("expected open slots")
	}
	if len(avail.NextOpenSlots) > 10 {
		t.Errorf("next open slots = %d, cap is 10", len(avail.NextOpenSlots))
	}

	if _, err := e.CheckProviderAvailability("DR999", "", ""); !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("unknown provider err = %v, want ErrProviderNotFound", err)
	}
}

func bookingFixture(t *testing.T) *Engine {
	t.Helper()
	patients := []clinicdata.Patient{
		{PatientID: "PT900", FirstName: "Ana", LastName: "Reed", InsuranceProvider: "Aetna"},
		{PatientID: "PT901", FirstName: "Ben", LastName: "Cole", InsuranceProvider: "Cigna"},
		{PatientID: "PT902", FirstName: "Cal", LastName: "Dunn", InsuranceProvider: "Aetna",
			RecentVisits: []clinicdata.VisitRecord{{Date: "2025-05-01", ProviderID: "DR901"}}},
	}
	providers := []clinicdata.Provider{
		{ProviderID: "DR900", FirstName: "Gail", LastName: "Holt", Specialty: "Cardiology",
			AcceptingNewPatients: true, InsuranceAccepted: []string{"Aetna"}},
		{ProviderID: "DR901", FirstName: "Hal", LastName: "Ives", Specialty: "Cardiology",
			AcceptingNewPatients: false, InsuranceAccepted: []string{"Aetna"}},
	}
	slots := []clinicdata.AppointmentSlot{
		{SlotID: "S-OPEN", ProviderID: "DR900", Date: "2025-06-03", Time: "08:00", AppointmentType: "Follow-up", Available: true, Location: "Clinic"},
		{SlotID: "S-GONE", ProviderID: "DR900", Date: "2025-06-03", Time: "09:00", AppointmentType: "Follow-up", Available: false, Location: "Clinic"},
		{SlotID: "S-NEW", ProviderID: "DR901", Date: "2025-06-03", Time: "10:00", AppointmentType: "New Patient", Available: true, Location: "Clinic"},
	}
	return fixtureEngine(t, patients, providers, nil, slots)
}

func TestBookAppointment(t *testing.T) {
	e := bookingFixture(t)

	conf, err := e.BookAppointment(BookRequest{SlotID: "S-OPEN", PatientID: "PT900"})
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}
	if !strings.HasPrefix(conf.ConfirmationNumber, "CONF-") {
		t.Errorf("confirmation = %q, want CONF- prefix", conf.ConfirmationNumber)
	}
	if conf.ProviderID != "DR900" || conf.PatientName != "Ana Reed" {
		t.Errorf("confirmation = %+v", conf)
	}

	// The slot is gone now.
	if _, err := e.BookAppointment(BookRequest{SlotID: "S-OPEN", PatientID: "PT902"}); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("rebooking err = %v, want ErrSlotUnavailable", err)
	}
}

func TestBookAppointmentValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		req     BookRequest
		wantErr error
	}{
		{"unknown slot", BookRequest{SlotID: "S-NOPE", PatientID: "PT900"}, ErrSlotNotFound},
		{"slot already booked", BookRequest{SlotID: "S-GONE", PatientID: "PT999"}, ErrSlotUnavailable},
		{"unknown patient", BookRequest{SlotID: "S-OPEN", PatientID: "PT999"}, ErrPatientNotFound},
		{"unknown provider override", BookRequest{SlotID: "S-OPEN", PatientID: "PT900", ProviderID: "DR999"}, ErrProviderNotFound},
		{"insurance not accepted", BookRequest{SlotID: "S-OPEN", PatientID: "PT901"}, ErrInsuranceNotAccepted},
		{"panel closed to new patients", BookRequest{SlotID: "S-NEW", PatientID: "PT900"}, ErrNotAcceptingPatients},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := bookingFixture(t)
			if _, err := e.BookAppointment(tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBookAppointmentEstablishedPatientBypassesClosedPanel(t *testing.T) {
	e := bookingFixture(t)

	// PT902 has seen DR901 before, so the closed panel does not block them.
	conf, err := e.BookAppointment(BookRequest{SlotID: "S-NEW", PatientID: "PT902"})
	if err != nil {
		t.Fatalf("established patient booking: %v", err)
	}
	if conf.ProviderID != "DR901" {
		t.Errorf("provider = %s, want DR901", conf.ProviderID)
	}
}

func TestVerifyInsurance(t *testing.T) {
	e := seededEngine(t)

	tests := []struct {
		name          string
		patientID     string
		specialty     string
		service       string
		wantReferral  bool
		wantPriorAuth bool
		wantCopay     float64
	}{
		{"bcbs ortho needs referral", "PT001", "Orthopedic Surgery", "", true, false, 60},
		{"bcbs primary care no referral", "PT001", "Primary Care", "", false, false, 30},
		{"uhc specialist no referral", "PT004", "Cardiology", "", false, false, 50},
		{"aetna all specialists", "PT003", "Cardiology", "", true, false, 50},
		{"medicare no referral zero copay", "PT002", "Cardiology", "", false, false, 0},
		{"prior auth on surgery", "PT001", "Orthopedic Surgery", "knee surgery consultation", true, true, 60},
		{"prior auth service within requirement", "PT004", "Cardiology", "imaging", false, true, 50},
		{"no specialty defaults to primary copay", "PT001", "", "", false, false, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := e.VerifyInsurance(tt.patientID, tt.specialty, tt.service)
			if err != nil {
				t.Fatalf("VerifyInsurance: %v", err)
			}
			if v.ReferralRequired != tt.wantReferral {
				t.Errorf("referral = %v, want %v", v.ReferralRequired, tt.wantReferral)
			}
			if v.PriorAuthRequired != tt.wantPriorAuth {
				t.Errorf("prior auth = %v, want %v", v.PriorAuthRequired, tt.wantPriorAuth)
			}
			if v.Copay != tt.wantCopay {
				t.Errorf("copay = %v, want %v", v.Copay, tt.wantCopay)
			}
		})
	}

	if _, err := e.VerifyInsurance("PT999", "Cardiology", ""); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("unknown patient err = %v, want ErrPatientNotFound", err)
	}
}

func TestVerifyInsuranceNextSteps(t *testing.T) {
	e := seededEngine(t)

	// BCBS requires a referral for orthopedics and prior auth for surgery.
	v, err := e.VerifyInsurance("PT001", "Orthopedic Surgery", "knee surgery")
	if err != nil {
		t.Fatalf("VerifyInsurance: %v", err)
	}
	want := []string{
		"Obtain a referral from your primary care physician before scheduling",
		"Prior authorization required - contact insurance before procedure",
		"Bring your insurance card to your appointment",
	}
	if len(v.NextSteps) != len(want) {
		t.Fatalf("next steps = %v, want %v", v.NextSteps, want)
	}
	for i := range want {
		if v.NextSteps[i] != want[i] {
			t.Errorf("next step %d = %q, want %q", i, v.NextSteps[i], want[i])
		}
	}
	if !v.IsCovered {
		t.Error("surgery is a covered service")
	}

	// No referral and no prior auth collapses to the go-ahead step.
	v, err = e.VerifyInsurance("PT004", "Cardiology", "office visit")
	if err != nil {
		t.Fatalf("VerifyInsurance: %v", err)
	}
	if len(v.NextSteps) != 2 || !strings.Contains(v.NextSteps[0], "No special authorization required") {
		t.Errorf("next steps = %v, want the proceed-to-schedule guidance", v.NextSteps)
	}
}

func referralFixture(t *testing.T, visitDate string) *Engine {
	t.Helper()
	patients := []clinicdata.Patient{
		{PatientID: "PT910", FirstName: "Dia", LastName: "Ellis", PrimaryCareID: "DR906",
			InsuranceProvider: "Aetna",
			RecentVisits: []clinicdata.VisitRecord{
				{Date: visitDate, ProviderID: "DR906", Specialty: "Primary Care",
					Notes: "Referred to Cardiology for stress test"},
			}},
		{PatientID: "PT911", FirstName: "Eli", LastName: "Frost", InsuranceProvider: "Aetna"},
	}
	return fixtureEngine(t, patients, nil, nil, nil)
}

func TestCheckReferralValidityWindow(t *testing.T) {
	day := func(n int) string { return testNow.AddDate(0, 0, -n).Format("2006-01-02") }

	tests := []struct {
		name          string
		visitDate     string
		wantHas       bool
		wantRemaining int
		wantStatus    string
	}{
		{"fresh referral", day(10), true, 80, "Valid"},
		{"exactly at the limit", day(90), true, 0, "Valid"},
		{"one day past the limit", day(91), false, 0, "Expired"},
		{"well past the limit", day(95), false, 0, "Expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := referralFixture(t, tt.visitDate)
			st, err := e.CheckReferral("PT910", "Cardiology")
			if err != nil {
				t.Fatalf("CheckReferral: %v", err)
			}
			if st.HasReferral != tt.wantHas {
				t.Errorf("has referral = %v, want %v", st.HasReferral, tt.wantHas)
			}
			if st.DaysRemainingValid != tt.wantRemaining {
				t.Errorf("days remaining = %d, want %d", st.DaysRemainingValid, tt.wantRemaining)
			}
			if st.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", st.Status, tt.wantStatus)
			}
		})
	}
}

func TestCheckReferralNoPCP(t *testing.T) {
	e := referralFixture(t, "2025-05-01")

	st, err := e.CheckReferral("PT911", "Cardiology")
	if err != nil {
		t.Fatalf("CheckReferral: %v", err)
	}
	if st.HasReferral {
		t.Error("patient without a PCP cannot have a referral")
	}
	if !strings.Contains(st.Detail, "primary care provider") {
		t.Errorf("detail = %q, want the no-PCP explanation", st.Detail)
	}
}

func TestCheckReferralMostRecentQualifyingVisit(t *testing.T) {
	patients := []clinicdata.Patient{
		{PatientID: "PT912", FirstName: "Fay", LastName: "Gray", PrimaryCareID: "DR906",
			InsuranceProvider: "Aetna",
			RecentVisits: []clinicdata.VisitRecord{
				{Date: "2025-01-10", ProviderID: "DR906", Notes: "Referred to Cardiology"},
				{Date: "2025-05-20", ProviderID: "DR907", Notes: "Cardiology referral renewed"},
				{Date: "2025-05-25", ProviderID: "DR906", Notes: "Unrelated wellness visit"},
			}},
	}
	e := fixtureEngine(t, patients, nil, nil, nil)

	st, err := e.CheckReferral("PT912", "Cardiology")
	if err != nil {
		t.Fatalf("CheckReferral: %v", err)
	}
	if st.ReferralDate != "2025-05-20" || st.ReferringProviderID != "DR907" {
		t.Errorf("picked %s from %s, want 2025-05-20 from DR907", st.ReferralDate, st.ReferringProviderID)
	}
	if !st.HasReferral || st.Status != "Valid" {
		t.Errorf("13-day-old referral should be on file and valid, got has=%v status=%q", st.HasReferral, st.Status)
	}
}

func TestGetClinicalProtocol(t *testing.T) {
	e := seededEngine(t)

	adv, err := e.GetClinicalProtocol("knee replacement", "Orthopedic Surgery")
	if err != nil {
		t.Fatalf("GetClinicalProtocol: %v", err)
	}
	if adv.ProtocolID != "PROTO001" {
		t.Errorf("protocol = %s, want PROTO001", adv.ProtocolID)
	}
	if adv.FollowUpDays != 14 {
		t.Errorf("follow-up days = %d, want 14", adv.FollowUpDays)
	}
	if adv.Priority != "NORMAL" || adv.MaxWaitDays != 30 {
		t.Errorf("priority = %s/%d, want NORMAL/30", adv.Priority, adv.MaxWaitDays)
	}

	urgent, err := e.GetClinicalProtocol("abnormal stress test", "Cardiology")
	if err != nil {
		t.Fatalf("GetClinicalProtocol: %v", err)
	}
	if urgent.Priority != "HIGH" || urgent.MaxWaitDays != 7 {
		t.Errorf("priority = %s/%d, want HIGH/7", urgent.Priority, urgent.MaxWaitDays)
	}

	if _, err := e.GetClinicalProtocol("dermatitis", ""); !errors.Is(err, ErrProtocolNotFound) {
		t.Errorf("unknown condition err = %v, want ErrProtocolNotFound", err)
	}
}

func TestParseFollowUpDays(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"2 weeks post-surgery, then 6 weeks, then 3 months", 14},
		{"Within 1 week of test results", 7},
		{"Every 3-6 months based on stability", 120},
		{"Every 1-3 months based on NYHA class", 60},
		{"Every 3 months", 120},
		{"Annually", 365},
		{"2-4 weeks based on injury severity", 28},
		{"Within 1 week if stable, same day if concerning features", 1},
		{"as clinically indicated", 30},
	}
	for _, tt := range tests {
		if got := parseFollowUpDays(tt.text); got != tt.want {
			t.Errorf("parseFollowUpDays(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestFindNearestProviders(t *testing.T) {
	e := seededEngine(t)

	// PT001 lives in Dallas: own-city providers first, metro fill after.
	res, err := e.FindNearestProviders("PT001", "Orthopedic Surgery", "")
	if err != nil {
		t.Fatalf("FindNearestProviders: %v", err)
	}
	if res.PatientCity != "Dallas" || res.MetroArea != "Dallas-Fort Worth" {
		t.Errorf("city/metro = %s/%s", res.PatientCity, res.MetroArea)
	}
	if len(res.Providers) != 5 {
		t.Fatalf("got %d providers, want 5", len(res.Providers))
	}
	sameCity := 0
	for i, p := range res.Providers {
		if p.Proximity == "same city" {
			sameCity++
			if i > 0 && res.Providers[i-1].Proximity == "metro area" {
				t.Error("same-city providers must come before metro-area providers")
			}
		} else if !clinicdata.SameMetro("Dallas", p.City) {
			t.Errorf("provider %s in %s is outside the metro", p.ProviderID, p.City)
		}
	}
	if sameCity == 0 || sameCity > 3 {
		t.Errorf("same-city providers = %d, want 1..3", sameCity)
	}

	// Every city with an orthopedic provider is listed, in sorted order, so
	// the agent can offer alternatives beyond the metro.
	if len(res.AllAvailableCities) == 0 {
		t.Fatal("expected the full list of cities with orthopedic providers")
	}
	if !sort.StringsAreSorted(res.AllAvailableCities) {
		t.Errorf("cities not sorted: %v", res.AllAvailableCities)
	}
	found := false
	for _, c := range res.AllAvailableCities {
		if c == "Dallas" {
			found = true
		}
	}
	if !found {
		t.Errorf("cities %v missing Dallas", res.AllAvailableCities)
	}

	// Explicit city overrides the patient record.
	res, err = e.FindNearestProviders("PT001", "Cardiology", "Round Rock")
	if err != nil {
		t.Fatalf("FindNearestProviders: %v", err)
	}
	if res.PatientCity != "Round Rock" {
		t.Errorf("city = %s, want Round Rock", res.PatientCity)
	}

	if _, err := e.FindNearestProviders("PT999", "Cardiology", ""); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("unknown patient err = %v, want ErrPatientNotFound", err)
	}
}

func TestGetProviderTeam(t *testing.T) {
	e := seededEngine(t)

	team, err := e.GetProviderTeam("DR001")
	if err != nil {
		t.Fatalf("GetProviderTeam: %v", err)
	}
	if len(team.Team) != 1 || team.Team[0].ProviderID != "PA001" {
		t.Fatalf("team = %+v, want PA001", team.Team)
	}
	if team.Team[0].Name != "Mark Reyes, PA-C" {
		t.Errorf("team member name = %q", team.Team[0].Name)
	}

	if _, err := e.GetProviderTeam("DR999"); !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("unknown provider err = %v, want ErrProviderNotFound", err)
	}
}

func TestGetPatientInfo(t *testing.T) {
	e := seededEngine(t)

	info, err := e.GetPatientInfo("PT004")
	if err != nil {
		t.Fatalf("GetPatientInfo: %v", err)
	}
	if info.Name != "Michael Thompson" {
		t.Errorf("name = %q", info.Name)
	}
	if !info.NewToSystem {
		t.Error("PT004 has no visits, should be new to system")
	}

	if _, err := e.GetPatientInfo("PT999"); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("unknown patient err = %v, want ErrPatientNotFound", err)
	}
}
