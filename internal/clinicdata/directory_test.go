package clinicdata

import (
	"testing"
	"time"
)

func seededDirectory(t *testing.T) *Directory {
	t.Helper()
	patients, providers, policies, protocols := Seed(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	return NewDirectory(patients, providers, policies, protocols)
}

func TestDirectoryLookups(t *testing.T) {
	d := seededDirectory(t)

	p, ok := d.Patient("PT001")
	if !ok {
		t.Fatal("expected PT001 to exist")
	}
	if got := p.FullName(); got != "Sarah Martinez" {
		t.Errorf("full name = %q, want %q", got, "Sarah Martinez")
	}
	if !p.HasSeenProvider("DR003") {
		t.Error("PT001 should have a visit with DR003")
	}
	if p.IsNewToSystem() {
		t.Error("PT001 has visit history, should not be new to system")
	}

	if _, ok := d.Patient("PT999"); ok {
		t.Error("unknown patient id should not resolve")
	}

	pr, ok := d.Provider("DR003")
	if !ok {
		t.Fatal("expected DR003 to exist")
	}
	if pr.AcceptingNewPatients {
		t.Error("DR003 is not accepting new patients")
	}
	if got := pr.DisplayName(); got != "Dr. Robert Martinez" {
		t.Errorf("display name = %q, want %q", got, "Dr. Robert Martinez")
	}
}

func TestProvidersBySpecialty(t *testing.T) {
	d := seededDirectory(t)

	tests := []struct {
		specialty string
		want      int
	}{
		{"Orthopedic Surgery", 6}, // 4 surgeons + PA + NP
		{"Cardiology", 4},
		{"Primary Care", 5},
		{"Dermatology", 0},
	}
	for _, tt := range tests {
		got := d.ProvidersBySpecialty(tt.specialty)
		if len(got) != tt.want {
			t.Errorf("ProvidersBySpecialty(%q) = %d providers, want %d", tt.specialty, len(got), tt.want)
		}
	}
}

func TestProviderTeam(t *testing.T) {
	d := seededDirectory(t)

	team := d.ProviderTeam("DR001")
	if len(team) != 1 {
		t.Fatalf("DR001 team = %d members, want 1", len(team))
	}
	if team[0].ProviderID != "PA001" {
		t.Errorf("DR001 team member = %s, want PA001", team[0].ProviderID)
	}
	if team[0].ProviderType != ProviderTypePhysicianAssistant {
		t.Errorf("PA001 type = %q, want physician assistant", team[0].ProviderType)
	}

	if team := d.ProviderTeam("DR006"); len(team) != 0 {
		t.Errorf("DR006 team = %d members, want 0", len(team))
	}
}

func TestProviderCities(t *testing.T) {
	d := seededDirectory(t)

	cities := d.ProviderCities("Cardiology")
	want := []string{"Dallas", "Plano", "Round Rock", "Temple"}
	if len(cities) != len(want) {
		t.Fatalf("cardiology cities = %v, want %v", cities, want)
	}
	for i := range want {
		if cities[i] != want[i] {
			t.Errorf("cities[%d] = %q, want %q", i, cities[i], want[i])
		}
	}
}

func TestPolicyByCarrier(t *testing.T) {
	d := seededDirectory(t)

	tests := []struct {
		carrier  string
		wantName string
		wantOK   bool
	}{
		{"Blue Cross Blue Shield", "Blue Cross Blue Shield of Texas", true},
		{"blue cross", "Blue Cross Blue Shield of Texas", true},
		{"Medicare", "Medicare", true},
		{"Cigna", "", false},
	}
	for _, tt := range tests {
		pol, ok := d.PolicyByCarrier(tt.carrier)
		if ok != tt.wantOK {
			t.Errorf("PolicyByCarrier(%q) ok = %v, want %v", tt.carrier, ok, tt.wantOK)
			continue
		}
		if ok && pol.CarrierName != tt.wantName {
			t.Errorf("PolicyByCarrier(%q) = %q, want %q", tt.carrier, pol.CarrierName, tt.wantName)
		}
	}
}

func TestFindProtocol(t *testing.T) {
	d := seededDirectory(t)

	tests := []struct {
		name      string
		condition string
		specialty string
		wantID    string
		wantOK    bool
	}{
		{"exact condition", "knee replacement", "", "PROTO001", true},
		{"narrowed by specialty", "chest pain", "Cardiology", "PROTO010", true},
		{"keyword fallback", "recent knee surgery", "Orthopedic Surgery", "PROTO001", true},
		{"no match", "dermatitis", "", "", false},
		{"specialty excludes", "knee replacement", "Cardiology", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := d.FindProtocol(tt.condition, tt.specialty)
			if ok != tt.wantOK {
				t.Fatalf("FindProtocol(%q, %q) ok = %v, want %v", tt.condition, tt.specialty, ok, tt.wantOK)
			}
			if ok && p.ProtocolID != tt.wantID {
				t.Errorf("FindProtocol(%q, %q) = %s, want %s", tt.condition, tt.specialty, p.ProtocolID, tt.wantID)
			}
		})
	}
}

func TestMetroClusters(t *testing.T) {
	if !SameMetro("Dallas", "Plano") {
		t.Error("Dallas and Plano share a metro")
	}
	if !SameMetro("plano", "FRISCO") {
		t.Error("metro matching should be case-insensitive")
	}
	if SameMetro("Dallas", "Austin") {
		t.Error("Dallas and Austin are different metros")
	}
	if !SameMetro("Lubbock", "Lubbock") {
		t.Error("a city is always in its own metro")
	}

	if got := MetroArea("Round Rock"); got != "Greater Austin" {
		t.Errorf("MetroArea(Round Rock) = %q, want Greater Austin", got)
	}
	if got := MetroArea("Lubbock"); got != "" {
		t.Errorf("MetroArea(Lubbock) = %q, want empty", got)
	}

	cities := MetroCities("Lubbock")
	if len(cities) != 1 || cities[0] != "Lubbock" {
		t.Errorf("MetroCities(Lubbock) = %v, want just the city itself", cities)
	}
}
