package clinicdata

import "time"

// Seed returns the demo reference dataset: Texas-area patients, providers
// across the three specialties (including supervised PA/NP team members),
// carrier policies, and clinical protocols. Visit dates are generated
// relative to now so referral windows behave sensibly in a live demo.
func Seed(now time.Time) ([]Patient, []Provider, []InsurancePolicy, []ClinicalProtocol) {
	daysAgo := func(n int) string {
		return now.AddDate(0, 0, -n).Format("2006-01-02")
	}

	patients := []Patient{
		{
			PatientID: "PT001", FirstName: "Sarah", LastName: "Martinez",
			DateOfBirth: "1978-03-15", Age: 47, Gender: "Female",
			Phone: "214-555-0123", Email: "sarah.martinez@email.com",
			Address: "4521 Oak Lawn Ave", City: "Dallas", State: "TX", ZipCode: "75219",
			InsuranceProvider: "Blue Cross Blue Shield", InsuranceID: "BCBS-TX-445821",
			PrimaryCareID:     "DR006",
			MedicalConditions: []string{"Osteoarthritis", "Hypertension"},
			Allergies:         []string{"Penicillin"},
			Medications:       []string{"Lisinopril 10mg", "Ibuprofen 400mg PRN"},
			RecentVisits: []VisitRecord{
				{Date: daysAgo(18), ProviderID: "DR003", Specialty: "Orthopedic Surgery",
					Reason: "Right knee replacement surgery",
					Notes:  "Post-op follow-up needed in 2 weeks. Referral to Orthopedic Surgery on file."},
			},
		},
		{
			PatientID: "PT002", FirstName: "James", LastName: "Wilson",
			DateOfBirth: "1945-07-22", Age: 80, Gender: "Male",
			Phone: "817-555-0198", Email: "j.wilson@email.com",
			Address: "2100 West Pioneer Pkwy", City: "Arlington", State: "TX", ZipCode: "76013",
			InsuranceProvider: "Medicare", InsuranceID: "MED-1234567890A",
			PrimaryCareID:     "DR007",
			MedicalConditions: []string{"Coronary Artery Disease", "Type 2 Diabetes", "Hyperlipidemia"},
			Allergies:         []string{"None"},
			Medications:       []string{"Metformin 1000mg", "Atorvastatin 40mg", "Aspirin 81mg"},
			RecentVisits: []VisitRecord{
				{Date: daysAgo(45), ProviderID: "DR007", Specialty: "Primary Care",
					Reason: "Chest pain evaluation",
					Notes:  "Referred to Cardiology for stress test"},
			},
		},
		{
			PatientID: "PT003", FirstName: "Lisa", LastName: "Chen",
			DateOfBirth: "1992-11-08", Age: 32, Gender: "Female",
			Phone: "512-555-0234", Email: "lisa.chen@email.com",
			Address: "1500 Red River St", City: "Austin", State: "TX", ZipCode: "78701",
			InsuranceProvider: "Aetna", InsuranceID: "AET-TX-889234",
			PrimaryCareID:     "DR009",
			MedicalConditions: []string{"Anxiety"},
			Allergies:         []string{"Latex"},
			Medications:       []string{"Sertraline 50mg"},
			RecentVisits: []VisitRecord{
				{Date: daysAgo(120), ProviderID: "DR009", Specialty: "Primary Care",
					Reason: "Annual wellness exam",
					Notes:  "Healthy, routine follow-up in 1 year"},
			},
		},
		{
			PatientID: "PT004", FirstName: "Michael", LastName: "Thompson",
			DateOfBirth: "1985-05-30", Age: 39, Gender: "Male",
			Phone: "972-555-0156", Email: "m.thompson@email.com",
			Address: "7890 Legacy Dr", City: "Plano", State: "TX", ZipCode: "75024",
			InsuranceProvider: "United Healthcare", InsuranceID: "UHC-445123789",
			PrimaryCareID: "DR008",
		},
		{
			PatientID: "PT005", FirstName: "Maria", LastName: "Rodriguez",
			DateOfBirth: "1960-02-14", Age: 64, Gender: "Female",
			Phone: "210-555-0167", Email: "maria.rodriguez@email.com",
			Address: "3456 Blanco Rd", City: "San Antonio", State: "TX", ZipCode: "78212",
			InsuranceProvider: "Medicaid", InsuranceID: "MCAID-TX-556789",
			PrimaryCareID:     "DR010",
			MedicalConditions: []string{"Rheumatoid Arthritis", "Osteoporosis"},
			Allergies:         []string{"Sulfa drugs"},
			Medications:       []string{"Methotrexate 15mg weekly", "Folic acid 1mg", "Calcium with Vitamin D"},
			RecentVisits: []VisitRecord{
				{Date: daysAgo(85), ProviderID: "DR002", Specialty: "Orthopedic Surgery",
					Reason: "Hip pain evaluation",
					Notes:  "Considering hip replacement, follow-up in 3 months. Orthopedic Surgery referral documented."},
			},
		},
		{
			PatientID: "PT006", FirstName: "Robert", LastName: "Johnson",
			DateOfBirth: "1972-09-25", Age: 52, Gender: "Male",
			Phone: "469-555-0189", Email: "robert.j@email.com",
			Address: "9012 Preston Rd", City: "Frisco", State: "TX", ZipCode: "75034",
			InsuranceProvider: "Blue Cross Blue Shield", InsuranceID: "BCBS-TX-992341",
			PrimaryCareID:     "DR006",
			MedicalConditions: []string{"Atrial Fibrillation", "Hypertension", "Sleep Apnea"},
			Allergies:         []string{"None"},
			Medications:       []string{"Eliquis 5mg", "Metoprolol 50mg", "CPAP at night"},
			RecentVisits: []VisitRecord{
				{Date: daysAgo(28), ProviderID: "DR011", Specialty: "Cardiology",
					Reason: "A-fib monitoring",
					Notes:  "Stable, continue current medications, follow-up in 6 months. Cardiology care established."},
			},
		},
		{
			PatientID: "PT007", FirstName: "Emily", LastName: "Davis",
			DateOfBirth: "1998-12-03", Age: 26, Gender: "Female",
			Phone: "713-555-0145", Email: "emily.davis@email.com",
			Address: "1234 Westheimer Rd", City: "Houston", State: "TX", ZipCode: "77006",
			InsuranceProvider: "Aetna", InsuranceID: "AET-TX-334567",
			PrimaryCareID: "DR010",
			Allergies:     []string{"Peanuts"},
			Medications:   []string{"Epipen PRN"},
			RecentVisits: []VisitRecord{
				{Date: daysAgo(95), ProviderID: "DR004", Specialty: "Orthopedic Surgery",
					Reason: "Ankle sprain from sports",
					Notes:  "Healed well, cleared for full activity. Orthopedic Surgery discharge."},
			},
		},
	}

	providers := []Provider{
		// Orthopedic specialists
		{
			ProviderID: "DR001", FirstName: "David", LastName: "Anderson",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Orthopedic Surgery", SubSpecialty: "Joint Replacement",
			Credentials: "MD, FAAOS",
			Location:    "Harbor Medical Center - Dallas", Address: "3500 Gaston Ave",
			City: "Dallas", Phone: "214-820-0111",
			AcceptingNewPatients: true,
			Languages:            []string{"English", "Spanish"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare", "Medicaid"},
			AvailabilityDays:     []string{"Monday", "Tuesday", "Thursday", "Friday"},
			SlotDurationMinutes:  30,
		},
		{
			ProviderID: "DR002", FirstName: "Jennifer", LastName: "Kim",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Orthopedic Surgery", SubSpecialty: "Sports Medicine",
			Credentials: "MD, FAAOS",
			Location:    "Harbor Orthopedic & Spine Hospital - Arlington", Address: "1301 Brown Blvd",
			City: "Arlington", Phone: "817-468-9100",
			AcceptingNewPatients: true,
			Languages:            []string{"English", "Korean"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare"},
			AvailabilityDays:     []string{"Monday", "Wednesday", "Friday"},
			SlotDurationMinutes:  30,
		},
		{
			ProviderID: "DR003", FirstName: "Robert", LastName: "Martinez",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Orthopedic Surgery", SubSpecialty: "Joint Replacement",
			Credentials: "MD, FAAOS",
			Location:    "Harbor Medical Center - Plano", Address: "4708 Alliance Blvd",
			City: "Plano", Phone: "469-814-4000",
			AcceptingNewPatients: false,
			Languages:            []string{"English", "Spanish"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "United Healthcare", "Medicare"},
			AvailabilityDays:     []string{"Tuesday", "Wednesday", "Thursday"},
			SlotDurationMinutes:  30,
		},
		{
			ProviderID: "DR004", FirstName: "Sarah", LastName: "Williams",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Orthopedic Surgery", SubSpecialty: "Foot and Ankle",
			Credentials: "MD",
			Location:    "Harbor Medical Center - Temple", Address: "2401 South 31st St",
			City: "Temple", Phone: "254-724-2111",
			AcceptingNewPatients: true,
			Languages:            []string{"English"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare", "Medicaid"},
			AvailabilityDays:     []string{"Monday", "Tuesday", "Wednesday", "Friday"},
			SlotDurationMinutes:  30,
		},
		// Orthopedic team members (post-op follow-up coverage)
		{
			ProviderID: "PA001", FirstName: "Mark", LastName: "Reyes",
			ProviderType: ProviderTypePhysicianAssistant,
			Specialty:    "Orthopedic Surgery", SubSpecialty: "Joint Replacement",
			Credentials: "PA-C",
			Location:    "Harbor Medical Center - Dallas", Address: "3500 Gaston Ave",
			City: "Dallas", Phone: "214-820-0115",
			AcceptingNewPatients: true,
			Languages:            []string{"English", "Spanish"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare", "Medicaid"},
			AvailabilityDays:     []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			SlotDurationMinutes:  20,
			SupervisingPhysician: "DR001",
		},
		{
			ProviderID: "NP001", FirstName: "Angela", LastName: "Brooks",
			ProviderType: ProviderTypeNursePractitioner,
			Specialty:    "Orthopedic Surgery", SubSpecialty: "Joint Replacement",
			Credentials: "NP",
			Location:    "Harbor Medical Center - Plano", Address: "4708 Alliance Blvd",
			City: "Plano", Phone: "469-814-4010",
			AcceptingNewPatients: true,
			Languages:            []string{"English"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "United Healthcare", "Medicare"},
			AvailabilityDays:     []string{"Monday", "Tuesday", "Thursday", "Friday"},
			SlotDurationMinutes:  20,
			SupervisingPhysician: "DR003",
		},
		// Cardiologists
		{
			ProviderID: "DR011", FirstName: "Michael", LastName: "Patel",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Cardiology", SubSpecialty: "Interventional Cardiology",
			Credentials: "MD, FACC",
			Location:    "Harbor Heart & Vascular Hospital - Dallas", Address: "621 North Hall St",
			City: "Dallas", Phone: "214-820-7500",
			AcceptingNewPatients: true,
			Languages:            []string{"English", "Hindi", "Gujarati"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare"},
			AvailabilityDays:     []string{"Monday", "Tuesday", "Wednesday", "Thursday"},
			SlotDurationMinutes:  45,
		},
		{
			ProviderID: "DR012", FirstName: "Elizabeth", LastName: "Thompson",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Cardiology", SubSpecialty: "Electrophysiology",
			Credentials: "MD, FACC, FHRS",
			Location:    "Harbor Medical Center - Plano", Address: "4708 Alliance Blvd",
			City: "Plano", Phone: "469-814-4100",
			AcceptingNewPatients: true,
			Languages:            []string{"English"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare"},
			AvailabilityDays:     []string{"Tuesday", "Wednesday", "Thursday", "Friday"},
			SlotDurationMinutes:  45,
		},
		{
			ProviderID: "DR013", FirstName: "James", LastName: "Lee",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Cardiology", SubSpecialty: "Heart Failure",
			Credentials: "MD, FACC",
			Location:    "Harbor Medical Center - Temple", Address: "2401 South 31st St",
			City: "Temple", Phone: "254-724-2200",
			AcceptingNewPatients: false,
			Languages:            []string{"English", "Mandarin"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "United Healthcare", "Medicare"},
			AvailabilityDays:     []string{"Monday", "Wednesday", "Thursday"},
			SlotDurationMinutes:  45,
		},
		{
			ProviderID: "DR014", FirstName: "Amanda", LastName: "Garcia",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Cardiology", SubSpecialty: "General Cardiology",
			Credentials: "MD, FACC",
			Location:    "Harbor Medical Center - Round Rock", Address: "300 University Blvd",
			City: "Round Rock", Phone: "512-509-0100",
			AcceptingNewPatients: true,
			Languages:            []string{"English", "Spanish"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare", "Medicaid"},
			AvailabilityDays:     []string{"Monday", "Tuesday", "Thursday", "Friday"},
			SlotDurationMinutes:  45,
		},
		// Primary care physicians
		{
			ProviderID: "DR006", FirstName: "Rachel", LastName: "Foster",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Primary Care", SubSpecialty: "Internal Medicine",
			Credentials: "MD",
			Location:    "Harbor Family Health Center - Dallas", Address: "3600 Gaston Ave",
			City: "Dallas", Phone: "214-820-2000",
			AcceptingNewPatients: true,
			Languages:            []string{"English"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare", "Medicaid"},
			AvailabilityDays:     []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			SlotDurationMinutes:  20,
		},
		{
			ProviderID: "DR007", FirstName: "Daniel", LastName: "Brown",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Primary Care", SubSpecialty: "Family Medicine",
			Credentials: "MD",
			Location:    "Harbor Family Health Center - Arlington", Address: "2200 South Cooper St",
			City: "Arlington", Phone: "817-468-9200",
			AcceptingNewPatients: true,
			Languages:            []string{"English", "Spanish"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare", "Medicaid"},
			AvailabilityDays:     []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			SlotDurationMinutes:  20,
		},
		{
			ProviderID: "DR008", FirstName: "Susan", LastName: "White",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Primary Care", SubSpecialty: "Internal Medicine",
			Credentials: "DO",
			Location:    "Harbor Family Health Center - Plano", Address: "6800 West Parker Rd",
			City: "Plano", Phone: "469-814-5000",
			AcceptingNewPatients: false,
			Languages:            []string{"English"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "United Healthcare", "Medicare"},
			AvailabilityDays:     []string{"Monday", "Wednesday", "Thursday", "Friday"},
			SlotDurationMinutes:  20,
		},
		{
			ProviderID: "DR009", FirstName: "Kevin", LastName: "Nguyen",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Primary Care", SubSpecialty: "Family Medicine",
			Credentials: "MD",
			Location:    "Harbor Family Health Center - Round Rock", Address: "4200 Marathon Blvd",
			City: "Round Rock", Phone: "512-509-0200",
			AcceptingNewPatients: true,
			Languages:            []string{"English", "Vietnamese"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare", "Medicaid"},
			AvailabilityDays:     []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			SlotDurationMinutes:  20,
		},
		{
			ProviderID: "DR010", FirstName: "Patricia", LastName: "Miller",
			ProviderType: ProviderTypePhysician,
			Specialty:    "Primary Care", SubSpecialty: "Geriatric Medicine",
			Credentials: "MD",
			Location:    "Harbor Family Health Center - Temple", Address: "2700 South Clear Creek Rd",
			City: "Temple", Phone: "254-724-3000",
			AcceptingNewPatients: true,
			Languages:            []string{"English", "Spanish"},
			InsuranceAccepted:    []string{"Blue Cross Blue Shield", "Aetna", "United Healthcare", "Medicare", "Medicaid"},
			AvailabilityDays:     []string{"Monday", "Tuesday", "Wednesday", "Thursday"},
			SlotDurationMinutes:  30,
		},
	}

	policies := []InsurancePolicy{
		{
			CarrierName: "Blue Cross Blue Shield of Texas", PolicyType: "PPO",
			RequiresReferral:  []string{"Cardiology", "Orthopedic Surgery", "Neurology"},
			RequiresPriorAuth: []string{"MRI", "CT Scan", "Surgery", "Specialty Medications"},
			CopaySpecialist:   60.0, CopayPrimary: 30.0,
			Deductible: 1500.0, OutOfPocketMax: 6000.0,
			CoveredServices: []string{"Preventive care", "Specialist visits", "Surgery", "Imaging", "Lab work"},
			Notes:           "Requires PCP selection. Referrals must be obtained before specialist visits.",
		},
		{
			CarrierName: "Aetna", PolicyType: "HMO",
			RequiresReferral:  []string{"All Specialists"},
			RequiresPriorAuth: []string{"MRI", "CT Scan", "Surgery", "Specialty Medications", "Durable Medical Equipment"},
			CopaySpecialist:   50.0, CopayPrimary: 25.0,
			Deductible: 1000.0, OutOfPocketMax: 5000.0,
			CoveredServices: []string{"Preventive care", "Specialist visits", "Surgery", "Imaging", "Lab work"},
			Notes:           "Strict referral requirements. All specialist visits require PCP referral within last 90 days.",
		},
		{
			CarrierName: "United Healthcare", PolicyType: "PPO",
			RequiresPriorAuth: []string{"Surgery", "Advanced Imaging", "Specialty Medications"},
			CopaySpecialist:   50.0, CopayPrimary: 25.0,
			Deductible: 2000.0, OutOfPocketMax: 7000.0,
			CoveredServices: []string{"Preventive care", "Specialist visits", "Surgery", "Imaging", "Lab work"},
			Notes:           "No referral required for specialists. Prior auth required for elective procedures.",
		},
		{
			CarrierName: "Medicare", PolicyType: "Federal Insurance",
			RequiresPriorAuth: []string{"Part B Drugs", "Durable Medical Equipment", "Home Health"},
			Deductible:        226.0,
			CoveredServices:   []string{"Preventive care", "Specialist visits", "Surgery", "Imaging", "Lab work", "Hospital care"},
			Notes:             "No referral required. Part B covers outpatient services. 20% coinsurance after deductible.",
		},
		{
			CarrierName: "Medicaid", PolicyType: "State Insurance",
			RequiresReferral:  []string{"All Specialists"},
			RequiresPriorAuth: []string{"MRI", "CT Scan", "Surgery", "Specialty Medications", "DME"},
			CoveredServices:   []string{"Preventive care", "Specialist visits", "Surgery", "Imaging", "Lab work", "Prescriptions"},
			Notes:             "Must have active Medicaid eligibility. PCP referral required for all specialist visits.",
		},
	}

	protocols := []ClinicalProtocol{
		{
			ProtocolID: "PROTO001", Name: "Post-Operative Knee Replacement Follow-up",
			Specialty: "Orthopedic Surgery", Condition: "Knee Replacement (Post-Op)",
			RecommendedFollowUp: "2 weeks post-surgery, then 6 weeks, then 3 months",
			UrgencyLevel:        "routine",
			SpecialInstructions: "Check incision healing, assess range of motion, review physical therapy progress. Patient should bring PT notes.",
		},
		{
			ProtocolID: "PROTO002", Name: "Post-Operative Hip Replacement Follow-up",
			Specialty: "Orthopedic Surgery", Condition: "Hip Replacement (Post-Op)",
			RecommendedFollowUp: "2 weeks post-surgery, then 6 weeks, then 3 months, then annually",
			UrgencyLevel:        "routine",
			SpecialInstructions: "X-ray required at 6-week and 3-month visits. Assess gait and hip precautions compliance.",
		},
		{
			ProtocolID: "PROTO003", Name: "Cardiac Stress Test Follow-up",
			Specialty: "Cardiology", Condition: "Abnormal Stress Test",
			RecommendedFollowUp: "Within 1 week of test results",
			UrgencyLevel:        "urgent",
			SpecialInstructions: "Discuss test results, potential need for cardiac catheterization. NPO not required for consultation.",
		},
		{
			ProtocolID: "PROTO004", Name: "Atrial Fibrillation Monitoring",
			Specialty: "Cardiology", Condition: "Atrial Fibrillation",
			RecommendedFollowUp: "Every 3-6 months based on stability",
			UrgencyLevel:        "routine",
			SpecialInstructions: "Check INR if on warfarin. Review medication compliance and symptoms. EKG at each visit.",
		},
		{
			ProtocolID: "PROTO005", Name: "Heart Failure Management",
			Specialty: "Cardiology", Condition: "Congestive Heart Failure",
			RecommendedFollowUp: "Every 1-3 months based on NYHA class",
			UrgencyLevel:        "urgent",
			SpecialInstructions: "Daily weights monitoring. Check BNP levels. Assess fluid status and medication adjustment.",
		},
		{
			ProtocolID: "PROTO006", Name: "Diabetes Management",
			Specialty: "Primary Care", Condition: "Type 2 Diabetes",
			RecommendedFollowUp: "Every 3 months",
			UrgencyLevel:        "routine",
			SpecialInstructions: "Fasting labs required (A1C, lipid panel, CMP). Review blood glucose logs. Foot exam annually.",
		},
		{
			ProtocolID: "PROTO007", Name: "Hypertension Follow-up",
			Specialty: "Primary Care", Condition: "Hypertension",
			RecommendedFollowUp: "Every 3-6 months based on control",
			UrgencyLevel:        "routine",
			SpecialInstructions: "Bring home blood pressure log. Review medication compliance and side effects.",
		},
		{
			ProtocolID: "PROTO008", Name: "Annual Wellness Visit",
			Specialty: "Primary Care", Condition: "Preventive Care",
			RecommendedFollowUp: "Annually",
			UrgencyLevel:        "routine",
			SpecialInstructions: "Fasting labs recommended. Update immunizations. Age-appropriate cancer screenings.",
		},
		{
			ProtocolID: "PROTO009", Name: "Sports Injury Follow-up",
			Specialty: "Orthopedic Surgery", Condition: "Acute Sports Injury",
			RecommendedFollowUp: "2-4 weeks based on injury severity",
			UrgencyLevel:        "routine",
			SpecialInstructions: "Imaging may be required. Assess healing progress and return-to-play readiness.",
		},
		{
			ProtocolID: "PROTO010", Name: "Chest Pain Evaluation",
			Specialty: "Cardiology", Condition: "Chest Pain",
			RecommendedFollowUp: "Within 1 week if stable, same day if concerning features",
			UrgencyLevel:        "urgent",
			SpecialInstructions: "Patient should go to ER for acute/severe symptoms. Otherwise schedule urgent cardiology eval.",
		},
	}

	return patients, providers, policies, protocols
}
