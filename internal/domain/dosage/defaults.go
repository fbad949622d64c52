package dosage

import "sync"

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// DefaultTable devuelve la tabla embebida. Se construye una sola vez.
func DefaultTable() *Table {
	defaultOnce.Do(func() {
		defaultTable = mustTable(defaultFamilies...)
	})
	return defaultTable
}

var defaultFamilies = []Family{
	{
		Key:      "paracetamol",
		Aliases:  []string{"acetaminophen", "tylenol", "crocin", "dolo", "calpol", "panadol"},
		Category: "Pain Relief",
		Rules: []Rule{
			{
				AgeGroup: "Infants (0-1 years)", MinAge: 0, MaxAge: 2,
				Dosage: "Consult a pediatrician", Frequency: "As directed by a doctor", MaxDaily: "As directed by a doctor",
				Notes: "Infant dosing depends on weight; use only the infant formulation.",
			},
			{
				AgeGroup: "Children (2-11 years)", MinAge: 2, MaxAge: 12,
				Dosage: "10-15 mg/kg", Frequency: "Every 4-6 hours", MaxDaily: "60 mg/kg (no more than 5 doses in 24 hours)",
				Notes: "Use a pediatric syrup or dispersible tablet and the provided measuring device.",
			},
			{
				AgeGroup: "Adults (12-64 years)", MinAge: 12, MaxAge: 65,
				Dosage: "500-1000 mg", Frequency: "Every 4-6 hours", MaxDaily: "4000 mg",
				Notes: "Avoid alcohol. Check other products for hidden paracetamol.",
				GenderNotes: map[Gender]string{
					GenderFemale: "Generally considered the preferred analgesic during pregnancy; confirm with your doctor.",
				},
			},
			{
				AgeGroup: "Older adults (65+ years)", MinAge: 65, MaxAge: 150,
				Dosage: "500 mg", Frequency: "Every 6 hours", MaxDaily: "3000 mg",
				Notes: "Lower maximum recommended for older adults and people with liver problems.",
			},
		},
	},
	{
		Key:      "ibuprofen",
		Aliases:  []string{"advil", "motrin", "brufen", "nurofen"},
		Category: "Pain Relief",
		Rules: []Rule{
			{
				AgeGroup: "Infants (under 6 months)", MinAge: 0, MaxAge: 1,
				Dosage: "Not recommended", Frequency: "-", MaxDaily: "-",
				Notes: "Do not give to infants under 6 months without medical advice.",
			},
			{
				AgeGroup: "Children (1-11 years)", MinAge: 1, MaxAge: 12,
				Dosage: "5-10 mg/kg", Frequency: "Every 6-8 hours", MaxDaily: "40 mg/kg",
				Notes: "Give with food or milk.",
			},
			{
				AgeGroup: "Adults (12-64 years)", MinAge: 12, MaxAge: 65,
				Dosage: "200-400 mg", Frequency: "Every 4-6 hours", MaxDaily: "1200 mg (OTC)",
				Notes: "Take with food. Avoid if you have stomach ulcers or kidney disease.",
				GenderNotes: map[Gender]string{
					GenderFemale: "Avoid during pregnancy, especially in the third trimester.",
				},
			},
			{
				AgeGroup: "Older adults (65+ years)", MinAge: 65, MaxAge: 150,
				Dosage: "200 mg", Frequency: "Every 6-8 hours", MaxDaily: "800 mg",
				Notes: "Higher risk of stomach bleeding and kidney effects; use the lowest effective dose.",
			},
		},
	},
	{
		Key:      "aspirin",
		Aliases:  []string{"acetylsalicylic acid", "disprin", "ecosprin", "bayer"},
		Category: "Pain Relief",
		Rules: []Rule{
			{
				AgeGroup: "Children and teenagers (0-15 years)", MinAge: 0, MaxAge: 16,
				Dosage: "Not recommended", Frequency: "-", MaxDaily: "-",
				Notes: "Risk of Reye's syndrome. Do not use unless prescribed.",
			},
			{
				AgeGroup: "Adults (16-64 years)", MinAge: 16, MaxAge: 65,
				Dosage: "300-600 mg", Frequency: "Every 4-6 hours", MaxDaily: "4000 mg",
				Notes: "Take with food. Not for people with bleeding disorders.",
				GenderNotes: map[Gender]string{
					GenderFemale: "Avoid in late pregnancy and while breastfeeding unless prescribed.",
				},
			},
			{
				AgeGroup: "Older adults (65+ years)", MinAge: 65, MaxAge: 150,
				Dosage: "300 mg", Frequency: "Every 6 hours", MaxDaily: "2000 mg",
				Notes: "Increased bleeding risk; low-dose cardiac aspirin only under supervision.",
			},
		},
	},
	{
		Key:      "cetirizine",
		Aliases:  []string{"zyrtec", "okacet", "cetzine", "alerid"},
		Category: "Allergy",
		Rules: []Rule{
			{
				AgeGroup: "Toddlers (0-1 years)", MinAge: 0, MaxAge: 2,
				Dosage: "Consult a pediatrician", Frequency: "-", MaxDaily: "-",
			},
			{
				AgeGroup: "Children (2-5 years)", MinAge: 2, MaxAge: 6,
				Dosage: "2.5 mg", Frequency: "Once or twice daily", MaxDaily: "5 mg",
			},
			{
				AgeGroup: "Children and adults (6-64 years)", MinAge: 6, MaxAge: 65,
				Dosage: "10 mg", Frequency: "Once daily", MaxDaily: "10 mg",
				Notes: "May cause drowsiness.",
			},
			{
				AgeGroup: "Older adults (65+ years)", MinAge: 65, MaxAge: 150,
				Dosage: "5 mg", Frequency: "Once daily", MaxDaily: "5 mg",
				Notes: "Start low; more sensitive to drowsiness.",
			},
		},
	},
	{
		Key:      "loratadine",
		Aliases:  []string{"claritin", "lorfast"},
		Category: "Allergy",
		Rules: []Rule{
			{
				AgeGroup: "Children (2-5 years)", MinAge: 2, MaxAge: 6,
				Dosage: "5 mg", Frequency: "Once daily", MaxDaily: "5 mg",
			},
			{
				AgeGroup: "Children and adults (6+ years)", MinAge: 6, MaxAge: 150,
				Dosage: "10 mg", Frequency: "Once daily", MaxDaily: "10 mg",
			},
		},
	},
	{
		Key:      "amoxicillin",
		Aliases:  []string{"amoxil", "mox", "novamox"},
		Category: "Antibiotic",
		Rules: []Rule{
			{
				AgeGroup: "Children (0-11 years)", MinAge: 0, MaxAge: 12,
				Dosage: "20-40 mg/kg/day divided", Frequency: "Every 8 hours", MaxDaily: "As prescribed",
				Notes: "Prescription only. Complete the full course.",
			},
			{
				AgeGroup: "Adults (12+ years)", MinAge: 12, MaxAge: 150,
				Dosage: "250-500 mg", Frequency: "Every 8 hours", MaxDaily: "As prescribed",
				Notes: "Prescription only. Complete the full course.",
			},
		},
	},
	{
		Key:      "omeprazole",
		Aliases:  []string{"prilosec", "omez", "losec"},
		Category: "Antacid",
		Rules: []Rule{
			{
				AgeGroup: "Children (1-11 years)", MinAge: 1, MaxAge: 12,
				Dosage: "Consult a pediatrician", Frequency: "-", MaxDaily: "-",
			},
			{
				AgeGroup: "Adults (12+ years)", MinAge: 12, MaxAge: 150,
				Dosage: "20 mg", Frequency: "Once daily before breakfast", MaxDaily: "40 mg",
				Notes: "Do not use for more than 14 days without medical advice.",
			},
		},
	},
	{
		Key:      "metformin",
		Aliases:  []string{"glucophage", "glycomet"},
		Category: "Diabetes",
		Rules: []Rule{
			{
				AgeGroup: "Children (0-9 years)", MinAge: 0, MaxAge: 10,
				Dosage: "Not recommended", Frequency: "-", MaxDaily: "-",
			},
			{
				AgeGroup: "Children and adults (10-79 years)", MinAge: 10, MaxAge: 80,
				Dosage: "500 mg", Frequency: "Once or twice daily with meals", MaxDaily: "2000 mg (as prescribed)",
				Notes: "Prescription only.",
				GenderNotes: map[Gender]string{
					GenderFemale: "Tell your doctor if you are pregnant or planning pregnancy.",
				},
			},
			{
				AgeGroup: "Older adults (80+ years)", MinAge: 80, MaxAge: 150,
				Dosage: "500 mg", Frequency: "Once daily with a meal", MaxDaily: "1000 mg (as prescribed)",
				Notes: "Kidney function should be checked regularly.",
			},
		},
	},
	{
		Key:      "dextromethorphan",
		Aliases:  []string{"robitussin", "benadryl dr", "delsym"},
		Category: "Cough",
		Rules: []Rule{
			{
				AgeGroup: "Children (0-3 years)", MinAge: 0, MaxAge: 4,
				Dosage: "Not recommended", Frequency: "-", MaxDaily: "-",
			},
			{
				AgeGroup: "Children (4-11 years)", MinAge: 4, MaxAge: 12,
				Dosage: "5-10 mg", Frequency: "Every 4 hours", MaxDaily: "60 mg",
			},
			{
				AgeGroup: "Adults (12+ years)", MinAge: 12, MaxAge: 150,
				Dosage: "10-20 mg", Frequency: "Every 4 hours", MaxDaily: "120 mg",
				Notes: "Do not combine with MAO inhibitors.",
			},
		},
	},
}
