package drugs

// DefaultCatalog es el dataset local embebido. Devuelve una copia nueva en cada
// llamada: quien la recibe puede anexar candidatos del usuario sin afectar a otros.
func DefaultCatalog() []Candidate {
	out := make([]Candidate, len(catalog))
	copy(out, catalog)
	return out
}

var catalog = []Candidate{
	{Name: "Paracetamol", Category: "Pain Relief", Dosage: "500 mg tablet", Description: "Relieves mild to moderate pain and reduces fever.", Source: SourceLocal},
	{Name: "Ibuprofen", Category: "Pain Relief", Dosage: "200-400 mg tablet", Description: "Anti-inflammatory painkiller for pain, swelling and fever.", Source: SourceLocal},
	{Name: "Aspirin", Category: "Pain Relief", Dosage: "300 mg tablet", Description: "Pain reliever; low dose used for heart protection.", Source: SourceLocal},
	{Name: "Naproxen", Category: "Pain Relief", Dosage: "250 mg tablet", Description: "Long-acting anti-inflammatory for joint and back pain.", Source: SourceLocal},
	{Name: "Diclofenac Gel", Category: "Pain Relief", Dosage: "Apply 3-4 times daily", Description: "Topical anti-inflammatory for muscle and joint pain.", Source: SourceLocal},
	{Name: "Cetirizine", Category: "Allergy", Dosage: "10 mg tablet", Description: "Antihistamine for sneezing, runny nose and itching.", Source: SourceLocal},
	{Name: "Loratadine", Category: "Allergy", Dosage: "10 mg tablet", Description: "Non-drowsy antihistamine for hay fever and hives.", Source: SourceLocal},
	{Name: "Fexofenadine", Category: "Allergy", Dosage: "120 mg tablet", Description: "Antihistamine for seasonal allergy symptoms.", Source: SourceLocal},
	{Name: "Omeprazole", Category: "Antacid", Dosage: "20 mg capsule", Description: "Reduces stomach acid; used for heartburn and reflux.", Source: SourceLocal},
	{Name: "Pantoprazole", Category: "Antacid", Dosage: "40 mg tablet", Description: "Proton pump inhibitor for acidity and ulcers.", Source: SourceLocal},
	{Name: "Ranitidine", Category: "Antacid", Dosage: "150 mg tablet", Description: "Reduces acid production for indigestion.", Source: SourceLocal},
	{Name: "Loperamide", Category: "Digestive", Dosage: "2 mg capsule", Description: "Slows bowel movements to treat diarrhea.", Source: SourceLocal},
	{Name: "Oral Rehydration Salts", Category: "Digestive", Dosage: "1 sachet in 1 L water", Description: "Replaces fluids and electrolytes lost through diarrhea.", Source: SourceLocal},
	{Name: "Ondansetron", Category: "Antiemetic", Dosage: "4 mg tablet", Description: "Prevents nausea and vomiting.", Source: SourceLocal},
	{Name: "Amoxicillin", Category: "Antibiotic", Dosage: "500 mg capsule", Description: "Penicillin antibiotic for bacterial infections.", Source: SourceLocal},
	{Name: "Azithromycin", Category: "Antibiotic", Dosage: "500 mg tablet", Description: "Macrolide antibiotic for respiratory infections.", Source: SourceLocal},
	{Name: "Metformin", Category: "Diabetes", Dosage: "500 mg tablet", Description: "Lowers blood sugar in type 2 diabetes.", Source: SourceLocal},
	{Name: "Amlodipine", Category: "Blood Pressure", Dosage: "5 mg tablet", Description: "Calcium channel blocker for high blood pressure.", Source: SourceLocal},
	{Name: "Losartan", Category: "Blood Pressure", Dosage: "50 mg tablet", Description: "Angiotensin receptor blocker for hypertension.", Source: SourceLocal},
	{Name: "Atorvastatin", Category: "Cardiovascular", Dosage: "10 mg tablet", Description: "Lowers cholesterol to protect the heart.", Source: SourceLocal},
	{Name: "Warfarin", Category: "Cardiovascular", Dosage: "5 mg tablet", Description: "Blood thinner; prevents clots.", Source: SourceLocal},
	{Name: "Dextromethorphan Syrup", Category: "Cough", Dosage: "10 ml every 4 hours", Description: "Cough suppressant for dry cough.", Source: SourceLocal},
	{Name: "Guaifenesin", Category: "Cough", Dosage: "200-400 mg", Description: "Expectorant that loosens chest congestion.", Source: SourceLocal},
	{Name: "Phenylephrine", Category: "Cold", Dosage: "10 mg tablet", Description: "Decongestant for blocked nose due to cold.", Source: SourceLocal},
	{Name: "Melatonin", Category: "Sleep Aid", Dosage: "3 mg tablet", Description: "Helps regulate sleep for insomnia and jet lag.", Source: SourceLocal},
	{Name: "Vitamin D3", Category: "Vitamins", Dosage: "1000 IU", Description: "Supports bone health.", Source: SourceLocal},
}
