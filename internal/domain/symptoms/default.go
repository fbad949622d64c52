package symptoms

import "sync"

var (
	defaultOnce  sync.Once
	defaultIndex *Index
)

// Default devuelve el índice embebido (en / es / hi + romanización).
func Default() *Index {
	defaultOnce.Do(func() {
		defaultIndex = New(defaultEntries)
	})
	return defaultIndex
}

var defaultEntries = []Entry{
	{
		Tokens: []string{"headache", "head", "migraine", "dolor de cabeza", "cabeza", "jaqueca", "sir dard", "sirdard", "sir", "सिरदर्द", "सिर"},
		Hints:  []string{"pain relief", "paracetamol", "ibuprofen", "aspirin"},
	},
	{
		Tokens: []string{"fever", "temperature", "fiebre", "calentura", "bukhar", "bukhaar", "बुखार"},
		Hints:  []string{"fever", "pain relief", "paracetamol", "ibuprofen"},
	},
	{
		Tokens: []string{"pain", "ache", "body ache", "dolor", "dard", "दर्द"},
		Hints:  []string{"pain relief", "paracetamol", "ibuprofen", "naproxen"},
	},
	{
		Tokens: []string{"toothache", "tooth", "dolor de muelas", "muela", "daant", "daant dard", "दांत"},
		Hints:  []string{"pain relief", "ibuprofen", "paracetamol"},
	},
	{
		Tokens: []string{"back", "back pain", "espalda", "kamar", "kamar dard", "कमर"},
		Hints:  []string{"pain relief", "ibuprofen", "naproxen"},
	},
	{
		Tokens: []string{"cough", "tos", "khansi", "khaansi", "खांसी"},
		Hints:  []string{"cough", "cold", "dextromethorphan"},
	},
	{
		Tokens: []string{"cold", "runny nose", "resfriado", "gripe", "zukam", "jukam", "sardi", "जुकाम", "सर्दी"},
		Hints:  []string{"cold", "allergy", "cetirizine", "antihistamine"},
	},
	{
		Tokens: []string{"allergy", "allergies", "sneezing", "itching", "alergia", "picazón", "khujli", "खुजली", "एलर्जी"},
		Hints:  []string{"allergy", "antihistamine", "cetirizine", "loratadine"},
	},
	{
		Tokens: []string{"acidity", "heartburn", "reflux", "acidez", "gastritis", "acidity", "jalan", "एसिडिटी"},
		Hints:  []string{"antacid", "digestive", "omeprazole", "pantoprazole"},
	},
	{
		Tokens: []string{"stomach", "stomachache", "stomach ache", "estómago", "estomago", "pet", "pet dard", "पेट"},
		Hints:  []string{"digestive", "antacid", "omeprazole"},
	},
	{
		Tokens: []string{"diarrhea", "diarrhoea", "diarrea", "dast", "दस्त"},
		Hints:  []string{"digestive", "loperamide", "oral rehydration"},
	},
	{
		Tokens: []string{"infection", "infección", "infeccion", "sankraman", "संक्रमण"},
		Hints:  []string{"antibiotic", "amoxicillin", "azithromycin"},
	},
	{
		Tokens: []string{"diabetes", "sugar", "blood sugar", "azúcar", "azucar", "madhumeh", "मधुमेह", "शुगर"},
		Hints:  []string{"diabetes", "metformin"},
	},
	{
		Tokens: []string{"blood pressure", "hypertension", "bp", "presión", "presion", "hipertensión", "hipertension", "रक्तचाप"},
		Hints:  []string{"blood pressure", "cardiovascular", "amlodipine", "losartan"},
	},
	{
		Tokens: []string{"heart", "corazón", "corazon", "dil", "दिल"},
		Hints:  []string{"cardiovascular", "aspirin"},
	},
	{
		Tokens: []string{"sleep", "insomnia", "insomnio", "neend", "नींद"},
		Hints:  []string{"sleep aid", "melatonin"},
	},
	{
		Tokens: []string{"nausea", "vomiting", "náusea", "nausea", "vómito", "vomito", "ulti", "उल्टी"},
		Hints:  []string{"antiemetic", "ondansetron", "digestive"},
	},
}
