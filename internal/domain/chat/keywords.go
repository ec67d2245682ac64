package chat

// DefaultMedicalKeywords is the fixed lexical set the relevance classifier
// matches against: symptoms, conditions, institutions, and meta-questions
// about the assistant itself. It is configuration data, overridable through
// the config file without code changes.
func DefaultMedicalKeywords() []string {
	return []string{
		"fever", "cough", "headache", "diabetes", "hypertension", "medicine", "symptom",
		"treatment", "virus", "infection", "health", "asthma", "allergy", "cancer",
		"covid", "flu", "pain", "inflammation", "nausea", "vomiting", "diarrhea",
		"fatigue", "insomnia", "depression", "anxiety", "arthritis", "vaccine",
		"heart", "lungs", "brain", "stomach", "kidneys", "doctor", "hospital", "clinic",
		"prescription", "pharmacy", "blood pressure", "heart attack", "stroke", "emergency",
		"name", "who created you", "developer", "team", "about you",
		"purpose", "goal", "what can you do", "features", "capabilities",
		"book appointment", "appointment", "schedule", "help",
		"india", "indian government", "mohfw", "ministry of health",
		"ors", "hospital website", "state health portal",
		"trusted sources", "who", "world health organization",
		"health ministry", "helpline", "emergency number",
		"library", "books", "read", "knowledge base",
	}
}

// DefaultSeverityPhrases is the disjoint set of emergency-level phrases the
// severity detector scans for.
func DefaultSeverityPhrases() []string {
	return []string{
		"chest pain", "difficulty breathing", "severe pain", "unconscious",
		"seizure", "heavy bleeding", "stroke symptoms", "suicidal", "emergency",
	}
}
