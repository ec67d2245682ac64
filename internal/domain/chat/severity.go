package chat

import "strings"

// SeverityDetector flags emergency-level symptom phrasing. It only decides
// whether the urgent-care warning is appended; it never gates the answer.
type SeverityDetector struct {
	phrases []string
}

// NewSeverityDetector builds a detector over the emergency phrase set.
func NewSeverityDetector(phrases []string) *SeverityDetector {
	kept := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase != "" {
			kept = append(kept, phrase)
		}
	}
	return &SeverityDetector{phrases: kept}
}

// HasSeriousSymptoms is a case-insensitive substring scan. Unlike the
// relevance classifier it does not normalize punctuation, so phrase spacing
// is preserved.
func (d *SeverityDetector) HasSeriousSymptoms(query string) bool {
	if query == "" {
		return false
	}
	lowered := strings.ToLower(query)
	for _, phrase := range d.phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
