package chat

import "time"

const (
	defaultOutOfDomainMessage = "I am a medical assistant and can only answer health-related questions."
	defaultNoInfoMessage      = "I'm sorry, I couldn't find information on that topic. Please consult a qualified healthcare professional."

	// Augmentations keep the **…** emphasis markers so they survive
	// translate-out; conversion to bold tags happens on the final text.
	defaultUrgentCareWarning   = "**Based on your query, your symptoms could be serious. Please consult a doctor immediately.**"
	defaultGeneratedDisclaimer = "⚠️ **Disclaimer**: I'm an AI, not a doctor. Please consult a healthcare professional for serious issues."

	defaultGenerateTimeout = 15 * time.Second
)

// Config holds the orchestrator's fixed messages and the generative-call
// timeout bound. Empty fields fall back to the defaults above.
type Config struct {
	OutOfDomainMessage   string
	NoInformationMessage string
	UrgentCareWarning    string
	GeneratedDisclaimer  string
	GenerateTimeout      time.Duration
}

func (c Config) withDefaults() Config {
	if c.OutOfDomainMessage == "" {
		c.OutOfDomainMessage = defaultOutOfDomainMessage
	}
	if c.NoInformationMessage == "" {
		c.NoInformationMessage = defaultNoInfoMessage
	}
	if c.UrgentCareWarning == "" {
		c.UrgentCareWarning = defaultUrgentCareWarning
	}
	if c.GeneratedDisclaimer == "" {
		c.GeneratedDisclaimer = defaultGeneratedDisclaimer
	}
	if c.GenerateTimeout <= 0 {
		c.GenerateTimeout = defaultGenerateTimeout
	}
	return c
}
