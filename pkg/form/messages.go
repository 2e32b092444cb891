package form

import "strings"

// Messages are the user facing strings of the submit cycle
type Messages struct {
	Pending string
	Success string
	Failure string
}

// DefaultMessages is the English table
var DefaultMessages = Messages{
	Pending: "Sending...",
	Success: "Thanks! I'll be in touch soon.",
	Failure: "Failed to send. Please try calling instead.",
}

var messageTable = map[string]Messages{
	"en": DefaultMessages,
	"es": {
		Pending: "Enviando...",
		Success: "¡Gracias! Me pondré en contacto pronto.",
		Failure: "No se pudo enviar. Por favor, intenta llamar.",
	},
}

// MessagesFor returns the table for a language tag such as "en-US",
// falling back to English
func MessagesFor(lang string) Messages {
	key := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(key, "-_"); i >= 0 {
		key = key[:i]
	}
	if m, ok := messageTable[key]; ok {
		return m
	}
	return DefaultMessages
}

func (m Messages) withDefaults() Messages {
	if m.Pending == "" {
		m.Pending = DefaultMessages.Pending
	}
	if m.Success == "" {
		m.Success = DefaultMessages.Success
	}
	if m.Failure == "" {
		m.Failure = DefaultMessages.Failure
	}
	return m
}
