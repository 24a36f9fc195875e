package smartpad

import "strings"

// PortSelector picks a port name from the available MIDI outputs, returning
// "" when nothing suitable is present. Keeping the strategy outside the
// Session lets callers swap in their own detection.
type PortSelector func(available []string) string

// KeywordSelector returns a selector matching the first port whose name
// contains any of the keywords, case-insensitively.
func KeywordSelector(keywords ...string) PortSelector {
	return func(available []string) string {
		for _, name := range available {
			lower := strings.ToLower(name)
			for _, kw := range keywords {
				if strings.Contains(lower, strings.ToLower(kw)) {
					return name
				}
			}
		}
		return ""
	}
}

// DefaultSelector matches the port names the SmartPad registers under on
// the common platforms.
func DefaultSelector() PortSelector {
	return KeywordSelector("smartpad", "midiplus", "usb midi")
}
