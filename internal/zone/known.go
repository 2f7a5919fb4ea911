package zone

import (
	"slices"
	"strings"
)

var knownZones = []string{
	"Africa/Abidjan", "Africa/Cairo", "Africa/Casablanca", "Africa/Johannesburg",
	"Africa/Lagos", "Africa/Nairobi",
	"America/Anchorage", "America/Argentina/Buenos_Aires", "America/Bogota",
	"America/Caracas", "America/Chicago", "America/Denver", "America/Halifax",
	"America/Lima", "America/Los_Angeles", "America/Mexico_City", "America/New_York",
	"America/Phoenix", "America/Santiago", "America/Sao_Paulo", "America/St_Johns",
	"America/Toronto", "America/Vancouver",
	"Asia/Bangkok", "Asia/Dhaka", "Asia/Dubai", "Asia/Hong_Kong", "Asia/Jakarta",
	"Asia/Jerusalem", "Asia/Karachi", "Asia/Kathmandu", "Asia/Kolkata", "Asia/Manila",
	"Asia/Riyadh", "Asia/Seoul", "Asia/Shanghai", "Asia/Singapore", "Asia/Taipei",
	"Asia/Tehran", "Asia/Tokyo",
	"Atlantic/Azores", "Atlantic/Reykjavik",
	"Australia/Adelaide", "Australia/Brisbane", "Australia/Perth", "Australia/Sydney",
	"Europe/Amsterdam", "Europe/Athens", "Europe/Berlin", "Europe/Dublin",
	"Europe/Helsinki", "Europe/Istanbul", "Europe/Lisbon", "Europe/London",
	"Europe/Madrid", "Europe/Moscow", "Europe/Paris", "Europe/Rome",
	"Europe/Stockholm", "Europe/Warsaw", "Europe/Zurich",
	"Pacific/Auckland", "Pacific/Chatham", "Pacific/Fiji", "Pacific/Honolulu",
	"UTC",
}

// Known returns the built-in zone list, sorted.
func Known() []string {
	return slices.Clone(knownZones)
}

// Lookup returns the canonical spelling of a known zone, matching case
// insensitively.
func Lookup(name string) (string, bool) {
	want := strings.TrimSpace(name)
	for _, z := range knownZones {
		if strings.EqualFold(z, want) {
			return z, true
		}
	}
	return "", false
}

// Complete returns the known zones containing fragment, case insensitively,
// in list order.
func Complete(fragment string) []string {
	needle := strings.ToLower(strings.TrimSpace(fragment))
	if needle == "" {
		return nil
	}
	var out []string
	for _, z := range knownZones {
		if strings.Contains(strings.ToLower(z), needle) {
			out = append(out, z)
		}
	}
	return out
}
