// Role classification by keyword precedence over the job title.

package classify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role is the fixed category vocabulary for job titles.
type Role string

const (
	RoleEmbeddedSystems Role = "embedded-systems"
	RoleFirmware        Role = "firmware"
	RoleHardware        Role = "hardware"
	RoleEmbeddedGeneral Role = "embedded-general"
	RoleSoftware        Role = "software"
	RoleEngineering     Role = "engineering"
	RoleOther           Role = "other"
)

// hw/sw are matched as whole words so "Hwy" or "swim" stay out.
var (
	hwWordRegex = regexp.MustCompile(`\bhw\b`)
	swWordRegex = regexp.MustCompile(`\bsw\b`)
)

// fold lowercases and strips combining marks so titles from German
// boards ("Entwickler für Firmware") match the ascii keyword table.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Classify maps a free-text title to a Role. Rule order is significant:
// "embedded"+"system" is checked before the bare "embedded" rule, and
// the first rule that matches wins.
func Classify(title string) Role {
	t := fold(title)
	switch {
	case strings.Contains(t, "embedded") && strings.Contains(t, "system"):
		return RoleEmbeddedSystems
	case strings.Contains(t, "firmware") || strings.Contains(t, "fpga"):
		return RoleFirmware
	case strings.Contains(t, "hardware") || strings.Contains(t, "pcb") || hwWordRegex.MatchString(t):
		return RoleHardware
	case strings.Contains(t, "software") || swWordRegex.MatchString(t):
		return RoleSoftware
	case strings.Contains(t, "embedded"):
		return RoleEmbeddedGeneral
	case strings.Contains(t, "engineer"):
		return RoleEngineering
	default:
		return RoleOther
	}
}
