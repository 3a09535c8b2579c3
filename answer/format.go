// Package answer turns a raw reply from the answer service into the final
// presented string. The language prefix is chosen from the *source* OCR
// text's script, not from the reply itself.
package answer

import (
	"regexp"
	"strings"
)

const (
	arabicPrefix = "الإجابة: "
	latinPrefix  = "Answer: "
)

// Leading numeric token: ASCII or Arabic-Indic digits, optional percent sign
// in either script, followed by whitespace and the answer body.
var leadingNumber = regexp.MustCompile(`(?s)^([0-9٠-٩]+[%٪]?)\s+(.*)$`)

// ContainsArabic reports whether s has any character in the Arabic block.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// Format assembles the displayed/copied answer string. A leading numeric
// token is held aside and re-attached ahead of the language prefix; when no
// token is present the output is just prefix+body with no stray space.
func Format(raw, source string) string {
	prefix := latinPrefix
	if ContainsArabic(source) {
		prefix = arabicPrefix
	}

	num, body := "", raw
	if m := leadingNumber.FindStringSubmatch(raw); m != nil {
		num, body = m[1], m[2]
	}

	return strings.TrimSpace(num + " " + prefix + body)
}
