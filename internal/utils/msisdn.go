package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// PREFIXES defines the valid prefixes for supported operators
var PREFIXES = struct {
	SAFARICOM []string
}{
	SAFARICOM: []string{"70", "71", "72", "74", "75", "79", "110", "111", "112", "113", "114", "115"},
}

// ValidateMSISDN validates a phone number and normalizes it to the
// 2547XXXXXXXX form the Daraja API expects for STK push.
func ValidateMSISDN(msisdn string) (bool, string, error) {
	// Clean the input by removing any non-digit characters
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code if present (254 for Kenya)
	if strings.HasPrefix(stripped, "254") {
		stripped = stripped[3:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	// Create pattern for Safaricom numbers: 9 digits after the country code
	pattern := fmt.Sprintf("^(%s)\\d+$", strings.Join(PREFIXES.SAFARICOM, "|"))
	isValid := regexp.MustCompile(pattern).MatchString(stripped) && len(stripped) == 9

	if !isValid {
		return false, "", fmt.Errorf("invalid MSISDN format or not a Safaricom number")
	}

	// Format with country code
	formatted := "254" + stripped

	return true, formatted, nil
}
