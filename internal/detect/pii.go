// Package detect classifies raw query strings before any matching happens:
// personal-information patterns and advice-request triggers.
package detect

import "regexp"

// PIIKind names a class of personal information found in a query.
type PIIKind string

const (
	// KindPAN is the 5-letter 4-digit 1-letter tax identifier.
	KindPAN PIIKind = "PAN"
	// KindAadhaar is the 12-digit national identity number.
	KindAadhaar PIIKind = "Aadhaar"
	// KindAccount is a bank account number (9 to 18 digits).
	KindAccount PIIKind = "Account Number"
)

// PAN matching is case-sensitive on purpose: a lowercased token is not a
// valid PAN and is not flagged.
var (
	panPattern     = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)
	aadhaarPattern = regexp.MustCompile(`\b\d{4}\s?\d{4}\s?\d{4}\b`)
	accountPattern = regexp.MustCompile(`\b\d{9,18}\b`)
)

// PII reports whether the query contains personal information and which
// kinds were found. Kinds are independent: a 12-digit run satisfies both
// the Aadhaar and the account-number pattern and is reported as both.
func PII(query string) (bool, []PIIKind) {
	var kinds []PIIKind

	if panPattern.MatchString(query) {
		kinds = append(kinds, KindPAN)
	}
	if aadhaarPattern.MatchString(query) {
		kinds = append(kinds, KindAadhaar)
	}
	if accountPattern.MatchString(query) {
		kinds = append(kinds, KindAccount)
	}

	return len(kinds) > 0, kinds
}
