package validation

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Indian mobile numbers: optional +91/0 prefix then ten digits starting 6-9.
var mobileRe = regexp.MustCompile(`^(?:\+?91|0)?[6-9]\d{9}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidMobile ignores spaces and dashes.
func IsValidMobile(mobile string) bool {
	m := strings.NewReplacer(" ", "", "-", "").Replace(mobile)
	return mobileRe.MatchString(m)
}

// ContactProblems returns a field -> message map for optional contact fields
// that are present but malformed. Blank fields are allowed.
func ContactProblems(email, ccEmail, mobile string) map[string]string {
	out := map[string]string{}
	if email = strings.TrimSpace(email); email != "" && !IsValidEmail(email) {
		out["email"] = "invalid email address"
	}
	if ccEmail = strings.TrimSpace(ccEmail); ccEmail != "" {
		for _, e := range strings.FieldsFunc(ccEmail, func(r rune) bool { return r == ',' || r == ';' }) {
			if !IsValidEmail(strings.TrimSpace(e)) {
				out["ccEmail"] = "invalid cc email address"
				break
			}
		}
	}
	if mobile = strings.TrimSpace(mobile); mobile != "" && !IsValidMobile(mobile) {
		out["mobile"] = "invalid mobile number"
	}
	return out
}
