package domain

import (
	"strings"
	"unicode"
)

// AcceptedEmailSuffix is the only email domain accepted at signup and login.
const AcceptedEmailSuffix = "@gmail.com"

// IsValidEmail reports whether email is non-empty and ends with the accepted
// domain suffix. This is a policy check, not RFC validation.
func IsValidEmail(email string) bool {
	return email != "" && strings.HasSuffix(email, AcceptedEmailSuffix)
}

// PasswordRules is the breakdown of the password composition policy, used by
// clients to render a live checklist next to the signup form.
type PasswordRules struct {
	HasUpper     bool `json:"has_upper"`
	HasLower     bool `json:"has_lower"`
	HasDigit     bool `json:"has_digit"`
	OnlyAlphaNum bool `json:"only_alphanumeric"`
}

// Satisfied reports whether every rule holds.
func (r PasswordRules) Satisfied() bool {
	return r.HasUpper && r.HasLower && r.HasDigit && r.OnlyAlphaNum
}

// CheckPassword evaluates each composition rule independently.
func CheckPassword(password string) PasswordRules {
	rules := PasswordRules{OnlyAlphaNum: password != ""}
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			rules.HasUpper = true
		case unicode.IsLower(c):
			rules.HasLower = true
		case unicode.IsDigit(c):
			rules.HasDigit = true
		}
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			rules.OnlyAlphaNum = false
		}
	}
	return rules
}

// IsValidPassword reports whether password has at least one upper case
// letter, one lower case letter and one digit, and nothing but letters and
// digits. The empty string is never valid.
func IsValidPassword(password string) bool {
	return CheckPassword(password).Satisfied()
}
