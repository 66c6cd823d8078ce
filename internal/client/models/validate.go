package models

import (
	"regexp"
	"strings"

	"github.com/sustena/console/internal/common"
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	codeRe  = regexp.MustCompile(`^\d{5}$`)
	maskRe  = regexp.MustCompile(`^(.{3}).+(@.+)$`)
)

// passwordSymbols is the special-character set accepted by the reset policy.
const passwordSymbols = "@$!%*#?&"

// ValidateEmail checks the address has a plausible mailbox@host.domain form.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return common.ErrInvalidEmail
	}
	return nil
}

// ValidateLogin checks credentials before a login request is constructed.
func ValidateLogin(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return common.ErrEmptyPassword
	}
	return nil
}

// ValidateCode accepts exactly five decimal digits.
func ValidateCode(code string) error {
	if !codeRe.MatchString(code) {
		return common.ErrInvalidCode
	}
	return nil
}

// ValidatePassword enforces the reset policy: at least 8 characters with at
// least one letter, one digit and one symbol from the fixed set.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return common.ErrWeakPassword
	}
	var letter, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if !letter || !digit || !symbol {
		return common.ErrWeakPassword
	}
	return nil
}

// MaskEmail obscures the mailbox part the way the verification screen does:
// "username@host" becomes "use********@host". Addresses too short to mask
// are returned unchanged.
func MaskEmail(email string) string {
	return maskRe.ReplaceAllString(email, "$1********$2")
}
