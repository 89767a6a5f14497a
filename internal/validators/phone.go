package validators

import "strings"

// IsPhoneValid accepts digits with an optional leading + and common
// separators, at least 5 digits total. Clients are matched by phone,
// so junk here pollutes the client base.
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= 5
}
