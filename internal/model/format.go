package model

import "fmt"

// formatPhone renders a bare 10-digit number as (XXX) XXX-XXXX.
// Anything else is returned unchanged.
func formatPhone(phone string) string {
	if len(phone) != 10 {
		return phone
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return phone
		}
	}
	return fmt.Sprintf("(%s) %s-%s", phone[:3], phone[3:6], phone[6:])
}
