package service

import "strings"

// FormatCPF renders an 11-digit CPF as XXX.XXX.XXX-XX. Already-formatted
// input comes back unchanged; anything else is returned as-is.
func FormatCPF(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) != 11 {
		return raw
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// FormatPhone renders 10/11-digit Brazilian numbers as (XX) XXXX-XXXX or
// (XX) XXXXX-XXXX.
func FormatPhone(raw string) string {
	digits := onlyDigits(raw)
	switch len(digits) {
	case 10:
		return "(" + digits[0:2] + ") " + digits[2:6] + "-" + digits[6:10]
	case 11:
		return "(" + digits[0:2] + ") " + digits[2:7] + "-" + digits[7:11]
	}
	return raw
}

func onlyDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isValidCPF(raw string) bool {
	return len(onlyDigits(raw)) == 11
}

func isValidPhone(raw string) bool {
	n := len(onlyDigits(raw))
	return n == 10 || n == 11
}
