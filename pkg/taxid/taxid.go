// Package taxid validates the checksummed tax identifiers carried by
// registry entities: the 14-digit fiscal identifier of an airline and the
// 11-digit personal identifier of a pilot. Both validators are pure
// predicates; malformed input yields false, never an error.
package taxid

var (
	companyWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	companyWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize strips every non-digit character from s.
func Normalize(s string) string {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	return string(digits)
}

// IsValidCompanyID reports whether s is a valid 14-digit fiscal identifier.
// Punctuation is stripped before validation.
func IsValidCompanyID(s string) bool {
	id := Normalize(s)

	if len(id) != 14 {
		return false
	}
	if allSameDigit(id) {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		sum += digitAt(id, i) * companyWeightsFirst[i]
	}
	first := checkDigitMod11(sum)

	sum = 0
	for i := 0; i < 13; i++ {
		sum += digitAt(id, i) * companyWeightsSecond[i]
	}
	second := checkDigitMod11(sum)

	return first == digitAt(id, 12) && second == digitAt(id, 13)
}

// IsValidPersonalID reports whether s is a valid 11-digit personal
// identifier. Punctuation is stripped before validation.
func IsValidPersonalID(s string) bool {
	id := Normalize(s)

	if len(id) != 11 {
		return false
	}
	if allSameDigit(id) {
		return false
	}

	sum := 0
	weight := 10
	for i := 0; i < 9; i++ {
		sum += digitAt(id, i) * weight
		weight--
	}
	first := 11 - (sum % 11)
	if first > 9 {
		first = 0
	}

	sum = 0
	weight = 11
	for i := 0; i < 10; i++ {
		sum += digitAt(id, i) * weight
		weight--
	}
	second := 11 - (sum % 11)
	if second > 9 {
		second = 0
	}

	return first == digitAt(id, 9) && second == digitAt(id, 10)
}

// checkDigitMod11 applies the mod-11 rule used by the fiscal identifier:
// remainder below 2 maps to 0, anything else to 11 minus the remainder.
func checkDigitMod11(sum int) int {
	mod := sum % 11
	if mod < 2 {
		return 0
	}
	return 11 - mod
}

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
