package safety

import "strings"

// Matches reports whether any token occurs as a case-insensitive
// substring of text.
func Matches(text string, tokens []string) bool {
	s := strings.ToLower(text)
	for _, tok := range tokens {
		if tok != "" && strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// Screen is the outcome of applying avoid/limit tokens to one item.
type Screen struct {
	// Removed is true when an avoid token matched; the item must be dropped.
	Removed bool

	// Flag is LIMITED when a limit token matched on a retained item.
	Flag Flag
}

// ScreenItem applies a medical rule to the matched text of one item.
// Avoid wins over limit: a removed item is never also flagged.
func (m MedicalRule) ScreenItem(text string) Screen {
	if Matches(text, m.AvoidTokens) {
		return Screen{Removed: true}
	}
	if Matches(text, m.LimitTokens) {
		return Screen{Flag: FlagLimited}
	}
	return Screen{Flag: FlagOK}
}
