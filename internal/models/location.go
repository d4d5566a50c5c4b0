package models

// SpyLocation is the reserved symbol table entry used for the spy's clue.
const SpyLocation = "Spy"

// LocationIndex lists every location that can be chosen as the secret.
type LocationIndex struct {
	Name      string   `json:"name"`
	Locations []string `json:"locations"`
}

// CardSymbolTable maps a location (or SpyLocation) to the clue for each card id.
type CardSymbolTable map[string]map[int]string

// Symbol looks up the clue for card under location.
func (t CardSymbolTable) Symbol(location string, card int) (string, bool) {
	cards, ok := t[location]
	if !ok {
		return "", false
	}
	symbol, ok := cards[card]
	return symbol, ok
}
