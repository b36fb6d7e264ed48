package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// VATGroup is the tax-rate class printed next to every sold line.
type VATGroup int

const (
	VATGroupUnset VATGroup = 0
	VATGroupA     VATGroup = 1
	VATGroupB     VATGroup = 2
	VATGroupC     VATGroup = 3
	VATGroupD     VATGroup = 4
)

// DefaultVATGroup is used for lines that never had a group chosen.
const DefaultVATGroup = VATGroupB

var vatGroupLetters = [...]string{"", "А", "Б", "В", "Г"}

var vatGroupAliases = map[string]VATGroup{
	"А": VATGroupA, "Б": VATGroupB, "В": VATGroupC, "Г": VATGroupD,
	"A": VATGroupA, "B": VATGroupB, "C": VATGroupC, "D": VATGroupD,
	"1": VATGroupA, "2": VATGroupB, "3": VATGroupC, "4": VATGroupD,
}

// ParseVATGroup accepts the Cyrillic letter, its Latin look-alike or the
// group number.
func ParseVATGroup(raw string) (VATGroup, bool) {
	g, ok := vatGroupAliases[strings.ToUpper(strings.TrimSpace(raw))]
	return g, ok
}

// VATLabel is the letter printed on a receipt for a raw group value. Blank
// input prints the default group; unknown input is printed upper-cased.
func VATLabel(raw string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return DefaultVATGroup.String()
	}
	if g, ok := vatGroupAliases[trimmed]; ok {
		return g.String()
	}
	return trimmed
}

func (g VATGroup) String() string {
	if int(g) <= 0 || int(g) >= len(vatGroupLetters) {
		return ""
	}
	return vatGroupLetters[g]
}

// Or returns def when g is unset.
func (g VATGroup) Or(def VATGroup) VATGroup {
	if g == VATGroupUnset {
		return def
	}
	return g
}

// Rate is the nominal VAT percentage of the group.
func (g VATGroup) Rate() int {
	switch g {
	case VATGroupA, VATGroupB:
		return 20
	case VATGroupC:
		return 9
	default:
		return 0
	}
}

func (g VATGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g *VATGroup) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*g = VATGroup(i)
		return nil
	}
	parsed, _ := ParseVATGroup(str)
	*g = parsed
	return nil
}

func (g VATGroup) Value() (driver.Value, error) {
	return int64(g), nil
}

func (g *VATGroup) Scan(value interface{}) error {
	if value == nil {
		*g = VATGroupUnset
		return nil
	}
	switch v := value.(type) {
	case int64:
		*g = VATGroup(v)
	case int:
		*g = VATGroup(v)
	}
	return nil
}
