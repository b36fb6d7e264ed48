package enum

import "strings"

// CashDirection is a service deposit into, or withdrawal from, the drawer.
type CashDirection string

const (
	CashIn  CashDirection = "in"
	CashOut CashDirection = "out"
)

// ParseCashDirection maps the accepted spellings. Blank input means a deposit.
func ParseCashDirection(raw string) CashDirection {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "in", "deposit":
		return CashIn
	case "out", "withdraw", "withdrawal":
		return CashOut
	default:
		return CashDirection(strings.ToLower(strings.TrimSpace(raw)))
	}
}

func (d CashDirection) Valid() bool {
	return d == CashIn || d == CashOut
}

func (d CashDirection) Title() string {
	if d == CashOut {
		return "СЛУЖЕБЕН ИЗНОС"
	}
	return "СЛУЖЕБЕН ВНОС"
}

func (d CashDirection) Caption() string {
	if d == CashOut {
		return "Износ:"
	}
	return "Внос:"
}
