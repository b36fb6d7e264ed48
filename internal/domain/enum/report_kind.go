package enum

import "strings"

// ReportKind selects the daily (Z) or intermediate (X) fiscal report.
type ReportKind string

const (
	ReportDaily        ReportKind = "Z"
	ReportIntermediate ReportKind = "X"
)

// ParseReportKind normalizes case; blank input means an X report.
func ParseReportKind(raw string) ReportKind {
	k := strings.ToUpper(strings.TrimSpace(raw))
	if k == "" {
		return ReportIntermediate
	}
	return ReportKind(k)
}

func (k ReportKind) Valid() bool {
	return k == ReportDaily || k == ReportIntermediate
}

// ResetsRegisters is true for the end-of-day report only.
func (k ReportKind) ResetsRegisters() bool {
	return k == ReportDaily
}

func (k ReportKind) Title() string {
	if k == ReportDaily {
		return "Z-ОТЧЕТ (Дневен финансов)"
	}
	return "X-ОТЧЕТ (Текущ)"
}
