package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// SubmissionStatus records how a console submission attempt ended
type SubmissionStatus int

const (
	SubmissionAccepted SubmissionStatus = 0
	SubmissionRejected SubmissionStatus = 1
	SubmissionFailed   SubmissionStatus = 2
)

var submissionStatusNames = [...]string{"accepted", "rejected", "failed"}

func (s SubmissionStatus) String() string {
	if int(s) < 0 || int(s) >= len(submissionStatusNames) {
		return "failed"
	}
	return submissionStatusNames[s]
}

// ParseSubmissionStatus reads a status name, ignoring case.
func ParseSubmissionStatus(raw string) (SubmissionStatus, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for i, name := range submissionStatusNames {
		if name == raw {
			return SubmissionStatus(i), true
		}
	}
	return SubmissionFailed, false
}

func (s SubmissionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SubmissionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SubmissionStatus(i)
		return nil
	}
	if parsed, ok := ParseSubmissionStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s SubmissionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SubmissionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SubmissionAccepted
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SubmissionStatus(v)
	case int:
		*s = SubmissionStatus(v)
	}
	return nil
}
