package enum

// JobStatus is the print-service lifecycle state of a job. The console only
// reads it.
type JobStatus string

const (
	JobQueued   JobStatus = "queued"
	JobPrinting JobStatus = "printing"
	JobSuccess  JobStatus = "success"
	JobFailed   JobStatus = "failed"
)

func (s JobStatus) Label() string {
	switch s {
	case JobQueued:
		return "Чака"
	case JobPrinting:
		return "Печата"
	case JobSuccess:
		return "Успех"
	case JobFailed:
		return "Грешка"
	}
	return string(s)
}

// Retryable mirrors the print service rule: only failed or queued jobs.
func (s JobStatus) Retryable() bool {
	return s == JobFailed || s == JobQueued
}

// Cancellable is false only while the device is printing.
func (s JobStatus) Cancellable() bool {
	return s != JobPrinting
}
