package request

// JobListQuery mirrors the print service's own limits.
type JobListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

// SubmissionListQuery filters the local submission log.
type SubmissionListQuery struct {
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
	PrinterID   int64  `form:"printer_id" binding:"omitempty,min=1"`
	PayloadType string `form:"payload_type"`
	Status      string `form:"status"`
}
