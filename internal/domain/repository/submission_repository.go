package repository

import (
	"context"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/pkg/pagination"
)

// SubmissionRepository defines the interface for the submission audit log
type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
	List(ctx context.Context, params *SubmissionFilterParams) ([]entity.Submission, int64, error)
}

// SubmissionFilterParams contains filtering parameters for submission queries
type SubmissionFilterParams struct {
	Pagination  *pagination.PaginationParams
	PrinterID   *int64
	PayloadType *enum.PayloadType
	Status      *enum.SubmissionStatus
}
