package repository

import (
	"context"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	domainRepo "github.com/sangkips/fiscal-console/internal/domain/repository"
	"github.com/sangkips/fiscal-console/pkg/pagination"
	"gorm.io/gorm"
)

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) domainRepo.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) List(ctx context.Context, params *domainRepo.SubmissionFilterParams) ([]entity.Submission, int64, error) {
	var submissions []entity.Submission
	var total int64

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	query := r.db.WithContext(ctx).Model(&entity.Submission{})

	if params.PrinterID != nil {
		query = query.Where("printer_id = ?", *params.PrinterID)
	}
	if params.PayloadType != nil {
		query = query.Where("payload_type = ?", *params.PayloadType)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&submissions).Error

	return submissions, total, err
}
