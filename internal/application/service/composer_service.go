package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sangkips/fiscal-console/internal/application/receipt"
	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/internal/domain/fiscal"
	"github.com/sangkips/fiscal-console/pkg/apperror"
)

// ComposerService works on drafts that have not been queued yet.
type ComposerService struct {
	printers PrintService
	render   RenderSettings
	recorder Recorder
}

// NewComposerService creates a new composer service
func NewComposerService(printers PrintService, render RenderSettings, recorder Recorder) *ComposerService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &ComposerService{
		printers: printers,
		render:   render,
		recorder: recorder,
	}
}

// SaleSummary is a draft together with its recomputed totals.
type SaleSummary struct {
	Draft  entity.SaleDraft `json:"draft"`
	Totals fiscal.Totals    `json:"totals"`
}

// DraftPreview is the rendered receipt of a draft plus the validation that
// produced the rendered payload.
type DraftPreview struct {
	Lines      []string                `json:"lines"`
	Totals     fiscal.Totals           `json:"totals"`
	Validation fiscal.ValidationResult `json:"validation"`
}

func (s *ComposerService) RecomputeSale(draft entity.SaleDraft) fiscal.Totals {
	return fiscal.RecomputeSale(draft)
}

func (s *ComposerService) RecomputeStorno(draft entity.StornoDraft) fiscal.Totals {
	return fiscal.RecomputeStorno(draft)
}

func (s *ComposerService) ValidateSale(draft entity.SaleDraft) fiscal.ValidationResult {
	return fiscal.ValidateSale(draft)
}

func (s *ComposerService) ValidateStorno(draft entity.StornoDraft) fiscal.ValidationResult {
	return fiscal.ValidateStorno(draft)
}

// AutoFill tops up the last tender so the sale is covered.
func (s *ComposerService) AutoFill(draft entity.SaleDraft) *SaleSummary {
	filled := fiscal.AutoFillSale(draft)
	return &SaleSummary{Draft: filled, Totals: fiscal.RecomputeSale(filled)}
}

// PreviewSale renders the sale exactly as it would be queued. Invalid lines
// and tenders are left out, as they are from the payload.
func (s *ComposerService) PreviewSale(ctx context.Context, draft entity.SaleDraft, at time.Time) (*DraftPreview, error) {
	result := fiscal.ValidateSale(draft)
	lines, err := s.preview(ctx, enum.PayloadFiscalReceipt, draft.PrinterID, result.Payload, at)
	if err != nil {
		return nil, err
	}
	return &DraftPreview{Lines: lines, Totals: fiscal.RecomputeSale(draft), Validation: result}, nil
}

// PreviewStorno renders a storno draft as it would be queued.
func (s *ComposerService) PreviewStorno(ctx context.Context, draft entity.StornoDraft, at time.Time) (*DraftPreview, error) {
	result := fiscal.ValidateStorno(draft)
	lines, err := s.preview(ctx, enum.PayloadStorno, draft.PrinterID, result.Payload, at)
	if err != nil {
		return nil, err
	}
	return &DraftPreview{Lines: lines, Totals: fiscal.RecomputeStorno(draft), Validation: result}, nil
}

func (s *ComposerService) preview(ctx context.Context, payloadType enum.PayloadType, printerID int64, payload interface{}, at time.Time) ([]string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", payloadType, err)
	}
	if at.IsZero() {
		at = time.Now()
	}
	opts := receipt.Options{
		PrinterName: s.printerName(ctx, printerID),
		Created:     at,
		Location:    s.render.Location,
		Currency:    s.render.Currency,
		Width:       s.render.Width,
	}
	s.recorder.RecordPreview(string(payloadType), "none")
	return receipt.Render(receipt.Input{Type: payloadType, Payload: raw}, opts), nil
}

// printerName is best effort: a preview is still useful without it.
func (s *ComposerService) printerName(ctx context.Context, printerID int64) string {
	if printerID <= 0 || s.printers == nil {
		return ""
	}
	printer, err := s.printers.GetPrinter(ctx, printerID)
	if err != nil {
		log.Warningf("printer %d lookup for preview failed: %v", printerID, err)
		return ""
	}
	return printer.Name
}

// NewSaleDraft starts a sale on printerID with the printer's configured
// operator, one blank line and one cash tender.
func (s *ComposerService) NewSaleDraft(ctx context.Context, printerID int64) (*entity.SaleDraft, error) {
	if printerID <= 0 {
		return nil, apperror.NewBadRequestError(fiscal.MsgPrinterRequired)
	}
	printer, err := s.printers.GetPrinter(ctx, printerID)
	if err != nil {
		return nil, printServiceError(err)
	}
	return &entity.SaleDraft{
		PrinterID: printer.ID,
		Operator:  printer.DefaultOperator(),
		Items:     []entity.LineItem{entity.NewLineItem()},
		Payments:  []entity.Tender{entity.NewTender()},
	}, nil
}
