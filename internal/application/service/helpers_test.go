package service

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/internal/infrastructure/printservice"
	"github.com/stretchr/testify/require"
)

func notFound(detail string) error {
	return &printservice.APIError{Status: http.StatusNotFound, Detail: detail}
}

func badRequest(detail string) error {
	return &printservice.APIError{Status: http.StatusBadRequest, Detail: detail}
}

func testPrinter() *entity.Printer {
	return &entity.Printer{
		ID:      1,
		Name:    "FP-700",
		Enabled: true,
		Config: entity.PrinterConfig{Operator: &entity.PrinterOperator{
			ID: "1", Password: "0000", Till: "1", Name: "Иван",
		}},
	}
}

func validSale() entity.SaleDraft {
	return entity.SaleDraft{
		PrinterID: 1,
		Operator:  entity.Operator{ID: "1", Password: "0000", Till: "1"},
		Items: []entity.LineItem{
			{Name: "Хляб", TaxGroup: enum.VATGroupB, Price: "1.50", Quantity: "2"},
		},
		Payments: []entity.Tender{{Type: enum.TenderCash, Amount: "5"}},
	}
}

func saleJob(t *testing.T, id int64, receiptNo string) *entity.Job {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{
		"nsale":    "S-1",
		"items":    []map[string]interface{}{{"name": "Хляб", "vat_group": "Б", "price": "1.50", "quantity": "2"}},
		"payments": []map[string]interface{}{{"type": "P", "amount": "3"}},
	})
	require.NoError(t, err)
	return &entity.Job{
		ID:          id,
		PrinterID:   1,
		PayloadType: enum.PayloadFiscalReceipt,
		Payload:     payload,
		Status:      enum.JobSuccess,
		Result:      &entity.JobResult{ReceiptNumber: entity.Scalar(receiptNo)},
		CreatedAt:   "2026-10-19T07:30:15+00:00",
		UpdatedAt:   "2026-10-19T07:30:20+00:00",
	}
}
