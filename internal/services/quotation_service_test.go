package services

import (
	"strings"
	"testing"

	"backend/internal/domain"
	"backend/internal/finance"
)

func TestQuotationGenerate(t *testing.T) {
	svc := QuotationService{}
	pdf, filename, err := svc.Generate(Quotation{
		Client: QuotationClient{ClientName: "Grupo Pumas"},
		Items: []QuotationItem{
			{Description: "Viaje Liberia - San José", NoIVAmount: 170000, IVAmount: 22100, WithIVAmount: 192100},
		},
		Totals: finance.ClientTotals{TotalNoIVAmount: 170000, TotalIVAmount: 22100, TotalWithIVAmount: 192100},
		Notes:  "Incluye carga y descarga.",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("Generate returned empty document")
	}
	if !strings.HasPrefix(filename, "Cotizacion_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestQuotationGenerateRequiresItems(t *testing.T) {
	svc := QuotationService{}
	_, _, err := svc.Generate(Quotation{Client: QuotationClient{ClientName: "Grupo Pumas"}})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuotationGenerateRequiresClient(t *testing.T) {
	svc := QuotationService{}
	_, _, err := svc.Generate(Quotation{
		Items: []QuotationItem{{Description: "Viaje", NoIVAmount: 1000}},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
