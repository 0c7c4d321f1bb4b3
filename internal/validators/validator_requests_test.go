package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidator_Validate(t *testing.T) {
	v := NewRequestValidator()
	date := models.NewDate(2026, 3, 1)

	tests := []struct {
		name    string
		obj     any
		wantErr error
		wantMsg string
	}{
		{
			name: "valid transaction",
			obj: &models.RecoveryTransactionRequest{
				Amount:          decimal.RequireFromString("100.50"),
				TransactionDate: date,
				Kind:            models.TransactionPayment,
			},
		},
		{
			name: "negative amount",
			obj: models.RecoveryTransactionRequest{
				Amount:          decimal.NewFromInt(-5),
				TransactionDate: date,
				Kind:            models.TransactionPayment,
			},
			wantErr: ErrInvalidRequest,
			wantMsg: "amount must be greater than 0",
		},
		{
			name: "zero amount",
			obj: models.RecoveryTransactionRequest{
				TransactionDate: date,
				Kind:            models.TransactionPayment,
			},
			wantErr: ErrInvalidRequest,
			wantMsg: "amount is required",
		},
		{
			name: "missing date",
			obj: models.RecoveryTransactionRequest{
				Amount: decimal.NewFromInt(5),
				Kind:   models.TransactionPayment,
			},
			wantErr: ErrInvalidRequest,
			wantMsg: "transactionDate is required",
		},
		{
			name: "unknown enum value",
			obj: models.RecoveryTransactionRequest{
				Amount:          decimal.NewFromInt(5),
				TransactionDate: date,
				Kind:            "REFUND",
			},
			wantErr: ErrInvalidRequest,
			wantMsg: "kind must be one of",
		},
		{
			name:    "blank title",
			obj:     models.CreateCaseRequest{CaseType: models.CaseTypeLand, ReferenceNumber: "LC/1"},
			wantErr: ErrInvalidRequest,
			wantMsg: "title is required",
		},
		{
			name:    "negative exposure",
			obj:     models.CreateCaseRequest{Title: "t", CaseType: models.CaseTypeLand, ReferenceNumber: "LC/1", FinancialExposure: ptr(decimal.NewFromInt(-1))},
			wantErr: ErrInvalidRequest,
			wantMsg: "financialExposure must be at least 0",
		},
		{
			name: "document linked and removed at once",
			obj: models.DeedRequest{
				DeedNumber:     "4411",
				DeedType:       models.DeedTypeDeed,
				DocumentID:     ptr(int64(70)),
				RemoveDocument: true,
			},
			wantErr: ErrInvalidRequest,
			wantMsg: "removeDocument cannot be combined with DocumentID",
		},
		{
			name:    "not a struct",
			obj:     "text",
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "nil",
			obj:     nil,
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRequestValidator_ValidateFields(t *testing.T) {
	v := NewRequestValidator()

	req := models.CreateCaseRequest{Title: "Lease dispute"}

	require.NoError(t, v.Validate(context.Background(), req, "Title"))
	require.Error(t, v.Validate(context.Background(), req, "Title", "ReferenceNumber"))
}

func TestRequestValidator_NestedLink(t *testing.T) {
	v := NewRequestValidator()

	req := models.AppealRequest{
		AppellateCourt: "Court of Appeal",
		OriginalCase:   &models.OriginalCaseLink{Kind: "SOMEWHERE"},
	}

	err := v.Validate(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "originalCase.kind must be one of")
}

func ptr[T any](v T) *T {
	return &v
}
