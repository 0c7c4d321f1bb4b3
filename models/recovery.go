package models

import (
	"github.com/shopspring/decimal"
)

// TransactionKind classifies a recovery transaction.
type TransactionKind string

const (
	TransactionPayment     TransactionKind = "PAYMENT"
	TransactionInstallment TransactionKind = "INSTALLMENT"
	TransactionSettlement  TransactionKind = "SETTLEMENT"
	TransactionAssessment  TransactionKind = "ASSESSMENT"
)

// MoneyRecoveryDetails extends a MONEY_RECOVERY case.
type MoneyRecoveryDetails struct {
	DetailAudit
	ClaimedAmount  decimal.Decimal `json:"claimedAmount"`
	DebtorName     string          `json:"debtorName"`
	DebtorAddress  string          `json:"debtorAddress"`
	RecoveryMethod string          `json:"recoveryMethod"`
	DueDate        *Date           `json:"dueDate,omitempty"`
	Notes          string          `json:"notes"`
}

// MoneyRecoveryRequest carries the header fields of a money recovery.
type MoneyRecoveryRequest struct {
	ClaimedAmount  decimal.Decimal `json:"claimedAmount" validate:"required,gt=0"`
	DebtorName     string          `json:"debtorName" validate:"required,max=255"`
	DebtorAddress  string          `json:"debtorAddress" validate:"max=1000"`
	RecoveryMethod string          `json:"recoveryMethod" validate:"max=100"`
	DueDate        *Date           `json:"dueDate"`
	Notes          string          `json:"notes"`
}

// DamagesRecoveryDetails extends a DAMAGES_RECOVERY case.
type DamagesRecoveryDetails struct {
	DetailAudit
	CompensationClaimed decimal.Decimal `json:"compensationClaimed"`
	RespondentName      string          `json:"respondentName"`
	IncidentDate        *Date           `json:"incidentDate,omitempty"`
	DamageDescription   string          `json:"damageDescription"`
	AssessmentNotes     string          `json:"assessmentNotes"`
}

// DamagesRecoveryRequest carries the header fields of a damages recovery.
type DamagesRecoveryRequest struct {
	CompensationClaimed decimal.Decimal `json:"compensationClaimed" validate:"required,gt=0"`
	RespondentName      string          `json:"respondentName" validate:"required,max=255"`
	IncidentDate        *Date           `json:"incidentDate"`
	DamageDescription   string          `json:"damageDescription"`
	AssessmentNotes     string          `json:"assessmentNotes"`
}

// RecoveryTransaction is an amount recorded against a recovery ceiling.
type RecoveryTransaction struct {
	ID              int64           `json:"id"`
	DetailID        int64           `json:"detailId"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate Date            `json:"transactionDate"`
	Kind            TransactionKind `json:"kind"`
	Reference       string          `json:"reference"`
	Remarks         string          `json:"remarks"`
	ChildAudit
}

// RecoveryTransactionRequest carries a transaction to record.
type RecoveryTransactionRequest struct {
	Amount          decimal.Decimal `json:"amount" validate:"required,gt=0"`
	TransactionDate Date            `json:"transactionDate" validate:"required"`
	Kind            TransactionKind `json:"kind" validate:"required,oneof=PAYMENT INSTALLMENT SETTLEMENT ASSESSMENT"`
	Reference       string          `json:"reference" validate:"max=100"`
	Remarks         string          `json:"remarks"`
}

// RecoverySummary holds the aggregates derived from transactions.
type RecoverySummary struct {
	Ceiling            decimal.Decimal `json:"ceiling"`
	TotalRecovered     decimal.Decimal `json:"totalRecovered"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	FullyRecovered     bool            `json:"fullyRecovered"`
	TransactionCount   int             `json:"transactionCount"`
}

// SummarizeRecovery derives the recovery aggregates of txs against ceiling.
// The outstanding balance never drops below zero.
func SummarizeRecovery(ceiling decimal.Decimal, txs []RecoveryTransaction) RecoverySummary {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}

	outstanding := ceiling.Sub(total)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}

	return RecoverySummary{
		Ceiling:            ceiling,
		TotalRecovered:     total,
		OutstandingBalance: outstanding,
		FullyRecovered:     outstanding.IsZero(),
		TransactionCount:   len(txs),
	}
}

// MoneyRecoveryView is the assembled money recovery extension.
type MoneyRecoveryView struct {
	Details      MoneyRecoveryDetails  `json:"details"`
	Transactions []RecoveryTransaction `json:"transactions"`
	Summary      RecoverySummary       `json:"summary"`
}

// DamagesRecoveryView is the assembled damages recovery extension.
type DamagesRecoveryView struct {
	Details      DamagesRecoveryDetails `json:"details"`
	Transactions []RecoveryTransaction  `json:"transactions"`
	Summary      RecoverySummary        `json:"summary"`
}
