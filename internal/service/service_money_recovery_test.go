package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMoneyRecovery(t *testing.T, m *metrics.Workflow) (*moneyRecoveryService, mockStorages) {
	t.Helper()
	storages, mocks := newMockStorages(t)
	svc := NewMoneyRecoveryService(storages, m, logger.Nop()).(*moneyRecoveryService)
	svc.now = fixedClock
	return svc, mocks
}

func TestMoneyRecovery_TransactionsStayWithinClaimedAmount(t *testing.T) {
	svc, mocks := newTestMoneyRecovery(t, nil)
	ctx := context.Background()

	details := models.MoneyRecoveryDetails{DetailAudit: models.DetailAudit{ID: 3, CaseID: 11}, ClaimedAmount: amount("1000")}
	first := models.RecoveryTransaction{ID: 1, DetailID: 3, Amount: amount("600"), Kind: models.TransactionPayment}

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(activeCase(11, models.CaseTypeMoneyRecovery), nil).Times(2)
	mocks.money.EXPECT().FindDetails(gomock.Any(), int64(11)).Return(details, nil).Times(2)
	mocks.money.EXPECT().ListTransactions(gomock.Any(), int64(3)).Return([]models.RecoveryTransaction{first}, nil).Times(2)

	_, err := svc.AddTransaction(ctx, legalOfficer, 11, models.RecoveryTransactionRequest{
		Amount:          amount("500"),
		TransactionDate: date(2026, 3, 1),
		Kind:            models.TransactionInstallment,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.Contains(t, err.Error(), "400.00")

	mocks.money.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx models.RecoveryTransaction) (models.RecoveryTransaction, error) {
			assert.Equal(t, int64(3), tx.DetailID)
			assert.Equal(t, legalOfficer.ID, tx.RecordedBy)
			assert.Equal(t, fixedNow, tx.RecordedAt)
			tx.ID = 2
			return tx, nil
		},
	)

	saved, err := svc.AddTransaction(ctx, legalOfficer, 11, models.RecoveryTransactionRequest{
		Amount:          amount("400"),
		TransactionDate: date(2026, 3, 2),
		Kind:            models.TransactionSettlement,
		Reference:       "  RCPT-88 ",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.ID)
	assert.Equal(t, "RCPT-88", saved.Reference)

	mocks.cases.EXPECT().FindCaseByID(gomock.Any(), int64(11)).Return(activeCase(11, models.CaseTypeMoneyRecovery), nil)
	mocks.money.EXPECT().FindDetails(gomock.Any(), int64(11)).Return(details, nil)
	mocks.money.EXPECT().ListTransactions(gomock.Any(), int64(3)).Return([]models.RecoveryTransaction{first, saved}, nil)

	view, err := svc.GetDetails(ctx, legalOfficer, 11)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", view.Summary.TotalRecovered.StringFixed(2))
	assert.True(t, view.Summary.OutstandingBalance.IsZero())
	assert.True(t, view.Summary.FullyRecovered)
	assert.Equal(t, 2, view.Summary.TransactionCount)
}

func TestMoneyRecovery_UpdateTransactionExcludesItselfFromCeiling(t *testing.T) {
	svc, mocks := newTestMoneyRecovery(t, nil)

	details := models.MoneyRecoveryDetails{DetailAudit: models.DetailAudit{ID: 3, CaseID: 11}, ClaimedAmount: amount("1000")}
	existing := []models.RecoveryTransaction{
		{ID: 1, DetailID: 3, Amount: amount("600")},
		{ID: 2, DetailID: 3, Amount: amount("300")},
	}

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(activeCase(11, models.CaseTypeMoneyRecovery), nil)
	mocks.money.EXPECT().FindDetails(gomock.Any(), int64(11)).Return(details, nil)
	mocks.money.EXPECT().FindTransaction(gomock.Any(), int64(2)).Return(existing[1], nil)
	mocks.money.EXPECT().ListTransactions(gomock.Any(), int64(3)).Return(existing, nil)
	mocks.money.EXPECT().UpdateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx models.RecoveryTransaction) (models.RecoveryTransaction, error) {
			require.NotNil(t, tx.UpdatedBy)
			assert.Equal(t, legalOfficer.ID, *tx.UpdatedBy)
			return tx, nil
		},
	)

	saved, err := svc.UpdateTransaction(context.Background(), legalOfficer, 11, 2, models.RecoveryTransactionRequest{
		Amount:          amount("400"),
		TransactionDate: date(2026, 3, 5),
		Kind:            models.TransactionPayment,
	})
	require.NoError(t, err)
	assert.Equal(t, "400.00", saved.Amount.StringFixed(2))
}

func TestMoneyRecovery_TransactionOfAnotherRecoveryIsNotFound(t *testing.T) {
	svc, mocks := newTestMoneyRecovery(t, nil)

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(activeCase(11, models.CaseTypeMoneyRecovery), nil)
	mocks.money.EXPECT().FindDetails(gomock.Any(), int64(11)).
		Return(models.MoneyRecoveryDetails{DetailAudit: models.DetailAudit{ID: 3}}, nil)
	mocks.money.EXPECT().FindTransaction(gomock.Any(), int64(40)).
		Return(models.RecoveryTransaction{ID: 40, DetailID: 99}, nil)

	err := svc.DeleteTransaction(context.Background(), legalOfficer, 11, 40)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMoneyRecovery_SetDetails(t *testing.T) {
	t.Run("creates on first save", func(t *testing.T) {
		svc, mocks := newTestMoneyRecovery(t, nil)

		mocks.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(activeCase(11, models.CaseTypeMoneyRecovery), nil)
		mocks.money.EXPECT().FindDetails(gomock.Any(), int64(11)).Return(models.MoneyRecoveryDetails{}, store.ErrNotFound)
		mocks.money.EXPECT().CreateDetails(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d models.MoneyRecoveryDetails) (models.MoneyRecoveryDetails, error) {
				assert.Equal(t, int64(11), d.CaseID)
				assert.Equal(t, legalOfficer.ID, d.CreatedBy)
				assert.Equal(t, fixedNow, d.CreatedAt)
				assert.Nil(t, d.LastUpdatedBy)
				d.ID = 5
				return d, nil
			},
		)
		mocks.money.EXPECT().ListTransactions(gomock.Any(), int64(5)).Return(nil, nil)

		view, err := svc.SetDetails(context.Background(), legalOfficer, 11, models.MoneyRecoveryRequest{
			ClaimedAmount: amount("2500.50"),
			DebtorName:    "Lanka Traders Ltd",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), view.Details.ID)
		assert.NotNil(t, view.Transactions)
		assert.Empty(t, view.Transactions)
		assert.Equal(t, "2500.50", view.Summary.OutstandingBalance.StringFixed(2))
		assert.False(t, view.Summary.FullyRecovered)
	})

	t.Run("updates in place", func(t *testing.T) {
		svc, mocks := newTestMoneyRecovery(t, nil)

		current := models.MoneyRecoveryDetails{
			DetailAudit:   models.DetailAudit{ID: 5, CaseID: 11, CreatedBy: 2, CreatedAt: fixedNow.AddDate(0, -1, 0)},
			ClaimedAmount: amount("2500"),
			DebtorName:    "Lanka Traders Ltd",
		}
		mocks.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(activeCase(11, models.CaseTypeMoneyRecovery), nil)
		mocks.money.EXPECT().FindDetails(gomock.Any(), int64(11)).Return(current, nil)
		mocks.money.EXPECT().ListTransactions(gomock.Any(), int64(5)).Return(nil, nil).Times(2)
		mocks.money.EXPECT().UpdateDetails(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d models.MoneyRecoveryDetails) (models.MoneyRecoveryDetails, error) {
				assert.Equal(t, int64(2), d.CreatedBy)
				require.NotNil(t, d.LastUpdatedBy)
				assert.Equal(t, legalOfficer.ID, *d.LastUpdatedBy)
				assert.Equal(t, "Lanka Traders (Pvt) Ltd", d.DebtorName)
				return d, nil
			},
		)

		_, err := svc.SetDetails(context.Background(), legalOfficer, 11, models.MoneyRecoveryRequest{
			ClaimedAmount: amount("3000"),
			DebtorName:    "Lanka Traders (Pvt) Ltd",
		})
		require.NoError(t, err)
	})

	t.Run("claimed amount below recorded total", func(t *testing.T) {
		svc, mocks := newTestMoneyRecovery(t, nil)

		mocks.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(activeCase(11, models.CaseTypeMoneyRecovery), nil)
		mocks.money.EXPECT().FindDetails(gomock.Any(), int64(11)).
			Return(models.MoneyRecoveryDetails{DetailAudit: models.DetailAudit{ID: 5}, ClaimedAmount: amount("1000")}, nil)
		mocks.money.EXPECT().ListTransactions(gomock.Any(), int64(5)).Return([]models.RecoveryTransaction{
			{ID: 1, DetailID: 5, Amount: amount("600")},
			{ID: 2, DetailID: 5, Amount: amount("300")},
		}, nil)

		_, err := svc.SetDetails(context.Background(), legalOfficer, 11, models.MoneyRecoveryRequest{
			ClaimedAmount: amount("800"),
			DebtorName:    "Lanka Traders Ltd",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidState))
		assert.Contains(t, err.Error(), "below the recorded total 900.00")
	})

	t.Run("claimed amount must be positive", func(t *testing.T) {
		svc, _ := newTestMoneyRecovery(t, nil)

		_, err := svc.SetDetails(context.Background(), legalOfficer, 11, models.MoneyRecoveryRequest{
			ClaimedAmount: amount("0"),
			DebtorName:    "Lanka Traders Ltd",
		})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestMoneyRecovery_CaseGuard(t *testing.T) {
	closed := activeCase(11, models.CaseTypeMoneyRecovery)
	closed.Status = models.CaseStatusClosed

	tests := []struct {
		name      string
		principal models.Principal
		lookup    func(m mockStorages)
		wantErr   error
	}{
		{
			name:      "missing principal",
			principal: models.Principal{},
			lookup:    func(mockStorages) {},
			wantErr:   ErrIdentityMissing,
		},
		{
			name:      "unknown case",
			principal: legalOfficer,
			lookup: func(m mockStorages) {
				m.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(models.Case{}, store.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name:      "case of another type",
			principal: legalOfficer,
			lookup: func(m mockStorages) {
				m.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(activeCase(11, models.CaseTypeLand), nil)
			},
			wantErr: ErrInvalidState,
		},
		{
			name:      "closed case",
			principal: legalOfficer,
			lookup: func(m mockStorages) {
				m.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(closed, nil)
			},
			wantErr: ErrInvalidState,
		},
		{
			name:      "details not recorded",
			principal: legalOfficer,
			lookup: func(m mockStorages) {
				m.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(activeCase(11, models.CaseTypeMoneyRecovery), nil)
				m.money.EXPECT().FindDetails(gomock.Any(), int64(11)).Return(models.MoneyRecoveryDetails{}, store.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newTestMoneyRecovery(t, nil)
			tt.lookup(mocks)

			_, err := svc.AddTransaction(context.Background(), tt.principal, 11, models.RecoveryTransactionRequest{
				Amount:          amount("10"),
				TransactionDate: date(2026, 3, 1),
				Kind:            models.TransactionPayment,
			})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestMoneyRecovery_ReadAllowsClosedCase(t *testing.T) {
	svc, mocks := newTestMoneyRecovery(t, nil)

	closed := activeCase(11, models.CaseTypeMoneyRecovery)
	closed.Status = models.CaseStatusClosed
	mocks.cases.EXPECT().FindCaseByID(gomock.Any(), int64(11)).Return(closed, nil)
	mocks.money.EXPECT().FindDetails(gomock.Any(), int64(11)).
		Return(models.MoneyRecoveryDetails{DetailAudit: models.DetailAudit{ID: 3}, ClaimedAmount: amount("100")}, nil)
	mocks.money.EXPECT().ListTransactions(gomock.Any(), int64(3)).Return(nil, nil)

	view, err := svc.GetDetails(context.Background(), legalOfficer, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(3), view.Details.ID)
}

func TestMoneyRecovery_CountsCommittedMutations(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	svc, mocks := newTestMoneyRecovery(t, m)

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(11)).Return(activeCase(11, models.CaseTypeMoneyRecovery), nil).Times(2)
	mocks.money.EXPECT().FindDetails(gomock.Any(), int64(11)).
		Return(models.MoneyRecoveryDetails{DetailAudit: models.DetailAudit{ID: 3}}, nil).Times(2)
	mocks.money.EXPECT().FindTransaction(gomock.Any(), int64(1)).Return(models.RecoveryTransaction{ID: 1, DetailID: 3}, nil)
	mocks.money.EXPECT().DeleteTransaction(gomock.Any(), int64(1)).Return(nil)
	mocks.money.EXPECT().FindTransaction(gomock.Any(), int64(2)).Return(models.RecoveryTransaction{}, store.ErrNotFound)

	require.NoError(t, svc.DeleteTransaction(context.Background(), legalOfficer, 11, 1))
	require.Error(t, svc.DeleteTransaction(context.Background(), legalOfficer, 11, 2))

	got := testutil.ToFloat64(m.DetailMutations.WithLabelValues(string(models.CaseTypeMoneyRecovery), "delete_transaction"))
	assert.Equal(t, float64(1), got)
}
