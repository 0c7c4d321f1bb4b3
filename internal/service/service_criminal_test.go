package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCriminal(t *testing.T) (*criminalService, mockStorages) {
	t.Helper()
	storages, mocks := newMockStorages(t)
	svc := NewCriminalService(storages, nil, logger.Nop()).(*criminalService)
	svc.now = fixedClock
	return svc, mocks
}

func criminalDetails(caseID int64) models.CriminalDetails {
	return models.CriminalDetails{DetailAudit: models.DetailAudit{ID: 9, CaseID: caseID}, AccusedName: "K. Bandara"}
}

func TestCriminal_AdjournedHearingNeedsNextDate(t *testing.T) {
	next := date(2026, 4, 1)
	before := date(2026, 2, 1)

	tests := []struct {
		name string
		req  models.HearingRequest
		want error
	}{
		{
			name: "no next date",
			req:  models.HearingRequest{HearingDate: date(2026, 3, 1), Outcome: models.HearingAdjourned},
			want: ErrInvalidState,
		},
		{
			name: "next date before hearing",
			req:  models.HearingRequest{HearingDate: date(2026, 3, 1), Outcome: models.HearingAdjourned, NextHearingDate: &before},
			want: ErrInvalidState,
		},
		{
			name: "unknown outcome",
			req:  models.HearingRequest{HearingDate: date(2026, 3, 1), Outcome: "POSTPONED", NextHearingDate: &next},
			want: ErrInvalidInput,
		},
		{
			name: "missing hearing date",
			req:  models.HearingRequest{Outcome: models.HearingScheduled},
			want: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestCriminal(t)

			_, err := svc.AddHearing(context.Background(), legalOfficer, 40, tt.req)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestCriminal_AddHearingAndNextHearing(t *testing.T) {
	svc, mocks := newTestCriminal(t)
	ctx := context.Background()
	next := date(2026, 4, 15)

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(40)).Return(activeCase(40, models.CaseTypeCriminal), nil)
	mocks.criminal.EXPECT().FindDetails(gomock.Any(), int64(40)).Return(criminalDetails(40), nil)
	mocks.criminal.EXPECT().CreateHearing(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h models.Hearing) (models.Hearing, error) {
			assert.Equal(t, int64(9), h.DetailID)
			assert.Equal(t, legalOfficer.ID, h.RecordedBy)
			h.ID = 21
			return h, nil
		},
	)

	hearing, err := svc.AddHearing(ctx, legalOfficer, 40, models.HearingRequest{
		HearingDate:     date(2026, 3, 12),
		Purpose:         "Trial",
		Outcome:         models.HearingAdjourned,
		NextHearingDate: &next,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), hearing.ID)

	earlierNext := date(2026, 3, 12)
	hearings := []models.Hearing{
		{ID: 20, DetailID: 9, HearingDate: date(2026, 2, 10), Outcome: models.HearingAdjourned, NextHearingDate: &earlierNext},
		hearing,
		{ID: 22, DetailID: 9, HearingDate: date(2026, 3, 20), Outcome: models.HearingScheduled},
	}

	mocks.cases.EXPECT().FindCaseByID(gomock.Any(), int64(40)).Return(activeCase(40, models.CaseTypeCriminal), nil)
	mocks.criminal.EXPECT().FindDetails(gomock.Any(), int64(40)).Return(criminalDetails(40), nil)
	mocks.criminal.EXPECT().ListCharges(gomock.Any(), int64(9)).Return(nil, nil)
	mocks.criminal.EXPECT().ListHearings(gomock.Any(), int64(9)).Return(hearings, nil)

	view, err := svc.GetDetails(ctx, legalOfficer, 40)
	require.NoError(t, err)
	require.NotNil(t, view.NextHearingDate)
	assert.True(t, view.NextHearingDate.Equal(next))
	assert.Equal(t, 3, view.HearingCount)
	assert.Equal(t, 0, view.ChargeCount)
	assert.NotNil(t, view.Charges)
}

func TestCriminal_AddChargeDefaults(t *testing.T) {
	svc, mocks := newTestCriminal(t)

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(40)).Return(activeCase(40, models.CaseTypeCriminal), nil)
	mocks.criminal.EXPECT().FindDetails(gomock.Any(), int64(40)).Return(criminalDetails(40), nil)
	mocks.criminal.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Charge) (models.Charge, error) {
			c.ID = 5
			return c, nil
		},
	)

	charge, err := svc.AddCharge(context.Background(), legalOfficer, 40, models.ChargeRequest{Statute: " Penal Code s.380 "})
	require.NoError(t, err)
	assert.Equal(t, "Penal Code s.380", charge.Statute)
	assert.Equal(t, models.PleaNotEntered, charge.Plea)
	assert.Equal(t, models.ChargePending, charge.Status)
}

func TestCriminal_UpdateChargeOfAnotherCaseIsNotFound(t *testing.T) {
	svc, mocks := newTestCriminal(t)

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(40)).Return(activeCase(40, models.CaseTypeCriminal), nil)
	mocks.criminal.EXPECT().FindDetails(gomock.Any(), int64(40)).Return(criminalDetails(40), nil)
	mocks.criminal.EXPECT().FindCharge(gomock.Any(), int64(5)).Return(models.Charge{ID: 5, DetailID: 77}, nil)

	_, err := svc.UpdateCharge(context.Background(), legalOfficer, 40, 5, models.ChargeRequest{
		Statute: "Penal Code s.380",
		Plea:    models.PleaGuilty,
	})
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestCriminal_GuardRejectsOtherCaseType(t *testing.T) {
	svc, mocks := newTestCriminal(t)

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(41)).Return(activeCase(41, models.CaseTypeLand), nil)

	err := svc.DeleteHearing(context.Background(), legalOfficer, 41, 3)
	assert.True(t, errors.Is(err, ErrInvalidState), "got %v", err)
}
