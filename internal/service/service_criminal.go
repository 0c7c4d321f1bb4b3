package service

import (
	"context"
	"strings"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

type criminalService struct {
	detailWorkflow
	repo store.CriminalRepository
}

func NewCriminalService(storages *store.Storages, m *metrics.Workflow, logger *logger.Logger) CriminalService {
	logger.Debug().Msg("creating criminal service")
	return &criminalService{
		detailWorkflow: newDetailWorkflow(models.CaseTypeCriminal, storages, m, logger),
		repo:           storages.Criminal,
	}
}

func (s *criminalService) SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.CriminalRequest) (models.CriminalView, error) {
	if isBlank(req.AccusedName) {
		return models.CriminalView{}, invalidInput("accused name is required")
	}

	var view models.CriminalView
	err := s.mutate(ctx, principal, caseID, "set_details", func(ctx context.Context, c models.Case, now time.Time) error {
		saved, err := upsertDetails[models.CriminalDetails](ctx, s.repo, c.ID, principal.ID, now, func(d *models.CriminalDetails) error {
			d.AccusedName = strings.TrimSpace(req.AccusedName)
			d.AccusedIdentifier = req.AccusedIdentifier
			d.PoliceStation = req.PoliceStation
			d.CourtCaseNumber = req.CourtCaseNumber
			d.OffenceDate = req.OffenceDate
			d.Prosecutor = req.Prosecutor
			d.BailStatus = req.BailStatus
			return nil
		})
		if err != nil {
			return err
		}
		view, err = s.assemble(ctx, saved)
		return err
	})
	return view, err
}

func (s *criminalService) GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.CriminalView, error) {
	var view models.CriminalView
	err := s.read(ctx, principal, caseID, func(ctx context.Context, c models.Case, _ models.Date) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "criminal")
		if err != nil {
			return err
		}
		view, err = s.assemble(ctx, d)
		return err
	})
	return view, err
}

func (s *criminalService) AddCharge(ctx context.Context, principal models.Principal, caseID int64, req models.ChargeRequest) (models.Charge, error) {
	if err := checkCharge(req); err != nil {
		return models.Charge{}, err
	}

	var saved models.Charge
	err := s.mutate(ctx, principal, caseID, "add_charge", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "criminal")
		if err != nil {
			return err
		}

		charge := models.Charge{
			DetailID:   d.ID,
			Plea:       models.PleaNotEntered,
			Status:     models.ChargePending,
			ChildAudit: newChildAudit(principal.ID, now),
		}
		applyCharge(&charge, req)
		saved, err = s.repo.CreateCharge(ctx, charge)
		return err
	})
	return saved, err
}

func (s *criminalService) UpdateCharge(ctx context.Context, principal models.Principal, caseID, chargeID int64, req models.ChargeRequest) (models.Charge, error) {
	if err := checkCharge(req); err != nil {
		return models.Charge{}, err
	}

	var saved models.Charge
	err := s.mutate(ctx, principal, caseID, "update_charge", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "criminal")
		if err != nil {
			return err
		}
		charge, err := findChild(ctx, s.repo.FindCharge, chargeID, d.ID, chargeDetail, "charge")
		if err != nil {
			return err
		}

		applyCharge(&charge, req)
		charge.Touch(principal.ID, now)
		saved, err = s.repo.UpdateCharge(ctx, charge)
		return err
	})
	return saved, err
}

func (s *criminalService) DeleteCharge(ctx context.Context, principal models.Principal, caseID, chargeID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_charge", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "criminal")
		if err != nil {
			return err
		}
		if _, err := findChild(ctx, s.repo.FindCharge, chargeID, d.ID, chargeDetail, "charge"); err != nil {
			return err
		}
		return s.repo.DeleteCharge(ctx, chargeID)
	})
}

func (s *criminalService) AddHearing(ctx context.Context, principal models.Principal, caseID int64, req models.HearingRequest) (models.Hearing, error) {
	if err := checkHearing(req); err != nil {
		return models.Hearing{}, err
	}

	var saved models.Hearing
	err := s.mutate(ctx, principal, caseID, "add_hearing", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "criminal")
		if err != nil {
			return err
		}

		hearing := models.Hearing{DetailID: d.ID, ChildAudit: newChildAudit(principal.ID, now)}
		applyHearing(&hearing, req)
		saved, err = s.repo.CreateHearing(ctx, hearing)
		return err
	})
	return saved, err
}

func (s *criminalService) UpdateHearing(ctx context.Context, principal models.Principal, caseID, hearingID int64, req models.HearingRequest) (models.Hearing, error) {
	if err := checkHearing(req); err != nil {
		return models.Hearing{}, err
	}

	var saved models.Hearing
	err := s.mutate(ctx, principal, caseID, "update_hearing", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "criminal")
		if err != nil {
			return err
		}
		hearing, err := findChild(ctx, s.repo.FindHearing, hearingID, d.ID, hearingDetail, "hearing")
		if err != nil {
			return err
		}

		applyHearing(&hearing, req)
		hearing.Touch(principal.ID, now)
		saved, err = s.repo.UpdateHearing(ctx, hearing)
		return err
	})
	return saved, err
}

func (s *criminalService) DeleteHearing(ctx context.Context, principal models.Principal, caseID, hearingID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_hearing", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "criminal")
		if err != nil {
			return err
		}
		if _, err := findChild(ctx, s.repo.FindHearing, hearingID, d.ID, hearingDetail, "hearing"); err != nil {
			return err
		}
		return s.repo.DeleteHearing(ctx, hearingID)
	})
}

func (s *criminalService) assemble(ctx context.Context, d models.CriminalDetails) (models.CriminalView, error) {
	charges, err := s.repo.ListCharges(ctx, d.ID)
	if err != nil {
		return models.CriminalView{}, err
	}
	hearings, err := s.repo.ListHearings(ctx, d.ID)
	if err != nil {
		return models.CriminalView{}, err
	}

	return models.CriminalView{
		Details:         d,
		Charges:         emptyIfNil(charges),
		Hearings:        emptyIfNil(hearings),
		NextHearingDate: models.NextHearing(hearings),
		ChargeCount:     len(charges),
		HearingCount:    len(hearings),
	}, nil
}

func checkCharge(req models.ChargeRequest) error {
	if isBlank(req.Statute) {
		return invalidInput("statute is required")
	}
	switch req.Plea {
	case "", models.PleaNotEntered, models.PleaGuilty, models.PleaNotGuilty:
	default:
		return invalidInput("unknown plea %q", req.Plea)
	}
	switch req.Status {
	case "", models.ChargePending, models.ChargeConvicted, models.ChargeAcquitted, models.ChargeWithdrawn, models.ChargeDismissed:
	default:
		return invalidInput("unknown charge status %q", req.Status)
	}
	return nil
}

// applyCharge leaves plea and status untouched when the request omits them.
func applyCharge(c *models.Charge, req models.ChargeRequest) {
	c.Statute = strings.TrimSpace(req.Statute)
	c.Description = req.Description
	if req.Plea != "" {
		c.Plea = req.Plea
	}
	if req.Status != "" {
		c.Status = req.Status
	}
}

// checkHearing requires an adjourned hearing to name a later next date.
func checkHearing(req models.HearingRequest) error {
	if req.HearingDate.IsZero() {
		return invalidInput("hearing date is required")
	}
	switch req.Outcome {
	case models.HearingScheduled, models.HearingConcluded, models.HearingJudgmentDelivered:
	case models.HearingAdjourned:
		if req.NextHearingDate == nil || req.NextHearingDate.IsZero() {
			return invalidState("an adjourned hearing requires the next hearing date")
		}
		if !req.NextHearingDate.After(req.HearingDate) {
			return invalidState("next hearing date %s must be after the hearing date %s", req.NextHearingDate, req.HearingDate)
		}
	default:
		return invalidInput("unknown hearing outcome %q", req.Outcome)
	}
	return nil
}

func applyHearing(h *models.Hearing, req models.HearingRequest) {
	h.HearingDate = req.HearingDate
	h.Purpose = req.Purpose
	h.Outcome = req.Outcome
	h.NextHearingDate = req.NextHearingDate
	if h.NextHearingDate != nil && h.NextHearingDate.IsZero() {
		h.NextHearingDate = nil
	}
	h.Notes = req.Notes
}

func chargeDetail(c models.Charge) int64 { return c.DetailID }

func hearingDetail(h models.Hearing) int64 { return h.DetailID }
