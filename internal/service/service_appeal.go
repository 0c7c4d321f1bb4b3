package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

type appealService struct {
	detailWorkflow
	repo store.AppealRepository
}

func NewAppealService(storages *store.Storages, m *metrics.Workflow, logger *logger.Logger) AppealService {
	logger.Debug().Msg("creating appeal service")
	return &appealService{
		detailWorkflow: newDetailWorkflow(models.CaseTypeAppeals, storages, m, logger),
		repo:           storages.Appeals,
	}
}

func (s *appealService) SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.AppealRequest) (models.AppealView, error) {
	if isBlank(req.AppellateCourt) {
		return models.AppealView{}, invalidInput("appellate court is required")
	}
	link := normalizeLink(req.OriginalCase)
	if link != nil {
		if err := link.Check(); err != nil {
			return models.AppealView{}, invalidInput("original case: %s", err)
		}
	}

	var view models.AppealView
	err := s.mutate(ctx, principal, caseID, "set_details", func(ctx context.Context, c models.Case, now time.Time) error {
		if err := s.checkOriginalCase(ctx, c.ID, link); err != nil {
			return err
		}

		saved, err := upsertDetails[models.AppealDetails](ctx, s.repo, c.ID, principal.ID, now, func(d *models.AppealDetails) error {
			d.OriginalCase = link
			d.AppellateCourt = strings.TrimSpace(req.AppellateCourt)
			d.AppealNumber = req.AppealNumber
			d.Appellant = req.Appellant
			d.Respondent = req.Respondent
			d.Grounds = req.Grounds
			d.FiledDate = req.FiledDate
			return nil
		})
		if err != nil {
			return err
		}
		view, err = s.assemble(ctx, saved, models.DateOf(now))
		return err
	})
	return view, err
}

// checkOriginalCase requires an internal link to name another existing case.
func (s *appealService) checkOriginalCase(ctx context.Context, caseID int64, link *models.OriginalCaseLink) error {
	if link == nil || link.Kind != models.OriginalCaseInternal {
		return nil
	}
	if *link.CaseID == caseID {
		return invalidState("an appeal cannot name itself as the original case")
	}
	if _, err := s.guard.cases.FindCaseByID(ctx, *link.CaseID); err != nil {
		return caseLookupError(err, *link.CaseID)
	}
	return nil
}

func (s *appealService) GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.AppealView, error) {
	var view models.AppealView
	err := s.read(ctx, principal, caseID, func(ctx context.Context, c models.Case, today models.Date) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "appeal")
		if err != nil {
			return err
		}
		view, err = s.assemble(ctx, d, today)
		return err
	})
	return view, err
}

func (s *appealService) AddDeadline(ctx context.Context, principal models.Principal, caseID int64, req models.DeadlineRequest) (models.AppealDeadline, error) {
	if err := checkDeadline(req); err != nil {
		return models.AppealDeadline{}, err
	}

	var saved models.AppealDeadline
	err := s.mutate(ctx, principal, caseID, "add_deadline", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "appeal")
		if err != nil {
			return err
		}

		deadline := models.AppealDeadline{DetailID: d.ID, ChildAudit: newChildAudit(principal.ID, now)}
		applyDeadline(&deadline, req)
		saved, err = s.repo.CreateDeadline(ctx, deadline)
		if err != nil {
			return err
		}
		saved.Overdue = saved.IsOverdue(models.DateOf(now))
		return nil
	})
	return saved, err
}

func (s *appealService) UpdateDeadline(ctx context.Context, principal models.Principal, caseID, deadlineID int64, req models.DeadlineRequest) (models.AppealDeadline, error) {
	if err := checkDeadline(req); err != nil {
		return models.AppealDeadline{}, err
	}

	var saved models.AppealDeadline
	err := s.mutate(ctx, principal, caseID, "update_deadline", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "appeal")
		if err != nil {
			return err
		}
		deadline, err := findChild(ctx, s.repo.FindDeadline, deadlineID, d.ID, deadlineDetail, "deadline")
		if err != nil {
			return err
		}

		applyDeadline(&deadline, req)
		deadline.Touch(principal.ID, now)
		saved, err = s.repo.UpdateDeadline(ctx, deadline)
		if err != nil {
			return err
		}
		saved.Overdue = saved.IsOverdue(models.DateOf(now))
		return nil
	})
	return saved, err
}

func (s *appealService) DeleteDeadline(ctx context.Context, principal models.Principal, caseID, deadlineID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_deadline", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "appeal")
		if err != nil {
			return err
		}
		if _, err := findChild(ctx, s.repo.FindDeadline, deadlineID, d.ID, deadlineDetail, "deadline"); err != nil {
			return err
		}
		return s.repo.DeleteDeadline(ctx, deadlineID)
	})
}

// SetOutcome records the single outcome of the appeal, replacing an earlier
// one.
func (s *appealService) SetOutcome(ctx context.Context, principal models.Principal, caseID int64, req models.OutcomeRequest) (models.AppealOutcome, error) {
	if err := checkOutcome(req); err != nil {
		return models.AppealOutcome{}, err
	}

	var saved models.AppealOutcome
	err := s.mutate(ctx, principal, caseID, "set_outcome", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "appeal")
		if err != nil {
			return err
		}

		outcome, err := s.repo.FindOutcome(ctx, d.ID)
		if errors.Is(err, store.ErrNotFound) {
			outcome = models.AppealOutcome{DetailID: d.ID, ChildAudit: newChildAudit(principal.ID, now)}
			applyOutcome(&outcome, req)
			saved, err = s.repo.CreateOutcome(ctx, outcome)
			return err
		}
		if err != nil {
			return err
		}

		applyOutcome(&outcome, req)
		outcome.Touch(principal.ID, now)
		saved, err = s.repo.UpdateOutcome(ctx, outcome)
		return err
	})
	return saved, err
}

func (s *appealService) DeleteOutcome(ctx context.Context, principal models.Principal, caseID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_outcome", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "appeal")
		if err != nil {
			return err
		}
		if err := s.repo.DeleteOutcome(ctx, d.ID); err != nil {
			if isStoreNotFound(err) {
				return notFound("no outcome is recorded for case %d", c.ID)
			}
			return err
		}
		return nil
	})
}

func (s *appealService) assemble(ctx context.Context, d models.AppealDetails, today models.Date) (models.AppealView, error) {
	deadlines, err := s.repo.ListDeadlines(ctx, d.ID)
	if err != nil {
		return models.AppealView{}, err
	}

	view := models.AppealView{Details: d, Deadlines: emptyIfNil(deadlines)}
	for i := range view.Deadlines {
		view.Deadlines[i].Overdue = view.Deadlines[i].IsOverdue(today)
		if view.Deadlines[i].Overdue {
			view.OverdueCount++
		}
	}

	outcome, err := s.repo.FindOutcome(ctx, d.ID)
	switch {
	case err == nil:
		view.Outcome = &outcome
	case !errors.Is(err, store.ErrNotFound):
		return models.AppealView{}, err
	}
	return view, nil
}

// normalizeLink drops an empty link.
func normalizeLink(link *models.OriginalCaseLink) *models.OriginalCaseLink {
	if link == nil || (link.Kind == "" && link.CaseID == nil && link.Reference == "") {
		return nil
	}
	normalized := *link
	normalized.Reference = strings.TrimSpace(normalized.Reference)
	return &normalized
}

// checkDeadline requires an extended deadline to carry its new date.
func checkDeadline(req models.DeadlineRequest) error {
	switch req.DeadlineType {
	case models.DeadlineFiling, models.DeadlineSubmission, models.DeadlineResponse, models.DeadlineHearing, models.DeadlineOther:
	default:
		return invalidInput("unknown deadline type %q", req.DeadlineType)
	}
	if req.DeadlineDate.IsZero() {
		return invalidInput("deadline date is required")
	}

	switch req.Status {
	case models.DeadlinePending, models.DeadlineMet, models.DeadlineMissed:
	case models.DeadlineExtended:
		if req.ExtendedDate == nil || req.ExtendedDate.IsZero() {
			return invalidState("an extended deadline requires the extended date")
		}
	default:
		return invalidInput("unknown deadline status %q", req.Status)
	}
	return nil
}

func applyDeadline(d *models.AppealDeadline, req models.DeadlineRequest) {
	d.DeadlineType = req.DeadlineType
	d.DeadlineDate = req.DeadlineDate
	d.Status = req.Status
	d.ExtendedDate = req.ExtendedDate
	if d.ExtendedDate != nil && d.ExtendedDate.IsZero() {
		d.ExtendedDate = nil
	}
	d.Notes = req.Notes
}

func checkOutcome(req models.OutcomeRequest) error {
	switch req.Decision {
	case models.AppealAllowed, models.AppealPartlyAllowed, models.AppealDismissed, models.AppealWithdrawn, models.AppealRemanded:
	default:
		return invalidInput("unknown appeal decision %q", req.Decision)
	}
	if req.DecisionDate.IsZero() {
		return invalidInput("decision date is required")
	}
	return nil
}

func applyOutcome(o *models.AppealOutcome, req models.OutcomeRequest) {
	o.Decision = req.Decision
	o.DecisionDate = req.DecisionDate
	o.Summary = req.Summary
}

func deadlineDetail(d models.AppealDeadline) int64 { return d.DetailID }
