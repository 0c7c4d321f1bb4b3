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

type inquiryService struct {
	detailWorkflow
	repo store.InquiryRepository
}

func NewInquiryService(storages *store.Storages, m *metrics.Workflow, logger *logger.Logger) InquiryService {
	logger.Debug().Msg("creating inquiry service")
	return &inquiryService{
		detailWorkflow: newDetailWorkflow(models.CaseTypeInquiries, storages, m, logger),
		repo:           storages.Inquiries,
	}
}

func (s *inquiryService) SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.InquiryRequest) (models.InquiryView, error) {
	if isBlank(req.CommissioningAuthority) || isBlank(req.Subject) {
		return models.InquiryView{}, invalidInput("commissioning authority and subject are required")
	}

	var view models.InquiryView
	err := s.mutate(ctx, principal, caseID, "set_details", func(ctx context.Context, c models.Case, now time.Time) error {
		saved, err := upsertDetails[models.InquiryDetails](ctx, s.repo, c.ID, principal.ID, now, func(d *models.InquiryDetails) error {
			d.CommissioningAuthority = strings.TrimSpace(req.CommissioningAuthority)
			d.TermsOfReference = req.TermsOfReference
			d.Subject = strings.TrimSpace(req.Subject)
			d.CommencedDate = req.CommencedDate
			d.ReportingDeadline = req.ReportingDeadline
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

func (s *inquiryService) GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.InquiryView, error) {
	var view models.InquiryView
	err := s.read(ctx, principal, caseID, func(ctx context.Context, c models.Case, today models.Date) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "inquiry")
		if err != nil {
			return err
		}
		view, err = s.assemble(ctx, d, today)
		return err
	})
	return view, err
}

// AddPanelMember allows one CHAIRPERSON per panel.
func (s *inquiryService) AddPanelMember(ctx context.Context, principal models.Principal, caseID int64, req models.PanelMemberRequest) (models.PanelMember, error) {
	if err := checkPanelMember(req); err != nil {
		return models.PanelMember{}, err
	}

	var saved models.PanelMember
	err := s.mutate(ctx, principal, caseID, "add_panel_member", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "inquiry")
		if err != nil {
			return err
		}
		if err := s.checkChairperson(ctx, d.ID, req.Role, 0); err != nil {
			return err
		}

		member := models.PanelMember{DetailID: d.ID, ChildAudit: newChildAudit(principal.ID, now)}
		applyPanelMember(&member, req)
		saved, err = s.repo.CreatePanelMember(ctx, member)
		return err
	})
	return saved, err
}

func (s *inquiryService) UpdatePanelMember(ctx context.Context, principal models.Principal, caseID, memberID int64, req models.PanelMemberRequest) (models.PanelMember, error) {
	if err := checkPanelMember(req); err != nil {
		return models.PanelMember{}, err
	}

	var saved models.PanelMember
	err := s.mutate(ctx, principal, caseID, "update_panel_member", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "inquiry")
		if err != nil {
			return err
		}
		member, err := findChild(ctx, s.repo.FindPanelMember, memberID, d.ID, panelMemberDetail, "panel member")
		if err != nil {
			return err
		}
		if err := s.checkChairperson(ctx, d.ID, req.Role, member.ID); err != nil {
			return err
		}

		applyPanelMember(&member, req)
		member.Touch(principal.ID, now)
		saved, err = s.repo.UpdatePanelMember(ctx, member)
		return err
	})
	return saved, err
}

func (s *inquiryService) DeletePanelMember(ctx context.Context, principal models.Principal, caseID, memberID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_panel_member", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "inquiry")
		if err != nil {
			return err
		}
		if _, err := findChild(ctx, s.repo.FindPanelMember, memberID, d.ID, panelMemberDetail, "panel member"); err != nil {
			return err
		}
		return s.repo.DeletePanelMember(ctx, memberID)
	})
}

// checkChairperson rejects a second CHAIRPERSON. excludeID is the member
// being edited.
func (s *inquiryService) checkChairperson(ctx context.Context, detailID int64, role models.PanelRole, excludeID int64) error {
	if role != models.PanelChairperson {
		return nil
	}

	panel, err := s.repo.ListPanel(ctx, detailID)
	if err != nil {
		return err
	}
	for _, m := range panel {
		if m.ID != excludeID && m.Role == models.PanelChairperson {
			return conflict("%q already chairs the inquiry panel", m.MemberName)
		}
	}
	return nil
}

func (s *inquiryService) AddFinding(ctx context.Context, principal models.Principal, caseID int64, req models.FindingRequest) (models.Finding, error) {
	if err := checkFinding(req); err != nil {
		return models.Finding{}, err
	}

	var saved models.Finding
	err := s.mutate(ctx, principal, caseID, "add_finding", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "inquiry")
		if err != nil {
			return err
		}
		number, err := s.repo.NextFindingNumber(ctx, d.ID)
		if err != nil {
			return err
		}

		finding := models.Finding{
			DetailID:      d.ID,
			FindingNumber: number,
			Severity:      models.SeverityMedium,
			ChildAudit:    newChildAudit(principal.ID, now),
		}
		applyFinding(&finding, req)
		saved, err = s.repo.CreateFinding(ctx, finding)
		return err
	})
	return saved, err
}

func (s *inquiryService) UpdateFinding(ctx context.Context, principal models.Principal, caseID, findingID int64, req models.FindingRequest) (models.Finding, error) {
	if err := checkFinding(req); err != nil {
		return models.Finding{}, err
	}

	var saved models.Finding
	err := s.mutate(ctx, principal, caseID, "update_finding", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "inquiry")
		if err != nil {
			return err
		}
		finding, err := findChild(ctx, s.repo.FindFinding, findingID, d.ID, findingDetail, "finding")
		if err != nil {
			return err
		}

		applyFinding(&finding, req)
		finding.Touch(principal.ID, now)
		saved, err = s.repo.UpdateFinding(ctx, finding)
		return err
	})
	return saved, err
}

// DeleteFinding removes the finding. Decisions that referenced it stay,
// unlinked. Remaining findings keep their numbers.
func (s *inquiryService) DeleteFinding(ctx context.Context, principal models.Principal, caseID, findingID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_finding", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "inquiry")
		if err != nil {
			return err
		}
		if _, err := findChild(ctx, s.repo.FindFinding, findingID, d.ID, findingDetail, "finding"); err != nil {
			return err
		}
		return s.repo.DeleteFinding(ctx, findingID)
	})
}

func (s *inquiryService) AddDecision(ctx context.Context, principal models.Principal, caseID int64, req models.DecisionRequest) (models.InquiryDecision, error) {
	if err := checkDecision(req); err != nil {
		return models.InquiryDecision{}, err
	}

	var saved models.InquiryDecision
	err := s.mutate(ctx, principal, caseID, "add_decision", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "inquiry")
		if err != nil {
			return err
		}
		if err := s.checkLinkedFinding(ctx, d.ID, req.FindingID); err != nil {
			return err
		}

		decision := models.InquiryDecision{DetailID: d.ID, ChildAudit: newChildAudit(principal.ID, now)}
		applyDecision(&decision, req)
		saved, err = s.repo.CreateDecision(ctx, decision)
		return err
	})
	return saved, err
}

func (s *inquiryService) UpdateDecision(ctx context.Context, principal models.Principal, caseID, decisionID int64, req models.DecisionRequest) (models.InquiryDecision, error) {
	if err := checkDecision(req); err != nil {
		return models.InquiryDecision{}, err
	}

	var saved models.InquiryDecision
	err := s.mutate(ctx, principal, caseID, "update_decision", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "inquiry")
		if err != nil {
			return err
		}
		decision, err := findChild(ctx, s.repo.FindDecision, decisionID, d.ID, decisionDetail, "decision")
		if err != nil {
			return err
		}
		if err := s.checkLinkedFinding(ctx, d.ID, req.FindingID); err != nil {
			return err
		}

		applyDecision(&decision, req)
		decision.Touch(principal.ID, now)
		saved, err = s.repo.UpdateDecision(ctx, decision)
		return err
	})
	return saved, err
}

func (s *inquiryService) DeleteDecision(ctx context.Context, principal models.Principal, caseID, decisionID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_decision", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "inquiry")
		if err != nil {
			return err
		}
		if _, err := findChild(ctx, s.repo.FindDecision, decisionID, d.ID, decisionDetail, "decision"); err != nil {
			return err
		}
		return s.repo.DeleteDecision(ctx, decisionID)
	})
}

func (s *inquiryService) checkLinkedFinding(ctx context.Context, detailID int64, findingID *int64) error {
	if findingID == nil {
		return nil
	}
	_, err := findChild(ctx, s.repo.FindFinding, *findingID, detailID, findingDetail, "finding")
	return err
}

func (s *inquiryService) assemble(ctx context.Context, d models.InquiryDetails, today models.Date) (models.InquiryView, error) {
	panel, err := s.repo.ListPanel(ctx, d.ID)
	if err != nil {
		return models.InquiryView{}, err
	}
	findings, err := s.repo.ListFindings(ctx, d.ID)
	if err != nil {
		return models.InquiryView{}, err
	}
	decisions, err := s.repo.ListDecisions(ctx, d.ID)
	if err != nil {
		return models.InquiryView{}, err
	}

	view := models.InquiryView{
		Details:       d,
		Panel:         emptyIfNil(panel),
		Findings:      emptyIfNil(findings),
		Decisions:     emptyIfNil(decisions),
		FindingCount:  len(findings),
		DecisionCount: len(decisions),
		ReportOverdue: d.ReportingDeadline != nil && !d.ReportingDeadline.IsZero() && d.ReportingDeadline.Before(today),
	}
	for _, dec := range decisions {
		if dec.Status == models.DecisionImplemented {
			view.ImplementedDecisionCount++
		}
	}
	return view, nil
}

func checkPanelMember(req models.PanelMemberRequest) error {
	if isBlank(req.MemberName) {
		return invalidInput("member name is required")
	}
	switch req.Role {
	case models.PanelChairperson, models.PanelRoleMember, models.PanelSecretary:
		return nil
	}
	return invalidInput("unknown panel role %q", req.Role)
}

func applyPanelMember(m *models.PanelMember, req models.PanelMemberRequest) {
	m.MemberName = strings.TrimSpace(req.MemberName)
	m.Designation = req.Designation
	m.Role = req.Role
}

func checkFinding(req models.FindingRequest) error {
	if isBlank(req.Description) {
		return invalidInput("finding description is required")
	}
	switch req.Severity {
	case "", models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical:
		return nil
	}
	return invalidInput("unknown finding severity %q", req.Severity)
}

func applyFinding(f *models.Finding, req models.FindingRequest) {
	f.Description = req.Description
	if req.Severity != "" {
		f.Severity = req.Severity
	}
}

// checkDecision requires an implemented decision to carry its date.
func checkDecision(req models.DecisionRequest) error {
	if isBlank(req.Description) {
		return invalidInput("decision description is required")
	}
	switch req.Status {
	case models.DecisionPending, models.DecisionInProgress, models.DecisionRejected:
	case models.DecisionImplemented:
		if req.ImplementedDate == nil || req.ImplementedDate.IsZero() {
			return invalidState("an implemented decision requires the implemented date")
		}
	default:
		return invalidInput("unknown decision status %q", req.Status)
	}
	return nil
}

func applyDecision(d *models.InquiryDecision, req models.DecisionRequest) {
	d.FindingID = req.FindingID
	d.Description = req.Description
	d.ResponsibleParty = req.ResponsibleParty
	d.Status = req.Status
	d.ImplementedDate = req.ImplementedDate
	if d.ImplementedDate != nil && d.ImplementedDate.IsZero() {
		d.ImplementedDate = nil
	}
}

func panelMemberDetail(m models.PanelMember) int64 { return m.DetailID }

func findingDetail(f models.Finding) int64 { return f.DetailID }

func decisionDetail(d models.InquiryDecision) int64 { return d.DetailID }
