package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/shopspring/decimal"
)

type otherCaseService struct {
	detailWorkflow
	repo store.OtherCaseRepository
}

func NewOtherCaseService(storages *store.Storages, m *metrics.Workflow, logger *logger.Logger) OtherCaseService {
	logger.Debug().Msg("creating other case service")
	return &otherCaseService{
		detailWorkflow: newDetailWorkflow(models.CaseTypeOther, storages, m, logger),
		repo:           storages.OtherCases,
	}
}

func (s *otherCaseService) SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.OtherCaseRequest) (models.OtherCaseView, error) {
	if isBlank(req.CaseNature) {
		return models.OtherCaseView{}, invalidInput("case nature is required")
	}

	var view models.OtherCaseView
	err := s.mutate(ctx, principal, caseID, "set_details", func(ctx context.Context, c models.Case, now time.Time) error {
		saved, err := upsertDetails[models.OtherCaseDetails](ctx, s.repo, c.ID, principal.ID, now, func(d *models.OtherCaseDetails) error {
			d.CaseNature = strings.TrimSpace(req.CaseNature)
			d.Description = req.Description
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

func (s *otherCaseService) GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.OtherCaseView, error) {
	var view models.OtherCaseView
	err := s.read(ctx, principal, caseID, func(ctx context.Context, c models.Case, _ models.Date) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "other case")
		if err != nil {
			return err
		}
		view, err = s.assemble(ctx, d)
		return err
	})
	return view, err
}

// AddAttribute keeps attribute names unique within the case.
func (s *otherCaseService) AddAttribute(ctx context.Context, principal models.Principal, caseID int64, req models.AttributeRequest) (models.CaseAttribute, error) {
	if err := checkAttribute(req); err != nil {
		return models.CaseAttribute{}, err
	}

	var saved models.CaseAttribute
	err := s.mutate(ctx, principal, caseID, "add_attribute", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "other case")
		if err != nil {
			return err
		}
		if err := s.checkAttributeName(ctx, d.ID, req.Name, 0); err != nil {
			return err
		}

		attr := models.CaseAttribute{DetailID: d.ID, ChildAudit: newChildAudit(principal.ID, now)}
		applyAttribute(&attr, req)
		saved, err = s.repo.CreateAttribute(ctx, attr)
		return err
	})
	return saved, err
}

func (s *otherCaseService) UpdateAttribute(ctx context.Context, principal models.Principal, caseID, attributeID int64, req models.AttributeRequest) (models.CaseAttribute, error) {
	if err := checkAttribute(req); err != nil {
		return models.CaseAttribute{}, err
	}

	var saved models.CaseAttribute
	err := s.mutate(ctx, principal, caseID, "update_attribute", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "other case")
		if err != nil {
			return err
		}
		attr, err := findChild(ctx, s.repo.FindAttribute, attributeID, d.ID, attributeDetail, "attribute")
		if err != nil {
			return err
		}
		if err := s.checkAttributeName(ctx, d.ID, req.Name, attr.ID); err != nil {
			return err
		}

		applyAttribute(&attr, req)
		attr.Touch(principal.ID, now)
		saved, err = s.repo.UpdateAttribute(ctx, attr)
		return err
	})
	return saved, err
}

func (s *otherCaseService) DeleteAttribute(ctx context.Context, principal models.Principal, caseID, attributeID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_attribute", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "other case")
		if err != nil {
			return err
		}
		if _, err := findChild(ctx, s.repo.FindAttribute, attributeID, d.ID, attributeDetail, "attribute"); err != nil {
			return err
		}
		return s.repo.DeleteAttribute(ctx, attributeID)
	})
}

func (s *otherCaseService) checkAttributeName(ctx context.Context, detailID int64, name string, excludeID int64) error {
	name = strings.TrimSpace(name)
	taken, err := s.repo.AttributeNameExists(ctx, detailID, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return conflict("attribute %q already exists on this case", name)
	}
	return nil
}

func (s *otherCaseService) AddTemplate(ctx context.Context, principal models.Principal, caseID int64, req models.TemplateRequest) (models.CaseTemplate, error) {
	return s.createTemplate(ctx, principal, caseID, "add_template", req, nil)
}

// UploadTemplate stores the template document and records the template.
func (s *otherCaseService) UploadTemplate(ctx context.Context, principal models.Principal, caseID int64, req models.TemplateRequest, upload models.Upload) (models.CaseTemplate, error) {
	if upload.IsEmpty() {
		return models.CaseTemplate{}, invalidInput("a file is required")
	}
	return s.createTemplate(ctx, principal, caseID, "upload_template", req, &upload)
}

func (s *otherCaseService) createTemplate(ctx context.Context, principal models.Principal, caseID int64, operation string,
	req models.TemplateRequest, upload *models.Upload) (models.CaseTemplate, error) {
	if err := checkTemplateRequest(req); err != nil {
		return models.CaseTemplate{}, err
	}

	var saved models.CaseTemplate
	uploads := newPendingUploads(s.documents)
	err := s.mutate(ctx, principal, caseID, operation, func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "other case")
		if err != nil {
			return err
		}

		tmpl := models.CaseTemplate{DetailID: d.ID, Status: models.TemplateDraft, ChildAudit: newChildAudit(principal.ID, now)}
		applyTemplate(&tmpl, req)
		if upload != nil {
			doc, err := s.storeUpload(ctx, uploads, principal, *upload)
			if err != nil {
				return err
			}
			tmpl.DocumentID = &doc.ID
		}
		if err := checkTemplateBody(tmpl); err != nil {
			return err
		}

		saved, err = s.repo.CreateTemplate(ctx, tmpl)
		return err
	})
	uploads.discardOn(ctx, err)
	return saved, err
}

// UpdateTemplate moves the status forward only, from DRAFT through ACTIVE to
// ARCHIVED. An omitted status keeps the current one, and an omitted document
// keeps the linked one unless the request removes it.
func (s *otherCaseService) UpdateTemplate(ctx context.Context, principal models.Principal, caseID, templateID int64, req models.TemplateRequest) (models.CaseTemplate, error) {
	if err := checkTemplateRequest(req); err != nil {
		return models.CaseTemplate{}, err
	}

	var saved models.CaseTemplate
	err := s.mutate(ctx, principal, caseID, "update_template", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "other case")
		if err != nil {
			return err
		}
		tmpl, err := findChild(ctx, s.repo.FindTemplate, templateID, d.ID, templateDetail, "template")
		if err != nil {
			return err
		}
		if req.Status != "" && !tmpl.Status.CanMoveTo(req.Status) {
			return invalidState("template cannot move from %s to %s", tmpl.Status, req.Status)
		}

		documentID := tmpl.DocumentID
		applyTemplate(&tmpl, req)
		if tmpl.DocumentID == nil && !req.RemoveDocument {
			tmpl.DocumentID = documentID
		}
		if err := checkTemplateBody(tmpl); err != nil {
			return err
		}

		tmpl.Touch(principal.ID, now)
		saved, err = s.repo.UpdateTemplate(ctx, tmpl)
		return err
	})
	return saved, err
}

func (s *otherCaseService) DeleteTemplate(ctx context.Context, principal models.Principal, caseID, templateID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_template", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "other case")
		if err != nil {
			return err
		}
		if _, err := findChild(ctx, s.repo.FindTemplate, templateID, d.ID, templateDetail, "template"); err != nil {
			return err
		}
		return s.repo.DeleteTemplate(ctx, templateID)
	})
}

func (s *otherCaseService) assemble(ctx context.Context, d models.OtherCaseDetails) (models.OtherCaseView, error) {
	attrs, err := s.repo.ListAttributes(ctx, d.ID)
	if err != nil {
		return models.OtherCaseView{}, err
	}
	templates, err := s.repo.ListTemplates(ctx, d.ID)
	if err != nil {
		return models.OtherCaseView{}, err
	}
	return models.OtherCaseView{Details: d, Attributes: emptyIfNil(attrs), Templates: emptyIfNil(templates)}, nil
}

// checkAttribute requires the value to parse as the declared type.
func checkAttribute(req models.AttributeRequest) error {
	if isBlank(req.Name) {
		return invalidInput("attribute name is required")
	}
	if req.DisplayOrder < 0 {
		return invalidInput("display order must not be negative")
	}
	if req.Value == "" {
		return nil
	}

	var err error
	switch req.DataType {
	case "", models.AttributeText:
	case models.AttributeNumber:
		_, err = decimal.NewFromString(req.Value)
	case models.AttributeDate:
		_, err = models.ParseDate(req.Value)
	case models.AttributeBoolean:
		_, err = strconv.ParseBool(req.Value)
	default:
		return invalidInput("unknown attribute type %q", req.DataType)
	}
	if err != nil {
		return invalidInput("attribute %q is not a valid %s value", req.Name, req.DataType)
	}
	return nil
}

func applyAttribute(a *models.CaseAttribute, req models.AttributeRequest) {
	a.Name = strings.TrimSpace(req.Name)
	a.Value = req.Value
	a.DataType = req.DataType
	if a.DataType == "" {
		a.DataType = models.AttributeText
	}
	a.Category = req.Category
	a.DisplayOrder = req.DisplayOrder
}

func checkTemplateRequest(req models.TemplateRequest) error {
	if isBlank(req.Name) {
		return invalidInput("template name is required")
	}
	if req.RemoveDocument && req.DocumentID != nil {
		return invalidInput("a document cannot be linked and removed at once")
	}
	switch req.Status {
	case "", models.TemplateDraft, models.TemplateActive, models.TemplateArchived:
		return nil
	}
	return invalidInput("unknown template status %q", req.Status)
}

// checkTemplateBody requires inline content, a document, or both.
func checkTemplateBody(t models.CaseTemplate) error {
	if (t.Content == nil || isBlank(*t.Content)) && t.DocumentID == nil {
		return invalidState("a template needs inline content or a document")
	}
	return nil
}

func applyTemplate(t *models.CaseTemplate, req models.TemplateRequest) {
	t.Name = strings.TrimSpace(req.Name)
	t.Description = req.Description
	t.Content = req.Content
	t.DocumentID = req.DocumentID
	if req.Status != "" {
		t.Status = req.Status
	}
}

func attributeDetail(a models.CaseAttribute) int64 { return a.DetailID }

func templateDetail(t models.CaseTemplate) int64 { return t.DetailID }
