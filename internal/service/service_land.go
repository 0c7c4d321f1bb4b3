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

type landService struct {
	detailWorkflow
	repo store.LandRepository
}

func NewLandService(storages *store.Storages, m *metrics.Workflow, logger *logger.Logger) LandService {
	logger.Debug().Msg("creating land service")
	return &landService{
		detailWorkflow: newDetailWorkflow(models.CaseTypeLand, storages, m, logger),
		repo:           storages.Land,
	}
}

// SetDetails saves the parcel. Land reference numbers are unique across all
// cases.
func (s *landService) SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.LandRequest) (models.LandView, error) {
	reference := strings.TrimSpace(req.LandReferenceNumber)
	if reference == "" {
		return models.LandView{}, invalidInput("land reference number is required")
	}

	var view models.LandView
	err := s.mutate(ctx, principal, caseID, "set_details", func(ctx context.Context, c models.Case, now time.Time) error {
		saved, err := upsertDetails[models.LandDetails](ctx, s.repo, c.ID, principal.ID, now, func(d *models.LandDetails) error {
			taken, err := s.repo.LandReferenceExists(ctx, reference, d.ID)
			if err != nil {
				return err
			}
			if taken {
				return conflict("land reference number %q is already registered", reference)
			}

			d.LandReferenceNumber = reference
			d.SurveyPlanNumber = req.SurveyPlanNumber
			d.Location = req.Location
			d.Extent = req.Extent
			d.DisputeNature = req.DisputeNature
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

func (s *landService) GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.LandView, error) {
	var view models.LandView
	err := s.read(ctx, principal, caseID, func(ctx context.Context, c models.Case, _ models.Date) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "land")
		if err != nil {
			return err
		}
		view, err = s.assemble(ctx, d)
		return err
	})
	return view, err
}

func (s *landService) AddOwnership(ctx context.Context, principal models.Principal, caseID int64, req models.OwnershipRequest) (models.OwnershipRecord, error) {
	if err := checkOwnershipDates(req); err != nil {
		return models.OwnershipRecord{}, err
	}

	var saved models.OwnershipRecord
	err := s.mutate(ctx, principal, caseID, "add_ownership", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "land")
		if err != nil {
			return err
		}

		record := models.OwnershipRecord{DetailID: d.ID, ChildAudit: newChildAudit(principal.ID, now)}
		applyOwnership(&record, req)

		if record.IsCurrent() {
			if err := s.closeCurrentOwner(ctx, d.ID, record.StartDate, principal.ID, now); err != nil {
				return err
			}
		}

		saved, err = s.repo.CreateOwnership(ctx, record)
		return err
	})
	return saved, err
}

// closeCurrentOwner ends the open record of the chain on the date the next
// owner starts.
func (s *landService) closeCurrentOwner(ctx context.Context, detailID int64, nextStart models.Date, actor int64, now time.Time) error {
	chain, err := s.repo.ListOwnership(ctx, detailID)
	if err != nil {
		return err
	}

	current := currentOwner(chain)
	if current == nil {
		return nil
	}
	if !nextStart.After(current.StartDate) {
		return invalidState("new owner must start after %s, when the current owner %q started", current.StartDate, current.OwnerName)
	}

	end := nextStart
	current.EndDate = &end
	current.Touch(actor, now)
	_, err = s.repo.UpdateOwnership(ctx, *current)
	return err
}

func (s *landService) UpdateOwnership(ctx context.Context, principal models.Principal, caseID, ownershipID int64, req models.OwnershipRequest) (models.OwnershipRecord, error) {
	if err := checkOwnershipDates(req); err != nil {
		return models.OwnershipRecord{}, err
	}

	var saved models.OwnershipRecord
	err := s.mutate(ctx, principal, caseID, "update_ownership", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "land")
		if err != nil {
			return err
		}
		record, err := findChild(ctx, s.repo.FindOwnership, ownershipID, d.ID, ownershipDetail, "ownership record")
		if err != nil {
			return err
		}

		applyOwnership(&record, req)
		if record.IsCurrent() {
			chain, err := s.repo.ListOwnership(ctx, d.ID)
			if err != nil {
				return err
			}
			for _, other := range chain {
				if other.ID != record.ID && other.IsCurrent() {
					return conflict("%q is already the current owner", other.OwnerName)
				}
			}
		}

		record.Touch(principal.ID, now)
		saved, err = s.repo.UpdateOwnership(ctx, record)
		return err
	})
	return saved, err
}

func (s *landService) AddDeed(ctx context.Context, principal models.Principal, caseID int64, req models.DeedRequest) (models.LandDeed, error) {
	return s.createDeed(ctx, principal, caseID, "add_deed", req, nil)
}

// UploadDeed stores the scanned deed and records it in one step.
func (s *landService) UploadDeed(ctx context.Context, principal models.Principal, caseID int64, req models.DeedRequest, upload models.Upload) (models.LandDeed, error) {
	if upload.IsEmpty() {
		return models.LandDeed{}, invalidInput("a file is required")
	}
	return s.createDeed(ctx, principal, caseID, "upload_deed", req, &upload)
}

func (s *landService) createDeed(ctx context.Context, principal models.Principal, caseID int64, operation string,
	req models.DeedRequest, upload *models.Upload) (models.LandDeed, error) {
	if err := checkDeed(req); err != nil {
		return models.LandDeed{}, err
	}

	var saved models.LandDeed
	uploads := newPendingUploads(s.documents)
	err := s.mutate(ctx, principal, caseID, operation, func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "land")
		if err != nil {
			return err
		}

		deed := models.LandDeed{DetailID: d.ID, ChildAudit: newChildAudit(principal.ID, now)}
		applyDeed(&deed, req)
		if upload != nil {
			doc, err := s.storeUpload(ctx, uploads, principal, *upload)
			if err != nil {
				return err
			}
			deed.DocumentID = &doc.ID
		}

		saved, err = s.repo.CreateDeed(ctx, deed)
		return err
	})
	uploads.discardOn(ctx, err)
	return saved, err
}

// UpdateDeed rewrites the deed. An omitted document keeps the linked one
// unless the request removes it.
func (s *landService) UpdateDeed(ctx context.Context, principal models.Principal, caseID, deedID int64, req models.DeedRequest) (models.LandDeed, error) {
	if err := checkDeed(req); err != nil {
		return models.LandDeed{}, err
	}

	var saved models.LandDeed
	err := s.mutate(ctx, principal, caseID, "update_deed", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "land")
		if err != nil {
			return err
		}
		deed, err := findChild(ctx, s.repo.FindDeed, deedID, d.ID, deedDetail, "deed")
		if err != nil {
			return err
		}

		documentID := deed.DocumentID
		applyDeed(&deed, req)
		if deed.DocumentID == nil && !req.RemoveDocument {
			deed.DocumentID = documentID
		}
		deed.Touch(principal.ID, now)
		saved, err = s.repo.UpdateDeed(ctx, deed)
		return err
	})
	return saved, err
}

func (s *landService) DeleteDeed(ctx context.Context, principal models.Principal, caseID, deedID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_deed", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "land")
		if err != nil {
			return err
		}
		if _, err := findChild(ctx, s.repo.FindDeed, deedID, d.ID, deedDetail, "deed"); err != nil {
			return err
		}
		return s.repo.DeleteDeed(ctx, deedID)
	})
}

func (s *landService) assemble(ctx context.Context, d models.LandDetails) (models.LandView, error) {
	chain, err := s.repo.ListOwnership(ctx, d.ID)
	if err != nil {
		return models.LandView{}, err
	}
	deeds, err := s.repo.ListDeeds(ctx, d.ID)
	if err != nil {
		return models.LandView{}, err
	}

	return models.LandView{
		Details:        d,
		Ownership:      emptyIfNil(chain),
		Deeds:          emptyIfNil(deeds),
		CurrentOwner:   currentOwner(chain),
		OwnershipCount: len(chain),
		DeedCount:      len(deeds),
	}, nil
}

func currentOwner(chain []models.OwnershipRecord) *models.OwnershipRecord {
	for i := range chain {
		if chain[i].IsCurrent() {
			current := chain[i]
			return &current
		}
	}
	return nil
}

func checkOwnershipDates(req models.OwnershipRequest) error {
	if isBlank(req.OwnerName) {
		return invalidInput("owner name is required")
	}
	if req.StartDate.IsZero() {
		return invalidInput("ownership start date is required")
	}
	if req.EndDate != nil && !req.EndDate.IsZero() && !req.EndDate.After(req.StartDate) {
		return invalidState("ownership end date %s must be after the start date %s", req.EndDate, req.StartDate)
	}
	return nil
}

func applyOwnership(o *models.OwnershipRecord, req models.OwnershipRequest) {
	o.OwnerName = strings.TrimSpace(req.OwnerName)
	o.OwnershipType = req.OwnershipType
	o.StartDate = req.StartDate
	o.EndDate = req.EndDate
	if o.EndDate != nil && o.EndDate.IsZero() {
		o.EndDate = nil
	}
	o.Remarks = req.Remarks
}

func checkDeed(req models.DeedRequest) error {
	if isBlank(req.DeedNumber) {
		return invalidInput("deed number is required")
	}
	if req.RemoveDocument && req.DocumentID != nil {
		return invalidInput("a document cannot be linked and removed at once")
	}
	switch req.DeedType {
	case models.DeedTypeDeed, models.DeedTypeSurveyPlan, models.DeedTypeTitleCertificate, models.DeedTypeOther:
		return nil
	}
	return invalidInput("unknown deed type %q", req.DeedType)
}

func applyDeed(d *models.LandDeed, req models.DeedRequest) {
	d.DeedNumber = strings.TrimSpace(req.DeedNumber)
	d.DeedType = req.DeedType
	d.RegistrationDate = req.RegistrationDate
	d.RegistryOffice = req.RegistryOffice
	d.Description = req.Description
	d.DocumentID = req.DocumentID
}

func ownershipDetail(o models.OwnershipRecord) int64 { return o.DetailID }

func deedDetail(d models.LandDeed) int64 { return d.DetailID }
