package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/service"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/validators"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

func jsonRequest(t *testing.T, method, path string, p *models.Principal, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if p != nil {
		req.Header.Set("Authorization", bearer(t, *p))
	}
	return req
}

func multipartRequest(t *testing.T, path string, p models.Principal, fields map[string]string, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", bearer(t, p))
	return req
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestInit_CreateCaseRoleGate(t *testing.T) {
	tests := []struct {
		name       string
		principal  models.Principal
		wantStatus int
	}{
		{name: "supervisor creates", principal: supervisor, wantStatus: http.StatusCreated},
		{name: "admin creates", principal: models.Principal{ID: 1, Role: models.RoleAdmin}, wantStatus: http.StatusCreated},
		{name: "legal officer is refused", principal: officer, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, Dependencies{})
			req := models.CreateCaseRequest{Title: "Recovery of rent", CaseType: models.CaseTypeMoneyRecovery, ReferenceNumber: "MR/2026/1"}

			if tt.wantStatus == http.StatusCreated {
				m.cases.EXPECT().
					CreateCase(gomock.Any(), tt.principal, req).
					Return(models.Case{ID: 11, Title: req.Title, Status: models.CaseStatusNew}, nil)
			}

			rr := serve(h, jsonRequest(t, http.MethodPost, "/api/cases", &tt.principal, req))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				var created models.Case
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
				assert.Equal(t, int64(11), created.ID)
			}
		})
	}
}

func TestInit_RejectsUnauthenticated(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "not a bearer header", header: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, Dependencies{})
			req := httptest.NewRequest(http.MethodGet, "/api/cases/mine", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rr := serve(h, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.NotEmpty(t, decodeError(t, rr))
		})
	}
}

func TestInit_ErrorCategoriesMapToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "not found", err: fmt.Errorf("%w: case 9", service.ErrNotFound), wantStatus: http.StatusNotFound, wantMsg: "not found: case 9"},
		{name: "invalid state", err: fmt.Errorf("%w: case 9 is closed", service.ErrInvalidState), wantStatus: http.StatusUnprocessableEntity},
		{name: "permission denied", err: service.ErrPermissionDenied, wantStatus: http.StatusForbidden},
		{name: "unexpected failure hides message", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantMsg: http.StatusText(http.StatusInternalServerError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, Dependencies{})
			m.cases.EXPECT().GetCase(gomock.Any(), officer, int64(9)).Return(models.CaseView{}, tt.err)

			rr := serve(h, jsonRequest(t, http.MethodGet, "/api/cases/9", &officer, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeError(t, rr))
			}
		})
	}
}

func TestInit_InvalidPathID(t *testing.T) {
	h, _ := newTestHandler(t, Dependencies{})

	rr := serve(h, jsonRequest(t, http.MethodGet, "/api/cases/abc", &officer, nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr), "caseID must be a positive integer")
}

func TestInit_AssignCase(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	officerID := int64(7)
	m.cases.EXPECT().
		AssignToOfficer(gomock.Any(), supervisor, int64(4), officerID).
		Return(models.Case{ID: 4, AssignedOfficerID: &officerID}, nil)

	rr := serve(h, jsonRequest(t, http.MethodPut, "/api/cases/4/assign", &supervisor, models.AssignCaseRequest{OfficerID: officerID}))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Case
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.NotNil(t, got.AssignedOfficerID)
	assert.Equal(t, officerID, *got.AssignedOfficerID)
}

func TestInit_ValidatesBodies(t *testing.T) {
	h, _ := newTestHandler(t, Dependencies{Validator: validators.NewRequestValidator()})

	rr := serve(h, jsonRequest(t, http.MethodPost, "/api/cases/4/comments", &officer, models.CommentRequest{}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestInit_EmptyBody(t *testing.T) {
	h, _ := newTestHandler(t, Dependencies{})

	rr := serve(h, jsonRequest(t, http.MethodPut, "/api/cases/4/land", &officer, nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr), "request body is empty")
}

func TestInit_DeleteChild(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	m.land.EXPECT().DeleteDeed(gomock.Any(), officer, int64(4), int64(15)).Return(nil)

	rr := serve(h, jsonRequest(t, http.MethodDelete, "/api/cases/4/land/deeds/15", &officer, nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestInit_UploadDeed(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	content := []byte("%PDF-1.4 deed scan")

	m.land.EXPECT().
		UploadDeed(gomock.Any(), officer, int64(4), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Principal, _ int64, req models.DeedRequest, upload models.Upload) (models.LandDeed, error) {
			assert.Equal(t, "D-118", req.DeedNumber)
			assert.Equal(t, "deed.pdf", upload.FileName)
			assert.Equal(t, "application/pdf", upload.ContentType)
			assert.Equal(t, content, upload.Content)
			return models.LandDeed{ID: 2, DeedNumber: req.DeedNumber}, nil
		})

	req := multipartRequest(t, "/api/cases/4/land/deeds/upload", officer,
		map[string]string{"details": `{"deedNumber":"D-118","deedType":"DEED"}`}, "deed.pdf", content)
	rr := serve(h, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestInit_CreateAgreementWithFile(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})

	m.agreements.EXPECT().
		CreateAgreement(gomock.Any(), officer, gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, _ models.Principal, req models.CreateAgreementRequest, upload *models.Upload) (models.AgreementView, error) {
			assert.Equal(t, "Office lease", req.Title)
			assert.Equal(t, models.AgreementLease, req.AgreementType)
			assert.Equal(t, "lease.txt", upload.FileName)
			return models.AgreementView{Agreement: models.Agreement{ID: 5, Title: req.Title, Status: models.AgreementDraft}}, nil
		})

	req := multipartRequest(t, "/api/agreements", officer,
		map[string]string{"agreement": `{"title":"Office lease","agreementType":"LEASE"}`}, "lease.txt", []byte("terms"))
	rr := serve(h, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var got models.AgreementView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.ID)
}

func TestInit_CreateAgreementWithoutFile(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})

	m.agreements.EXPECT().
		CreateAgreement(gomock.Any(), officer, gomock.Any(), gomock.Nil()).
		Return(models.AgreementView{Agreement: models.Agreement{ID: 6}}, nil)

	req := multipartRequest(t, "/api/agreements", officer,
		map[string]string{"agreement": `{"title":"NDA","agreementType":"NDA"}`}, "", nil)
	rr := serve(h, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestInit_SignAgreementRefused(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	junior := models.Principal{ID: 21, Role: models.RoleAgreementApprover, ApproverLevel: 1}

	m.agreements.EXPECT().
		DigitallySign(gomock.Any(), junior, int64(5)).
		Return(models.AgreementView{}, fmt.Errorf("%w: approver level 1 cannot sign", service.ErrPermissionDenied))

	rr := serve(h, jsonRequest(t, http.MethodPut, "/api/agreements/5/sign", &junior, nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, decodeError(t, rr), "approver level 1 cannot sign")
}

func TestInit_ReviewAgreement(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	reviewer := models.Principal{ID: 12, Role: models.RoleAgreementReviewer}
	body := models.AgreementTransitionRequest{Status: models.AgreementPendingApproval, Remarks: "ok"}

	m.agreements.EXPECT().
		ReviewAgreement(gomock.Any(), reviewer, int64(5), body).
		Return(models.Agreement{ID: 5, Status: models.AgreementPendingApproval}, nil)

	rr := serve(h, jsonRequest(t, http.MethodPut, "/api/agreements/5/review", &reviewer, body))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), string(models.AgreementPendingApproval))
}

func TestInit_DownloadDocument(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	content := []byte("hello")

	m.documents.EXPECT().
		Download(gomock.Any(), officer, int64(30)).
		Return(models.Document{ID: 30, FileName: "note.txt", ContentType: "text/plain"}, content, nil)

	rr := serve(h, jsonRequest(t, http.MethodGet, "/api/documents/30", &officer, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="note.txt"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, content, rr.Body.Bytes())
}

func TestInit_ListUsersPassesRole(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})

	m.users.EXPECT().
		ListUsers(gomock.Any(), supervisor, models.RoleLegalOfficer).
		Return([]models.User{{ID: 7}}, nil)

	rr := serve(h, jsonRequest(t, http.MethodGet, "/api/users?role=LEGAL_OFFICER", &supervisor, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_Health(t *testing.T) {
	tests := []struct {
		name       string
		checker    HealthChecker
		wantStatus int
		wantBody   string
	}{
		{name: "no checker", wantStatus: http.StatusOK, wantBody: `"database":"UNKNOWN"`},
		{name: "database answers", checker: pingFunc(func(context.Context) error { return nil }), wantStatus: http.StatusOK, wantBody: `"database":"UP"`},
		{name: "database down", checker: pingFunc(func(context.Context) error { return errors.New("refused") }), wantStatus: http.StatusServiceUnavailable, wantBody: `"status":"DOWN"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, Dependencies{Health: tt.checker})

			rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func TestInit_Version(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.VersionInfo{Version: "1.4.0", Commit: "abc123"})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.4.0","buildCommit":"abc123"}`, rr.Body.String())
}

func TestInit_Metrics(t *testing.T) {
	h, _ := newTestHandler(t, Dependencies{})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/plain"))
}

func TestInit_TraceIDEchoed(t *testing.T) {
	h, _ := newTestHandler(t, Dependencies{})
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "trace-42")

	rr := serve(h, req)

	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}

func TestInit_UpdateHearingRejected(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	m.criminal.EXPECT().
		UpdateHearing(gomock.Any(), officer, int64(4), int64(12), gomock.Any()).
		Return(models.Hearing{}, fmt.Errorf("%w: an adjourned hearing requires the next hearing date", service.ErrInvalidState))

	rr := serve(h, jsonRequest(t, http.MethodPut, "/api/cases/4/criminal/hearings/12", &officer,
		map[string]string{"hearingDate": "2026-03-12", "outcome": "ADJOURNED"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, decodeError(t, rr), "next hearing date")
}

func TestInit_DeleteAppealOutcome(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	m.appeals.EXPECT().DeleteOutcome(gomock.Any(), officer, int64(4)).Return(nil)

	rr := serve(h, jsonRequest(t, http.MethodDelete, "/api/cases/4/appeal/outcome", &officer, nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestInit_AddFinding(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	m.inquiries.EXPECT().
		AddFinding(gomock.Any(), officer, int64(4), models.FindingRequest{Description: "Records missing", Severity: models.SeverityHigh}).
		Return(models.Finding{ID: 3, FindingNumber: 2, Description: "Records missing", Severity: models.SeverityHigh}, nil)

	rr := serve(h, jsonRequest(t, http.MethodPost, "/api/cases/4/inquiry/findings", &officer,
		models.FindingRequest{Description: "Records missing", Severity: models.SeverityHigh}))

	require.Equal(t, http.StatusCreated, rr.Code)
	var got models.Finding
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 2, got.FindingNumber)
}

func TestInit_UploadTemplate(t *testing.T) {
	h, m := newTestHandler(t, Dependencies{})
	content := []byte("notice body")

	m.otherCases.EXPECT().
		UploadTemplate(gomock.Any(), officer, int64(4), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Principal, _ int64, req models.TemplateRequest, upload models.Upload) (models.CaseTemplate, error) {
			assert.Equal(t, "Notice", req.Name)
			assert.Equal(t, "notice.txt", upload.FileName)
			assert.Equal(t, content, upload.Content)
			documentID := int64(88)
			return models.CaseTemplate{ID: 5, Name: req.Name, DocumentID: &documentID, Status: models.TemplateDraft}, nil
		})

	req := multipartRequest(t, "/api/cases/4/other/templates/upload", officer,
		map[string]string{"details": `{"name":"Notice"}`}, "notice.txt", content)
	rr := serve(h, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}
