package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

func TestFindUserByID_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, full_name, role, approver_level, created_at FROM users WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(userRows().AddRow(5, "a@example.com", "Ada Approver", "AGREEMENT_APPROVER", 2, testTime))

	user, err := repo.FindUserByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != models.RoleAgreementApprover || user.ApproverLevel != 2 {
		t.Errorf("unexpected user %+v", user)
	}
	expectationsMet(t, mock)
}

func TestFindUserByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = ").
		WithArgs(int64(404)).
		WillReturnRows(userRows())

	_, err := repo.FindUserByID(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindUsersByIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id IN ($1,$2) ORDER BY id")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(userRows().
			AddRow(1, "one@example.com", "One", "LEGAL_OFFICER", 0, testTime).
			AddRow(2, "two@example.com", "Two", "SUPERVISOR", 0, testTime))

	users, err := repo.FindUsersByIDs(context.Background(), []int64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	expectationsMet(t, mock)
}

func TestFindUsersByIDs_EmptySkipsQuery(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	users, err := repo.FindUsersByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}
	expectationsMet(t, mock)
}

func TestListUsersByRole(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE role = $1 ORDER BY full_name")).
		WithArgs("LEGAL_OFFICER").
		WillReturnRows(userRows().AddRow(3, "lo@example.com", "Lee Officer", "LEGAL_OFFICER", 0, testTime))

	users, err := repo.ListUsersByRole(context.Background(), models.RoleLegalOfficer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].FullName != "Lee Officer" {
		t.Errorf("unexpected users %+v", users)
	}
	expectationsMet(t, mock)
}

func TestListUsersByRole_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("FROM users").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListUsersByRole(context.Background(), "")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
