package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	infra := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "missing row", err: fmt.Errorf("%w: case", store.ErrNotFound), want: ErrNotFound},
		{name: "dangling reference", err: store.ErrReferenceNotFound, want: ErrNotFound},
		{name: "duplicate", err: store.ErrDuplicate, want: ErrConflict},
		{name: "check constraint", err: store.ErrConstraintViolated, want: ErrInvalidInput},
		{name: "empty upload", err: store.ErrEmptyUpload, want: ErrInvalidInput},
		{name: "already classified", err: invalidState("case 1 is CLOSED"), want: ErrInvalidState},
		{name: "infrastructure", err: infra, want: infra},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err)
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}

	assert.NoError(t, translate(nil))
}

func TestTranslate_KeepsOneCategory(t *testing.T) {
	err := translate(conflict("reference %q is taken", "LC/1"))

	matched := 0
	for _, known := range taxonomy {
		if errors.Is(err, known) {
			matched++
		}
	}
	assert.Equal(t, 1, matched)
}
