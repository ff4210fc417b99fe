package errors_test

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov/microblog/internal/pkg/errors"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, errors.KindConflict, errors.KindOf(errors.ErrEmailAlreadyExists))
	assert.Equal(t, errors.KindNotFound, errors.KindOf(errors.ErrUserNotFound))
	assert.Equal(t, errors.KindDependency, errors.KindOf(errors.ErrDb))
	assert.Equal(t, errors.KindUnknown, errors.KindOf(pkgerrors.New("plain")))
	assert.Equal(t, errors.KindUnknown, errors.KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	wrapped := pkgerrors.Wrap(errors.ErrDb, "list users")
	assert.Equal(t, errors.KindDependency, errors.KindOf(wrapped))
}

func TestFieldsOf(t *testing.T) {
	assert.Equal(t, map[string]string{"email": "email already exists"}, errors.FieldsOf(errors.ErrEmailAlreadyExists))
	assert.Nil(t, errors.FieldsOf(errors.ErrDb))
	assert.Nil(t, errors.FieldsOf(pkgerrors.New("plain")))

	failures := map[string]string{"name": "name can't be empty"}
	assert.Equal(t, failures, errors.FieldsOf(errors.Validation(failures)))
}
