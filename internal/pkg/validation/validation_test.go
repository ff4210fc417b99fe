package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akarpov/microblog/internal/pkg/validation"
)

var rules = []validation.Rule{
	validation.Field("email",
		validation.NotEmpty("email can't be empty"),
		validation.Email("Must be a valid email"),
	),
	validation.Field("name",
		validation.NotEmpty("name can't be empty"),
	),
	validation.Field("role",
		validation.OneOf("invalid role", "USER", "ADMIN", "SUPERUSER"),
	),
}

func TestValidate_AllPass(t *testing.T) {
	payload := map[string]string{
		"email": "alice@example.com",
		"name":  "Alice",
		"role":  "ADMIN",
	}

	assert.Nil(t, validation.Validate(payload, rules))
}

func TestValidate_EmptyFields(t *testing.T) {
	failures := validation.Validate(map[string]string{}, rules)

	assert.Equal(t, map[string]string{
		"email": "email can't be empty",
		"name":  "name can't be empty",
	}, failures)
}

func TestValidate_FirstFailurePerField(t *testing.T) {
	// An empty email fails the non-empty check before the syntax check.
	failures := validation.Validate(map[string]string{"email": "", "name": "Alice"}, rules)

	assert.Equal(t, "email can't be empty", failures["email"])
}

func TestValidate_EmailSyntax(t *testing.T) {
	for _, email := range []string{"not-an-email", "a@", "@b", "Alice <alice@example.com>"} {
		failures := validation.Validate(map[string]string{"email": email, "name": "Alice"}, rules)
		assert.Equal(t, "Must be a valid email", failures["email"], "email %q", email)
	}
}

func TestValidate_RoleEnum(t *testing.T) {
	payload := map[string]string{
		"email": "alice@example.com",
		"name":  "Alice",
		"role":  "ROOT",
	}

	failures := validation.Validate(payload, rules)
	assert.Equal(t, map[string]string{"role": "invalid role"}, failures)
}

func TestValidate_RoleAbsentPasses(t *testing.T) {
	payload := map[string]string{
		"email": "alice@example.com",
		"name":  "Alice",
	}

	assert.Nil(t, validation.Validate(payload, rules))
}
