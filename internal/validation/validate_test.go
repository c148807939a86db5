package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cadastro/internal/models"
	"cadastro/internal/validation"
)

func validCreateInput() models.CreateUserInput {
	return models.CreateUserInput{
		Name:  "Ana",
		Email: "ana@x.com",
		Phone: "11999999999",
		City:  "São Paulo",
	}
}

func TestValidateCreate_DefaultsStatus(t *testing.T) {
	v := validation.New()

	out, err := v.ValidateCreate(validCreateInput())
	assert.NoError(t, err)
	assert.Equal(t, models.StatusActive, out.Status)

	in := validCreateInput()
	in.Status = models.StatusInactive
	out, err = v.ValidateCreate(in)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusInactive, out.Status)
}

func TestValidateCreate_CollectsAllIssues(t *testing.T) {
	v := validation.New()

	// Everything missing: one issue per required field, in field order.
	_, err := v.ValidateCreate(models.CreateUserInput{})
	var verr *validation.ValidationError
	assert.ErrorAs(t, err, &verr)
	paths := make([]string, 0, len(verr.Issues))
	for _, issue := range verr.Issues {
		paths = append(paths, issue.Path)
	}
	assert.Equal(t, []string{"name", "email", "phone", "city"}, paths)
}

func TestValidateCreate_FieldRules(t *testing.T) {
	v := validation.New()

	in := validCreateInput()
	in.Name = "A"
	in.Email = "not-an-email"
	_, err := v.ValidateCreate(in)

	var verr *validation.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 2)
	assert.Equal(t, "name", verr.Issues[0].Path)
	assert.Contains(t, verr.Issues[0].Message, "at least 2")
	assert.Equal(t, "email", verr.Issues[1].Path)
	assert.Equal(t, "Invalid email", verr.Issues[1].Message)
}

func TestValidateCreate_StatusEnum(t *testing.T) {
	v := validation.New()

	in := validCreateInput()
	in.Status = "archived"
	_, err := v.ValidateCreate(in)

	var verr *validation.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 1)
	assert.Equal(t, "status", verr.Issues[0].Path)
}

func TestValidateUpdate_EmptyPayloadIsValid(t *testing.T) {
	v := validation.New()

	out, err := v.ValidateUpdate(models.UpdateUserInput{})
	assert.NoError(t, err)
	assert.Nil(t, out.Name)
	assert.Nil(t, out.Email)
	assert.Nil(t, out.Phone)
	assert.Nil(t, out.City)
	assert.Nil(t, out.Status)
}

func TestValidateUpdate_SuppliedFieldsAreChecked(t *testing.T) {
	v := validation.New()

	name := "B"
	phone := "123"
	ok := "São Paulo"
	_, err := v.ValidateUpdate(models.UpdateUserInput{Name: &name, Phone: &phone, City: &ok})

	var verr *validation.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 2)
	assert.Equal(t, "name", verr.Issues[0].Path)
	assert.Equal(t, "phone", verr.Issues[1].Path)
}
