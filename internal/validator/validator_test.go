package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,is-register-role"`
	Password string `json:"password" validate:"required,min=6"`
}

type jobForm struct {
	Salary string `json:"salary" validate:"required,decimal"`
	Year   int    `json:"year_of_joining" validate:"required,join-year"`
}

type round struct {
	Number     int    `json:"round_number" validate:"required,min=1"`
	Experience string `json:"experience" validate:"required"`
}

type reviewForm struct {
	Rounds []round `json:"rounds" validate:"required,min=1,dive"`
}

func TestValidate_FieldNamesFromJSONTags(t *testing.T) {
	v := New()

	err := v.Validate(&registerForm{Email: "nope", Role: "admin", Password: "123"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "Must be one of: student, jobholder", vErr.Errors["role"])
	assert.Contains(t, vErr.Errors["password"], "at least 6")
}

func TestValidate_RegisterRoleAcceptsLegacyUser(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&registerForm{Email: "a@x.com", Role: "user", Password: "123456"}))
	assert.NoError(t, v.Validate(&registerForm{Email: "a@x.com", Role: "jobholder", Password: "123456"}))
}

func TestValidate_DecimalAndJoinYear(t *testing.T) {
	v := New()
	nowFunc = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = time.Now })

	tests := []struct {
		name    string
		form    jobForm
		invalid []string
	}{
		{"ok", jobForm{Salary: "12.50", Year: 2024}, nil},
		{"integer salary", jobForm{Salary: "100000", Year: 2000}, nil},
		{"text salary", jobForm{Salary: "lots", Year: 2020}, []string{"salary"}},
		{"negative salary", jobForm{Salary: "-1", Year: 2020}, []string{"salary"}},
		{"year too old", jobForm{Salary: "1", Year: 1999}, []string{"year_of_joining"}},
		{"year in future", jobForm{Salary: "1", Year: 2025}, []string{"year_of_joining"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.form)
			if tt.invalid == nil {
				assert.NoError(t, err)
				return
			}
			vErr, ok := err.(*ValidationError)
			require.True(t, ok)
			for _, f := range tt.invalid {
				assert.Contains(t, vErr.Errors, f)
			}
		})
	}
}

func TestValidate_NestedRounds(t *testing.T) {
	v := New()

	err := v.Validate(&reviewForm{})
	require.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "rounds")

	err = v.Validate(&reviewForm{Rounds: []round{{Number: 1, Experience: "ok"}, {Number: 0, Experience: ""}}})
	require.Error(t, err)
	errs := err.(*ValidationError).Errors
	assert.Contains(t, errs, "rounds[1].round_number")
	assert.Contains(t, errs, "rounds[1].experience")

	assert.NoError(t, v.Validate(&reviewForm{Rounds: []round{{Number: 3, Experience: "a"}, {Number: 1, Experience: "b"}}}))
}

type trimmedForm struct {
	Name string `json:"name" validate:"required,min=2"`
}

func (f *trimmedForm) Normalize() { f.Name = strings.TrimSpace(f.Name) }

func TestValidate_NormalizesBeforeTags(t *testing.T) {
	v := New()

	form := &trimmedForm{Name: "  bob  "}
	require.NoError(t, v.Validate(form))
	assert.Equal(t, "bob", form.Name)

	for _, name := range []string{"    ", "  a  "} {
		err := v.Validate(&trimmedForm{Name: name})
		require.Error(t, err, name)
		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "name")
	}
}
