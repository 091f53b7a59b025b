package changeset_test

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/repokit/pkg/changeset"
	"github.com/dmitrymomot/repokit/pkg/sanitizer"
)

func TestCast(t *testing.T) {
	t.Parallel()

	t.Run("keeps only permitted fields", func(t *testing.T) {
		t.Parallel()

		cs := changeset.Cast(
			sanitizer.Record{"id": "u1"},
			sanitizer.Record{"name": "alice", "role": "admin"},
			[]string{"name"},
		)

		assert.Equal(t, sanitizer.Record{"name": "alice"}, cs.Changes())
	})

	t.Run("ignores params equal to current data", func(t *testing.T) {
		t.Parallel()

		cs := changeset.Cast(
			sanitizer.Record{"name": "alice", "age": 30},
			sanitizer.Record{"name": "alice", "age": 31},
			[]string{"name", "age"},
		)

		assert.Equal(t, sanitizer.Record{"age": 31}, cs.Changes())
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		t.Parallel()

		data := sanitizer.Record{"name": "alice"}
		params := sanitizer.Record{"name": "bob"}

		cs := changeset.Cast(data, params, []string{"name"})
		cs.PutChange("name", "carol")

		assert.Equal(t, sanitizer.Record{"name": "alice"}, data)
		assert.Equal(t, sanitizer.Record{"name": "bob"}, params)
	})

	t.Run("change takes every param for inserts", func(t *testing.T) {
		t.Parallel()

		cs := changeset.Change(sanitizer.Record{"a": 1, "b": 2})
		assert.Equal(t, sanitizer.Record{"a": 1, "b": 2}, cs.Changes())
	})
}

func TestValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		build     func() *changeset.Changeset
		wantValid bool
		wantField string
	}{
		{
			name: "required present passes",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"email": "a@b.c"}).
					ValidateRequired("email")
			},
			wantValid: true,
		},
		{
			name: "required blank string fails",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"email": "   "}).
					ValidateRequired("email")
			},
			wantValid: false,
			wantField: "email",
		},
		{
			name: "required missing field fails",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{}).ValidateRequired("email")
			},
			wantValid: false,
			wantField: "email",
		},
		{
			name: "required falls back to data",
			build: func() *changeset.Changeset {
				return changeset.Cast(
					sanitizer.Record{"email": "a@b.c"},
					sanitizer.Record{"name": "x"},
					[]string{"name"},
				).ValidateRequired("email")
			},
			wantValid: true,
		},
		{
			name: "length within bounds passes",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"name": "alice"}).
					ValidateLength("name", 1, 10)
			},
			wantValid: true,
		},
		{
			name: "length below minimum fails",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"name": "a"}).
					ValidateLength("name", 2, 10)
			},
			wantValid: false,
			wantField: "name",
		},
		{
			name: "negative max disables upper bound",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"tags": []string{"a", "b", "c"}}).
					ValidateLength("tags", 1, -1)
			},
			wantValid: true,
		},
		{
			name: "length skips absent field",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{}).ValidateLength("name", 1, 10)
			},
			wantValid: true,
		},
		{
			name: "format match passes",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"email": "a@b.c"}).
					ValidateFormat("email", regexp.MustCompile(`^[^@\s]+@[^@\s]+$`))
			},
			wantValid: true,
		},
		{
			name: "format mismatch fails",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"email": "nope"}).
					ValidateFormat("email", regexp.MustCompile(`^[^@\s]+@[^@\s]+$`))
			},
			wantValid: false,
			wantField: "email",
		},
		{
			name: "inclusion passes for allowed value",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"role": "editor"}).
					ValidateInclusion("role", "viewer", "editor", "admin")
			},
			wantValid: true,
		},
		{
			name: "inclusion fails for other value",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"role": "root"}).
					ValidateInclusion("role", "viewer", "editor")
			},
			wantValid: false,
			wantField: "role",
		},
		{
			name: "exclusion fails for reserved value",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"slug": "admin"}).
					ValidateExclusion("slug", "admin", "api")
			},
			wantValid: false,
			wantField: "slug",
		},
		{
			name: "number within bounds passes",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"age": 30}).
					ValidateNumber("age", 0, 150)
			},
			wantValid: true,
		},
		{
			name: "number with open upper bound passes",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"count": int64(99)}).
					ValidateNumber("count", 0, math.Inf(1))
			},
			wantValid: true,
		},
		{
			name: "number out of range fails",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"age": 200}).
					ValidateNumber("age", 0, 150)
			},
			wantValid: false,
			wantField: "age",
		},
		{
			name: "non-numeric value fails number check",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"age": "old"}).
					ValidateNumber("age", 0, 150)
			},
			wantValid: false,
			wantField: "age",
		},
		{
			name: "acceptance requires true",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"tos": false}).
					ValidateAcceptance("tos")
			},
			wantValid: false,
			wantField: "tos",
		},
		{
			name: "custom change check attaches error",
			build: func() *changeset.Changeset {
				return changeset.Change(sanitizer.Record{"name": "x"}).
					ValidateChange("name", func(any) error {
						return fmt.Errorf("is taken")
					})
			},
			wantValid: false,
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cs := tt.build()
			assert.Equal(t, tt.wantValid, cs.Valid())
			if !tt.wantValid {
				assert.True(t, cs.Errors().Has(tt.wantField))
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("merges data and changes", func(t *testing.T) {
		t.Parallel()

		cs := changeset.Cast(
			sanitizer.Record{"id": "u1", "name": "alice"},
			sanitizer.Record{"name": "bob"},
			[]string{"name"},
		)

		rec, err := cs.Apply()
		require.NoError(t, err)
		assert.Equal(t, sanitizer.Record{"id": "u1", "name": "bob"}, rec)
	})

	t.Run("returns accumulated errors when invalid", func(t *testing.T) {
		t.Parallel()

		cs := changeset.Change(sanitizer.Record{}).
			ValidateRequired("email", "name")

		_, err := cs.Apply()
		require.Error(t, err)

		var fieldErrs changeset.Errors
		require.True(t, errors.As(err, &fieldErrs))
		assert.ElementsMatch(t, []string{"email", "name"}, fieldErrs.Fields())
		assert.Equal(t, []string{"can't be blank"}, fieldErrs.Messages("email"))
	})

	t.Run("put change overrides cast", func(t *testing.T) {
		t.Parallel()

		cs := changeset.Change(sanitizer.Record{"password": "plaintext"}).
			PutChange("password", "hashed").
			DeleteChange("missing")

		rec, err := cs.Apply()
		require.NoError(t, err)
		assert.Equal(t, sanitizer.Record{"password": "hashed"}, rec)
	})
}
