package sanitizer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/repokit/pkg/sanitizer"
)

type testUser struct {
	ID        string    `db:"id"`
	Email     string    `json:"email_address"`
	FullName  string
	APIToken  string    `db:"-"`
	CreatedAt time.Time `db:"created_at"`

	password string //nolint:unused // verifies unexported fields are skipped
}

// Base is embedded by value; promotion only applies to exported types.
type Base struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type testAccount struct {
	Base
	TenantID string `db:"tenant_id"`
}

type customUnloaded struct{}

func (customUnloaded) RelationNotLoaded() bool { return true }

func TestSanitizeEntityProjection(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("projects struct fields by tag then snake case", func(t *testing.T) {
		t.Parallel()

		user := testUser{
			ID:        "u1",
			Email:     "a@b.c",
			FullName:  "Alice",
			APIToken:  "secret",
			CreatedAt: createdAt,
		}

		result, err := sanitizer.Sanitize(user)
		require.NoError(t, err)
		assert.Equal(t, sanitizer.Record{
			"id":            "u1",
			"email_address": "a@b.c",
			"full_name":     "Alice",
			"created_at":    createdAt,
		}, result)
	})

	t.Run("projects struct pointer", func(t *testing.T) {
		t.Parallel()

		result, err := sanitizer.Sanitize(&testUser{ID: "u2"}, sanitizer.WithOnly("id"))
		require.NoError(t, err)
		assert.Equal(t, sanitizer.Record{"id": "u2"}, result)
	})

	t.Run("promotes embedded struct fields", func(t *testing.T) {
		t.Parallel()

		acc := testAccount{
			Base:     Base{ID: "u3", CreatedAt: createdAt},
			TenantID: "t1",
		}

		result, err := sanitizer.Sanitize(acc, sanitizer.WithOnly("id", "tenant_id"))
		require.NoError(t, err)
		assert.Equal(t, sanitizer.Record{"id": "u3", "tenant_id": "t1"}, result)
	})

	t.Run("masking applies to projected keys", func(t *testing.T) {
		t.Parallel()

		result, err := sanitizer.Sanitize(
			testUser{ID: "u4", Email: "a@b.c"},
			sanitizer.WithMask("email_address", "[FILTERED]"),
			sanitizer.WithOnly("id", "email_address"),
		)
		require.NoError(t, err)
		assert.Equal(t, sanitizer.Record{
			"id":            "u4",
			"email_address": "[FILTERED]",
		}, result)
	})

	t.Run("time values are leaves, not records", func(t *testing.T) {
		t.Parallel()

		result, err := sanitizer.Sanitize(sanitizer.Record{"at": createdAt})
		require.NoError(t, err)
		assert.Equal(t, sanitizer.Record{"at": createdAt}, result)
	})

	t.Run("entity slice projects element-wise", func(t *testing.T) {
		t.Parallel()

		users := []testUser{{ID: "a"}, {ID: "b"}}

		result, err := sanitizer.Sanitize(users, sanitizer.WithOnly("id"))
		require.NoError(t, err)
		assert.Equal(t, []any{
			sanitizer.Record{"id": "a"},
			sanitizer.Record{"id": "b"},
		}, result)
	})
}

func TestIsRelationNotLoaded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "marker value", value: sanitizer.RelationNotLoaded{Relation: "posts"}, expected: true},
		{name: "marker pointer", value: &sanitizer.RelationNotLoaded{}, expected: true},
		{name: "custom marker type", value: customUnloaded{}, expected: true},
		{name: "plain record", value: sanitizer.Record{}, expected: false},
		{name: "nil", value: nil, expected: false},
		{name: "string", value: "posts", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.IsRelationNotLoaded(tt.value))
		})
	}
}

func TestJSONTupleEncoder(t *testing.T) {
	t.Parallel()

	out, err := sanitizer.JSONTupleEncoder([]any{"a", 1, true, nil})
	require.NoError(t, err)
	assert.JSONEq(t, `["a",1,true,null]`, out)
}
