package slug_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/slug"
)

// takenSet returns an ExistsFunc backed by a fixed set and records every lookup.
func takenSet(calls *[]string, taken ...string) slug.ExistsFunc {
	set := make(map[string]bool, len(taken))
	for _, s := range taken {
		set[s] = true
	}
	return func(_ context.Context, s string) (bool, error) {
		if calls != nil {
			*calls = append(*calls, s)
		}
		return set[s], nil
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("free base slug", func(t *testing.T) {
		t.Parallel()
		r := slug.NewResolver(takenSet(nil))

		got, err := r.Resolve(context.Background(), "Hello World", "")
		require.NoError(t, err)
		assert.Equal(t, "hello-world", got)
	})

	t.Run("unchanged title keeps its slug", func(t *testing.T) {
		t.Parallel()
		r := slug.NewResolver(takenSet(nil, "other-post"))

		got, err := r.Resolve(context.Background(), "My Post", "my-post")
		require.NoError(t, err)
		assert.Equal(t, "my-post", got)
	})

	t.Run("taken base starts numbered family", func(t *testing.T) {
		t.Parallel()
		var calls []string
		r := slug.NewResolver(takenSet(&calls, "hello-world", "hello-world-1", "hello-world-2"))

		got, err := r.Resolve(context.Background(), "Hello World", "")
		require.NoError(t, err)
		assert.Equal(t, "hello-world-3", got)
		assert.Equal(t, []string{"hello-world", "hello-world-1", "hello-world-2", "hello-world-3"}, calls)
	})

	t.Run("continues from existing suffix", func(t *testing.T) {
		t.Parallel()
		r := slug.NewResolver(takenSet(nil, "my-post-3"))

		got, err := r.Resolve(context.Background(), "My Post", "my-post-2")
		require.NoError(t, err)
		assert.Equal(t, "my-post-4", got)
	})

	t.Run("family change starts at one", func(t *testing.T) {
		t.Parallel()
		r := slug.NewResolver(takenSet(nil))

		got, err := r.Resolve(context.Background(), "New Title", "old-title-5")
		require.NoError(t, err)
		assert.Equal(t, "new-title-1", got)
	})

	t.Run("reserved slug is skipped case-insensitively", func(t *testing.T) {
		t.Parallel()
		var calls []string
		r := slug.NewResolver(takenSet(&calls), slug.WithReserved("ADMIN", " api "))

		got, err := r.Resolve(context.Background(), "Admin", "")
		require.NoError(t, err)
		assert.Equal(t, "admin-1", got)
		assert.Equal(t, []string{"admin-1"}, calls)
		assert.True(t, r.IsReserved("api"))
	})

	t.Run("nil exists func", func(t *testing.T) {
		t.Parallel()
		r := slug.NewResolver(nil, slug.WithReserved("new"))

		got, err := r.Resolve(context.Background(), "New", "")
		require.NoError(t, err)
		assert.Equal(t, "new-1", got)
	})

	t.Run("empty slug", func(t *testing.T) {
		t.Parallel()
		r := slug.NewResolver(takenSet(nil))

		_, err := r.Resolve(context.Background(), "!!!", "old-slug")
		assert.ErrorIs(t, err, slug.ErrEmptySlug)
	})

	t.Run("attempts exhausted", func(t *testing.T) {
		t.Parallel()
		var calls []string
		always := func(_ context.Context, s string) (bool, error) {
			calls = append(calls, s)
			return true, nil
		}
		r := slug.NewResolver(always, slug.WithMaxAttempts(3))

		_, err := r.Resolve(context.Background(), "Busy", "")
		assert.ErrorIs(t, err, slug.ErrAttemptsExhausted)
		assert.Equal(t, []string{"busy", "busy-1", "busy-2"}, calls)
	})

	t.Run("invalid max attempts falls back to default", func(t *testing.T) {
		t.Parallel()
		count := 0
		always := func(context.Context, string) (bool, error) {
			count++
			return true, nil
		}
		r := slug.NewResolver(always, slug.WithMaxAttempts(0), slug.WithMaxAttempts(-5))

		_, err := r.Resolve(context.Background(), "Busy", "")
		assert.ErrorIs(t, err, slug.ErrAttemptsExhausted)
		assert.Equal(t, slug.DefaultMaxAttempts, count)
	})

	t.Run("lookup error is wrapped", func(t *testing.T) {
		t.Parallel()
		dbErr := errors.New("connection refused")
		failing := func(context.Context, string) (bool, error) { return false, dbErr }
		r := slug.NewResolver(failing)

		_, err := r.Resolve(context.Background(), "Hello", "")
		assert.ErrorIs(t, err, slug.ErrLookupFailed)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := slug.NewResolver(takenSet(nil))

		_, err := r.Resolve(ctx, "Hello", "")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("context error from lookup is not wrapped", func(t *testing.T) {
		t.Parallel()
		failing := func(context.Context, string) (bool, error) { return false, context.DeadlineExceeded }
		r := slug.NewResolver(failing)

		_, err := r.Resolve(context.Background(), "Hello", "")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotErrorIs(t, err, slug.ErrLookupFailed)
	})
}
