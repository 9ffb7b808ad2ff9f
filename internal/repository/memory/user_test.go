package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndenisov/userdir-server/internal/model"
)

func TestUserRepository_Create_AssignsIncreasingIDs(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		user, err := repo.Create(ctx, model.User{
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i), user.ID)
		assert.True(t, user.Active)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestUserRepository_Create_UsernameConflict(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.User{Username: "alice", Email: "b@x.com"})
	var conflict *model.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "username", conflict.Field)

	// Rejected creates leave the store untouched.
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", stored.Email)
}

func TestUserRepository_Create_EmailConflict(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.User{Username: "bob", Email: "a@x.com"})
	var conflict *model.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)
}

func TestUserRepository_Save_AssignsIDWhenUnset(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.True(t, saved.Active)
}

func TestUserRepository_Save_OverwritesByID(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	created.Email = "new@x.com"
	created.Active = false
	updated, err := repo.Save(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", stored.Email)
	assert.False(t, stored.Active)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserRepository_IDsNeverReused(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID))

	second, err := repo.Create(ctx, model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_GetAll_OrderedByID(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.Create(ctx, model.User{
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
		})
		require.NoError(t, err)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, user := range all {
		assert.Equal(t, int64(i+1), user.ID)
	}
}

func TestUserRepository_GetAll_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	all[0].Username = "mutated"

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Username)
}

func TestUserRepository_GetPage(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.Create(ctx, model.User{
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
		})
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		page    int
		size    int
		wantIDs []int64
	}{
		{name: "first page", page: 0, size: 2, wantIDs: []int64{1, 2}},
		{name: "middle page", page: 1, size: 2, wantIDs: []int64{3, 4}},
		{name: "short last page", page: 2, size: 2, wantIDs: []int64{5}},
		{name: "page past the end", page: 3, size: 2, wantIDs: []int64{}},
		{name: "zero size", page: 0, size: 0, wantIDs: []int64{}},
		{name: "negative page", page: -1, size: 2, wantIDs: []int64{}},
		{name: "size spanning everything", page: 0, size: 10, wantIDs: []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.GetPage(ctx, tt.page, tt.size)
			require.NoError(t, err)

			ids := make([]int64, 0, len(users))
			for _, user := range users {
				ids = append(ids, user.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestUserRepository_GetPage_EmptyStore(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	users, err := repo.GetPage(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_ExistsByID(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	exists, err := repo.ExistsByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_ExistsByUsernameAndEmail(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	exists, err := repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	// Comparison is by exact value.
	exists, err = repo.ExistsByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	exists, err := repo.ExistsByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// Deleting a missing id is a no-op at this layer.
	assert.NoError(t, repo.Delete(ctx, created.ID))
}

func TestUserRepository_ConcurrentCreates_DistinctUsers(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	const n = 50

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, err := repo.Create(ctx, model.User{
				Username: fmt.Sprintf("user%d", i),
				Email:    fmt.Sprintf("user%d@example.com", i),
			})
			if assert.NoError(t, err) {
				ids <- user.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)
}

func TestUserRepository_ConcurrentCreates_SameUsername(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	const n = 20

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, model.User{
				Username: "alice",
				Email:    fmt.Sprintf("alice%d@example.com", i),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			var conflict *model.ConflictError
			assert.ErrorAs(t, err, &conflict)
		}
	}
	assert.Equal(t, 1, succeeded)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
