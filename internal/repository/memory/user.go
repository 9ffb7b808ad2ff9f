package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/ndenisov/userdir-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository is an in-memory user store. It owns the id sequence and
// all stored records; callers always receive copies, never references into
// the map. Individual operations are atomic under the repository mutex.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]model.User
	nextID int64
}

// NewUserRepository creates an empty UserRepository. Ids start at 1 and are
// never reused, even after deletion.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int64]model.User),
		nextID: 1,
	}
}

// Create inserts a new user under a single critical section: the username
// and email uniqueness checks and the insert cannot interleave with a
// concurrent Create, so duplicate creates cannot race past each other.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usernameTakenLocked(user.Username) {
		return model.User{}, &model.ConflictError{Field: "username"}
	}
	if r.emailTakenLocked(user.Email) {
		return model.User{}, &model.ConflictError{Field: "email"}
	}

	user.ID = r.nextID
	r.nextID++
	user.Active = true
	r.users[user.ID] = user

	return user, nil
}

// Save inserts or overwrites a user by id. An unset id is assigned from the
// sequence and the user is marked active. No uniqueness checks are
// performed here; Create owns those.
func (r *UserRepository) Save(ctx context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
		user.Active = true
	}
	r.users[user.ID] = user

	return user, nil
}

// GetByID returns the user or model.ErrNotFound on a miss.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

// GetAll returns a snapshot copy of all users ordered by id. Ids are
// assigned in creation order, so id order is creation order.
func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshotLocked(), nil
}

// GetPage returns the sub-range [page*size, page*size+size) of the id-ordered
// snapshot. A start past the end, or a zero size, yields an empty page.
func (r *UserRepository) GetPage(ctx context.Context, page, size int) ([]model.User, error) {
	if page < 0 || size <= 0 {
		return []model.User{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.snapshotLocked()

	start := page * size
	if start >= len(all) {
		return []model.User{}, nil
	}
	end := min(start+size, len(all))

	return all[start:end], nil
}

// Count returns the current number of stored users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users), nil
}

// ExistsByID reports whether a user with the given id is stored.
func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[id]
	return ok, nil
}

// ExistsByUsername reports whether any stored user holds the exact username.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.usernameTakenLocked(username), nil
}

// ExistsByEmail reports whether any stored user holds the exact email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.emailTakenLocked(email), nil
}

// Delete removes the user by id. Deleting a missing id is a no-op at this
// layer; the service decides whether that is an error.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}

func (r *UserRepository) snapshotLocked() []model.User {
	all := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, user)
	}
	slices.SortFunc(all, func(a, b model.User) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return all
}

// Linear scans: acceptable at the record counts this store targets. Replace
// with username/email indexes if that ever stops being true.
func (r *UserRepository) usernameTakenLocked(username string) bool {
	for _, user := range r.users {
		if user.Username == username {
			return true
		}
	}
	return false
}

func (r *UserRepository) emailTakenLocked(email string) bool {
	for _, user := range r.users {
		if user.Email == email {
			return true
		}
	}
	return false
}
