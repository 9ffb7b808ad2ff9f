package model

import "context"

// User represents a stored directory user. A zero ID means the user has not
// been persisted yet; the store assigns ids.
type User struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	Active    bool
}

// UserStore defines persistence operations for users.
type UserStore interface {
	// Create inserts a new user, assigning an id, and rejects the insert
	// with ConflictError if the username or email is already taken. The
	// check and the insert happen in one critical section.
	Create(ctx context.Context, user User) (User, error)
	// Save inserts or overwrites a user by id, assigning an id when unset.
	Save(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	GetPage(ctx context.Context, page, size int) ([]User, error)
	Count(ctx context.Context) (int, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// CreateUserParams contains parameters to create a user.
type CreateUserParams struct {
	Username  string `validate:"required,notblank"`
	Email     string `validate:"required,notblank"`
	FirstName string
	LastName  string
}

// UpdateUserParams contains parameters to update a user. Blank string
// fields mean "leave unchanged"; Active is always applied.
type UpdateUserParams struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	Active    bool
}

// UserPage is one page of users plus the live total at the time of the
// call. Pages taken concurrently with writes may disagree on TotalCount.
type UserPage struct {
	Users      []User
	TotalCount int
}
