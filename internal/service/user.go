package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/ndenisov/userdir-server/internal/logger"
	"github.com/ndenisov/userdir-server/internal/model"
)

// DefaultPageSize is used by List when the caller supplies no usable size
// and no default was configured.
const DefaultPageSize = 10

// User implements the directory use cases on top of a UserStore. Each
// operation is a linear validate, check, mutate, respond pipeline; the only
// state shared between calls is the store itself.
type User struct {
	store           model.UserStore
	logger          *logger.Logger
	validate        *validator.Validate
	defaultPageSize int
}

// NewUser creates the user service. defaultPageSize is the page size List
// falls back to when the caller sends a non-positive size.
func NewUser(store model.UserStore, logger *logger.Logger, defaultPageSize int) *User {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}

	validate := validator.New()
	// Whitespace-only required fields are rejected the same as empty ones.
	_ = validate.RegisterValidation("notblank", validators.NotBlank)

	return &User{
		store:           store,
		logger:          logger,
		validate:        validate,
		defaultPageSize: defaultPageSize,
	}
}

// Create validates the params, then inserts through the store's atomic
// create so a concurrent duplicate cannot slip between the uniqueness check
// and the insert. The store assigns the id and marks the user active.
func (s *User) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	s.logger.Debug("User service: creating user",
		"username", params.Username)

	if err := s.validateCreateParams(params); err != nil {
		return model.User{}, err
	}

	user := model.User{
		Username:  params.Username,
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Active:    true,
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		var conflict *model.ConflictError
		if errors.As(err, &conflict) {
			s.logger.Info("User service: duplicate user rejected",
				"field", conflict.Field)
			return model.User{}, conflict
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// Get returns the user by id.
func (s *User) Get(ctx context.Context, id int64) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, &model.NotFoundError{ID: id}
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Update merges the params into the stored user and persists the result in
// a single save. Blank string fields mean "leave unchanged", not "clear".
// Active is always overwritten with the supplied value, so callers wanting
// to keep it must resend the current one. Uniqueness is not re-checked on
// update; a user can be updated into collision with another record.
func (s *User) Update(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	s.logger.Debug("User service: updating user",
		"id", params.ID)

	user, err := s.store.GetByID(ctx, params.ID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, &model.NotFoundError{ID: params.ID}
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !blank(params.Username) {
		user.Username = params.Username
	}
	if !blank(params.Email) {
		user.Email = params.Email
	}
	if !blank(params.FirstName) {
		user.FirstName = params.FirstName
	}
	if !blank(params.LastName) {
		user.LastName = params.LastName
	}
	user.Active = params.Active

	updated, err := s.store.Save(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	return updated, nil
}

// Delete removes the user by id. Deleting an id that was never assigned, or
// was already deleted, fails with NotFoundError.
func (s *User) Delete(ctx context.Context, id int64) error {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return &model.NotFoundError{ID: id}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// List returns one page of users plus the live total count. A negative page
// is normalized to 0 and a non-positive size to the configured default.
func (s *User) List(ctx context.Context, page, size int) (model.UserPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = s.defaultPageSize
	}

	users, err := s.store.GetPage(ctx, page, size)
	if err != nil {
		return model.UserPage{}, fmt.Errorf("failed to get user page: %w", err)
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return model.UserPage{}, fmt.Errorf("failed to count users: %w", err)
	}

	return model.UserPage{Users: users, TotalCount: total}, nil
}

func (s *User) validateCreateParams(params model.CreateUserParams) error {
	err := s.validate.Struct(params)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		field := strings.ToLower(validationErrors[0].Field())
		s.logger.Info("User service: create params rejected",
			"field", field)
		return &model.ValidationError{Field: field}
	}

	return fmt.Errorf("failed to validate create params: %w", err)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
