package handler

import (
	"context"

	"github.com/ndenisov/userdir-server/internal/logger"
	"github.com/ndenisov/userdir-server/internal/model"
	"github.com/ndenisov/userdir-server/internal/proto"
)

// UserService defines business operations for user management.
type UserService interface {
	Create(ctx context.Context, params model.CreateUserParams) (model.User, error)
	Get(ctx context.Context, id int64) (model.User, error)
	Update(ctx context.Context, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page, size int) (model.UserPage, error)
}

// User handles gRPC endpoints for users.
type User struct {
	proto.UnimplementedUserServiceServer
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser creates a new user from the request fields.
func (h *User) CreateUser(ctx context.Context, req *proto.CreateUserRequest) (*proto.User, error) {
	h.logger.Debug("User handler: processing create user request",
		"username", req.Username)

	user, err := h.userService.Create(ctx, model.CreateUserParams{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.logger.Error("User handler: create user failed",
			"username", req.Username,
			"error", err.Error())
		return nil, handleError(err)
	}

	return convertUserToProto(user), nil
}

// GetUser returns the user by id.
func (h *User) GetUser(ctx context.Context, req *proto.GetUserRequest) (*proto.User, error) {
	user, err := h.userService.Get(ctx, req.Id)
	if err != nil {
		h.logger.Error("User handler: get user failed",
			"id", req.Id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return convertUserToProto(user), nil
}

// UpdateUser applies a partial update to the user. Blank string fields keep
// the stored values; active is always applied.
func (h *User) UpdateUser(ctx context.Context, req *proto.UpdateUserRequest) (*proto.User, error) {
	h.logger.Debug("User handler: processing update user request",
		"id", req.Id)

	user, err := h.userService.Update(ctx, model.UpdateUserParams{
		ID:        req.Id,
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Active:    req.Active,
	})
	if err != nil {
		h.logger.Error("User handler: update user failed",
			"id", req.Id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return convertUserToProto(user), nil
}

// DeleteUser removes the user by id.
func (h *User) DeleteUser(ctx context.Context, req *proto.DeleteUserRequest) (*proto.DeleteUserResponse, error) {
	h.logger.Debug("User handler: processing delete user request",
		"id", req.Id)

	if err := h.userService.Delete(ctx, req.Id); err != nil {
		h.logger.Error("User handler: delete user failed",
			"id", req.Id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.DeleteUserResponse{Success: true}, nil
}

// ListUsers returns one page of users plus the total count.
func (h *User) ListUsers(ctx context.Context, req *proto.ListUsersRequest) (*proto.ListUsersResponse, error) {
	page, err := h.userService.List(ctx, int(req.Page), int(req.Size))
	if err != nil {
		h.logger.Error("User handler: list users failed",
			"page", req.Page,
			"size", req.Size,
			"error", err.Error())
		return nil, handleError(err)
	}

	users := make([]*proto.User, 0, len(page.Users))
	for _, user := range page.Users {
		users = append(users, convertUserToProto(user))
	}

	return &proto.ListUsersResponse{
		Users:      users,
		TotalCount: int32(page.TotalCount),
	}, nil
}

func convertUserToProto(user model.User) *proto.User {
	return &proto.User{
		Id:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Active:    user.Active,
	}
}
