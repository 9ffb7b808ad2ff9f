package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ndenisov/userdir-server/internal/model"
	"github.com/ndenisov/userdir-server/internal/proto"
	"github.com/ndenisov/userdir-server/internal/testutil"
)

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) List(ctx context.Context, page, size int) (model.UserPage, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).(model.UserPage), args.Error(1)
}

func TestUser_CreateUser_Success(t *testing.T) {
	t.Parallel()

	svc := &MockUserService{}
	h := NewUser(svc, testutil.MakeNoopLogger())

	svc.On("Create", mock.Anything, model.CreateUserParams{
		Username:  "alice",
		Email:     "a@x.com",
		FirstName: "Alice",
	}).Return(model.User{
		ID:        1,
		Username:  "alice",
		Email:     "a@x.com",
		FirstName: "Alice",
		Active:    true,
	}, nil)

	resp, err := h.CreateUser(context.Background(), &proto.CreateUserRequest{
		Username:  "alice",
		Email:     "a@x.com",
		FirstName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Id)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Alice", resp.FirstName)
	assert.Equal(t, "", resp.LastName)
	assert.True(t, resp.Active)
}

func TestUser_CreateUser_Validation(t *testing.T) {
	t.Parallel()

	svc := &MockUserService{}
	h := NewUser(svc, testutil.MakeNoopLogger())

	svc.On("Create", mock.Anything, mock.AnythingOfType("model.CreateUserParams")).
		Return(model.User{}, &model.ValidationError{Field: "username"})

	resp, err := h.CreateUser(context.Background(), &proto.CreateUserRequest{Email: "a@x.com"})
	assert.Nil(t, resp)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "username is required", st.Message())
}

func TestUser_CreateUser_Conflict(t *testing.T) {
	t.Parallel()

	svc := &MockUserService{}
	h := NewUser(svc, testutil.MakeNoopLogger())

	svc.On("Create", mock.Anything, mock.AnythingOfType("model.CreateUserParams")).
		Return(model.User{}, &model.ConflictError{Field: "email"})

	_, err := h.CreateUser(context.Background(), &proto.CreateUserRequest{
		Username: "alice",
		Email:    "a@x.com",
	})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.AlreadyExists, st.Code())
	assert.Equal(t, "email already exists", st.Message())
}

func TestUser_GetUser_Success(t *testing.T) {
	t.Parallel()

	svc := &MockUserService{}
	h := NewUser(svc, testutil.MakeNoopLogger())

	svc.On("Get", mock.Anything, int64(1)).Return(model.User{
		ID:       1,
		Username: "alice",
		Email:    "a@x.com",
		Active:   true,
	}, nil)

	resp, err := h.GetUser(context.Background(), &proto.GetUserRequest{Id: 1})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
}

func TestUser_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	svc := &MockUserService{}
	h := NewUser(svc, testutil.MakeNoopLogger())

	svc.On("Get", mock.Anything, int64(999)).
		Return(model.User{}, &model.NotFoundError{ID: 999})

	_, err := h.GetUser(context.Background(), &proto.GetUserRequest{Id: 999})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "user not found with id: 999", st.Message())
}

func TestUser_UpdateUser_Success(t *testing.T) {
	t.Parallel()

	svc := &MockUserService{}
	h := NewUser(svc, testutil.MakeNoopLogger())

	svc.On("Update", mock.Anything, model.UpdateUserParams{
		ID:     1,
		Email:  "new@x.com",
		Active: false,
	}).Return(model.User{
		ID:       1,
		Username: "alice",
		Email:    "new@x.com",
		Active:   false,
	}, nil)

	resp, err := h.UpdateUser(context.Background(), &proto.UpdateUserRequest{
		Id:    1,
		Email: "new@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "new@x.com", resp.Email)
	assert.False(t, resp.Active)
}

func TestUser_DeleteUser_Success(t *testing.T) {
	t.Parallel()

	svc := &MockUserService{}
	h := NewUser(svc, testutil.MakeNoopLogger())

	svc.On("Delete", mock.Anything, int64(1)).Return(nil)

	resp, err := h.DeleteUser(context.Background(), &proto.DeleteUserRequest{Id: 1})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestUser_DeleteUser_NotFound(t *testing.T) {
	t.Parallel()

	svc := &MockUserService{}
	h := NewUser(svc, testutil.MakeNoopLogger())

	svc.On("Delete", mock.Anything, int64(999)).
		Return(&model.NotFoundError{ID: 999})

	resp, err := h.DeleteUser(context.Background(), &proto.DeleteUserRequest{Id: 999})
	assert.Nil(t, resp)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestUser_ListUsers_Success(t *testing.T) {
	t.Parallel()

	svc := &MockUserService{}
	h := NewUser(svc, testutil.MakeNoopLogger())

	svc.On("List", mock.Anything, 1, 2).Return(model.UserPage{
		Users: []model.User{
			{ID: 3, Username: "user3", Email: "user3@example.com", Active: true},
			{ID: 4, Username: "user4", Email: "user4@example.com", Active: true},
		},
		TotalCount: 5,
	}, nil)

	resp, err := h.ListUsers(context.Background(), &proto.ListUsersRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, int64(3), resp.Users[0].Id)
	assert.Equal(t, int64(4), resp.Users[1].Id)
	assert.Equal(t, int32(5), resp.TotalCount)
}

func TestUser_ListUsers_Empty(t *testing.T) {
	t.Parallel()

	svc := &MockUserService{}
	h := NewUser(svc, testutil.MakeNoopLogger())

	svc.On("List", mock.Anything, 0, 0).Return(model.UserPage{
		Users:      []model.User{},
		TotalCount: 0,
	}, nil)

	resp, err := h.ListUsers(context.Background(), &proto.ListUsersRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Users)
	assert.Equal(t, int32(0), resp.TotalCount)
}
