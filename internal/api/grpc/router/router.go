package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ndenisov/userdir-server/internal/api/grpc/handler"
	"github.com/ndenisov/userdir-server/internal/api/grpc/middleware"
	"github.com/ndenisov/userdir-server/internal/logger"
	"github.com/ndenisov/userdir-server/internal/proto"
	"github.com/ndenisov/userdir-server/internal/service"
)

// Router assembles the gRPC server: service registration plus middleware.
type Router struct {
	userService *service.User
	logger      *logger.Logger
}

// New creates a new gRPC Router instance for the user service.
func New(userService *service.User, logger *logger.Logger) *Router {
	return &Router{
		userService: userService,
		logger:      logger,
	}
}

// Register builds the gRPC server with request logging and panic recovery
// interceptors and registers the user service on it.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(
				recovery.WithRecoveryHandler(r.recoverFrom),
			),
		),
	)
	r.registerUserRoutes(s)

	return s
}

// recoverFrom turns a handler panic into an Internal status instead of
// tearing down the server. The panic value is logged, not returned.
func (r *Router) recoverFrom(p any) error {
	r.logger.Error("gRPC handler panicked", "panic", p)
	return status.Error(codes.Internal, "internal server error")
}

func (r *Router) registerUserRoutes(server *grpc.Server) {
	userHandler := handler.NewUser(r.userService, r.logger)
	proto.RegisterUserServiceServer(server, userHandler)
}
