package httpserver

import (
	"database/sql"
	"errors"

	"seatwatch-srv/internal/alert"
	"seatwatch-srv/internal/auth"
	"seatwatch-srv/internal/dispatcher"
	"seatwatch-srv/internal/operation"
	"seatwatch-srv/internal/terminal"
	"seatwatch-srv/internal/user"
	"seatwatch-srv/pkg/discord"
	"seatwatch-srv/pkg/jwt"
	"seatwatch-srv/pkg/log"
	pkgRedis "seatwatch-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer wires the API surface. New() only assembles and validates
// dependencies; Run() starts serving.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	port   int
	mode   string

	// Domain usecases
	terminalUC   terminal.UseCase
	operationUC  operation.UseCase
	alertUC      alert.UseCase
	authUC       auth.UseCase
	userUC       user.UseCase
	dispatcherUC dispatcher.Dispatcher

	// Auth
	jwtMgr jwt.Manager

	// External services
	db      *sql.DB
	redis   pkgRedis.IRedis
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	// Mode is the gin mode: debug, release, or test.
	Mode string

	TerminalUC   terminal.UseCase
	OperationUC  operation.UseCase
	AlertUC      alert.UseCase
	AuthUC       auth.UseCase
	UserUC       user.UseCase
	DispatcherUC dispatcher.Dispatcher

	JWTManager jwt.Manager

	DB      *sql.DB
	Redis   pkgRedis.IRedis
	Discord discord.IDiscord
}

// New assembles the server. It starts no goroutines.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:    gin.New(),
		logger: logger,
		port:   cfg.Port,
		mode:   cfg.Mode,

		terminalUC:   cfg.TerminalUC,
		operationUC:  cfg.OperationUC,
		alertUC:      cfg.AlertUC,
		authUC:       cfg.AuthUC,
		userUC:       cfg.UserUC,
		dispatcherUC: cfg.DispatcherUC,

		jwtMgr: cfg.JWTManager,

		db:      cfg.DB,
		redis:   cfg.Redis,
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.terminalUC == nil || srv.operationUC == nil || srv.alertUC == nil ||
		srv.authUC == nil || srv.userUC == nil || srv.dispatcherUC == nil {
		return errors.New("all domain usecases are required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}
	if srv.db == nil {
		return errors.New("database handle is required")
	}
	if srv.redis == nil {
		return errors.New("redis client is required")
	}
	return nil
}
