package httpserver

import (
	alertHTTP "seatwatch-srv/internal/alert/delivery/http"
	authHTTP "seatwatch-srv/internal/auth/delivery/http"
	dispatcherHTTP "seatwatch-srv/internal/dispatcher/delivery/http"
	"seatwatch-srv/internal/middleware"
	operationHTTP "seatwatch-srv/internal/operation/delivery/http"
	terminalHTTP "seatwatch-srv/internal/terminal/delivery/http"
	userHTTP "seatwatch-srv/internal/user/delivery/http"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Api = "/api"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health endpoints (no auth)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.logger, srv.jwtMgr)
	api := srv.gin.Group(Api)

	terminalHTTP.New(srv.logger, srv.terminalUC).RegisterRoutes(api)
	operationHTTP.New(srv.logger, srv.operationUC).RegisterRoutes(api)
	authHTTP.New(srv.logger, srv.authUC).RegisterRoutes(api)
	alertHTTP.New(srv.logger, srv.alertUC).RegisterRoutes(api)
	userHTTP.New(srv.logger, srv.userUC).RegisterRoutes(api, mw)
	dispatcherHTTP.New(srv.logger, srv.dispatcherUC).RegisterRoutes(api, mw)

	return nil
}
