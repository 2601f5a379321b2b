package router

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/studentorg/internal/config"
	"github.com/yukikurage/studentorg/internal/constants"
	"github.com/yukikurage/studentorg/internal/handlers"
	"github.com/yukikurage/studentorg/internal/middleware"
	"github.com/yukikurage/studentorg/internal/services"
)

// NewSessionStore returns a redis-backed store when REDIS_ADDR is set,
// otherwise a signed cookie store. Sessions only carry flash messages.
func NewSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	if cfg.RedisAddr != "" {
		rs, err := redisStore.NewStore(
			10,            // pool size
			"tcp",         // network
			cfg.RedisAddr, // address
			"",            // username
			"",            // password
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		store = rs
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   cfg.IsRelease(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}

// New builds the engine with every route mounted.
func New(cfg *config.Config, svc *services.Services, store sessions.Store) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), middleware.Recovery())
	r.Use(sessions.Sessions(constants.SessionName, store))

	dashboard := handlers.NewDashboardHandler(svc.Dashboard)
	r.GET("/", dashboard.Home)
	r.GET("/health", handlers.Health)

	handlers.NewCollegeHandler(svc.Colleges, cfg.PageSize).
		Register(r.Group("/colleges"))
	handlers.NewProgramHandler(svc.Programs, svc.Colleges, cfg.PageSize).
		Register(r.Group("/programs"))
	handlers.NewStudentHandler(svc.Students, svc.Programs, cfg.PageSize).
		Register(r.Group("/students"))
	handlers.NewOrganizationHandler(svc.Organizations, svc.Colleges, cfg.PageSize).
		Register(r.Group("/organizations"))
	handlers.NewOrgMemberHandler(svc.Members, svc.Students, svc.Organizations, cfg.PageSize).
		Register(r.Group("/org-members"))

	return r
}
