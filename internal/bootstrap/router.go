package bootstrap

import (
	"math/rand"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/config"
	"github.com/stai-tuned/gcf-flood-backend/internal/analysis"
	httpapi "github.com/stai-tuned/gcf-flood-backend/internal/api/http"
	authhttp "github.com/stai-tuned/gcf-flood-backend/internal/auth/http"
	authrepo "github.com/stai-tuned/gcf-flood-backend/internal/auth/repository"
	authservice "github.com/stai-tuned/gcf-flood-backend/internal/auth/service"
	"github.com/stai-tuned/gcf-flood-backend/internal/llm"
	"github.com/stai-tuned/gcf-flood-backend/internal/monitoring"
	projecthttp "github.com/stai-tuned/gcf-flood-backend/internal/projects/http"
	"github.com/stai-tuned/gcf-flood-backend/internal/projects/plangen"
	projectrepo "github.com/stai-tuned/gcf-flood-backend/internal/projects/repository"
	projectservice "github.com/stai-tuned/gcf-flood-backend/internal/projects/service"
	"github.com/stai-tuned/gcf-flood-backend/internal/reports"
)

type RouterDeps struct {
	ServiceName      string
	Version          string
	CORS             []string
	SessionTTL       time.Duration
	StrictCategories bool
	OpenAI           config.OpenAI
	Store            *redis.Client
	Log              *zap.Logger
}

// Wiring is what BuildRouter assembled. The session repository is
// exposed so the caller can hand it to the janitor.
type Wiring struct {
	Engine   *gin.Engine
	Sessions *authrepo.SessionRepo
}

func BuildRouter(dep RouterDeps) Wiring {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = dep.CORS
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	userRepo := authrepo.NewUserRepo(dep.Store, dep.Log)
	sessionRepo := authrepo.NewSessionRepo(dep.Store, dep.Log)
	authSvc := authservice.NewAuthService(userRepo, sessionRepo, dep.SessionTTL)
	authhttp.New(authSvc).Register(api.Group("/auth"))

	client := llm.NewClient(dep.OpenAI)

	projectRepo := projectrepo.NewRepo(dep.Store, dep.Log)
	plans := plangen.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	projectSvc := projectservice.NewProjectService(projectRepo, plans, dep.StrictCategories)

	protected := api.Group("")
	protected.Use(authhttp.RequireSession(authSvc))

	projecthttp.New(projectSvc).Register(protected.Group("/projects"))

	var analyzer analysis.Analyzer = analysis.FallbackAnalyzer{}
	var generator reports.Generator = reports.NewFallbackGenerator()
	if client.Configured() {
		analyzer = analysis.NewLiveAnalyzer(client, dep.Log)
		generator = reports.NewLiveGenerator(client, dep.Log)
	}
	analysis.NewHandler(analyzer).Register(protected)
	reports.NewHandler(generator).Register(protected)

	monitoring.NewHandler().Register(api)

	return Wiring{Engine: r, Sessions: sessionRepo}
}
