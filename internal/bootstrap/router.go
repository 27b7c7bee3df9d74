package bootstrap

import (
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/enesocakci/portfolio-backend/config"
	httpapi "github.com/enesocakci/portfolio-backend/internal/api/http"
	"github.com/enesocakci/portfolio-backend/internal/api/middleware"
	authhttp "github.com/enesocakci/portfolio-backend/internal/auth/http"
	msghttp "github.com/enesocakci/portfolio-backend/internal/messages/http"
	msgrepo "github.com/enesocakci/portfolio-backend/internal/messages/repository"
	offerhttp "github.com/enesocakci/portfolio-backend/internal/offers/http"
	offerrepo "github.com/enesocakci/portfolio-backend/internal/offers/repository"
	offersvc "github.com/enesocakci/portfolio-backend/internal/offers/service"
	projcache "github.com/enesocakci/portfolio-backend/internal/projects/cache"
	projhttp "github.com/enesocakci/portfolio-backend/internal/projects/http"
	projrepo "github.com/enesocakci/portfolio-backend/internal/projects/repository"
	projsvc "github.com/enesocakci/portfolio-backend/internal/projects/service"
)

const projectCacheTTL = 5 * time.Minute

type RouterDeps struct {
	ServiceName string
	Version     string
	CORS        config.CORSConfig
	Firestore   *firestore.Client
	Users       authhttp.UserGetter
	Redis       *redis.Client // nil disables the listing cache
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.NewCORS(dep.CORS))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	authhttp.New(dep.Users).Register(r)

	msghttp.New(msgrepo.New(dep.Firestore)).Register(r)

	var cache projsvc.Cache
	if dep.Redis != nil {
		cache = projcache.New(dep.Redis, projectCacheTTL)
	}
	projectSvc := projsvc.NewProjectService(projrepo.NewProjectRepository(dep.Firestore), cache)
	likeLimit := middleware.RateLimitPerClient(rate.Limit(1), 5)
	projhttp.New(projectSvc).Register(r, likeLimit)

	offerSvc := offersvc.NewOfferService(offerrepo.New(dep.Firestore))
	offerhttp.New(offerSvc).Register(r)

	return r
}
