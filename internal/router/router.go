package router

import (
	"database/sql"
	"net/http"

	mem "pets-api/internal/adapters/storage/memory"
	pg "pets-api/internal/adapters/storage/postgres"
	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/traits"
	"pets-api/internal/middleware"
	"pets-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger   logger.Logger // nil => Nop
	PageSize int           // <= 0 => 10
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	r.Use(chimw.StripSlashes)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo   pets.Repository
		groupRepo groups.Repository
		traitRepo traits.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		groupRepo = pg.NewGroupsRepo(opts.DB)
		traitRepo = pg.NewTraitsRepo(opts.DB)
		log.Info("storage: postgres", nil)
	} else {
		petRepo = mem.NewPetRepo()
		groupRepo = mem.NewGroupRepo()
		traitRepo = mem.NewTraitRepo()
		log.Info("storage: in-memory", nil)
	}

	groupsSvc := groups.NewService(groupRepo)
	traitsSvc := traits.NewService(traitRepo)
	petsSvc := pets.NewService(petRepo, groupsSvc, traitsSvc)

	pets.RegisterRoutes(r, petsSvc, opts.PageSize)

	return r
}
