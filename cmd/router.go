package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/askaround/internal/handlers"
	"github.com/sbilibin2017/askaround/internal/jwt"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/metrics"
	"github.com/sbilibin2017/askaround/internal/middlewares"
	"github.com/sbilibin2017/askaround/internal/repositories"
	"github.com/sbilibin2017/askaround/internal/services"
	"github.com/sbilibin2017/askaround/internal/tx"
)

// app is the wired service graph the HTTP surface is built from.
type app struct {
	db        *sqlx.DB
	tokens    *jwt.JWT
	auth      *services.AuthService
	questions *services.QuestionService
	answers   *services.AnswerService
	favorites *services.FavoriteService
}

func newApp(db *sqlx.DB, rdb *redis.Client, events services.EventPublisher, tokens *jwt.JWT, cfg config) *app {
	userReadRepo := repositories.NewUserReadRepository(db, tx.FromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, tx.FromContext)
	questionReadRepo := repositories.NewQuestionReadRepository(db, tx.FromContext)
	questionWriteRepo := repositories.NewQuestionWriteRepository(db, tx.FromContext)
	answerReadRepo := repositories.NewAnswerReadRepository(db, tx.FromContext)
	answerWriteRepo := repositories.NewAnswerWriteRepository(db, tx.FromContext)
	questionGeoRepo := repositories.NewQuestionGeoRepository(rdb, cfg.RedisGeoKey)

	return &app{
		db:        db,
		tokens:    tokens,
		auth:      services.NewAuthService(userReadRepo, userWriteRepo, tokens, services.WithBcryptCost(cfg.BcryptCost)),
		questions: services.NewQuestionService(questionReadRepo, questionWriteRepo, answerReadRepo, questionGeoRepo, events),
		answers:   services.NewAnswerService(answerReadRepo, answerWriteRepo, questionWriteRepo, events),
		favorites: services.NewFavoriteService(userReadRepo, userWriteRepo, questionWriteRepo, questionReadRepo, answerReadRepo, events),
	}
}

func newRouter(d *app, rateLimiter *middlewares.RateLimiter, corsOrigins []string, swaggerDocURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(metrics.InstrumentHandler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", handlers.NewHealthHandler(d.questions))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerDocURL)))

	authenticated := middlewares.AuthMiddleware(d.tokens, d.auth)
	inTx := middlewares.TxMiddleware(d.db)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(rateLimiter.Handler)
			r.With(inTx).Post("/register", handlers.NewRegisterHandler(d.auth))
			r.Post("/login", handlers.NewLoginHandler(d.auth))
			r.With(authenticated).Get("/profile", handlers.NewProfileHandler(d.auth))
			r.With(authenticated).Post("/logout", handlers.NewLogoutHandler())
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", handlers.NewNearbyQuestionsHandler(d.questions))
			r.With(authenticated, inTx).Post("/", handlers.NewCreateQuestionHandler(d.questions))
			r.Get("/{id}", handlers.NewGetQuestionHandler(d.questions))
		})

		r.Route("/answers", func(r chi.Router) {
			r.With(authenticated, inTx).Post("/", handlers.NewCreateAnswerHandler(d.answers))
			r.Get("/question/{id}", handlers.NewAnswersByQuestionHandler(d.answers))
			r.Get("/{id}", handlers.NewGetAnswerHandler(d.answers))
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/me", handlers.NewProfileHandler(d.auth))
			r.With(inTx).Patch("/{id}", handlers.NewUpdateProfileHandler(d.auth))

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", handlers.NewListFavoritesHandler(d.favorites))
				r.With(inTx).Post("/{questionId}", handlers.NewAddFavoriteHandler(d.favorites))
				r.With(inTx).Delete("/{questionId}", handlers.NewRemoveFavoriteHandler(d.favorites))
			})
		})
	})

	return r
}

func swaggerURL(host, port string) string {
	return fmt.Sprintf("http://%s:%s/swagger/doc.json", host, port)
}
