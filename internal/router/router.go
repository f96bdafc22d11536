package router

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pet-care-hub/internal/adapters/auth/jwtsession"
	"pet-care-hub/internal/adapters/auth/mock"
	"pet-care-hub/internal/adapters/auth/odin"
	"pet-care-hub/internal/adapters/capabilities/plansfeatures"
	"pet-care-hub/internal/adapters/capabilities/static"
	"pet-care-hub/internal/adapters/sessions"
	mem "pet-care-hub/internal/adapters/storage/memory"
	"pet-care-hub/internal/adapters/storage/sqlstore"
	"pet-care-hub/internal/adapters/storage/sqlstore/migrations"
	"pet-care-hub/internal/config"
	"pet-care-hub/internal/domain/dashboard"
	"pet-care-hub/internal/domain/notifications"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/posts"
	"pet-care-hub/internal/domain/reminders"
	"pet-care-hub/internal/domain/reports"
	"pet-care-hub/internal/domain/users"
	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/platform/httpjson"
	"pet-care-hub/internal/platform/logger"
	"pet-care-hub/internal/ports/auth"
	"pet-care-hub/internal/ports/capabilities"
	"pet-care-hub/internal/transport/ws"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-care-hub/docs"
)

const remoteTimeout = 5 * time.Second

type Options struct {
	Config *config.Config
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa SQL (dialecto según Config.Storage.Driver). Si no, in-memory.
	DB *sql.DB

	// Orígenes aceptados por el websocket (vacío = mismo host).
	OriginPatterns []string
}

// App es el handler HTTP más lo que hay que cerrar al apagar.
type App struct {
	Handler http.Handler
	Hub     *ws.Hub

	closers []func() error
}

func (a *App) Close() error {
	a.Hub.Close()
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// repoSet lo cumplen tanto memory.Store como sqlstore.Store.
type repoSet interface {
	Users() users.Repository
	Pets() pets.Repository
	Reminders() reminders.Repository
	Posts() posts.Repository
	Reports() reports.Repository
	Notifications() notifications.Repository
}

func NewRouter(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("default timezone: %w", err)
	}

	app := &App{}

	// Storage
	var store repoSet
	if opts.DB != nil {
		if err := migrations.MigrateUp(opts.DB, cfg.Storage.Driver); err != nil {
			return nil, err
		}
		store = sqlstore.New(opts.DB)
	} else {
		if cfg.Storage.Driver != config.StorageMemory {
			return nil, fmt.Errorf("storage driver %q needs an open database", cfg.Storage.Driver)
		}
		store = mem.NewStore()
	}

	// Sesiones: Redis si está configurado, si no en memoria.
	var sessionStore auth.SessionStore
	if cfg.Redis.Addr != "" {
		client := sessions.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		rs := sessions.NewRedisStore(client, cfg.Auth.SessionTTL)
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()
		if err := rs.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		app.closers = append(app.closers, client.Close)
		sessionStore = rs
	} else {
		sessionStore = sessions.NewMemoryStore(cfg.Auth.SessionTTL)
	}

	tokens, err := jwtsession.NewManager(cfg.Auth.JWTSecret, cfg.AppName, sessionStore)
	if err != nil {
		return nil, err
	}

	var (
		authn    auth.Authenticator = mock.NewAuthenticator()
		verifier auth.AuthVerifier  = tokens
	)
	if cfg.Odin.BaseURL != "" {
		client, err := odin.NewClient(odin.Config{BaseURL: cfg.Odin.BaseURL, APIKey: cfg.Odin.APIKey, Timeout: remoteTimeout})
		if err != nil {
			return nil, fmt.Errorf("odin client: %w", err)
		}
		authn = odin.NewAuthenticator(client)
		verifier = chainVerifier{tokens, odin.NewVerifier(client)}
	}

	var caps capabilities.CapabilitiesResolver
	if cfg.Plans.BaseURL != "" {
		client, err := plansfeatures.NewClient(plansfeatures.Config{BaseURL: cfg.Plans.BaseURL, APIKey: cfg.Plans.APIKey, Timeout: remoteTimeout})
		if err != nil {
			return nil, fmt.Errorf("plans client: %w", err)
		}
		caps = plansfeatures.NewResolver(client, false)
	} else {
		caps = static.NewResolver(map[string]bool{
			capabilities.FeaturePostModeration: cfg.Community.ModerationEnabled,
		})
	}

	// Services por módulo
	usersSvc := users.NewService(store.Users(), authn, sessionStore, tokens, users.Options{
		SessionTTL:      cfg.Auth.SessionTTL,
		AdminEmails:     cfg.Auth.AdminEmails,
		ModeratorEmails: cfg.Auth.ModeratorEmails,
	})
	petsSvc := pets.NewService(store.Pets())
	remindersSvc := reminders.NewService(store.Reminders(), petsSvc)
	if opts.DB != nil {
		// La base puede ser compartida por varias instancias.
		remindersSvc.DisableViewCache()
	}
	petsSvc.OnDelete(func(_ context.Context, ownerUserID, _ string) {
		remindersSvc.Invalidate(ownerUserID)
	})

	hub := ws.NewHub(log)
	app.Hub = hub
	notificationsSvc := notifications.NewService(store.Notifications(), hub)
	postsSvc := posts.NewService(store.Posts(), caps, notificationsSvc, posts.Options{DedupLikes: cfg.Community.DedupLikes})
	reportsSvc := reports.NewService(store.Reports(), postsSvc, notificationsSvc)
	dashboardSvc := dashboard.NewService(petsSvc, remindersSvc, notificationsSvc, postsSvc)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(verifier, cfg.Auth.DevAuth))
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Write(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	pets.RegisterRoutes(r, petsSvc)
	reminders.RegisterRoutes(r, remindersSvc, petsSvc, loc)
	posts.RegisterRoutes(r, postsSvc, usersSvc)
	reports.RegisterRoutes(r, reportsSvc, usersSvc)
	notifications.RegisterRoutes(r, notificationsSvc, ws.Handler(hub, opts.OriginPatterns))
	dashboard.RegisterRoutes(r, dashboardSvc, loc)

	app.Handler = r
	return app, nil
}

// chainVerifier prueba cada verifier en orden; gana el primero que acepta.
type chainVerifier []auth.AuthVerifier

func (c chainVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	var errs []error
	for _, v := range c {
		claims, err := v.Verify(ctx, token)
		if err == nil {
			return claims, nil
		}
		errs = append(errs, err)
	}
	return auth.Claims{}, errors.Join(errs...)
}
