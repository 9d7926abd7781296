package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"portfolio/pkg/config"
	"portfolio/pkg/constants"
	"portfolio/pkg/db"
	"portfolio/pkg/http/server/controllers"
	"portfolio/pkg/http/server/flash"
	"portfolio/pkg/http/server/middlewares"
	"portfolio/pkg/http/server/views"
	"portfolio/pkg/metrics"
	project_repo "portfolio/pkg/repository/project"
	"portfolio/pkg/secrets"
	"portfolio/pkg/service/contact"
	"portfolio/pkg/service/project"
	"portfolio/pkg/site"
	"time"

	httpLogger "github.com/go-http-utils/logger"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/unrolled/secure"
)

const shutdownTimeout = 10 * time.Second

// Dependencies is everything the router needs to answer requests.
type Dependencies struct {
	ProjectService project.ProjectService
	ContactService contact.ContactService
	Site           site.Site
	Renderer       views.Renderer
	Flasher        flash.Flasher
	Metrics        *metrics.Metrics
}

// NewDependencies wires the services and the web helpers for the given configuration
func NewDependencies(logger hclog.Logger, configs *config.PortfolioConfigurations) (*Dependencies, error) {
	renderer, err := views.LoadRenderer(afero.NewOsFs(), configs.TemplateDir)
	if err != nil {
		return nil, err
	}

	sessionSecret := configs.SessionSecret
	if sessionSecret == "" {
		sessionSecret, err = secrets.NewPortfolioSecrets(afero.NewOsFs(), secrets.FilePathFor(configs.DbFilePath)).GetSessionSecret()
		if err != nil {
			return nil, err
		}
	}

	m := metrics.NewMetrics()
	dataStore := db.NewSqliteDbConnection(logger, configs.DbFilePath)
	projectRepo := project_repo.NewProjectRepo(logger, dataStore)

	return &Dependencies{
		ProjectService: project.NewProjectService(logger, projectRepo, m),
		ContactService: contact.NewContactService(logger, m),
		Site:           site.NewDirSite(logger, configs.SiteDir),
		Renderer:       renderer,
		Flasher:        flash.NewCookieFlasher(sessionSecret),
		Metrics:        m,
	}, nil
}

// NewRouter mounts every route and middleware
func NewRouter(logger hclog.Logger, deps *Dependencies) http.Handler {
	router := mux.NewRouter()

	// Security middleware
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})

	// Initialize controllers
	pageController := controllers.NewPageController(logger, deps.Site)
	projectController := controllers.NewProjectController(logger, deps.ProjectService, deps.Renderer, deps.Flasher, pageController)
	contactController := controllers.NewContactController(logger, deps.ContactService)
	healthCheckController := controllers.NewHealthCheckController(logger, deps.ProjectService)

	// Mount middleware
	middleware := middlewares.NewMiddlewareHandler(logger)

	router.Use(secureMiddleware.Handler)
	router.Use(mux.CORSMethodMiddleware(router))
	router.Use(middleware.ContextMiddleware)
	router.Use(middleware.RecoveryMiddleware(http.HandlerFunc(pageController.ServerError)))
	router.Use(middleware.MetricsMiddleware(deps.Metrics))

	// Static pages
	router.HandleFunc("/", pageController.Page(constants.IndexPage)).Methods(http.MethodGet)
	router.HandleFunc("/about", pageController.Page(constants.AboutPage)).Methods(http.MethodGet)
	router.HandleFunc("/resume", pageController.Page(constants.ResumePage)).Methods(http.MethodGet)
	router.HandleFunc("/contact", pageController.Page(constants.ContactPage)).Methods(http.MethodGet)
	router.HandleFunc("/thankyou", pageController.Page(constants.ThankYouPage)).Methods(http.MethodGet)
	router.HandleFunc("/resume.pdf", pageController.File("resume.pdf")).Methods(http.MethodGet)
	router.PathPrefix("/static/").Handler(pageController.Assets("static")).Methods(http.MethodGet)
	router.PathPrefix("/images/").Handler(pageController.Assets("images")).Methods(http.MethodGet)

	// Projects
	router.HandleFunc("/projects", projectController.ListProjects).Methods(http.MethodGet)
	router.HandleFunc("/add_project", projectController.AddProject).Methods(http.MethodGet)
	router.HandleFunc("/submit_project", projectController.SubmitProject).Methods(http.MethodPost)
	router.HandleFunc("/edit_project/{id:[0-9]+}", projectController.EditProject).Methods(http.MethodGet)
	router.HandleFunc("/update_project/{id:[0-9]+}", projectController.UpdateProject).Methods(http.MethodPost)
	router.HandleFunc("/delete_project/{id:[0-9]+}", projectController.DeleteProject).Methods(http.MethodPost)

	// Contact
	router.HandleFunc("/submit_contact", contactController.SubmitContact).Methods(http.MethodPost)

	// Operations
	router.HandleFunc("/healthcheck", healthCheckController.HealthCheck).Methods(http.MethodGet)
	router.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)

	router.NotFoundHandler = secureMiddleware.Handler(http.HandlerFunc(pageController.NotFound))

	return router
}

// Start migrates the store and serves until ctx is cancelled, then drains in flight requests
func Start(ctx context.Context, logger hclog.Logger, configs *config.PortfolioConfigurations) error {
	logger = logger.Named("http-server")

	deps, err := NewDependencies(logger, configs)
	if err != nil {
		return err
	}

	if migrateErr := deps.ProjectService.InitializeSchema(); migrateErr != nil {
		return fmt.Errorf("failed to initialize schema: %s", migrateErr.Message)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(configs.Host, configs.Port),
		Handler:      httpLogger.Handler(NewRouter(logger, deps), os.Stderr, httpLogger.CombineLoggerType),
		ReadTimeout:  time.Duration(configs.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(configs.WriteTimeoutSeconds) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server is running", "address", fmt.Sprintf("http://%s", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start http-server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http-server: %w", err)
	}
	return nil
}
