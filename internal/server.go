package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/fitness/friends"
	"github.com/2beens/fittrack/internal/fitness/goals"
	"github.com/2beens/fittrack/internal/fitness/insights"
	fitmcp "github.com/2beens/fittrack/internal/fitness/mcp"
	"github.com/2beens/fittrack/internal/fitness/users"
	"github.com/2beens/fittrack/internal/fitness/workouts"
	"github.com/2beens/fittrack/internal/gateway"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

const sessionsCleanupInterval = time.Hour * 8

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config    *config.Config
	dbPool    *pgxpool.Pool
	gateway   *gateway.Gateway
	mcpServer *mcpsdk.Server

	redisClient *redis.Client
	authService *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config *config.Config
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.Secrets.PostgresPassword,
		MaxConns:       int32(cfg.PostgresPoolSize),
		TracingEnabled: cfg.Secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	gw := gateway.New(dbPool, metricsManager)
	if err := gw.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.Secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(cfg.SessionTTL(), rdb)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(cfg.Secrets.HoneycombEnabled, "fittrack-api", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:    cfg,
		dbPool:    dbPool,
		gateway:   gw,
		mcpServer: fitmcp.NewServer(gw),

		redisClient: rdb,
		authService: authService,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fittrack-router"))

	withSession := func(h http.HandlerFunc) http.Handler {
		return middleware.Session(s.authService, s.gateway)(h)
	}

	usersHandler := users.NewHandler(s.gateway, s.authService, s.metricsManager)
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	loginRateLimit := middleware.RateLimit(
		reqRateLimiter,
		"login",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	)
	r.HandleFunc("/users", usersHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.HandleFunc("/users/{id}", usersHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-user")
	r.Handle("/login", loginRateLimit(http.HandlerFunc(usersHandler.HandleLogin))).Methods("POST", "OPTIONS").Name("login")
	r.Handle("/logout", withSession(usersHandler.HandleLogout)).Methods("POST", "OPTIONS").Name("logout")
	r.Handle("/me", withSession(usersHandler.HandleMe)).Methods("GET", "OPTIONS").Name("me")
	r.Handle("/me", withSession(usersHandler.HandleUpdateMe)).Methods("PUT", "OPTIONS").Name("update-me")
	r.Handle("/me", withSession(usersHandler.HandleDeleteMe)).Methods("DELETE", "OPTIONS").Name("delete-me")

	workoutsHandler := workouts.NewHandler(s.gateway, s.metricsManager)
	r.Handle("/me/workouts", withSession(workoutsHandler.HandleList)).Methods("GET", "OPTIONS").Name("list-workouts")
	r.Handle("/me/workouts", withSession(workoutsHandler.HandleCreate)).Methods("POST", "OPTIONS").Name("log-workout")
	r.Handle("/me/workouts/{id}", withSession(workoutsHandler.HandleDelete)).Methods("DELETE", "OPTIONS").Name("delete-workout")

	friendsHandler := friends.NewHandler(s.gateway)
	r.Handle("/me/friends", withSession(friendsHandler.HandleList)).Methods("GET", "OPTIONS").Name("list-friends")
	r.Handle("/me/friends/{id}", withSession(friendsHandler.HandleAdd)).Methods("POST", "OPTIONS").Name("add-friend")
	r.Handle("/me/friends/{id}", withSession(friendsHandler.HandleRemove)).Methods("DELETE", "OPTIONS").Name("remove-friend")

	goalsHandler := goals.NewHandler(s.gateway)
	r.Handle("/me/goals", withSession(goalsHandler.HandleList)).Methods("GET", "OPTIONS").Name("list-goals")
	r.Handle("/me/goals", withSession(goalsHandler.HandleCreate)).Methods("POST", "OPTIONS").Name("new-goal")
	r.Handle("/me/goals/{id}/status", withSession(goalsHandler.HandleSetStatus)).Methods("PUT", "OPTIONS").Name("set-goal-status")
	r.Handle("/me/goals/{id}", withSession(goalsHandler.HandleDelete)).Methods("DELETE", "OPTIONS").Name("delete-goal")

	insightsHandler := insights.NewHandler(s.gateway)
	r.HandleFunc("/leaderboard", insightsHandler.HandleLeaderboard).Methods("GET", "OPTIONS").Name("leaderboard")
	r.Handle("/me/insights", withSession(insightsHandler.HandleMyInsights)).Methods("GET", "OPTIONS").Name("my-insights")

	r.Handle("/mcp", fitmcp.HTTPHandler(s.mcpServer)).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      handlers.CompressHandler(router),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
