package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/config"
	"github.com/riskibarqy/football-data/internal/infrastructure/repository/mongodb"
	"github.com/riskibarqy/football-data/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-data/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/riskibarqy/football-data/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	_ "github.com/lib/pq"
)

// App owns both store connections and the HTTP server built on top of them.
type App struct {
	Server *http.Server

	db          *sqlx.DB
	mongoClient *mongo.Client
	logger      *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := connectPostgres(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	mongoClient, mongoDB, err := connectMongo(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	leagueRepo := postgres.NewLeagueRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	personRepo := postgres.NewPersonRepository(db)
	gameRepo := postgres.NewGameRepository(db)
	matchRepo := mongodb.NewMatchRepository(mongoDB)

	leagueSvc := usecase.NewLeagueService(leagueRepo, personRepo)
	scorerSvc := usecase.NewScorerService(leagueRepo, matchRepo, cfg.ScorerEventTypes)
	teamSvc := usecase.NewTeamService(teamRepo, gameRepo)
	personSvc := usecase.NewPersonService(personRepo)
	gameSvc := usecase.NewGameService(leagueRepo, gameRepo, matchRepo)

	handler := httpapi.NewHandler(leagueSvc, scorerSvc, teamSvc, personSvc, gameSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = db.Close()
		_ = mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:      server,
		db:          db,
		mongoClient: mongoClient,
		logger:      logger,
	}, nil
}

func connectPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func connectMongo(ctx context.Context, cfg config.Config) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, client.Database(cfg.MongoDatabase), nil
}

func (a *App) Close(ctx context.Context) error {
	var firstErr error
	if err := a.db.Close(); err != nil {
		firstErr = err
	}
	if err := a.mongoClient.Disconnect(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
