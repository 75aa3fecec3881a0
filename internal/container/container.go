package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/logitrack-io/logitrack/config"
	"github.com/logitrack-io/logitrack/internal/domain/repository"
	"github.com/logitrack-io/logitrack/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire their dependencies from these singletons;
// main decides which store driver backs the repositories.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	esClient    *elasticsearch.Client
	jwtManager  *helpers.JWTManager

	userRepo     repository.UserRepository
	shipmentRepo repository.ShipmentRepository
)

func SetConfig(c *config.Config)    { cfg = c }
func GetConfig() *config.Config     { return cfg }
func SetLogger(l *logrus.Logger)    { logger = l }
func GetLogger() *logrus.Logger     { return logger }
func SetPGPool(p *pgxpool.Pool)     { pgPool = p }
func GetPGPool() *pgxpool.Pool      { return pgPool }
func SetRedis(r *redis.Client)      { redisClient = r }
func GetRedis() *redis.Client       { return redisClient }
func SetES(c *elasticsearch.Client) { esClient = c }
func GetES() *elasticsearch.Client  { return esClient }
func SetJWT(m *helpers.JWTManager)  { jwtManager = m }
func GetJWT() *helpers.JWTManager   { return jwtManager }

func SetUserRepo(r repository.UserRepository)         { userRepo = r }
func GetUserRepo() repository.UserRepository          { return userRepo }
func SetShipmentRepo(r repository.ShipmentRepository) { shipmentRepo = r }
func GetShipmentRepo() repository.ShipmentRepository  { return shipmentRepo }
