//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"stadium-scheduler/cmd/bootstrap"
	"stadium-scheduler/cmd/bootstrap/components"
	"stadium-scheduler/internal/infra/db"
	"stadium-scheduler/internal/pkg/config"
	"stadium-scheduler/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *redis.Client, *gin.Engine, config.Config) {
	postgresInfo, redisInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	router, rdb, cfg, app := buildE2EApp(pool, dbConfig, redisInfo)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	// Register cleanup for the fx app
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	slog.Info("E2E環境の準備が完了しました",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port(),
		"redis_port", redisInfo.Port.Port())

	return pool, rdb, router, cfg
}

// ------------------------------------------------------------
// コンテナ起動関数
// ------------------------------------------------------------
func startContainers(t *testing.T) (ContainerInfo, ContainerInfo) {
	gin.SetMode(gin.TestMode)
	postgresInfo, err := getContainerHostPort(postgresContainer.start(t), "5432/tcp")
	require.NoError(t, err, "PostgreSQLコンテナ情報の取得に失敗")

	redisInfo, err := getContainerHostPort(redisContainer.start(t), "6379/tcp")
	require.NoError(t, err, "Redisコンテナ情報の取得に失敗")

	return postgresInfo, redisInfo
}

// ------------------------------------------------------------
// データベース準備関数
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	// プロセス毎に違うスキーマ名を生成
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "") // ハイフンを除去してDB名として使用

	admin := adminDSN(postgresInfo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, admin)
	require.NoError(t, err, "管理者接続に失敗")
	defer adminPool.Close()

	// 作成直後のコンテナは接続を拒否することがあるため線形バックオフで再試行
	var createErr error
	for attempt := 0; attempt < 5; attempt++ {
		if attempt > 0 {
			backoff := min(time.Duration(attempt+1)*500*time.Millisecond, 3*time.Second)
			slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error(), "retry_wait", backoff)
			time.Sleep(backoff)
		}
		if _, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName); createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	// クリーンアップ（コンテナ自体は自動で消えるが、異常終了時も考慮）
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, admin)
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		_, err = cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName)
		if err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	// closed before the database is dropped
	t.Cleanup(pool.Close)

	dir, err := findMigrationsDir()
	require.NoError(t, err)
	status, err := db.Migrate(dbConfig, dir, 0)
	require.NoError(t, err, "データベースマイグレーションに失敗")
	require.False(t, status.Dirty, "マイグレーションが dirty のまま残っています")

	return pool, dbConfig
}

// the test binary runs from its package dir, so walk up to the repo root
func findMigrationsDir() (string, error) {
	dir := "migrations"
	for i := 0; i < 4; i++ {
		files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
		if err != nil {
			return "", err
		}
		if len(files) > 0 {
			return dir, nil
		}
		dir = filepath.Join("..", dir)
	}
	return "", fmt.Errorf("no migrations found above %s", dir)
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// The mail dispatcher and roller worker are left out so tests can inspect the queue.
// ------------------------------------------------------------
func buildE2EApp(pool *pgxpool.Pool, dbConfig config.DBConfig, redisInfo ContainerInfo) (*gin.Engine, *redis.Client, config.Config, *fx.App) {
	var router *gin.Engine
	var rdb *redis.Client
	var cfg config.Config

	testDBModule := fx.Module("testdb",
		fx.Provide(func() *pgxpool.Pool { return pool }),
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config {
				return createTestConfig(dbConfig, redisInfo)
			},
			bootstrap.NewScheduleLocation,
		),
	)

	app := fx.New(
		testDBModule,
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		components.PersistenceModule,
		components.NotificationModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &rdb, &cfg),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return router, rdb, cfg, app
}

func createTestConfig(dbConfig config.DBConfig, redisInfo ContainerInfo) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	testConfig.Redis.Addr = redisInfo.Host + ":" + redisInfo.Port.Port()
	// one queue per test process
	testConfig.Mail.QueueKey = "test:mail:" + dbConfig.DBName
	return testConfig
}

// ------------------------------------------------------------
// コンテナを一度だけ起動／再利用
// ------------------------------------------------------------
type sharedContainer struct {
	once      sync.Once
	container testcontainers.Container
	name      string
	timeout   time.Duration
	request   func() testcontainers.ContainerRequest
}

var (
	postgresContainer = &sharedContainer{
		name:    "PostgreSQL",
		timeout: 180 * time.Second,
		request: postgresRequest,
	}
	redisContainer = &sharedContainer{
		name:    "Redis",
		timeout: 60 * time.Second,
		request: redisRequest,
	}
)

func (sc *sharedContainer) start(t *testing.T) testcontainers.Container {
	sc.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sc.timeout)
		defer cancel()

		// RYUK stays enabled so aborted runs are still cleaned up
		var err error
		sc.container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: sc.request(),
			Started:          true,
		})
		require.NoErrorf(t, err, "%sコンテナの起動に失敗", sc.name)

		t.Cleanup(func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer stopCancel()
			if err := sc.container.Terminate(stopCtx); err != nil {
				slog.Warn("コンテナの終了に失敗しました", "container", sc.name, "error", err.Error())
			}
		})
	})
	require.NotNilf(t, sc.container, "%sコンテナが起動していません", sc.name)
	return sc.container
}

// durability is traded for speed; the data dir lives in RAM
func postgresRequest() testcontainers.ContainerRequest {
	settings := []string{
		"fsync=off",
		"full_page_writes=off",
		"synchronous_commit=off",
		"shared_buffers=256MB",
		"max_connections=200",
		"log_statement=none",
		"autovacuum_max_workers=2",
	}
	cmd := []string{"postgres"}
	for _, kv := range settings {
		cmd = append(cmd, "-c", kv)
	}

	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd:   cmd,
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return adminDSN(ContainerInfo{Host: host, Port: port})
		}).WithStartupTimeout(60 * time.Second),
		Name:   "stadium-postgres-e2e",
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

// snapshots are off; the mail queue only has to live for one run
func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		Name:         "stadium-redis-e2e",
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}
}

func adminDSN(info ContainerInfo) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())
}

// ------------------------------------------------------------
// コンテナ関連の共通ユーティリティ関数
// ------------------------------------------------------------
func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool // 各テストで使う DB 接続
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	db, rdb, router, cfg := setupE2EEnvironment(t)
	s.DB = db
	s.Redis = rdb
	s.Router = router
	s.Config = cfg
	require.NotNil(t, db, "DBのセットアップに失敗")
	require.NotEmpty(t, s.Config, "Configの取得に失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupTest() {
	// No additional setup needed for tests
	// Each test method can reset DB state if needed
}

func (s *SharedSuite) SetupSubTest() {
	// Reset database state using TRUNCATE and drop queued mail
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
	require.NoError(s.T(), s.Redis.Del(context.Background(), s.Config.Mail.QueueKey).Err(), "Failed to reset mail queue")
}
