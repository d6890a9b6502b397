package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"human-sourced-registry/app/server/metrics"
	"human-sourced-registry/app/server/models"
	"human-sourced-registry/app/server/views"
)

const testBaseURL = "https://registry.example.com"

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// openTestDB 打开内存数据库；migrate 为 false 时没有任何表，用来模拟查询出错
func openTestDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	// 内存数据库每个连接是独立的，只保留一个连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if migrate {
		require.NoError(t, db.AutoMigrate(
			&models.Organization{},
			&models.Certification{},
			&models.CertificateView{},
		))
	}

	return db
}

type fixture struct {
	Serial            string
	OrgName           string
	Status            string
	IssuedAt          time.Time
	ExpiresAt         *time.Time
	Tier              *string
	DisclosureSummary *string
	Website           *string
}

// seed 同时写入原表和视图对应的表
func seed(t *testing.T, db *gorm.DB, fixtures ...fixture) {
	t.Helper()

	orgs := map[string]uuid.UUID{}
	for _, f := range fixtures {
		orgID, ok := orgs[f.OrgName]
		if !ok {
			orgID = uuid.New()
			orgs[f.OrgName] = orgID
			require.NoError(t, db.Create(&models.Organization{
				ID:      orgID,
				Name:    f.OrgName,
				Website: f.Website,
			}).Error)
		}

		issuedAt := f.IssuedAt
		if issuedAt.IsZero() {
			issuedAt = testNow.AddDate(0, -1, 0)
		}

		require.NoError(t, db.Create(&models.Certification{
			ID:                uuid.New(),
			SerialID:          f.Serial,
			OrganizationID:    orgID,
			Status:            strings.ToUpper(f.Status),
			Tier:              f.Tier,
			DisclosureSummary: f.DisclosureSummary,
			IssuedAt:          issuedAt,
			ExpiresAt:         f.ExpiresAt,
		}).Error)

		require.NoError(t, db.Create(&models.CertificateView{
			Serial:    f.Serial,
			OrgName:   f.OrgName,
			Status:    strings.ToLower(f.Status),
			IssuedAt:  issuedAt,
			ExpiresAt: f.ExpiresAt,
		}).Error)
	}
}

// countQueries 统计经过 gorm 的查询次数
func countQueries(t *testing.T, db *gorm.DB) *int {
	t.Helper()

	n := new(int)
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register(
		fmt.Sprintf("test:count_queries:%s", t.Name()),
		func(*gorm.DB) { *n++ },
	))
	return n
}

type testEnv struct {
	app *App
	e   *echo.Echo
	m   *metrics.Metrics
}

func newTestEnv(t *testing.T, db *gorm.DB, rdb *redis.Client, mutate ...func(*Options)) *testEnv {
	t.Helper()

	opts := Options{
		BaseURL:           testBaseURL,
		DBTimeout:         5 * time.Second,
		CheckExpiry:       true,
		BadgeCacheControl: "public, max-age=60",
		QRCacheControl:    "public, max-age=86400, immutable",
	}
	for _, f := range mutate {
		f(&opts)
	}

	m := metrics.New(prometheus.NewRegistry())
	a := NewApp(zaptest.NewLogger(t), db, rdb, m, opts)
	a.now = func() time.Time { return testNow }

	v, err := views.New()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = v
	RegisterHandlers(e, a)

	return &testEnv{app: a, e: e, m: m}
}

func (env *testEnv) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}
