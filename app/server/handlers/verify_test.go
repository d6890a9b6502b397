package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"human-sourced-registry/app/server/types"
)

func TestVerifyActiveCertificate(t *testing.T) {
	db := openTestDB(t, true)
	seed(t, db, fixture{Serial: "HS-C-2025-000001", OrgName: "Acme Writers", Status: "active"})
	env := newTestEnv(t, db, nil)

	rec := env.get("/api/v1/verify?serial=HS-C-2025-000001")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var v types.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.True(t, v.Valid)
	assert.Equal(t, "HS-C-2025-000001", v.Serial)
	assert.Equal(t, "Acme Writers", v.Org)
	assert.Equal(t, "active", v.Status)
	require.NotNil(t, v.IssuedAt)
	assert.Nil(t, v.ExpiresAt)
	require.NotNil(t, v.LastVerifiedAt)
	assert.True(t, testNow.Equal(*v.LastVerifiedAt))

	assert.Equal(t, 1.0, testutil.ToFloat64(env.m.Verdicts.WithLabelValues("valid")))
}

func TestVerifyInvalidCertificates(t *testing.T) {
	past := testNow.Add(-24 * time.Hour)
	future := testNow.Add(24 * time.Hour)

	db := openTestDB(t, true)
	seed(t, db,
		fixture{Serial: "HS-C-2025-000002", OrgName: "Acme Writers", Status: "revoked"},
		fixture{Serial: "HS-C-2025-000003", OrgName: "Acme Writers", Status: "active", ExpiresAt: &past},
		fixture{Serial: "HS-C-2025-000004", OrgName: "Acme Writers", Status: "active", ExpiresAt: &future},
		fixture{Serial: "HS-C-2025-000005", OrgName: "Acme Writers", Status: "suspended"},
	)
	env := newTestEnv(t, db, nil)

	tests := []struct {
		serial string
		valid  bool
		status string
	}{
		{"HS-C-2025-000002", false, "revoked"},
		{"HS-C-2025-000003", false, "active"},
		{"HS-C-2025-000004", true, "active"},
		{"HS-C-2025-000005", false, "suspended"},
	}

	for _, tt := range tests {
		t.Run(tt.serial, func(t *testing.T) {
			rec := env.get("/api/v1/verify?serial=" + tt.serial)
			require.Equal(t, http.StatusOK, rec.Code)

			var v types.Verdict
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
			assert.Equal(t, tt.valid, v.Valid)
			assert.Equal(t, tt.status, v.Status)
		})
	}
}

func TestVerifyExpiredWithExpiryCheckDisabled(t *testing.T) {
	past := testNow.Add(-24 * time.Hour)

	db := openTestDB(t, true)
	seed(t, db, fixture{Serial: "HS-C-2024-000010", OrgName: "Acme Writers", Status: "active", ExpiresAt: &past})
	env := newTestEnv(t, db, nil, func(o *Options) { o.CheckExpiry = false })

	rec := env.get("/api/v1/verify?serial=HS-C-2024-000010")
	require.Equal(t, http.StatusOK, rec.Code)

	var v types.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.True(t, v.Valid)
	require.NotNil(t, v.ExpiresAt)
	assert.True(t, past.Equal(*v.ExpiresAt))
}

func TestVerifyUnknownSerial(t *testing.T) {
	env := newTestEnv(t, openTestDB(t, true), nil)

	rec := env.get("/api/v1/verify?serial=HS-C-9999-999999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"valid":false,"serial":"HS-C-9999-999999"}`, rec.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(env.m.Verdicts.WithLabelValues("not_found")))
}

func TestVerifyMissingSerialNeverQueries(t *testing.T) {
	db := openTestDB(t, true)
	queries := countQueries(t, db)
	env := newTestEnv(t, db, nil)

	for _, target := range []string{"/api/v1/verify", "/api/v1/verify?serial=", "/api/v1/verify?serial=%20%20"} {
		rec := env.get(target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.JSONEq(t, `{"error":"serial is required"}`, rec.Body.String())
	}
	assert.Zero(t, *queries)

	// 没有配置数据库时也先校验参数
	rec := newTestEnv(t, nil, nil).get("/api/v1/verify")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyDatastoreNotConfigured(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.get("/api/v1/verify?serial=HS-C-2025-000001")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var msg types.ErrorMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Contains(t, msg.Error, "DB_URL")
}

func TestVerifyDatastoreError(t *testing.T) {
	env := newTestEnv(t, openTestDB(t, false), nil)

	rec := env.get("/api/v1/verify?serial=HS-C-2025-000001")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var msg types.ErrorMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.NotEmpty(t, msg.Error)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.m.Verdicts.WithLabelValues("error")))
}

func TestVerifySingleRead(t *testing.T) {
	db := openTestDB(t, true)
	seed(t, db, fixture{Serial: "HS-C-2025-000001", OrgName: "Acme Writers", Status: "active"})
	queries := countQueries(t, db)
	env := newTestEnv(t, db, nil)

	env.get("/api/v1/verify?serial=HS-C-2025-000001")
	assert.Equal(t, 1, *queries)
}

func TestVerifyTimestampsInUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	issued := time.Date(2025, 1, 15, 10, 0, 0, 0, zone)
	expires := time.Date(2026, 1, 15, 10, 0, 0, 0, zone)

	db := openTestDB(t, true)
	seed(t, db, fixture{Serial: "HS-C-2025-000001", OrgName: "Acme Writers", Status: "active", IssuedAt: issued, ExpiresAt: &expires})
	env := newTestEnv(t, db, nil)

	rec := env.get("/api/v1/verify?serial=HS-C-2025-000001")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"issued_at":"2025-01-15T08:00:00Z"`)
	assert.Contains(t, body, `"expires_at":"2026-01-15T08:00:00Z"`)
	assert.Contains(t, body, `"last_verified_at":"2025-06-01T12:00:00Z"`)
}
