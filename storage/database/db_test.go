package database

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/exam"
	logsvc "github.com/trezcool/darasa/services/logger"
)

func TestOpen_modeSwitch(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_ = json.NewEncoder(w).Encode([]exam.File{{ID: 100, Title: "Live"}})
	}))
	defer srv.Close()

	conf := &core.Config{API: core.APIConfig{BaseURL: srv.URL, Timeout: time.Second}}
	mode := core.NewMode(true)
	repos, err := Open(conf, mode, logsvc.NewZap(zap.NewNop()), time.Now())
	require.NoError(t, err)
	ctx := context.Background()

	files, err := repos.Exams.QueryFiles(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, files, 14)
	assert.Zero(t, hits)

	mode.Toggle(false)
	files, err = repos.Exams.QueryFiles(ctx, "all")
	require.NoError(t, err)
	if assert.Len(t, files, 1) {
		assert.Equal(t, 100, files[0].ID)
	}
	assert.Equal(t, 1, hits)

	mode.Toggle(true)
	files, err = repos.Exams.QueryFiles(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, files, 14)
	assert.Equal(t, 1, hits)
}
