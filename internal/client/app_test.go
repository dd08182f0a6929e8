package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/junohealth/notecache/internal/config"
	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/internal/service"
	"github.com/junohealth/notecache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQueryService struct {
	gotSite string
	gotOpts models.QueryOptions
	result  models.QueryResult
	err     error
}

func (s *stubQueryService) Query(_ context.Context, site string, opts models.QueryOptions) (models.QueryResult, error) {
	s.gotSite = site
	s.gotOpts = opts
	return s.result, s.err
}

type stubSyncService struct {
	service.NoteSyncService

	refreshSite string
	refreshOpts models.RefreshOptions
	refreshErr  error

	purgedSite string
	cleared    bool

	count     int
	refreshed *time.Time
}

func (s *stubSyncService) Refresh(_ context.Context, site string, opts models.RefreshOptions) (models.RefreshResult, error) {
	s.refreshSite = site
	s.refreshOpts = opts
	return models.RefreshResult{SavedCount: 3}, s.refreshErr
}

func (s *stubSyncService) LastRefresh(context.Context, string) (*time.Time, error) {
	return s.refreshed, nil
}

func (s *stubSyncService) CountBySite(context.Context, string) (int, error) {
	return s.count, nil
}

func (s *stubSyncService) DeleteAllForSite(_ context.Context, site string) (int64, error) {
	s.purgedSite = site
	return 5, nil
}

func (s *stubSyncService) ClearEverything(context.Context) error {
	s.cleared = true
	return nil
}

func newTestApp(cmd *CommandFlags) (*App, *stubQueryService, *stubSyncService, *bytes.Buffer) {
	querySvc := &stubQueryService{}
	syncSvc := &stubSyncService{}
	out := &bytes.Buffer{}

	app := NewApp(&service.ClientServices{
		QueryService: querySvc,
		SyncService:  syncSvc,
	}, cmd, config.ClientWorkers{}, logger.Nop())
	app.out = out

	return app, querySvc, syncSvc, out
}

// ── Run: dispatch ───────────────────────────────────────────────────────────

func TestRun_Refresh(t *testing.T) {
	app, _, syncSvc, out := newTestApp(&CommandFlags{
		Refresh: "Ramsay",
		Days:    7,
		Force:   true,
		Limit:   -1,
	})

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, "Ramsay", syncSvc.refreshSite)
	assert.Equal(t, models.RefreshOptions{Days: 7, Force: true}, syncSvc.refreshOpts)

	var result models.RefreshResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 3, result.SavedCount)
}

func TestRun_RefreshError(t *testing.T) {
	app, _, syncSvc, _ := newTestApp(&CommandFlags{Refresh: "Ramsay", Limit: -1})
	syncSvc.refreshErr = errors.New("remote source unavailable")

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh Ramsay")
}

func TestRun_QueryBuildsOptions(t *testing.T) {
	app, querySvc, _, _ := newTestApp(&CommandFlags{
		Query:    "Ramsay",
		ClientID: "c-10",
		From:     "2026-08-01",
		To:       "2026-08-28T23:59:59Z",
		Limit:    20,
		Offset:   40,
		SortBy:   models.SortByCreatedTime,
		Order:    models.SortAscending,
	})

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, "Ramsay", querySvc.gotSite)
	assert.Equal(t, "c-10", querySvc.gotOpts.ClientID)
	assert.Equal(t, 40, querySvc.gotOpts.Offset)
	assert.Equal(t, models.SortByCreatedTime, querySvc.gotOpts.SortBy)
	require.NotNil(t, querySvc.gotOpts.Limit)
	assert.Equal(t, 20, *querySvc.gotOpts.Limit)
	require.NotNil(t, querySvc.gotOpts.StartDate)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), querySvc.gotOpts.StartDate.UTC())
	require.NotNil(t, querySvc.gotOpts.EndDate)
}

func TestRun_QueryNegativeLimitMeansDefault(t *testing.T) {
	app, querySvc, _, _ := newTestApp(&CommandFlags{Query: "Ramsay", Limit: -1})

	require.NoError(t, app.Run(context.Background()))

	assert.Nil(t, querySvc.gotOpts.Limit)
}

func TestRun_QueryInvalidBound(t *testing.T) {
	app, _, _, _ := newTestApp(&CommandFlags{Query: "Ramsay", From: "not-a-date", Limit: -1})

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time bound")
}

func TestRun_Status(t *testing.T) {
	app, _, syncSvc, out := newTestApp(&CommandFlags{Status: "Ramsay", Limit: -1})
	refreshed := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	syncSvc.count = 12
	syncSvc.refreshed = &refreshed

	require.NoError(t, app.Run(context.Background()))

	var status siteStatus
	require.NoError(t, json.Unmarshal(out.Bytes(), &status))
	assert.Equal(t, "Ramsay", status.Site)
	assert.Equal(t, 12, status.NoteCount)
	require.NotNil(t, status.LastRefreshed)
	assert.Equal(t, "2026-08-28T10:00:00Z", *status.LastRefreshed)
}

func TestRun_StatusNeverRefreshed(t *testing.T) {
	app, _, _, out := newTestApp(&CommandFlags{Status: "Fresh", Limit: -1})

	require.NoError(t, app.Run(context.Background()))

	var status siteStatus
	require.NoError(t, json.Unmarshal(out.Bytes(), &status))
	assert.Nil(t, status.LastRefreshed)
}

func TestRun_Purge(t *testing.T) {
	app, _, syncSvc, out := newTestApp(&CommandFlags{Purge: "Ramsay", Limit: -1})

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, "Ramsay", syncSvc.purgedSite)
	assert.Contains(t, out.String(), "purged 5 notes from Ramsay")
}

func TestRun_Clear(t *testing.T) {
	app, _, syncSvc, out := newTestApp(&CommandFlags{Clear: true, Limit: -1})

	require.NoError(t, app.Run(context.Background()))

	assert.True(t, syncSvc.cleared)
	assert.Contains(t, out.String(), "cache cleared")
}

func TestRun_NoCommand(t *testing.T) {
	app, _, _, _ := newTestApp(&CommandFlags{Limit: -1})

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command selected")
}

// ── parseBound ──────────────────────────────────────────────────────────────

func TestParseBound(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *time.Time
		wantErr bool
	}{
		{name: "empty is open", in: "", want: nil},
		{name: "bare date", in: "2026-08-01", want: ptrTime(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))},
		{name: "rfc3339", in: "2026-08-01T09:30:00Z", want: ptrTime(time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC))},
		{name: "garbage", in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBound(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.want))
		})
	}
}

func ptrTime(ts time.Time) *time.Time { return &ts }
