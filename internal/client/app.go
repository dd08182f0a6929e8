package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/junohealth/notecache/internal/config"
	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/internal/service"
	"github.com/junohealth/notecache/models"
)

// App dispatches one command-line command against the wired cache services.
type App struct {
	services   *service.ClientServices
	cmd        *CommandFlags
	workersCfg config.ClientWorkers

	out io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cmd *CommandFlags, workersCfg config.ClientWorkers, logger *logger.Logger) *App {
	return &App{
		services:   services,
		cmd:        cmd,
		workersCfg: workersCfg,
		out:        os.Stdout,
		logger:     logger,
	}
}

// Run executes the selected command and returns when it completes. When no
// command is selected and background sites are configured, it runs the
// refresh worker until the process is interrupted.
func (a *App) Run(ctx context.Context) error {
	switch {
	case a.cmd.Refresh != "":
		return a.runRefresh(ctx, a.cmd.Refresh)
	case a.cmd.Query != "":
		return a.runQuery(ctx, a.cmd.Query)
	case a.cmd.Status != "":
		return a.runStatus(ctx, a.cmd.Status)
	case a.cmd.Purge != "":
		return a.runPurge(ctx, a.cmd.Purge)
	case a.cmd.Clear:
		return a.runClear(ctx)
	case len(a.workersCfg.Sites) > 0:
		return a.runWorker(ctx)
	default:
		return fmt.Errorf("no command selected: use -refresh, -query, -status, -purge, or -clear")
	}
}

func (a *App) runRefresh(ctx context.Context, site string) error {
	result, err := a.services.SyncService.Refresh(ctx, site, models.RefreshOptions{
		Days:    a.cmd.Days,
		Page:    a.cmd.Page,
		PerPage: a.cmd.PerPage,
		Force:   a.cmd.Force,
	})
	if err != nil {
		return fmt.Errorf("refresh %s: %w", site, err)
	}

	return a.printJSON(result)
}

func (a *App) runQuery(ctx context.Context, site string) error {
	from, err := parseBound(a.cmd.From)
	if err != nil {
		return err
	}
	to, err := parseBound(a.cmd.To)
	if err != nil {
		return err
	}

	opts := models.QueryOptions{
		Offset:    a.cmd.Offset,
		SortBy:    a.cmd.SortBy,
		SortOrder: a.cmd.Order,
		ClientID:  a.cmd.ClientID,
		StartDate: from,
		EndDate:   to,
	}
	if a.cmd.Limit >= 0 {
		limit := a.cmd.Limit
		opts.Limit = &limit
	}

	result, err := a.services.QueryService.Query(ctx, site, opts)
	if err != nil {
		return fmt.Errorf("query %s: %w", site, err)
	}

	return a.printJSON(result)
}

// siteStatus is the -status command's output shape.
type siteStatus struct {
	Site          string  `json:"site"`
	NoteCount     int     `json:"note_count"`
	LastRefreshed *string `json:"last_refreshed"`
}

func (a *App) runStatus(ctx context.Context, site string) error {
	count, err := a.services.SyncService.CountBySite(ctx, site)
	if err != nil {
		return fmt.Errorf("count notes for %s: %w", site, err)
	}

	refreshed, err := a.services.SyncService.LastRefresh(ctx, site)
	if err != nil {
		return fmt.Errorf("last refresh for %s: %w", site, err)
	}

	status := siteStatus{Site: site, NoteCount: count}
	if refreshed != nil {
		formatted := refreshed.Format("2006-01-02T15:04:05Z07:00")
		status.LastRefreshed = &formatted
	}

	return a.printJSON(status)
}

func (a *App) runPurge(ctx context.Context, site string) error {
	deleted, err := a.services.SyncService.DeleteAllForSite(ctx, site)
	if err != nil {
		return fmt.Errorf("purge %s: %w", site, err)
	}

	fmt.Fprintf(a.out, "purged %d notes from %s\n", deleted, site)
	return nil
}

func (a *App) runClear(ctx context.Context) error {
	if err := a.services.SyncService.ClearEverything(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	fmt.Fprintln(a.out, "cache cleared")
	return nil
}

// runWorker keeps the configured sites fresh until the process receives an
// interrupt or termination signal.
func (a *App) runWorker(ctx context.Context) error {
	a.logger.Info().
		Str("func", "App.runWorker").
		Strs("sites", a.workersCfg.Sites).
		Dur("interval", a.workersCfg.RefreshInterval).
		Msg("starting background refresh worker")

	a.services.RefreshJob.Start(ctx, a.workersCfg.Sites, a.workersCfg.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
	case <-ctx.Done():
	}

	return nil
}

func (a *App) printJSON(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	fmt.Fprintln(a.out, string(payload))
	return nil
}
