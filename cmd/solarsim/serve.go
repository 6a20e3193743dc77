package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signalsfoundry/solarsim/core"
	"github.com/signalsfoundry/solarsim/internal/api"
	"github.com/signalsfoundry/solarsim/internal/logging"
	"github.com/signalsfoundry/solarsim/internal/observability"
	"github.com/signalsfoundry/solarsim/internal/statecache"
	"github.com/signalsfoundry/solarsim/internal/track"
	"github.com/signalsfoundry/solarsim/timectrl"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP state service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "listen address")
	serveCmd.Flags().String("cache", "", "state cache SQLite path (empty disables caching)")
	serveCmd.Flags().Duration("tick", time.Second, "simulation tick interval")
	serveCmd.Flags().Bool("accelerated", false, "run the simulation clock accelerated")
	serveCmd.Flags().Float64("time-scale", 3600, "simulated seconds per wall second in accelerated mode")
	serveCmd.Flags().String("tle-file", "", "three-line-element file of spacecraft to track")

	for _, key := range []string{"listen", "cache", "tick", "accelerated", "time-scale", "tle-file"} {
		_ = viper.BindPFlag(key, serveCmd.Flags().Lookup(key))
	}

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logging.NewFromEnv()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		return err
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	metrics, err := observability.NewAPICollector(nil)
	if err != nil {
		return err
	}
	refreshMetrics, err := observability.NewRefreshCollector(nil)
	if err != nil {
		return err
	}

	cat, catalogPath, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	var cache *statecache.Store
	if path := viper.GetString("cache"); path != "" {
		cache, err = statecache.Open(ctx, path)
		if err != nil {
			return err
		}
		defer cache.Close()
	}

	var tracker *track.Tracker
	if path := viper.GetString("tle-file"); path != "" {
		tracker = track.New(core.DefaultDragCutoffMeters)
		n, err := tracker.LoadFile(path)
		if err != nil {
			return err
		}
		log.Info(ctx, "spacecraft loaded", logging.String("tle_file", path), logging.Int("count", n))
	}

	mode := timectrl.RealTime
	if viper.GetBool("accelerated") {
		mode = timectrl.Accelerated
	}
	clock := timectrl.NewTimeController(time.Now().UTC(), viper.GetDuration("tick"), mode)
	clock.Scale = viper.GetFloat64("time-scale")

	srv, err := api.NewServer(cat, api.Options{
		Cache:   cache,
		Metrics: metrics,
		Tracker: tracker,
		Clock:   clock,
		Log:     log,
	})
	if err != nil {
		return err
	}

	refresher := api.NewRefresher(srv, cache, refreshMetrics, log, catalogPath)
	stopWatch, err := refresher.Start(ctx)
	if err != nil {
		return err
	}
	defer stopWatch()
	clock.AddListener(refresher.OnTick)
	clock.Start(0)

	httpServer := &http.Server{
		Addr:    viper.GetString("listen"),
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "http server listening",
			logging.String("addr", httpServer.Addr),
			logging.String("catalog", catalogPath),
			logging.Int("bodies", cat.Len()))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn(shutdownCtx, "http shutdown failed", logging.Err(err))
	}
	log.Info(context.Background(), "server stopped")
	return nil
}
