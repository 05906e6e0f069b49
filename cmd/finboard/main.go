package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"finboard/internal/backend/memory"
	"finboard/internal/cache"
	"finboard/internal/cli"
	"finboard/internal/config"
	"finboard/internal/dashboard"
	"finboard/internal/insights"
	"finboard/internal/log"
	"finboard/internal/store"
)

func main() {
	email := flag.String("email", "", "login email (defaults to the demo account)")
	password := flag.String("password", "", "login password (defaults to the demo account)")
	dumpJSON := flag.Bool("json", false, "print the final state as JSON")
	showLog := flag.Bool("actions", false, "print the applied actions")
	flag.Parse()

	if err := cli.LoadEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "load .env:", err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(os.Getenv("FINBOARD_LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel)

	api := memory.NewFromFiles(cfg.SeedDir, backendOptions(cfg, logger)...)
	logger.Info("Initialized memory backend", "backend", api.String(), "seed_dir", cfg.SeedDir)

	history := store.NewHistory(100)
	st := store.New(api,
		store.WithLogger(logger.WithComponent(log.ComponentStore)),
		store.WithMiddleware(store.LoggingMiddleware(logger.WithComponent(log.ComponentStore)), history.Middleware()),
	)
	unsubscribe := st.Subscribe(func(s store.State) {
		logger.Debug("State changed",
			log.FieldVersion, s.Version,
			log.FieldPhase, s.User.Phase(),
			log.FieldCount, len(s.Transactions.Transactions))
	})
	defer unsubscribe()

	ctx, _ := cli.GracefulShutdown(logger, 5*time.Second, func(ctx context.Context) {
		if err := st.Wait(ctx); err != nil {
			logger.Warn("In-flight requests did not settle", log.FieldError, err)
		}
	})

	creds := credentials(cfg, *email, *password)
	if err := bootstrap(ctx, st, creds); err != nil {
		logger.Error("Startup failed", log.NewFields().WithOperation(log.OpStartup).WithError(err).ToSlice()...)
		printSessionError(st.Snapshot())
		os.Exit(1)
	}

	memo := cache.NewLRU[dashboard.Metrics](cfg.CacheSize, cfg.CacheTTL)
	janitor := cache.NewJanitor(logger)
	janitor.Register(memo)
	janitor.Start(ctx, time.Minute)
	defer janitor.Stop()

	sel := dashboard.NewSelector(
		dashboard.WithPolicy(cfg.Policy()),
		dashboard.WithEngine(insights.NewEngine().WithLogger(logger)),
		dashboard.WithCache(memo))
	snap := st.Snapshot()
	fmt.Print(Render(snap, sel.Metrics(snap)))

	if *dumpJSON {
		out, err := snap.JSON()
		if err != nil {
			logger.Error("State dump failed", log.FieldError, err)
		} else {
			fmt.Println(string(out))
		}
	}

	if err := st.Dispatch(ctx, store.Logout{}).Wait(ctx); err != nil {
		logger.Warn("Logout rejected", log.FieldOperation, log.OpLogout, log.FieldError, err)
	}
	stats := st.Stats()
	logger.Info("Session ended",
		log.FieldOperation, log.OpShutdown,
		log.FieldPhase, st.Snapshot().User.Phase(),
		"dispatched", stats.Dispatched,
		"rejected", stats.Rejected)

	if *showLog {
		fmt.Print(RenderActions(history.Entries()))
	}
}

type loginCredentials struct {
	email    string
	password string
}

func credentials(cfg *config.Config, email, password string) loginCredentials {
	c := loginCredentials{email: memory.DemoEmail, password: memory.DemoPassword}
	if cfg.DemoEmail != "" {
		c = loginCredentials{email: cfg.DemoEmail, password: cfg.DemoPassword}
	}
	if email != "" {
		c.email = email
	}
	if password != "" {
		c.password = password
	}
	return c
}

func backendOptions(cfg *config.Config, logger *log.Logger) []memory.Option {
	opts := []memory.Option{memory.WithLogger(logger), memory.WithLatency(memory.Latency{
		Login:  cfg.LoginDelay,
		Logout: cfg.LogoutDelay,
		Fetch:  cfg.FetchDelay,
	})}
	if cfg.DemoEmail != "" {
		opts = append(opts, memory.WithCredentials(cfg.DemoEmail, cfg.DemoPassword))
	}
	return opts
}

// bootstrap logs in and loads transactions concurrently, the way the
// dashboard fires both requests on mount.
func bootstrap(ctx context.Context, st *store.Store, c loginCredentials) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := st.Dispatch(ctx, store.Login{Email: c.email, Password: c.password}).Wait(ctx); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := st.Dispatch(ctx, store.LoadTransactions{}).Wait(ctx); err != nil {
			return fmt.Errorf("load transactions: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func printSessionError(s store.State) {
	if s.User.Error != "" {
		fmt.Fprintln(os.Stderr, "login error:", s.User.Error)
	}
	if s.Transactions.Error != "" {
		fmt.Fprintln(os.Stderr, "transactions error:", s.Transactions.Error)
	}
}
