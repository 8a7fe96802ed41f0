// Command formdemo runs the formkit demo walkthrough and self-test headlessly.
//
// Configuration comes from the environment (and a .env file when present);
// see formkit.Config for the variables. The process exits non-zero when the
// demo or the self-test records a failure.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/notifications"
	"github.com/dmitrymomot/formkit/pkg/userdata"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg formkit.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.NewFromConfig(cfg.Logger)
	logger.SetAsDefault(log)

	table, err := rules(cfg)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	app := formkit.New(
		formkit.WithLogger(log),
		formkit.WithTable(table),
		formkit.WithStore(store),
		formkit.WithSubmitter(formkit.NewSimulatedSubmitter(cfg.SubmitLatency, cfg.SubmitFailureRate)),
		formkit.WithNotifier(notifications.NewFromConfig(cfg.Notifications, nil,
			notifications.NewLogDeliverer(log), notifications.WithLogger(log))),
		formkit.WithRedirectDelay(cfg.RedirectDelay),
		formkit.WithBcryptCost(cfg.BcryptCost),
		formkit.WithFormOptions(
			form.WithDebounce(cfg.Form.Debounce),
			form.WithRenderer(form.NewLogRenderer(log)),
		),
	)
	defer app.Close()

	if err := app.Start(ctx, cfg.StartHash); err != nil {
		log.LogAttrs(ctx, slog.LevelWarn, "falling back to the default page", logger.Error(err))
	}

	demo := app.RunDemo(ctx)
	report := app.SelfTest(ctx)
	log.LogAttrs(ctx, slog.LevelInfo, report.String(),
		slog.Bool("demo_passed", demo.Passed()),
		slog.Int("passed", report.Passed()),
		slog.Int("total", report.Total()),
	)

	if failures := demo.Failures(); len(failures) > 0 || !report.OK() {
		return fmt.Errorf("demo reported %d failed checks; %s", len(failures), report)
	}
	return nil
}

func rules(cfg formkit.Config) (*validator.Table, error) {
	if cfg.RulesFile == "" {
		return validator.NewDefaultTable(), nil
	}
	loaded, err := validator.LoadRulesFile(cfg.RulesFile)
	if err != nil {
		return nil, err
	}
	return validator.NewTable(validator.WithRules(loaded)), nil
}

func openStore(ctx context.Context, cfg formkit.Config) (userdata.Store, func(), error) {
	switch cfg.Store {
	case formkit.StoreMemory, "":
		return userdata.NewMemoryStore(), func() {}, nil
	case formkit.StoreRedis:
		client, err := userdata.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return userdata.NewRedisStoreFromConfig(client, cfg.Redis), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", formkit.ErrUnknownStore, cfg.Store)
	}
}
