package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-bloom/api"
	"github.com/carson-networks/budget-bloom/internal/config"
	"github.com/carson-networks/budget-bloom/internal/ledger"
	"github.com/carson-networks/budget-bloom/internal/logging"
	"github.com/carson-networks/budget-bloom/internal/operator"
	"github.com/carson-networks/budget-bloom/internal/service"
	"github.com/carson-networks/budget-bloom/internal/storage"
)

func main() {
	app := &cli.App{
		Name:   "budget-bloom",
		Usage:  "monthly income and expense calendar",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:  "calendar",
				Usage: "print the calendar grid of one month",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "year", Usage: "year, defaults to the current year"},
					&cli.IntFlag{Name: "month", Usage: "month number 1-12, defaults to the current month"},
				},
				Action: printCalendar,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("budget-bloom exited")
	}
}

func serve(c *cli.Context) error {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}

	logger, err := logging.SetupLoggingWithLevel(envConfig.LogLevel)
	if err != nil {
		return err
	}
	logger.Info("budget-bloom starting")

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewStorage()
	op := operator.NewOperatorDelegator(store, logger, envConfig.OperatorWorkers, envConfig.OperatorQueueSize)
	op.Start()

	svc := service.NewService(store, op, time.Now, layoutOptions(envConfig)...)

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
	}

	err = runServer(ctx, &httpRest, op)
	logger.Info("budget-bloom stopped")
	return err
}

type server interface {
	Serve(ctx context.Context) error
}

type stopper interface {
	Stop()
}

// runServer serves until ctx is done. The operator is stopped only after the
// server has drained, so in-flight writes still reach the store.
func runServer(ctx context.Context, srv server, op stopper) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer op.Stop()
		return srv.Serve(gctx)
	})
	return g.Wait()
}

func printCalendar(c *cli.Context) error {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}

	key := ledger.MonthKeyOf(time.Now())
	year := key.Year
	if c.IsSet("year") {
		year, err = ledger.ParseYear(c.String("year"))
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
	}
	month := int(key.Month)
	if c.IsSet("month") {
		month = c.Int("month")
	}

	grid, err := ledger.Layout(year, month, layoutOptions(envConfig)...)
	if errors.Is(err, ledger.ErrInvalidMonth) {
		return cli.Exit(err.Error(), 2)
	}
	if err != nil {
		return err
	}

	// Nothing is persisted, so a fresh process has an empty ledger.
	view, err := service.NewLedgerService(storage.NewStorage()).GetMonthView(context.Background(), grid.Key)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(c.App.Writer, ledger.RenderText(grid, view.Summary, view.Days))
	return err
}

func layoutOptions(envConfig *config.Config) []ledger.LayoutOption {
	if envConfig.GridSixWeeks {
		return []ledger.LayoutOption{ledger.WithSixWeeks()}
	}
	return nil
}
