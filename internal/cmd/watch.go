package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jimezsa/hhwatch/internal/config"
	"github.com/jimezsa/hhwatch/internal/hh"
	"github.com/jimezsa/hhwatch/internal/models"
	"github.com/jimezsa/hhwatch/internal/network"
	"github.com/jimezsa/hhwatch/internal/report"
	"github.com/jimezsa/hhwatch/internal/schedule"
	"github.com/jimezsa/hhwatch/internal/ui"
	"github.com/jimezsa/hhwatch/internal/vacancy"
	"github.com/rs/zerolog"
)

type WatchCmd struct {
	Output   string `name:"output" short:"o" help:"Report file, overwritten on every run." env:"HHWATCH_OUTPUT"`
	Schedule string `help:"Run schedule: cron expression or descriptor such as '@every 10m'." env:"HHWATCH_SCHEDULE"`
	Area     int    `help:"hh.ru region id." env:"HHWATCH_AREA"`
	Proxies  string `help:"Comma-separated proxy URLs." env:"HHWATCH_PROXIES"`
	Once     bool   `help:"Run the search once and exit."`
}

type fetcher interface {
	FetchAll(ctx context.Context, req models.SearchRequest) ([]models.Vacancy, error)
}

// pipeline is one search-to-report pass. It keeps no state between runs.
type pipeline struct {
	fetcher fetcher
	output  string
	now     func() time.Time
	ui      *ui.UI
	logger  zerolog.Logger
}

func (w *WatchCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	output := firstNonEmpty(w.Output, cfg.Output, report.DefaultPath)
	area := defaultInt(w.Area, defaultInt(cfg.Area, models.DefaultArea))

	sched, err := schedule.Parse(firstNonEmpty(w.Schedule, cfg.Schedule))
	if err != nil {
		return err
	}

	client, err := newNetworkClient(w.Proxies)
	if err != nil {
		return err
	}

	req, err := promptSearchRequest(ctx.In, ctx.UI, area)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	p := &pipeline{
		fetcher: hh.NewClient(client, cfg.BaseURL,
			hh.WithRate(cfg.RequestsPerSecond),
			hh.WithLogger(ctx.Logger),
			hh.WithUserAgent("hhwatch/"+ctx.Version),
		),
		output: output,
		now:    time.Now,
		ui:     ctx.UI,
		logger: ctx.Logger,
	}

	// Signals are armed only after the prompts so Ctrl-C while typing keeps
	// its default behaviour and ends the process.
	runCtx, stop := signal.NotifyContext(ctx.runContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if runCtx.Err() != nil {
		ctx.Logger.Debug().Msg("watch stopped before the first run")
		return nil
	}

	if w.Once {
		p.runAndReport(runCtx, req)
		return nil
	}

	loop := schedule.NewLoop(sched, ctx.Logger)
	loop.OnWait = func(next time.Time, wait time.Duration) {
		ctx.UI.Infof("Please wait %s... (next search at %s)", wait.Round(time.Second), next.Format("15:04:05"))
	}
	err = loop.Run(runCtx, func(jobCtx context.Context) {
		p.runAndReport(jobCtx, req)
	})
	if errors.Is(err, context.Canceled) {
		ctx.Logger.Debug().Msg("watch stopped")
		return nil
	}
	return err
}

func newNetworkClient(proxyFlag string) (*network.Client, error) {
	proxies, err := config.LoadProxies(proxyFlag)
	if err != nil {
		return nil, err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return nil, err
		}
	}
	return network.NewClient(rotator)
}

// run performs one pass. On any error the report file is left as it was.
func (p *pipeline) run(ctx context.Context, req models.SearchRequest) error {
	started := p.now()

	vacancies, err := p.fetcher.FetchAll(ctx, req)
	if err != nil {
		return err
	}
	sorted, err := vacancy.SortByPublished(vacancies)
	if err != nil {
		return err
	}
	filtered := vacancy.FilterByKeyword(sorted, req.Keyword)

	if err := report.WriteFile(p.output, report.Report{
		Request: req,
		Entries: filtered,
		Now:     p.now(),
	}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	p.logger.Debug().
		Int("fetched", len(vacancies)).
		Int("matched", len(filtered)).
		Str("output", p.output).
		Dur("took", p.now().Sub(started)).
		Msg("report written")
	return nil
}

// runAndReport never fails: errors are shown, logged and dropped so the
// schedule keeps going.
func (p *pipeline) runAndReport(ctx context.Context, req models.SearchRequest) {
	err := p.run(ctx, req)
	if err == nil {
		p.ui.Successf("The file has been saved")
		return
	}

	if errors.Is(err, network.ErrRequestFailed) {
		p.ui.Errorf("Error while making the request: %v", err)
		p.logger.Error().Err(err).Str("kind", "request").Msg("search run failed")
		return
	}
	p.ui.Errorf("An unexpected error occurred: %v", err)
	p.logger.Error().Err(err).Str("kind", "unexpected").Msg("search run failed")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
