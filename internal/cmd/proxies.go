package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/hhwatch/internal/config"
	"github.com/jimezsa/hhwatch/internal/hh"
	"github.com/jimezsa/hhwatch/internal/models"
	"github.com/jimezsa/hhwatch/internal/network"
)

type ProxiesCmd struct {
	Check ProxyCheckCmd `cmd:"" help:"Validate proxies against the vacancies API."`
}

type ProxyCheckCmd struct {
	Target  string `help:"Target URL (default: a one-item vacancies search)."`
	Timeout int    `help:"Timeout in seconds." default:"15"`
}

type proxyCheckResult struct {
	Proxy     string
	Status    string
	LatencyMS int64
	Error     string
}

func (p *ProxyCheckCmd) Run(ctx *Context) error {
	proxies, err := config.LoadProxies("")
	if err != nil {
		return err
	}
	if len(proxies) == 0 {
		return network.ErrNoProxies
	}

	target := p.Target
	if target == "" {
		target = hh.NewClient(nil, ctx.Config.BaseURL).SearchURL(models.SearchRequest{
			Text:       "go",
			PeriodDays: 1,
			Experience: models.ExperienceNone,
			Area:       defaultInt(ctx.Config.Area, models.DefaultArea),
		}, 0)
	}

	results := make([]proxyCheckResult, 0, len(proxies))
	for _, proxy := range proxies {
		results = append(results, checkProxy(ctx.runContext(), proxy, target, time.Duration(p.Timeout)*time.Second))
	}

	return writeProxyResults(ctx, results)
}

func checkProxy(ctx context.Context, proxy, target string, timeout time.Duration) proxyCheckResult {
	result := proxyCheckResult{Proxy: proxy}
	fail := func(err error) proxyCheckResult {
		result.Status = "error"
		result.Error = err.Error()
		return result
	}

	rotator, err := network.NewRotator([]string{proxy}, 5*time.Minute)
	if err != nil {
		return fail(err)
	}
	client, err := network.NewClient(rotator)
	if err != nil {
		return fail(err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := fhttp.NewRequestWithContext(reqCtx, fhttp.MethodGet, target, nil)
	if err != nil {
		return fail(err)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return fail(err)
	}
	_ = resp.Body.Close()

	result.LatencyMS = time.Since(start).Milliseconds()
	result.Status = fmt.Sprintf("%d", resp.StatusCode)
	return result
}

func writeProxyResults(ctx *Context, results []proxyCheckResult) error {
	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "proxy\tstatus\tlatency_ms\terror")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", res.Proxy, res.Status, res.LatencyMS, res.Error)
	}
	return tw.Flush()
}
