package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/hhwatch/internal/models"
	"github.com/jimezsa/hhwatch/internal/network"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.hh.ru"
	PerPage        = 100

	// The search endpoint refuses to page past the first 2000 results.
	maxDepth = 2000
)

// Doer is satisfied by *network.Client.
type Doer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

type Client struct {
	doer      Doer
	baseURL   string
	limiter   *rate.Limiter
	userAgent string
	logger    zerolog.Logger
}

type Option func(*Client)

// WithRate paces page requests; perSecond <= 0 disables pacing.
func WithRate(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the HH-User-Agent header the API asks clients to send.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

func NewClient(doer Doer, baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		doer:      doer,
		baseURL:   baseURL,
		limiter:   rate.NewLimiter(rate.Inf, 1),
		userAgent: "hhwatch/dev",
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll walks the result pages in order and returns every item in server
// order. It stops on the first empty page, on the last page the server
// reports, or at the API depth limit, whichever comes first.
func (c *Client) FetchAll(ctx context.Context, req models.SearchRequest) ([]models.Vacancy, error) {
	var all []models.Vacancy
	for page := 0; ; page++ {
		result, err := c.fetchPage(ctx, req, page)
		if err != nil {
			return nil, err
		}
		c.logger.Debug().
			Int("page", page).
			Int("items", len(result.Items)).
			Int("pages", lastPage(result)+1).
			Msg("fetched page")

		if len(result.Items) == 0 {
			break
		}
		all = append(all, result.Items...)

		if page >= lastPage(result) {
			break
		}
		if (page+1)*PerPage >= maxDepth {
			break
		}
	}
	return all, nil
}

func lastPage(result models.Page) int {
	pages := 1
	if result.Pages != nil {
		pages = *result.Pages
	}
	return pages - 1
}

func (c *Client) fetchPage(ctx context.Context, req models.SearchRequest, page int) (models.Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return models.Page{}, err
	}

	target := c.SearchURL(req, page)
	httpReq, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return models.Page{}, err
	}
	httpReq.Header.Set("accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("HH-User-Agent", c.userAgent)
	}

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return models.Page{}, fmt.Errorf("page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return models.Page{}, fmt.Errorf("page %d: %w: http %d", page, network.ErrRequestFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Page{}, fmt.Errorf("page %d: %w: %v", page, network.ErrRequestFailed, err)
	}

	// Undecodable bodies count as failed requests.
	var result models.Page
	if err := json.Unmarshal(body, &result); err != nil {
		return models.Page{}, fmt.Errorf("page %d: %w: decode response: %w", page, network.ErrRequestFailed, err)
	}
	return result, nil
}

// SearchURL builds the search endpoint URL for one page of req.
func (c *Client) SearchURL(req models.SearchRequest, page int) string {
	values := url.Values{}
	values.Set("area", strconv.Itoa(req.Area))
	values.Set("per_page", strconv.Itoa(PerPage))
	values.Set("page", strconv.Itoa(page))
	values.Set("text", req.Text)
	values.Set("period", strconv.Itoa(req.PeriodDays))
	values.Set("experience", string(req.Experience))
	values.Set("only_with_salary", strconv.FormatBool(req.OnlyWithSalary))
	return fmt.Sprintf("%s/vacancies?%s", c.baseURL, values.Encode())
}
