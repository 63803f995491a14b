package brave

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/DevRico003/brave-search-mcp/internal/ratelimit"
)

const (
	defaultBaseURL = "https://api.search.brave.com/res/v1"
	requestTimeout = 10 * time.Second
	maxBodySnippet = 512
)

// Client Brave搜索API客户端。
// 每次公开方法调用在发起网络请求前恰好占用一个速率配额，
// 配额检查不持有网络I/O期间的锁。
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	logger     *zap.Logger
}

// Option 客户端可选配置
type Option func(*Client)

// WithBaseURL 覆盖上游基础地址（测试用）
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient 覆盖HTTP客户端
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient 创建Brave搜索客户端
func NewClient(apiKey string, limiter *ratelimit.Limiter, logger *zap.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("brave api key is required")
	}
	if limiter == nil {
		return nil, fmt.Errorf("rate limiter is required")
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    limiter,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// WebSearch 执行网页搜索并返回格式化文本
func (c *Client) WebSearch(ctx context.Context, q SearchQuery) (string, error) {
	if err := c.authorize(); err != nil {
		return "", err
	}
	return c.webSearch(ctx, q)
}

// LocalSearch 执行本地商户搜索并返回格式化文本。
// 两段式流程：先查询地点ID，再解析地点详情与描述；
// 本地索引无结果时回退到网页搜索路径（复用已占用的配额）。
func (c *Client) LocalSearch(ctx context.Context, q SearchQuery) (string, error) {
	if err := c.authorize(); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("search_lang", "en")
	params.Set("result_filter", "locations")
	params.Set("count", strconv.Itoa(q.Count))

	var resp webSearchResponse
	if err := c.get(ctx, "/web/search", params, &resp); err != nil {
		return "", err
	}

	ids := make([]string, 0, len(resp.Locations.Results))
	for _, loc := range resp.Locations.Results {
		if loc.ID != "" {
			ids = append(ids, loc.ID)
		}
	}

	if len(ids) == 0 {
		c.logger.Debug("本地搜索无匹配地点，回退到网页搜索", zap.String("query", q.Query))
		return c.webSearch(ctx, SearchQuery{Query: q.Query, Count: q.Count})
	}

	pois, err := c.fetchPOIs(ctx, ids)
	if err != nil {
		return "", err
	}
	descriptions, err := c.fetchDescriptions(ctx, ids)
	if err != nil {
		return "", err
	}

	records := make([]Record, 0, len(pois.Results))
	for _, p := range pois.Results {
		records = append(records, localRecordOf(p, descriptions.Descriptions[p.ID]))
	}
	c.logger.Debug("本地搜索完成",
		zap.String("query", q.Query),
		zap.Int("results", len(records)))
	return FormatRecords(records), nil
}

func (c *Client) webSearch(ctx context.Context, q SearchQuery) (string, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("count", strconv.Itoa(q.Count))
	params.Set("offset", strconv.Itoa(q.Offset))

	var resp webSearchResponse
	if err := c.get(ctx, "/web/search", params, &resp); err != nil {
		return "", err
	}

	records := make([]Record, 0, len(resp.Web.Results))
	for _, r := range resp.Web.Results {
		records = append(records, WebRecord{
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
		})
	}
	c.logger.Debug("网页搜索完成",
		zap.String("query", q.Query),
		zap.Int("results", len(records)))
	return FormatRecords(records), nil
}

func (c *Client) fetchPOIs(ctx context.Context, ids []string) (*poisResponse, error) {
	var resp poisResponse
	if err := c.get(ctx, "/local/pois", url.Values{"ids": ids}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) fetchDescriptions(ctx context.Context, ids []string) (*descriptionsResponse, error) {
	var resp descriptionsResponse
	if err := c.get(ctx, "/local/descriptions", url.Values{"ids": ids}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// authorize 占用一个速率配额，失败时包装为带类别标签的错误
func (c *Client) authorize() error {
	if err := c.limiter.Authorize(); err != nil {
		return &Error{Kind: ErrRateLimited, Message: err.Error(), cause: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return &Error{Kind: ErrTransport, Message: fmt.Sprintf("build request failed: %v", err), cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: ErrTransport, Message: fmt.Sprintf("request to Brave API failed: %v", err), cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippet))
		return &Error{
			Kind:    ErrUpstream,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Brave API error: %d %s", resp.StatusCode, strings.TrimSpace(string(snippet))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Kind:    ErrUpstream,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("decode Brave API response failed: %v", err),
			cause:   err,
		}
	}
	return nil
}

// localRecordOf 将上游POI与描述合并为一条格式化记录
func localRecordOf(p poi, description string) LocalRecord {
	parts := make([]string, 0, 4)
	for _, s := range []string{
		p.Address.StreetAddress,
		p.Address.AddressLocality,
		p.Address.AddressRegion,
		p.Address.PostalCode,
	} {
		if s != "" {
			parts = append(parts, s)
		}
	}

	rec := LocalRecord{
		Name:        p.Name,
		Address:     strings.Join(parts, ", "),
		Phone:       p.Phone,
		PriceRange:  p.PriceRange,
		Hours:       p.OpeningHours,
		Description: description,
		Reviews:     p.Reviews,
	}
	if p.Rating != nil {
		v := p.Rating.RatingValue
		rec.Rating = &v
		rec.RatingCount = p.Rating.RatingCount
	}
	return rec
}
