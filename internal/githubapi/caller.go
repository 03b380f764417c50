// Gói githubapi cung cấp một caller cho GitHub, để lấy dữ liệu repository.
// Caller gọi ba endpoint: search API, license API và trang HTML của repository.
// Nó xử lý xác thực bằng mã thông báo truy cập nếu được cung cấp.
// Mọi request đi ra đều được điều tiết bởi rate limiter.

package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/internal/errs"
	"github.com/thep200/github-collector/internal/limiter"
	"github.com/thep200/github-collector/pkg/log"
)

type Caller struct {
	Logger  log.Logger
	Config  *cfg.Config
	Limiter *limiter.RateLimiter
	client  *http.Client
}

func NewCaller(logger log.Logger, config *cfg.Config, rateLimiter *limiter.RateLimiter) *Caller {
	return &Caller{
		Logger:  logger,
		Config:  config,
		Limiter: rateLimiter,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Search gọi search API để lấy một trang kết quả, giữ nguyên thứ tự xếp hạng
func (c *Caller) Search(ctx context.Context, page int, perPage int) ([]Item, error) {
	// Ensure the API URL has the correct sort parameters
	baseUrl := c.Config.GithubApi.SearchApiUrl
	if !strings.Contains(baseUrl, "sort=stars") {
		if strings.Contains(baseUrl, "?") {
			baseUrl += "&sort=stars&order=desc"
		} else {
			baseUrl += "?sort=stars&order=desc"
		}
	}

	fullUrl := fmt.Sprintf("%s&per_page=%d&page=%d", baseUrl, perPage, page)
	c.Logger.Debug(ctx, "Calling GitHub search API: %s", fullUrl)

	resp, err := c.do(ctx, fullUrl, "application/vnd.github.v3+json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	rateRemaining := resp.Header.Get("X-RateLimit-Remaining")
	c.Logger.Debug(ctx, "Rate limit remaining: %s", rateRemaining)

	if err := c.checkStatus(fullUrl, resp); err != nil {
		return nil, err
	}

	// Giải mã phản hồi
	rawResponse := &RawResponse{}
	if err := json.NewDecoder(resp.Body).Decode(rawResponse); err != nil {
		return nil, &errs.TransportError{URL: fullUrl, Err: err}
	}

	c.Logger.Info(ctx, "Total repositories found: %d, page: %d, items received: %d",
		rawResponse.TotalCount, page, len(rawResponse.Items))

	if page*perPage > 1000 {
		c.Logger.Warn(ctx, "GitHub API only provides access to the first 1,000 search results")
	}

	return rawResponse.Items, nil
}

// FetchLicense gọi license API cho một repository cụ thể.
// Trả về nil khi resource không tồn tại hoặc body không giải mã được,
// đó là dữ liệu chứ không phải lỗi.
func (c *Caller) FetchLicense(ctx context.Context, user, repo string) (*LicenseResponse, error) {
	licenseUrl := strings.ReplaceAll(c.Config.GithubApi.LicenseApiUrl, "{user}", user)
	licenseUrl = strings.ReplaceAll(licenseUrl, "{repo}", repo)

	resp, err := c.do(ctx, licenseUrl, "application/vnd.github.v3+json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if err := c.checkStatus(licenseUrl, resp); err != nil {
		return nil, err
	}

	licenseResponse := &LicenseResponse{}
	if err := json.NewDecoder(resp.Body).Decode(licenseResponse); err != nil {
		// Body rỗng hoặc không đúng định dạng được coi như không có license
		return nil, nil
	}

	return licenseResponse, nil
}

// FetchPage tải trang HTML đã render của repository, trả về dưới dạng text
func (c *Caller) FetchPage(ctx context.Context, user, repo string) (string, error) {
	pageUrl := c.Config.GithubApi.SiteUrl + user + "/" + repo

	resp, err := c.do(ctx, pageUrl, "text/html")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(pageUrl, resp); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &errs.TransportError{URL: pageUrl, Err: err}
	}

	return string(body), nil
}

func (c *Caller) do(ctx context.Context, fullUrl string, accept string) (*http.Response, error) {
	// Điều tiết trước khi gửi request
	if c.Limiter != nil {
		delay := time.Duration(c.Config.GithubApi.ThrottleDelay) * time.Millisecond
		if err := c.Limiter.Wait(ctx, delay); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullUrl, nil)
	if err != nil {
		return nil, &errs.TransportError{URL: fullUrl, Err: err}
	}

	req.Header.Set("Accept", accept)

	if c.Config.GithubApi.AccessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("token %s", c.Config.GithubApi.AccessToken))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &errs.TransportError{URL: fullUrl, Err: err}
	}

	return resp, nil
}

// checkStatus phân loại mã trạng thái không thành công thành AuthError hoặc TransportError
func (c *Caller) checkStatus(fullUrl string, resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return &errs.AuthError{URL: fullUrl, Status: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") != "0" {
		return &errs.AuthError{URL: fullUrl, Status: resp.StatusCode}
	}

	if resp.StatusCode != http.StatusOK {
		return &errs.TransportError{
			URL: fullUrl,
			Err: fmt.Errorf("unexpected status: %s", resp.Status),
		}
	}

	return nil
}
