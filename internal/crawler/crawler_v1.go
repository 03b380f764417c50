// Crawler version 1
// Crawler tuần tự: mỗi thời điểm chỉ có một bản ghi đang được xử lý,
// gặp lỗi đầu tiên là dừng toàn bộ lần chạy.

package crawler

import (
	"context"
	"fmt"
	"time"

	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/internal/enricher"
	"github.com/thep200/github-collector/internal/extractor"
	"github.com/thep200/github-collector/internal/githubapi"
	"github.com/thep200/github-collector/internal/license"
	"github.com/thep200/github-collector/internal/limiter"
	"github.com/thep200/github-collector/pkg/csvsink"
	"github.com/thep200/github-collector/pkg/log"
)

type CrawlerV1 struct {
	Logger   log.Logger
	Config   *cfg.Config
	Sink     *csvsink.Sink
	Caller   *githubapi.Caller
	Enricher *enricher.Enricher
}

func NewCrawlerV1(logger log.Logger, config *cfg.Config, sink *csvsink.Sink) (*CrawlerV1, error) {
	rateLimiter := limiter.NewRateLimiter(config.GithubApi.RequestsPerSecond)
	caller := githubapi.NewCaller(logger, config, rateLimiter)

	resolver, err := license.NewResolver(logger, config, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to create license resolver: %w", err)
	}

	ext, err := extractor.FactoryExtractor(config.Crawler.ExtractorVersion, logger, config, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	enr, err := enricher.NewEnricher(logger, config, resolver, ext)
	if err != nil {
		return nil, fmt.Errorf("failed to create enricher: %w", err)
	}

	return &CrawlerV1{
		Logger:   logger,
		Config:   config,
		Sink:     sink,
		Caller:   caller,
		Enricher: enr,
	}, nil
}

func (c *CrawlerV1) Crawl() bool {
	ctx := context.Background()
	startTime := time.Now()
	c.Logger.Info(ctx, "Bắt đầu thu thập dữ liệu repository GitHub vào %s", startTime.Format(time.RFC3339))

	// Sink luôn được đóng, các row đã flush vẫn còn trên đĩa kể cả khi lỗi
	defer c.Sink.Close()

	// Truncate file và ghi header ngay từ đầu, trước mọi request mạng
	if err := c.Sink.Open(); err != nil {
		c.Logger.Error(ctx, "Không thể mở file đầu ra: %v", err)
		return false
	}

	maxPages := c.Config.Crawler.MaxPages
	perPage := c.Config.Crawler.PerPage
	paginator := githubapi.NewPaginator(c.Logger, c.Config, c.Caller, maxPages)
	bar := newProgressBar(maxPages * perPage)

	written := 0
	for {
		item, ok, err := paginator.Next(ctx)
		if err != nil {
			c.Logger.Error(ctx, "Không thể lấy trang kết quả tìm kiếm: %v", err)
			return false
		}
		if !ok {
			break
		}

		record, err := c.Enricher.Enrich(ctx, item)
		if err != nil {
			c.Logger.Error(ctx, "Không thể enrich repository %s: %v", item.FullName, err)
			return false
		}

		if err := c.Sink.Write(record.Row()); err != nil {
			c.Logger.Error(ctx, "Không thể ghi bản ghi ra file: %v", err)
			return false
		}

		written++
		_ = bar.Add(1)
	}

	endTime := time.Now()
	c.Logger.Info(ctx, "==== KẾT QUẢ THU THẬP ====")
	c.Logger.Info(ctx, "Thời gian bắt đầu: %s", startTime.Format(time.RFC3339))
	c.Logger.Info(ctx, "Thời gian kết thúc: %s", endTime.Format(time.RFC3339))
	c.Logger.Info(ctx, "Tổng thời gian thực hiện: %v", endTime.Sub(startTime))
	c.Logger.Info(ctx, "Tổng số repository đã ghi: %d", written)

	return true
}
