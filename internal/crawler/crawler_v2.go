// Crawler version 2
// Crawler áp dụng concurrency để tăng tốc việc thu thập dữ liệu.
// Các repository trong cùng một trang được enrich song song với số lượng
// worker giới hạn, nhưng row được ghi theo đúng thứ tự xếp hạng của trang.

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
	"github.com/thep200/github-collector/internal/model"
	"github.com/thep200/github-collector/pkg/csvsink"
	"github.com/thep200/github-collector/pkg/log"
	"golang.org/x/sync/errgroup"
)

type CrawlerV2 struct {
	Logger     log.Logger
	Config     *cfg.Config
	Sink       *csvsink.Sink
	Caller     *githubapi.Caller
	Enricher   *enricher.Enricher
	maxWorkers int
}

func NewCrawlerV2(logger log.Logger, config *cfg.Config, sink *csvsink.Sink) (*CrawlerV2, error) {
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

	maxWorkers := config.Crawler.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	return &CrawlerV2{
		Logger:     logger,
		Config:     config,
		Sink:       sink,
		Caller:     caller,
		Enricher:   enr,
		maxWorkers: maxWorkers,
	}, nil
}

func (c *CrawlerV2) Crawl() bool {
	ctx := context.Background()
	startTime := time.Now()
	c.Logger.Info(ctx, "Bắt đầu thu thập dữ liệu với %d worker vào %s", c.maxWorkers, startTime.Format(time.RFC3339))

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
		items, err := paginator.NextPage(ctx)
		if err != nil {
			c.Logger.Error(ctx, "Không thể lấy trang kết quả tìm kiếm: %v", err)
			return false
		}
		if len(items) == 0 {
			break
		}

		// Enrich song song, giữ kết quả theo index để bảo toàn thứ tự
		records := make([]*model.RepositoryRecord, len(items))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.maxWorkers)

		for i, item := range items {
			i, item := i, item
			g.Go(func() error {
				record, err := c.Enricher.Enrich(gctx, item)
				if err != nil {
					return fmt.Errorf("enrich %s: %w", item.FullName, err)
				}
				records[i] = record
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			c.Logger.Error(ctx, "Không thể enrich trang: %v", err)
			return false
		}

		// Ghi tuần tự sau khi cả trang hoàn tất
		for _, record := range records {
			if err := c.Sink.Write(record.Row()); err != nil {
				c.Logger.Error(ctx, "Không thể ghi bản ghi ra file: %v", err)
				return false
			}
			written++
			_ = bar.Add(1)
		}
	}

	endTime := time.Now()
	c.Logger.Info(ctx, "==== KẾT QUẢ THU THẬP ====")
	c.Logger.Info(ctx, "Tổng thời gian thực hiện: %v", endTime.Sub(startTime))
	c.Logger.Info(ctx, "Tổng số repository đã ghi: %d", written)

	return true
}
