package crawler

import (
	"fmt"

	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/pkg/csvsink"
	"github.com/thep200/github-collector/pkg/log"
)

type Crawler interface {
	Crawl() bool
}

func FactoryCrawler(version string, logger log.Logger, config *cfg.Config, sink *csvsink.Sink) (Crawler, error) {
	switch version {
	case "v1":
		return NewCrawlerV1(logger, config, sink)
	case "v2":
		return NewCrawlerV2(logger, config, sink)
	default:
		return nil, fmt.Errorf("[ERROR] Unsupported crawler version: %s", version)
	}
}
