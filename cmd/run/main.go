package main

import (
	"context"
	"os"

	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/internal/crawler"
	"github.com/thep200/github-collector/internal/model"
	"github.com/thep200/github-collector/pkg/csvsink"
	"github.com/thep200/github-collector/pkg/log"
)

func main() {
	ctx := context.Background()
	// loader, _ := cfg.NewMockLoader()
	loader, _ := cfg.NewViperLoader()
	logger, _ := log.NewCslLogger()

	config, err := loader.Load()
	if err != nil {
		logger.Error(ctx, "Failed to load config: %v", err)
		os.Exit(1)
	}

	sink, _ := csvsink.NewSink(config, model.Header())
	c, err := crawler.FactoryCrawler(config.Crawler.Version, logger, config, sink)
	if err != nil {
		logger.Error(ctx, "Failed to create crawler: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Starting Github star collector")
	if c.Crawl() {
		logger.Info(ctx, "Successfully!")
	} else {
		logger.Error(ctx, "Failed!")
		os.Exit(1)
	}
}
