// Gói enricher ghép một entry từ search API với license và số liệu HTML
// thành một bản ghi đầu ra hoàn chỉnh.

package enricher

import (
	"context"
	"strings"

	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/internal/extractor"
	"github.com/thep200/github-collector/internal/githubapi"
	"github.com/thep200/github-collector/internal/license"
	"github.com/thep200/github-collector/internal/model"
	"github.com/thep200/github-collector/pkg/log"
)

type Enricher struct {
	Logger    log.Logger
	Config    *cfg.Config
	Resolver  *license.Resolver
	Extractor extractor.Extractor
}

func NewEnricher(logger log.Logger, config *cfg.Config, resolver *license.Resolver, ext extractor.Extractor) (*Enricher, error) {
	return &Enricher{
		Logger:    logger,
		Config:    config,
		Resolver:  resolver,
		Extractor: ext,
	}, nil
}

// Enrich tạo đúng một bản ghi từ một entry: hai lần gọi mạng, không cache.
// Ba nguồn dữ liệu không trùng tên trường, merge theo thứ tự nguồn sau ghi đè nguồn trước.
func (e *Enricher) Enrich(ctx context.Context, item githubapi.Item) (*model.RepositoryRecord, error) {
	user := item.Owner.Login
	repoName := item.Name

	if user == "" {
		user, repoName = extractUserAndRepo(item.FullName)
		if user == "" {
			user = "unknown"
		}
	}

	licenseName, err := e.Resolver.Resolve(ctx, user, repoName)
	if err != nil {
		return nil, err
	}

	stats, err := e.Extractor.Extract(ctx, user, repoName)
	if err != nil {
		return nil, err
	}

	record := &model.RepositoryRecord{
		Owner:            model.TruncateString(user, 250),
		Name:             model.TruncateString(repoName, 250),
		Language:         item.Language,
		StargazersCount:  item.StargazersCount,
		OpenIssuesCount:  item.OpenIssuesCount,
		WatchersCount:    item.WatchersCount,
		ForksCount:       item.ForksCount,
		CreatedAt:        item.CreatedAt,
		PushedAt:         item.PushedAt,
		UpdatedAt:        item.UpdatedAt,
		License:          licenseName,
		CommitCount:      stats.Commits,
		BranchCount:      stats.Branches,
		ReleaseCount:     stats.Releases,
		ContributorCount: stats.Contributors,
	}

	return record, nil
}

// Phân tích full_name để lấy user và repo name
func extractUserAndRepo(fullName string) (string, string) {
	parts := strings.Split(fullName, "/")
	if len(parts) >= 2 {
		return parts[0], parts[1]
	}
	return "", fullName
}
