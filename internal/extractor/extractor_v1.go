// Extractor version 1
// Trích xuất bằng regex theo vị trí: bốn badge số liên tiếp trên trang
// theo thứ tự commits, contributors, branches, releases.

package extractor

import (
	"context"
	"regexp"
	"strconv"

	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/internal/errs"
	"github.com/thep200/github-collector/internal/githubapi"
	"github.com/thep200/github-collector/pkg/log"
)

// Mẫu bắt đầu từ <li class="commits"> và lấy bốn số theo đúng thứ tự trang hiển thị
var badgePattern = regexp.MustCompile(`(?s)<li class="commits">.*?<span class="num text-emphasized">.*?(\d+).*?</span>` +
	`.*?<span class="num text-emphasized">.*?(\d+).*?</span>` +
	`.*?<span class="num text-emphasized">.*?(\d+).*?</span>` +
	`.*?<span class="num text-emphasized">.*?(\d+).*?</span>`)

type ExtractorV1 struct {
	Logger log.Logger
	Config *cfg.Config
	Caller *githubapi.Caller
}

func NewExtractorV1(logger log.Logger, config *cfg.Config, caller *githubapi.Caller) (*ExtractorV1, error) {
	return &ExtractorV1{
		Logger: logger,
		Config: config,
		Caller: caller,
	}, nil
}

func (e *ExtractorV1) Extract(ctx context.Context, user, repo string) (HtmlStats, error) {
	page, err := e.Caller.FetchPage(ctx, user, repo)
	if err != nil {
		return HtmlStats{}, err
	}
	return e.parse(user+"/"+repo, page)
}

func (e *ExtractorV1) parse(fullName, page string) (HtmlStats, error) {
	// Chỉ lấy match đầu tiên, trang chỉ có một bộ badge
	m := badgePattern.FindStringSubmatch(page)
	if m == nil {
		return HtmlStats{}, &errs.ParseError{FullName: fullName, Reason: "numeric badges not found"}
	}

	values := make([]int, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return HtmlStats{}, &errs.ParseError{FullName: fullName, Reason: "badge value is not a number"}
		}
		values[i] = v
	}

	// Thứ tự trên trang: commits, contributors, branches, releases
	return HtmlStats{
		Commits:      values[0],
		Branches:     values[2],
		Releases:     values[3],
		Contributors: values[1],
	}, nil
}
