// Extractor version 2
// Phân tích trang thành document tree bằng goquery và chọn badge theo class
// thay vì so khớp vị trí trên text thô. Chịu được markup lồng nhau và số có dấu phẩy.

package extractor

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/internal/errs"
	"github.com/thep200/github-collector/internal/githubapi"
	"github.com/thep200/github-collector/pkg/log"
)

type ExtractorV2 struct {
	Logger log.Logger
	Config *cfg.Config
	Caller *githubapi.Caller
}

func NewExtractorV2(logger log.Logger, config *cfg.Config, caller *githubapi.Caller) (*ExtractorV2, error) {
	return &ExtractorV2{
		Logger: logger,
		Config: config,
		Caller: caller,
	}, nil
}

func (e *ExtractorV2) Extract(ctx context.Context, user, repo string) (HtmlStats, error) {
	page, err := e.Caller.FetchPage(ctx, user, repo)
	if err != nil {
		return HtmlStats{}, err
	}
	return e.parse(user+"/"+repo, page)
}

func (e *ExtractorV2) parse(fullName, page string) (HtmlStats, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return HtmlStats{}, &errs.ParseError{FullName: fullName, Reason: "invalid html document"}
	}

	var values []int
	var badValue bool
	doc.Find("span.num.text-emphasized").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(values) >= 4 {
			return false
		}
		text := strings.TrimSpace(s.Text())
		text = strings.ReplaceAll(text, ",", "")
		v, convErr := strconv.Atoi(text)
		if convErr != nil {
			badValue = true
			return false
		}
		values = append(values, v)
		return true
	})

	if badValue {
		return HtmlStats{}, &errs.ParseError{FullName: fullName, Reason: "badge value is not a number"}
	}
	if len(values) < 4 {
		return HtmlStats{}, &errs.ParseError{FullName: fullName, Reason: "numeric badges not found"}
	}

	// Thứ tự trên trang: commits, contributors, branches, releases
	return HtmlStats{
		Commits:      values[0],
		Branches:     values[2],
		Releases:     values[3],
		Contributors: values[1],
	}, nil
}
