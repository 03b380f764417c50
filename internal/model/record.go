// Gói model định nghĩa bản ghi đầu ra của collector.
// Mỗi repository tạo ra đúng một bản ghi phẳng, bất biến sau khi tạo.

package model

import "strconv"

type RepositoryRecord struct {
	Owner            string
	Name             string
	Language         string
	StargazersCount  int64
	CommitCount      int
	BranchCount      int
	ReleaseCount     int
	OpenIssuesCount  int64
	WatchersCount    int64
	ContributorCount int
	ForksCount       int64
	License          string
	CreatedAt        string
	PushedAt         string
	UpdatedAt        string
}

// Header là thứ tự cột cố định của file CSV, là một phần của contract đầu ra
func Header() []string {
	return []string{
		"owner",
		"name",
		"language",
		"stargazers_count",
		"commit_count",
		"branch_count",
		"release_count",
		"open_issues_count",
		"watchers_count",
		"contributor_count",
		"forks_count",
		"license",
		"created_at",
		"pushed_at",
		"updated_at",
	}
}

// Row serialize bản ghi theo đúng thứ tự của Header
func (r *RepositoryRecord) Row() []string {
	return []string{
		r.Owner,
		r.Name,
		r.Language,
		strconv.FormatInt(r.StargazersCount, 10),
		strconv.Itoa(r.CommitCount),
		strconv.Itoa(r.BranchCount),
		strconv.Itoa(r.ReleaseCount),
		strconv.FormatInt(r.OpenIssuesCount, 10),
		strconv.FormatInt(r.WatchersCount, 10),
		strconv.Itoa(r.ContributorCount),
		strconv.FormatInt(r.ForksCount, 10),
		r.License,
		r.CreatedAt,
		r.PushedAt,
		r.UpdatedAt,
	}
}
