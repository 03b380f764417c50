package cfg

type MockLoader struct{}

func NewMockLoader() (*MockLoader, error) {
	return &MockLoader{}, nil
}

func (yl *MockLoader) Load() (*Config, error) {
	return &Config{
		// App
		App: App{
			Name:    "github-collector",
			Version: "0.0.1",
		},

		// GithubApi
		GithubApi: GithubApi{
			AccessToken:       "",
			SearchApiUrl:      "https://api.github.com/search/repositories?q=stars:>1&sort=stars&order=desc",
			LicenseApiUrl:     "https://api.github.com/repos/{user}/{repo}/license",
			SiteUrl:           "https://github.com/",
			RequestsPerSecond: 10,
			ThrottleDelay:     100,
		},

		// Crawler
		Crawler: Crawler{
			Version:          "v1",
			ExtractorVersion: "v2",
			MaxPages:         10,
			PerPage:          100,
			MaxWorkers:       10,
		},

		// Csv
		Csv: Csv{
			FilePath: "data/repositories.csv",
		},
	}, nil
}
