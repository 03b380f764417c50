package cfg

type (
	App struct {
		Name    string
		Version string
	}

	GithubApi struct {
		AccessToken       string
		SearchApiUrl      string
		LicenseApiUrl     string
		SiteUrl           string
		RequestsPerSecond int
		ThrottleDelay     int
	}

	Crawler struct {
		Version          string
		ExtractorVersion string
		MaxPages         int
		PerPage          int
		MaxWorkers       int
	}

	Csv struct {
		FilePath string
	}
)

type Config struct {
	App       App
	GithubApi GithubApi
	Crawler   Crawler
	Csv       Csv
}
