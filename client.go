// Package adzuna is a typed client for the Adzuna job search API.
//
// A Client holds the two API credentials. Each endpoint method returns
// a fluent request builder exposing only the parameters that endpoint
// understands; Fetch performs the single HTTP GET and decodes the
// response.
package adzuna

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL           = "https://api.adzuna.com/v1/api"
	defaultUserAgent = "adzuna-go (+https://github.com/jobtools/adzuna-go)"
)

// Client holds the credentials shared by every request builder. It is
// read-only after construction, so builders may be created and fetched
// from multiple goroutines at once.
type Client struct {
	appID  string
	appKey string
	logger *zap.Logger

	// APIURL is the API root. Point it elsewhere to talk to a test
	// server.
	APIURL string
	// HTTPClient performs the requests. Replace it to control timeouts
	// or transport settings.
	HTTPClient *http.Client
	UserAgent  string
}

// New creates a Client with the given credentials. A nil logger
// disables diagnostic output.
func New(appID, appKey string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		appID:  appID,
		appKey: appKey,
		logger: logger,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		UserAgent: defaultUserAgent,
	}
}

// APIVersion prepares a request against the version endpoint. It takes
// no country segment and no parameters besides the credentials.
func (c *Client) APIVersion() *VersionRequest {
	return &VersionRequest{newRequest[Version](c, "version", "")}
}

// Categories prepares a request listing the job categories of a
// country.
func (c *Client) Categories() *CategoriesRequest {
	return &CategoriesRequest{newRequest[Categories](c, "categories", UnitedStates.Code())}
}

// Histogram prepares a request for the salary distribution of live
// advertisements.
func (c *Client) Histogram() *HistogramRequest {
	return &HistogramRequest{newRequest[SalaryHistogram](c, "histogram", UnitedStates.Code())}
}

// History prepares a request for average salaries back in time.
func (c *Client) History() *HistoryRequest {
	return &HistoryRequest{newRequest[HistoricalSalary](c, "history", UnitedStates.Code())}
}

// TopCompanies prepares a request for the advertisers with the most
// live advertisements.
func (c *Client) TopCompanies() *TopCompaniesRequest {
	return &TopCompaniesRequest{newRequest[TopCompanies](c, "top_companies", UnitedStates.Code())}
}

// Geodata prepares a request for job counts by location.
func (c *Client) Geodata() *GeodataRequest {
	return &GeodataRequest{newRequest[JobGeoData](c, "geodata", UnitedStates.Code())}
}

// Search prepares a job search request, starting at page 1.
func (c *Client) Search() *SearchRequest {
	req := &SearchRequest{newRequest[JobSearchResults](c, "search", UnitedStates.Code())}
	req.page = 1
	return req
}
