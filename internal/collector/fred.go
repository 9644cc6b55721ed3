package collector

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"YieldSentinel/internal/log"
	"YieldSentinel/internal/model"
	"YieldSentinel/internal/series"
)

// DefaultFredBaseURL is the public FRED site.
const DefaultFredBaseURL = "https://fred.stlouisfed.org"

// FredFetcher implements Loader by downloading the CSV export of a FRED series.
type FredFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewFredFetcher creates a FRED fetcher with optional proxy support.
func NewFredFetcher(baseURL, proxyURL string) *FredFetcher {
	if baseURL == "" {
		baseURL = DefaultFredBaseURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err != nil {
			log.Warnf("ignoring invalid proxy %q: %v", proxyURL, err)
		} else {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FredFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *FredFetcher) Name() string { return "fred" }

func (f *FredFetcher) Load(spec model.SeriesSpec) (map[time.Time]float64, error) {
	u := fmt.Sprintf("%s/graph/fredgraph.csv?id=%s", f.BaseURL, url.QueryEscape(spec.Code))

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, &LoadError{Source: u, Err: err}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: u, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: u, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Source: u, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	// The download names the value column after the series id.
	column := spec.Column
	if column == "" {
		column = spec.Code
	}
	data, err := ParseCSV(bytes.NewReader(body), DefaultDateColumn, column, series.DateLayout)
	if err != nil {
		return nil, fmt.Errorf("fred decode %s: %w", spec.Code, err)
	}
	return data, nil
}
