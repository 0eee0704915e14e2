package tmsapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	DefaultShowingsURL = "https://data.tmsapi.com/v1.1/movies/showings"
	DefaultAiringsURL  = "http://data.tmsapi.com/v1.1/movies/airings"
)

type Client struct {
	ShowingsURL string
	AiringsURL  string
	ApiKey      string
	HTTPClient  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		ShowingsURL: DefaultShowingsURL,
		AiringsURL:  DefaultAiringsURL,
		ApiKey:      apiKey,
		HTTPClient:  http.DefaultClient,
	}
}

// Showings fetches the theatrical listings for one date and zip code.
func (c *Client) Showings(startDate string, zipCode string) ([]Showing, error) {
	endpoint := fmt.Sprintf("%s?startDate=%s&zip=%s&api_key=%s",
		c.ShowingsURL, url.QueryEscape(startDate), url.QueryEscape(zipCode), url.QueryEscape(c.ApiKey))

	var showings []Showing
	if err := c.getJSON(endpoint, &showings); err != nil {
		return nil, err
	}
	return showings, nil
}

// Airings fetches the TV listings for one date-time and lineup.
func (c *Client) Airings(startDateTime string, lineupId string) ([]Airing, error) {
	endpoint := fmt.Sprintf("%s?startDateTime=%s&lineupId=%s&api_key=%s",
		c.AiringsURL, url.QueryEscape(startDateTime), url.QueryEscape(lineupId), url.QueryEscape(c.ApiKey))

	var airings []Airing
	if err := c.getJSON(endpoint, &airings); err != nil {
		return nil, err
	}
	return airings, nil
}

// getJSON does one GET and decodes the body. A non-2xx status fails with
// the raw body kept as diagnostic context.
func (c *Client) getJSON(endpoint string, out any) error {
	resp, err := c.HTTPClient.Get(endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("listings request failed (%d): %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}
