// Package twitter is the thin client for publishing posts and reading
// trending topics, with publish failures classified for the gate's retry
// policy.
package twitter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
)

const (
	tweetEndpoint  = "https://api.twitter.com/2/tweets"
	trendsEndpoint = "https://api.twitter.com/1.1/trends/place.json"
)

// Publish failure classes. Everything else is a transient error.
var (
	ErrRateLimited = errors.New("twitter: rate limited")
	ErrDuplicate   = errors.New("twitter: duplicate content")
)

type Credentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

type Client struct {
	httpClient *http.Client

	tweetURL  string
	trendsURL string
}

// NewClient builds a client whose requests are OAuth1-signed with the
// user-context credentials.
func NewClient(creds Credentials, timeout time.Duration) *Client {
	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)

	httpClient := config.Client(oauth1.NoContext, token)
	httpClient.Timeout = timeout

	return &Client{
		httpClient: httpClient,
		tweetURL:   tweetEndpoint,
		trendsURL:  trendsEndpoint,
	}
}

// Publish posts one tweet. Rate-limit and duplicate responses map to
// their sentinel errors; anything else non-2xx is transient.
func (c *Client) Publish(text string) error {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("marshal tweet payload: %w", err)
	}

	resp, err := c.httpClient.Post(c.tweetURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post tweet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK {
		slog.Info("tweet posted", "length", len(text))
		return nil
	}

	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	detail := strings.TrimSpace(string(payload))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case strings.Contains(strings.ToLower(detail), "duplicate"):
		return ErrDuplicate
	default:
		return fmt.Errorf("twitter API error %s: %s", resp.Status, detail)
	}
}

type trendsResponse []struct {
	Trends []struct {
		Name string `json:"name"`
	} `json:"trends"`
}

// Trending returns the current trend names for a WOEID region, in API
// order.
func (c *Client) Trending(woeid int) ([]string, error) {
	url := fmt.Sprintf("%s?id=%d", c.trendsURL, woeid)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch trends: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("trends API error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var parsed trendsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode trends: %w", err)
	}
	if len(parsed) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(parsed[0].Trends))
	for _, t := range parsed[0].Trends {
		names = append(names, t.Name)
	}
	return names, nil
}
