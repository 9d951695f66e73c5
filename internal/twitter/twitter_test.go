package twitter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		httpClient: srv.Client(),
		tweetURL:   srv.URL + "/2/tweets",
		trendsURL:  srv.URL + "/1.1/trends/place.json",
	}
}

func TestPublish_ResponseClassification(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantOK  bool
	}{
		{"created", http.StatusCreated, `{"data":{"id":"1"}}`, nil, true},
		{"rate limited", http.StatusTooManyRequests, `{"title":"Too Many Requests"}`, ErrRateLimited, false},
		{"duplicate", http.StatusForbidden, `{"detail":"You are not allowed to create a Tweet with duplicate content."}`, ErrDuplicate, false},
		{"server error", http.StatusInternalServerError, `oops`, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("method = %s, want POST", r.Method)
				}
				var payload map[string]string
				if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
					t.Errorf("decode payload: %v", err)
				}
				if payload["text"] != "hello" {
					t.Errorf("text = %q, want hello", payload["text"])
				}
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := testClient(srv).Publish("hello")

			if tc.wantOK {
				if err != nil {
					t.Fatalf("publish: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestTrending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "23424863" {
			t.Errorf("woeid = %s, want 23424863", got)
		}
		w.Write([]byte(`[{"trends":[{"name":"Verstappen"},{"name":"#PremierLeague"}]}]`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Trending(23424863)
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(got) != 2 || got[0] != "Verstappen" || got[1] != "#PremierLeague" {
		t.Errorf("trends = %v", got)
	}
}

func TestTrending_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Trending(1)
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("trends = %v, want none", got)
	}
}

func TestTrending_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := testClient(srv).Trending(1); err == nil {
		t.Error("expected error for a non-200 trends response")
	}
}
