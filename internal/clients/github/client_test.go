package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yungbote/skillpath-backend/internal/apierr"
	"github.com/yungbote/skillpath-backend/internal/logger"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return &Client{
		log:     log.With("client", "GithubClient"),
		http:    &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
	}
}

func TestFetchUserReposMergesLanguageMaps(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat/repos":
			repos := []apiRepo{
				{
					Name:            "api",
					Description:     "service",
					Language:        "Go",
					StargazersCount: 3,
					ForksCount:      1,
					Size:            2048,
					UpdatedAt:       time.Now(),
					LanguagesURL:    server.URL + "/repos/octocat/api/languages",
				},
				{
					Name:     "notes",
					Language: "",
				},
			}
			json.NewEncoder(w).Encode(repos)
		case "/repos/octocat/api/languages":
			json.NewEncoder(w).Encode(map[string]int64{"Go": 90000, "SQL": 4000})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	repos, err := client.FetchUserRepos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("FetchUserRepos: %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("repos: want=2 got=%d", len(repos))
	}

	api := repos[0]
	if api.Name != "api" || api.PrimaryLanguage != "Go" || api.Stars != 3 || api.Size != 2048 {
		t.Fatalf("summary wrong: %+v", api)
	}
	sort.Strings(api.Languages)
	if len(api.Languages) != 2 || api.Languages[0] != "Go" || api.Languages[1] != "SQL" {
		t.Fatalf("languages wrong: %v", api.Languages)
	}
	if len(repos[1].Languages) != 0 {
		t.Fatalf("repo without languages URL should carry none: %v", repos[1].Languages)
	}
}

func TestFetchUserReposUnknownUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchUserRepos(context.Background(), "ghost")
	if !apierr.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestFetchUserReposRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ratelimit-Remaining", "0")
		w.Header().Set("X-Ratelimit-Reset", "1700000000")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchUserRepos(context.Background(), "octocat")
	if err == nil || !apierr.HasCode(err, apierr.CodeUpstream) {
		t.Fatalf("want upstream error, got %v", err)
	}
}

func TestFetchUserReposRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, `{"message":"flaky"}`, http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	repos, err := client.FetchUserRepos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("FetchUserRepos after retry: %v", err)
	}
	if len(repos) != 0 {
		t.Fatalf("repos: want=0 got=%d", len(repos))
	}
	if calls.Load() != 2 {
		t.Fatalf("attempts: want=2 got=%d", calls.Load())
	}
}
