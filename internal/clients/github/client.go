package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/skillpath-backend/internal/apierr"
	"github.com/yungbote/skillpath-backend/internal/logger"
	"github.com/yungbote/skillpath-backend/internal/types"
	"github.com/yungbote/skillpath-backend/internal/utils"
)

const (
	perPage           = 100
	maxPages          = 10
	maxAttempts       = 3
	languageFetchers  = 8
	defaultAPIBaseURL = "https://api.github.com"
)

// Client fetches a user's repositories from the GitHub REST API and
// normalizes them into RepoSummary values for the activity aggregator.
type Client struct {
	log     *logger.Logger
	http    *http.Client
	baseURL string
	token   string
}

func NewClient(log *logger.Logger) *Client {
	clientLog := log.With("client", "GithubClient")
	baseURL := strings.TrimRight(utils.GetEnv("GITHUB_API_URL", defaultAPIBaseURL, log), "/")
	timeout := utils.GetEnvAsInt("GITHUB_TIMEOUT_SECONDS", 15, log)
	return &Client{
		log:     clientLog,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL: baseURL,
		token:   utils.GetEnv("GITHUB_TOKEN", "", nil),
	}
}

type apiRepo struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Size            int       `json:"size"`
	UpdatedAt       time.Time `json:"updated_at"`
	LanguagesURL    string    `json:"languages_url"`
}

// FetchUserRepos pages through the user's repositories and fetches each
// repo's full language map concurrently. A failed language fetch falls
// back to the repo's primary language instead of failing the sync.
func (c *Client) FetchUserRepos(ctx context.Context, username string) ([]types.RepoSummary, error) {
	var raw []apiRepo
	for page := 1; page <= maxPages; page++ {
		url := fmt.Sprintf("%s/users/%s/repos?per_page=%d&page=%d", c.baseURL, username, perPage, page)
		var batch []apiRepo
		if err := c.getJSON(ctx, url, username, &batch); err != nil {
			return nil, err
		}
		raw = append(raw, batch...)
		if len(batch) < perPage {
			break
		}
	}

	summaries := make([]types.RepoSummary, len(raw))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(languageFetchers)
	for i, repo := range raw {
		g.Go(func() error {
			summary := types.RepoSummary{
				Name:            repo.Name,
				Description:     repo.Description,
				PrimaryLanguage: repo.Language,
				Stars:           repo.StargazersCount,
				Forks:           repo.ForksCount,
				Size:            repo.Size,
				UpdatedAt:       repo.UpdatedAt,
			}
			if repo.LanguagesURL != "" {
				var byteCounts map[string]int64
				if err := c.getJSON(gctx, repo.LanguagesURL, username, &byteCounts); err == nil {
					languages := make([]string, 0, len(byteCounts))
					for lang := range byteCounts {
						languages = append(languages, lang)
					}
					summary.Languages = languages
				} else {
					c.log.Warn("Language fetch failed, falling back to primary language", "repo", repo.Name, "error", err)
				}
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// getJSON performs a GET with bounded retries on transient failures.
func (c *Client) getJSON(ctx context.Context, url, username string, dest any) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt-1) * 500 * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		if c.token != "" {
			req.Header.Set("Authorization", "token "+c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				lastErr = readErr
				continue
			}
			return json.Unmarshal(body, dest)
		case resp.StatusCode == http.StatusNotFound:
			return apierr.NotFound("github user %q not found", username)
		case isRateLimited(resp):
			return apierr.Upstream(fmt.Errorf("github API rate limit exceeded%s", rateLimitResetHint(resp)))
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("github API request failed (%d): %s", resp.StatusCode, errorMessage(body, resp))
			continue
		default:
			return apierr.Upstream(fmt.Errorf("github API request failed (%d): %s", resp.StatusCode, errorMessage(body, resp)))
		}
	}
	return apierr.Upstream(lastErr)
}

func isRateLimited(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-Ratelimit-Remaining") == "0"
}

func rateLimitResetHint(resp *http.Response) string {
	reset := resp.Header.Get("X-Ratelimit-Reset")
	if reset == "" {
		return ""
	}
	return ", resets at epoch " + reset
}

func errorMessage(body []byte, resp *http.Response) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && strings.TrimSpace(parsed.Message) != "" {
		return parsed.Message
	}
	if resp.Status != "" {
		return resp.Status
	}
	return "unknown github error"
}
