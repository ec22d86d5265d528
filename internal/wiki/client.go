package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the canonical English-language instance.
const DefaultBaseURL = "https://en.wikipedia.org"

// Client implements API against a MediaWiki action API endpoint
// (<base>/w/api.php). It uses formatversion=2 so pages decode as arrays.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return DefaultBaseURL
}

func (c *Client) do(ctx context.Context, params url.Values, out any) error {
	u, err := url.Parse(c.base() + "/w/api.php")
	if err != nil {
		return err
	}
	params.Set("format", "json")
	params.Set("formatversion", "2")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("wiki api status: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Search returns up to limit article titles matching the query, in rank order.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))

	var sr searchResponse
	if err := c.do(ctx, params, &sr); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(sr.Query.Search))
	for _, hit := range sr.Query.Search {
		title := strings.TrimSpace(hit.Title)
		if title == "" {
			continue
		}
		out = append(out, title)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Page resolves a title to its canonical form and full URL, following
// redirects. It returns *NotFoundError for missing articles and
// *DisambiguationError, with a best-effort option list, when the title names
// a disambiguation page.
func (c *Client) Page(ctx context.Context, title string) (Page, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "info|pageprops")
	params.Set("inprop", "url")
	params.Set("ppprop", "disambiguation")
	params.Set("redirects", "1")

	var pr pageResponse
	if err := c.do(ctx, params, &pr); err != nil {
		return Page{}, err
	}
	if len(pr.Query.Pages) == 0 {
		return Page{}, &NotFoundError{Title: title}
	}
	p := pr.Query.Pages[0]
	if p.Missing || p.Invalid {
		return Page{}, &NotFoundError{Title: title}
	}
	if _, ok := p.PageProps["disambiguation"]; ok {
		// Option list is best-effort: a failed links lookup still yields a
		// usable disambiguation error.
		options, _ := c.links(ctx, p.Title)
		return Page{}, &DisambiguationError{Title: p.Title, Options: options}
	}
	pageURL := p.FullURL
	if pageURL == "" {
		pageURL = c.base() + "/wiki/" + url.PathEscape(strings.ReplaceAll(p.Title, " ", "_"))
	}
	return Page{Title: p.Title, URL: pageURL}, nil
}

// Summary returns a plain-text extract of the article bounded to the given
// sentence count. An empty extract is reported as *NotFoundError.
func (c *Client) Summary(ctx context.Context, title string, sentences int) (string, error) {
	if sentences <= 0 {
		sentences = 10
	}
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "extracts")
	params.Set("exsentences", strconv.Itoa(sentences))
	params.Set("explaintext", "1")
	params.Set("redirects", "1")

	var er extractResponse
	if err := c.do(ctx, params, &er); err != nil {
		return "", err
	}
	if len(er.Query.Pages) == 0 || er.Query.Pages[0].Missing {
		return "", &NotFoundError{Title: title}
	}
	extract := strings.TrimSpace(er.Query.Pages[0].Extract)
	if extract == "" {
		return "", &NotFoundError{Title: title}
	}
	return extract, nil
}

// links lists mainspace links from a page, used to enumerate disambiguation
// options.
func (c *Client) links(ctx context.Context, title string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "links")
	params.Set("plnamespace", "0")
	params.Set("pllimit", "50")

	var lr linksResponse
	if err := c.do(ctx, params, &lr); err != nil {
		return nil, err
	}
	if len(lr.Query.Pages) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(lr.Query.Pages[0].Links))
	for _, l := range lr.Query.Pages[0].Links {
		if t := strings.TrimSpace(l.Title); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type pageResponse struct {
	Query struct {
		Pages []struct {
			Title     string            `json:"title"`
			Missing   bool              `json:"missing"`
			Invalid   bool              `json:"invalid"`
			FullURL   string            `json:"fullurl"`
			PageProps map[string]string `json:"pageprops"`
		} `json:"pages"`
	} `json:"query"`
}

type extractResponse struct {
	Query struct {
		Pages []struct {
			Title   string `json:"title"`
			Missing bool   `json:"missing"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

type linksResponse struct {
	Query struct {
		Pages []struct {
			Links []struct {
				Title string `json:"title"`
			} `json:"links"`
		} `json:"pages"`
	} `json:"query"`
}
