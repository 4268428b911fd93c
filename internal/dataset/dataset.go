package dataset

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Dataset synthesizes demo records on every call. Nothing is stored:
// "created" records exist only in the response that reports them.
type Dataset struct {
	queryDelay time.Duration
	now        func() time.Time
}

type Options struct {
	// QueryDelay simulates database latency on every lookup.
	QueryDelay time.Duration
	Now        func() time.Time
}

func New() *Dataset {
	return NewWithOptions(Options{})
}

func NewWithOptions(opts Options) *Dataset {
	d := &Dataset{queryDelay: opts.QueryDelay, now: opts.Now}
	if d.now == nil {
		d.now = time.Now
	}
	return d
}

func (d *Dataset) delay() {
	if d.queryDelay > 0 {
		time.Sleep(d.queryDelay)
	}
}

const (
	// UserCount is the highest user id that resolves; anything above is a
	// miss.
	UserCount = 100

	// SearchTotal is the fixed number of results every query "finds".
	SearchTotal = 42
)

var locations = []string{"New York", "London", "Tokyo", "Sydney"}

type User struct {
	ID         int     `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Active     bool    `json:"active"`
	CreatedAt  int64   `json:"created_at"`
	PostsCount int     `json:"posts_count"`
	Profile    Profile `json:"profile"`
}

type Profile struct {
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

type UserStats struct {
	Posts     int `json:"posts"`
	Followers int `json:"followers"`
	Following int `json:"following"`
}

type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

func paginate(total, page, limit int) (start, end int, p Pagination) {
	p = Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		HasPrevious: page > 1,
	}

	// Any page past the last one is an empty slice. This also keeps the
	// offset multiplication below from overflowing on absurd page numbers.
	if page > total/limit+1 {
		return total, total, p
	}

	start = (page - 1) * limit
	end = start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	p.HasNext = page*limit < total
	return start, end, p
}

func (d *Dataset) user(id int) User {
	return User{
		ID:         id,
		Username:   fmt.Sprintf("user_%03d", id),
		Email:      fmt.Sprintf("user_%03d@example.com", id),
		Active:     id%4 != 0,
		CreatedAt:  d.now().Unix() - int64(id)*86400,
		PostsCount: max(0, 50-id),
		Profile: Profile{
			FullName: fmt.Sprintf("User Number %03d", id),
			Bio:      fmt.Sprintf("I am user #%d with interests in technology", id),
			Location: locations[id%len(locations)],
		},
	}
}

type UserFilter struct {
	Search     string
	ActiveOnly bool
}

// Users filters the synthesized population, then slices the requested page
// out of the filtered set.
func (d *Dataset) Users(filter UserFilter, page, limit int) ([]User, Pagination) {
	d.delay()

	search := strings.ToLower(filter.Search)
	matched := make([]User, 0, UserCount)
	for id := 1; id <= UserCount; id++ {
		u := d.user(id)
		if filter.ActiveOnly && !u.Active {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Username), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		matched = append(matched, u)
	}

	start, end, p := paginate(len(matched), page, limit)
	return matched[start:end], p
}

// UserByID reports false for ids outside the synthesized population.
func (d *Dataset) UserByID(id int) (User, UserStats, bool) {
	d.delay()

	if id < 1 || id > UserCount {
		return User{}, UserStats{}, false
	}
	u := d.user(id)
	stats := UserStats{
		Posts:     max(0, 50-id),
		Followers: id * 3,
		Following: id * 2,
	}
	return u, stats, true
}

type AdminUserInfo struct {
	IPHistory        []string `json:"ip_history"`
	LoginAttempts    int      `json:"login_attempts"`
	SubscriptionType string   `json:"subscription_type"`
	AdminNotes       string   `json:"admin_notes"`
}

func (d *Dataset) AdminUserInfo(id int) AdminUserInfo {
	d.delay()

	return AdminUserInfo{
		IPHistory:        []string{fmt.Sprintf("192.168.1.%d", (id%50)+100)},
		LoginAttempts:    id % 10,
		SubscriptionType: []string{"free", "premium", "enterprise"}[id%3],
		AdminNotes:       fmt.Sprintf("Standard user account #%d", id),
	}
}

type Post struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  int    `json:"author_id"`
	Published bool   `json:"published"`
	CreatedAt int64  `json:"created_at"`
}

type PostFilter struct {
	PublishedOnly bool
	AuthorID      int // 0 means any author
}

func (d *Dataset) Posts(filter PostFilter, limit int) []Post {
	d.delay()

	base := d.now().Unix()
	all := []Post{
		{ID: 1, Title: "Routing Deep Dive", Content: "A tour of URL dispatch strategies...", AuthorID: 1, Published: true, CreatedAt: base - 3*86400},
		{ID: 2, Title: "Concurrent Handlers", Content: "Serving requests without blocking...", AuthorID: 2, Published: true, CreatedAt: base - 2*86400},
		{ID: 3, Title: "Draft Post", Content: "Work in progress...", AuthorID: 1, Published: false, CreatedAt: base - 86400},
	}

	filtered := make([]Post, 0, len(all))
	for _, p := range all {
		if filter.PublishedOnly && !p.Published {
			continue
		}
		if filter.AuthorID != 0 && p.AuthorID != filter.AuthorID {
			continue
		}
		filtered = append(filtered, p)
	}
	if limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered
}

type SearchResult struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Relevance float64 `json:"relevance"`
	CreatedAt int64   `json:"created_at"`
	URL       string  `json:"url"`
	Snippet   string  `json:"snippet"`
}

// SearchCategories are the accepted values for the category filter.
var SearchCategories = []string{"all", "users", "posts", "files"}

func ValidSearchCategory(category string) bool {
	for _, c := range SearchCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Search fabricates a stable result list for any query: result i always has
// the same category rotation, decaying relevance, and url.
func (d *Dataset) Search(query, category string, page, limit int) ([]SearchResult, Pagination) {
	d.delay()

	start, end, p := paginate(SearchTotal, page, limit)
	base := d.now().Unix()
	results := make([]SearchResult, 0, end-start)
	for i := start + 1; i <= end; i++ {
		resultCategory := category
		if category == "all" {
			resultCategory = SearchCategories[1:][i%3]
		}
		results = append(results, SearchResult{
			ID:        i,
			Title:     fmt.Sprintf("Search result %d for '%s'", i, query),
			Category:  resultCategory,
			Relevance: math.Round((0.95-float64(i)*0.01)*100) / 100,
			CreatedAt: base - int64(i)*3600,
			URL:       fmt.Sprintf("/%s/%d", resultCategory, i),
			Snippet:   fmt.Sprintf("This is result %d containing '%s' with relevant content...", i, query),
		})
	}
	return results, p
}

type AdminStats struct {
	TotalUsers     int    `json:"total_users"`
	ActiveUsers    int    `json:"active_users"`
	TotalPosts     int    `json:"total_posts"`
	ActiveSessions int    `json:"active_sessions"`
	SystemHealth   string `json:"system_health"`
	Uptime         string `json:"uptime"`
}

func (d *Dataset) AdminStats() AdminStats {
	d.delay()

	return AdminStats{
		TotalUsers:     1247,
		ActiveUsers:    934,
		TotalPosts:     5623,
		ActiveSessions: 156,
		SystemHealth:   "excellent",
		Uptime:         "15 days, 7 hours",
	}
}
