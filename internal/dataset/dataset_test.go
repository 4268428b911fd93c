package dataset

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Unix(1_700_000_000, 0)
}

func TestUsers_Pagination(t *testing.T) {
	d := NewWithOptions(Options{Now: fixedNow})

	users, p := d.Users(UserFilter{}, 1, 10)
	if len(users) != 10 {
		t.Fatalf("expected 10 users, got %d", len(users))
	}
	if p.Total != UserCount || !p.HasNext || p.HasPrevious {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if users[0].ID != 1 || users[9].ID != 10 {
		t.Fatalf("unexpected page contents: %d..%d", users[0].ID, users[9].ID)
	}

	// Last page is a partial slice with no next page.
	users, p = d.Users(UserFilter{}, 4, 30)
	if len(users) != 10 {
		t.Fatalf("expected 10 users on the last page, got %d", len(users))
	}
	if p.HasNext || !p.HasPrevious {
		t.Fatalf("unexpected pagination: %+v", p)
	}

	// Past the end yields an empty slice, not an error.
	users, p = d.Users(UserFilter{}, 50, 10)
	if len(users) != 0 || p.HasNext {
		t.Fatalf("expected empty page, got %d users, %+v", len(users), p)
	}
}

func TestUsers_HugePageNumber(t *testing.T) {
	d := NewWithOptions(Options{Now: fixedNow})

	// Page numbers large enough to overflow the offset multiplication must
	// still come back as an empty page.
	for _, page := range []int{1 << 61, int(^uint(0) >> 1)} {
		users, p := d.Users(UserFilter{}, page, 100)
		if len(users) != 0 {
			t.Fatalf("page %d: expected empty page, got %d users", page, len(users))
		}
		if p.HasNext || !p.HasPrevious || p.Total != UserCount {
			t.Fatalf("page %d: unexpected pagination: %+v", page, p)
		}
	}
}

func TestUsers_Filters(t *testing.T) {
	d := NewWithOptions(Options{Now: fixedNow})

	// Every fourth user is inactive.
	users, p := d.Users(UserFilter{ActiveOnly: true}, 1, UserCount)
	if p.Total != 75 || len(users) != 75 {
		t.Fatalf("expected 75 active users, got %d (total %d)", len(users), p.Total)
	}
	for _, u := range users {
		if !u.Active {
			t.Fatalf("inactive user %d in active_only result", u.ID)
		}
	}

	// user_010 through user_019 are the only substring matches.
	users, p = d.Users(UserFilter{Search: "user_01"}, 1, UserCount)
	if p.Total != 10 {
		t.Fatalf("expected 10 matches for user_01, got %d", p.Total)
	}
	for _, u := range users {
		if u.Username[:7] != "user_01" {
			t.Fatalf("unexpected match %q", u.Username)
		}
	}
}

func TestUserByID(t *testing.T) {
	d := NewWithOptions(Options{Now: fixedNow})

	u, stats, ok := d.UserByID(7)
	if !ok {
		t.Fatalf("expected user 7 to exist")
	}
	if u.Username != "user_007" || u.Email != "user_007@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if stats.Followers != 21 || stats.Following != 14 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	for _, id := range []int{0, -1, UserCount + 1} {
		if _, _, ok := d.UserByID(id); ok {
			t.Fatalf("expected id %d to be a miss", id)
		}
	}
}

func TestPosts_Filters(t *testing.T) {
	d := NewWithOptions(Options{Now: fixedNow})

	posts := d.Posts(PostFilter{PublishedOnly: true}, 10)
	if len(posts) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(posts))
	}
	for _, p := range posts {
		if !p.Published {
			t.Fatalf("unpublished post %d in published_only result", p.ID)
		}
	}

	posts = d.Posts(PostFilter{AuthorID: 1}, 10)
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts by author 1, got %d", len(posts))
	}

	posts = d.Posts(PostFilter{}, 1)
	if len(posts) != 1 {
		t.Fatalf("expected limit to cap results, got %d", len(posts))
	}
}

func TestSearch(t *testing.T) {
	d := NewWithOptions(Options{Now: fixedNow})

	results, p := d.Search("golang", "all", 1, 10)
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
	if p.Total != SearchTotal || !p.HasNext {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if results[0].Title != "Search result 1 for 'golang'" {
		t.Fatalf("unexpected title %q", results[0].Title)
	}
	if results[0].Relevance != 0.94 {
		t.Fatalf("unexpected relevance %v", results[0].Relevance)
	}

	// A fixed category sticks; "all" rotates.
	results, _ = d.Search("golang", "posts", 1, 5)
	for _, r := range results {
		if r.Category != "posts" {
			t.Fatalf("unexpected category %q", r.Category)
		}
	}

	// Final page has the remainder and no next.
	results, p = d.Search("golang", "all", 5, 10)
	if len(results) != 2 || p.HasNext {
		t.Fatalf("expected final partial page, got %d results, %+v", len(results), p)
	}

	// Far past the end, including offsets that would overflow, is empty
	// rather than fabricated.
	for _, page := range []int{6, 1 << 61} {
		results, p = d.Search("golang", "all", page, 10)
		if len(results) != 0 || p.HasNext {
			t.Fatalf("page %d: expected empty page, got %d results, %+v", page, len(results), p)
		}
	}
}

func TestValidSearchCategory(t *testing.T) {
	for _, c := range SearchCategories {
		if !ValidSearchCategory(c) {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	if ValidSearchCategory("videos") {
		t.Fatalf("expected videos to be invalid")
	}
}
