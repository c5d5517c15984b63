package entities

import (
	"strings"
	"time"
)

// DefaultPostStatus is assigned when a post is written without a status.
const DefaultPostStatus = "TO LEARN"

const securePrefix = "https://"

// Owner is the expanded owner reference of a post.
type Owner struct {
	Id       string
	Username string
}

type Post struct {
	Id          string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Description string
	Url         string
	Status      string
	UserId      string

	// Owner is only set by reads that expand the reference.
	Owner *Owner
}

// NewPost builds a post owned by userID with the defaults applied.
func NewPost(userID, title, description, url, status string) *Post {
	now := time.Now()
	p := &Post{
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       title,
		Description: description,
		Url:         NormalizeURL(url),
		Status:      status,
		UserId:      userID,
	}
	if p.Status == "" {
		p.Status = DefaultPostStatus
	}
	return p
}

// NormalizeURL prefixes a non-empty url with https:// unless it already
// carries it.
func NormalizeURL(url string) string {
	if url == "" || strings.HasPrefix(url, securePrefix) {
		return url
	}
	return securePrefix + url
}

func (p *Post) validate() error {
	if p.Title == "" {
		return ErrMissingTitle
	}
	if p.UserId == "" {
		return ErrMissingOwner
	}
	return nil
}

// PostChanges is the full set of fields a post update writes.
type PostChanges struct {
	Title       string
	Description string
	// Url is nil when the caller did not send one; the stored url is kept.
	Url    *string
	Status string
}

// NewPostChanges validates an update and applies the same defaults as NewPost.
func NewPostChanges(title, description string, url *string, status string) (*PostChanges, error) {
	if title == "" {
		return nil, ErrMissingTitle
	}
	c := &PostChanges{
		Title:       title,
		Description: description,
		Status:      status,
	}
	if url != nil {
		normalized := NormalizeURL(*url)
		c.Url = &normalized
	}
	if c.Status == "" {
		c.Status = DefaultPostStatus
	}
	return c, nil
}
