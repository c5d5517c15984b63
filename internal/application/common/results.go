package common

import (
	"time"
)

type UserResult struct {
	Id        string    `json:"_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerResult is the expanded owner of a post: id and username only.
type OwnerResult struct {
	Id       string `json:"_id"`
	Username string `json:"username"`
}

type PostResult struct {
	Id          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Url         string `json:"url"`
	Status      string `json:"status"`

	// User is the expanded owner when the read expanded it, else the owner id.
	User interface{} `json:"user"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
