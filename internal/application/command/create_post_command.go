package command

import "learnit-service/internal/application/common"

// CreatePostCommand carries the client fields; the owner always comes from
// the authenticated subject.
type CreatePostCommand struct {
	UserId      string `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Url         string `json:"url"`
	Status      string `json:"status"`
}

type CreatePostCommandResult struct {
	Result *common.PostResult `json:"post"`
}
