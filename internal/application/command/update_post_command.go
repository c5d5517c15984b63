package command

import "learnit-service/internal/application/common"

type UpdatePostCommand struct {
	Id          string  `json:"-"`
	UserId      string  `json:"-"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Url         *string `json:"url"`
	Status      string  `json:"status"`
}

type UpdatePostCommandResult struct {
	Result *common.PostResult `json:"post"`
}
