package query

import "learnit-service/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"user"`
}
