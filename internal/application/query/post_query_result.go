package query

import "learnit-service/internal/application/common"

type PostQueryResult struct {
	Result *common.PostResult `json:"post"`
}

type PostQueryListResult struct {
	Result []*common.PostResult `json:"posts"`
}
