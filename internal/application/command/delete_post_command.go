package command

type DeletePostCommand struct {
	Id     string
	UserId string
}

type DeletePostCommandResult struct {
	PostId string `json:"postId"`
}
