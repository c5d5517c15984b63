package command

type CreateUserCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserCommandResult struct {
	AccessToken string `json:"accessToken"`
}
