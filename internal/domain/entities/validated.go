package entities

import "errors"

var (
	ErrMissingCredentials = errors.New("username and password must not be empty")
	ErrPasswordMismatch   = errors.New("password does not match")
	ErrMissingTitle       = errors.New("title must not be empty")
	ErrMissingOwner       = errors.New("post must have an owner")
)

type ValidatedUser struct {
	*User
}

func NewValidatedUser(user *User) (*ValidatedUser, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}

	return &ValidatedUser{User: user}, nil
}

func (vu *ValidatedUser) GetUser() *User {
	return vu.User
}

type ValidatedPost struct {
	*Post
}

func NewValidatedPost(post *Post) (*ValidatedPost, error) {
	if err := post.validate(); err != nil {
		return nil, err
	}

	return &ValidatedPost{Post: post}, nil
}

func (vp *ValidatedPost) GetPost() *Post {
	return vp.Post
}
