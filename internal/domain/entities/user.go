package entities

import (
	"errors"
	"time"
)

// User is an account. Id is assigned by the repository on create.
type User struct {
	Id        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
}

func NewUser(username, password string) *User {
	now := time.Now()
	return &User{
		CreatedAt: now,
		UpdatedAt: now,
		Username:  username,
		Password:  password,
	}
}

func (u *User) validate() error {
	if u.Username == "" || u.Password == "" {
		return ErrMissingCredentials
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

// HashPassword replaces the plaintext password with its argon2id encoding.
func (u *User) HashPassword() error {
	hashed, err := HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

func (u *User) CheckPassword(password string) error {
	ok, err := VerifyPassword(u.Password, password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPasswordMismatch
	}
	return nil
}
