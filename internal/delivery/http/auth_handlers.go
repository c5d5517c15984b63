package httpx

import (
	"github.com/labstack/echo/v4"

	"learnit-service/internal/application/command"
)

func (s *Server) handleCurrentUser(c echo.Context) error {
	result, err := s.users.GetProfile(c.Request().Context(), subjectFrom(c))
	if err != nil {
		return sendJSONError(c, s.log, err)
	}
	return sendJSONResponse(c, echo.Map{"user": result.Result})
}

func (s *Server) handleRegister(c echo.Context) error {
	var cmd command.CreateUserCommand
	if err := bindBody(c, &cmd); err != nil {
		return sendJSONError(c, s.log, err)
	}

	result, err := s.users.CreateUser(c.Request().Context(), &cmd)
	if err != nil {
		return sendJSONError(c, s.log, err)
	}
	return sendJSONResponse(c, echo.Map{
		"message":     "Register success",
		"accessToken": result.AccessToken,
	})
}

func (s *Server) handleLogin(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := bindBody(c, &cmd); err != nil {
		return sendJSONError(c, s.log, err)
	}

	result, err := s.users.LoginUser(c.Request().Context(), &cmd)
	if err != nil {
		return sendJSONError(c, s.log, err)
	}
	return sendJSONResponse(c, echo.Map{
		"message":     "Login success",
		"accessToken": result.AccessToken,
	})
}
