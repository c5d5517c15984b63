package httpx

import (
	"github.com/labstack/echo/v4"

	"learnit-service/internal/application/command"
)

func (s *Server) handleListPosts(c echo.Context) error {
	result, err := s.posts.ListPosts(c.Request().Context(), subjectFrom(c))
	if err != nil {
		return sendJSONError(c, s.log, err)
	}
	return sendJSONResponse(c, echo.Map{"posts": result.Result})
}

func (s *Server) handleGetPost(c echo.Context) error {
	result, err := s.posts.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return sendJSONError(c, s.log, err)
	}
	return sendJSONResponse(c, echo.Map{"post": result.Result})
}

func (s *Server) handleCreatePost(c echo.Context) error {
	var cmd command.CreatePostCommand
	if err := bindBody(c, &cmd); err != nil {
		return sendJSONError(c, s.log, err)
	}
	cmd.UserId = subjectFrom(c)

	result, err := s.posts.CreatePost(c.Request().Context(), &cmd)
	if err != nil {
		return sendJSONError(c, s.log, err)
	}
	return sendJSONResponse(c, echo.Map{
		"message": "Add post success",
		"post":    result.Result,
	})
}

func (s *Server) handleUpdatePost(c echo.Context) error {
	var cmd command.UpdatePostCommand
	if err := bindBody(c, &cmd); err != nil {
		return sendJSONError(c, s.log, err)
	}
	cmd.Id = c.Param("id")
	cmd.UserId = subjectFrom(c)

	result, err := s.posts.UpdatePost(c.Request().Context(), &cmd)
	if err != nil {
		return sendJSONError(c, s.log, err)
	}
	return sendJSONResponse(c, echo.Map{
		"message": "Update post success",
		"post":    result.Result,
	})
}

func (s *Server) handleDeletePost(c echo.Context) error {
	result, err := s.posts.DeletePost(c.Request().Context(), &command.DeletePostCommand{
		Id:     c.Param("id"),
		UserId: subjectFrom(c),
	})
	if err != nil {
		return sendJSONError(c, s.log, err)
	}
	return sendJSONResponse(c, echo.Map{
		"message": "Delete post success",
		"postId":  result.PostId,
	})
}
