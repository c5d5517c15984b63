package httpx

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"learnit-service/internal/application/common"
)

// TokenVerifier checks a bearer token and returns its subject identifier.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type ctxKeySubject struct{}

func WithSubject(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeySubject{}, userID)
}

func SubjectFrom(ctx context.Context) (string, bool) {
	userID, _ := ctx.Value(ctxKeySubject{}).(string)
	return userID, userID != ""
}

// bearerToken returns the second space-separated segment of the header.
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects requests without a valid bearer token and attaches
// the token subject to the request context.
func RequireAuth(verifier TokenVerifier, log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return sendJSONError(c, log, &common.Error{
					Kind:    common.KindMissingCredential,
					Message: common.MsgTokenNotFound,
				})
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				requestLogger(c, log).WithError(err).Warn("rejected access token")
				return sendJSONError(c, log, &common.Error{
					Kind:    common.KindInvalidCredential,
					Message: common.MsgInvalidToken,
				})
			}

			req := c.Request()
			c.SetRequest(req.WithContext(WithSubject(req.Context(), userID)))
			return next(c)
		}
	}
}

// subjectFrom is only called behind RequireAuth.
func subjectFrom(c echo.Context) string {
	userID, _ := SubjectFrom(c.Request().Context())
	return userID
}
