package utils

import "context"

type contextKey string

const (
	AdminUserKey contextKey = "admin_user"
	TokenKey     contextKey = "token"
)

func SetAdminContext(ctx context.Context, username, token string) context.Context {
	ctx = context.WithValue(ctx, AdminUserKey, username)
	return context.WithValue(ctx, TokenKey, token)
}

func GetAdminFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(AdminUserKey).(string)
	return username, ok && username != ""
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok && token != ""
}
