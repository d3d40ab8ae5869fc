package api_context

import (
	"context"

	"github.com/striming/videos-ms-go/internal/uuid"
)

type ctxKey string

const (
	IDKey         ctxKey = "id"
	VariantRefKey ctxKey = "variantRef"
	QualityKey    ctxKey = "quality"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
	CredentialKey ctxKey = "credential"
)

func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	return id, ok
}

func VariantRefFromContext(ctx context.Context) (string, bool) {
	ref, ok := ctx.Value(VariantRefKey).(string)
	return ref, ok
}

func QualityFromContext(ctx context.Context) (string, bool) {
	q, ok := ctx.Value(QualityKey).(string)
	return q, ok
}

func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}

func CredentialFromContext(ctx context.Context) (string, bool) {
	credential, ok := ctx.Value(CredentialKey).(string)
	return credential, ok
}
