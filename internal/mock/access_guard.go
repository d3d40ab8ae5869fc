package mock

import (
	"context"

	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/uuid"
)

// AccessGuard implements port.AccessGuard for tests.
type AccessGuard struct {
	// stored values
	PrincipalOut port.Principal

	// captured inputs
	GotCredential string
	GotAssetID    uuid.UUID

	// errors
	AuthenticateErr error
	AuthorizeErr    error

	// call flags
	AuthenticateCalled bool
	AuthorizeCalled    bool
}

// compile-time check: *AccessGuard must satisfy port.AccessGuard
var _ port.AccessGuard = (*AccessGuard)(nil)

func (m *AccessGuard) Authenticate(ctx context.Context, credential string) (port.Principal, error) {
	m.AuthenticateCalled = true
	m.GotCredential = credential
	if m.AuthenticateErr != nil {
		return port.Principal{}, m.AuthenticateErr
	}
	return m.PrincipalOut, nil
}

func (m *AccessGuard) Authorize(ctx context.Context, credential string, assetID uuid.UUID) (port.Principal, error) {
	m.AuthorizeCalled = true
	m.GotCredential = credential
	m.GotAssetID = assetID
	if m.AuthorizeErr != nil {
		return port.Principal{}, m.AuthorizeErr
	}
	return m.PrincipalOut, nil
}
