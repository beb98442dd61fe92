package confirm_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/signkit/signkit/pkg/confirm"
)

// MockUserStore is a mock implementation of confirm.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetBy(ctx context.Context, attrs map[string]any) (confirm.User, error) {
	args := m.Called(ctx, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(confirm.User), args.Error(1)
}
