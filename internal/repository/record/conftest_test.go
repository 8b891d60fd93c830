package record

import "context"

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn      func(ctx context.Context, key string) ([]byte, error)
	getMultiFn func(ctx context.Context, keys []string) ([][]byte, error)
	setNXFn    func(ctx context.Context, key string, value []byte) error
	delFn      func(ctx context.Context, key string) error
	existsFn   func(ctx context.Context, key string) (bool, error)
	scanFn     func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) GetMulti(ctx context.Context, keys []string) ([][]byte, error) {
	if m.getMultiFn != nil {
		return m.getMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) SetNX(ctx context.Context, key string, value []byte) error {
	if m.setNXFn != nil {
		return m.setNXFn(ctx, key, value)
	}
	return nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}
