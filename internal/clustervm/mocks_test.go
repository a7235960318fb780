package clustervm

import (
	"context"
	"sync"
	"time"

	"github.com/seapath/cluster-vm/api/v1alpha1"
	"github.com/seapath/cluster-vm/internal/cluster"
)

// purgeCall records one purge_image invocation's arguments.
type purgeCall struct {
	name   string
	date   *time.Time
	number *int
}

// mockManager is a mock implementation of the cluster.Manager interface
// for testing. Operations without configurable behavior succeed and
// return empty values.
type mockManager struct {
	mu sync.Mutex

	// Configurable behavior
	listVMsFunc     func(ctx context.Context) ([]string, error)
	startFunc       func(ctx context.Context, name string) error
	statusFunc      func(ctx context.Context, name string) (v1alpha1.Status, error)
	getMetadataFunc func(ctx context.Context, name, metadataName string) (string, error)

	// Call tracking
	calls           int
	purgeImageCalls []purgeCall
}

// newMockManager creates a new mock manager with default behavior.
func newMockManager() *mockManager {
	return &mockManager{
		// Default: no VMs
		listVMsFunc: func(ctx context.Context) ([]string, error) {
			return []string{}, nil
		},
		// Default: start succeeds
		startFunc: func(ctx context.Context, name string) error {
			return nil
		},
		// Default: VM is started
		statusFunc: func(ctx context.Context, name string) (v1alpha1.Status, error) {
			return v1alpha1.StatusStarted, nil
		},
		// Default: empty value
		getMetadataFunc: func(ctx context.Context, name, metadataName string) (string, error) {
			return "", nil
		},
	}
}

// callCount returns the total number of capability calls made.
func (m *mockManager) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockManager) track() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
}

func (m *mockManager) ListVMs(ctx context.Context) ([]string, error) {
	m.track()
	return m.listVMsFunc(ctx)
}

func (m *mockManager) Create(ctx context.Context, opts cluster.CreateOptions) error {
	m.track()
	return nil
}

func (m *mockManager) Clone(ctx context.Context, opts cluster.CloneOptions) error {
	m.track()
	return nil
}

func (m *mockManager) Remove(ctx context.Context, name string) error {
	m.track()
	return nil
}

func (m *mockManager) Start(ctx context.Context, name string) error {
	m.track()
	return m.startFunc(ctx, name)
}

func (m *mockManager) Stop(ctx context.Context, name string, force bool) error {
	m.track()
	return nil
}

func (m *mockManager) EnableVM(ctx context.Context, name string) error {
	m.track()
	return nil
}

func (m *mockManager) DisableVM(ctx context.Context, name string) error {
	m.track()
	return nil
}

func (m *mockManager) Status(ctx context.Context, name string) (v1alpha1.Status, error) {
	m.track()
	return m.statusFunc(ctx, name)
}

func (m *mockManager) CreateSnapshot(ctx context.Context, name, snapshot string) error {
	m.track()
	return nil
}

func (m *mockManager) RemoveSnapshot(ctx context.Context, name, snapshot string) error {
	m.track()
	return nil
}

func (m *mockManager) ListSnapshots(ctx context.Context, name string) ([]string, error) {
	m.track()
	return []string{}, nil
}

func (m *mockManager) RollbackSnapshot(ctx context.Context, name, snapshot string) error {
	m.track()
	return nil
}

func (m *mockManager) PurgeImage(ctx context.Context, name string, date *time.Time, number *int) error {
	m.track()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeImageCalls = append(m.purgeImageCalls, purgeCall{name: name, date: date, number: number})
	return nil
}

func (m *mockManager) ListMetadata(ctx context.Context, name string) ([]string, error) {
	m.track()
	return []string{}, nil
}

func (m *mockManager) GetMetadata(ctx context.Context, name, metadataName string) (string, error) {
	m.track()
	return m.getMetadataFunc(ctx, name, metadataName)
}
