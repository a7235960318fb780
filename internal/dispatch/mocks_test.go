package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/seapath/cluster-vm/api/v1alpha1"
	"github.com/seapath/cluster-vm/internal/cluster"
)

// snapshotCall records one snapshot operation's arguments.
type snapshotCall struct {
	name     string
	snapshot string
}

// stopCall records one stop operation's arguments.
type stopCall struct {
	name  string
	force bool
}

// purgeCall records one purge_image operation's arguments.
type purgeCall struct {
	name   string
	date   *time.Time
	number *int
}

// metadataCall records one get_metadata operation's arguments.
type metadataCall struct {
	name         string
	metadataName string
}

// mockManager is a mock implementation of the cluster.Manager interface
// for testing.
type mockManager struct {
	mu sync.Mutex

	// Configurable behavior
	listVMsFunc          func(ctx context.Context) ([]string, error)
	createFunc           func(ctx context.Context, opts cluster.CreateOptions) error
	cloneFunc            func(ctx context.Context, opts cluster.CloneOptions) error
	removeFunc           func(ctx context.Context, name string) error
	startFunc            func(ctx context.Context, name string) error
	stopFunc             func(ctx context.Context, name string, force bool) error
	enableVMFunc         func(ctx context.Context, name string) error
	disableVMFunc        func(ctx context.Context, name string) error
	statusFunc           func(ctx context.Context, name string) (v1alpha1.Status, error)
	createSnapshotFunc   func(ctx context.Context, name, snapshot string) error
	removeSnapshotFunc   func(ctx context.Context, name, snapshot string) error
	listSnapshotsFunc    func(ctx context.Context, name string) ([]string, error)
	rollbackSnapshotFunc func(ctx context.Context, name, snapshot string) error
	purgeImageFunc       func(ctx context.Context, name string, date *time.Time, number *int) error
	listMetadataFunc     func(ctx context.Context, name string) ([]string, error)
	getMetadataFunc      func(ctx context.Context, name, metadataName string) (string, error)

	// Call tracking
	listVMsCalls          int
	createCalls           []cluster.CreateOptions
	cloneCalls            []cluster.CloneOptions
	removeCalls           []string
	startCalls            []string
	stopCalls             []stopCall
	enableVMCalls         []string
	disableVMCalls        []string
	statusCalls           []string
	createSnapshotCalls   []snapshotCall
	removeSnapshotCalls   []snapshotCall
	listSnapshotsCalls    []string
	rollbackSnapshotCalls []snapshotCall
	purgeImageCalls       []purgeCall
	listMetadataCalls     []string
	getMetadataCalls      []metadataCall
}

// newMockManager creates a new mock manager with default behavior.
func newMockManager() *mockManager {
	return &mockManager{
		// Default: no VMs
		listVMsFunc: func(ctx context.Context) ([]string, error) {
			return []string{}, nil
		},
		// Default: create succeeds
		createFunc: func(ctx context.Context, opts cluster.CreateOptions) error {
			return nil
		},
		// Default: clone succeeds
		cloneFunc: func(ctx context.Context, opts cluster.CloneOptions) error {
			return nil
		},
		// Default: remove succeeds
		removeFunc: func(ctx context.Context, name string) error {
			return nil
		},
		// Default: start succeeds
		startFunc: func(ctx context.Context, name string) error {
			return nil
		},
		// Default: stop succeeds
		stopFunc: func(ctx context.Context, name string, force bool) error {
			return nil
		},
		// Default: enable succeeds
		enableVMFunc: func(ctx context.Context, name string) error {
			return nil
		},
		// Default: disable succeeds
		disableVMFunc: func(ctx context.Context, name string) error {
			return nil
		},
		// Default: VM is started
		statusFunc: func(ctx context.Context, name string) (v1alpha1.Status, error) {
			return v1alpha1.StatusStarted, nil
		},
		// Default: snapshot operations succeed
		createSnapshotFunc: func(ctx context.Context, name, snapshot string) error {
			return nil
		},
		removeSnapshotFunc: func(ctx context.Context, name, snapshot string) error {
			return nil
		},
		// Default: no snapshots
		listSnapshotsFunc: func(ctx context.Context, name string) ([]string, error) {
			return []string{}, nil
		},
		rollbackSnapshotFunc: func(ctx context.Context, name, snapshot string) error {
			return nil
		},
		// Default: purge succeeds
		purgeImageFunc: func(ctx context.Context, name string, date *time.Time, number *int) error {
			return nil
		},
		// Default: no metadata
		listMetadataFunc: func(ctx context.Context, name string) ([]string, error) {
			return []string{}, nil
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
	return m.listVMsCalls +
		len(m.createCalls) +
		len(m.cloneCalls) +
		len(m.removeCalls) +
		len(m.startCalls) +
		len(m.stopCalls) +
		len(m.enableVMCalls) +
		len(m.disableVMCalls) +
		len(m.statusCalls) +
		len(m.createSnapshotCalls) +
		len(m.removeSnapshotCalls) +
		len(m.listSnapshotsCalls) +
		len(m.rollbackSnapshotCalls) +
		len(m.purgeImageCalls) +
		len(m.listMetadataCalls) +
		len(m.getMetadataCalls)
}

func (m *mockManager) ListVMs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listVMsCalls++
	return m.listVMsFunc(ctx)
}

func (m *mockManager) Create(ctx context.Context, opts cluster.CreateOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls = append(m.createCalls, opts)
	return m.createFunc(ctx, opts)
}

func (m *mockManager) Clone(ctx context.Context, opts cluster.CloneOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cloneCalls = append(m.cloneCalls, opts)
	return m.cloneFunc(ctx, opts)
}

func (m *mockManager) Remove(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeCalls = append(m.removeCalls, name)
	return m.removeFunc(ctx, name)
}

func (m *mockManager) Start(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startCalls = append(m.startCalls, name)
	return m.startFunc(ctx, name)
}

func (m *mockManager) Stop(ctx context.Context, name string, force bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCalls = append(m.stopCalls, stopCall{name: name, force: force})
	return m.stopFunc(ctx, name, force)
}

func (m *mockManager) EnableVM(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enableVMCalls = append(m.enableVMCalls, name)
	return m.enableVMFunc(ctx, name)
}

func (m *mockManager) DisableVM(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disableVMCalls = append(m.disableVMCalls, name)
	return m.disableVMFunc(ctx, name)
}

func (m *mockManager) Status(ctx context.Context, name string) (v1alpha1.Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusCalls = append(m.statusCalls, name)
	return m.statusFunc(ctx, name)
}

func (m *mockManager) CreateSnapshot(ctx context.Context, name, snapshot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createSnapshotCalls = append(m.createSnapshotCalls, snapshotCall{name: name, snapshot: snapshot})
	return m.createSnapshotFunc(ctx, name, snapshot)
}

func (m *mockManager) RemoveSnapshot(ctx context.Context, name, snapshot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeSnapshotCalls = append(m.removeSnapshotCalls, snapshotCall{name: name, snapshot: snapshot})
	return m.removeSnapshotFunc(ctx, name, snapshot)
}

func (m *mockManager) ListSnapshots(ctx context.Context, name string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listSnapshotsCalls = append(m.listSnapshotsCalls, name)
	return m.listSnapshotsFunc(ctx, name)
}

func (m *mockManager) RollbackSnapshot(ctx context.Context, name, snapshot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollbackSnapshotCalls = append(m.rollbackSnapshotCalls, snapshotCall{name: name, snapshot: snapshot})
	return m.rollbackSnapshotFunc(ctx, name, snapshot)
}

func (m *mockManager) PurgeImage(ctx context.Context, name string, date *time.Time, number *int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeImageCalls = append(m.purgeImageCalls, purgeCall{name: name, date: date, number: number})
	return m.purgeImageFunc(ctx, name, date, number)
}

func (m *mockManager) ListMetadata(ctx context.Context, name string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listMetadataCalls = append(m.listMetadataCalls, name)
	return m.listMetadataFunc(ctx, name)
}

func (m *mockManager) GetMetadata(ctx context.Context, name, metadataName string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getMetadataCalls = append(m.getMetadataCalls, metadataCall{name: name, metadataName: metadataName})
	return m.getMetadataFunc(ctx, name, metadataName)
}
