package upstream

import (
	"context"
	"sync"
	"time"

	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
)

// MockLicenseService is an in-process stand-in for the License service.
// It implements both LicenseClient and SalesClient with deterministic data
// and a configurable latency to mimic real-world calls.
type MockLicenseService struct {
	Latency time.Duration

	mu       sync.RWMutex
	licenses map[id.LicenseID]License
	sales    map[id.LicenseID]bool
}

func NewMockLicenseService() *MockLicenseService {
	return &MockLicenseService{
		licenses: make(map[id.LicenseID]License),
		sales:    make(map[id.LicenseID]bool),
	}
}

// AddLicense seeds a license record.
func (m *MockLicenseService) AddLicense(license License) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.licenses[license.ID] = license
}

// RemoveLicense drops a license record; later calls for it fail with a 404
// upstream error.
func (m *MockLicenseService) RemoveLicense(licenseID id.LicenseID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.licenses, licenseID)
}

// RecordSale marks a license as sold and records a sale for it.
func (m *MockLicenseService) RecordSale(licenseID id.LicenseID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales[licenseID] = true
	if license, ok := m.licenses[licenseID]; ok {
		license.Status = LicenseSold
		m.licenses[licenseID] = license
	}
}

func (m *MockLicenseService) Fetch(_ context.Context, licenseID id.LicenseID, _ string) (License, error) {
	time.Sleep(m.Latency)
	m.mu.RLock()
	defer m.mu.RUnlock()

	license, ok := m.licenses[licenseID]
	if !ok {
		return License{}, dErrors.NewUpstream(404, `{"message":"license not found"}`)
	}
	return license, nil
}

func (m *MockLicenseService) SetStatus(_ context.Context, licenseID id.LicenseID, status LicenseStatus, _ string) error {
	time.Sleep(m.Latency)
	m.mu.Lock()
	defer m.mu.Unlock()

	license, ok := m.licenses[licenseID]
	if !ok {
		return dErrors.NewUpstream(404, `{"message":"license not found"}`)
	}
	license.Status = status
	m.licenses[licenseID] = license
	return nil
}

func (m *MockLicenseService) HasSaleFor(_ context.Context, licenseID id.LicenseID, _ string) (bool, error) {
	time.Sleep(m.Latency)
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sales[licenseID], nil
}

// MockUserClient reports every user as existing unless listed in Missing.
type MockUserClient struct {
	Latency time.Duration
	Missing map[id.UserID]bool
}

func (m MockUserClient) Exists(_ context.Context, userID id.UserID, _ string) (bool, error) {
	time.Sleep(m.Latency)
	return !m.Missing[userID], nil
}
