package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockTaxEngineForTest creates a new mock TaxEngine for testing
func NewMockTaxEngineForTest(t *testing.T) *MockTaxEngine {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxEngine(ctrl)
}

// NewMockTaxProviderForTest creates a new mock TaxProvider for testing
func NewMockTaxProviderForTest(t *testing.T) *MockTaxProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxProvider(ctrl)
}
