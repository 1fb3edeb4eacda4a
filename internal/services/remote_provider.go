package services

import (
	"context"

	"github.com/haloiq/tax-api/internal/constants"
	"github.com/haloiq/tax-api/internal/types/business"
)

// TaxUpdateClient is the wire client the remote provider delegates to
type TaxUpdateClient interface {
	GetTax(ctx context.Context, code string, query business.ProviderQuery) ([]byte, error)
}

// RemoteProvider resolves codes through the external tax-update provider.
// The provider body is returned verbatim.
type RemoteProvider struct {
	client TaxUpdateClient
}

// NewRemoteProvider creates a new remote provider
func NewRemoteProvider(client TaxUpdateClient) *RemoteProvider {
	return &RemoteProvider{client: client}
}

// Name identifies the provider source
func (p *RemoteProvider) Name() string {
	return constants.ProviderExternal
}

// Resolve performs a single provider call
func (p *RemoteProvider) Resolve(ctx context.Context, code string, query business.ProviderQuery) (*business.ProviderResult, error) {
	body, err := p.client.GetTax(ctx, code, query)
	if err != nil {
		return nil, err
	}

	return &business.ProviderResult{
		Provider: constants.ProviderExternal,
		TaxType:  code,
		Query:    query,
		Gross:    query.Earnings,
		Body:     body,
	}, nil
}
