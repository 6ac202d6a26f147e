// companies.go
// ------------
// CompaniesService manages tenants. Companies are the only top-level
// resource; everything else hangs off a company or a campaign.
package questdeck

import (
	"context"
	"iter"
	"net/url"
)

const companiesPath = "/companies"

// CompaniesService provides access to the company endpoints.
type CompaniesService struct {
	client *Client
}

// List fetches one page of companies.
func (s *CompaniesService) List(ctx context.Context, limit, offset int) ([]Company, *Page, error) {
	return pageOf[Company](ctx, s.client, companiesPath, limit, offset)
}

// ListAll lazily iterates every company.
func (s *CompaniesService) ListAll(ctx context.Context) iter.Seq2[Company, error] {
	return iterateOf[Company](ctx, s.client, companiesPath, MaxPageLimit)
}

// Get fetches one company by id.
func (s *CompaniesService) Get(ctx context.Context, id string) (*Company, error) {
	var out Company
	if err := s.client.Get(ctx, companiesPath+"/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new company.
func (s *CompaniesService) Create(ctx context.Context, in CompanyCreate, opts ...RequestOption) (*Company, error) {
	var out Company
	if err := s.client.Post(ctx, companiesPath, in, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to a company.
func (s *CompaniesService) Update(ctx context.Context, id string, in CompanyUpdate, opts ...RequestOption) (*Company, error) {
	var out Company
	if err := s.client.Patch(ctx, companiesPath+"/"+url.PathEscape(id), in, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a company and everything it owns.
func (s *CompaniesService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, companiesPath+"/"+url.PathEscape(id))
}
