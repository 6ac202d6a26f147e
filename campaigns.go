// campaigns.go
// ------------
// CampaignsService manages the games a company runs.
package questdeck

import (
	"context"
	"iter"
	"net/url"
)

// CampaignsService provides access to the campaign endpoints of one company.
type CampaignsService struct {
	client    *Client
	companyID string
}

// ForCompany returns a service bound to an explicit company, overriding the
// client's DefaultCompanyID.
func (s *CampaignsService) ForCompany(id string) *CampaignsService {
	return &CampaignsService{client: s.client, companyID: id}
}

func (s *CampaignsService) basePath() (string, error) {
	return s.client.companyPath(s.companyID, "/campaigns")
}

// List fetches one page of campaigns.
func (s *CampaignsService) List(ctx context.Context, limit, offset int) ([]Campaign, *Page, error) {
	path, err := s.basePath()
	if err != nil {
		return nil, nil, err
	}
	return pageOf[Campaign](ctx, s.client, path, limit, offset)
}

// ListAll lazily iterates every campaign of the company.
func (s *CampaignsService) ListAll(ctx context.Context) iter.Seq2[Campaign, error] {
	return func(yield func(Campaign, error) bool) {
		path, err := s.basePath()
		if err != nil {
			yield(Campaign{}, err)
			return
		}
		for c, err := range iterateOf[Campaign](ctx, s.client, path, MaxPageLimit) {
			if !yield(c, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Get fetches one campaign by id.
func (s *CampaignsService) Get(ctx context.Context, id string) (*Campaign, error) {
	path, err := s.basePath()
	if err != nil {
		return nil, err
	}
	var out Campaign
	if err := s.client.Get(ctx, path+"/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create starts a new campaign.
func (s *CampaignsService) Create(ctx context.Context, in CampaignCreate, opts ...RequestOption) (*Campaign, error) {
	path, err := s.basePath()
	if err != nil {
		return nil, err
	}
	var out Campaign
	if err := s.client.Post(ctx, path, in, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to a campaign.
func (s *CampaignsService) Update(ctx context.Context, id string, in CampaignUpdate, opts ...RequestOption) (*Campaign, error) {
	path, err := s.basePath()
	if err != nil {
		return nil, err
	}
	var out Campaign
	if err := s.client.Patch(ctx, path+"/"+url.PathEscape(id), in, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a campaign.
func (s *CampaignsService) Delete(ctx context.Context, id string) error {
	path, err := s.basePath()
	if err != nil {
		return err
	}
	return s.client.Delete(ctx, path+"/"+url.PathEscape(id))
}
