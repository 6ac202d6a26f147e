// characters.go
// -------------
// CharactersService manages the characters of a campaign, including
// portrait uploads.
package questdeck

import (
	"context"
	"iter"
	"net/url"
)

// CharactersService provides access to the character endpoints. Characters
// are scoped by campaign, passed explicitly per call.
type CharactersService struct {
	client *Client
}

// List fetches one page of characters in a campaign.
func (s *CharactersService) List(ctx context.Context, campaignID string, limit, offset int) ([]Character, *Page, error) {
	return pageOf[Character](ctx, s.client, campaignPath(campaignID, "/characters"), limit, offset)
}

// ListAll lazily iterates every character in a campaign.
func (s *CharactersService) ListAll(ctx context.Context, campaignID string) iter.Seq2[Character, error] {
	return iterateOf[Character](ctx, s.client, campaignPath(campaignID, "/characters"), MaxPageLimit)
}

// Get fetches one character by id.
func (s *CharactersService) Get(ctx context.Context, campaignID, id string) (*Character, error) {
	var out Character
	if err := s.client.Get(ctx, campaignPath(campaignID, "/characters/"+url.PathEscape(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a character to a campaign.
func (s *CharactersService) Create(ctx context.Context, campaignID string, in CharacterCreate, opts ...RequestOption) (*Character, error) {
	var out Character
	if err := s.client.Post(ctx, campaignPath(campaignID, "/characters"), in, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to a character.
func (s *CharactersService) Update(ctx context.Context, campaignID, id string, in CharacterUpdate, opts ...RequestOption) (*Character, error) {
	var out Character
	if err := s.client.Patch(ctx, campaignPath(campaignID, "/characters/"+url.PathEscape(id)), in, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a character from its campaign.
func (s *CharactersService) Delete(ctx context.Context, campaignID, id string) error {
	return s.client.Delete(ctx, campaignPath(campaignID, "/characters/"+url.PathEscape(id)))
}

// UploadPortrait attaches a portrait image to a character via multipart
// upload and returns the updated record.
func (s *CharactersService) UploadPortrait(ctx context.Context, campaignID, id, filename string, content []byte) (*Character, error) {
	path := campaignPath(campaignID, "/characters/"+url.PathEscape(id)+"/portrait")
	var out Character
	if err := s.client.Upload(ctx, path, "portrait", filename, content, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
