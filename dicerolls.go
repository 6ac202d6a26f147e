// dicerolls.go
// ------------
// DiceRollsService records and lists dice rolls. Rolls are resolved
// server-side so every participant sees the same result.
package questdeck

import (
	"context"
	"iter"
	"net/url"
)

// DiceRollsService provides access to the dice roll endpoints. Rolls are
// scoped by campaign, passed explicitly per call.
type DiceRollsService struct {
	client *Client
}

// Roll submits a dice notation (e.g. "2d20+5") and returns the resolved
// roll.
func (s *DiceRollsService) Roll(ctx context.Context, campaignID string, in DiceRollCreate, opts ...RequestOption) (*DiceRoll, error) {
	var out DiceRoll
	if err := s.client.Post(ctx, campaignPath(campaignID, "/rolls"), in, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches one recorded roll by id.
func (s *DiceRollsService) Get(ctx context.Context, campaignID, id string) (*DiceRoll, error) {
	var out DiceRoll
	if err := s.client.Get(ctx, campaignPath(campaignID, "/rolls/"+url.PathEscape(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List fetches one page of the campaign's roll history, most recent first.
func (s *DiceRollsService) List(ctx context.Context, campaignID string, limit, offset int) ([]DiceRoll, *Page, error) {
	return pageOf[DiceRoll](ctx, s.client, campaignPath(campaignID, "/rolls"), limit, offset)
}

// ListAll lazily iterates the campaign's entire roll history.
func (s *DiceRollsService) ListAll(ctx context.Context, campaignID string) iter.Seq2[DiceRoll, error] {
	return iterateOf[DiceRoll](ctx, s.client, campaignPath(campaignID, "/rolls"), MaxPageLimit)
}
