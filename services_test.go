package questdeck

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathOf(t *testing.T, rawURL string) string {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Path
}

func TestCompaniesCRUDPaths(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(201, nil, []byte(`{"id":"co1","name":"Acme"}`))
	ft.enqueue(200, nil, []byte(`{"id":"co1","name":"Acme"}`))
	ft.enqueue(200, nil, []byte(`{"id":"co1","name":"Acme Ltd"}`))
	ft.enqueue(204, nil, nil)
	c, _ := newTestClient(t, ft)
	ctx := context.Background()

	created, err := c.Companies.Create(ctx, CompanyCreate{Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "co1", created.ID)

	_, err = c.Companies.Get(ctx, "co1")
	require.NoError(t, err)

	name := "Acme Ltd"
	updated, err := c.Companies.Update(ctx, "co1", CompanyUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", updated.Name)

	require.NoError(t, c.Companies.Delete(ctx, "co1"))

	methods := []string{"POST", "GET", "PATCH", "DELETE"}
	paths := []string{"/companies", "/companies/co1", "/companies/co1", "/companies/co1"}
	for i, call := range ft.calls {
		assert.Equal(t, methods[i], call.method)
		assert.Equal(t, paths[i], pathOf(t, call.url))
	}
}

func TestCampaignsUseDefaultCompanyScope(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(201, nil, []byte(`{"id":"camp1","name":"Dragons"}`))
	c, _ := newTestClient(t, ft, WithDefaultCompanyID("co1"))

	created, err := c.Campaigns.Create(context.Background(), CampaignCreate{
		Name:       "Dragons",
		GameSystem: "dnd5e",
	})
	require.NoError(t, err)
	assert.Equal(t, "camp1", created.ID)
	assert.Equal(t, "/companies/co1/campaigns", pathOf(t, ft.calls[0].url))
	assert.NotEmpty(t, ft.calls[0].header.Get(HeaderIdempotencyKey))
}

func TestCampaignsForCompanyOverridesDefault(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, []byte(`{"id":"camp2"}`))
	c, _ := newTestClient(t, ft, WithDefaultCompanyID("co1"))

	_, err := c.Campaigns.ForCompany("co2").Get(context.Background(), "camp2")
	require.NoError(t, err)
	assert.Equal(t, "/companies/co2/campaigns/camp2", pathOf(t, ft.calls[0].url))
}

func TestCampaignsMissingCompanyScope(t *testing.T) {
	ft := &fakeTransport{}
	c, _ := newTestClient(t, ft)

	_, _, err := c.Campaigns.List(context.Background(), 10, 0)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 0, ft.callCount())
}

func TestUsersCreateValidatesEmail(t *testing.T) {
	ft := &fakeTransport{}
	c, _ := newTestClient(t, ft, WithDefaultCompanyID("co1"))

	_, err := c.Users.Create(context.Background(), UserCreate{Email: "not-an-email", Name: "Ada"})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 0, ft.callCount())
}

func TestUsersListAllWalksPages(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, pageJSON(t, []string{"u1", "u2"}, 2, 0, 3))
	ft.enqueue(200, nil, pageJSON(t, []string{"u3"}, 2, 2, 3))
	c, _ := newTestClient(t, ft, WithDefaultCompanyID("co1"))

	var ids []string
	for u, err := range c.Users.ListAll(context.Background()) {
		require.NoError(t, err)
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"u1", "u2", "u3"}, ids)
	assert.Equal(t, "/companies/co1/users", pathOf(t, ft.calls[0].url))
}

func TestCharactersScopedByCampaign(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(201, nil, []byte(`{"id":"ch1","name":"Tordek","class":"fighter","level":3}`))
	c, _ := newTestClient(t, ft)

	created, err := c.Characters.Create(context.Background(), "camp1", CharacterCreate{
		Name:  "Tordek",
		Class: "fighter",
		Level: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tordek", created.Name)
	assert.Equal(t, "/campaigns/camp1/characters", pathOf(t, ft.calls[0].url))
}

func TestCharactersCreateRejectsLevelZero(t *testing.T) {
	ft := &fakeTransport{}
	c, _ := newTestClient(t, ft)

	_, err := c.Characters.Create(context.Background(), "camp1", CharacterCreate{
		Name:  "Tordek",
		Class: "fighter",
		Level: 0,
	})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 0, ft.callCount())
}

func TestCharactersUploadPortraitPath(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, []byte(`{"id":"ch1","portrait_url":"https://cdn/p.png"}`))
	c, _ := newTestClient(t, ft)

	out, err := c.Characters.UploadPortrait(context.Background(), "camp1", "ch1", "p.png", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/p.png", out.PortraitURL)
	assert.Equal(t, "/campaigns/camp1/characters/ch1/portrait", pathOf(t, ft.calls[0].url))
	assert.True(t, strings.HasPrefix(ft.calls[0].header.Get("Content-Type"), "multipart/form-data"))
}

func TestDiceRollsRoll(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(201, nil, []byte(`{"id":"r1","notation":"2d20+5","result":27,"rolls":[14,8]}`))
	c, _ := newTestClient(t, ft)

	roll, err := c.DiceRolls.Roll(context.Background(), "camp1", DiceRollCreate{Notation: "2d20+5"})
	require.NoError(t, err)
	assert.Equal(t, 27, roll.Result)
	assert.Equal(t, []int{14, 8}, roll.Rolls)
	assert.Equal(t, "/campaigns/camp1/rolls", pathOf(t, ft.calls[0].url))
	assert.JSONEq(t, `{"notation":"2d20+5"}`, string(ft.calls[0].body))
}

func TestDiceRollsRollRequiresNotation(t *testing.T) {
	ft := &fakeTransport{}
	c, _ := newTestClient(t, ft)

	_, err := c.DiceRolls.Roll(context.Background(), "camp1", DiceRollCreate{})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 0, ft.callCount())
}

func TestIDsArePathEscaped(t *testing.T) {
	ft := &fakeTransport{}
	ft.enqueue(200, nil, []byte(`{"id":"weird/id"}`))
	c, _ := newTestClient(t, ft)

	_, err := c.Companies.Get(context.Background(), "weird/id")
	require.NoError(t, err)
	assert.Contains(t, ft.calls[0].url, "/companies/weird%2Fid")
}
