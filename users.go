// users.go
// --------
// UsersService manages the members of a company.
package questdeck

import (
	"context"
	"iter"
	"net/url"
)

// UsersService provides access to the user endpoints of one company.
type UsersService struct {
	client    *Client
	companyID string
}

// ForCompany returns a service bound to an explicit company, overriding the
// client's DefaultCompanyID.
func (s *UsersService) ForCompany(id string) *UsersService {
	return &UsersService{client: s.client, companyID: id}
}

func (s *UsersService) basePath() (string, error) {
	return s.client.companyPath(s.companyID, "/users")
}

// List fetches one page of users.
func (s *UsersService) List(ctx context.Context, limit, offset int) ([]User, *Page, error) {
	path, err := s.basePath()
	if err != nil {
		return nil, nil, err
	}
	return pageOf[User](ctx, s.client, path, limit, offset)
}

// ListAll lazily iterates every user of the company.
func (s *UsersService) ListAll(ctx context.Context) iter.Seq2[User, error] {
	return func(yield func(User, error) bool) {
		path, err := s.basePath()
		if err != nil {
			yield(User{}, err)
			return
		}
		for u, err := range iterateOf[User](ctx, s.client, path, MaxPageLimit) {
			if !yield(u, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Get fetches one user by id.
func (s *UsersService) Get(ctx context.Context, id string) (*User, error) {
	path, err := s.basePath()
	if err != nil {
		return nil, err
	}
	var out User
	if err := s.client.Get(ctx, path+"/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create invites a user into the company.
func (s *UsersService) Create(ctx context.Context, in UserCreate, opts ...RequestOption) (*User, error) {
	path, err := s.basePath()
	if err != nil {
		return nil, err
	}
	var out User
	if err := s.client.Post(ctx, path, in, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to a user.
func (s *UsersService) Update(ctx context.Context, id string, in UserUpdate, opts ...RequestOption) (*User, error) {
	path, err := s.basePath()
	if err != nil {
		return nil, err
	}
	var out User
	if err := s.client.Patch(ctx, path+"/"+url.PathEscape(id), in, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a user from the company.
func (s *UsersService) Delete(ctx context.Context, id string) error {
	path, err := s.basePath()
	if err != nil {
		return err
	}
	return s.client.Delete(ctx, path+"/"+url.PathEscape(id))
}
