// services.go
// -----------
// Shared plumbing for the resource services. Company-scoped services
// resolve their company from an explicit ForCompany override or from the
// client's DefaultCompanyID.
package questdeck

import (
	"errors"
	"net/url"
)

var errCompanyRequired = errors.New("company id required: set WithDefaultCompanyID or use ForCompany")

// resolveCompany picks the effective company id for a scoped call.
func (c *Client) resolveCompany(override string) (string, error) {
	id := override
	if id == "" {
		id = c.cfg.DefaultCompanyID
	}
	if id == "" {
		return "", &RequestError{Err: errCompanyRequired}
	}
	return id, nil
}

func (c *Client) companyPath(override, suffix string) (string, error) {
	id, err := c.resolveCompany(override)
	if err != nil {
		return "", err
	}
	return companiesPath + "/" + url.PathEscape(id) + suffix, nil
}

func campaignPath(campaignID, suffix string) string {
	return "/campaigns/" + url.PathEscape(campaignID) + suffix
}
