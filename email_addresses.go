package mailglass

import (
	"net/http"
	"net/url"
)

// GetEmailAddresses lists the email addresses used by the account.
func (c *Client) GetEmailAddresses() *Request {
	return c.accountRequest(http.MethodGet, KindList, nil, "email_addresses")
}

// AddEmailAddress associates a new email address alias with the account.
func (c *Client) AddEmailAddress(email string) *Request {
	return c.accountRequest(http.MethodPost, KindDictionary, Params{"email_address": email}, "email_addresses")
}

// UpdateEmailAddress updates an address; set primary to make it the
// account's primary address.
func (c *Client) UpdateEmailAddress(email string, primary bool) *Request {
	return c.accountRequest(http.MethodPost, KindDictionary, Params{"primary": primary}, "email_addresses", url.PathEscape(email))
}

// DeleteEmailAddress disassociates an email address from the account.
func (c *Client) DeleteEmailAddress(email string) *Request {
	return c.accountRequest(http.MethodDelete, KindDictionary, nil, "email_addresses", url.PathEscape(email))
}
