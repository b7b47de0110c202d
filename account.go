package mailglass

import "net/http"

// GetAccount retrieves the account's details.
func (c *Client) GetAccount() *Request {
	return c.accountRequest(http.MethodGet, KindDictionary, nil)
}

// UpdateAccount modifies the account's name. Empty arguments are omitted
// from the request.
func (c *Client) UpdateAccount(firstName, lastName string) *Request {
	params := Params{}
	if firstName != "" {
		params["first_name"] = firstName
	}
	if lastName != "" {
		params["last_name"] = lastName
	}
	return c.accountRequest(http.MethodPost, KindDictionary, params)
}

// DeleteAccount deletes the account.
func (c *Client) DeleteAccount() *Request {
	return c.accountRequest(http.MethodDelete, KindDictionary, nil)
}

// GetSyncStatus reports the last time each source of the account was
// synced with its origin mailbox.
func (c *Client) GetSyncStatus() *Request {
	return c.accountRequest(http.MethodGet, KindDictionary, nil, "sync")
}

// ForceSync starts a sync job for all sources under the account.
func (c *Client) ForceSync() *Request {
	return c.accountRequest(http.MethodPost, KindDictionary, nil, "sync")
}
