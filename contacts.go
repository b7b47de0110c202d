package mailglass

import (
	"net/http"
	"net/url"
)

// ContactListOptions filters a contact listing.
type ContactListOptions struct {
	Search string
	// Active bounds: contacts with messages in the given Unix time range.
	ActiveBefore int64
	ActiveAfter  int64
	SortBy       string
	SortOrder    string
	Limit        int
	Offset       int
}

func (o *ContactListOptions) apply(req *Request) {
	if o == nil {
		return
	}
	if o.Search != "" {
		req.Set("search", o.Search)
	}
	if o.ActiveBefore > 0 {
		req.Set("active_before", o.ActiveBefore)
	}
	if o.ActiveAfter > 0 {
		req.Set("active_after", o.ActiveAfter)
	}
	if o.SortBy != "" {
		req.Set("sort_by", o.SortBy)
	}
	if o.SortOrder != "" {
		req.Set("sort_order", o.SortOrder)
	}
	if o.Limit > 0 {
		req.Set("limit", o.Limit)
	}
	if o.Offset > 0 {
		req.Set("offset", o.Offset)
	}
}

// GetContacts lists the account's contacts. The response is a dictionary
// wrapping the matches plus paging totals.
func (c *Client) GetContacts(opts *ContactListOptions) *Request {
	req := c.accountRequest(http.MethodGet, KindDictionary, nil, "contacts")
	opts.apply(req)
	return req
}

// GetContact retrieves the contact with the given email address.
func (c *Client) GetContact(email string) *Request {
	return c.accountRequest(http.MethodGet, KindDictionary, nil, "contacts", url.PathEscape(email))
}

// GetContactFiles lists the latest attachments exchanged with a contact.
func (c *Client) GetContactFiles(email string) *Request {
	return c.accountRequest(http.MethodGet, KindList, nil, "contacts", url.PathEscape(email), "files")
}

// GetContactMessages lists the latest messages exchanged with a contact.
func (c *Client) GetContactMessages(email string) *Request {
	return c.accountRequest(http.MethodGet, KindList, nil, "contacts", url.PathEscape(email), "messages")
}

// GetContactThreads lists the latest threads exchanged with a contact.
func (c *Client) GetContactThreads(email string) *Request {
	return c.accountRequest(http.MethodGet, KindList, nil, "contacts", url.PathEscape(email), "threads")
}
