package mailglass

import (
	"net/http"
	"net/url"
)

// GetThreads lists the account's threads.
func (c *Client) GetThreads(params Params) *Request {
	req := c.accountRequest(http.MethodGet, KindList, nil, "threads")
	req.SetParams(params)
	return req
}

// GetThread retrieves the thread with the given ID.
func (c *Client) GetThread(threadID string, params Params) *Request {
	req := c.accountRequest(http.MethodGet, KindDictionary, nil, "threads", url.PathEscape(threadID))
	req.SetParams(params)
	return req
}
