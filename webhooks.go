package mailglass

import (
	"net/http"
	"net/url"
)

// GetWebhooks lists the account's webhooks.
func (c *Client) GetWebhooks(params Params) *Request {
	req := c.accountRequest(http.MethodGet, KindList, nil, "webhooks")
	req.SetParams(params)
	return req
}

// CreateWebhook registers a new webhook. callbackURL receives matching
// events; failureNotificationURL is called when the webhook fails
// permanently.
func (c *Client) CreateWebhook(callbackURL, failureNotificationURL string, params Params) *Request {
	req := c.accountRequest(http.MethodPost, KindDictionary, Params{
		"callback_url":             callbackURL,
		"failure_notification_url": failureNotificationURL,
	}, "webhooks")
	req.SetParams(params)
	return req
}

// GetWebhook retrieves the webhook with the given ID.
func (c *Client) GetWebhook(webhookID string, params Params) *Request {
	req := c.accountRequest(http.MethodGet, KindDictionary, nil, "webhooks", url.PathEscape(webhookID))
	req.SetParams(params)
	return req
}

// UpdateWebhook updates the webhook with the given ID.
func (c *Client) UpdateWebhook(webhookID string, params Params) *Request {
	req := c.accountRequest(http.MethodPost, KindDictionary, nil, "webhooks", url.PathEscape(webhookID))
	req.SetParams(params)
	return req
}

// DeleteWebhook deletes the webhook with the given ID.
func (c *Client) DeleteWebhook(webhookID string) *Request {
	return c.accountRequest(http.MethodDelete, KindDictionary, nil, "webhooks", url.PathEscape(webhookID))
}
