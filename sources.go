package mailglass

import (
	"net/http"
	"net/url"
)

// SourceCreateOptions carries the optional fields of a source creation.
type SourceCreateOptions struct {
	OriginIP             string
	ExpungeOnDelete      bool
	SyncPeriod           string
	RawFileList          bool
	Password             string
	ProviderRefreshToken string
	ProviderConsumerKey  string
	CallbackURL          string
}

func (o *SourceCreateOptions) apply(req *Request) {
	if o == nil {
		return
	}
	if o.OriginIP != "" {
		req.Set("origin_ip", o.OriginIP)
	}
	if o.ExpungeOnDelete {
		req.Set("expunge_on_deleted_flag", true)
	}
	if o.SyncPeriod != "" {
		req.Set("sync_period", o.SyncPeriod)
	}
	if o.RawFileList {
		req.Set("raw_file_list", true)
	}
	if o.Password != "" {
		req.Set("password", o.Password)
	}
	if o.ProviderRefreshToken != "" {
		req.Set("provider_refresh_token", o.ProviderRefreshToken)
	}
	if o.ProviderConsumerKey != "" {
		req.Set("provider_consumer_key", o.ProviderConsumerKey)
	}
	if o.CallbackURL != "" {
		req.Set("callback_url", o.CallbackURL)
	}
}

// SourceUpdateOptions carries the modifiable fields of a source.
type SourceUpdateOptions struct {
	Status               string
	ForceStatusCheck     bool
	Password             string
	ProviderRefreshToken string
	ProviderConsumerKey  string
	ExpungeOnDelete      *bool
	SyncAllFolders       bool
}

func (o *SourceUpdateOptions) apply(req *Request) {
	if o == nil {
		return
	}
	if o.Status != "" {
		req.Set("status", o.Status)
	}
	if o.ForceStatusCheck {
		req.Set("force_status_check", true)
	}
	if o.Password != "" {
		req.Set("password", o.Password)
	}
	if o.ProviderRefreshToken != "" {
		req.Set("provider_refresh_token", o.ProviderRefreshToken)
	}
	if o.ProviderConsumerKey != "" {
		req.Set("provider_consumer_key", o.ProviderConsumerKey)
	}
	if o.ExpungeOnDelete != nil {
		req.Set("expunge_on_deleted_flag", *o.ExpungeOnDelete)
	}
	if o.SyncAllFolders {
		req.Set("sync_all_folders", true)
	}
}

// GetSources lists the IMAP sources assigned to the account. status and
// statusOK filter by source state when non-empty.
func (c *Client) GetSources(status string, statusOK *bool) *Request {
	req := c.accountRequest(http.MethodGet, KindList, nil, "sources")
	if status != "" {
		req.Set("status", status)
	}
	if statusOK != nil {
		req.Set("status_ok", *statusOK)
	}
	return req
}

// CreateSource adds a mailbox source to the account. The connect-token
// handshake (AuthFlow) is usually preferred; CreateSource is for servers
// the client holds direct IMAP credentials for.
func (c *Client) CreateSource(email, server, username string, useSSL bool, port int, sourceType string, opts *SourceCreateOptions) *Request {
	req := c.accountRequest(http.MethodPost, KindDictionary, Params{
		"email":    email,
		"server":   server,
		"username": username,
		"use_ssl":  useSSL,
		"port":     port,
		"type":     sourceType,
	}, "sources")
	opts.apply(req)
	return req
}

// GetSource retrieves the parameters and status of a source. "0" is an
// alias for the account's first source.
func (c *Client) GetSource(label string) *Request {
	return c.accountRequest(http.MethodGet, KindDictionary, nil, "sources", url.PathEscape(label))
}

// UpdateSource modifies a source.
func (c *Client) UpdateSource(label string, opts *SourceUpdateOptions) *Request {
	req := c.accountRequest(http.MethodPost, KindDictionary, nil, "sources", url.PathEscape(label))
	opts.apply(req)
	return req
}

// DeleteSource removes a source from the account.
func (c *Client) DeleteSource(label string) *Request {
	return c.accountRequest(http.MethodDelete, KindDictionary, nil, "sources", url.PathEscape(label))
}

// GetSourceFolders lists the folders of a source. Extended counts and the
// no-cache flag both force a round trip to the origin server.
func (c *Client) GetSourceFolders(label string, includeExtendedCounts, noCache bool) *Request {
	req := c.accountRequest(http.MethodGet, KindList, nil, "sources", url.PathEscape(label), "folders")
	if includeExtendedCounts {
		req.Set("include_extended_counts", true)
	}
	if noCache {
		req.Set("no_cache", true)
	}
	return req
}

// GetSourceFolder retrieves information about a folder. folderPath uses
// '/' as the hierarchy delimiter unless delim overrides it.
func (c *Client) GetSourceFolder(label, folderPath string, includeExtendedCounts bool, delim string) *Request {
	req := c.accountRequest(http.MethodGet, KindDictionary, nil, "sources", url.PathEscape(label), "folders", url.PathEscape(folderPath))
	if includeExtendedCounts {
		req.Set("include_extended_counts", true)
	}
	if delim != "" {
		req.Set("delim", delim)
	}
	return req
}

// CreateSourceFolder creates a folder on the source.
func (c *Client) CreateSourceFolder(label, folderPath, delim string) *Request {
	req := c.accountRequest(http.MethodPut, KindDictionary, nil, "sources", url.PathEscape(label), "folders", url.PathEscape(folderPath))
	if delim != "" {
		req.Set("delim", delim)
	}
	return req
}

// DeleteSourceFolder permanently removes a folder from the source,
// clearing out all messages in it.
func (c *Client) DeleteSourceFolder(label, folderPath string) *Request {
	return c.accountRequest(http.MethodDelete, KindDictionary, nil, "sources", url.PathEscape(label), "folders", url.PathEscape(folderPath))
}

// ExpungeSourceFolder runs an EXPUNGE on the origin server, permanently
// removing messages flagged for deletion.
func (c *Client) ExpungeSourceFolder(label, folderPath string) *Request {
	return c.accountRequest(http.MethodPost, KindDictionary, nil, "sources", url.PathEscape(label), "folders", url.PathEscape(folderPath), "expunge")
}

// FolderMessagesOptions filters a live folder listing.
type FolderMessagesOptions struct {
	IncludeThreadSize bool
	IncludeBody       bool
	BodyType          string
	// IncludeHeaders may be "0", "1", or "raw".
	IncludeHeaders string
	IncludeFlags   bool
	// FlagSeen restricts the listing to read (true) or unread (false)
	// messages.
	FlagSeen *bool
	Async    bool
	Limit    int
	Offset   int
}

func (o *FolderMessagesOptions) apply(req *Request) {
	if o == nil {
		return
	}
	if o.IncludeThreadSize {
		req.Set("include_thread_size", true)
	}
	if o.IncludeBody {
		req.Set("include_body", true)
	}
	if o.BodyType != "" {
		req.Set("body_type", o.BodyType)
	}
	if o.IncludeHeaders != "" {
		req.Set("include_headers", o.IncludeHeaders)
	}
	if o.IncludeFlags {
		req.Set("include_flags", true)
	}
	if o.FlagSeen != nil {
		req.Set("flag_seen", *o.FlagSeen)
	}
	if o.Async {
		req.Set("async", true)
	}
	if o.Limit > 0 {
		req.Set("limit", o.Limit)
	}
	if o.Offset > 0 {
		req.Set("offset", o.Offset)
	}
}

// GetSourceFolderMessages lists a folder's messages after checking the
// origin server for new mail, so the response reflects the server at call
// time. Expect a slower response than GetMessages.
func (c *Client) GetSourceFolderMessages(label, folderPath string, opts *FolderMessagesOptions) *Request {
	req := c.accountRequest(http.MethodGet, KindList, nil, "sources", url.PathEscape(label), "folders", url.PathEscape(folderPath), "messages")
	opts.apply(req)
	return req
}

// GetSourceSyncStatus reports the last time the source was synced with
// the origin mailbox.
func (c *Client) GetSourceSyncStatus(label string) *Request {
	return c.accountRequest(http.MethodGet, KindDictionary, nil, "sources", url.PathEscape(label), "sync")
}

// ForceSourceSync starts a sync job for the source.
func (c *Client) ForceSourceSync(label string) *Request {
	return c.accountRequest(http.MethodPost, KindDictionary, nil, "sources", url.PathEscape(label), "sync")
}
