package mailglass

import (
	"net/http"
	"net/url"
)

// MessageListOptions filters a message listing. Address filters accept a
// comma-separated list of email addresses, treated as an OR combination;
// multiple options combine as AND.
type MessageListOptions struct {
	// Subject matches the message subject; wrap in '/' for a regular
	// expression.
	Subject string
	Email   string
	To      string
	From    string
	CC      string
	BCC     string
	// Folder filters by folder name or Gmail label, or a symbolic name
	// such as `\Starred`.
	Folder            string
	DateBefore        int64
	DateAfter         int64
	IndexedBefore     int64
	IndexedAfter      int64
	IncludeThreadSize bool
	IncludeBody       bool
	// IncludeHeaders may be "0", "1", or "raw".
	IncludeHeaders string
	IncludeFlags   bool
	// BodyType restricts returned body parts to one MIME type when
	// IncludeBody is set.
	BodyType      string
	IncludeSource bool
	SortOrder     string
	Limit         int
	Offset        int
}

func (o *MessageListOptions) apply(req *Request) {
	if o == nil {
		return
	}
	if o.Subject != "" {
		req.Set("subject", o.Subject)
	}
	if o.Email != "" {
		req.Set("email", o.Email)
	}
	if o.To != "" {
		req.Set("to", o.To)
	}
	if o.From != "" {
		req.Set("from", o.From)
	}
	if o.CC != "" {
		req.Set("cc", o.CC)
	}
	if o.BCC != "" {
		req.Set("bcc", o.BCC)
	}
	if o.Folder != "" {
		req.Set("folder", o.Folder)
	}
	if o.DateBefore > 0 {
		req.Set("date_before", o.DateBefore)
	}
	if o.DateAfter > 0 {
		req.Set("date_after", o.DateAfter)
	}
	if o.IndexedBefore > 0 {
		req.Set("indexed_before", o.IndexedBefore)
	}
	if o.IndexedAfter > 0 {
		req.Set("indexed_after", o.IndexedAfter)
	}
	if o.IncludeThreadSize {
		req.Set("include_thread_size", true)
	}
	if o.IncludeBody {
		req.Set("include_body", true)
	}
	if o.IncludeHeaders != "" {
		req.Set("include_headers", o.IncludeHeaders)
	}
	if o.IncludeFlags {
		req.Set("include_flags", true)
	}
	if o.BodyType != "" {
		req.Set("body_type", o.BodyType)
	}
	if o.IncludeSource {
		req.Set("include_source", true)
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

// MessageOptions configures a single-message fetch.
type MessageOptions struct {
	IncludeThreadSize bool
	IncludeBody       bool
	// IncludeHeaders may be "0", "1", or "raw".
	IncludeHeaders string
	IncludeFlags   bool
	BodyType       string
	IncludeSource  bool
}

func (o *MessageOptions) apply(req *Request) {
	if o == nil {
		return
	}
	if o.IncludeThreadSize {
		req.Set("include_thread_size", true)
	}
	if o.IncludeBody {
		req.Set("include_body", true)
	}
	if o.IncludeHeaders != "" {
		req.Set("include_headers", o.IncludeHeaders)
	}
	if o.IncludeFlags {
		req.Set("include_flags", true)
	}
	if o.BodyType != "" {
		req.Set("body_type", o.BodyType)
	}
	if o.IncludeSource {
		req.Set("include_source", true)
	}
}

// MessageFlags describes IMAP flags to set or unset on a message. Nil
// fields are left untouched.
type MessageFlags struct {
	Seen     *bool
	Answered *bool
	Flagged  *bool
	Deleted  *bool
	Draft    *bool
}

func (f *MessageFlags) apply(req *Request) {
	if f == nil {
		return
	}
	setFlag := func(name string, v *bool) {
		if v != nil {
			req.Set(name, *v)
		}
	}
	setFlag("flag_seen", f.Seen)
	setFlag("flag_answered", f.Answered)
	setFlag("flag_flagged", f.Flagged)
	setFlag("flag_deleted", f.Deleted)
	setFlag("flag_draft", f.Draft)
}

// MessageUpdateOptions configures a message copy/move.
type MessageUpdateOptions struct {
	// DstSource is the label of the source the message is copied to, when
	// moving across sources.
	DstSource string
	// Move copies by default; set Move to move instead.
	Move  bool
	Flags *MessageFlags
}

// GetMessages lists the account's messages.
func (c *Client) GetMessages(opts *MessageListOptions) *Request {
	req := c.accountRequest(http.MethodGet, KindList, nil, "messages")
	opts.apply(req)
	return req
}

// GetMessage retrieves file, contact, and other information about a
// message. messageID can be the message_id or email_message_id property
// of the message.
func (c *Client) GetMessage(messageID string, opts *MessageOptions) *Request {
	req := c.accountRequest(http.MethodGet, KindDictionary, nil, "messages", url.PathEscape(messageID))
	opts.apply(req)
	return req
}

// UpdateMessage copies or moves a message to destinationFolder.
func (c *Client) UpdateMessage(messageID, destinationFolder string, opts *MessageUpdateOptions) *Request {
	req := c.accountRequest(http.MethodPost, KindDictionary, Params{"dst_folder": destinationFolder}, "messages", url.PathEscape(messageID))
	if opts != nil {
		if opts.DstSource != "" {
			req.Set("dst_source", opts.DstSource)
		}
		if opts.Move {
			req.Set("move", true)
		}
		opts.Flags.apply(req)
	}
	return req
}

// DeleteMessage deletes a message from the source email server.
func (c *Client) DeleteMessage(messageID string) *Request {
	return c.accountRequest(http.MethodDelete, KindDictionary, nil, "messages", url.PathEscape(messageID))
}

// GetMessageBody fetches the text portions of a message body. bodyType
// restricts the response to "text/plain" or "text/html"; empty returns
// both. Bodies are fetched from the origin server on demand.
func (c *Client) GetMessageBody(messageID, bodyType string) *Request {
	req := c.accountRequest(http.MethodGet, KindList, nil, "messages", url.PathEscape(messageID), "body")
	if bodyType != "" {
		req.Set("type", bodyType)
	}
	return req
}

// GetMessageFlags retrieves the message's current IMAP flags from the
// origin server.
func (c *Client) GetMessageFlags(messageID string) *Request {
	return c.accountRequest(http.MethodGet, KindDictionary, nil, "messages", url.PathEscape(messageID), "flags")
}

// UpdateMessageFlags sets or unsets IMAP flags on the message.
func (c *Client) UpdateMessageFlags(messageID string, flags *MessageFlags) *Request {
	req := c.accountRequest(http.MethodPost, KindDictionary, nil, "messages", url.PathEscape(messageID), "flags")
	flags.apply(req)
	return req
}

// GetMessageFolders lists the folders (or Gmail labels) the message
// appears in.
func (c *Client) GetMessageFolders(messageID string) *Request {
	return c.accountRequest(http.MethodGet, KindList, nil, "messages", url.PathEscape(messageID), "folders")
}

// UpdateMessageFolders adds and/or removes one folder the message should
// appear in. Empty arguments are omitted.
func (c *Client) UpdateMessageFolders(messageID, addToFolder, removeFromFolder string) *Request {
	req := c.accountRequest(http.MethodPost, KindDictionary, nil, "messages", url.PathEscape(messageID), "folders")
	if addToFolder != "" {
		req.Set("add", addToFolder)
	}
	if removeFromFolder != "" {
		req.Set("remove", removeFromFolder)
	}
	return req
}

// SetMessageFolders overwrites the set of folders a message appears in.
// Symbolic names refer to special-use folder attributes (RFC 6154).
func (c *Client) SetMessageFolders(messageID string, folderNames, symbolicFolderNames []string) *Request {
	req := c.accountRequest(http.MethodPut, KindDictionary, nil, "messages", url.PathEscape(messageID), "folders")
	if len(folderNames) > 0 {
		req.Set("name", folderNames)
	}
	if len(symbolicFolderNames) > 0 {
		req.Set("symbolic_name", symbolicFolderNames)
	}
	return req
}

// GetMessageHeaders fetches the complete parsed headers of a message from
// the origin server. Every header value is an array.
func (c *Client) GetMessageHeaders(messageID string) *Request {
	return c.accountRequest(http.MethodGet, KindDictionary, nil, "messages", url.PathEscape(messageID), "headers")
}

// GetMessageRawHeaders fetches the complete headers as a raw unparsed
// string.
func (c *Client) GetMessageRawHeaders(messageID string) *Request {
	return c.accountRequest(http.MethodGet, KindString, Params{"raw": true}, "messages", url.PathEscape(messageID), "headers")
}

// GetMessageSource fetches the raw RFC 822 source of the message,
// attachments included, with no parsing or decoding applied.
func (c *Client) GetMessageSource(messageID string) *Request {
	return c.accountRequest(http.MethodGet, KindRaw, nil, "messages", url.PathEscape(messageID), "source")
}

// ThreadOptions configures a message-thread fetch.
type ThreadOptions struct {
	IncludeBody bool
	// IncludeHeaders may be "0", "1", or "raw".
	IncludeHeaders string
	IncludeFlags   bool
	BodyType       string
	// Limit caps the messages included in the response; the maximum is 100.
	Limit  int
	Offset int
}

func (o *ThreadOptions) apply(req *Request) {
	if o == nil {
		return
	}
	if o.IncludeBody {
		req.Set("include_body", true)
	}
	if o.IncludeHeaders != "" {
		req.Set("include_headers", o.IncludeHeaders)
	}
	if o.IncludeFlags {
		req.Set("include_flags", true)
	}
	if o.BodyType != "" {
		req.Set("body_type", o.BodyType)
	}
	if o.Limit > 0 {
		req.Set("limit", o.Limit)
	}
	if o.Offset > 0 {
		req.Set("offset", o.Offset)
	}
}

// GetMessageThread lists the other messages in the same thread as the
// given message.
func (c *Client) GetMessageThread(messageID string, opts *ThreadOptions) *Request {
	req := c.accountRequest(http.MethodGet, KindDictionary, nil, "messages", url.PathEscape(messageID), "thread")
	opts.apply(req)
	return req
}
