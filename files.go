package mailglass

import (
	"net/http"
	"net/url"
)

// FileListOptions filters a file listing. Address filters accept a
// comma-separated list of email addresses, treated as an OR combination.
type FileListOptions struct {
	Email      string
	To         string
	From       string
	CC         string
	BCC        string
	DateBefore int64
	DateAfter  int64
	// FileName matches attachment names; wrap in '/' for a regular
	// expression.
	FileName         string
	GroupByRevisions bool
	SortOrder        string
	Limit            int
	Offset           int
}

func (o *FileListOptions) apply(req *Request) {
	if o == nil {
		return
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
	if o.DateBefore > 0 {
		req.Set("date_before", o.DateBefore)
	}
	if o.DateAfter > 0 {
		req.Set("date_after", o.DateAfter)
	}
	if o.FileName != "" {
		req.Set("file_name", o.FileName)
	}
	if o.GroupByRevisions {
		req.Set("group_by_revisions", true)
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

// GetFiles lists files found as email attachments.
func (c *Client) GetFiles(opts *FileListOptions) *Request {
	req := c.accountRequest(http.MethodGet, KindList, nil, "files")
	opts.apply(req)
	return req
}

// GetFile retrieves details about a file.
func (c *Client) GetFile(fileID string) *Request {
	return c.accountRequest(http.MethodGet, KindDictionary, nil, "files", url.PathEscape(fileID))
}

// GetFileChanges lists files that can be compared with the given file.
func (c *Client) GetFileChanges(fileID string) *Request {
	return c.accountRequest(http.MethodGet, KindList, nil, "files", url.PathEscape(fileID), "changes")
}

// GetFileContentURL retrieves a public-facing URL for downloading the
// file.
func (c *Client) GetFileContentURL(fileID string) *Request {
	return c.accountRequest(http.MethodGet, KindString, Params{"as_link": true}, "files", url.PathEscape(fileID), "content")
}

// GetFileContent downloads the file's contents.
func (c *Client) GetFileContent(fileID string) *Request {
	return c.accountRequest(http.MethodGet, KindRaw, nil, "files", url.PathEscape(fileID), "content")
}

// GetFileRelated lists files related to the given file, currently based
// on file name similarity.
func (c *Client) GetFileRelated(fileID string) *Request {
	return c.accountRequest(http.MethodGet, KindList, nil, "files", url.PathEscape(fileID), "related")
}

// GetFileRevisions lists revisions of the file attached to other messages
// in the mailbox.
func (c *Client) GetFileRevisions(fileID string) *Request {
	return c.accountRequest(http.MethodGet, KindList, nil, "files", url.PathEscape(fileID), "revisions")
}
