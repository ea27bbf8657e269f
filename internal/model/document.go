package model

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"docvault/internal/format"
)

const (
	// DefaultMimeType is used when a document is built without a mime type.
	DefaultMimeType = "text/plain"
	// DownloadCacheSeconds is the cache lifetime advertised by DownloadURL.
	DownloadCacheSeconds = 86400

	// DisplayDocumentPath and DownloadDocumentPath are the page routes, relative to the application root URL.
	DisplayDocumentPath  = "pages/render"
	DownloadDocumentPath = "pages/document"

	// OperationDisplayDocument and OperationDownloadDocument are the values of the "operation" query parameter.
	OperationDisplayDocument  = "display_document"
	OperationDownloadDocument = "download_document"

	previewMaxLen = 100
)

var previewMimeTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpg":  {},
	"image/jpeg": {},
	"image/gif":  {},
}

// Document is the in-memory value of a binary attachment held by one field of an object.
// Its content may be absent, which is different from a present but zero-length content.
// A Document is not safe for concurrent mutation.
type Document struct {
	data           []byte
	present        bool
	mimeType       string
	fileName       string
	downloadsCount int
}

// NewDocument builds a document. A nil data slice means the content is absent.
// An empty mime type falls back to DefaultMimeType and a negative count reads as zero.
func NewDocument(data []byte, mimeType, fileName string, downloadsCount int) *Document {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	if downloadsCount < 0 {
		downloadsCount = 0
	}
	return &Document{
		data:           data,
		present:        data != nil,
		mimeType:       mimeType,
		fileName:       fileName,
		downloadsCount: downloadsCount,
	}
}

// IsEmpty reports whether the content is absent.
func (d *Document) IsEmpty() bool {
	return !d.present
}

// MimeType returns the full mime type, e.g. "image/png".
func (d *Document) MimeType() string {
	return d.mimeType
}

// MainMimeType returns the part of the mime type before the first slash, e.g. "image".
func (d *Document) MainMimeType() string {
	if i := strings.IndexByte(d.mimeType, '/'); i > 0 {
		return d.mimeType[:i]
	}
	return d.mimeType
}

// Size returns the content length in bytes.
func (d *Document) Size() int {
	return len(d.data)
}

// FormattedSize returns the size as a human readable string such as "12.34 KB".
func (d *Document) FormattedSize(precision int) string {
	return format.Bytes(int64(d.Size()), precision)
}

// Data returns the raw content, nil when absent.
func (d *Document) Data() []byte {
	return d.data
}

// FileName returns the original file name.
func (d *Document) FileName() string {
	return d.fileName
}

// DownloadsCount returns how many times the document was downloaded as an attachment.
func (d *Document) DownloadsCount() int {
	return d.downloadsCount
}

// IncreaseDownloadsCount adds n to the downloads counter. Non-positive values are ignored.
// The caller persists the new value.
func (d *Document) IncreaseDownloadsCount(n int) {
	if n <= 0 {
		return
	}
	d.downloadsCount += n
}

// Signature returns the hex encoded MD5 of the content.
func (d *Document) Signature() string {
	sum := md5.Sum(d.data)
	return hex.EncodeToString(sum[:])
}

// IsPreviewAvailable reports whether the mime type is an image browsers can render inline.
func (d *Document) IsPreviewAvailable() bool {
	_, ok := previewMimeTypes[d.mimeType]
	return ok
}

// HTML returns a short HTML description of the document.
// While the content is absent only the file name is shown, as on upload forms.
func (d *Document) HTML() string {
	name := html.EscapeString(d.fileName)
	if d.IsEmpty() {
		return name
	}
	return fmt.Sprintf("%s [ %s, size: %d byte(s) ]<br/>", name, html.EscapeString(d.mimeType), d.Size())
}

// DisplayURL returns the absolute URL rendering the document inline.
func (d *Document) DisplayURL(appRoot string, ref ObjectRef) string {
	return pageURL(appRoot, DisplayDocumentPath, OperationDisplayDocument, ref)
}

// DownloadURL returns the absolute URL downloading the document as an attachment.
// The content signature changes with the content, so the response can be cached.
func (d *Document) DownloadURL(appRoot string, ref ObjectRef) string {
	return pageURL(appRoot, DownloadDocumentPath, OperationDownloadDocument, ref) +
		"&s=" + d.Signature() +
		"&cache=" + strconv.Itoa(DownloadCacheSeconds)
}

// DisplayLink returns an anchor opening the document inline in a new window.
func (d *Document) DisplayLink(appRoot string, ref ObjectRef) string {
	return fmt.Sprintf("<a href=\"%s\" target=\"_blank\">%s</a>\n",
		html.EscapeString(d.DisplayURL(appRoot, ref)), html.EscapeString(d.fileName))
}

// DownloadLink returns an anchor downloading the document.
func (d *Document) DownloadLink(appRoot string, ref ObjectRef) string {
	return fmt.Sprintf("<a href=\"%s\">%s</a>\n",
		html.EscapeString(pageURL(appRoot, DownloadDocumentPath, OperationDownloadDocument, ref)),
		html.EscapeString(d.fileName))
}

// String returns a printable preview of the first bytes of the content.
func (d *Document) String() string {
	if d.IsEmpty() {
		return ""
	}

	head := d.data
	if len(head) > previewMaxLen {
		head = head[:previewMaxLen]
	}

	var b strings.Builder
	b.WriteString(strings.Map(printable, string(head)))
	if len(d.data) > previewMaxLen {
		b.WriteString("...")
	}
	fmt.Fprintf(&b, " (%d bytes)", len(d.data))
	return b.String()
}

func printable(r rune) rune {
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return '.'
	}
	return r
}

func pageURL(appRoot, path, operation string, ref ObjectRef) string {
	return strings.TrimRight(appRoot, "/") + "/" + path +
		"?operation=" + operation +
		"&class=" + url.QueryEscape(ref.Class) +
		"&id=" + url.QueryEscape(ref.ID) +
		"&field=" + url.QueryEscape(ref.Field)
}
