package model

import "time"

// ObjectRef names the document slot held by one field of an object.
type ObjectRef struct {
	Class string `json:"class"`
	ID    string `json:"id"`
	Field string `json:"field"`
}

// Object is a stored record of some class. Attributes hold plain string values,
// secrets included, and are never rendered as is by the HTTP layer.
type Object struct {
	Class      string            `json:"class"`
	ID         string            `json:"id"`
	Attributes map[string]string `json:"-"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Attribute returns the value of the named attribute.
func (o *Object) Attribute(code string) (string, bool) {
	v, ok := o.Attributes[code]
	return v, ok
}

// Ref returns the reference to the given document field of the object.
func (o *Object) Ref(field string) ObjectRef {
	return ObjectRef{Class: o.Class, ID: o.ID, Field: field}
}

// Attachment is the persisted metadata of a document slot.
// The content itself lives in object storage under StoragePath, which is never rendered.
type Attachment struct {
	Ref            ObjectRef `json:"ref"`
	FileName       string    `json:"file_name"`
	MimeType       string    `json:"mime_type"`
	Size           int64     `json:"size"`
	StoragePath    string    `json:"-"`
	DownloadsCount int       `json:"downloads_count"`
	UpdatedAt      time.Time `json:"updated_at"`
}
