package document

import "time"

// Document is an uploaded file reduced to its text body. ID is the client
// supplied filename, so a later upload with the same name replaces the body.
type Document struct {
	ID        string    `json:"id"`
	Content   string    `json:"content,omitempty"`
	FileType  string    `json:"file_type,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Size is the length of the body in characters (code points, not bytes).
func (d *Document) Size() int {
	return CharCount(d.Content)
}

// Summary is the listing view of a stored document.
type Summary struct {
	ID   string `json:"id"`
	Size int    `json:"size"`
}

// QuestionRequest is the body of an ask call.
type QuestionRequest struct {
	Question   string `json:"question"`
	DocumentID string `json:"document_id"`
}
