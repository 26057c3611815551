package entity

type NoteStatus string

const (
	NoteRead   NoteStatus = "read"
	NoteUnread NoteStatus = "unread"
)

type Note struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Subject     string     `json:"subject"`
	Content     string     `json:"content"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	HasReminder bool       `json:"hasReminder"`
	Status      NoteStatus `json:"status"`
	Creator     string     `json:"creator"` // free text, not a staff reference
}
