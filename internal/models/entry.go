package models

import "time"

// TimeLayout is the layout used to display entry timestamps
const TimeLayout = "2006-01-02 15:04:05"

// SearchEntry represents a word the user successfully looked up
type SearchEntry struct {
	Word string    `json:"word"`
	Time time.Time `json:"time"`
}

// FormattedTime returns the entry time in TimeLayout
func (e SearchEntry) FormattedTime() string {
	return e.Time.Format(TimeLayout)
}

// BookmarkEntry represents a word the user saved for later
type BookmarkEntry struct {
	Word string    `json:"word"`
	Time time.Time `json:"time"`
}

// FormattedTime returns the entry time in TimeLayout
func (e BookmarkEntry) FormattedTime() string {
	return e.Time.Format(TimeLayout)
}

// BookmarkRequest represents a request to bookmark a word
type BookmarkRequest struct {
	Word string `json:"word" validate:"required"`
}

// BookmarkResponse reports whether a bookmark was added
type BookmarkResponse struct {
	Word  string `json:"word"`
	Added bool   `json:"added"`
}
