package review

import (
	"strings"

	"sitlink/internal/pkg/errs"
)

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrEmptyComment   = errs.New("comment cannot be empty")
	ErrCommentTooLong = errs.New("comment exceeds maximum length")
)

const MaxCommentLength = 2000

type Rating struct {
	value int
}

func NewRating(value int) (Rating, error) {
	if value < 1 || value > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() int {
	return r.value
}

type Comment struct {
	value string
}

func NewComment(value string) (Comment, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(trimmed) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: trimmed}, nil
}

func (c Comment) String() string {
	return c.value
}
