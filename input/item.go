package input

import (
	"fmt"
	"strings"
)

// Item is one classified request item. The set of implementations is closed:
// HeaderItem, DataItem and QueryItem.
type Item interface {
	isItem()
	Field() Field
}

// HeaderItem is a `Name:Value` token.
type HeaderItem struct {
	Key   string
	Value string
}

// DataItem is a `key=value` token; it becomes a string field of the JSON body.
type DataItem struct {
	Key   string
	Value string
}

// QueryItem is a `key==value` token.
type QueryItem struct {
	Key   string
	Value string
}

func (HeaderItem) isItem() {}
func (DataItem) isItem()   {}
func (QueryItem) isItem()  {}

func (i HeaderItem) Field() Field { return Field{Name: i.Key, Value: i.Value} }
func (i DataItem) Field() Field   { return Field{Name: i.Key, Value: i.Value} }
func (i QueryItem) Field() Field  { return Field{Name: i.Key, Value: i.Value} }

// ClassificationError is returned for a token that has neither '=' nor ':'.
type ClassificationError struct {
	Token string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot parse request item '%s'; valid forms are Header:Value, key=value, key==value", e.Token)
}

// ClassifyItem turns a raw token into a request item.
//
// "==" anywhere wins and makes a query parameter. Otherwise whichever of ':'
// and '=' comes first decides between a header and a data field. A value that
// contains a colon therefore needs the '=' to come first ("at=12:00" is data,
// "X:a=b" is a header).
func ClassifyItem(s string) (Item, error) {
	if i := strings.Index(s, "=="); i >= 0 {
		return QueryItem{Key: s[:i], Value: s[i+2:]}, nil
	}

	// Delimiters are ASCII, so byte offsets never land inside a rune.
	eq, colon := -1, -1
	for i, c := range s {
		switch c {
		case '=':
			if eq < 0 {
				eq = i
			}
		case ':':
			if colon < 0 {
				colon = i
			}
		}
	}

	switch {
	case colon >= 0 && eq >= 0 && colon < eq:
		return HeaderItem{Key: s[:colon], Value: s[colon+1:]}, nil
	case eq >= 0:
		return DataItem{Key: s[:eq], Value: s[eq+1:]}, nil
	case colon >= 0:
		return HeaderItem{Key: s[:colon], Value: s[colon+1:]}, nil
	default:
		return nil, &ClassificationError{Token: s}
	}
}
