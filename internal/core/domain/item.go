package domain

import "strings"

// Item is one evaluated item of a project: its evaluated include plus string metadata.
// Metadata names are case-insensitive, as they are in MSBuild.
type Item struct {
	Include  string
	metadata map[string]string
}

// NewItem creates an Item. The metadata map is copied.
func NewItem(include string, metadata map[string]string) Item {
	item := Item{Include: include}
	if len(metadata) > 0 {
		item.metadata = make(map[string]string, len(metadata))
		for name, value := range metadata {
			item.metadata[strings.ToLower(name)] = value
		}
	}
	return item
}

// Metadata returns the value of the named metadata, or "" when it is not set.
func (i Item) Metadata(name string) string {
	return i.metadata[strings.ToLower(name)]
}

// HasMetadata reports whether the named metadata is set to a non-empty value.
func (i Item) HasMetadata(name string) bool {
	return strings.TrimSpace(i.Metadata(name)) != ""
}
