package models

// QueryKind enumerates the shapes a free-text message can be classified into.
type QueryKind int

const (
	// QueryInvalid is any text that is neither an identifier nor a category.
	QueryInvalid QueryKind = iota
	// QueryIdentifier is a 5 to 9 digit roll number.
	QueryIdentifier
	// QueryCategory is a 1 or 2 digit section number.
	QueryCategory
)

// String returns a short lowercase name of the kind, used in logs.
func (k QueryKind) String() string {
	switch k {
	case QueryIdentifier:
		return "identifier"
	case QueryCategory:
		return "category"
	default:
		return "invalid"
	}
}

// Query is a classified inbound message. Text holds the trimmed message.
type Query struct {
	Kind QueryKind
	Text string
}
