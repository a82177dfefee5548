package aggregators

import "strings"

const (
	FieldNodeCount = "Resource_List.nodect"
	FieldQueue     = "queue"
)

// AccountingFields holds the key=value pairs of an accounting blob.
type AccountingFields map[string]string

//go:generate mockgen -source=key_value_extractor.go -destination=./mocks/key_value_extractor_mock.go -package=mocks
type KeyValueExtractor interface {
	// Extract decodes blob. It returns an empty mapping and false as soon as one token
	// has no "=", dropping every other pair of the blob as well.
	Extract(blob string) (AccountingFields, bool)
}

type keyValueExtractor struct {
	replacer *strings.Replacer
}

func NewKeyValueExtractor() KeyValueExtractor {
	return &keyValueExtractor{
		// group names such as "domain users" carry a space that would split the token
		replacer: strings.NewReplacer("domain users", "domain_users"),
	}
}

func (e *keyValueExtractor) Extract(blob string) (AccountingFields, bool) {
	tokens := strings.Fields(e.replacer.Replace(blob))

	fields := make(AccountingFields, len(tokens))
	for _, token := range tokens {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			return AccountingFields{}, false
		}
		fields[key] = value
	}
	return fields, true
}
