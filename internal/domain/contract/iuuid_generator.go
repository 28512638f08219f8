package contract

// IUUIDGenerator creates identifiers for new records.
type IUUIDGenerator interface {
	NewUUID() string
}
