package storage

// Storage объединяет все хранилища клиента в одном бэкенде (bbolt или память)
type Storage interface {
	QuoteStorage
	SessionStorage
	MetadataStorage
	Close() error
}
