package handlers

// HandlerBundle aggregates all handlers so route registration can take a
// single argument.
type HandlerBundle struct {
	Directory *DirectoryHandler
	Business  *BusinessHandler
	Admin     *AdminHandler
	Saved     *SavedHandler
	Storage   *StorageHandler
}
