package handlers

// AppHandlers bundles every route-owning handler for registration.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ModuleHandler  *ModuleHandler
	ArticleHandler *ArticleHandler
	FormHandler    *FormHandler
	FileHandler    *FileHandler
}
