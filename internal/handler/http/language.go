package http

import (
	"net/http"
	"strings"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/language"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/handler/http/response"
)

type LanguageHandler interface {
	ListLanguages(w http.ResponseWriter, r *http.Request)
	ListOptions(w http.ResponseWriter, r *http.Request)
}

type languageHandlerImpl struct{}

func NewLanguageHandler() LanguageHandler {
	return &languageHandlerImpl{}
}

// ListLanguages implements LanguageHandler
func (h *languageHandlerImpl) ListLanguages(w http.ResponseWriter, r *http.Request) {
	response.Success(w, language.Catalog)
}

// ListOptions implements LanguageHandler. Given the currently selected
// codes it returns both the resolved selection and what remains
// selectable.
func (h *languageHandlerImpl) ListOptions(w http.ResponseWriter, r *http.Request) {
	var selected []string
	if raw := r.URL.Query().Get("selected"); raw != "" {
		selected = strings.Split(raw, ",")
	}

	sel := language.NewSelector(selected...)

	response.Success(w, map[string]interface{}{
		"selected":  sel.SelectedLanguages(),
		"available": sel.AvailableOptions(),
	})
}
