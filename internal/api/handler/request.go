package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

const methodOverrideMsg = "Método no permitido. Usa POST con _method=PUT para actualizar."

// requirePutOverride enforces the POST + _method=PUT convention used by the
// update routes. The comparison ignores case.
func requirePutOverride(method string) error {
	if !strings.EqualFold(strings.TrimSpace(method), http.MethodPut) {
		return domain.NewError(domain.ErrMethodNotAllowed, methodOverrideMsg)
	}
	return nil
}

// TagList accepts tags either as a JSON array or as comma-separated text, in
// JSON bodies and in form fields alike.
type TagList []string

func (t *TagList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*t = domain.NormalizeTags(list)
		return nil
	}
	var csv string
	if err := json.Unmarshal(b, &csv); err != nil {
		return err
	}
	*t = domain.SplitTags(csv)
	return nil
}

// UnmarshalParams binds repeated form fields; each value may itself be a
// comma-separated list.
func (t *TagList) UnmarshalParams(params []string) error {
	*t = domain.SplitTags(strings.Join(params, ","))
	return nil
}

func (t *TagList) UnmarshalParam(param string) error {
	*t = domain.SplitTags(param)
	return nil
}
