package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var registerDocsOnce sync.Once

// openAPIDoc serves the embedded document to the Swagger UI.
type openAPIDoc struct {
	raw string
}

func (d openAPIDoc) ReadDoc() string {
	return d.raw
}

// registerDocs publishes doc under swag's default name, once per process.
func registerDocs(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{raw: string(raw)})
	})
	return nil
}
