package toml

import (
	"bytes"
	"net/http"

	bstoml "github.com/BurntSushi/toml"

	stellartoml "github.com/marwen-abid/stellartoml-go"
	"github.com/marwen-abid/stellartoml-go/errors"
)

// Publisher renders a document as stellar.toml for anchors that host their own file.
type Publisher struct {
	doc *stellartoml.StellarToml
}

func NewPublisher(doc *stellartoml.StellarToml) *Publisher {
	return &Publisher{doc: doc}
}

// Render encodes the document using SEP-1 key names. Absent fields are
// omitted, and the output parses back to an equal document.
func (p *Publisher) Render() (string, error) {
	if p.doc == nil {
		return "", errors.New(errors.RENDER_FAILED, "no document to render", nil)
	}

	var b bytes.Buffer
	enc := bstoml.NewEncoder(&b)
	enc.Indent = ""
	if err := enc.Encode(p.doc); err != nil {
		return "", errors.New(errors.RENDER_FAILED, "failed to encode stellar.toml", err)
	}
	return b.String(), nil
}

func (p *Publisher) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := p.Render()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}
