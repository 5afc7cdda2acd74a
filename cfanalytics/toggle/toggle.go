package toggle

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
)

type Toggle struct {
	defined bool
	enabled bool
	path    string
	props   map[string]interface{}
}

type saved struct {
	Enabled *bool                  `json:"enabled,omitempty"`
	Props   map[string]interface{} `json:"props"`
}

// New loads the opt-in state saved at path. A missing or unreadable file
// leaves the toggle undefined, so the user is asked again.
func New(path string) *Toggle {
	t := &Toggle{
		path:  path,
		props: make(map[string]interface{}, 1),
	}

	txt, err := ioutil.ReadFile(path)
	if err != nil {
		return t
	}

	var s saved
	if err := json.Unmarshal(txt, &s); err != nil {
		return t
	}

	if s.Enabled != nil {
		t.defined = true
		t.enabled = *s.Enabled
	}
	if s.Props != nil {
		t.props = s.Props
	}
	return t
}

func (t *Toggle) Defined() bool {
	return t.defined
}

func (t *Toggle) Enabled() bool {
	return t.enabled
}

func (t *Toggle) SetEnabled(value bool) error {
	t.defined = true
	t.enabled = value
	return t.save()
}

func (t *Toggle) GetProps() map[string]interface{} {
	return t.props
}

func (t *Toggle) save() error {
	os.MkdirAll(filepath.Dir(t.path), 0755)
	s := saved{Props: t.props}
	if t.defined {
		s.Enabled = &t.enabled
	}
	txt, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(t.path, txt, 0644)
}
