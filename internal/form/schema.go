package form

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	compiled   = make(map[string]*jsonschema.Schema)
	compiledMx sync.Mutex
)

// schemaFor compiles an embedded schema once.
func schemaFor(name string) (*jsonschema.Schema, error) {
	compiledMx.Lock()
	defer compiledMx.Unlock()

	if s, ok := compiled[name]; ok {
		return s, nil
	}
	raw, err := schemaFS.ReadFile(path.Join("schemas", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("form: read schema %s: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	res := name + ".json"
	if err := c.AddResource(res, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("form: load schema %s: %w", name, err)
	}
	s, err := c.Compile(res)
	if err != nil {
		return nil, fmt.Errorf("form: compile schema %s: %w", name, err)
	}
	compiled[name] = s

	return s, nil
}

// check validates doc against the named schema and maps violations to
// field messages. labels names fields in messages.
func check(name string, doc map[string]any, labels map[string]string) error {
	s, err := schemaFor(name)
	if err != nil {
		return err
	}
	err = s.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	fe := make(FieldErrors)
	collect(verr, labels, fe)
	if len(fe) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, verr.Message)
	}

	return fe
}

func collect(v *jsonschema.ValidationError, labels map[string]string, fe FieldErrors) {
	if len(v.Causes) > 0 {
		for _, c := range v.Causes {
			collect(c, labels, fe)
		}
		return
	}

	field := strings.TrimPrefix(v.InstanceLocation, "/")
	keyword := path.Base(v.KeywordLocation)
	if keyword == "required" {
		for f := range labels {
			if strings.Contains(v.Message, "'"+f+"'") {
				fe[f] = MsgRequired
			}
		}
		return
	}
	if field == "" {
		return
	}
	if _, ok := fe[field]; ok {
		return
	}
	switch keyword {
	case "minLength", "pattern":
		fe[field] = MsgRequired
	case "type":
		if strings.Contains(v.Message, "integer") && !strings.Contains(v.Message, "got string") {
			fe[field] = MsgWholeNumber
		} else {
			fe[field] = MsgNotANumber
		}
	case "minimum":
		fe[field] = labels[field] + " must be a non-negative number"
	case "maximum":
		fe[field] = labels[field] + " is too large"
	default:
		fe[field] = v.Message
	}
}
