package define

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
	"github.com/goccy/go-yaml"
)

var (
	errNotObject = errors.New("top-level value is not an object")
	errRequire   = errors.New("require is not available to static definitions")
)

// memberKeys returns the top-level member names of a members-strategy file,
// in document order.
func memberKeys(e entry, data []byte) ([]string, error) {
	if e.ext == ExtScript {
		return scriptKeys(e.file, data)
	}

	return documentKeys(data)
}

// documentKeys decodes a JSON or YAML document and returns the keys of its
// root mapping. JSON is a subset of YAML, so one decoder serves both.
func documentKeys(data []byte) ([]string, error) {
	var doc any

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return nil, err
	}

	root, ok := doc.(yaml.MapSlice)
	if !ok {
		return nil, errNotObject
	}

	keys := make([]string, 0, len(root))
	for _, item := range root {
		keys = append(keys, fmt.Sprint(item.Key))
	}

	return keys, nil
}

// scriptKeys evaluates a CommonJS script and returns the own enumerable keys
// of module.exports. The script runs in a fresh runtime with no host
// bindings beyond module and exports.
func scriptKeys(name string, data []byte) ([]string, error) {
	vm := goja.New()

	module := vm.NewObject()
	exports := vm.NewObject()

	if err := module.Set("exports", exports); err != nil {
		return nil, err
	}

	if err := vm.Set("module", module); err != nil {
		return nil, err
	}

	if err := vm.Set("exports", exports); err != nil {
		return nil, err
	}

	err := vm.Set("require", func(goja.FunctionCall) goja.Value {
		panic(vm.NewGoError(errRequire))
	})
	if err != nil {
		return nil, err
	}

	if _, err := vm.RunScript(name, string(data)); err != nil {
		return nil, err
	}

	obj, ok := module.Get("exports").(*goja.Object)
	if !ok {
		return nil, errNotObject
	}

	return obj.Keys(), nil
}
