package jsonpatch

import (
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Op is one RFC 6902 operation.
type Op struct {
	Op    string      `json:"op" yaml:"op"`
	Path  string      `json:"path" yaml:"path"`
	Value interface{} `json:"value" yaml:"value,omitempty"`
}

// MarshalJSON drops the value member from remove operations only; a
// replace with null keeps "value": null.
func (o Op) MarshalJSON() ([]byte, error) {
	if o.Op == "remove" {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{o.Op, o.Path})
	}
	type plain Op
	return json.Marshal(plain(o))
}

// DiffDocuments computes the patch that turns JSON document a into b.
// Empty input is treated as null.
func DiffDocuments(a, b []byte) ([]Op, error) {
	av, err := decode(a)
	if err != nil {
		return nil, eris.Wrap(err, "jsonpatch: decode before")
	}
	bv, err := decode(b)
	if err != nil {
		return nil, eris.Wrap(err, "jsonpatch: decode after")
	}
	return Diff(av, bv, ""), nil
}

func decode(data []byte) (interface{}, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Diff computes the patch that transforms a into b. Both must be the result
// of unmarshalling JSON into interface{}. Object keys are visited in sorted
// order so the same inputs always produce the same patch.
func Diff(a, b interface{}, path string) []Op {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []Op{replaceOp(path, b)}
	}

	aMap, aIsMap := a.(map[string]interface{})
	bMap, bIsMap := b.(map[string]interface{})
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]interface{})
	bArr, bIsArr := b.([]interface{})
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return []Op{replaceOp(path, b)}
	}
	return nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func diffObjects(a, b map[string]interface{}, path string) []Op {
	var ops []Op
	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}
	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, addOp(childPath, b[k]))
			continue
		}
		ops = append(ops, Diff(av, b[k], childPath)...)
	}
	return ops
}

func diffArrays(a, b []interface{}, path string) []Op {
	var ops []Op
	common := len(a)
	if len(b) < common {
		common = len(b)
	}
	for i := 0; i < common; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}
	// Remove from the end so earlier indices stay valid.
	for i := len(a) - 1; i >= common; i-- {
		ops = append(ops, removeOp(path+"/"+strconv.Itoa(i)))
	}
	for i := common; i < len(b); i++ {
		ops = append(ops, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}
	return ops
}

func replaceOp(path string, value interface{}) Op {
	return Op{Op: "replace", Path: path, Value: value}
}

func addOp(path string, value interface{}) Op {
	return Op{Op: "add", Path: path, Value: value}
}

func removeOp(path string) Op {
	return Op{Op: "remove", Path: path}
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
