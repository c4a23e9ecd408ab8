package gencache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// KeySpec lists the semantic inputs of a generation request. Two specs that
// differ only in map ordering or surrounding whitespace produce the same key.
// Lists keep their order; wrap a value in StringSet when its order carries no
// meaning.
type KeySpec struct {
	Kind       domain.ContentKind
	Descriptor map[string]any
	Params     map[string]any
	Model      string
	// Version is bumped when prompt templates change so old payloads stop matching.
	Version int
}

// StringSet is an unordered list of strings inside a KeySpec. It is trimmed,
// sorted and de-duplicated before hashing.
type StringSet []string

// Key derives the content-addressable cache key for spec.
func Key(spec KeySpec) string {
	payload := map[string]any{
		"kind":       strings.TrimSpace(string(spec.Kind)),
		"descriptor": normalizeJSON(nonNil(spec.Descriptor)),
		"params":     normalizeJSON(nonNil(spec.Params)),
		"model":      strings.TrimSpace(spec.Model),
		"v":          spec.Version,
	}
	// encoding/json writes map keys in sorted order.
	b, _ := json.Marshal(payload)
	sum := sha256.Sum256(b)
	return string(spec.Kind) + ":" + hex.EncodeToString(sum[:])
}

func nonNil(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func normalizeJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[strings.TrimSpace(k)] = normalizeJSON(x)
		}
		return out
	case []any:
		arr := make([]any, 0, len(t))
		for _, x := range t {
			arr = append(arr, normalizeJSON(x))
		}
		return arr
	case []string:
		ss := make([]string, 0, len(t))
		for _, s := range t {
			ss = append(ss, strings.TrimSpace(s))
		}
		return ss
	case StringSet:
		seen := make(map[string]struct{}, len(t))
		ss := make([]string, 0, len(t))
		for _, s := range t {
			s = strings.TrimSpace(s)
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			ss = append(ss, s)
		}
		sort.Strings(ss)
		return ss
	case string:
		return strings.TrimSpace(t)
	default:
		return v
	}
}
