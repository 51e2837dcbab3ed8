// Package catalog defines the per-category configuration that drives the
// generic program-record engine: required fields, enum tables, list
// filters, nested-child specifications, aggregation specs and derived
// score formulas for each of the six record categories.
//
// The engine itself (store/records) is category-agnostic; everything that
// differs between categories lives here as data plus a handful of pure
// functions over document snapshots.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/ngoworks/programhub/internal/app/system/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind describes what a required field must contain.
type Kind int

const (
	String Kind = iota
	Number
	ISODate
	Array
)

// Required declares one mandatory field for create (or for a child
// append), addressed by dotted path into the submitted document.
type Required struct {
	Path    string
	Kind    Kind
	Message string
	Min     float64 // numeric range, used when Max > Min
	Max     float64
}

// Enum constrains a field to a fixed value set. Default, when non-empty,
// is applied on create if the field is absent.
type Enum struct {
	Path    string
	Values  []string
	Default string
	Message string
}

// Child describes one nested collection of a category: where the array
// lives, what an appended element must contain, and how elements are
// addressed for updates.
type Child struct {
	Kind       string // URL segment, e.g. "milestones"
	Noun       string // for response messages, e.g. "Milestone"
	ArrayPath  string // dotted path to the array in the document
	Required   []Required
	Optional   []Required // checked only when present
	Enums      []Enum
	Defaults   map[string]any // applied to the element on append
	Stamp      string         // element field set to now on append
	IDField    string         // element field used to address updates
	GenerateID bool           // assign a fresh UUID to IDField on append
	Updatable  bool           // mount PUT {key}/{kind}/{childID}
	NoAppend   bool           // element creation goes through a special op
	AddedMsg   string         // success message for appends
	UpdatedMsg string         // success message for child updates
}

// Breakdown is one group-by section of the global statistics response.
type Breakdown struct {
	Name     string // response key, e.g. "topCountries"
	Unwind   string // optional array path to $unwind before grouping
	GroupBy  string // document path grouped as _id
	CountKey string // name of the per-group document count
	Sums     map[string]string
	SizeSums map[string]string
	Avgs     map[string]string
	Limit    int64 // 0 means unlimited
}

// Ratio is a guarded average of numerator/denominator across documents;
// documents with a zero denominator contribute zero.
type Ratio struct {
	Name        string
	Numerator   string
	Denominator string
}

// StatsSpec drives the stats/global aggregation for a category.
type StatsSpec struct {
	TotalKey     string
	StatusCounts map[string]string // output key -> status value counted
	Sums         map[string]string
	SizeSums     map[string]string // $size of an array path
	Avgs         map[string]string
	RatioAvg     *Ratio
	Breakdowns   []Breakdown
}

// MergeOp is a section-merge endpoint: the payload is folded into one
// top-level section of the record.
type MergeOp struct {
	Section string
	Message string
}

// Category is the full configuration for one record category.
type Category struct {
	Name       string // short name used in logs and dispatch
	Noun       string // for response messages, e.g. "Campaign"
	Mount      string // API prefix, e.g. "/api/campaigns"
	Collection string
	KeyField   string // wire name of the business key
	KeyMessage string // validation message when the key is missing
	Required   []Required
	Optional   []Required // checked only when present
	Enums      []Enum
	Defaults   map[string]any     // non-enum create defaults (missing paths only)
	Filters    map[string]string  // query param -> document path
	SortField  string             // primary date/metric field, sorted descending
	ListOmit   []string           // paths projected out of list responses
	Children   []Child
	MergeOps   map[string]MergeOp // URL segment -> merge target
	Scores     func(doc bson.M) bson.M
	Analytics  func(doc bson.M) bson.M
	Stats      StatsSpec
}

// ChildByKind returns the child spec for a URL segment.
func (c *Category) ChildByKind(kind string) (*Child, bool) {
	for i := range c.Children {
		if c.Children[i].Kind == kind {
			return &c.Children[i], true
		}
	}
	return nil, false
}

/* ------------------------------------------------------------------ */
/* Document path helpers                                              */
/* ------------------------------------------------------------------ */

// Lookup resolves a dotted path inside a decoded document. The second
// return is false when any segment is missing or not a sub-document.
func Lookup(doc map[string]any, path string) (any, bool) {
	cur := any(doc)
	for _, seg := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// SetPath writes a value at a dotted path, creating intermediate maps.
func SetPath(doc map[string]any, path string, value any) {
	segs := strings.Split(path, ".")
	cur := doc
	for _, seg := range segs[:len(segs)-1] {
		next, ok := asMap(cur[seg])
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	cur[segs[len(segs)-1]] = value
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case bson.M:
		return m, true
	default:
		return nil, false
	}
}

// Num coerces any of the numeric types the JSON and BSON decoders
// produce into a float64. Non-numbers yield 0.
func Num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// NumAt resolves a dotted path and coerces the value to float64.
func NumAt(doc map[string]any, path string) float64 {
	v, ok := Lookup(doc, path)
	if !ok {
		return 0
	}
	return Num(v)
}

// Arr coerces a decoded array ([]any from JSON, primitive.A from BSON)
// into a []any. Anything else yields nil.
func Arr(v any) []any {
	switch a := v.(type) {
	case []any:
		return a
	case primitive.A:
		return []any(a)
	default:
		return nil
	}
}

// ArrAt resolves a dotted path to an array.
func ArrAt(doc map[string]any, path string) []any {
	v, ok := Lookup(doc, path)
	if !ok {
		return nil
	}
	return Arr(v)
}

// Str resolves a dotted path to a string, or "".
func Str(doc map[string]any, path string) string {
	v, ok := Lookup(doc, path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

/* ------------------------------------------------------------------ */
/* Validation                                                          */
/* ------------------------------------------------------------------ */

func checkRequired(v *apperr.Validation, doc map[string]any, reqs []Required) {
	for _, req := range reqs {
		val, ok := Lookup(doc, req.Path)
		if !ok || val == nil {
			v.Add(req.Path, req.Message)
			continue
		}
		switch req.Kind {
		case String:
			s, ok := val.(string)
			if !ok || strings.TrimSpace(s) == "" {
				v.Add(req.Path, req.Message)
			}
		case Number:
			switch val.(type) {
			case float64, float32, int, int32, int64:
				n := Num(val)
				if req.Max > req.Min && (n < req.Min || n > req.Max) {
					v.Add(req.Path, req.Message)
				}
			default:
				v.Add(req.Path, req.Message)
			}
		case ISODate:
			if !isISODate(val) {
				v.Add(req.Path, req.Message)
			}
		case Array:
			if Arr(val) == nil {
				v.Add(req.Path, req.Message)
			}
		}
	}
}

func checkEnums(v *apperr.Validation, doc map[string]any, enums []Enum) {
	for _, e := range enums {
		val, ok := Lookup(doc, e.Path)
		if !ok || val == nil {
			continue
		}
		s, isStr := val.(string)
		if !isStr || !contains(e.Values, s) {
			msg := e.Message
			if msg == "" {
				msg = fmt.Sprintf("must be one of: %s", strings.Join(e.Values, ", "))
			}
			v.Add(e.Path, msg)
		}
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func isISODate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	return false
}

// ValidateCreate checks the full create payload: business key, required
// fields and every enum field that is present. On success it applies the
// category's enum and value defaults in place.
func (c *Category) ValidateCreate(doc map[string]any) error {
	v := &apperr.Validation{}
	checkRequired(v, doc, append([]Required{{Path: c.KeyField, Kind: String, Message: c.KeyMessage}}, c.Required...))
	checkOptional(v, doc, c.Optional)
	checkEnums(v, doc, c.Enums)
	if err := v.Or(); err != nil {
		return err
	}
	for _, e := range c.Enums {
		if e.Default == "" {
			continue
		}
		if _, ok := Lookup(doc, e.Path); !ok {
			SetPath(doc, e.Path, e.Default)
		}
	}
	for path, val := range c.Defaults {
		if _, ok := Lookup(doc, path); !ok {
			SetPath(doc, path, val)
		}
	}
	return nil
}

// ValidateUpdate checks the enum and typed optional fields present in
// a partial update payload. A patch that replaces a child array is
// checked element by element against the child's enum and typed
// specs, so a wholesale section rewrite cannot smuggle in values a
// child append would reject.
func (c *Category) ValidateUpdate(patch map[string]any) error {
	v := &apperr.Validation{}
	checkOptional(v, patch, c.Optional)
	checkEnums(v, patch, c.Enums)
	for i := range c.Children {
		ch := &c.Children[i]
		raw, ok := Lookup(patch, ch.ArrayPath)
		if !ok {
			continue
		}
		for idx, el := range Arr(raw) {
			m, ok := asMap(el)
			if !ok {
				continue
			}
			sub := &apperr.Validation{}
			checkOptional(sub, m, ch.Optional)
			checkEnums(sub, m, ch.Enums)
			for _, f := range sub.Fields {
				v.Add(fmt.Sprintf("%s.%d.%s", ch.ArrayPath, idx, f.Field), f.Message)
			}
		}
	}
	return v.Or()
}

// checkOptional applies Required-style checks only to fields that are
// present in the payload.
func checkOptional(v *apperr.Validation, doc map[string]any, opts []Required) {
	for _, opt := range opts {
		if _, ok := Lookup(doc, opt.Path); !ok {
			continue
		}
		checkRequired(v, doc, []Required{opt})
	}
}

// ValidateChild checks a child element payload against the child spec
// and applies its defaults.
func (ch *Child) ValidateChild(payload map[string]any) error {
	v := &apperr.Validation{}
	checkRequired(v, payload, ch.Required)
	checkOptional(v, payload, ch.Optional)
	checkEnums(v, payload, ch.Enums)
	if err := v.Or(); err != nil {
		return err
	}
	for path, val := range ch.Defaults {
		if _, ok := Lookup(payload, path); !ok {
			SetPath(payload, path, val)
		}
	}
	return nil
}

// ValidateChildPatch checks the enum and typed optional fields present
// in a child update.
func (ch *Child) ValidateChildPatch(patch map[string]any) error {
	v := &apperr.Validation{}
	checkOptional(v, patch, ch.Optional)
	checkEnums(v, patch, ch.Enums)
	return v.Or()
}
