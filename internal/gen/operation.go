package gen

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"kartgen/internal/diagnostic"
)

//go:generate go tool stringer -type=Operation,Projection -linecomment -output=enum_string.go

// Operation is one of the fixed, named code generation tasks. The name of an
// operation is also the key of its marker pair in the target file.
type Operation int

const (
	_ Operation = iota // skip zero value, use it as an invalid Operation

	OpEnum     // enum
	OpDefs     // defs
	OpAcDefs   // acdefs
	OpKpDefs   // kpdefs
	OpGetter   // getter
	OpAcGetter // acgetter
	OpKpGetter // kpgetter
	OpGetProp1 // getProp1
	OpGetType  // getType
	OpGetProp2 // getProp2
	OpGetName  // getName
	OpGetXML   // getXml
	OpLoadXML  // loadXml

	// opTotal is one past the last valid Operation.
	opTotal = int(iota)
)

type operationInfo struct {
	projection  Projection
	description string
	target      string
	legacy      bool
}

const (
	characteristicHeader = "karts/abstract_characteristic.hpp"
	characteristicSource = "karts/abstract_characteristic.cpp"
	propertiesHeader     = "karts/kart_properties.hpp"
	propertiesSource     = "karts/kart_properties.cpp"
	xmlSource            = "karts/xml_characteristic.cpp"
)

var operationTable = [...]operationInfo{
	OpEnum:     {ProjectEnum, "List the enum values for all characteristics", characteristicHeader, false},
	OpDefs:     {ProjectDeclarations, "Create the header function declarations (old name of acdefs)", characteristicHeader, true},
	OpAcDefs:   {ProjectDeclarations, "Create the header function declarations", characteristicHeader, false},
	OpKpDefs:   {ProjectDeclarations, "Create the header function declarations for the getters", propertiesHeader, false},
	OpGetter:   {ProjectGetters, "Implement the getters (old name of acgetter)", characteristicSource, true},
	OpAcGetter: {ProjectGetters, "Implement the getters", characteristicSource, false},
	OpKpGetter: {ProjectForwarders, "Implement the getters that forward to the cached characteristic", propertiesSource, false},
	OpGetProp1: {ProjectTypeSwitch, "Implement the getType function (old name of getType)", characteristicSource, true},
	OpGetType:  {ProjectTypeSwitch, "Implement the getType function", characteristicSource, false},
	OpGetProp2: {ProjectNameSwitch, "Implement the getName function (old name of getName)", characteristicSource, true},
	OpGetName:  {ProjectNameSwitch, "Implement the getName function", characteristicSource, false},
	OpGetXML:   {ProjectXMLLoader, "Code to load the characteristics from an xml file (old name of loadXml)", xmlSource, true},
	OpLoadXML:  {ProjectXMLLoader, "Code to load the characteristics from an xml file", xmlSource, false},
}

// IsValid reports whether op is one of the known operations.
func (op Operation) IsValid() bool {
	return op > 0 && int(op) < opTotal
}

// Projection returns the projection rendered by op.
func (op Operation) Projection() Projection {
	if !op.IsValid() {
		return 0
	}

	return operationTable[op].projection
}

// Description returns a short description of op.
func (op Operation) Description() string {
	if !op.IsValid() {
		return ""
	}

	return operationTable[op].description
}

// Target returns the path of the file op is spliced into, relative to the
// source directory.
func (op Operation) Target() string {
	if !op.IsValid() {
		return ""
	}

	return operationTable[op].target
}

// Legacy reports whether op is a historical alias of another operation.
func (op Operation) Legacy() bool {
	return op.IsValid() && operationTable[op].legacy
}

// Operations returns every operation in declaration order.
func Operations() []Operation {
	ops := make([]Operation, 0, opTotal-1)
	for op := Operation(1); int(op) < opTotal; op++ {
		ops = append(ops, op)
	}

	return ops
}

// Canonical returns the operations run by a full update, in the order their
// regions are spliced.
func Canonical() []Operation {
	return []Operation{OpEnum, OpAcDefs, OpAcGetter, OpGetType, OpGetName, OpKpDefs, OpKpGetter, OpLoadXML}
}

// ErrUnknownOperation is returned when an operation name is not recognized.
var ErrUnknownOperation = errors.New("unknown operation")

// UnknownOperationError reports an unrecognized operation name together with
// the closest known names.
type UnknownOperationError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownOperationError) Error() string {
	d := diagnostic.Diagnostic{
		Code:        "unknown_operation",
		Message:     "unknown operation " + strconv.Quote(e.Name),
		Suggestions: e.Suggestions,
	}

	return d.String()
}

func (e *UnknownOperationError) Unwrap() error {
	return ErrUnknownOperation
}

// ParseOperation returns the operation with the given name. Names are
// case-sensitive, as they must match the markers in the target files.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations() {
		if op.String() == name {
			return op, nil
		}
	}

	return 0, &UnknownOperationError{Name: name, Suggestions: suggest(name)}
}

// maxSuggestions bounds the "did you mean" list.
const maxSuggestions = 3

// suggest returns the operation names closest to name by edit distance.
func suggest(name string) []string {
	type candidate struct {
		name string
		dist int
	}

	folded := strings.ToLower(name)
	limit := max(2, len(name)/3)

	var candidates []candidate

	for _, op := range Operations() {
		d := levenshtein.ComputeDistance(folded, strings.ToLower(op.String()))
		if d <= limit {
			candidates = append(candidates, candidate{name: op.String(), dist: d})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.dist - b.dist
	})

	out := make([]string, 0, maxSuggestions)
	for i := 0; i < len(candidates) && i < maxSuggestions; i++ {
		out = append(out, candidates[i].name)
	}

	return out
}
