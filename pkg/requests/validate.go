package requests

import (
	"encoding/json"
	"errors"
	"fmt"
)

// parse turns body into a typed shape. It returns (nil, nil) when body is nil so the
// caller can decide on a default.
func parse[T any](body any, schemaName, shape string) (*T, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case *T:
		if b == nil {
			return nil, nil
		}
		v := *b
		return &v, nil
	case T:
		return &b, nil
	case map[string]any:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, newValidationError(shape, "/", fmt.Sprintf("body cannot be encoded: %v", err))
		}
		return decode[T](data, schemaName, shape)
	case json.RawMessage:
		return decode[T](b, schemaName, shape)
	case []byte:
		return decode[T](b, schemaName, shape)
	default:
		return nil, NewInvalidParameterError("body", fmt.Sprintf("unsupported body type %T for %s", body, shape))
	}
}

func decode[T any](data []byte, schemaName, shape string) (*T, error) {
	slim, err := validateAgainst(schemaName, shape, data)
	if err != nil {
		return nil, err
	}

	var v T
	if err := json.Unmarshal(slim, &v); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return nil, prefixPaths(shape, "/properties", ve)
		}
		return nil, newValidationError(shape, decodeErrorPath(slim, err), err.Error())
	}
	return &v, nil
}

// prefixPaths rebases the field paths of a nested properties failure onto the body
func prefixPaths(shape, prefix string, ve *ValidationError) *ValidationError {
	out := &ValidationError{Shape: shape, Fields: make([]FieldError, 0, len(ve.Fields))}
	for _, f := range ve.Fields {
		p := prefix + f.Path
		if f.Path == "/" {
			p = prefix
		}
		out.Fields = append(out.Fields, FieldError{Path: p, Message: f.Message})
	}
	return out
}

func requireProperties(props *ElementProperties, shape string) error {
	if props == nil || props.Value == nil {
		return NewInvalidParameterError("properties", fmt.Sprintf("%s requires properties", shape))
	}
	return nil
}

// NewElement validates a body for creating an element. allowed lists the property
// classes the target endpoint accepts; a mismatch is an InvalidParameterError.
func NewElement(body any, allowed ...string) (*NewElementRequest, error) {
	req, err := parse[NewElementRequest](body, schemaNewElement, ClassNewElementRequest)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, NewInvalidParameterError("body", "a body with properties is required to create an element")
	}
	req.Class = ClassNewElementRequest
	if err := requireProperties(req.Properties, ClassNewElementRequest); err != nil {
		return nil, err
	}
	if err := checkClass(req.Properties, allowed); err != nil {
		return nil, err
	}
	return req, nil
}

// UpdateElement validates a body for updating an element
func UpdateElement(body any, allowed ...string) (*UpdateElementRequest, error) {
	req, err := parse[UpdateElementRequest](body, schemaUpdateElement, ClassUpdateElementRequest)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, NewInvalidParameterError("body", "a body with properties is required to update an element")
	}
	req.Class = ClassUpdateElementRequest
	if err := requireProperties(req.Properties, ClassUpdateElementRequest); err != nil {
		return nil, err
	}
	if err := checkClass(req.Properties, allowed); err != nil {
		return nil, err
	}
	return req, nil
}

// Delete validates a body for deleting an element or detaching a relationship.
// A nil body becomes a minimal request carrying only cascade.
func Delete(body any, cascade bool) (*DeleteRequest, error) {
	req, err := parse[DeleteRequest](body, schemaDelete, ClassDeleteRequest)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &DeleteRequest{CascadeDelete: Bool(cascade)}
	}
	req.Class = ClassDeleteRequest
	return req, nil
}

// NewRelationship validates a body for creating a relationship. Relationship
// properties are optional; a nil body becomes an empty request.
func NewRelationship(body any, allowed ...string) (*NewRelationshipRequest, error) {
	req, err := parse[NewRelationshipRequest](body, schemaNewRelationship, ClassNewRelationshipRequest)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &NewRelationshipRequest{}
	}
	req.Class = ClassNewRelationshipRequest
	if err := checkClass(req.Properties, allowed); err != nil {
		return nil, err
	}
	return req, nil
}

// UpdateRelationship validates a body for updating relationship properties
func UpdateRelationship(body any, allowed ...string) (*UpdateRelationshipRequest, error) {
	req, err := parse[UpdateRelationshipRequest](body, schemaUpdateRelationship, ClassUpdateRelationshipRequest)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, NewInvalidParameterError("body", "a body with properties is required to update a relationship")
	}
	req.Class = ClassUpdateRelationshipRequest
	if err := requireProperties(req.Properties, ClassUpdateRelationshipRequest); err != nil {
		return nil, err
	}
	if err := checkClass(req.Properties, allowed); err != nil {
		return nil, err
	}
	return req, nil
}

// NewClassification validates a body for classifying an element. A nil body becomes
// an empty request.
func NewClassification(body any, allowed ...string) (*NewClassificationRequest, error) {
	req, err := parse[NewClassificationRequest](body, schemaNewClassification, ClassNewClassificationRequest)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &NewClassificationRequest{}
	}
	req.Class = ClassNewClassificationRequest
	if err := checkClass(req.Properties, allowed); err != nil {
		return nil, err
	}
	return req, nil
}

// Filter validates a body for an exact-name query. A nil body is built from filter,
// which must then be non-empty.
func Filter(body any, filter string) (*FilterRequest, error) {
	req, err := parse[FilterRequest](body, schemaFilter, ClassFilterRequest)
	if err != nil {
		return nil, err
	}
	if req == nil {
		if filter == "" {
			return nil, NewInvalidParameterError("filter", "a name or a filter body is required")
		}
		req = &FilterRequest{Filter: filter}
	}
	if req.Filter == "" {
		return nil, NewInvalidParameterError("filter", "filter cannot be empty")
	}
	req.Class = ClassFilterRequest
	return req, nil
}

// MatchAll is the search string that selects every element. It is sent as an
// absent searchString, since the platform reads the member as a regular expression.
const MatchAll = "*"

// Search validates a body for a search-string query. A nil body is built from
// searchString, which must then be non-empty. MatchAll in either place matches
// everything.
func Search(body any, searchString string) (*SearchStringRequest, error) {
	req, err := parse[SearchStringRequest](body, schemaSearchString, ClassSearchStringRequest)
	if err != nil {
		return nil, err
	}
	if req == nil {
		if searchString == "" {
			return nil, NewInvalidParameterError("searchString", "a search string or a search body is required")
		}
		req = &SearchStringRequest{SearchString: searchString}
	}
	if req.SearchString == "" {
		return nil, NewInvalidParameterError("searchString", "search string cannot be empty")
	}
	if req.SearchString == MatchAll {
		req.SearchString = ""
	}
	req.Class = ClassSearchStringRequest
	return req, nil
}

// Results validates a body for paging through related elements. A nil body becomes
// an empty request.
func Results(body any) (*ResultsRequest, error) {
	req, err := parse[ResultsRequest](body, schemaResults, ClassResultsRequest)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &ResultsRequest{}
	}
	req.Class = ClassResultsRequest
	return req, nil
}

// Get validates a body for retrieving one element. A nil body becomes an empty request.
func Get(body any) (*GetRequest, error) {
	req, err := parse[GetRequest](body, schemaGet, ClassGetRequest)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &GetRequest{}
	}
	req.Class = ClassGetRequest
	return req, nil
}

// PropertiesOnly validates a bare properties object, used by endpoints that take the
// properties themselves as the body.
func PropertiesOnly(body any, allowed ...string) (*ElementProperties, error) {
	var props *ElementProperties
	switch b := body.(type) {
	case nil:
		return nil, NewInvalidParameterError("body", "properties are required")
	case *ElementProperties:
		props = b
	case Properties:
		props = Props(b)
	default:
		parsed, err := parse[ElementProperties](body, schemaProperties, "ElementProperties")
		if err != nil {
			return nil, err
		}
		props = parsed
	}
	if err := requireProperties(props, "ElementProperties"); err != nil {
		return nil, err
	}
	if err := checkClass(props, allowed); err != nil {
		return nil, err
	}
	return props, nil
}
