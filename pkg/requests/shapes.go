package requests

import "time"

// Request classes sent as the "class" member of each body shape
const (
	ClassNewElementRequest         = "NewElementRequestBody"
	ClassUpdateElementRequest      = "UpdateElementRequestBody"
	ClassDeleteRequest             = "DeleteRequestBody"
	ClassNewRelationshipRequest    = "NewRelationshipRequestBody"
	ClassUpdateRelationshipRequest = "UpdateRelationshipRequestBody"
	ClassNewClassificationRequest  = "NewClassificationRequestBody"
	ClassFilterRequest             = "FilterRequestBody"
	ClassSearchStringRequest       = "SearchStringRequestBody"
	ClassResultsRequest            = "ResultsRequestBody"
	ClassGetRequest                = "GetRequestBody"
)

// ExternalSource identifies the external metadata source that owns an element
type ExternalSource struct {
	ExternalSourceGUID string `json:"externalSourceGUID,omitempty"`
	ExternalSourceName string `json:"externalSourceName,omitempty"`
}

// Paging carries the paging, sequencing and time qualifiers shared by query shapes
type Paging struct {
	StartFrom              int        `json:"startFrom,omitempty"`
	PageSize               int        `json:"pageSize,omitempty"`
	AsOfTime               *time.Time `json:"asOfTime,omitempty"`
	EffectiveTime          *time.Time `json:"effectiveTime,omitempty"`
	LimitResultsByStatus   []string   `json:"limitResultsByStatus,omitempty"`
	SequencingOrder        string     `json:"sequencingOrder,omitempty"`
	SequencingProperty     string     `json:"sequencingProperty,omitempty"`
	ForLineage             *bool      `json:"forLineage,omitempty"`
	ForDuplicateProcessing *bool      `json:"forDuplicateProcessing,omitempty"`
}

// SetDefaultPageSize sets PageSize to n when the caller left it unset
func (p *Paging) SetDefaultPageSize(n int) {
	if p.PageSize == 0 {
		p.PageSize = n
	}
}

// NewElementRequest creates an element, optionally anchored and linked to a parent
type NewElementRequest struct {
	Class string `json:"class,omitempty"`
	ExternalSource
	EffectiveTime                *time.Time                    `json:"effectiveTime,omitempty"`
	ForLineage                   *bool                         `json:"forLineage,omitempty"`
	ForDuplicateProcessing       *bool                         `json:"forDuplicateProcessing,omitempty"`
	AnchorGUID                   string                        `json:"anchorGUID,omitempty"`
	IsOwnAnchor                  *bool                         `json:"isOwnAnchor,omitempty"`
	AnchorScopeGUID              string                        `json:"anchorScopeGUID,omitempty"`
	ParentGUID                   string                        `json:"parentGUID,omitempty"`
	ParentRelationshipTypeName   string                        `json:"parentRelationshipTypeName,omitempty"`
	ParentRelationshipProperties *ElementProperties            `json:"parentRelationshipProperties,omitempty"`
	ParentAtEnd1                 *bool                         `json:"parentAtEnd1,omitempty"`
	Properties                   *ElementProperties            `json:"properties,omitempty"`
	InitialClassifications       map[string]*ElementProperties `json:"initialClassifications,omitempty"`
}

// UpdateElementRequest updates the properties of an element
type UpdateElementRequest struct {
	Class string `json:"class,omitempty"`
	ExternalSource
	MergeUpdate            *bool              `json:"mergeUpdate,omitempty"`
	EffectiveTime          *time.Time         `json:"effectiveTime,omitempty"`
	ForLineage             *bool              `json:"forLineage,omitempty"`
	ForDuplicateProcessing *bool              `json:"forDuplicateProcessing,omitempty"`
	Properties             *ElementProperties `json:"properties,omitempty"`
}

// DeleteRequest deletes an element, detaches a relationship or removes a classification
type DeleteRequest struct {
	Class string `json:"class,omitempty"`
	ExternalSource
	CascadeDelete          *bool      `json:"cascadeDelete,omitempty"`
	EffectiveTime          *time.Time `json:"effectiveTime,omitempty"`
	ForLineage             *bool      `json:"forLineage,omitempty"`
	ForDuplicateProcessing *bool      `json:"forDuplicateProcessing,omitempty"`
}

// NewRelationshipRequest creates a relationship between two elements
type NewRelationshipRequest struct {
	Class string `json:"class,omitempty"`
	ExternalSource
	EffectiveTime          *time.Time         `json:"effectiveTime,omitempty"`
	ForLineage             *bool              `json:"forLineage,omitempty"`
	ForDuplicateProcessing *bool              `json:"forDuplicateProcessing,omitempty"`
	Properties             *ElementProperties `json:"properties,omitempty"`
}

// UpdateRelationshipRequest updates the properties of a relationship
type UpdateRelationshipRequest struct {
	Class string `json:"class,omitempty"`
	ExternalSource
	MergeUpdate            *bool              `json:"mergeUpdate,omitempty"`
	EffectiveTime          *time.Time         `json:"effectiveTime,omitempty"`
	ForLineage             *bool              `json:"forLineage,omitempty"`
	ForDuplicateProcessing *bool              `json:"forDuplicateProcessing,omitempty"`
	Properties             *ElementProperties `json:"properties,omitempty"`
}

// NewClassificationRequest adds a classification to an element
type NewClassificationRequest struct {
	Class string `json:"class,omitempty"`
	ExternalSource
	EffectiveTime          *time.Time         `json:"effectiveTime,omitempty"`
	ForLineage             *bool              `json:"forLineage,omitempty"`
	ForDuplicateProcessing *bool              `json:"forDuplicateProcessing,omitempty"`
	Properties             *ElementProperties `json:"properties,omitempty"`
}

// FilterRequest retrieves elements whose name matches Filter exactly
type FilterRequest struct {
	Class string `json:"class,omitempty"`
	Paging
	Filter                  string `json:"filter,omitempty"`
	MetadataElementTypeName string `json:"metadataElementTypeName,omitempty"`
}

// SearchStringRequest retrieves elements whose properties match SearchString
type SearchStringRequest struct {
	Class string `json:"class,omitempty"`
	Paging
	SearchString            string `json:"searchString,omitempty"`
	StartsWith              *bool  `json:"startsWith,omitempty"`
	EndsWith                *bool  `json:"endsWith,omitempty"`
	IgnoreCase              *bool  `json:"ignoreCase,omitempty"`
	MetadataElementTypeName string `json:"metadataElementTypeName,omitempty"`
}

// ResultsRequest pages through elements related to a known element
type ResultsRequest struct {
	Class string `json:"class,omitempty"`
	Paging
}

// GetRequest qualifies the retrieval of a single element
type GetRequest struct {
	Class                  string     `json:"class,omitempty"`
	AsOfTime               *time.Time `json:"asOfTime,omitempty"`
	EffectiveTime          *time.Time `json:"effectiveTime,omitempty"`
	ForLineage             *bool      `json:"forLineage,omitempty"`
	ForDuplicateProcessing *bool      `json:"forDuplicateProcessing,omitempty"`
}

// Bool returns a pointer to b, for the optional flags of request shapes
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i
func Int(i int) *int {
	return &i
}
