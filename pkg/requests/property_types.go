package requests

import "time"

// Property discriminators understood by the view services
const (
	ClassCollectionProperties             = "CollectionProperties"
	ClassDigitalProductProperties         = "DigitalProductProperties"
	ClassAgreementProperties              = "AgreementProperties"
	ClassDigitalSubscriptionProperties    = "DigitalSubscriptionProperties"
	ClassDataSpecProperties               = "DataSpecProperties"
	ClassDataDictionaryProperties         = "DataDictionaryProperties"
	ClassGlossaryProperties               = "GlossaryProperties"
	ClassGlossaryTermProperties           = "GlossaryTermProperties"
	ClassGlossaryCategoryProperties       = "GlossaryCategoryProperties"
	ClassProjectProperties                = "ProjectProperties"
	ClassValidValueDefinitionProperties   = "ValidValueDefinitionProperties"
	ClassValidMetadataValueProperties     = "ValidMetadataValueProperties"
	ClassCollectionMembershipProperties   = "CollectionMembershipProperties"
	ClassDigitalProductDependencyProps    = "DigitalProductDependencyProperties"
	ClassAgreementItemProperties          = "AgreementItemProperties"
	ClassProjectTeamProperties            = "ProjectTeamProperties"
	ClassProjectHierarchyProperties       = "ProjectHierarchyProperties"
	ClassProjectDependencyProperties      = "ProjectDependencyProperties"
	ClassGlossaryTermRelationshipProps    = "GlossaryTermRelationshipProperties"
	ClassValidValueMemberProperties       = "ValidValueMemberProperties"
	ClassTemplateClassificationProperties = "TemplateClassificationProperties"
)

func init() {
	registerProperties(
		func() Properties { return &CollectionProperties{} },
		func() Properties { return &DigitalProductProperties{} },
		func() Properties { return &AgreementProperties{} },
		func() Properties { return &DigitalSubscriptionProperties{} },
		func() Properties { return &DataSpecProperties{} },
		func() Properties { return &DataDictionaryProperties{} },
		func() Properties { return &GlossaryProperties{} },
		func() Properties { return &GlossaryTermProperties{} },
		func() Properties { return &GlossaryCategoryProperties{} },
		func() Properties { return &ProjectProperties{} },
		func() Properties { return &ValidValueDefinitionProperties{} },
		func() Properties { return &ValidMetadataValueProperties{} },
		func() Properties { return &CollectionMembershipProperties{} },
		func() Properties { return &DigitalProductDependencyProperties{} },
		func() Properties { return &AgreementItemProperties{} },
		func() Properties { return &ProjectTeamProperties{} },
		func() Properties { return &ProjectHierarchyProperties{} },
		func() Properties { return &ProjectDependencyProperties{} },
		func() Properties { return &GlossaryTermRelationshipProperties{} },
		func() Properties { return &ValidValueMemberProperties{} },
		func() Properties { return &TemplateClassificationProperties{} },
	)
}

// CollectionProperties describes a generic collection
type CollectionProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	Category             string            `json:"category,omitempty"`
	TypeName             string            `json:"typeName,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
	ExtendedProperties   map[string]any    `json:"extendedProperties,omitempty"`
	EffectiveFrom        *time.Time        `json:"effectiveFrom,omitempty"`
	EffectiveTo          *time.Time        `json:"effectiveTo,omitempty"`
}

// Class implements Properties
func (*CollectionProperties) Class() string { return ClassCollectionProperties }

// DigitalProductProperties describes a digital product collection
type DigitalProductProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	Category             string            `json:"category,omitempty"`
	ProductName          string            `json:"productName,omitempty"`
	Identifier           string            `json:"identifier,omitempty"`
	ProductStatus        string            `json:"productStatus,omitempty"`
	MaturityLevel        string            `json:"maturity,omitempty"`
	ServiceLife          string            `json:"serviceLife,omitempty"`
	CurrentVersion       string            `json:"currentVersion,omitempty"`
	IntroductionDate     *time.Time        `json:"introductionDate,omitempty"`
	NextVersionDate      *time.Time        `json:"nextVersionDate,omitempty"`
	WithdrawDate         *time.Time        `json:"withdrawDate,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*DigitalProductProperties) Class() string { return ClassDigitalProductProperties }

// AgreementProperties describes an agreement collection
type AgreementProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	Category             string            `json:"category,omitempty"`
	Identifier           string            `json:"identifier,omitempty"`
	UserDefinedStatus    string            `json:"userDefinedStatus,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*AgreementProperties) Class() string { return ClassAgreementProperties }

// DigitalSubscriptionProperties describes a subscription agreement for a digital product
type DigitalSubscriptionProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	Identifier           string            `json:"identifier,omitempty"`
	SupportLevel         string            `json:"supportLevel,omitempty"`
	ServiceLevels        map[string]string `json:"serviceLevels,omitempty"`
	UserDefinedStatus    string            `json:"userDefinedStatus,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*DigitalSubscriptionProperties) Class() string { return ClassDigitalSubscriptionProperties }

// DataSpecProperties describes a data specification collection
type DataSpecProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	Category             string            `json:"category,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*DataSpecProperties) Class() string { return ClassDataSpecProperties }

// DataDictionaryProperties describes a data dictionary collection
type DataDictionaryProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	Category             string            `json:"category,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*DataDictionaryProperties) Class() string { return ClassDataDictionaryProperties }

// GlossaryProperties describes a glossary
type GlossaryProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	Language             string            `json:"language,omitempty"`
	Usage                string            `json:"usage,omitempty"`
	Category             string            `json:"category,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*GlossaryProperties) Class() string { return ClassGlossaryProperties }

// GlossaryTermProperties describes a glossary term
type GlossaryTermProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Aliases              []string          `json:"aliases,omitempty"`
	Summary              string            `json:"summary,omitempty"`
	Description          string            `json:"description,omitempty"`
	Examples             string            `json:"examples,omitempty"`
	Abbreviation         string            `json:"abbreviation,omitempty"`
	Usage                string            `json:"usage,omitempty"`
	UserDefinedStatus    string            `json:"userDefinedStatus,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*GlossaryTermProperties) Class() string { return ClassGlossaryTermProperties }

// GlossaryCategoryProperties describes a glossary category
type GlossaryCategoryProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*GlossaryCategoryProperties) Class() string { return ClassGlossaryCategoryProperties }

// ProjectProperties describes a project
type ProjectProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	Identifier           string            `json:"identifier,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	ProjectStatus        string            `json:"projectStatus,omitempty"`
	ProjectPhase         string            `json:"projectPhase,omitempty"`
	ProjectHealth        string            `json:"projectHealth,omitempty"`
	Priority             *int              `json:"priority,omitempty"`
	StartDate            *time.Time        `json:"startDate,omitempty"`
	PlannedEndDate       *time.Time        `json:"plannedEndDate,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*ProjectProperties) Class() string { return ClassProjectProperties }

// ValidValueDefinitionProperties describes a reference data (valid value) definition
type ValidValueDefinitionProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	Category             string            `json:"category,omitempty"`
	Usage                string            `json:"usage,omitempty"`
	Scope                string            `json:"scope,omitempty"`
	PreferredValue       string            `json:"preferredValue,omitempty"`
	DataType             string            `json:"dataType,omitempty"`
	IsDeprecated         *bool             `json:"isDeprecated,omitempty"`
	IsCaseSensitive      *bool             `json:"isCaseSensitive,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*ValidValueDefinitionProperties) Class() string { return ClassValidValueDefinitionProperties }

// ValidMetadataValueProperties describes an allowed value for an open metadata property
type ValidMetadataValueProperties struct {
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	Category             string            `json:"category,omitempty"`
	PreferredValue       string            `json:"preferredValue,omitempty"`
	DataType             string            `json:"dataType,omitempty"`
	Scope                string            `json:"scope,omitempty"`
	IsDeprecated         *bool             `json:"isDeprecated,omitempty"`
	IsCaseSensitive      *bool             `json:"isCaseSensitive,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*ValidMetadataValueProperties) Class() string { return ClassValidMetadataValueProperties }

// CollectionMembershipProperties qualifies the membership of an element in a collection
type CollectionMembershipProperties struct {
	MembershipRationale string `json:"membershipRationale,omitempty"`
	Expression          string `json:"expression,omitempty"`
	Confidence          *int   `json:"confidence,omitempty"`
	MembershipStatus    string `json:"membershipStatus,omitempty"`
	Steward             string `json:"steward,omitempty"`
	StewardTypeName     string `json:"stewardTypeName,omitempty"`
	StewardPropertyName string `json:"stewardPropertyName,omitempty"`
	Source              string `json:"source,omitempty"`
	UserDefinedStatus   string `json:"userDefinedStatus,omitempty"`
}

// Class implements Properties
func (*CollectionMembershipProperties) Class() string { return ClassCollectionMembershipProperties }

// DigitalProductDependencyProperties labels a dependency between digital products
type DigitalProductDependencyProperties struct {
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
}

// Class implements Properties
func (*DigitalProductDependencyProperties) Class() string { return ClassDigitalProductDependencyProps }

// AgreementItemProperties qualifies an item covered by an agreement
type AgreementItemProperties struct {
	AgreementItemID   string            `json:"agreementItemId,omitempty"`
	AgreementStart    *time.Time        `json:"agreementStart,omitempty"`
	AgreementEnd      *time.Time        `json:"agreementEnd,omitempty"`
	Restrictions      map[string]string `json:"restrictions,omitempty"`
	Obligations       map[string]string `json:"obligations,omitempty"`
	UsageMeasurements map[string]string `json:"usageMeasurements,omitempty"`
}

// Class implements Properties
func (*AgreementItemProperties) Class() string { return ClassAgreementItemProperties }

// ProjectTeamProperties qualifies membership of an actor in a project team
type ProjectTeamProperties struct {
	TeamRole string `json:"teamRole,omitempty"`
}

// Class implements Properties
func (*ProjectTeamProperties) Class() string { return ClassProjectTeamProperties }

// ProjectHierarchyProperties qualifies a parent/child project link
type ProjectHierarchyProperties struct {
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
}

// Class implements Properties
func (*ProjectHierarchyProperties) Class() string { return ClassProjectHierarchyProperties }

// ProjectDependencyProperties qualifies a dependency between projects
type ProjectDependencyProperties struct {
	DependencySummary string `json:"dependencySummary,omitempty"`
}

// Class implements Properties
func (*ProjectDependencyProperties) Class() string { return ClassProjectDependencyProperties }

// GlossaryTermRelationshipProperties qualifies a semantic relationship between terms
type GlossaryTermRelationshipProperties struct {
	Expression  string `json:"expression,omitempty"`
	Confidence  *int   `json:"confidence,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Steward     string `json:"steward,omitempty"`
	Source      string `json:"source,omitempty"`
}

// Class implements Properties
func (*GlossaryTermRelationshipProperties) Class() string { return ClassGlossaryTermRelationshipProps }

// ValidValueMemberProperties qualifies membership of a valid value in a valid value set
type ValidValueMemberProperties struct {
	IsDefaultValue *bool `json:"isDefaultValue,omitempty"`
}

// Class implements Properties
func (*ValidValueMemberProperties) Class() string { return ClassValidValueMemberProperties }

// TemplateClassificationProperties marks an element as a template
type TemplateClassificationProperties struct {
	DisplayName          string            `json:"name,omitempty"`
	Description          string            `json:"description,omitempty"`
	VersionIdentifier    string            `json:"versionIdentifier,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Class implements Properties
func (*TemplateClassificationProperties) Class() string { return ClassTemplateClassificationProperties }
