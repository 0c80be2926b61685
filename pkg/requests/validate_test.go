package requests

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewElement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      any
		allowed   []string
		wantClass string
		wantParam string
		wantPaths []string
		wantQName string
	}{
		{
			name: "typed body",
			body: &NewElementRequest{
				Properties: Props(&CollectionProperties{QualifiedName: "Collection::a", DisplayName: "a"}),
			},
			allowed:   []string{ClassCollectionProperties},
			wantClass: ClassCollectionProperties,
			wantQName: "Collection::a",
		},
		{
			name: "raw mapping",
			body: map[string]any{
				"class":       "NewElementRequestBody",
				"isOwnAnchor": true,
				"properties": map[string]any{
					"class":         "GlossaryProperties",
					"qualifiedName": "Glossary::g",
				},
			},
			wantClass: ClassGlossaryProperties,
		},
		{
			name:      "raw mapping with null members",
			body:      []byte(`{"anchorGUID":null,"properties":{"class":"ProjectProperties","qualifiedName":"Project::p","description":null}}`),
			wantClass: ClassProjectProperties,
		},
		{
			name:      "nil body",
			body:      nil,
			wantParam: "body",
		},
		{
			name:      "typed body without properties",
			body:      &NewElementRequest{AnchorGUID: "a"},
			wantParam: "properties",
		},
		{
			name: "discriminator mismatch",
			body: &NewElementRequest{
				Properties: Props(&GlossaryProperties{QualifiedName: "Glossary::g"}),
			},
			allowed:   []string{ClassCollectionProperties, ClassDigitalProductProperties},
			wantParam: "properties.class",
		},
		{
			name:      "raw mapping missing properties",
			body:      map[string]any{"anchorGUID": "x"},
			wantPaths: []string{"/properties"},
		},
		{
			name:      "raw mapping with unknown member",
			body:      map[string]any{"bogus": 1, "properties": map[string]any{"class": "CollectionProperties"}},
			wantPaths: []string{"/bogus"},
		},
		{
			name:      "raw properties without class",
			body:      map[string]any{"properties": map[string]any{"qualifiedName": "x"}},
			wantPaths: []string{"/properties/class"},
		},
		{
			name:      "raw properties with unknown class",
			body:      map[string]any{"properties": map[string]any{"class": "NoSuchProperties"}},
			wantPaths: []string{"/properties/class"},
		},
		{
			name:      "raw properties with unknown member",
			body:      map[string]any{"properties": map[string]any{"class": "CollectionProperties", "colour": "red"}},
			wantPaths: []string{"/properties/colour"},
		},
		{
			name:      "unsupported body type",
			body:      42,
			wantParam: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := NewElement(tt.body, tt.allowed...)

			switch {
			case tt.wantParam != "":
				require.Error(t, err)
				var ipe *InvalidParameterError
				require.ErrorAs(t, err, &ipe)
				assert.Equal(t, tt.wantParam, ipe.Parameter)
				assert.Nil(t, req)
			case tt.wantPaths != nil:
				require.Error(t, err)
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantPaths, ve.Paths())
				assert.Nil(t, req)
			default:
				require.NoError(t, err)
				require.NotNil(t, req)
				assert.Equal(t, ClassNewElementRequest, req.Class)
				assert.Equal(t, tt.wantClass, req.Properties.Class())
				if tt.wantQName != "" {
					props, ok := req.Properties.Value.(*CollectionProperties)
					require.True(t, ok)
					assert.Equal(t, tt.wantQName, props.QualifiedName)
				}
			}
		})
	}
}

func TestNewElementDoesNotMutateCaller(t *testing.T) {
	t.Parallel()

	body := &NewElementRequest{Properties: Props(&CollectionProperties{QualifiedName: "q"})}
	req, err := NewElement(body)
	require.NoError(t, err)

	assert.Equal(t, ClassNewElementRequest, req.Class)
	assert.Empty(t, body.Class)
}

func TestRoundTripIsStable(t *testing.T) {
	t.Parallel()

	original := &UpdateElementRequest{
		ExternalSource: ExternalSource{ExternalSourceName: "catalog"},
		MergeUpdate:    Bool(true),
		Properties: Props(&GlossaryTermProperties{
			QualifiedName: "GlossaryTerm::t",
			DisplayName:   "t",
			Summary:       "a term",
		}),
	}

	first, err := UpdateElement(original, ClassGlossaryTermProperties)
	require.NoError(t, err)

	wire, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := UpdateElement(json.RawMessage(wire), ClassGlossaryTermProperties)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("round trip changed the body (-first +second):\n%s", diff)
	}

	again, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(wire), string(again))
}

func TestPropertiesCarryDiscriminator(t *testing.T) {
	t.Parallel()

	req, err := NewElement(&NewElementRequest{
		Properties: Props(&ProjectProperties{QualifiedName: "Project::p"}),
	})
	require.NoError(t, err)

	wire, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"class":"NewElementRequestBody","properties":{"class":"ProjectProperties","qualifiedName":"Project::p"}}`,
		string(wire))
}

func TestDelete(t *testing.T) {
	t.Parallel()

	req, err := Delete(nil, true)
	require.NoError(t, err)
	wire, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"class":"DeleteRequestBody","cascadeDelete":true}`, string(wire))

	req, err = Delete(map[string]any{"externalSourceName": "x"}, true)
	require.NoError(t, err)
	assert.Nil(t, req.CascadeDelete)
	assert.Equal(t, "x", req.ExternalSourceName)

	_, err = Delete(map[string]any{"cascadeDelete": "yes"}, false)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"/cascadeDelete"}, ve.Paths())
}

func TestOptionalBodiesDefault(t *testing.T) {
	t.Parallel()

	rel, err := NewRelationship(nil, ClassCollectionMembershipProperties)
	require.NoError(t, err)
	assert.Equal(t, ClassNewRelationshipRequest, rel.Class)
	assert.Nil(t, rel.Properties)

	cls, err := NewClassification(nil)
	require.NoError(t, err)
	assert.Equal(t, ClassNewClassificationRequest, cls.Class)

	res, err := Results(nil)
	require.NoError(t, err)
	assert.Equal(t, ClassResultsRequest, res.Class)

	get, err := Get(nil)
	require.NoError(t, err)
	assert.Equal(t, ClassGetRequest, get.Class)

	_, err = UpdateRelationship(nil)
	var ipe *InvalidParameterError
	require.ErrorAs(t, err, &ipe)
}

func TestNewRelationshipRejectsWrongClass(t *testing.T) {
	t.Parallel()

	_, err := NewRelationship(&NewRelationshipRequest{
		Properties: Props(&ProjectTeamProperties{TeamRole: "lead"}),
	}, ClassCollectionMembershipProperties)

	var ipe *InvalidParameterError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "properties.class", ipe.Parameter)
	assert.Contains(t, ipe.Reason, ClassProjectTeamProperties)
}

func TestFilterAndSearch(t *testing.T) {
	t.Parallel()

	f, err := Filter(nil, "Glossary::g")
	require.NoError(t, err)
	assert.Equal(t, "Glossary::g", f.Filter)
	assert.Equal(t, ClassFilterRequest, f.Class)

	_, err = Filter(nil, "")
	var ipe *InvalidParameterError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "filter", ipe.Parameter)

	_, err = Filter(map[string]any{"filter": ""}, "ignored")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"/filter"}, ve.Paths())

	s, err := Search(nil, "term")
	require.NoError(t, err)
	assert.Equal(t, "term", s.SearchString)

	s, err = Search(&SearchStringRequest{SearchString: "term", Paging: Paging{PageSize: 10}}, "")
	require.NoError(t, err)
	assert.Equal(t, 10, s.PageSize)
	assert.Equal(t, ClassSearchStringRequest, s.Class)

	_, err = Search(nil, "")
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "searchString", ipe.Parameter)

	_, err = Search(map[string]any{"searchString": "x", "pageSize": -1}, "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"/pageSize"}, ve.Paths())
}

func TestSearchMatchAllOmitsSearchString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body any
		want string
	}{
		{
			name: "default body",
			body: nil,
			want: `{"class":"SearchStringRequestBody"}`,
		},
		{
			name: "typed body",
			body: &SearchStringRequest{SearchString: MatchAll, StartsWith: Bool(true)},
			want: `{"class":"SearchStringRequestBody","startsWith":true}`,
		},
		{
			name: "raw mapping",
			body: map[string]any{"searchString": "*", "pageSize": 10},
			want: `{"class":"SearchStringRequestBody","pageSize":10}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := Search(tt.body, MatchAll)
			require.NoError(t, err)
			wire, err := json.Marshal(req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(wire))
		})
	}
}

func TestTimeFieldErrorsCarryTheirPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		validate  func() error
		wantPaths []string
	}{
		{
			name: "delete effective time",
			validate: func() error {
				_, err := Delete(map[string]any{"effectiveTime": "yesterday"}, false)
				return err
			},
			wantPaths: []string{"/effectiveTime"},
		},
		{
			name: "search as-of time",
			validate: func() error {
				_, err := Search(map[string]any{"searchString": "x", "asOfTime": "2024-13-45"}, "")
				return err
			},
			wantPaths: []string{"/asOfTime"},
		},
		{
			name: "property date",
			validate: func() error {
				_, err := NewElement(map[string]any{"properties": map[string]any{
					"class":     "ProjectProperties",
					"startDate": "next week",
				}})
				return err
			},
			wantPaths: []string{"/properties/startDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.validate()
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantPaths, ve.Paths())
		})
	}

	req, err := Delete(map[string]any{"effectiveTime": "2024-06-01T10:00:00Z"}, false)
	require.NoError(t, err)
	require.NotNil(t, req.EffectiveTime)
	assert.Equal(t, 2024, req.EffectiveTime.Year())
}

func TestPropertiesOnly(t *testing.T) {
	t.Parallel()

	props, err := PropertiesOnly(&ValidValueDefinitionProperties{QualifiedName: "VV::x"}, ClassValidValueDefinitionProperties)
	require.NoError(t, err)
	assert.Equal(t, ClassValidValueDefinitionProperties, props.Class())

	props, err = PropertiesOnly(map[string]any{"class": "ValidMetadataValueProperties", "preferredValue": "x"})
	require.NoError(t, err)
	assert.Equal(t, ClassValidMetadataValueProperties, props.Class())

	_, err = PropertiesOnly(map[string]any{"preferredValue": "x"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"/class"}, ve.Paths())

	_, err = PropertiesOnly(nil)
	var ipe *InvalidParameterError
	require.ErrorAs(t, err, &ipe)
}

func TestKnownClasses(t *testing.T) {
	t.Parallel()

	classes := KnownClasses()
	assert.Contains(t, classes, ClassCollectionProperties)
	assert.Contains(t, classes, ClassTemplateClassificationProperties)
	assert.IsIncreasing(t, classes)
}
