package referencedata_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/referencedata"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

const servicePath = "/servers/view-server/api/open-metadata/reference-data/"

const definitions = `{"elements":[
  {"elementHeader":{"guid":"vv-1","type":{"typeName":"ValidValueDefinition"}},
   "properties":{"displayName":"Colour","qualifiedName":"ValidValue::Colour","category":"palette",
                 "preferredValue":"colour","dataType":"string","isCaseSensitive":false}},
  {"elementHeader":{"guid":"vv-2","type":{"typeName":"ValidValueDefinition"}},
   "properties":{"displayName":"Red","qualifiedName":"ValidValue::Colour::Red","preferredValue":"red"}}
]}`

var _ = Describe("Manager", func() {
	var (
		server   *httptest.Server
		manager  *referencedata.Manager
		response string
		status   int
		lastPath string
		lastBody map[string]any
	)

	BeforeEach(func() {
		response = `{"relatedHTTPCode":200}`
		status = http.StatusOK
		lastPath = ""
		lastBody = nil

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.Method).To(Equal(http.MethodPost))
			lastPath = strings.TrimPrefix(r.URL.Path, servicePath)
			data, err := io.ReadAll(r.Body)
			Expect(err).NotTo(HaveOccurred())
			lastBody = nil
			if len(data) > 0 {
				Expect(json.Unmarshal(data, &lastBody)).To(Succeed())
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(response))
		}))
		server.Config.SetKeepAlivesEnabled(false)

		client, err := egeria.NewClient(egeria.Config{
			PlatformURL: server.URL,
			ServerName:  "view-server",
			UserID:      "garygeeke",
			PageSize:    25,
		})
		Expect(err).NotTo(HaveOccurred())
		manager = referencedata.NewManager(client)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("CreateValidValueDefinition", func() {
		It("returns the new guid", func() {
			response = `{"guid":"vv-9"}`
			guid, err := manager.CreateValidValueDefinition(context.Background(), &requests.NewElementRequest{
				Properties: requests.Props(&requests.ValidValueDefinitionProperties{
					QualifiedName:  "ValidValue::Colour::Blue",
					PreferredValue: "blue",
				}),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(guid).To(Equal("vv-9"))
			Expect(lastPath).To(Equal("valid-value-definitions"))
			Expect(lastBody).To(HaveKeyWithValue("class", requests.ClassNewElementRequest))
			Expect(lastBody["properties"]).To(HaveKeyWithValue("class", requests.ClassValidValueDefinitionProperties))
		})

		It("rejects other property classes without calling the platform", func() {
			_, err := manager.CreateValidValueDefinition(context.Background(), &requests.NewElementRequest{
				Properties: requests.Props(&requests.GlossaryProperties{QualifiedName: "Glossary::A"}),
			})
			var ipe *requests.InvalidParameterError
			Expect(errors.As(err, &ipe)).To(BeTrue())
			Expect(ipe.Parameter).To(Equal("properties.class"))
			Expect(lastPath).To(BeEmpty())
		})
	})

	Describe("UpdateValidValueDefinition and DeleteValidValueDefinition", func() {
		It("posts to the element paths", func() {
			err := manager.UpdateValidValueDefinition(context.Background(), "vv-1", &requests.UpdateElementRequest{
				Properties: requests.Props(&requests.ValidValueDefinitionProperties{Description: "colours"}),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(lastPath).To(Equal("valid-value-definitions/vv-1/update"))

			Expect(manager.DeleteValidValueDefinition(context.Background(), "vv-1", nil, false)).To(Succeed())
			Expect(lastPath).To(Equal("valid-value-definitions/vv-1/delete"))
			Expect(lastBody).To(HaveKeyWithValue("cascadeDelete", false))
		})

		It("requires a guid", func() {
			err := manager.DeleteValidValueDefinition(context.Background(), "", nil, false)
			Expect(err).To(MatchError(ContainSubstring("validValueDefinitionGUID")))
		})
	})

	Describe("queries", func() {
		BeforeEach(func() {
			response = definitions
		})

		It("finds definitions with the configured page size", func() {
			res, err := manager.FindValidValueDefinitions(context.Background(), "Colour",
				&requests.SearchStringRequest{SearchString: "Colour"}, output.Options{Format: output.DICT})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Found()).To(BeTrue())
			Expect(lastPath).To(Equal("valid-value-definitions/by-search-string"))
			Expect(lastBody).To(HaveKeyWithValue("pageSize", BeNumerically("==", 25)))

			rows := res.Value().Rows
			Expect(rows).To(HaveLen(2))
			Expect(rows[0]).To(HaveKeyWithValue("Preferred Value", "colour"))
			Expect(rows[0]).To(HaveKeyWithValue("Is Case Sensitive", false))
			Expect(rows[1]).To(HaveKeyWithValue("Category", BeNil()))
		})

		It("gets definitions by name", func() {
			res, err := manager.GetValidValueDefinitionsByName(context.Background(), "Colour", nil,
				output.Options{Format: output.LIST})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Value().Text).To(ContainSubstring("ValidValue::Colour::Red"))
			Expect(lastBody).To(HaveKeyWithValue("filter", "Colour"))
		})

		It("lists members", func() {
			res, err := manager.GetValidValueMembers(context.Background(), "vv-1", nil, output.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Value().Elements).To(HaveLen(2))
			Expect(lastPath).To(Equal("valid-value-definitions/vv-1/members"))
		})

		It("reports nothing found", func() {
			response = `{"elements":[]}`
			res, err := manager.FindValidValueDefinitions(context.Background(), "*", nil, output.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Found()).To(BeFalse())
			Expect(res.String()).To(Equal(egeria.NoElementsFound))
		})
	})

	Describe("GetValidValueDefinitionByGUID", func() {
		It("returns the element", func() {
			response = `{"element":{"elementHeader":{"guid":"vv-1"},"properties":{"displayName":"Colour"}}}`
			res, err := manager.GetValidValueDefinitionByGUID(context.Background(), "vv-1", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Value().DisplayName()).To(Equal("Colour"))
			Expect(lastPath).To(Equal("valid-value-definitions/vv-1/retrieve"))
		})
	})

	Describe("members", func() {
		It("attaches with member properties and detaches", func() {
			err := manager.AddValidValueMember(context.Background(), "vv-1", "vv-2", &requests.NewRelationshipRequest{
				Properties: requests.Props(&requests.ValidValueMemberProperties{IsDefaultValue: requests.Bool(true)}),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(lastPath).To(Equal("valid-value-definitions/vv-1/members/vv-2/attach"))
			Expect(lastBody["properties"]).To(HaveKeyWithValue("isDefaultValue", true))

			Expect(manager.RemoveValidValueMember(context.Background(), "vv-1", "vv-2", nil)).To(Succeed())
			Expect(lastPath).To(Equal("valid-value-definitions/vv-1/members/vv-2/detach"))
		})

		It("surfaces platform errors", func() {
			status = http.StatusBadRequest
			response = `{"relatedHTTPCode":400,"exceptionErrorMessage":"OMAG-COMMON-400-018 unknown guid"}`
			err := manager.AddValidValueMember(context.Background(), "vv-1", "missing", nil)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("OMAG-COMMON-400-018"))
		})
	})
})
