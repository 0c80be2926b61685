package httpclient_test

import (
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stacklok/egeria-client-go/pkg/httpclient"
)

var _ = Describe("APIError", func() {
	Describe("NewAPIError", func() {
		It("should lift the exception fields of an Egeria envelope", func() {
			body := []byte(`{
				"class": "VoidResponse",
				"relatedHTTPCode": 400,
				"exceptionErrorMessage": "OMAG-COMMON-400-004 The unique identifier (guid) passed is null",
				"exceptionErrorMessageId": "OMAG-COMMON-400-004",
				"exceptionSystemAction": "The system is unable to process the request.",
				"exceptionUserAction": "Correct the code in the caller to provide the guid."
			}`)

			err := httpclient.NewAPIError(http.StatusBadRequest, "http://platform/servers/view", body)

			Expect(err.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(err.ErrorCode).To(Equal("OMAG-COMMON-400-004"))
			Expect(err.SystemAction).To(Equal("The system is unable to process the request."))
			Expect(err.UserAction).To(Equal("Correct the code in the caller to provide the guid."))
			Expect(err.Error()).To(Equal(
				"HTTP 400 for URL http://platform/servers/view [OMAG-COMMON-400-004]: " +
					"OMAG-COMMON-400-004 The unique identifier (guid) passed is null"))
		})

		It("should keep a plain text body as the message", func() {
			err := httpclient.NewAPIError(http.StatusBadGateway, "http://example.com", []byte("Bad Gateway\n"))
			Expect(err.ErrorMessage).To(Equal("Bad Gateway"))
			Expect(err.Error()).To(Equal("HTTP 502 for URL http://example.com: Bad Gateway"))
		})

		It("should handle an empty body", func() {
			err := httpclient.NewAPIError(http.StatusNotFound, "http://example.com", nil)
			Expect(err.Error()).To(Equal("HTTP 404 for URL http://example.com"))
		})
	})
})

var _ = Describe("ConnectionError", func() {
	It("should wrap the transport error", func() {
		cause := errors.New("connection refused")
		err := &httpclient.ConnectionError{URL: "http://localhost:9443", Err: cause}

		Expect(err.Error()).To(Equal("failed to execute request to http://localhost:9443: connection refused"))
		Expect(errors.Is(err, cause)).To(BeTrue())
	})
})
