package transport

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
	"github.com/ANcpLua/qyl/pkg/serialization"
)

// Dispatch turns a complete response into a model or an error:
//
//   - 2xx: body decoded with factory; 204, an empty body or a nil factory
//     yield (nil, nil).
//   - mapped non-2xx: body decoded with the mapped factory and returned as
//     *request.APIError.
//   - unmapped non-2xx: *request.TransportError with the raw body and, when
//     the body is problem+json, the decoded problem.
//
// A body that violates the model contract yields an error wrapping
// *serialization.ContractViolation.
func Dispatch(status int, header http.Header, body []byte, factory serialization.Factory[serialization.Parsable], mapping request.ErrorMapping) (serialization.Parsable, error) {
	if status >= 200 && status < 300 {
		if status == http.StatusNoContent || factory == nil || len(bytes.TrimSpace(body)) == 0 {
			return nil, nil
		}
		v, err := serialization.Unmarshal(body, factory)
		if err != nil {
			return nil, fmt.Errorf("decoding %d response: %w", status, err)
		}
		return v, nil
	}

	if errFactory, ok := mapping.Lookup(status); ok {
		v, err := serialization.Unmarshal(body, errFactory)
		if err != nil {
			return nil, &request.TransportError{
				StatusCode: status,
				Body:       body,
				Err:        fmt.Errorf("decoding %d error body: %w", status, err),
			}
		}
		return nil, request.NewAPIError(status, v, header)
	}

	tErr := &request.TransportError{StatusCode: status, Body: body}
	if isProblem(header) {
		if p, err := serialization.Unmarshal(body, models.NewProblem); err == nil {
			tErr.Problem = p
		}
	}
	return nil, tErr
}

func isProblem(header http.Header) bool {
	mt, _, err := mime.ParseMediaType(header.Get("Content-Type"))
	return err == nil && mt == request.ContentTypeProblemJSON
}
