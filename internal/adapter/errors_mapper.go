package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/project-elevate/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// responseMessage extracts the "message" field of an error body, falling back
// to the raw body and then to the status text.
func responseMessage(resp *resty.Response) string {
	var msg models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &msg); err == nil && msg.Message != "" {
		return msg.Message
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}

	return http.StatusText(resp.StatusCode())
}
