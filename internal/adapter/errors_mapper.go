package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

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
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRequestFailed, resp.StatusCode(), message)
	}
}

// errorMessage extracts the human-readable message from an error response:
// the backend's JSON error envelope when present, otherwise the raw body,
// otherwise the status text.
func errorMessage(resp *resty.Response) string {
	var envelope models.APIError
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return body
}
