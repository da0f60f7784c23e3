package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fund-client/models"
	"github.com/go-resty/resty/v2"
)

// decodeEnvelope reads the response envelope. The API reports its verdict in
// the body, so the HTTP status only matters when the body is not an envelope
// or omits the status field.
func decodeEnvelope(resp *resty.Response) (models.Envelope, error) {
	var env models.Envelope

	body := bytes.TrimSpace(resp.Body())
	if err := json.Unmarshal(body, &env); err != nil {
		if !resp.IsSuccess() {
			text := string(body)
			if text == "" {
				text = http.StatusText(resp.StatusCode())
			}
			return models.Envelope{}, fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), text)
		}
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if env.Status == 0 {
		env.Status = resp.StatusCode()
	}

	return env, nil
}

// checkStatus converts a refused envelope into a [*StatusError].
func checkStatus(env models.Envelope) error {
	if env.OK() {
		return nil
	}
	return &StatusError{Status: env.Status, Message: env.Error.String()}
}

// decodeResponse checks the envelope status and decodes its payload into v.
func decodeResponse(env models.Envelope, v any) error {
	if err := checkStatus(env); err != nil {
		return err
	}
	if err := env.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
