package event

import (
	"encoding/json"
	"errors"
)

// ErrNoAction is returned for payloads that do not name an admin action
var ErrNoAction = errors.New("event payload has no action")

// ActionPayload extracts the admin action carried by evt. Events published
// in-process carry the struct itself; payloads that went through JSON arrive
// as maps and are converted.
func ActionPayload(evt Event) (AdminActionPayloadV1, error) {
	var p AdminActionPayloadV1
	switch v := evt.Payload.(type) {
	case AdminActionPayloadV1:
		p = v
	case *AdminActionPayloadV1:
		if v != nil {
			p = *v
		}
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return p, err
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return p, err
		}
	}
	if p.Action == "" {
		return p, ErrNoAction
	}
	return p, nil
}
