// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"bytes"
	"encoding/json"

	"github.com/mooons/mcphub/models"
)

// listPayloadKind tags the recognized shapes of a gateway list response.
type listPayloadKind int

const (
	// payloadMalformed covers everything the other two kinds do not:
	// envelopes with success == false, non-array data, unparseable bodies.
	payloadMalformed listPayloadKind = iota
	// payloadEnvelope is {success: true, data: [...], pagination?: {...}}.
	payloadEnvelope
	// payloadBareArray is a raw JSON array of servers.
	payloadBareArray
)

// listPayload is the result of parsing a list response body. Servers and
// Pagination are only meaningful for the envelope and bare-array kinds;
// Message carries the gateway-provided reason for a rejected envelope.
type listPayload struct {
	kind       listPayloadKind
	servers    []models.Server
	pagination *models.PaginationInfo
	message    string
}

// parseServerList normalizes the two tolerated list response shapes into a
// tagged result. It never returns an error: shape problems are reported as
// the malformed kind so the caller decides how to surface them.
func parseServerList(body []byte) listPayload {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return listPayload{kind: payloadMalformed}
	}

	switch trimmed[0] {
	case '[':
		var servers []models.Server
		if err := json.Unmarshal(trimmed, &servers); err != nil {
			return listPayload{kind: payloadMalformed}
		}
		if servers == nil {
			servers = []models.Server{}
		}
		return listPayload{kind: payloadBareArray, servers: servers}

	case '{':
		var env models.ServerListEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return listPayload{kind: payloadMalformed}
		}
		if !env.Success {
			return listPayload{kind: payloadMalformed, message: env.Message}
		}

		var servers []models.Server
		if err := json.Unmarshal(env.Data, &servers); err != nil {
			return listPayload{kind: payloadMalformed, message: env.Message}
		}
		if servers == nil {
			servers = []models.Server{}
		}
		return listPayload{kind: payloadEnvelope, servers: servers, pagination: env.Pagination}

	default:
		return listPayload{kind: payloadMalformed}
	}
}
