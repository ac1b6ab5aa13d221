package event

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/tailwatch/tailwatch/pkg/models"
)

// fingerprintIdentity is the canonical serialization input for a fingerprint.
// Field order is fixed by the struct definition, so identical inputs always
// produce byte-identical JSON. Timestamp and logs are deliberately excluded
// so transient log noise does not fragment deduplication.
type fingerprintIdentity struct {
	ScriptName string   `json:"scriptName"`
	Exceptions []string `json:"exceptions"`
	URL        string   `json:"url"`
	Method     string   `json:"method"`
}

// Fingerprint computes the stable SHA-256 identity of an error context,
// rendered as 64 lowercase hex digits. An error here is fatal for the event:
// the pipeline must never proceed with an empty or zero fingerprint.
func Fingerprint(ec models.ErrorContext) (string, error) {
	data, err := json.Marshal(fingerprintIdentity{
		ScriptName: ec.ScriptName,
		Exceptions: ec.Exceptions,
		URL:        ec.URL,
		Method:     ec.Method,
	})
	if err != nil {
		return "", fmt.Errorf("serializing fingerprint identity: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
