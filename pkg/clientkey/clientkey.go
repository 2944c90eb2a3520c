package clientkey

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// The upstream profiles callers by client key, so every outbound call
// presents itself as a fresh desktop Chrome install.
var operatingSystems = []string{"Windows", "Mac OS", "Linux"}

// chromeMajorBase is the oldest Chrome major version we impersonate.
const chromeMajorBase = 110

// New returns a synthetic browser identity of the form
// browser-chrome-<major>.<minor>.<patch>-<OS>-<uuid>-<epoch_ms>.
// Uniqueness comes from the UUID plus the millisecond timestamp; no
// stronger guarantee is needed.
func New() string {
	major := chromeMajorBase + rand.Intn(20)
	minor := rand.Intn(10)
	patch := rand.Intn(10000)
	os := operatingSystems[rand.Intn(len(operatingSystems))]

	return fmt.Sprintf("browser-chrome-%d.%d.%d-%s-%s-%d",
		major, minor, patch, os, uuid.New().String(), time.Now().UnixMilli())
}
