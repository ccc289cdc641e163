package lookup

import (
	"errors"
	"strings"

	"nsqtop/internal/shared/svcerrors"
)

const (
	codeLookupAllFailed     = "LOOKUP_1000"
	codeLookupRequestFailed = "LOOKUP_1001"
)

// errAllLookupsFailed returns the cycle-level resolution error raised when
// every configured lookupd address failed. The per-address diagnostics are
// concatenated so the banner names each unreachable directory service.
func errAllLookupsFailed(failures []string) *svcerrors.ServiceError {
	joined := strings.Join(failures, "; ")
	return svcerrors.NewUnavailableError(codeLookupAllFailed, joined, errors.New(joined))
}
