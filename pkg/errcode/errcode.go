package errcode

import (
	"errors"

	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Fetch errors
	FetchRequestError
	FetchHTTPError
	FetchTransportError

	// Extract errors
	ExtractDataContractError

	// Load errors
	LoadNoIterationsError
	LoadAllIterationsFailedError
	LoadCancelledError
	LoadUnknownDatasetError

	// Database errors
	DBUnknownBackendError
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBCreateSchemaError
	DBDropTableError
	DBCreateTableError
	DBWriteRowsError
)

// Error kinds used in structured logs. They group error codes the way the
// load driver treats them.
const (
	KindHTTP         = "http"
	KindTransport    = "transport"
	KindDataContract = "data_contract"
	KindPersistence  = "persistence"
	KindUnknown      = "unknown"
)

// Kind returns the log kind of an error created with one of the codes
// above. Errors that are not *gn.Error are of KindUnknown.
func Kind(err error) string {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return KindUnknown
	}

	switch gnErr.Code {
	case FetchHTTPError:
		return KindHTTP
	case FetchRequestError, FetchTransportError:
		return KindTransport
	case ExtractDataContractError:
		return KindDataContract
	case DBUnknownBackendError, DBConnectionError, DBNotConnectedError,
		DBTableExistsCheckError, DBCreateSchemaError, DBDropTableError,
		DBCreateTableError, DBWriteRowsError:
		return KindPersistence
	default:
		return KindUnknown
	}
}
