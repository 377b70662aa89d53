package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidLimit = New(
		"INVALID_LIMIT",
		"Invalid limit value",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	// ErrSourceUnavailable - отказ геопоиска или референсного источника
	// контента, когда деградировать уже некуда. Ретраибельная ошибка.
	ErrSourceUnavailable = New(
		"SOURCE_UNAVAILABLE",
		"Upstream knowledge source is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrSpeechFailed = New(
		"TTS_FAILED",
		"Speech synthesis failed",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
