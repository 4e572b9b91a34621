package errors

import (
	"net/http"

	"github.com/ecoleta-discovery/internal/domain"
)

func withKind(e *AppError, kind domain.ErrorKind) *AppError {
	e.Kind = kind
	return e
}

var (
	ErrCatalogUnavailable = withKind(New(
		"CATALOG_ERROR",
		"Could not load the material categories",
		http.StatusBadGateway,
	), domain.ErrorKindCatalog)

	ErrLocationDenied = withKind(New(
		"LOCATION_DENIED",
		"Location permission is required to show collection points nearby",
		http.StatusForbidden,
	), domain.ErrorKindLocationDenied)

	ErrLocationUnavailable = withKind(New(
		"LOCATION_ERROR",
		"Could not determine the current position",
		http.StatusServiceUnavailable,
	), domain.ErrorKindLocation)

	ErrPointsUnavailable = withKind(New(
		"POINTS_ERROR",
		"Could not load collection points",
		http.StatusBadGateway,
	), domain.ErrorKindPoints)

	ErrDetailUnavailable = withKind(New(
		"DETAIL_ERROR",
		"Could not load the collection point",
		http.StatusBadGateway,
	), domain.ErrorKindDetail)
)

var (
	ErrDetailNotLoaded = New(
		"DETAIL_NOT_LOADED",
		"Collection point has not been loaded yet",
		http.StatusConflict,
	)

	ErrInvalidPointID = New(
		"INVALID_POINT_ID",
		"Invalid collection point ID",
		http.StatusBadRequest,
	)

	ErrInvalidCategoryID = New(
		"INVALID_CATEGORY_ID",
		"Invalid category ID",
		http.StatusBadRequest,
	)

	ErrControllerStopped = New(
		"CONTROLLER_STOPPED",
		"Discovery session is not running",
		http.StatusServiceUnavailable,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
