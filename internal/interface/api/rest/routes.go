package rest

const (
	// api
	RouteAPIV1 = "/v1"

	// auth
	RouteAuth  = RouteAPIV1 + "/auth"
	RouteToken = RouteAuth + "/token"

	RoutePatients       = RouteAPIV1 + "/Patients"
	RoutePatientCreate  = RoutePatients + "/create"
	RoutePatientByID    = RoutePatients + "/id/:id"
	RoutePatientByEmail = RoutePatients + "/email/:email"
	RoutePatientByDNI   = RoutePatients + "/dni/:dni"
	RoutePatientsByName = RoutePatients + "/name/:name"
	RoutePatientDelete  = RoutePatients + "/delete/:id"
	RoutePatientUpdate  = RoutePatients + "/update/:id"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
