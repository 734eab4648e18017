package visit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"vetclinic/infras/otel"
	"vetclinic/internal/domains/visit/model/dto"
	"vetclinic/internal/domains/visit/service"
	"vetclinic/shared/constant"
	gDto "vetclinic/shared/dto"
	"vetclinic/shared/failure"
	"vetclinic/shared/validator"
	"vetclinic/transport/http/response"
)

type Handler struct {
	service service.Visit
	otel    otel.Otel
}

func New(service service.Visit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/visits", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVisit)
		routerGroup.Get("/", handler.GetVisits)
		routerGroup.Get("/available", handler.GetAvailableVisits)
		routerGroup.Get("/{id}", handler.GetVisitByID)
		routerGroup.Patch("/{id}", handler.FinalizeVisit)
		routerGroup.Delete("/{id}", handler.DeleteVisit)
	})

	router.Post("/jobs/expiration", handler.ExpireElapsedVisits)
}

// logFailure logs rejected requests at info and everything else at error.
func logFailure(err error, msg string) {
	if failure.GetCode(err) < http.StatusInternalServerError {
		log.Info().Err(err).Msg(msg)

		return
	}

	log.Error().Err(err).Msg(msg)
}

// CreateVisit books a visit.
// @Summary Create a visit
// @Description Book a visit for a pet with a vet. A treatment room is assigned automatically.
// @Tags Visit
// @Accept json
// @Produce json
// @Param request body dto.CreateVisitRequest true "Create Visit Request"
// @Success 201 {object} response.Data[dto.VisitResponse] "Created visit"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits [post]
// @Security BearerAuth
func (handler *Handler) CreateVisit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVisit")
	defer scope.End()

	req := dto.CreateVisitRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Info().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	visit, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to create visit")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Visit created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, visit)
}

// GetVisits lists the visits the caller may see.
// @Summary Get visits
// @Description Retrieve visits with pagination. Clients only see visits of their own pets.
// @Tags Visit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetVisitsResponse] "List of visits"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits [get]
// @Security BearerAuth
func (handler *Handler) GetVisits(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisits")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	visits, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to get visits")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Visits retrieved successfully")

	response.WithJSON(writer, http.StatusOK, visits)
}

// GetAvailableVisits lists free 15-minute slots.
// @Summary Get available slots
// @Description List every 15-minute slot in the range with the vets free for all of it.
// @Tags Visit
// @Accept json
// @Produce json
// @Param start_date_time query string true "Range start (RFC3339)"
// @Param end_date_time query string true "Range end (RFC3339)"
// @Param vet_ids query []string false "Restrict to these vets" collectionFormat(multi)
// @Success 200 {object} response.Data[dto.GetAvailableResponse] "Available slots"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits/available [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableVisits(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableVisits")
	defer scope.End()

	query := request.URL.Query()

	req := dto.GetAvailableRequest{
		StartDateTime: query.Get(constant.RequestParamStartDateTime),
		EndDateTime:   query.Get(constant.RequestParamEndDateTime),
	}

	for _, value := range query[constant.RequestParamVetIDs] {
		for _, id := range strings.Split(value, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.VetIDs = append(req.VetIDs, id)
			}
		}
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Info().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	slots, err := handler.service.GetAvailable(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to get available visits")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("visit.available_slots", len(slots.Slots))

	response.WithJSON(writer, http.StatusOK, slots)
}

// GetVisitByID retrieves a visit.
// @Summary Get a visit by ID
// @Description Retrieve a visit. Visits of other clients' pets are reported as not found.
// @Tags Visit
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} response.Data[dto.VisitResponse] "Visit details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetVisitByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisitByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	visit, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to get visit by ID")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Visit retrieved successfully")

	response.WithJSON(writer, http.StatusOK, visit)
}

// FinalizeVisit records the outcome of a visit.
// @Summary Finalize a visit
// @Description Set the final status (FINISHED, DID_NOT_APPEAR, CANCELLED) and description of a visit.
// @Description Any other status leaves the current one unchanged while the description is still replaced.
// @Tags Visit
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param request body dto.FinalizeVisitRequest true "Finalize Visit Request"
// @Success 200 {object} response.Data[dto.VisitResponse] "Updated visit"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits/{id} [patch]
// @Security BearerAuth
func (handler *Handler) FinalizeVisit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FinalizeVisit")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.FinalizeVisitRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Info().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	visit, err := handler.service.Finalize(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to finalize visit")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Visit finalized successfully by user " + user)

	response.WithJSON(writer, http.StatusOK, visit)
}

// DeleteVisit removes a visit.
// @Summary Delete a visit by ID
// @Description Delete a visit using its unique identifier.
// @Tags Visit
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} response.Message "Visit deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visits/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteVisit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVisit")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to delete visit")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Visit deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Visit deleted successfully")
}

// ExpireElapsedVisits runs the expiration sweep on demand.
// @Summary Expire elapsed visits
// @Description Mark every scheduled visit that has already ended as EXPIRED.
// @Tags Job
// @Produce json
// @Success 200 {object} response.Data[dto.ExpireElapsedResponse] "Number of expired visits"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/jobs/expiration [post]
// @Security BearerAuth
// @Security ApiKeyAuth
func (handler *Handler) ExpireElapsedVisits(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExpireElapsedVisits")
	defer scope.End()

	changed, err := handler.service.ExpireElapsed(ctx)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to expire elapsed visits")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("visit.expired", changed)

	response.WithJSON(writer, http.StatusOK, dto.ExpireElapsedResponse{Expired: changed})
}
