package httpgin

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/aerobook/internal/cards"
	"github.com/kirinyoku/aerobook/internal/domain"
	"github.com/kirinyoku/aerobook/internal/flight"
	"github.com/kirinyoku/aerobook/internal/repository/filestore"
	"github.com/kirinyoku/aerobook/internal/seating"
	"github.com/kirinyoku/aerobook/internal/service"
	"github.com/kirinyoku/aerobook/internal/service/booking"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// departsLayout identifies a flight departure in URL paths and responses,
// e.g. /flights/U28549/202111201045.
const departsLayout = "200601021504"

func NewRouter(
	svcs *service.Services,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/flights", handleCreateFlight(svcs))

	flights := r.Group("/flights/:number/:departs")
	{
		flights.GET("", handleGetFlight(svcs))
		flights.POST("/open", handleOpenFlight(svcs))
		flights.POST("/save", handleSaveFlight(svcs))
		flights.PUT("/seating", handleLoadSeating(svcs))
		flights.GET("/seating", handleGetSeating(svcs))
		flights.POST("/passengers", handleAddPassenger(svcs))
		flights.DELETE("/passengers/:id", handleRemovePassenger(svcs))
		flights.PUT("/seats", handleAllocateSeat(svcs))
		flights.POST("/seats/next", handleAllocateNextSeat(svcs))
		flights.POST("/boarding-cards", handleBoardingCards(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Create a flight and open it for booking
// @Param    req body CreateFlightRequest true "payload"
// @Success  201 {object} FlightResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse "unknown airport code"
// @Router   /flights [post]
func handleCreateFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateFlightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		// Parsed in time.Local so the aggregate treats it as wall-clock
		// time at the point of embarkation.
		departs, err := time.ParseInLocation("2006-01-02 15:04", req.Departs, time.Local)
		if err != nil {
			badRequest(c, "invalid departs, expected yyyy-mm-dd hh:mm")
			return
		}

		f, err := svcs.Booking.CreateFlight(
			req.Airline,
			req.Number,
			req.Embarkation,
			req.Destination,
			departs,
			time.Duration(req.DurationMinutes)*time.Minute,
		)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, newFlightResponse(f))
	}
}

// @Summary  Open a previously saved flight
// @Param    number  path string true "Flight number"
// @Param    departs path string true "Departure, yyyymmddhhmm UTC"
// @Success  200 {object} FlightResponse
// @Failure  404 {object} ErrorResponse
// @Router   /flights/{number}/{departs}/open [post]
func handleOpenFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, departs, ok := flightParams(c)
		if !ok {
			return
		}

		f, err := svcs.Booking.OpenFlight(number, departs)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, newFlightResponse(f))
	}
}

// @Summary  Get flight details
// @Param    number  path string true "Flight number"
// @Param    departs path string true "Departure, yyyymmddhhmm UTC"
// @Success  200 {object} FlightResponse
// @Failure  404 {object} ErrorResponse
// @Router   /flights/{number}/{departs} [get]
func handleGetFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, departs, ok := flightParams(c)
		if !ok {
			return
		}

		f, err := svcs.Booking.Flight(number, departs)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, newFlightResponse(f))
	}
}

// @Summary  Save the flight to its data file
// @Param    number  path string true "Flight number"
// @Param    departs path string true "Departure, yyyymmddhhmm UTC"
// @Success  204
// @Failure  404 {object} ErrorResponse
// @Router   /flights/{number}/{departs}/save [post]
func handleSaveFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, departs, ok := flightParams(c)
		if !ok {
			return
		}

		if err := svcs.Booking.SaveFlight(number, departs); err != nil {
			respondErr(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// @Summary  Load a seating plan, migrating existing allocations
// @Param    number  path string true "Flight number"
// @Param    departs path string true "Departure, yyyymmddhhmm UTC"
// @Param    req body LoadSeatingRequest true "payload"
// @Success  200 {object} FlightResponse
// @Failure  404 {object} ErrorResponse "no matching plan"
// @Failure  409 {object} ErrorResponse "insufficient capacity"
// @Router   /flights/{number}/{departs}/seating [put]
func handleLoadSeating(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, departs, ok := flightParams(c)
		if !ok {
			return
		}

		var req LoadSeatingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		if err := svcs.Booking.LoadSeating(number, departs, req.Aircraft, req.Layout); err != nil {
			respondErr(c, err)
			return
		}

		f, err := svcs.Booking.Flight(number, departs)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, newFlightResponse(f))
	}
}

// @Summary  Get the seating plan with current occupancy
// @Param    number  path string true "Flight number"
// @Param    departs path string true "Departure, yyyymmddhhmm UTC"
// @Success  200 {object} SeatingResponse
// @Failure  404 {object} ErrorResponse
// @Failure  422 {object} ErrorResponse "no seating plan loaded"
// @Router   /flights/{number}/{departs}/seating [get]
func handleGetSeating(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, departs, ok := flightParams(c)
		if !ok {
			return
		}

		f, err := svcs.Booking.Flight(number, departs)
		if err != nil {
			respondErr(c, err)
			return
		}

		plan := f.Seating()
		if plan == nil {
			respondErr(c, flight.ErrNoSeatingPlan)
			return
		}

		resp := SeatingResponse{
			Aircraft:         plan.Aircraft(),
			Layout:           plan.Layout(),
			Capacity:         plan.Capacity(),
			UnallocatedSeats: plan.UnallocatedSeats(),
		}

		for _, a := range f.SeatAssignments() {
			resp.Allocations = append(resp.Allocations, SeatAllocationResponse{
				SeatNumber:    a.SeatNumber,
				PassengerID:   a.Passenger.ID,
				PassengerName: a.Passenger.Name,
			})
		}

		c.JSON(http.StatusOK, resp)
	}
}

// @Summary  Add a passenger
// @Param    number  path string true "Flight number"
// @Param    departs path string true "Departure, yyyymmddhhmm UTC"
// @Param    req body AddPassengerRequest true "payload"
// @Success  201 {object} domain.Passenger
// @Failure  409 {object} ErrorResponse "duplicate passport / flight full"
// @Router   /flights/{number}/{departs}/passengers [post]
func handleAddPassenger(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, departs, ok := flightParams(c)
		if !ok {
			return
		}

		var req AddPassengerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			badRequest(c, "invalid dob, expected yyyy-mm-dd")
			return
		}

		p, err := svcs.Booking.AddPassenger(
			number,
			departs,
			req.Name,
			domain.Gender(req.Gender),
			dob,
			req.Nationality,
			req.Residency,
			req.PassportNumber,
		)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, p)
	}
}

// @Summary  Remove a passenger, clearing any seat they hold
// @Param    number  path string true "Flight number"
// @Param    departs path string true "Departure, yyyymmddhhmm UTC"
// @Param    id      path string true "Passenger ID"
// @Success  204
// @Failure  404 {object} ErrorResponse
// @Router   /flights/{number}/{departs}/passengers/{id} [delete]
func handleRemovePassenger(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, departs, ok := flightParams(c)
		if !ok {
			return
		}

		if err := svcs.Booking.RemovePassenger(number, departs, c.Param("id")); err != nil {
			respondErr(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// @Summary  Allocate a specific seat to a passenger
// @Param    number  path string true "Flight number"
// @Param    departs path string true "Departure, yyyymmddhhmm UTC"
// @Param    req body AllocateSeatRequest true "payload"
// @Success  204
// @Failure  404 {object} ErrorResponse "unknown seat or passenger"
// @Failure  409 {object} ErrorResponse "seat occupied"
// @Router   /flights/{number}/{departs}/seats [put]
func handleAllocateSeat(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, departs, ok := flightParams(c)
		if !ok {
			return
		}

		var req AllocateSeatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		err := svcs.Booking.AllocateSeat(number, departs, req.SeatNumber, req.PassengerID)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// @Summary  Allocate the next empty seat, front to back
// @Param    number  path string true "Flight number"
// @Param    departs path string true "Departure, yyyymmddhhmm UTC"
// @Param    req body AllocateNextSeatRequest true "payload"
// @Success  200 {object} AllocateNextSeatResponse
// @Failure  422 {object} ErrorResponse "no seating plan / no seats left"
// @Router   /flights/{number}/{departs}/seats/next [post]
func handleAllocateNextSeat(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, departs, ok := flightParams(c)
		if !ok {
			return
		}

		var req AllocateNextSeatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		seatNumber, err := svcs.Booking.AllocateNextSeat(number, departs, req.PassengerID)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, AllocateNextSeatResponse{
			SeatNumber:  seatNumber,
			PassengerID: req.PassengerID,
		})
	}
}

// @Summary  Generate boarding card files for every allocated seat
// @Param    number  path string true "Flight number"
// @Param    departs path string true "Departure, yyyymmddhhmm UTC"
// @Param    req body BoardingCardsRequest true "payload"
// @Success  200 {object} BoardingCardsResponse
// @Failure  404 {object} ErrorResponse "no generator for format"
// @Failure  422 {object} ErrorResponse "no seat allocations"
// @Router   /flights/{number}/{departs}/boarding-cards [post]
func handleBoardingCards(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, departs, ok := flightParams(c)
		if !ok {
			return
		}

		var req BoardingCardsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		count, err := svcs.Booking.GenerateBoardingCards(number, departs, req.Format, req.Gate)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, BoardingCardsResponse{Format: req.Format, Cards: count})
	}
}

// --- helpers ---

func flightParams(c *gin.Context) (string, time.Time, bool) {
	number := c.Param("number")

	departs, err := time.Parse(departsLayout, c.Param("departs"))
	if err != nil {
		badRequest(c, "invalid departs, expected yyyymmddhhmm")
		return "", time.Time{}, false
	}

	return number, departs, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	var (
		notOpen          booking.FlightNotOpenError
		airportNotFound  flight.AirportNotFoundError
		passengerMissing flight.PassengerNotFoundError
		planNotFound     filestore.PlanNotFoundError
		flightNotFound   filestore.FlightNotFoundError
		generatorMissing cards.MissingGeneratorError
		rowNotFound      seating.RowNotFoundError
		seatNotFound     seating.SeatNotFoundError
		seatOccupied     seating.SeatOccupiedError
		dupPassenger     flight.DuplicatePassengerError
		dupPassport      flight.DuplicatePassportError
		insufficient     flight.InsufficientCapacityError
	)

	switch {
	case errors.As(err, &notOpen),
		errors.As(err, &airportNotFound),
		errors.As(err, &passengerMissing),
		errors.As(err, &planNotFound),
		errors.As(err, &flightNotFound),
		errors.As(err, &generatorMissing),
		errors.As(err, &rowNotFound),
		errors.As(err, &seatNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &seatOccupied),
		errors.As(err, &dupPassenger),
		errors.As(err, &dupPassport),
		errors.As(err, &insufficient),
		errors.Is(err, flight.ErrFlightFull):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, flight.ErrNoSeatingPlan),
		errors.Is(err, flight.ErrNoAllocations),
		errors.Is(err, flight.ErrNoSeatsAvailable):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case isValidationErr(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func isValidationErr(err error) bool {
	var invalidGender domain.InvalidGenderError

	return errors.As(err, &invalidGender) ||
		errors.Is(err, domain.ErrNameRequired) ||
		errors.Is(err, domain.ErrDOBRequired) ||
		errors.Is(err, domain.ErrNationalityRequired) ||
		errors.Is(err, domain.ErrResidencyRequired) ||
		errors.Is(err, domain.ErrPassportNumberRequired) ||
		errors.Is(err, flight.ErrAirlineRequired) ||
		errors.Is(err, flight.ErrNumberRequired)
}
