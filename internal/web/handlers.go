package web

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"flightbooking/internal/domain"
	"flightbooking/internal/service/airports"
	"flightbooking/internal/service/booking"
	"flightbooking/internal/service/flights"
	"flightbooking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Handler renders the server-side pages on top of the same use-case
// services the REST API exposes.
type Handler struct {
	airports airports.AirportUseCase
	flights  flights.FlightUseCase
	bookings booking.BookingUseCase
	log      logger.Logger
	validate *validator.Validate
}

func NewHandler(a airports.AirportUseCase, f flights.FlightUseCase, b booking.BookingUseCase, log logger.Logger) *Handler {
	return &Handler{
		airports: a,
		flights:  f,
		bookings: b,
		log:      log,
		validate: validator.New(),
	}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", h.home)
	router.GET("/flights", h.flightResults)
	router.GET("/book/:flightId", h.bookForm)
	router.POST("/book/:flightId", h.createBooking)
	router.GET("/booking-confirmation/:bookingId", h.confirmation)
	router.GET("/my-bookings", h.myBookings)
}

// TemplateFuncs are registered on the gin engine before the templates
// are loaded.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"clock":    func(t time.Time) string { return t.Format("15:04") },
		"day":      func(t time.Time) string { return t.Format("02 Jan 2006") },
		"datetime": func(t time.Time) string { return t.Format("02 Jan 2006 15:04") },
	}
}

type flightView struct {
	Flight      domain.Flight
	Source      domain.Airport
	Destination domain.Airport
	Duration    string
}

type bookingView struct {
	Booking     domain.Booking
	Flight      domain.Flight
	Source      domain.Airport
	Destination domain.Airport
}

type bookingFormInput struct {
	PassengerName  string `form:"passenger_name" validate:"required,min=2"`
	PassengerEmail string `form:"passenger_email" validate:"required,email"`
	PassengerPhone string `form:"passenger_phone"`
}

func (h *Handler) home(c *gin.Context) {
	airportList, err := h.airports.List(c.Request.Context())
	if err != nil {
		h.log.Error("failed to load airports for search form", "error", err)
	}
	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Airports":  airportList,
		"LoadError": err != nil,
	})
}

func (h *Handler) flightResults(c *gin.Context) {
	flightList, airportList, err := h.fetchFlightsAndAirports(c.Request.Context())
	if err != nil {
		h.log.Error("failed to load flight results", "error", err)
		h.notFound(c)
		return
	}

	params := FilterParams{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
	}
	filtered := FilterFlights(flightList, params)
	SortFlights(filtered, c.DefaultQuery("sort", SortDepartureTime), c.DefaultQuery("order", "asc"))

	airportMap := BuildAirportMap(airportList)
	views := make([]flightView, 0, len(filtered))
	for _, f := range filtered {
		view, ok := joinFlight(f, airportMap)
		if !ok {
			// a flight pointing at an unknown airport is dropped,
			// never rendered as an error
			continue
		}
		views = append(views, view)
	}

	c.HTML(http.StatusOK, "flights.tmpl", gin.H{
		"Flights": views,
		"Params":  params,
		"Sort":    c.DefaultQuery("sort", SortDepartureTime),
		"Order":   c.DefaultQuery("order", "asc"),
	})
}

func (h *Handler) bookForm(c *gin.Context) {
	view, ok := h.loadFlightView(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "book.tmpl", gin.H{"Flight": view, "Form": bookingFormInput{}})
}

func (h *Handler) createBooking(c *gin.Context) {
	view, ok := h.loadFlightView(c)
	if !ok {
		return
	}

	var form bookingFormInput
	_ = c.ShouldBind(&form)
	if err := h.validate.Struct(form); err != nil {
		c.HTML(http.StatusBadRequest, "book.tmpl", gin.H{
			"Flight": view,
			"Form":   form,
			"Error":  "Please provide a valid name and email address.",
		})
		return
	}

	created, err := h.bookings.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightID:       view.Flight.ID,
		PassengerName:  form.PassengerName,
		PassengerEmail: form.PassengerEmail,
		PassengerPhone: form.PassengerPhone,
	})
	if err != nil {
		h.log.Error("failed to create booking", "flight_id", view.Flight.ID, "error", err)
		c.HTML(http.StatusBadRequest, "book.tmpl", gin.H{
			"Flight": view,
			"Form":   form,
			"Error":  "There was an error creating your booking. Please try again.",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/booking-confirmation/%d", created.ID))
}

func (h *Handler) confirmation(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		h.notFound(c)
		return
	}

	b, err := h.bookings.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		h.notFound(c)
		return
	}

	var (
		flight      *domain.Flight
		airportList []domain.Airport
	)
	errCh := make(chan error, 2)
	ctx := c.Request.Context()
	go func() {
		var e error
		flight, e = h.flights.GetByID(ctx, b.FlightID)
		errCh <- e
	}()
	go func() {
		var e error
		airportList, e = h.airports.List(ctx)
		errCh <- e
	}()
	var firstErr error
	for i := 0; i < 2; i++ {
		if e := <-errCh; e != nil && firstErr == nil {
			firstErr = e
		}
	}
	if firstErr != nil {
		h.notFound(c)
		return
	}

	airportMap := BuildAirportMap(airportList)
	view, ok := joinFlight(*flight, airportMap)
	if !ok {
		h.notFound(c)
		return
	}

	c.HTML(http.StatusOK, "confirmation.tmpl", gin.H{
		"Booking": b,
		"Flight":  view,
	})
}

func (h *Handler) myBookings(c *gin.Context) {
	var (
		bookingList []domain.Booking
		flightList  []domain.Flight
		airportList []domain.Airport
	)
	errCh := make(chan error, 3)
	ctx := c.Request.Context()
	go func() {
		var e error
		bookingList, e = h.bookings.List(ctx)
		errCh <- e
	}()
	go func() {
		var e error
		flightList, e = h.flights.List(ctx)
		errCh <- e
	}()
	go func() {
		var e error
		airportList, e = h.airports.List(ctx)
		errCh <- e
	}()
	var firstErr error
	for i := 0; i < 3; i++ {
		if e := <-errCh; e != nil && firstErr == nil {
			firstErr = e
		}
	}
	if firstErr != nil {
		h.log.Error("failed to load bookings page", "error", firstErr)
		h.notFound(c)
		return
	}

	SortBookingsByDateDesc(bookingList)

	flightMap := make(map[int64]domain.Flight, len(flightList))
	for _, f := range flightList {
		flightMap[f.ID] = f
	}
	airportMap := BuildAirportMap(airportList)

	views := make([]bookingView, 0, len(bookingList))
	for _, b := range bookingList {
		flight, ok := flightMap[b.FlightID]
		if !ok {
			continue
		}
		source, ok := airportMap[flight.SourceAirportID]
		if !ok {
			continue
		}
		destination, ok := airportMap[flight.DestinationAirportID]
		if !ok {
			continue
		}
		views = append(views, bookingView{Booking: b, Flight: flight, Source: source, Destination: destination})
	}

	c.HTML(http.StatusOK, "my_bookings.tmpl", gin.H{"Bookings": views})
}

// loadFlightView resolves the :flightId path parameter against the
// full flight list, the same lookup the results page uses. A missing
// flight or airport renders the not-found page and reports !ok.
func (h *Handler) loadFlightView(c *gin.Context) (flightView, bool) {
	flightList, airportList, err := h.fetchFlightsAndAirports(c.Request.Context())
	if err != nil {
		h.log.Error("failed to load flight", "flight_id", c.Param("flightId"), "error", err)
		h.notFound(c)
		return flightView{}, false
	}

	rawID := c.Param("flightId")
	airportMap := BuildAirportMap(airportList)
	for _, f := range flightList {
		if strconv.FormatInt(f.ID, 10) != rawID {
			continue
		}
		view, ok := joinFlight(f, airportMap)
		if !ok {
			break
		}
		return view, true
	}

	h.notFound(c)
	return flightView{}, false
}

func (h *Handler) fetchFlightsAndAirports(ctx context.Context) ([]domain.Flight, []domain.Airport, error) {
	var (
		flightList  []domain.Flight
		airportList []domain.Airport
	)
	errCh := make(chan error, 2)
	go func() {
		var e error
		flightList, e = h.flights.List(ctx)
		errCh <- e
	}()
	go func() {
		var e error
		airportList, e = h.airports.List(ctx)
		errCh <- e
	}()
	var firstErr error
	for i := 0; i < 2; i++ {
		if e := <-errCh; e != nil && firstErr == nil {
			firstErr = e
		}
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}
	return flightList, airportList, nil
}

func joinFlight(f domain.Flight, airportMap map[int64]domain.Airport) (flightView, bool) {
	source, ok := airportMap[f.SourceAirportID]
	if !ok {
		return flightView{}, false
	}
	destination, ok := airportMap[f.DestinationAirportID]
	if !ok {
		return flightView{}, false
	}
	return flightView{
		Flight:      f,
		Source:      source,
		Destination: destination,
		Duration:    FormatDuration(f.Duration()),
	}, true
}

func (h *Handler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{})
}
