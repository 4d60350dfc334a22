package restserver

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/chrissnell/sundial/internal/planner"
	"github.com/chrissnell/sundial/pkg/render"
	"github.com/chrissnell/sundial/pkg/responseformat"
	"github.com/chrissnell/sundial/pkg/sundial"
	"github.com/chrissnell/sundial/pkg/timezone"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	planner    *planner.Planner
	renderOpts render.Options
	formatter  *responseformat.Formatter
	logger     *zap.SugaredLogger
}

// NewHandlers creates a new handlers instance
func NewHandlers(p *planner.Planner, opts render.Options, logger *zap.SugaredLogger) *Handlers {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handlers{
		planner:    p,
		renderOpts: opts,
		formatter:  responseformat.NewFormatter(),
		logger:     logger,
	}
}

// EquationOfTimeResponse is returned by /eot/{day}
type EquationOfTimeResponse struct {
	DayOfYear   int     `json:"day_of_year"`
	Minutes     float64 `json:"minutes"`
	Correction  string  `json:"correction"`
	Instruction string  `json:"instruction"`
}

// DialResponse is returned by /dial
type DialResponse struct {
	*planner.Plan
	DaylightText string `json:"daylight_text"`
}

// Health reports that the server is up
func (h *Handlers) Health(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, http.StatusOK, map[string]string{"status": "ok"})
}

// GetDial computes a dial for the lat/lon query parameters
func (h *Handlers) GetDial(w http.ResponseWriter, req *http.Request) {
	plan, ok := h.plan(w, req)
	if !ok {
		return
	}
	if err := h.formatter.WriteResponse(w, req, http.StatusOK, DialResponse{Plan: plan, DaylightText: plan.DaylightText()}); err != nil {
		h.logger.Errorf("error encoding dial response: %v", err)
	}
}

// GetDialImage renders the dial for the lat/lon query parameters as PNG
func (h *Handlers) GetDialImage(w http.ResponseWriter, req *http.Request) {
	plan, ok := h.plan(w, req)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, plan.Result, h.renderOpts); err != nil {
		h.sendError(w, req, http.StatusInternalServerError, "error rendering dial", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"sundial-%s.png\"", plan.ID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Errorf("error writing dial image: %v", err)
	}
}

// GetEquationOfTime returns the equation of time for a day of the year
func (h *Handlers) GetEquationOfTime(w http.ResponseWriter, req *http.Request) {
	day, err := strconv.Atoi(mux.Vars(req)["day"])
	if err == nil {
		err = sundial.ValidateDayOfYear(day)
	}
	if err != nil {
		h.sendError(w, req, http.StatusBadRequest, "invalid day of year", err)
		return
	}

	eot := sundial.EquationOfTime(day)
	h.formatter.WriteResponse(w, req, http.StatusOK, EquationOfTimeResponse{
		DayOfYear:   day,
		Minutes:     eot,
		Correction:  sundial.Correction(eot).String(),
		Instruction: sundial.EquationOfTimeText(eot),
	})
}

// plan parses the request and runs the planner, writing an error response
// and returning false on failure
func (h *Handlers) plan(w http.ResponseWriter, req *http.Request) (*planner.Plan, bool) {
	preq, err := parseDialRequest(req)
	if err != nil {
		h.sendError(w, req, http.StatusBadRequest, "invalid request", err)
		return nil, false
	}

	plan, err := h.planner.Plan(preq)
	if err != nil {
		status, message := classify(err)
		h.sendError(w, req, status, message, err)
		return nil, false
	}
	return plan, true
}

func parseDialRequest(req *http.Request) (planner.Request, error) {
	q := req.URL.Query()
	var preq planner.Request
	var err error

	if preq.Latitude, err = requiredFloat(q.Get("lat"), "lat"); err != nil {
		return preq, err
	}
	if preq.Longitude, err = requiredFloat(q.Get("lon"), "lon"); err != nil {
		return preq, err
	}
	if v := q.Get("day"); v != "" {
		if preq.DayOfYear, err = strconv.Atoi(v); err != nil {
			return preq, fmt.Errorf("day: %w", err)
		}
		if preq.DayOfYear == 0 {
			return preq, sundial.ValidateDayOfYear(0)
		}
	}
	if v := q.Get("utc_offset"); v != "" {
		off, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return preq, fmt.Errorf("utc_offset: %w", err)
		}
		preq.UTCOffset = &off
	}
	return preq, nil
}

func requiredFloat(v, name string) (float64, error) {
	if v == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// classify maps planner errors to HTTP status codes
func classify(err error) (int, string) {
	var lookupErr *timezone.LookupError
	switch {
	case errors.Is(err, sundial.ErrOutOfRange):
		return http.StatusBadRequest, "invalid location or date"
	case errors.As(err, &lookupErr):
		return http.StatusUnprocessableEntity, "could not determine timezone"
	default:
		return http.StatusInternalServerError, "error computing dial"
	}
}

func (h *Handlers) sendError(w http.ResponseWriter, req *http.Request, status int, message string, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Errorw(message, "error", err, "path", req.URL.Path)
	}
	h.formatter.WriteError(w, req, status, message, err)
}
