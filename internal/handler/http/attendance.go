package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/attendance"
	"github.com/schoolhub/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	TogglePunch(w http.ResponseWriter, r *http.Request)
	MarkStatus(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Analytics(w http.ResponseWriter, r *http.Request)
	StaffHistory(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// TogglePunch implements AttendanceHandler.
func (a *AttendanceHandlerImpl) TogglePunch(w http.ResponseWriter, r *http.Request) {
	actor, err := actingUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.TogglePunchRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("TogglePunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Punching for yourself needs no staff_id in the body
	if req.StaffID == "" {
		req.StaffID = actor.ID
	}

	resp, err := a.attendanceService.TogglePunch(r.Context(), actor, chi.URLParam(r, "schoolSlug"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MarkStatus implements AttendanceHandler.
func (a *AttendanceHandlerImpl) MarkStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := actingUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.MarkStatusRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MarkStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.attendanceService.MarkStatus(r.Context(), actor, chi.URLParam(r, "schoolSlug"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actingUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.ListFilter{
		Date: r.URL.Query().Get("date"),
	}

	records, err := a.attendanceService.ListAttendance(r.Context(), actor, chi.URLParam(r, "schoolSlug"), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Analytics implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	actor, err := actingUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "month must be a number between 1 and 12", nil)
			return
		}
		month = parsed
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "year must be a positive number", nil)
			return
		}
		year = parsed
	}

	resp, err := a.attendanceService.GetAnalytics(r.Context(), actor, chi.URLParam(r, "schoolSlug"), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// StaffHistory implements AttendanceHandler.
func (a *AttendanceHandlerImpl) StaffHistory(w http.ResponseWriter, r *http.Request) {
	actor, err := actingUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	resp, err := a.attendanceService.GetStaffHistory(r.Context(), actor, chi.URLParam(r, "schoolSlug"), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
